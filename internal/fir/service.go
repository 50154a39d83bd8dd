package fir

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
)

var (
	errUnknownCategory = internal.NewValidationError("Crime category not found", internal.ErrCodeReferenceMissing)
	errDuplicateFIR    = internal.NewValidationError("FIR number already exists", internal.ErrCodeDuplicate)
)

type Service struct {
	repo       RepositoryAPI
	categories CategoryChecker
	auditor    Auditor
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(repo RepositoryAPI, categories CategoryChecker, auditor Auditor, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		auditor:    auditor,
		logger:     logger,
		now:        time.Now,
	}
}

// Register opens a case from a complaint. Either both the case and the FIR
// are stored or neither is.
func (s *Service) Register(ctx context.Context, actorID int64, dto RegisterFIRDTO) (int64, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	ok, err := s.categories.Exists(ctx, dto.CrimeTypeID.Value)
	if err != nil {
		return 0, internal.NewInternalError("Failed to register FIR", err)
	}
	if !ok {
		return 0, errUnknownCategory
	}

	c, f := dto.ToModels(s.now().UTC())
	if err := s.repo.Register(ctx, c, f); err != nil {
		if errors.Is(err, ErrDuplicateFIR) {
			return 0, errDuplicateFIR
		}
		return 0, internal.NewInternalError("Failed to register FIR", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, audit.TableFIR, c.ID)
	s.logger.InfoContext(ctx, "fir registered", "case_id", c.ID, "fir_number", c.FIRNumber)
	return c.ID, nil
}
