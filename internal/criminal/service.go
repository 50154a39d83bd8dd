package criminal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
)

var (
	errLinkedCaseMissing = internal.NewValidationError("Linked case not found", internal.ErrCodeReferenceMissing)
	errCaseAlreadyLinked = internal.NewValidationError("Case already has a primary accused", internal.ErrCodeAccusedAlreadyLinked)
)

type Service struct {
	repo    RepositoryAPI
	auditor Auditor
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, auditor Auditor, logger *slog.Logger) *Service {
	return &Service{repo: repo, auditor: auditor, logger: logger}
}

// List returns every record, newest first.
func (s *Service) List(ctx context.Context) ([]Criminal, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch criminals", err)
	}
	out := make([]Criminal, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out, nil
}

// Create inserts a criminal and optionally links it as primary accused. A
// rejected link leaves no criminal row behind.
func (s *Service) Create(ctx context.Context, actorID int64, dto CreateCriminalDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	m := dto.ToModel()
	linkCaseID := dto.LinkTarget()
	err := s.repo.Create(ctx, m, linkCaseID)
	switch {
	case errors.Is(err, ErrLinkedCaseMissing):
		return 0, errLinkedCaseMissing
	case errors.Is(err, ErrCaseAlreadyLinked):
		return 0, errCaseAlreadyLinked
	case err != nil:
		return 0, internal.NewInternalError("Failed to create criminal record", err)
	}

	if linkCaseID > 0 {
		s.auditor.Record(ctx, actorID, audit.ActionLink, audit.TableCases, linkCaseID)
	}
	s.auditor.Record(ctx, actorID, audit.ActionCreate, audit.TableCriminals, m.ID)
	s.logger.InfoContext(ctx, "criminal created", "criminal_id", m.ID, "linked_case_id", linkCaseID)
	return m.ID, nil
}

// UpdateWanted flips is_wanted. Nothing else on the record is editable.
func (s *Service) UpdateWanted(ctx context.Context, actorID, id int64, dto UpdateWantedDTO) error {
	found, err := s.repo.SetWanted(ctx, id, dto.IsWanted)
	if err != nil {
		return internal.NewInternalError("Failed to update criminal wanted status", err)
	}
	if !found {
		return internal.ErrCriminalNotFound
	}
	s.auditor.Record(ctx, actorID, audit.ActionUpdate, audit.TableCriminals, id)
	return nil
}
