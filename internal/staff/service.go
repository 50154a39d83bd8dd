package staff

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
)

var errBadgeTaken = internal.NewValidationError("Badge number already exists", internal.ErrCodeDuplicate)

type Service struct {
	repo    RepositoryAPI
	auditor Auditor
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, auditor Auditor, logger *slog.Logger) *Service {
	return &Service{repo: repo, auditor: auditor, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Staff, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch staff", err)
	}
	out := make([]Staff, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out, nil
}

// Create registers an officer. Badge numbers are unique across active and
// inactive staff.
func (s *Service) Create(ctx context.Context, actorID int64, dto CreateStaffDTO) (int64, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	taken, err := s.repo.BadgeExists(ctx, dto.BadgeNumber)
	if err != nil {
		return 0, internal.NewInternalError("Failed to create police staff", err)
	}
	if taken {
		return 0, errBadgeTaken
	}

	m := dto.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, ErrBadgeTaken) {
			return 0, errBadgeTaken
		}
		return 0, internal.NewInternalError("Failed to create police staff", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, audit.TableStaff, m.ID)
	s.logger.InfoContext(ctx, "staff created", "staff_id", m.ID, "badge_number", m.BadgeNumber)
	return m.ID, nil
}
