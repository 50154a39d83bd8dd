package cases

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
)

type Service struct {
	repo    RepositoryAPI
	auditor Auditor
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, auditor Auditor, logger *slog.Logger) *Service {
	return &Service{repo: repo, auditor: auditor, logger: logger}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]CaseView, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch cases", err)
	}
	if rows == nil {
		rows = []CaseView{}
	}
	return rows, nil
}

func (s *Service) ListActive(ctx context.Context) ([]ActiveCase, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch active cases", err)
	}
	if rows == nil {
		rows = []ActiveCase{}
	}
	return rows, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*CaseView, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch case", err)
	}
	if c == nil {
		return nil, internal.ErrCaseNotFound
	}
	return c, nil
}

// Update changes status and/or description. There are no transition rules.
func (s *Service) Update(ctx context.Context, actorID, id int64, dto UpdateCaseDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return internal.NewInternalError("Failed to update case", err)
	}
	if !exists {
		return internal.ErrCaseNotFound
	}

	fields := dto.Fields()
	if len(fields) == 0 {
		return internal.ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return internal.NewInternalError("Failed to update case", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, audit.TableCases, id)
	s.logger.InfoContext(ctx, "case updated", "case_id", id, "fields", len(fields))
	return nil
}
