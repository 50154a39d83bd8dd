package category

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllCategories returns every category ordered by name.
func (s *Service) GetAllCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch crime categories", err)
	}

	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	s.logger.DebugContext(ctx, "retrieved crime categories", "count", len(out))
	return out, nil
}

// Exists is used by FIR registration to validate crime_type_id.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}
