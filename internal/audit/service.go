package audit

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
	return &Service{repo: repo, logger: logger}
}

// ListRecent returns the newest entries first.
func (s *Service) ListRecent(ctx context.Context) ([]LogView, error) {
	logs, err := s.repo.ListRecent(ctx, ListLimit)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch audit logs", err)
	}
	if logs == nil {
		logs = []LogView{}
	}
	return logs, nil
}
