package report

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
	"github.com/frahmantamala/crms/internal/cases"
)

type Service struct {
	cases   CaseLister
	auditor Auditor
	logger  *slog.Logger
}

func NewService(lister CaseLister, auditor Auditor, logger *slog.Logger) *Service {
	return &Service{cases: lister, auditor: auditor, logger: logger}
}

// ExportCases renders the filtered case listing. The export is audited against
// record 0 since it covers many rows.
func (s *Service) ExportCases(ctx context.Context, actorID int64, filter cases.Filter) ([]byte, int, error) {
	rows, err := s.cases.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	workbook, err := BuildCaseWorkbook(rows)
	if err != nil {
		return nil, 0, internal.NewInternalError("Failed to generate report", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionExport, audit.TableCases, 0)
	s.logger.InfoContext(ctx, "case report exported", "rows", len(rows), "bytes", len(workbook))
	return workbook, len(rows), nil
}
