package report

import (
	"context"

	"github.com/frahmantamala/crms/internal/cases"
)

// CaseLister is satisfied by cases.Service.
type CaseLister interface {
	List(ctx context.Context, filter cases.Filter) ([]cases.CaseView, error)
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
