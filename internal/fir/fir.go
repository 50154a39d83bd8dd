package fir

import (
	"context"
	"errors"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	firDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/fir"
)

// ErrDuplicateFIR is returned by the repository when the FIR number is
// already used by a case or a FIR.
var ErrDuplicateFIR = errors.New("fir number already exists")

type RepositoryAPI interface {
	// Register inserts the case and its FIR atomically and sets f.CaseID.
	Register(ctx context.Context, c *caseDatamodel.Case, f *firDatamodel.FIR) error
}

// CategoryChecker is satisfied by category.Service.
type CategoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
