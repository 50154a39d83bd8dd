package investigation

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	investigationDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/investigation"
)

const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusSuspended  = "Suspended"
	StatusClosed     = "Closed"
)

// ErrAlreadyExists is returned by the repository when the case already has an
// investigation row.
var ErrAlreadyExists = errors.New("investigation already exists for case")

var ValidStatuses = []string{StatusOpen, StatusInProgress, StatusSuspended, StatusClosed}

func IsValidStatus(s string) bool {
	return slices.Contains(ValidStatuses, s)
}

// View is one investigation joined with its case, category and officer.
// InvestigationNotes repeats ProgressNotes under the name the client form uses.
type View struct {
	InvestigationID    int64     `json:"investigation_id" gorm:"column:investigation_id"`
	CaseID             int64     `json:"case_id" gorm:"column:case_id"`
	AssignedTo         int64     `json:"assigned_to" gorm:"column:assigned_to"`
	Status             string    `json:"status" gorm:"column:status"`
	ProgressNotes      *string   `json:"progress_notes" gorm:"column:progress_notes"`
	InvestigationNotes *string   `json:"investigation_notes" gorm:"column:investigation_notes"`
	LastUpdated        time.Time `json:"last_updated" gorm:"column:last_updated"`
	FIRNumber          string    `json:"FIR_number" gorm:"column:fir_number"`
	CrimeName          string    `json:"crime_name" gorm:"column:crime_name"`
	OfficerName        string    `json:"officer_name" gorm:"column:officer_name"`
}

var legacyStatusPrefix = regexp.MustCompile(`(?s)^\[Status: ([^\]]+)\]\s*(.*)$`)

// SplitLegacyNotes separates a "[Status: X] notes" prefix written by older
// clients. ok is false when notes carry no prefix.
func SplitLegacyNotes(notes string) (status, rest string, ok bool) {
	m := legacyStatusPrefix.FindStringSubmatch(notes)
	if m == nil {
		return "", notes, false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

type RepositoryAPI interface {
	List(ctx context.Context) ([]View, error)
	CaseExists(ctx context.Context, caseID int64) (bool, error)
	OfficerActive(ctx context.Context, staffID int64) (bool, error)
	ExistsForCase(ctx context.Context, caseID int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, inv *investigationDatamodel.Investigation) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
