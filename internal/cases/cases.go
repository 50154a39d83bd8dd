package cases

import (
	"context"
	"time"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
)

// CaseView is a case joined with its crime category and primary accused.
type CaseView struct {
	CaseID             int64     `json:"case_id" gorm:"column:case_id"`
	FIRNumber          string    `json:"FIR_number" gorm:"column:fir_number"`
	CrimeTypeID        int64     `json:"crime_type_id" gorm:"column:crime_type_id"`
	PrimaryAccusedID   *int64    `json:"primary_accused_id" gorm:"column:primary_accused_id"`
	City               *string   `json:"city" gorm:"column:city"`
	District           *string   `json:"district" gorm:"column:district"`
	PoliceStationCode  *string   `json:"police_station_code" gorm:"column:police_station_code"`
	Latitude           *float64  `json:"latitude" gorm:"column:latitude"`
	Longitude          *float64  `json:"longitude" gorm:"column:longitude"`
	Description        *string   `json:"description" gorm:"column:description"`
	Status             string    `json:"status" gorm:"column:status"`
	DateReported       time.Time `json:"date_reported" gorm:"column:date_reported"`
	CrimeName          *string   `json:"crime_name" gorm:"column:crime_name"`
	IPCSection         *string   `json:"ipc_section" gorm:"column:ipc_section"`
	SeverityLevel      *string   `json:"severity_level" gorm:"column:severity_level"`
	PrimaryAccusedName *string   `json:"primary_accused_name" gorm:"column:primary_accused_name"`
}

const (
	AccusedLinked   = "Has Primary Accused"
	AccusedUnlinked = "No Primary Accused"
)

// ActiveCase is the short row used by assignment pickers.
type ActiveCase struct {
	CaseID        int64     `json:"case_id" gorm:"column:case_id"`
	FIRNumber     string    `json:"FIR_number" gorm:"column:fir_number"`
	CrimeName     *string   `json:"crime_name" gorm:"column:crime_name"`
	City          *string   `json:"city" gorm:"column:city"`
	District      *string   `json:"district" gorm:"column:district"`
	DateReported  time.Time `json:"date_reported" gorm:"column:date_reported"`
	AccusedStatus string    `json:"accused_status" gorm:"column:accused_status"`
}

// Filter narrows List. Empty fields are ignored; both may be combined.
type Filter struct {
	Search string
	Status string
}

// ValidStatuses are the values PUT /cases/{id} accepts. Any of them may follow any other.
var ValidStatuses = []string{
	caseDatamodel.StatusOpen,
	caseDatamodel.StatusUnderInvestigation,
	caseDatamodel.StatusClosed,
	caseDatamodel.StatusChargesheeted,
}

// ActiveStatuses are the statuses listed by GET /cases/active.
var ActiveStatuses = []string{
	caseDatamodel.StatusOpen,
	caseDatamodel.StatusUnderInvestigation,
}

type RepositoryAPI interface {
	List(ctx context.Context, filter Filter) ([]CaseView, error)
	ListActive(ctx context.Context) ([]ActiveCase, error)
	// GetByID returns nil when the case does not exist.
	GetByID(ctx context.Context, id int64) (*CaseView, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
