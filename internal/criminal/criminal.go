package criminal

import (
	"context"
	"errors"

	criminalDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/criminal"
)

// Criminal is the API shape of a criminals row.
type Criminal struct {
	CriminalID       int64    `json:"criminal_id"`
	Name             string   `json:"name"`
	Alias            *string  `json:"alias"`
	Gender           string   `json:"gender"`
	DOB              *string  `json:"dob"`
	Address          *string  `json:"address"`
	HeightCM         *float64 `json:"height_cm"`
	WeightKG         *float64 `json:"weight_kg"`
	IdentifyingMarks *string  `json:"identifying_marks"`
	IsWanted         bool     `json:"is_wanted"`
	TotalCases       int      `json:"total_cases"`
}

func FromModel(m criminalDatamodel.Criminal) Criminal {
	c := Criminal{
		CriminalID:       m.ID,
		Name:             m.Name,
		Alias:            m.Alias,
		Gender:           m.Gender,
		Address:          m.Address,
		HeightCM:         m.HeightCM,
		WeightKG:         m.WeightKG,
		IdentifyingMarks: m.IdentifyingMarks,
		IsWanted:         m.IsWanted,
		TotalCases:       m.TotalCases,
	}
	if m.DOB != nil {
		d := m.DOB.Format(DateLayout)
		c.DOB = &d
	}
	return c
}

// Repository errors the service maps onto client messages.
var (
	ErrLinkedCaseMissing = errors.New("linked case not found")
	ErrCaseAlreadyLinked = errors.New("case already has a primary accused")
)

type RepositoryAPI interface {
	List(ctx context.Context) ([]criminalDatamodel.Criminal, error)
	// Create inserts the record and, when linkCaseID is non-zero, claims the
	// case's primary-accused slot in the same transaction.
	Create(ctx context.Context, c *criminalDatamodel.Criminal, linkCaseID int64) error
	// SetWanted reports false when no such criminal exists.
	SetWanted(ctx context.Context, id int64, wanted bool) (bool, error)
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
