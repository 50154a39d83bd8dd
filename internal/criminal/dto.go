package criminal

import (
	"strings"
	"time"

	"github.com/frahmantamala/crms/internal"
	criminalDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/criminal"
	"github.com/frahmantamala/crms/internal/transport"
)

const DateLayout = "2006-01-02"

// CreateCriminalDTO mirrors the intake form. EyeColor, HairColor,
// ContactNumber and WantedReason have no columns and are accepted but dropped.
type CreateCriminalDTO struct {
	Name                string               `json:"name"`
	Alias               string               `json:"alias"`
	Gender              string               `json:"gender"`
	DateOfBirth         string               `json:"date_of_birth"`
	Height              *float64             `json:"height"`
	Weight              *float64             `json:"weight"`
	EyeColor            string               `json:"eye_color"`
	HairColor           string               `json:"hair_color"`
	DistinguishingMarks string               `json:"distinguishing_marks"`
	Address             string               `json:"address"`
	ContactNumber       string               `json:"contact_number"`
	IsWanted            bool                 `json:"is_wanted"`
	WantedReason        string               `json:"wanted_reason"`
	LinkedCaseID        transport.FlexibleID `json:"linked_case_id"`
}

func (d CreateCriminalDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Gender) == "" {
		return internal.NewValidationError("Name and gender are required", internal.ErrCodeMissingFields)
	}
	if d.DateOfBirth != "" {
		if _, err := time.Parse(DateLayout, d.DateOfBirth); err != nil {
			return internal.NewValidationError("Invalid date_of_birth", internal.ErrCodeInvalidDate)
		}
	}
	// an id that can never match a case fails the existence check
	if d.LinkedCaseID.Set && !d.LinkedCaseID.Valid {
		return errLinkedCaseMissing
	}
	return nil
}

// LinkTarget is the case to claim, or 0 for none.
func (d CreateCriminalDTO) LinkTarget() int64 {
	if d.LinkedCaseID.Valid {
		return d.LinkedCaseID.Value
	}
	return 0
}

func (d CreateCriminalDTO) ToModel() *criminalDatamodel.Criminal {
	m := &criminalDatamodel.Criminal{
		Name:             strings.TrimSpace(d.Name),
		Alias:            optional(d.Alias),
		Gender:           d.Gender,
		Address:          optional(d.Address),
		IdentifyingMarks: optional(d.DistinguishingMarks),
		IsWanted:         d.IsWanted,
	}
	if d.Height != nil && *d.Height > 0 {
		m.HeightCM = d.Height
	}
	if d.Weight != nil && *d.Weight > 0 {
		m.WeightKG = d.Weight
	}
	if dob, err := time.Parse(DateLayout, d.DateOfBirth); err == nil {
		m.DOB = &dob
	}
	return m
}

// UpdateWantedDTO is PUT /criminals/{id}. wanted_reason is not persisted.
type UpdateWantedDTO struct {
	IsWanted     bool   `json:"is_wanted"`
	WantedReason string `json:"wanted_reason"`
}

type CreatedResponse struct {
	Message    string `json:"message"`
	CriminalID int64  `json:"criminal_id"`
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
