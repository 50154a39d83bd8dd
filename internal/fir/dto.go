package fir

import (
	"strings"
	"time"

	"github.com/frahmantamala/crms/internal"
	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	firDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/fir"
	"github.com/frahmantamala/crms/internal/transport"
)

// RegisterFIRDTO holds the complaint and the case it opens.
type RegisterFIRDTO struct {
	FIRNumber          string `json:"FIR_number"`
	ComplainantName    string `json:"complainant_name"`
	ComplainantContact string `json:"complainant_contact"`
	ComplainantAddress string `json:"complainant_address"`
	PlaceOfOffence     string `json:"place_of_offence"`
	PoliceStation      string `json:"police_station"`
	DateFiled          string `json:"date_filed"`

	CrimeTypeID       transport.FlexibleID `json:"crime_type_id"`
	City              string               `json:"city"`
	District          string               `json:"district"`
	PoliceStationCode string               `json:"police_station_code"`
	Latitude          *float64             `json:"latitude"`
	Longitude         *float64             `json:"longitude"`
	Description       string               `json:"description"`
	DateReported      string               `json:"date_reported"`
}

var (
	errMissingFields    = internal.NewValidationError("Missing required FIR or case fields", internal.ErrCodeMissingFields)
	errInvalidReported  = internal.NewValidationError("Invalid date_reported", internal.ErrCodeInvalidDate)
	errInvalidFiled     = internal.NewValidationError("Invalid date_filed", internal.ErrCodeInvalidDate)
	errInvalidCrimeType = internal.NewValidationError("Invalid crime_type_id", internal.ErrCodeInvalidID)
)

func (d *RegisterFIRDTO) Normalize() {
	d.FIRNumber = strings.TrimSpace(d.FIRNumber)
	d.ComplainantName = strings.TrimSpace(d.ComplainantName)
	d.DateReported = strings.TrimSpace(d.DateReported)
	d.DateFiled = strings.TrimSpace(d.DateFiled)
}

func (d RegisterFIRDTO) Validate() error {
	if d.FIRNumber == "" || d.ComplainantName == "" || !d.CrimeTypeID.Set || d.DateReported == "" {
		return errMissingFields
	}
	if !d.CrimeTypeID.Valid {
		return errInvalidCrimeType
	}
	if _, err := ParseDate(d.DateReported); err != nil {
		return errInvalidReported
	}
	if d.DateFiled != "" {
		if _, err := ParseDate(d.DateFiled); err != nil {
			return errInvalidFiled
		}
	}
	return nil
}

// ToModels builds the Open case and its FIR. Call Validate first.
func (d RegisterFIRDTO) ToModels(now time.Time) (*caseDatamodel.Case, *firDatamodel.FIR) {
	reported, _ := ParseDate(d.DateReported)
	filed := now
	if d.DateFiled != "" {
		filed, _ = ParseDate(d.DateFiled)
	}

	c := &caseDatamodel.Case{
		FIRNumber:         d.FIRNumber,
		CrimeTypeID:       d.CrimeTypeID.Value,
		City:              optional(d.City),
		District:          optional(d.District),
		PoliceStationCode: optional(d.PoliceStationCode),
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Description:       optional(d.Description),
		Status:            caseDatamodel.StatusOpen,
		DateReported:      reported,
	}
	f := &firDatamodel.FIR{
		FIRNumber:          d.FIRNumber,
		ComplainantName:    d.ComplainantName,
		ComplainantContact: optional(d.ComplainantContact),
		ComplainantAddress: optional(d.ComplainantAddress),
		PlaceOfOffence:     optional(d.PlaceOfOffence),
		PoliceStation:      optional(d.PoliceStation),
		DateFiled:          filed,
	}
	return c, f
}

type RegisteredResponse struct {
	Message string `json:"message"`
	CaseID  int64  `json:"case_id"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05"}

// ParseDate accepts a plain date, an RFC 3339 timestamp or the value of an
// HTML datetime-local input. Results are UTC.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
