package investigation

import (
	"strings"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type CreateInvestigationDTO struct {
	CaseID             transport.FlexibleID `json:"case_id"`
	AssignedTo         transport.FlexibleID `json:"assigned_to"`
	InvestigationNotes string               `json:"investigation_notes"`
	Status             string               `json:"status"`
}

func (d CreateInvestigationDTO) Validate() error {
	if !d.CaseID.Set || !d.AssignedTo.Set {
		return internal.NewValidationError("Case ID and assigned officer are required", internal.ErrCodeMissingFields)
	}
	if !d.CaseID.Valid || !d.AssignedTo.Valid {
		return internal.NewValidationError("Invalid case ID or officer ID", internal.ErrCodeInvalidID)
	}
	return nil
}

// Resolve returns the status and notes to store, honouring a legacy prefix
// when no explicit status was sent.
func (d CreateInvestigationDTO) Resolve() (status string, notes *string, err error) {
	status, text := resolveStatus(d.Status, d.InvestigationNotes)
	if status == "" {
		status = StatusOpen
	}
	if !IsValidStatus(status) {
		return "", nil, errInvalidStatus
	}
	return status, optional(text), nil
}

type UpdateInvestigationDTO struct {
	Status             string               `json:"status"`
	InvestigationNotes *string              `json:"investigation_notes"`
	AssignedTo         transport.FlexibleID `json:"assigned_to"`
}

func (d UpdateInvestigationDTO) Validate() error {
	if d.AssignedTo.Set && !d.AssignedTo.Valid {
		return internal.NewValidationError("Invalid officer ID", internal.ErrCodeInvalidID)
	}
	return nil
}

// Fields returns the column updates without last_updated.
func (d UpdateInvestigationDTO) Fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	notes := ""
	if d.InvestigationNotes != nil {
		notes = *d.InvestigationNotes
	}
	status, text := resolveStatus(d.Status, notes)
	if status != "" {
		if !IsValidStatus(status) {
			return nil, errInvalidStatus
		}
		fields["status"] = status
	}
	if d.InvestigationNotes != nil {
		fields["progress_notes"] = optional(text)
	}
	if d.AssignedTo.Valid {
		fields["assigned_to"] = d.AssignedTo.Value
	}
	return fields, nil
}

type CreatedResponse struct {
	Message         string `json:"message"`
	InvestigationID int64  `json:"investigation_id"`
}

var errInvalidStatus = internal.NewValidationError("Invalid investigation status", internal.ErrCodeInvalidStatus)

func resolveStatus(explicit, notes string) (string, string) {
	if explicit != "" {
		return strings.TrimSpace(explicit), notes
	}
	if status, rest, ok := SplitLegacyNotes(notes); ok {
		return status, rest
	}
	return "", notes
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
