package cases

import (
	"slices"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

// UpdateCaseDTO carries the two mutable fields. An empty status and a
// missing description both mean "leave unchanged"; "description": null
// clears the column.
type UpdateCaseDTO struct {
	Status      string                   `json:"status"`
	Description transport.OptionalString `json:"description"`
}

func (d UpdateCaseDTO) Validate() error {
	if d.Status != "" && !slices.Contains(ValidStatuses, d.Status) {
		return internal.NewValidationError("Invalid status value", internal.ErrCodeInvalidStatus)
	}
	return nil
}

// Fields returns the column updates, empty when nothing was supplied.
func (d UpdateCaseDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if d.Status != "" {
		fields["status"] = d.Status
	}
	if d.Description.Set {
		if d.Description.Value != nil {
			fields["description"] = *d.Description.Value
		} else {
			fields["description"] = nil
		}
	}
	return fields
}
