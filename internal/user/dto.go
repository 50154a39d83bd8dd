package user

import (
	"strings"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type CreateUserDTO struct {
	Username string               `json:"username"`
	Password string               `json:"password"`
	RoleID   transport.FlexibleID `json:"role_id"`
	StaffID  transport.FlexibleID `json:"staff_id"`
}

func (d *CreateUserDTO) Normalize() {
	d.Username = strings.TrimSpace(d.Username)
}

func (d CreateUserDTO) Validate() error {
	if d.Username == "" || d.Password == "" || !d.RoleID.Set || !d.StaffID.Set {
		return internal.NewValidationError("Username, password, role and staff are required", internal.ErrCodeMissingFields)
	}
	if !d.RoleID.Valid || !d.StaffID.Valid {
		return internal.NewValidationError("Invalid role or staff ID", internal.ErrCodeInvalidID)
	}
	return nil
}

// UpdateUserDTO changes the role and/or the staff active flag.
type UpdateUserDTO struct {
	RoleID   transport.FlexibleID `json:"role_id"`
	IsActive *bool                `json:"is_active"`
}

func (d UpdateUserDTO) Validate() error {
	if d.RoleID.Set && !d.RoleID.Valid {
		return internal.NewValidationError("Invalid role ID", internal.ErrCodeInvalidID)
	}
	if !d.RoleID.Set && d.IsActive == nil {
		return internal.ErrNoFieldsToUpdate
	}
	return nil
}

type CreatedResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}
