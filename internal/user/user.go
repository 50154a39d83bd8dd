package user

import (
	"context"
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
)

// View is a user account joined with its role and staff record. IsActive
// comes from the staff record.
type View struct {
	UserID      int64      `json:"user_id" gorm:"column:user_id"`
	Username    string     `json:"username" gorm:"column:username"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	LastLogin   *time.Time `json:"last_login" gorm:"column:last_login"`
	RoleName    string     `json:"role_name" gorm:"column:role_name"`
	StaffName   string     `json:"staff_name" gorm:"column:staff_name"`
	BadgeNumber string     `json:"badge_number" gorm:"column:badge_number"`
	IsActive    bool       `json:"is_active" gorm:"column:is_active"`
}

type Role struct {
	RoleID      int64    `json:"role_id" gorm:"column:role_id"`
	RoleName    string   `json:"role_name" gorm:"column:role_name"`
	Permissions []string `json:"permissions" gorm:"-"`
}

// PermissionSource is satisfied by auth.PermissionTable.
type PermissionSource interface {
	Permissions(role string) []string
}

// ErrDuplicate is returned by the repository when the username or the staff
// member is already bound to another user.
var ErrDuplicate = errors.New("user already exists")

type RepositoryAPI interface {
	List(ctx context.Context) ([]View, error)
	Roles(ctx context.Context) ([]Role, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	RoleExists(ctx context.Context, roleID int64) (bool, error)
	StaffExists(ctx context.Context, staffID int64) (bool, error)
	StaffHasUser(ctx context.Context, staffID int64) (bool, error)
	Create(ctx context.Context, u *userDatamodel.User) error
	// GetByID returns nil when the user does not exist.
	GetByID(ctx context.Context, id int64) (*userDatamodel.User, error)
	// Update applies the non-nil changes to the user and its staff record in one transaction.
	Update(ctx context.Context, u *userDatamodel.User, roleID *int64, active *bool) error
	SetStaffActive(ctx context.Context, staffID int64, active bool) error
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
