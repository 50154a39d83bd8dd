package postgres

import (
	"context"
	"errors"

	roleDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/role"
	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
	"github.com/frahmantamala/crms/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]user.View, error) {
	var rows []user.View
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.user_id, u.username, u.created_at, u.last_login,
			r.role_name, ps.name AS staff_name, ps.badge_number, ps.is_active`).
		Joins("JOIN roles r ON u.role_id = r.role_id").
		Joins("JOIN police_staff ps ON u.staff_id = ps.staff_id").
		Order("u.created_at DESC, u.user_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *UserRepository) Roles(ctx context.Context) ([]user.Role, error) {
	var roles []user.Role
	err := r.db.WithContext(ctx).
		Model(&roleDatamodel.Role{}).
		Select("role_id, role_name").
		Order("role_name ASC").
		Scan(&roles).Error
	return roles, err
}

func (r *UserRepository) exists(ctx context.Context, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error
	return n > 0, err
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, &userDatamodel.User{}, "username = ?", username)
}

func (r *UserRepository) RoleExists(ctx context.Context, roleID int64) (bool, error) {
	return r.exists(ctx, &roleDatamodel.Role{}, "role_id = ?", roleID)
}

func (r *UserRepository) StaffExists(ctx context.Context, staffID int64) (bool, error) {
	return r.exists(ctx, &staffDatamodel.PoliceStaff{}, "staff_id = ?", staffID)
}

func (r *UserRepository) StaffHasUser(ctx context.Context, staffID int64) (bool, error) {
	return r.exists(ctx, &userDatamodel.User{}, "staff_id = ?", staffID)
}

func (r *UserRepository) Create(ctx context.Context, u *userDatamodel.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return user.ErrDuplicate
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *userDatamodel.User, roleID *int64, active *bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if roleID != nil {
			if err := tx.Model(&userDatamodel.User{}).
				Where("user_id = ?", u.ID).
				Update("role_id", *roleID).Error; err != nil {
				return err
			}
		}
		if active != nil {
			if err := tx.Model(&staffDatamodel.PoliceStaff{}).
				Where("staff_id = ?", u.StaffID).
				Update("is_active", *active).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) SetStaffActive(ctx context.Context, staffID int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&staffDatamodel.PoliceStaff{}).
		Where("staff_id = ?", staffID).
		Update("is_active", active).Error
}
