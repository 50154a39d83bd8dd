package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/frahmantamala/crms/internal/auth"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const profileColumns = `u.user_id, u.username, u.role_id, r.role_name,
	ps.staff_id, ps.name AS staff_name, ps.badge_number, ps.department, ps.pol_rank`

func (r *Repository) profileQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users u").
		Joins("JOIN roles r ON u.role_id = r.role_id").
		Joins("JOIN police_staff ps ON u.staff_id = ps.staff_id")
}

func (r *Repository) FindActiveByUsername(ctx context.Context, username string) (*auth.Credentials, error) {
	var rows []auth.Credentials
	err := r.profileQuery(ctx).
		Select(profileColumns+", u.password_hash").
		Where("u.username = ? AND ps.is_active = ?", username, true).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *Repository) GetProfile(ctx context.Context, userID int64) (*auth.Profile, error) {
	var rows []auth.Profile
	err := r.profileQuery(ctx).
		Select(profileColumns).
		Where("u.user_id = ?", userID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *Repository) RoleNameForUser(ctx context.Context, userID int64) (string, bool, error) {
	var roleName string
	err := r.db.WithContext(ctx).
		Table("users u").
		Select("r.role_name").
		Joins("JOIN roles r ON u.role_id = r.role_id").
		Where("u.user_id = ?", userID).
		Limit(1).
		Row().Scan(&roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return roleName, true, nil
}

func (r *Repository) TouchLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&userDatamodel.User{}).
		Where("user_id = ?", userID).
		Update("last_login", at).Error
}
