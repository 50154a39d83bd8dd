package postgres

import (
	"context"
	"errors"

	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	"github.com/frahmantamala/crms/internal/staff"
	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List orders by join date, most recent first; staff without a join date come last.
func (r *StaffRepository) List(ctx context.Context) ([]staffDatamodel.PoliceStaff, error) {
	var rows []staffDatamodel.PoliceStaff
	err := r.db.WithContext(ctx).
		Order("CASE WHEN join_date IS NULL THEN 1 ELSE 0 END, join_date DESC, staff_id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *StaffRepository) BadgeExists(ctx context.Context, badge string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&staffDatamodel.PoliceStaff{}).
		Where("badge_number = ?", badge).
		Count(&n).Error
	return n > 0, err
}

func (r *StaffRepository) Create(ctx context.Context, s *staffDatamodel.PoliceStaff) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return staff.ErrBadgeTaken
	}
	return err
}
