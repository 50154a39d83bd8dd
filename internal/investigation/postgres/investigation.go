package postgres

import (
	"context"
	"errors"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	investigationDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/investigation"
	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	"github.com/frahmantamala/crms/internal/investigation"
	"gorm.io/gorm"
)

type InvestigationRepository struct {
	db *gorm.DB
}

func NewInvestigationRepository(db *gorm.DB) *InvestigationRepository {
	return &InvestigationRepository{db: db}
}

func (r *InvestigationRepository) List(ctx context.Context) ([]investigation.View, error) {
	var rows []investigation.View
	err := r.db.WithContext(ctx).
		Table("investigations i").
		Select(`i.investigation_id, i.case_id, i.assigned_to, i.status, i.progress_notes,
			i.progress_notes AS investigation_notes, i.last_updated,
			c.fir_number, cc.crime_name, ps.name AS officer_name`).
		Joins("JOIN cases c ON i.case_id = c.case_id").
		Joins("JOIN crime_categories cc ON c.crime_type_id = cc.crime_type_id").
		Joins("JOIN police_staff ps ON i.assigned_to = ps.staff_id").
		Order("i.last_updated DESC, i.investigation_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *InvestigationRepository) count(ctx context.Context, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error
	return n > 0, err
}

func (r *InvestigationRepository) CaseExists(ctx context.Context, caseID int64) (bool, error) {
	return r.count(ctx, &caseDatamodel.Case{}, "case_id = ?", caseID)
}

func (r *InvestigationRepository) OfficerActive(ctx context.Context, staffID int64) (bool, error) {
	return r.count(ctx, &staffDatamodel.PoliceStaff{}, "staff_id = ? AND is_active = ?", staffID, true)
}

func (r *InvestigationRepository) ExistsForCase(ctx context.Context, caseID int64) (bool, error) {
	return r.count(ctx, &investigationDatamodel.Investigation{}, "case_id = ?", caseID)
}

func (r *InvestigationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.count(ctx, &investigationDatamodel.Investigation{}, "investigation_id = ?", id)
}

func (r *InvestigationRepository) Create(ctx context.Context, inv *investigationDatamodel.Investigation) error {
	err := r.db.WithContext(ctx).Create(inv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return investigation.ErrAlreadyExists
	}
	return err
}

func (r *InvestigationRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&investigationDatamodel.Investigation{}).
		Where("investigation_id = ?", id).
		Updates(fields).Error
}
