package postgres

import (
	"context"
	"strings"

	"github.com/frahmantamala/crms/internal/cases"
	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	"gorm.io/gorm"
)

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

const viewColumns = `c.case_id, c.fir_number, c.crime_type_id, c.primary_accused_id, c.city,
	c.district, c.police_station_code, c.latitude, c.longitude, c.description, c.status,
	c.date_reported, cc.crime_name, cc.ipc_section, cc.severity_level,
	cr.name AS primary_accused_name`

func (r *CaseRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("cases c").
		Select(viewColumns).
		Joins("LEFT JOIN crime_categories cc ON c.crime_type_id = cc.crime_type_id").
		Joins("LEFT JOIN criminals cr ON c.primary_accused_id = cr.criminal_id")
}

// applyFilter adds the optional search and status conditions.
func applyFilter(q *gorm.DB, filter cases.Filter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(c.fir_number) LIKE ? OR LOWER(c.city) LIKE ? OR LOWER(cc.crime_name) LIKE ?)", term, term, term)
	}
	if filter.Status != "" {
		q = q.Where("c.status = ?", filter.Status)
	}
	return q
}

func (r *CaseRepository) List(ctx context.Context, filter cases.Filter) ([]cases.CaseView, error) {
	var rows []cases.CaseView
	err := applyFilter(r.viewQuery(ctx), filter).
		Order("c.date_reported DESC, c.case_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *CaseRepository) ListActive(ctx context.Context) ([]cases.ActiveCase, error) {
	var rows []cases.ActiveCase
	err := r.db.WithContext(ctx).
		Table("cases c").
		Select(`c.case_id, c.fir_number, cc.crime_name, c.city, c.district, c.date_reported,
			CASE WHEN c.primary_accused_id IS NOT NULL THEN ? ELSE ? END AS accused_status`,
			cases.AccusedLinked, cases.AccusedUnlinked).
		Joins("LEFT JOIN crime_categories cc ON c.crime_type_id = cc.crime_type_id").
		Where("c.status IN ?", cases.ActiveStatuses).
		Order("c.date_reported DESC, c.case_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *CaseRepository) GetByID(ctx context.Context, id int64) (*cases.CaseView, error) {
	var rows []cases.CaseView
	err := r.viewQuery(ctx).
		Where("c.case_id = ?", id).
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

func (r *CaseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&caseDatamodel.Case{}).
		Where("case_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

func (r *CaseRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&caseDatamodel.Case{}).
		Where("case_id = ?", id).
		Updates(fields).Error
}
