package postgres

import (
	"context"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	criminalDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/criminal"
	"github.com/frahmantamala/crms/internal/criminal"
	"gorm.io/gorm"
)

type CriminalRepository struct {
	db *gorm.DB
}

func NewCriminalRepository(db *gorm.DB) *CriminalRepository {
	return &CriminalRepository{db: db}
}

func (r *CriminalRepository) List(ctx context.Context) ([]criminalDatamodel.Criminal, error) {
	var rows []criminalDatamodel.Criminal
	err := r.db.WithContext(ctx).Order("criminal_id DESC").Find(&rows).Error
	return rows, err
}

func (r *CriminalRepository) Create(ctx context.Context, c *criminalDatamodel.Criminal, linkCaseID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if linkCaseID > 0 {
			var existing caseDatamodel.Case
			res := tx.Select("case_id", "primary_accused_id").Where("case_id = ?", linkCaseID).Limit(1).Find(&existing)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return criminal.ErrLinkedCaseMissing
			}
			if existing.PrimaryAccusedID != nil {
				return criminal.ErrCaseAlreadyLinked
			}
		}

		c.TotalCases = 0
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if linkCaseID == 0 {
			return nil
		}

		// the IS NULL guard keeps two concurrent links from both succeeding
		res := tx.Model(&caseDatamodel.Case{}).
			Where("case_id = ? AND primary_accused_id IS NULL", linkCaseID).
			Update("primary_accused_id", c.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return criminal.ErrCaseAlreadyLinked
		}

		if err := tx.Model(c).Update("total_cases", gorm.Expr("total_cases + 1")).Error; err != nil {
			return err
		}
		c.TotalCases = 1
		return nil
	})
}

func (r *CriminalRepository) SetWanted(ctx context.Context, id int64, wanted bool) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&criminalDatamodel.Criminal{}).Where("criminal_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	err := r.db.WithContext(ctx).
		Model(&criminalDatamodel.Criminal{}).
		Where("criminal_id = ?", id).
		Update("is_wanted", wanted).Error
	return err == nil, err
}
