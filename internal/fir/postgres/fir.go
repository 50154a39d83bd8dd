package postgres

import (
	"context"
	"errors"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	firDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/fir"
	"github.com/frahmantamala/crms/internal/fir"
	"gorm.io/gorm"
)

type FIRRepository struct {
	db *gorm.DB
}

func NewFIRRepository(db *gorm.DB) *FIRRepository {
	return &FIRRepository{db: db}
}

func (r *FIRRepository) Register(ctx context.Context, c *caseDatamodel.Case, f *firDatamodel.FIR) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&caseDatamodel.Case{}).Where("fir_number = ?", c.FIRNumber).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			if err := tx.Model(&firDatamodel.FIR{}).Where("fir_number = ?", f.FIRNumber).Count(&n).Error; err != nil {
				return err
			}
		}
		if n > 0 {
			return fir.ErrDuplicateFIR
		}

		if err := tx.Create(c).Error; err != nil {
			return err
		}
		f.CaseID = c.ID
		return tx.Create(f).Error
	})
	// a concurrent registration can win between the count and the insert
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fir.ErrDuplicateFIR
	}
	return err
}
