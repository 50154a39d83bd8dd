package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/crms/internal/category"
	categoryDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/crimecategory"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*categoryDatamodel.CrimeCategory, error) {
	var categories []*categoryDatamodel.CrimeCategory
	err := r.db.WithContext(ctx).Order("crime_name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*categoryDatamodel.CrimeCategory, error) {
	var c categoryDatamodel.CrimeCategory
	err := r.db.WithContext(ctx).Where("crime_type_id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
