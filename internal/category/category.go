package category

import (
	"context"

	categoryDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/crimecategory"
)

// Category is a crime classification with its penal code section.
type Category struct {
	CrimeTypeID   int64  `json:"crime_type_id"`
	CrimeName     string `json:"crime_name"`
	IPCSection    string `json:"ipc_section"`
	SeverityLevel string `json:"severity_level"`
}

func FromDataModel(c *categoryDatamodel.CrimeCategory) Category {
	return Category{
		CrimeTypeID:   c.ID,
		CrimeName:     c.CrimeName,
		IPCSection:    c.IPCSection,
		SeverityLevel: c.SeverityLevel,
	}
}

func ToDataModel(c Category) *categoryDatamodel.CrimeCategory {
	return &categoryDatamodel.CrimeCategory{
		ID:            c.CrimeTypeID,
		CrimeName:     c.CrimeName,
		IPCSection:    c.IPCSection,
		SeverityLevel: c.SeverityLevel,
	}
}

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*categoryDatamodel.CrimeCategory, error)
	// GetByID returns nil when the category does not exist.
	GetByID(ctx context.Context, id int64) (*categoryDatamodel.CrimeCategory, error)
}
