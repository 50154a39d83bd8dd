package staff

import (
	"strings"
	"time"

	"github.com/frahmantamala/crms/internal"
	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
)

const DateLayout = "2006-01-02"

type CreateStaffDTO struct {
	Name        string `json:"name"`
	PolRank     string `json:"pol_rank"`
	BadgeNumber string `json:"badge_number"`
	Contact     string `json:"contact"`
	Department  string `json:"department"`
	JoinDate    string `json:"join_date"`
}

func (d *CreateStaffDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.PolRank = strings.TrimSpace(d.PolRank)
	d.BadgeNumber = strings.TrimSpace(d.BadgeNumber)
}

func (d CreateStaffDTO) Validate() error {
	if d.Name == "" || d.PolRank == "" || d.BadgeNumber == "" {
		return internal.NewValidationError("Name, rank, and badge number are required", internal.ErrCodeMissingFields)
	}
	if d.JoinDate != "" {
		if _, err := time.Parse(DateLayout, d.JoinDate); err != nil {
			return internal.NewValidationError("Invalid join_date", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

// ToModel builds an active staff record.
func (d CreateStaffDTO) ToModel() *staffDatamodel.PoliceStaff {
	m := &staffDatamodel.PoliceStaff{
		Name:        d.Name,
		PolRank:     d.PolRank,
		BadgeNumber: d.BadgeNumber,
		Department:  strings.TrimSpace(d.Department),
		Contact:     strings.TrimSpace(d.Contact),
		IsActive:    true,
	}
	if jd, err := time.Parse(DateLayout, d.JoinDate); err == nil {
		m.JoinDate = &jd
	}
	return m
}

type CreatedResponse struct {
	Message string `json:"message"`
	StaffID int64  `json:"staff_id"`
}
