package staff

import (
	"context"
	"errors"

	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
)

// ErrBadgeTaken is returned by the repository when the badge number is
// already on the roster.
var ErrBadgeTaken = errors.New("badge number already exists")

type Staff struct {
	StaffID     int64   `json:"staff_id"`
	Name        string  `json:"name"`
	PolRank     string  `json:"pol_rank"`
	BadgeNumber string  `json:"badge_number"`
	Department  string  `json:"department"`
	Contact     string  `json:"contact"`
	IsActive    bool    `json:"is_active"`
	JoinDate    *string `json:"join_date"`
}

func FromModel(m staffDatamodel.PoliceStaff) Staff {
	s := Staff{
		StaffID:     m.ID,
		Name:        m.Name,
		PolRank:     m.PolRank,
		BadgeNumber: m.BadgeNumber,
		Department:  m.Department,
		Contact:     m.Contact,
		IsActive:    m.IsActive,
	}
	if m.JoinDate != nil {
		d := m.JoinDate.Format(DateLayout)
		s.JoinDate = &d
	}
	return s
}

type RepositoryAPI interface {
	List(ctx context.Context) ([]staffDatamodel.PoliceStaff, error)
	BadgeExists(ctx context.Context, badge string) (bool, error)
	Create(ctx context.Context, s *staffDatamodel.PoliceStaff) error
}

type Auditor interface {
	Record(ctx context.Context, userID int64, action, table string, recordID int64)
}
