// Package dbtest builds throwaway sqlite databases with the standard roles
// and a few reference rows for repository and router tests.
package dbtest

import (
	"fmt"
	"time"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	categoryDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/crimecategory"
	roleDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/role"
	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
	"github.com/frahmantamala/crms/internal/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin          int64 = 1
	RoleSuperintendent int64 = 2
	RoleCID            int64 = 3
	RoleNCO            int64 = 4
)

// New returns a migrated in-memory database seeded with the four roles.
func New() (*gorm.DB, error) {
	db, err := database.OpenInMemory()
	if err != nil {
		return nil, err
	}
	roles := []roleDatamodel.Role{
		{ID: RoleAdmin, Name: "Admin"},
		{ID: RoleSuperintendent, Name: "Superintendent"},
		{ID: RoleCID, Name: "CID"},
		{ID: RoleNCO, Name: "NCO"},
	}
	if err := db.Create(&roles).Error; err != nil {
		return nil, err
	}
	return db, nil
}

func Staff(db *gorm.DB, name, badge string, active bool) (*staffDatamodel.PoliceStaff, error) {
	joined := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &staffDatamodel.PoliceStaff{
		Name:        name,
		PolRank:     "Inspector",
		BadgeNumber: badge,
		Department:  "Crime Branch",
		IsActive:    active,
		JoinDate:    &joined,
	}
	if err := db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// User creates an active staff member and a login for it. bcrypt.MinCost keeps tests fast.
func User(db *gorm.DB, username, password string, roleID int64) (*userDatamodel.User, error) {
	s, err := Staff(db, "Officer "+username, "B-"+username, true)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := &userDatamodel.User{
		Username:     username,
		PasswordHash: string(hash),
		RoleID:       roleID,
		StaffID:      s.ID,
	}
	if err := db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func Category(db *gorm.DB, name, section, severity string) (*categoryDatamodel.CrimeCategory, error) {
	c := &categoryDatamodel.CrimeCategory{CrimeName: name, IPCSection: section, SeverityLevel: severity}
	return c, db.Create(c).Error
}

// Case inserts a case directly, bypassing FIR registration.
func Case(db *gorm.DB, firNumber string, crimeTypeID int64, status, city string, reported time.Time) (*caseDatamodel.Case, error) {
	c := &caseDatamodel.Case{
		FIRNumber:    firNumber,
		CrimeTypeID:  crimeTypeID,
		City:         &city,
		Status:       status,
		DateReported: reported,
	}
	if err := db.Create(c).Error; err != nil {
		return nil, fmt.Errorf("create case %s: %w", firNumber, err)
	}
	return c, nil
}

func Count(db *gorm.DB, table string) int64 {
	var n int64
	db.Table(table).Count(&n)
	return n
}
