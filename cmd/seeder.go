package cmd

import (
	"fmt"
	"log"
	"time"

	categoryDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/crimecategory"
	roleDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/role"
	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
	"github.com/frahmantamala/crms/internal/database"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	clearData    bool
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed roles, crime categories and one login per role for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := openDatabase(cfg)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer database.Close(db)

		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if clearData {
				if err := clearSeedData(tx); err != nil {
					return err
				}
			}
			if err := seedRoles(tx); err != nil {
				return err
			}
			if err := seedCategories(tx); err != nil {
				return err
			}
			return seedAccounts(tx, string(hash))
		})
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		fmt.Println("Seed completed. Every seeded account uses the password given by --password.")
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
	seedCmd.Flags().StringVar(&seedPassword, "password", "secret123", "password for the seeded accounts")
}

var seedRoleNames = []string{"Admin", "Superintendent", "CID", "NCO"}

func seedRoles(tx *gorm.DB) error {
	for i, name := range seedRoleNames {
		role := roleDatamodel.Role{ID: int64(i + 1), Name: name}
		if err := tx.Where(roleDatamodel.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

func seedCategories(tx *gorm.DB) error {
	categories := []categoryDatamodel.CrimeCategory{
		{CrimeName: "Murder", IPCSection: "302", SeverityLevel: "High"},
		{CrimeName: "Robbery", IPCSection: "392", SeverityLevel: "High"},
		{CrimeName: "Theft", IPCSection: "379", SeverityLevel: "Medium"},
		{CrimeName: "Cheating", IPCSection: "420", SeverityLevel: "Medium"},
		{CrimeName: "Assault", IPCSection: "351", SeverityLevel: "Medium"},
		{CrimeName: "Criminal Trespass", IPCSection: "441", SeverityLevel: "Low"},
	}
	for _, c := range categories {
		if err := tx.Where(categoryDatamodel.CrimeCategory{CrimeName: c.CrimeName}).FirstOrCreate(&c).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", c.CrimeName, err)
		}
	}
	fmt.Printf("Seeded %d crime categories\n", len(categories))
	return nil
}

type seedAccount struct {
	username string
	name     string
	rank     string
	badge    string
	dept     string
	roleID   int64
}

var defaultAccounts = []seedAccount{
	{"admin", "Arjun Mehta", "Commissioner", "ADM-001", "Administration", 1},
	{"supt", "Kavita Rao", "Superintendent", "SP-101", "District Office", 2},
	{"cid", "Rahul Verma", "Inspector", "CID-201", "Crime Investigation", 3},
	{"nco", "Sunil Patil", "Head Constable", "NCO-301", "Station Duty", 4},
}

func seedAccounts(tx *gorm.DB, hash string) error {
	joined := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, a := range defaultAccounts {
		staff := staffDatamodel.PoliceStaff{
			Name:        a.name,
			PolRank:     a.rank,
			BadgeNumber: a.badge,
			Department:  a.dept,
			IsActive:    true,
			JoinDate:    &joined,
		}
		if err := tx.Where(staffDatamodel.PoliceStaff{BadgeNumber: a.badge}).FirstOrCreate(&staff).Error; err != nil {
			return fmt.Errorf("seed staff %s: %w", a.badge, err)
		}

		u := userDatamodel.User{
			Username:     a.username,
			PasswordHash: hash,
			RoleID:       a.roleID,
			StaffID:      staff.ID,
		}
		res := tx.Where(userDatamodel.User{Username: a.username}).FirstOrCreate(&u)
		if res.Error != nil {
			return fmt.Errorf("seed user %s: %w", a.username, res.Error)
		}
		if res.RowsAffected == 0 {
			fmt.Println("user already exists:", a.username)
			continue
		}
		fmt.Println("Seeded user:", a.username)
	}
	return nil
}

// clearSeedData removes everything except roles, children first.
func clearSeedData(tx *gorm.DB) error {
	for _, table := range []string{"audit_logs", "investigations", "firs", "cases", "criminals", "users", "police_staff", "crime_categories"} {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	fmt.Println("Cleared existing data")
	return nil
}
