package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/crms/internal"
	auditDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/audit"
	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	categoryDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/crimecategory"
	criminalDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/criminal"
	firDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/fir"
	investigationDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/investigation"
	roleDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/role"
	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table in dependency order.
var Models = []interface{}{
	&roleDatamodel.Role{},
	&staffDatamodel.PoliceStaff{},
	&userDatamodel.User{},
	&categoryDatamodel.CrimeCategory{},
	&criminalDatamodel.Criminal{},
	&caseDatamodel.Case{},
	&firDatamodel.FIR{},
	&investigationDatamodel.Investigation{},
	&auditDatamodel.LogEntry{},
}

// Open connects with the configured driver and applies the pool limits.
func Open(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case internal.DriverSQLite:
		dialector = sqlite.Open(cfg.Source)
	case internal.DriverPostgres, "":
		dialector = postgres.Open(cfg.Source)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Driver == internal.DriverSQLite {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(min(cfg.MaxIdleConns, maxOpen))
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "driver", cfg.Driver, "max_open_conns", maxOpen)
	return db, nil
}

// OpenInMemory returns a migrated sqlite database private to the caller.
func OpenInMemory() (*gorm.DB, error) {
	db, err := Open(internal.DatabaseConfig{
		Driver:       internal.DriverSQLite,
		Source:       ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates the schema for development databases. Postgres
// deployments use the goose migrations under db/migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SQLDB exposes the pooled handle for sqlx and health checks.
func SQLDB(db *gorm.DB) (*sql.DB, error) {
	return db.DB()
}

// DriverName maps the gorm dialect to the database/sql driver name sqlx expects for rebinding.
func DriverName(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "sqlite3"
	}
	return "pgx"
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
