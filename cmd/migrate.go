package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/database"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

const migrationsTable = "schema_migrations"

var (
	migrateRollback bool
	migrateStatus   bool
	migrateDir      string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the goose migrations under db/migrations",
	Long: `Runs pending migrations against postgres. --rollback reverts the latest
one and --status lists what has been applied. A sqlite database gets its
schema from the models instead.`,
	RunE: runMigration,
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "revert the latest applied migration")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "print the applied state of every migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func migrationCommand() string {
	switch {
	case migrateStatus:
		return "status"
	case migrateRollback:
		return "down"
	default:
		return "up"
	}
}

func runMigration(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	lg := setupLogger(cfg)

	if cfg.Database.Driver == internal.DriverSQLite {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)
		lg.Info("sqlite schema created from models", "source", cfg.Database.Source)
		return database.AutoMigrate(db)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.Source)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()
	goose.SetTableName(migrationsTable)

	command := migrationCommand()
	lg.Info("running migrations", "command", command, "dir", migrateDir)
	if err := goose.RunContext(context.Background(), command, db, migrateDir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
