package rest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
	auditPostgres "github.com/frahmantamala/crms/internal/audit/postgres"
	"github.com/frahmantamala/crms/internal/auth"
	authPostgres "github.com/frahmantamala/crms/internal/auth/postgres"
	"github.com/frahmantamala/crms/internal/cases"
	casesPostgres "github.com/frahmantamala/crms/internal/cases/postgres"
	"github.com/frahmantamala/crms/internal/category"
	categoryPostgres "github.com/frahmantamala/crms/internal/category/postgres"
	"github.com/frahmantamala/crms/internal/core/events"
	"github.com/frahmantamala/crms/internal/criminal"
	criminalPostgres "github.com/frahmantamala/crms/internal/criminal/postgres"
	"github.com/frahmantamala/crms/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/crms/internal/dashboard/postgres"
	"github.com/frahmantamala/crms/internal/database"
	"github.com/frahmantamala/crms/internal/fir"
	firPostgres "github.com/frahmantamala/crms/internal/fir/postgres"
	"github.com/frahmantamala/crms/internal/investigation"
	investigationPostgres "github.com/frahmantamala/crms/internal/investigation/postgres"
	"github.com/frahmantamala/crms/internal/report"
	"github.com/frahmantamala/crms/internal/staff"
	staffPostgres "github.com/frahmantamala/crms/internal/staff/postgres"
	"github.com/frahmantamala/crms/internal/transport"
	"github.com/frahmantamala/crms/internal/user"
	userPostgres "github.com/frahmantamala/crms/internal/user/postgres"
	"github.com/frahmantamala/crms/pkg/metrics"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Container holds every handler the router mounts. Redis and Metrics may be nil.
type Container struct {
	Config      *internal.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Permissions *auth.PermissionTable

	RBAC          *auth.RBACAuthorization
	Health        *HealthHandler
	Auth          *auth.Handler
	Users         *user.Handler
	Cases         *cases.Handler
	Criminals     *criminal.Handler
	Investigation *investigation.Handler
	Staff         *staff.Handler
	FIR           *fir.Handler
	Categories    *category.Handler
	Dashboard     *dashboard.Handler
	Audit         *audit.Handler
	Reports       *report.Handler
}

func NewContainer(cfg *internal.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, lg *slog.Logger) (*Container, error) {
	permissions, err := auth.LoadPermissionTable()
	if err != nil {
		return nil, fmt.Errorf("load permission table: %w", err)
	}

	sqlDB, err := database.SQLDB(db)
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlxDB := sqlx.NewDb(sqlDB, database.DriverName(db))

	bus := events.NewEventBus(lg)
	auditRepo := auditPostgres.NewAuditRepository(db)
	audit.RegisterSubscribers(bus, auditRepo, m)
	recorder := audit.NewRecorder(bus, lg)

	var revocations auth.RevocationStore
	health := map[string]Pinger{"database": sqlxDB}
	if redisClient != nil {
		revocations = auth.NewRedisRevocationStore(redisClient)
		health["redis"] = PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	base := transport.NewBaseHandler(lg)

	authService := auth.NewService(
		authPostgres.NewRepository(db),
		auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenDuration),
		revocations,
		recorder,
		permissions,
		lg,
	)

	caseService := cases.NewService(casesPostgres.NewCaseRepository(db), recorder, lg)
	categoryService := category.NewService(categoryPostgres.NewCategoryRepository(db), lg)

	return &Container{
		Config:      cfg,
		Logger:      lg,
		Metrics:     m,
		Permissions: permissions,

		RBAC:   auth.NewRBACAuthorization(base, authService, permissions),
		Health: NewHealthHandler(health),
		Auth:   auth.NewHandler(base, authService),
		Users: user.NewHandler(base, user.NewService(
			userPostgres.NewUserRepository(db), permissions, recorder, cfg.Security.BCryptCost, lg)),
		Cases: cases.NewHandler(base, caseService),
		Criminals: criminal.NewHandler(base, criminal.NewService(
			criminalPostgres.NewCriminalRepository(db), recorder, lg)),
		Investigation: investigation.NewHandler(base, investigation.NewService(
			investigationPostgres.NewInvestigationRepository(db), recorder, lg)),
		Staff: staff.NewHandler(base, staff.NewService(
			staffPostgres.NewStaffRepository(db), recorder, lg)),
		FIR: fir.NewHandler(base, fir.NewService(
			firPostgres.NewFIRRepository(db), categoryService, recorder, lg)),
		Categories: category.NewHandler(base, categoryService),
		Dashboard: dashboard.NewHandler(base, dashboard.NewService(
			dashboardPostgres.NewDashboardRepository(sqlxDB), lg)),
		Audit:   audit.NewHandler(base, audit.NewService(auditRepo, lg)),
		Reports: report.NewHandler(base, report.NewService(caseService, recorder, lg)),
	}, nil
}
