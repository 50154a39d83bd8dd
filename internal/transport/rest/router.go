package rest

import (
	"github.com/frahmantamala/crms/internal/auth"
	"github.com/frahmantamala/crms/internal/transport/middleware"
	"github.com/frahmantamala/crms/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// NewRouter mounts the API under /api. Every route except login requires a
// bearer token; mutations are further gated per the permission table.
func NewRouter(c *Container) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.CORS(c.Config.Server.AllowedOrigins))
	router.Use(middleware.RecoveryMiddleware(c.Logger))
	router.Use(middleware.LoggingMiddleware(c.Logger))
	if c.Metrics != nil {
		router.Use(middleware.Metrics(c.Metrics))
	}

	if c.Metrics != nil && c.Config.Observability.Metrics.Enabled {
		router.Handle(c.Config.Observability.Metrics.Path, c.Metrics.Handler())
	}

	router.Get("/openapi.yml", swagger.SpecHandler)
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", c.Health.healthCheckHandler)
		r.Get("/ping", c.Health.pingHandler)
		r.Post("/auth/login", c.Auth.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(c.Auth.AuthMiddleware)
			pr.Use(middleware.UserContext)
			registerProtected(pr, c, c.RBAC)
		})
	})

	return router
}

func registerProtected(r chi.Router, c *Container, rbac *auth.RBACAuthorization) {
	r.Post("/auth/logout", c.Auth.Logout)
	r.Get("/auth/me", c.Auth.Me)
	r.Get("/permissions", c.Auth.Permissions)

	r.Get("/dashboard/stats", c.Dashboard.Stats)
	r.Get("/crime-categories", c.Categories.GetCategories)
	r.Get("/roles", c.Users.Roles)

	r.Route("/cases", func(cr chi.Router) {
		cr.Get("/", c.Cases.List)
		cr.Get("/active", c.Cases.ListActive)
		cr.Get("/{id}", c.Cases.Get)
		cr.With(rbac.RequirePermission(auth.PermEditCase)).Put("/{id}", c.Cases.Update)
	})

	r.Route("/criminals", func(cr chi.Router) {
		cr.Get("/", c.Criminals.List)
		cr.With(rbac.RequirePermission(auth.PermCreateCriminal)).Post("/", c.Criminals.Create)
		cr.With(rbac.RequirePermission(auth.PermEditCriminal)).Put("/{id}", c.Criminals.UpdateWanted)
	})

	r.Route("/investigations", func(ir chi.Router) {
		ir.Get("/", c.Investigation.List)
		ir.With(rbac.RequirePermission(auth.PermCreateInvestigation)).Post("/", c.Investigation.Create)
		ir.With(rbac.RequirePermission(auth.PermEditInvestigation)).Put("/{id}", c.Investigation.Update)
	})

	r.Route("/staff", func(sr chi.Router) {
		sr.Get("/", c.Staff.List)
		sr.With(rbac.RequireRoles(auth.RoleAdmin, auth.RoleSuperintendent)).Post("/", c.Staff.Create)
	})

	r.With(rbac.RequirePermission(auth.PermCreateFIR)).Post("/fir", c.FIR.Register)

	r.Route("/users", func(ur chi.Router) {
		ur.Use(rbac.RequirePermission(auth.PermManageUsers))
		ur.Get("/", c.Users.List)
		ur.Post("/", c.Users.Create)
		ur.Put("/{id}", c.Users.Update)
		ur.Delete("/{id}", c.Users.Deactivate)
	})

	r.With(rbac.RequirePermission(auth.PermViewAuditLogs)).Get("/audit-logs", c.Audit.List)
	r.With(rbac.RequirePermission(auth.PermGenerateReports)).Get("/reports/cases", c.Reports.ExportCases)
}
