package postgres

import (
	"context"
	"fmt"

	caseDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/casefile"
	"github.com/frahmantamala/crms/internal/dashboard"
	"github.com/jmoiron/sqlx"
)

const (
	totalCasesQuery      = `SELECT COUNT(*) FROM cases`
	openCasesQuery       = `SELECT COUNT(*) FROM cases WHERE status = ?`
	wantedCriminalsQuery = `SELECT COUNT(*) FROM criminals WHERE is_wanted = ?`
	activeStaffQuery     = `SELECT COUNT(*) FROM police_staff WHERE is_active = ?`
)

// DashboardRepository runs plain counts through sqlx on the shared pool.
type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Stats(ctx context.Context) (*dashboard.Stats, error) {
	var s dashboard.Stats
	counts := []struct {
		name  string
		dst   *int64
		query string
		args  []interface{}
	}{
		{"total_cases", &s.TotalCases, totalCasesQuery, nil},
		{"open_cases", &s.OpenCases, openCasesQuery, []interface{}{caseDatamodel.StatusOpen}},
		{"wanted_criminals", &s.WantedCriminals, wantedCriminalsQuery, []interface{}{true}},
		{"active_staff", &s.ActiveStaff, activeStaffQuery, []interface{}{true}},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dst, r.db.Rebind(c.query), c.args...); err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}
	return &s, nil
}
