package postgres

import (
	"context"

	"github.com/frahmantamala/crms/internal/audit"
	auditDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/audit"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) audit.RepositoryAPI {
	return &AuditRepository{db: db}
}

// Insert is the only write path to audit_logs.
func (r *AuditRepository) Insert(ctx context.Context, entry *auditDatamodel.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]audit.LogView, error) {
	var logs []audit.LogView
	err := r.db.WithContext(ctx).
		Table("audit_logs al").
		Select(`al.log_id, al.user_id, al.action, al.table_name, al.record_id, al.timestamp,
			u.username, ps.name AS staff_name, r.role_name`).
		Joins("JOIN users u ON al.user_id = u.user_id").
		Joins("JOIN police_staff ps ON u.staff_id = ps.staff_id").
		Joins("JOIN roles r ON u.role_id = r.role_id").
		Order("al.timestamp DESC, al.log_id DESC").
		Limit(limit).
		Scan(&logs).Error
	return logs, err
}
