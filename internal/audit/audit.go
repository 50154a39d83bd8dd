package audit

import (
	"context"
	"time"

	auditDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/audit"
)

const (
	ActionLogin      = "LOGIN"
	ActionLogout     = "LOGOUT"
	ActionCreate     = "CREATE"
	ActionUpdate     = "UPDATE"
	ActionLink       = "LINK"
	ActionDeactivate = "DEACTIVATE"
	ActionExport     = "EXPORT"
)

const (
	TableUsers          = "users"
	TableCases          = "cases"
	TableCriminals      = "criminals"
	TableInvestigations = "investigations"
	TableStaff          = "police_staff"
	TableFIR            = "firs"
)

// ListLimit caps GET /audit-logs.
const ListLimit = 500

// LogView is one audit row joined with the acting user.
type LogView struct {
	LogID     int64     `json:"log_id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name"`
	RecordID  int64     `json:"record_id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	StaffName string    `json:"staff_name"`
	RoleName  string    `json:"role_name"`
}

type RepositoryAPI interface {
	Insert(ctx context.Context, entry *auditDatamodel.LogEntry) error
	ListRecent(ctx context.Context, limit int) ([]LogView, error)
}
