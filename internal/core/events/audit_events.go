package events

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeAuditRecorded = "audit.recorded"

// AuditRecorded is emitted once per audited mutation or login.
type AuditRecorded struct {
	ID        string
	UserID    int64
	Action    string
	Table     string
	RecordID  int64
	Timestamp time.Time
}

func NewAuditRecorded(userID int64, action, table string, recordID int64) AuditRecorded {
	return AuditRecorded{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Table:     table,
		RecordID:  recordID,
		Timestamp: time.Now().UTC(),
	}
}

func (e AuditRecorded) EventType() string { return EventTypeAuditRecorded }
func (e AuditRecorded) EventID() string   { return e.ID }
