package audit

import "time"

// LogEntry rows are append-only.
type LogEntry struct {
	ID        int64     `gorm:"column:log_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Action    string    `gorm:"column:action;not null"`
	Table     string    `gorm:"column:table_name;not null"`
	RecordID  int64     `gorm:"column:record_id;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
}

func (LogEntry) TableName() string {
	return "audit_logs"
}
