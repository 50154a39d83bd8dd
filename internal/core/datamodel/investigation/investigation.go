package investigation

import "time"

type Investigation struct {
	ID            int64     `gorm:"column:investigation_id;primaryKey"`
	CaseID        int64     `gorm:"column:case_id;uniqueIndex;not null"`
	AssignedTo    int64     `gorm:"column:assigned_to;not null"`
	Status        string    `gorm:"column:status;not null"`
	ProgressNotes *string   `gorm:"column:progress_notes"`
	LastUpdated   time.Time `gorm:"column:last_updated;not null"`
}

func (Investigation) TableName() string {
	return "investigations"
}
