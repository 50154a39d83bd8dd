package staff

import "time"

type PoliceStaff struct {
	ID          int64      `gorm:"column:staff_id;primaryKey"`
	Name        string     `gorm:"column:name;not null"`
	PolRank     string     `gorm:"column:pol_rank;not null"`
	BadgeNumber string     `gorm:"column:badge_number;uniqueIndex;not null"`
	Department  string     `gorm:"column:department"`
	Contact     string     `gorm:"column:contact"`
	IsActive    bool       `gorm:"column:is_active;not null"`
	JoinDate    *time.Time `gorm:"column:join_date;type:date"`
}

func (PoliceStaff) TableName() string {
	return "police_staff"
}
