package user

import "time"

// User is a login account. Deactivation happens on the linked staff record.
type User struct {
	ID           int64      `gorm:"column:user_id;primaryKey"`
	Username     string     `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	RoleID       int64      `gorm:"column:role_id;not null"`
	StaffID      int64      `gorm:"column:staff_id;uniqueIndex;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	LastLogin    *time.Time `gorm:"column:last_login"`
}

func (User) TableName() string {
	return "users"
}
