package role

type Role struct {
	ID   int64  `gorm:"column:role_id;primaryKey"`
	Name string `gorm:"column:role_name;uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "roles"
}
