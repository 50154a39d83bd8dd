package crimecategory

type CrimeCategory struct {
	ID            int64  `gorm:"column:crime_type_id;primaryKey"`
	CrimeName     string `gorm:"column:crime_name;not null"`
	IPCSection    string `gorm:"column:ipc_section"`
	SeverityLevel string `gorm:"column:severity_level"`
}

func (CrimeCategory) TableName() string {
	return "crime_categories"
}
