package criminal

import "time"

type Criminal struct {
	ID               int64      `gorm:"column:criminal_id;primaryKey"`
	Name             string     `gorm:"column:name;not null"`
	Alias            *string    `gorm:"column:alias"`
	Gender           string     `gorm:"column:gender;not null"`
	DOB              *time.Time `gorm:"column:dob;type:date"`
	Address          *string    `gorm:"column:address"`
	HeightCM         *float64   `gorm:"column:height_cm"`
	WeightKG         *float64   `gorm:"column:weight_kg"`
	IdentifyingMarks *string    `gorm:"column:identifying_marks"`
	IsWanted         bool       `gorm:"column:is_wanted;not null"`
	TotalCases       int        `gorm:"column:total_cases;not null"`
}

func (Criminal) TableName() string {
	return "criminals"
}
