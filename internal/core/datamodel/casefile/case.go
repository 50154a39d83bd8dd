package casefile

import "time"

const (
	StatusOpen               = "Open"
	StatusUnderInvestigation = "Under Investigation"
	StatusClosed             = "Closed"
	StatusChargesheeted      = "Chargesheeted"
)

type Case struct {
	ID                int64     `gorm:"column:case_id;primaryKey"`
	FIRNumber         string    `gorm:"column:fir_number;uniqueIndex;not null"`
	CrimeTypeID       int64     `gorm:"column:crime_type_id;not null"`
	PrimaryAccusedID  *int64    `gorm:"column:primary_accused_id"`
	City              *string   `gorm:"column:city"`
	District          *string   `gorm:"column:district"`
	PoliceStationCode *string   `gorm:"column:police_station_code"`
	Latitude          *float64  `gorm:"column:latitude"`
	Longitude         *float64  `gorm:"column:longitude"`
	Description       *string   `gorm:"column:description"`
	Status            string    `gorm:"column:status;not null"`
	DateReported      time.Time `gorm:"column:date_reported;not null"`
}

func (Case) TableName() string {
	return "cases"
}
