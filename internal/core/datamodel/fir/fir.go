package fir

import "time"

type FIR struct {
	ID                 int64     `gorm:"column:fir_id;primaryKey"`
	FIRNumber          string    `gorm:"column:fir_number;uniqueIndex;not null"`
	CaseID             int64     `gorm:"column:case_id;not null"`
	ComplainantName    string    `gorm:"column:complainant_name;not null"`
	ComplainantContact *string   `gorm:"column:complainant_contact"`
	ComplainantAddress *string   `gorm:"column:complainant_address"`
	PlaceOfOffence     *string   `gorm:"column:place_of_offence"`
	PoliceStation      *string   `gorm:"column:police_station"`
	DateFiled          time.Time `gorm:"column:date_filed;not null"`
}

func (FIR) TableName() string {
	return "firs"
}
