package model

import "time"

const TableNamePrescription = "prescriptions"

type Prescription struct {
	BaseModel
	UserID       int64       `gorm:"column:user_id;not null;index"`
	MedicationID int64       `gorm:"column:medication_id;not null;index"`
	Observation  string      `gorm:"column:observation"`
	Frequency    string      `gorm:"column:frequency"`
	StartDate    time.Time   `gorm:"column:start_date"`
	EndDate      time.Time   `gorm:"column:end_date"`
	Status       bool        `gorm:"column:status;not null;index"`
	Medication   *Medication `gorm:"foreignKey:MedicationID"`
}

func (*Prescription) TableName() string { return TableNamePrescription }
