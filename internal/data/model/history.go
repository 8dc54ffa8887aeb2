package model

import "time"

const TableNameHistory = "histories"

// History 处方状态历史
type History struct {
	BaseModel
	PrescriptionID int64         `gorm:"column:prescription_id;not null;index"`
	CurrentDate    time.Time     `gorm:"column:current_at"`
	Status         bool          `gorm:"column:status;not null"`
	Prescription   *Prescription `gorm:"foreignKey:PrescriptionID"`
}

func (*History) TableName() string { return TableNameHistory }

// Models 需要迁移的全部模型
func Models() []interface{} {
	return []interface{}{&User{}, &Medication{}, &Prescription{}, &History{}}
}
