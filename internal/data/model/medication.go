package model

const TableNameMedication = "medications"

type Medication struct {
	BaseModel
	Name          string         `gorm:"column:name;not null;index:idx_medication_name_dosage"`
	FunctionMed   string         `gorm:"column:function_med"`
	Dosage        string         `gorm:"column:dosage;index:idx_medication_name_dosage"`
	Status        bool           `gorm:"column:status;not null;index"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicationID"`
}

func (*Medication) TableName() string { return TableNameMedication }
