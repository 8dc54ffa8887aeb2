package model

import "time"

const TableNameUser = "users"

type User struct {
	BaseModel
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	BirthDate    time.Time `gorm:"column:birth_date"`
	Status       bool      `gorm:"column:status;not null;index"`
}

func (*User) TableName() string { return TableNameUser }
