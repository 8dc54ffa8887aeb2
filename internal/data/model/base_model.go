package model

import (
	"time"

	"github.com/sober-studio/medtrack/internal/pkg/idgen"
	"gorm.io/gorm"
)

// BaseModel 通用字段；软删除由各表的 status 字段表达
type BaseModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

var globalIDGen idgen.IDGenerator

func SetIDGenerator(g idgen.IDGenerator) { globalIDGen = g }

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID != 0 {
		return nil
	}
	if globalIDGen == nil {
		return nil
	}
	id, err := globalIDGen.NextID()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}
