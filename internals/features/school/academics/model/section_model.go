// internals/features/school/academics/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionModel struct {
	SectionID    uuid.UUID `json:"section_id"    gorm:"column:section_id;type:uuid;primaryKey"`
	SectionName  string    `json:"section_name"  gorm:"column:section_name;type:varchar(100);not null"`
	SectionLevel int16     `json:"section_level" gorm:"column:section_level;not null"`

	SectionCreatedAt time.Time `json:"section_created_at" gorm:"column:section_created_at;not null;autoCreateTime"`
}

func (SectionModel) TableName() string { return "sections" }

func (m *SectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SectionID == uuid.Nil {
		m.SectionID = uuid.New()
	}
	return nil
}
