// internals/features/school/academics/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slot jam pelajaran (referensi immutable).
type PeriodModel struct {
	PeriodID   uuid.UUID `json:"period_id"   gorm:"column:period_id;type:uuid;primaryKey"`
	PeriodName string    `json:"period_name" gorm:"column:period_name;type:varchar(100);not null"`

	PeriodStartTime time.Time `json:"period_start_time" gorm:"column:period_start_time;not null"`
	PeriodEndTime   time.Time `json:"period_end_time"   gorm:"column:period_end_time;not null"`

	PeriodCreatedAt time.Time `json:"period_created_at" gorm:"column:period_created_at;not null;autoCreateTime"`
}

func (PeriodModel) TableName() string { return "periods" }

func (m *PeriodModel) BeforeCreate(tx *gorm.DB) error {
	if m.PeriodID == uuid.Nil {
		m.PeriodID = uuid.New()
	}
	return nil
}
