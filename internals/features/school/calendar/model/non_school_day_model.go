// internals/features/school/calendar/model/non_school_day_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hari libur tunggal di dalam tahun ajaran (unik per tanggal).
type NonSchoolDayModel struct {
	NonSchoolDayID     uuid.UUID `json:"non_school_day_id"     gorm:"column:non_school_day_id;type:uuid;primaryKey"`
	NonSchoolDayDate   time.Time `json:"non_school_day_date"   gorm:"column:non_school_day_date;type:date;not null;uniqueIndex:uq_non_school_days_date"`
	NonSchoolDayReason *string   `json:"non_school_day_reason,omitempty" gorm:"column:non_school_day_reason;type:varchar(200)"`

	NonSchoolDayCreatedAt time.Time `json:"non_school_day_created_at" gorm:"column:non_school_day_created_at;not null;autoCreateTime"`
}

func (NonSchoolDayModel) TableName() string { return "non_school_days" }

func (m *NonSchoolDayModel) BeforeCreate(tx *gorm.DB) error {
	if m.NonSchoolDayID == uuid.Nil {
		m.NonSchoolDayID = uuid.New()
	}
	return nil
}
