// internals/features/school/schedules/model/weekly_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
)

// Aturan rekurensi mingguan: "course ini bertemu di period ini tiap weekday ini".
// Identitas aturan = triple (course, iso_weekday, period); dibuat/dihapus
// hanya lewat operasi toggle.
type WeeklyScheduleModel struct {
	WeeklyScheduleID uuid.UUID `json:"weekly_schedule_id" gorm:"column:weekly_schedule_id;type:uuid;primaryKey"`

	WeeklyScheduleCourseID   uuid.UUID `json:"weekly_schedule_course_id"   gorm:"column:weekly_schedule_course_id;type:uuid;not null;uniqueIndex:uq_weekly_schedules_triple"`
	WeeklyScheduleISOWeekday int       `json:"weekly_schedule_iso_weekday" gorm:"column:weekly_schedule_iso_weekday;not null;uniqueIndex:uq_weekly_schedules_triple"` // 1..7 (ISO, Senin=1)
	WeeklySchedulePeriodID   uuid.UUID `json:"weekly_schedule_period_id"   gorm:"column:weekly_schedule_period_id;type:uuid;not null;uniqueIndex:uq_weekly_schedules_triple"`

	Course *academicsModel.CourseModel `json:"-" gorm:"foreignKey:WeeklyScheduleCourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Period *academicsModel.PeriodModel `json:"-" gorm:"foreignKey:WeeklySchedulePeriodID;references:PeriodID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	WeeklyScheduleCreatedAt time.Time `json:"weekly_schedule_created_at" gorm:"column:weekly_schedule_created_at;not null;autoCreateTime"`
}

func (WeeklyScheduleModel) TableName() string { return "weekly_schedules" }

func (m *WeeklyScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyScheduleID == uuid.Nil {
		m.WeeklyScheduleID = uuid.New()
	}
	return nil
}
