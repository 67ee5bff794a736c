// internals/features/school/academics/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID    uuid.UUID `json:"course_id"    gorm:"column:course_id;type:uuid;primaryKey"`
	CourseName  string    `json:"course_name"  gorm:"column:course_name;type:varchar(100);not null"`
	CourseLevel int16     `json:"course_level" gorm:"column:course_level;not null"`

	// Pengampu (SET NULL saat teacher dihapus); lesson menyimpan snapshot-nya
	CourseTeacherID *uuid.UUID    `json:"course_teacher_id,omitempty" gorm:"column:course_teacher_id;type:uuid;index"`
	Teacher         *TeacherModel `json:"-" gorm:"foreignKey:CourseTeacherID;references:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// Target jumlah pertemuan per minggu (informasional)
	CourseWeeklySessions *int16 `json:"course_weekly_sessions,omitempty" gorm:"column:course_weekly_sessions"`

	CourseCreatedAt time.Time `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
