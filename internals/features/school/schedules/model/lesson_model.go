// internals/features/school/schedules/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
)

// Satu pertemuan konkret hasil materialisasi weekly schedule.
// Sengaja TANPA unique (course, period, date) dan tanpa FK ke aturan asalnya:
// teardown merekonstruksi kepemilikan dari (course, period, weekday-of-date).
type LessonModel struct {
	LessonID uuid.UUID `json:"lesson_id" gorm:"column:lesson_id;type:uuid;primaryKey"`

	LessonCourseID uuid.UUID                   `json:"lesson_course_id" gorm:"column:lesson_course_id;type:uuid;not null;index"`
	Course         *academicsModel.CourseModel `json:"-" gorm:"foreignKey:LessonCourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Snapshot pengampu saat materialisasi (bukan live dari course)
	LessonTeacherID *uuid.UUID                   `json:"lesson_teacher_id,omitempty" gorm:"column:lesson_teacher_id;type:uuid"`
	Teacher         *academicsModel.TeacherModel `json:"-" gorm:"foreignKey:LessonTeacherID;references:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	LessonPeriodID uuid.UUID                   `json:"lesson_period_id" gorm:"column:lesson_period_id;type:uuid;not null;index"`
	Period         *academicsModel.PeriodModel `json:"-" gorm:"foreignKey:LessonPeriodID;references:PeriodID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	LessonDate time.Time `json:"lesson_date" gorm:"column:lesson_date;type:date;not null;index"`

	LessonClassroomID *uuid.UUID                     `json:"lesson_classroom_id,omitempty" gorm:"column:lesson_classroom_id;type:uuid"`
	Classroom         *academicsModel.ClassroomModel `json:"-" gorm:"foreignKey:LessonClassroomID;references:ClassroomID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// Turunan: tanggal + jam mulai period
	LessonStartDatetime *time.Time `json:"lesson_start_datetime,omitempty" gorm:"column:lesson_start_datetime"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
