// internals/features/school/academics/model/enrolment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pendaftaran siswa ke course. Unik per (student, course).
type EnrolmentModel struct {
	EnrolmentID uuid.UUID `json:"enrolment_id" gorm:"column:enrolment_id;type:uuid;primaryKey"`

	EnrolmentStudentID uuid.UUID `json:"enrolment_student_id" gorm:"column:enrolment_student_id;type:uuid;not null;uniqueIndex:uq_enrolments_student_course"`
	EnrolmentCourseID  uuid.UUID `json:"enrolment_course_id"  gorm:"column:enrolment_course_id;type:uuid;not null;uniqueIndex:uq_enrolments_student_course"`

	Student *StudentModel `json:"-" gorm:"foreignKey:EnrolmentStudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Course  *CourseModel  `json:"-" gorm:"foreignKey:EnrolmentCourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	EnrolmentCreatedAt time.Time `json:"enrolment_created_at" gorm:"column:enrolment_created_at;not null;autoCreateTime"`
}

func (EnrolmentModel) TableName() string { return "enrolments" }

func (m *EnrolmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrolmentID == uuid.Nil {
		m.EnrolmentID = uuid.New()
	}
	return nil
}
