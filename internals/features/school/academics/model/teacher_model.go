// internals/features/school/academics/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;primaryKey"`

	// Akun login (opsional, one-to-one ke users)
	TeacherUserID *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"column:teacher_user_id;type:uuid;uniqueIndex:uq_teachers_user_id"`

	TeacherFirstName string `json:"teacher_first_name" gorm:"column:teacher_first_name;type:varchar(100);not null"`
	TeacherLastName  string `json:"teacher_last_name"  gorm:"column:teacher_last_name;type:varchar(100);not null"`

	TeacherCreatedAt time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}

func (m *TeacherModel) FullName() string {
	return m.TeacherFirstName + " " + m.TeacherLastName
}
