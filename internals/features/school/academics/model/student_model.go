// internals/features/school/academics/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey"`

	StudentEmail     string `json:"student_email"      gorm:"column:student_email;type:varchar(255);not null"`
	StudentFirstName string `json:"student_first_name" gorm:"column:student_first_name;type:varchar(100);not null"`
	StudentLastName  string `json:"student_last_name"  gorm:"column:student_last_name;type:varchar(100);not null"`

	// Kelas/rombel (SET NULL saat section dihapus)
	StudentSectionID *uuid.UUID    `json:"student_section_id,omitempty" gorm:"column:student_section_id;type:uuid;index"`
	Section          *SectionModel `json:"-" gorm:"foreignKey:StudentSectionID;references:SectionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
