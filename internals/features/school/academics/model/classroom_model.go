// internals/features/school/academics/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID       uuid.UUID `json:"classroom_id"   gorm:"column:classroom_id;type:uuid;primaryKey"`
	ClassroomName     string    `json:"classroom_name" gorm:"column:classroom_name;type:varchar(100);not null"`
	ClassroomCapacity *int      `json:"classroom_capacity,omitempty" gorm:"column:classroom_capacity"`

	// ["projector","lab","ac", ...]
	ClassroomFacilities datatypes.JSON `json:"classroom_facilities" gorm:"column:classroom_facilities;type:jsonb;not null;default:'[]'"`

	ClassroomCreatedAt time.Time `json:"classroom_created_at" gorm:"column:classroom_created_at;not null;autoCreateTime"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomID == uuid.Nil {
		m.ClassroomID = uuid.New()
	}
	return nil
}
