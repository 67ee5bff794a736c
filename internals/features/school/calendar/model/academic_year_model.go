// internals/features/school/calendar/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tahun ajaran: tepat SATU baris aktif (precondition, dijaga oleh controller).
type AcademicYearModel struct {
	AcademicYearID   uuid.UUID `json:"academic_year_id"   gorm:"column:academic_year_id;type:uuid;primaryKey"`
	AcademicYearName string    `json:"academic_year_name" gorm:"column:academic_year_name;type:varchar(50);not null"`

	// Batas inklusif
	AcademicYearStartDate time.Time `json:"academic_year_start_date" gorm:"column:academic_year_start_date;type:date;not null"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"   gorm:"column:academic_year_end_date;type:date;not null"`

	AcademicYearCreatedAt time.Time `json:"academic_year_created_at" gorm:"column:academic_year_created_at;not null;autoCreateTime"`
	AcademicYearUpdatedAt time.Time `json:"academic_year_updated_at" gorm:"column:academic_year_updated_at;not null;autoUpdateTime"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicYearID == uuid.Nil {
		m.AcademicYearID = uuid.New()
	}
	return nil
}
