// internals/features/school/schedules/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
)

// Go-side enum buat attendance_status
type AttendanceStatus string

const (
	AttendanceUnregistered AttendanceStatus = "unregistered"
	AttendancePresent      AttendanceStatus = "present"
	AttendanceAbsent       AttendanceStatus = "absent"
	AttendanceLate         AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceUnregistered, AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Placeholder presensi per (student, lesson). Dibuat 'unregistered' saat
// materialisasi; unique pair adalah satu-satunya pagar anti-duplikat.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"column:attendance_record_id;type:uuid;primaryKey"`

	AttendanceRecordStudentID uuid.UUID                    `json:"attendance_record_student_id" gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:uq_attendance_records_student_lesson"`
	Student                   *academicsModel.StudentModel `json:"-" gorm:"foreignKey:AttendanceRecordStudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	AttendanceRecordLessonID uuid.UUID    `json:"attendance_record_lesson_id" gorm:"column:attendance_record_lesson_id;type:uuid;not null;uniqueIndex:uq_attendance_records_student_lesson"`
	Lesson                   *LessonModel `json:"-" gorm:"foreignKey:AttendanceRecordLessonID;references:LessonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	AttendanceRecordStatus      AttendanceStatus `json:"attendance_record_status"       gorm:"column:attendance_record_status;type:varchar(20);not null;default:'unregistered'"`
	AttendanceRecordMinutesLate *int             `json:"attendance_record_minutes_late,omitempty" gorm:"column:attendance_record_minutes_late"`

	AttendanceRecordMarkedAt time.Time `json:"attendance_record_marked_at" gorm:"column:attendance_record_marked_at;not null;autoCreateTime"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	if m.AttendanceRecordStatus == "" {
		m.AttendanceRecordStatus = AttendanceUnregistered
	}
	return nil
}
