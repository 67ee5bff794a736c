// internals/features/school/academics/dto/academics_dto.go
package dto

import "github.com/google/uuid"

/* ===================== Roster ===================== */

type CreateTeacherRequest struct {
	TeacherFirstName string     `json:"teacher_first_name" validate:"required,max=50"`
	TeacherLastName  string     `json:"teacher_last_name"  validate:"required,max=50"`
	TeacherUserID    *uuid.UUID `json:"teacher_user_id"    validate:"omitempty"`
}

type CreateSectionRequest struct {
	SectionName  string `json:"section_name"  validate:"required,max=50"`
	SectionLevel int16  `json:"section_level" validate:"required,min=1,max=12"`
}

type CreateStudentRequest struct {
	StudentEmail     string     `json:"student_email"      validate:"required,email,max=255"`
	StudentFirstName string     `json:"student_first_name" validate:"required,max=50"`
	StudentLastName  string     `json:"student_last_name"  validate:"required,max=50"`
	StudentSectionID *uuid.UUID `json:"student_section_id" validate:"omitempty"`
}

type CreateClassroomRequest struct {
	ClassroomName       string   `json:"classroom_name"       validate:"required,max=50"`
	ClassroomCapacity   *int     `json:"classroom_capacity"   validate:"omitempty,min=1"`
	ClassroomFacilities []string `json:"classroom_facilities" validate:"omitempty,dive,max=50"`
}

/* ===================== Courses & periods ===================== */

type CreateCourseRequest struct {
	CourseName           string     `json:"course_name"            validate:"required,max=100"`
	CourseLevel          int16      `json:"course_level"           validate:"required,min=1,max=12"`
	CourseTeacherID      *uuid.UUID `json:"course_teacher_id"      validate:"omitempty"`
	CourseWeeklySessions *int16     `json:"course_weekly_sessions" validate:"omitempty,min=1,max=7"`
}

// Jam dikirim "HH:MM" (24 jam).
type CreatePeriodRequest struct {
	PeriodName      string `json:"period_name"       validate:"required,max=50"`
	PeriodStartTime string `json:"period_start_time" validate:"required,datetime=15:04"`
	PeriodEndTime   string `json:"period_end_time"   validate:"required,datetime=15:04"`
}

/* ===================== Enrolments ===================== */

type CreateEnrolmentRequest struct {
	EnrolmentStudentID uuid.UUID `json:"enrolment_student_id" validate:"required"`
	EnrolmentCourseID  uuid.UUID `json:"enrolment_course_id"  validate:"required"`
}

// Hari pertemuan efektif sebuah course (hasil agregasi rules).
type CourseMeetingDaysResponse struct {
	CourseID    uuid.UUID `json:"course_id"`
	MeetingDays []int64   `json:"meeting_days"`
}
