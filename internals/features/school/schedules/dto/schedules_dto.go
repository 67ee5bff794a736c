// internals/features/school/schedules/dto/schedules_dto.go
package dto

import "github.com/google/uuid"

// Satu endpoint dua arah: rule belum ada -> create + materialize,
// rule sudah ada -> delete + bersihkan lesson yang dimilikinya.
type ToggleScheduleRequest struct {
	CourseID   uuid.UUID `json:"course_id"   validate:"required"`
	PeriodID   uuid.UUID `json:"period_id"   validate:"required"`
	ISOWeekday int       `json:"iso_weekday" validate:"required,min=1,max=7"`
}

type ToggleScheduleResponse struct {
	Status     string    `json:"status"` // created | deleted
	CourseID   uuid.UUID `json:"course_id"`
	PeriodID   uuid.UUID `json:"period_id"`
	ISOWeekday int       `json:"iso_weekday"`
	Lessons    int       `json:"lessons"`
}

type MarkAttendanceRequest struct {
	Status      string `json:"status"       validate:"required,oneof=unregistered present absent late"`
	MinutesLate *int   `json:"minutes_late" validate:"omitempty,min=1"`
}

type BackfillResponse struct {
	Created int `json:"created"`
}
