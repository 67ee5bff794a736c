// internals/features/school/calendar/dto/calendar_dto.go
package dto

import (
	"strings"
	"time"
)

func ParseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Create-or-replace: sistem membaca "THE academic year", bukan himpunan.
type UpsertAcademicYearRequest struct {
	AcademicYearName      string `json:"academic_year_name"       validate:"required,max=50"`
	AcademicYearStartDate string `json:"academic_year_start_date" validate:"required,datetime=2006-01-02"`
	AcademicYearEndDate   string `json:"academic_year_end_date"   validate:"required,datetime=2006-01-02"`
}

type CreateNonSchoolDayRequest struct {
	NonSchoolDayDate   string  `json:"non_school_day_date"   validate:"required,datetime=2006-01-02"`
	NonSchoolDayReason *string `json:"non_school_day_reason" validate:"omitempty,max=200"`
}
