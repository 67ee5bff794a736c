// file: internals/features/school/schedules/service/backfill.go
package service

import (
	"gorm.io/gorm"

	calService "presensiku_backend/internals/features/school/calendar/service"
	model "presensiku_backend/internals/features/school/schedules/model"
)

// GenerateAllLessons: materialisasi ulang SEMUA weekly schedule di jendela
// tahun ajaran. Untuk reseeding sekali jalan — duplicate-unsafe, jangan
// dipakai di jalur steady-state (toggle).
func GenerateAllLessons(db *gorm.DB, cal *calService.SchoolCalendar) (int, error) {
	var rules []model.WeeklyScheduleModel
	if err := db.Find(&rules).Error; err != nil {
		return 0, err
	}

	from, toExclusive := cal.MaterializationWindow()
	gen := &LessonMaterializer{DB: db, Cal: cal}

	total := 0
	for i := range rules {
		n, err := gen.Materialize(&rules[i], from, toExclusive)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
