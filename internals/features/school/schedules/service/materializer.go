// file: internals/features/school/schedules/service/materializer.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
	calService "presensiku_backend/internals/features/school/calendar/service"
	model "presensiku_backend/internals/features/school/schedules/model"
)

// LessonMaterializer mengekspansi satu weekly schedule menjadi baris lesson
// bertanggal + placeholder presensi per siswa terdaftar.
type LessonMaterializer struct {
	DB  *gorm.DB
	Cal *calService.SchoolCalendar
}

// Materialize membuat satu lesson per tanggal hasil WeekdayOccurrences yang
// lolos IsFutureSchoolDay, lalu langsung men-generate attendance record-nya.
// Return jumlah lesson yang dibuat.
//
// CATATAN: sengaja TIDAK ada cek existing — memanggil dua kali untuk rentang
// yang sama menghasilkan lesson ganda (tidak ada unique constraint di lesson).
// Perilaku ini dipertahankan apa adanya; jangan "diperbaiki" diam-diam.
func (g *LessonMaterializer) Materialize(rule *model.WeeklyScheduleModel, from, toExclusive time.Time) (int, error) {
	var course academicsModel.CourseModel
	if err := g.DB.First(&course, "course_id = ?", rule.WeeklyScheduleCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return 0, err
	}
	var period academicsModel.PeriodModel
	if err := g.DB.First(&period, "period_id = ?", rule.WeeklySchedulePeriodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Period tidak ditemukan")
		}
		return 0, err
	}

	// Snapshot pengampu sekali di awal, bukan per tanggal
	teacherID := course.CourseTeacherID

	created := 0
	for d := range WeekdayOccurrences(from, toExclusive, rule.WeeklyScheduleISOWeekday, g.Cal.IsFutureSchoolDay) {
		start := time.Date(d.Year(), d.Month(), d.Day(),
			period.PeriodStartTime.Hour(), period.PeriodStartTime.Minute(), 0, 0, time.UTC)

		lesson := model.LessonModel{
			LessonCourseID:      course.CourseID,
			LessonTeacherID:     teacherID,
			LessonPeriodID:      period.PeriodID,
			LessonDate:          calService.DateOnly(d),
			LessonStartDatetime: &start,
		}
		if err := g.DB.Create(&lesson).Error; err != nil {
			return created, err
		}
		if _, err := GenerateForLesson(g.DB, &lesson); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
