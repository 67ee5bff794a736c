// file: internals/features/school/schedules/service/toggle.go
package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
	calService "presensiku_backend/internals/features/school/calendar/service"
	model "presensiku_backend/internals/features/school/schedules/model"
)

type ToggleResult struct {
	Status     string    `json:"status"` // created | deleted
	CourseID   uuid.UUID `json:"course_id"`
	PeriodID   uuid.UUID `json:"period_id"`
	ISOWeekday int       `json:"iso_weekday"`
	Lessons    int       `json:"lessons"` // dibuat (created) / dihapus (deleted)
}

// Serialisasi per-triple: dua toggle untuk triple yang sama tidak boleh
// sama-sama melihat "rule belum ada" lalu double-create. Triple berbeda
// tetap jalan paralel.
var toggleLocks sync.Map // key string → *sync.Mutex

func lockTriple(courseID, periodID uuid.UUID, isoWeekday int) func() {
	key := fmt.Sprintf("%s|%s|%d", courseID, periodID, isoWeekday)
	muAny, _ := toggleLocks.LoadOrStore(key, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ToggleSchedule: transisi atomik Absent ⇄ Active untuk satu triple
// (course, iso_weekday, period).
//
//   - Absent → Active: buat rule lalu materialisasi di jendela tahun ajaran.
//   - Active → Absent: hapus semua lesson milik rule (weekday dicocokkan dari
//     tanggal) berikut attendance record-nya, lalu hapus rule.
//
// Validasi gagal → tidak ada perubahan state. Seluruh lookup-decide-act
// berjalan dalam SATU transaksi: commit semua atau tidak sama sekali.
func ToggleSchedule(db *gorm.DB, cal *calService.SchoolCalendar, courseID, periodID uuid.UUID, isoWeekday int) (*ToggleResult, error) {
	if isoWeekday < 1 || isoWeekday > 7 {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "iso_weekday harus di rentang 1..7")
	}

	var course academicsModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, err
	}
	var period academicsModel.PeriodModel
	if err := db.First(&period, "period_id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Period tidak ditemukan")
		}
		return nil, err
	}

	unlock := lockTriple(courseID, periodID, isoWeekday)
	defer unlock()

	res := &ToggleResult{
		CourseID:   courseID,
		PeriodID:   periodID,
		ISOWeekday: isoWeekday,
	}

	from, toExclusive := cal.MaterializationWindow()

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var rule model.WeeklyScheduleModel
		err := tx.Where(
			"weekly_schedule_course_id = ? AND weekly_schedule_period_id = ? AND weekly_schedule_iso_weekday = ?",
			courseID, periodID, isoWeekday,
		).First(&rule).Error

		switch {
		case err == nil:
			// Active → Absent
			deleted, derr := deleteLessonsForRule(tx, &rule, from, toExclusive)
			if derr != nil {
				return derr
			}
			if derr := tx.Delete(&rule).Error; derr != nil {
				return derr
			}
			res.Status = "deleted"
			res.Lessons = deleted
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			// Absent → Active
			rule = model.WeeklyScheduleModel{
				WeeklyScheduleCourseID:   courseID,
				WeeklyScheduleISOWeekday: isoWeekday,
				WeeklySchedulePeriodID:   periodID,
			}
			if cerr := tx.Create(&rule).Error; cerr != nil {
				return cerr
			}
			gen := &LessonMaterializer{DB: tx, Cal: cal}
			created, merr := gen.Materialize(&rule, from, toExclusive)
			if merr != nil {
				return merr
			}
			res.Status = "created"
			res.Lessons = created
			return nil

		default:
			return err
		}
	})
	if txErr != nil {
		return nil, txErr
	}
	return res, nil
}

// deleteLessonsForRule menghapus semua lesson (course, period) di jendela
// [from, toExclusive) yang tanggalnya jatuh di weekday rule, berikut
// attendance record-nya. Teardown HARUS menjangkau seluruh rentang yang bisa
// dihasilkan create — termasuk tanggal yang sudah lewat, makanya di sini
// tidak ada filter future.
func deleteLessonsForRule(tx *gorm.DB, rule *model.WeeklyScheduleModel, from, toExclusive time.Time) (int, error) {
	var lessons []model.LessonModel
	if err := tx.Where(
		"lesson_course_id = ? AND lesson_period_id = ? AND lesson_date >= ? AND lesson_date < ?",
		rule.WeeklyScheduleCourseID, rule.WeeklySchedulePeriodID, from, toExclusive,
	).Find(&lessons).Error; err != nil {
		return 0, err
	}

	ids := make([]uuid.UUID, 0, len(lessons))
	for _, l := range lessons {
		if ISOWeekday(l.LessonDate) == rule.WeeklyScheduleISOWeekday {
			ids = append(ids, l.LessonID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	// hapus anak dulu supaya perilaku sama di driver tanpa FK cascade
	if err := tx.Where("attendance_record_lesson_id IN ?", ids).
		Delete(&model.AttendanceRecordModel{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Where("lesson_id IN ?", ids).Delete(&model.LessonModel{}).Error; err != nil {
		return 0, err
	}
	return len(ids), nil
}
