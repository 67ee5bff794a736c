// file: internals/features/school/calendar/service/calendar.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	model "presensiku_backend/internals/features/school/calendar/model"
)

// ErrNoAcademicYear: tidak ada tahun ajaran terkonfigurasi. Ini cacat
// konfigurasi (precondition), bukan error request biasa.
var ErrNoAcademicYear = errors.New("academic year belum dikonfigurasi")

const dayKeyLayout = "2006-01-02"

// DateOnly menjatuhkan komponen jam ke tengah malam UTC supaya
// perbandingan tanggal konsisten lintas driver/zona.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SchoolCalendar: kalender sekolah yang di-inject eksplisit ke engine.
// Today adalah tanggal referensi (bukan wall clock) supaya hasil
// materialisasi deterministik dan mudah dites.
type SchoolCalendar struct {
	YearStart time.Time // inklusif
	YearEnd   time.Time // inklusif
	Today     time.Time

	nonSchool map[string]struct{}
}

func NewSchoolCalendar(yearStart, yearEnd, today time.Time, offDays []time.Time) *SchoolCalendar {
	cal := &SchoolCalendar{
		YearStart: DateOnly(yearStart),
		YearEnd:   DateOnly(yearEnd),
		Today:     DateOnly(today),
		nonSchool: make(map[string]struct{}, len(offDays)),
	}
	for _, d := range offDays {
		cal.nonSchool[DateOnly(d).Format(dayKeyLayout)] = struct{}{}
	}
	return cal
}

// IsSchoolDay: d di dalam [YearStart, YearEnd] dan bukan hari libur.
func (cal *SchoolCalendar) IsSchoolDay(d time.Time) bool {
	d = DateOnly(d)
	if d.Before(cal.YearStart) || d.After(cal.YearEnd) {
		return false
	}
	_, off := cal.nonSchool[d.Format(dayKeyLayout)]
	return !off
}

func (cal *SchoolCalendar) IsFutureSchoolDay(d time.Time) bool {
	return cal.IsSchoolDay(d) && DateOnly(d).After(cal.Today)
}

func (cal *SchoolCalendar) IsPastSchoolDay(d time.Time) bool {
	return cal.IsSchoolDay(d) && DateOnly(d).Before(cal.Today)
}

// MaterializationWindow: jendela [start, end+1d) yang dipakai driver
// materialisasi dan teardown. Keduanya WAJIB memakai jendela yang sama.
func (cal *SchoolCalendar) MaterializationWindow() (from, toExclusive time.Time) {
	return cal.YearStart, cal.YearEnd.AddDate(0, 0, 1)
}

// LoadSchoolCalendar membangun SchoolCalendar dari DB dengan tanggal
// referensi eksplisit. Tepat satu academic year diasumsikan ada;
// kalau tidak ada → ErrNoAcademicYear.
func LoadSchoolCalendar(db *gorm.DB, today time.Time) (*SchoolCalendar, error) {
	var year model.AcademicYearModel
	if err := db.Order("academic_year_created_at ASC").First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAcademicYear
		}
		return nil, err
	}

	var offRows []model.NonSchoolDayModel
	if err := db.Find(&offRows).Error; err != nil {
		return nil, err
	}
	offDays := make([]time.Time, 0, len(offRows))
	for _, r := range offRows {
		offDays = append(offDays, r.NonSchoolDayDate)
	}

	return NewSchoolCalendar(year.AcademicYearStartDate, year.AcademicYearEndDate, today, offDays), nil
}
