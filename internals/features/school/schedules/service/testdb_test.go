package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
	calService "presensiku_backend/internals/features/school/calendar/service"
	model "presensiku_backend/internals/features/school/schedules/model"
)

// openTestDB: sqlite in-memory per test. Satu koneksi saja, supaya semua
// statement melihat database memory yang sama.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&academicsModel.TeacherModel{},
		&academicsModel.SectionModel{},
		&academicsModel.StudentModel{},
		&academicsModel.CourseModel{},
		&academicsModel.PeriodModel{},
		&academicsModel.ClassroomModel{},
		&academicsModel.EnrolmentModel{},
		&model.WeeklyScheduleModel{},
		&model.LessonModel{},
		&model.AttendanceRecordModel{},
	))
	return db
}

type fixture struct {
	Course   academicsModel.CourseModel
	Period   academicsModel.PeriodModel
	Teacher  academicsModel.TeacherModel
	Students []academicsModel.StudentModel
}

// seedFixture: satu course (dengan pengampu) + satu period + n siswa terdaftar.
func seedFixture(t *testing.T, db *gorm.DB, students int) fixture {
	t.Helper()

	f := fixture{
		Teacher: academicsModel.TeacherModel{
			TeacherFirstName: "Siti",
			TeacherLastName:  "Rahma",
		},
	}
	require.NoError(t, db.Create(&f.Teacher).Error)

	f.Course = academicsModel.CourseModel{
		CourseName:      "Matematika",
		CourseLevel:     7,
		CourseTeacherID: &f.Teacher.TeacherID,
	}
	require.NoError(t, db.Create(&f.Course).Error)

	f.Period = academicsModel.PeriodModel{
		PeriodName:      "Jam ke-1",
		PeriodStartTime: time.Date(0, 1, 1, 7, 30, 0, 0, time.UTC),
		PeriodEndTime:   time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&f.Period).Error)

	for i := 0; i < students; i++ {
		s := academicsModel.StudentModel{
			StudentEmail:     fmt.Sprintf("siswa%d@sekolah.test", i+1),
			StudentFirstName: fmt.Sprintf("Siswa%d", i+1),
			StudentLastName:  "Test",
		}
		require.NoError(t, db.Create(&s).Error)
		require.NoError(t, db.Create(&academicsModel.EnrolmentModel{
			EnrolmentStudentID: s.StudentID,
			EnrolmentCourseID:  f.Course.CourseID,
		}).Error)
		f.Students = append(f.Students, s)
	}
	return f
}

func countLessons(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.LessonModel{}).Count(&n).Error)
	return n
}

func countAttendance(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.AttendanceRecordModel{}).Count(&n).Error)
	return n
}

func countRules(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.WeeklyScheduleModel{}).Count(&n).Error)
	return n
}

// Kalender dua minggu [2024-09-02 Sen, 2024-09-13 Jum], Today sebelum jendela.
func twoWeekCalendar(offDays ...time.Time) *calService.SchoolCalendar {
	return calService.NewSchoolCalendar(
		date(2024, 9, 2), date(2024, 9, 13),
		date(2024, 8, 1), offDays,
	)
}

// Kalender yang sama tapi Today = Jumat 2024-09-06 (tengah jendela).
func midWeekCalendar() *calService.SchoolCalendar {
	return calService.NewSchoolCalendar(
		date(2024, 9, 2), date(2024, 9, 13),
		date(2024, 9, 6), nil,
	)
}
