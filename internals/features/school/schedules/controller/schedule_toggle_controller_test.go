package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
	calModel "presensiku_backend/internals/features/school/calendar/model"
	model "presensiku_backend/internals/features/school/schedules/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
		&calModel.AcademicYearModel{},
		&calModel.NonSchoolDayModel{},
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

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	v := validator.New()

	sched := NewSchedule(db, v)
	att := NewAttendance(db, v)
	backfill := NewBackfill(db, v)
	app.Post("/weekly-schedules/toggle", sched.Toggle)
	app.Get("/weekly-schedules", sched.List)
	app.Patch("/attendance-records/:id", att.Mark)
	app.Post("/attendance-records/generate-all", backfill.GenerateAttendanceRecords)

	return app, db
}

// Tahun ajaran jauh di masa depan supaya semua tanggal lolos filter future
// (controller memakai wall clock sebagai tanggal referensi).
func seedFutureYear(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&calModel.AcademicYearModel{
		AcademicYearName:      "2098/2099",
		AcademicYearStartDate: date(2098, 9, 1),
		AcademicYearEndDate:   date(2098, 9, 14),
	}).Error)
}

func seedCoursePeriod(t *testing.T, db *gorm.DB) (academicsModel.CourseModel, academicsModel.PeriodModel) {
	t.Helper()
	course := academicsModel.CourseModel{CourseName: "Fisika", CourseLevel: 8}
	require.NoError(t, db.Create(&course).Error)
	period := academicsModel.PeriodModel{
		PeriodName:      "Jam ke-2",
		PeriodStartTime: time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC),
		PeriodEndTime:   time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&period).Error)
	return course, period
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := sonic.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestToggleEndpoint_CreateThenDelete(t *testing.T) {
	app, db := newTestApp(t)
	seedFutureYear(t, db)
	course, period := seedCoursePeriod(t, db)

	body := fiber.Map{
		"course_id":   course.CourseID,
		"period_id":   period.PeriodID,
		"iso_weekday": 3,
	}

	resp := postJSON(t, app, "/weekly-schedules/toggle", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var rules int64
	require.NoError(t, db.Model(&model.WeeklyScheduleModel{}).Count(&rules).Error)
	assert.EqualValues(t, 1, rules)
	var lessons int64
	require.NoError(t, db.Model(&model.LessonModel{}).Count(&lessons).Error)
	assert.Positive(t, lessons)

	resp = postJSON(t, app, "/weekly-schedules/toggle", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Model(&model.WeeklyScheduleModel{}).Count(&rules).Error)
	assert.EqualValues(t, 0, rules)
	require.NoError(t, db.Model(&model.LessonModel{}).Count(&lessons).Error)
	assert.EqualValues(t, 0, lessons)
}

func TestToggleEndpoint_InvalidWeekday(t *testing.T) {
	app, db := newTestApp(t)
	seedFutureYear(t, db)
	course, period := seedCoursePeriod(t, db)

	resp := postJSON(t, app, "/weekly-schedules/toggle", fiber.Map{
		"course_id":   course.CourseID,
		"period_id":   period.PeriodID,
		"iso_weekday": 9,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var rules int64
	require.NoError(t, db.Model(&model.WeeklyScheduleModel{}).Count(&rules).Error)
	assert.EqualValues(t, 0, rules)
}

func TestToggleEndpoint_NoAcademicYear(t *testing.T) {
	app, db := newTestApp(t)
	course, period := seedCoursePeriod(t, db)

	resp := postJSON(t, app, "/weekly-schedules/toggle", fiber.Map{
		"course_id":   course.CourseID,
		"period_id":   period.PeriodID,
		"iso_weekday": 3,
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestAttendanceBackfill_PartialProgressSurvivesFailure(t *testing.T) {
	app, db := newTestApp(t)
	course, period := seedCoursePeriod(t, db)

	var students []academicsModel.StudentModel
	for i := 0; i < 2; i++ {
		s := academicsModel.StudentModel{
			StudentEmail:     fmt.Sprintf("siswa%d@sekolah.test", i+1),
			StudentFirstName: fmt.Sprintf("Siswa%d", i+1),
			StudentLastName:  "Test",
		}
		require.NoError(t, db.Create(&s).Error)
		require.NoError(t, db.Create(&academicsModel.EnrolmentModel{
			EnrolmentStudentID: s.StudentID,
			EnrolmentCourseID:  course.CourseID,
		}).Error)
		students = append(students, s)
	}

	l1 := model.LessonModel{
		LessonCourseID: course.CourseID,
		LessonPeriodID: period.PeriodID,
		LessonDate:     date(2024, 9, 4),
	}
	require.NoError(t, db.Create(&l1).Error)
	l2 := model.LessonModel{
		LessonCourseID: course.CourseID,
		LessonPeriodID: period.PeriodID,
		LessonDate:     date(2024, 9, 11),
	}
	require.NoError(t, db.Create(&l2).Error)

	// record untuk (siswa1, l2) sudah ada → batch berhenti di lesson kedua
	require.NoError(t, db.Create(&model.AttendanceRecordModel{
		AttendanceRecordStudentID: students[0].StudentID,
		AttendanceRecordLessonID:  l2.LessonID,
	}).Error)

	resp := postJSON(t, app, "/attendance-records/generate-all", fiber.Map{})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// backfill TIDAK atomik: 2 placeholder dari l1 tetap tersimpan
	// bersama 1 baris yang sudah ada sebelumnya
	var total int64
	require.NoError(t, db.Model(&model.AttendanceRecordModel{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)

	var l1Records int64
	require.NoError(t, db.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_lesson_id = ?", l1.LessonID).Count(&l1Records).Error)
	assert.EqualValues(t, 2, l1Records)
}

func TestMarkAttendance(t *testing.T) {
	app, db := newTestApp(t)
	_, period := seedCoursePeriod(t, db)

	course := academicsModel.CourseModel{CourseName: "Kimia", CourseLevel: 9}
	require.NoError(t, db.Create(&course).Error)
	student := academicsModel.StudentModel{
		StudentEmail:     "budi@sekolah.test",
		StudentFirstName: "Budi",
		StudentLastName:  "Santoso",
	}
	require.NoError(t, db.Create(&student).Error)
	lesson := model.LessonModel{
		LessonCourseID: course.CourseID,
		LessonPeriodID: period.PeriodID,
		LessonDate:     date(2024, 9, 4),
	}
	require.NoError(t, db.Create(&lesson).Error)
	record := model.AttendanceRecordModel{
		AttendanceRecordStudentID: student.StudentID,
		AttendanceRecordLessonID:  lesson.LessonID,
	}
	require.NoError(t, db.Create(&record).Error)

	patch := func(body any) *http.Response {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodPatch,
			"/attendance-records/"+record.AttendanceRecordID.String(), bytes.NewReader(raw))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	// late tanpa minutes_late → 422
	resp := patch(fiber.Map{"status": "late"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// minutes_late untuk status selain late → 422
	resp = patch(fiber.Map{"status": "present", "minutes_late": 5})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// status di luar enum → 422
	resp = patch(fiber.Map{"status": "sick"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// late + minutes_late → OK
	resp = patch(fiber.Map{"status": "late", "minutes_late": 10})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got model.AttendanceRecordModel
	require.NoError(t, db.First(&got, "attendance_record_id = ?", record.AttendanceRecordID).Error)
	assert.Equal(t, model.AttendanceLate, got.AttendanceRecordStatus)
	require.NotNil(t, got.AttendanceRecordMinutesLate)
	assert.Equal(t, 10, *got.AttendanceRecordMinutesLate)

	// kembali ke present: minutes_late ikut bersih
	resp = patch(fiber.Map{"status": "present"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&got, "attendance_record_id = ?", record.AttendanceRecordID).Error)
	assert.Equal(t, model.AttendancePresent, got.AttendanceRecordStatus)
	assert.Nil(t, got.AttendanceRecordMinutesLate)
}
