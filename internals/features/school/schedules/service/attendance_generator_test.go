package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "presensiku_backend/internals/features/school/schedules/model"
)

func createLesson(t *testing.T, db *gorm.DB, f fixture) *model.LessonModel {
	t.Helper()
	lesson := &model.LessonModel{
		LessonCourseID: f.Course.CourseID,
		LessonPeriodID: f.Period.PeriodID,
		LessonDate:     date(2024, 9, 4),
	}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func TestGenerateForLesson_OnePerEnrolledStudent(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 3)
	lesson := createLesson(t, db, f)

	created, err := GenerateForLesson(db, lesson)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	var records []model.AttendanceRecordModel
	require.NoError(t, db.Where("attendance_record_lesson_id = ?", lesson.LessonID).Find(&records).Error)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, model.AttendanceUnregistered, r.AttendanceRecordStatus)
	}
}

func TestGenerateForLesson_NoEnrolments(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 0)
	lesson := createLesson(t, db, f)

	created, err := GenerateForLesson(db, lesson)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.EqualValues(t, 0, countAttendance(t, db))
}

func TestGenerateForLesson_SecondCallHitsUniquePair(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 2)
	lesson := createLesson(t, db, f)

	_, err := GenerateForLesson(db, lesson)
	require.NoError(t, err)

	// unique (student, lesson) menolak duplikat di siswa pertama
	created, err := GenerateForLesson(db, lesson)
	require.Error(t, err)
	assert.Equal(t, 0, created)
	assert.EqualValues(t, 2, countAttendance(t, db))
}

func TestGenerateForAllLessons(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 2)
	createLesson(t, db, f)

	l2 := &model.LessonModel{
		LessonCourseID: f.Course.CourseID,
		LessonPeriodID: f.Period.PeriodID,
		LessonDate:     date(2024, 9, 11),
	}
	require.NoError(t, db.Create(l2).Error)

	total, err := GenerateForAllLessons(db)
	require.NoError(t, err)
	assert.Equal(t, 4, total, "2 lesson x 2 siswa")
}

func TestGenerateAllLessons_Backfill(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 1)
	cal := twoWeekCalendar()

	// dua rule: Rabu dan Jumat
	require.NoError(t, db.Create(newRule(f, 3)).Error)
	require.NoError(t, db.Create(newRule(f, 5)).Error)

	total, err := GenerateAllLessons(db, cal)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.EqualValues(t, 4, countLessons(t, db))
	assert.EqualValues(t, 4, countAttendance(t, db))
}
