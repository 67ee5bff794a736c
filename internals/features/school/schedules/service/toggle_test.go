package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSchedule_CreatePath(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 2)
	cal := twoWeekCalendar()

	res, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 3)
	require.NoError(t, err)
	assert.Equal(t, "created", res.Status)
	assert.Equal(t, 2, res.Lessons)

	assert.EqualValues(t, 1, countRules(t, db))
	assert.EqualValues(t, 2, countLessons(t, db))
	assert.EqualValues(t, 4, countAttendance(t, db), "2 lesson x 2 siswa")
}

func TestToggleSchedule_DeletePath(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 2)
	cal := twoWeekCalendar()

	_, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 3)
	require.NoError(t, err)

	res, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 3)
	require.NoError(t, err)
	assert.Equal(t, "deleted", res.Status)
	assert.Equal(t, 2, res.Lessons)

	// zero residue: rule, lesson, dan attendance record habis
	assert.EqualValues(t, 0, countRules(t, db))
	assert.EqualValues(t, 0, countLessons(t, db))
	assert.EqualValues(t, 0, countAttendance(t, db))
}

func TestToggleSchedule_Alternation(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 1)
	cal := twoWeekCalendar()

	want := []string{"created", "deleted", "created", "deleted"}
	for _, expected := range want {
		res, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 2)
		require.NoError(t, err)
		assert.Equal(t, expected, res.Status)
	}
	assert.EqualValues(t, 0, countRules(t, db))
	assert.EqualValues(t, 0, countLessons(t, db))
}

func TestToggleSchedule_DeleteOnlyOwnWeekday(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 0)
	cal := twoWeekCalendar()

	// dua rule beda weekday, course+period sama
	_, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 2)
	require.NoError(t, err)
	_, err = ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 4)
	require.NoError(t, err)
	require.EqualValues(t, 4, countLessons(t, db))

	// matikan rule Selasa: pertemuan Kamis tidak boleh ikut terhapus
	res, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, 2)
	require.NoError(t, err)
	assert.Equal(t, "deleted", res.Status)
	assert.Equal(t, 2, res.Lessons)
	assert.EqualValues(t, 2, countLessons(t, db))
	assert.EqualValues(t, 1, countRules(t, db))
}

func TestToggleSchedule_InvalidWeekday(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 1)
	cal := twoWeekCalendar()

	for _, wd := range []int{0, 8, -1} {
		_, err := ToggleSchedule(db, cal, f.Course.CourseID, f.Period.PeriodID, wd)
		require.Error(t, err)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	}
	// validasi gagal = tidak ada perubahan state
	assert.EqualValues(t, 0, countRules(t, db))
	assert.EqualValues(t, 0, countLessons(t, db))
	assert.EqualValues(t, 0, countAttendance(t, db))
}

func TestToggleSchedule_UnknownCourse(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 0)
	cal := twoWeekCalendar()

	_, err := ToggleSchedule(db, cal, uuid.New(), f.Period.PeriodID, 3)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.EqualValues(t, 0, countRules(t, db))
}

func TestToggleSchedule_UnknownPeriod(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 0)
	cal := twoWeekCalendar()

	_, err := ToggleSchedule(db, cal, f.Course.CourseID, uuid.New(), 3)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestToggleSchedule_DeleteCoversPastLessons(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db, 0)

	// create saat Today masih sebelum jendela → dua pertemuan
	calEarly := twoWeekCalendar()
	_, err := ToggleSchedule(db, calEarly, f.Course.CourseID, f.Period.PeriodID, 3)
	require.NoError(t, err)
	require.EqualValues(t, 2, countLessons(t, db))

	// delete saat Today sudah di tengah jendela: pertemuan yang sudah lewat
	// tetap ikut terhapus (teardown tidak memfilter future)
	calLate := midWeekCalendar()
	res, err := ToggleSchedule(db, calLate, f.Course.CourseID, f.Period.PeriodID, 3)
	require.NoError(t, err)
	assert.Equal(t, "deleted", res.Status)
	assert.Equal(t, 2, res.Lessons)
	assert.EqualValues(t, 0, countLessons(t, db))
}
