package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "presensiku_backend/internals/features/school/calendar/model"
)

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

	require.NoError(t, db.AutoMigrate(&model.AcademicYearModel{}, &model.NonSchoolDayModel{}))
	return db
}

func TestLoadSchoolCalendar(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&model.AcademicYearModel{
		AcademicYearName:      "2024/2025",
		AcademicYearStartDate: date(2024, 9, 1),
		AcademicYearEndDate:   date(2025, 6, 20),
	}).Error)
	require.NoError(t, db.Create(&model.NonSchoolDayModel{
		NonSchoolDayDate: date(2024, 12, 25),
	}).Error)

	today := date(2024, 12, 1)
	cal, err := LoadSchoolCalendar(db, today)
	require.NoError(t, err)

	assert.Equal(t, date(2024, 9, 1), cal.YearStart)
	assert.Equal(t, date(2025, 6, 20), cal.YearEnd)
	assert.Equal(t, today, cal.Today)
	assert.False(t, cal.IsSchoolDay(date(2024, 12, 25)), "libur dari DB ikut terbaca")
	assert.True(t, cal.IsSchoolDay(date(2024, 12, 24)))
}

func TestLoadSchoolCalendar_NoYear(t *testing.T) {
	db := openTestDB(t)

	_, err := LoadSchoolCalendar(db, time.Now())
	require.ErrorIs(t, err, ErrNoAcademicYear)
}
