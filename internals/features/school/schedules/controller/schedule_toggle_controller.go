// file: internals/features/school/schedules/controller/schedule_toggle_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calsvc "presensiku_backend/internals/features/school/calendar/service"
	d "presensiku_backend/internals/features/school/schedules/dto"
	m "presensiku_backend/internals/features/school/schedules/model"
	svc "presensiku_backend/internals/features/school/schedules/service"
	helper "presensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchedule(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

// POST /api/a/weekly-schedules/toggle
func (ctl *ScheduleController) Toggle(c *fiber.Ctx) error {
	var req d.ToggleScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	cal, err := calsvc.LoadSchoolCalendar(ctl.DB, time.Now())
	if err != nil {
		if errors.Is(err, calsvc.ErrNoAcademicYear) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Tahun ajaran belum dikonfigurasi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	res, err := svc.ToggleSchedule(ctl.DB, cal, req.CourseID, req.PeriodID, req.ISOWeekday)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := d.ToggleScheduleResponse{
		Status:     res.Status,
		CourseID:   res.CourseID,
		PeriodID:   res.PeriodID,
		ISOWeekday: res.ISOWeekday,
		Lessons:    res.Lessons,
	}
	if res.Status == "created" {
		return helper.JsonCreated(c, "Jadwal diaktifkan", resp)
	}
	return helper.JsonOK(c, "Jadwal dinonaktifkan", resp)
}

// GET /api/a/weekly-schedules
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	var rows []m.WeeklyScheduleModel
	if err := ctl.DB.Preload("Course").Preload("Period").
		Order("weekly_schedule_iso_weekday ASC, weekly_schedule_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}
