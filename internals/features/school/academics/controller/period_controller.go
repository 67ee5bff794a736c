// file: internals/features/school/academics/controller/period_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "presensiku_backend/internals/features/school/academics/dto"
	m "presensiku_backend/internals/features/school/academics/model"
	helper "presensiku_backend/internals/helpers"
)

type PeriodController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPeriod(db *gorm.DB, v *validator.Validate) *PeriodController {
	return &PeriodController{DB: db, Validate: v}
}

func parseClock(s string) (time.Time, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// POST /api/a/periods
func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	var req d.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	start, ok := parseClock(req.PeriodStartTime)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "period_start_time invalid (HH:MM)")
	}
	end, ok := parseClock(req.PeriodEndTime)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "period_end_time invalid (HH:MM)")
	}
	if !end.After(start) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "period_end_time harus > period_start_time")
	}

	row := m.PeriodModel{
		PeriodName:      strings.TrimSpace(req.PeriodName),
		PeriodStartTime: start,
		PeriodEndTime:   end,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Jam pelajaran ditambahkan", row)
}

// GET /api/a/periods
func (ctl *PeriodController) List(c *fiber.Ctx) error {
	var rows []m.PeriodModel
	if err := ctl.DB.Order("period_start_time ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// DELETE /api/a/periods/:id
func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Where("period_id = ?", id).Delete(&m.PeriodModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jam pelajaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jam pelajaran dihapus", fiber.Map{"period_id": id})
}
