// file: internals/features/school/calendar/controller/calendar_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "presensiku_backend/internals/features/school/calendar/dto"
	m "presensiku_backend/internals/features/school/calendar/model"
	helper "presensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type CalendarController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *CalendarController {
	return &CalendarController{DB: db, Validate: v}
}

/* ========================= Academic year ========================= */

// POST /api/a/academic-year
// Create-or-replace: baris tahun ajaran tunggal di-update kalau sudah ada.
func (ctl *CalendarController) UpsertAcademicYear(c *fiber.Ctx) error {
	var req d.UpsertAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	start, ok := d.ParseDateYYYYMMDD(req.AcademicYearStartDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "academic_year_start_date invalid (YYYY-MM-DD)")
	}
	end, ok := d.ParseDateYYYYMMDD(req.AcademicYearEndDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "academic_year_end_date invalid (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "end_date harus >= start_date")
	}

	var created bool
	var year m.AcademicYearModel
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.Order("academic_year_created_at ASC").First(&year).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			year = m.AcademicYearModel{
				AcademicYearName:      strings.TrimSpace(req.AcademicYearName),
				AcademicYearStartDate: start,
				AcademicYearEndDate:   end,
			}
			return tx.Create(&year).Error
		case err != nil:
			return err
		default:
			year.AcademicYearName = strings.TrimSpace(req.AcademicYearName)
			year.AcademicYearStartDate = start
			year.AcademicYearEndDate = end
			return tx.Save(&year).Error
		}
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if created {
		return helper.JsonCreated(c, "Tahun ajaran dibuat", year)
	}
	return helper.JsonUpdated(c, "Tahun ajaran diperbarui", year)
}

// GET /api/a/academic-year
func (ctl *CalendarController) GetAcademicYear(c *fiber.Ctx) error {
	var year m.AcademicYearModel
	if err := ctl.DB.Order("academic_year_created_at ASC").First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tahun ajaran belum dikonfigurasi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", year)
}

/* ========================= Non-school days ========================= */

// POST /api/a/non-school-days
func (ctl *CalendarController) CreateNonSchoolDay(c *fiber.Ctx) error {
	var req d.CreateNonSchoolDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	date, ok := d.ParseDateYYYYMMDD(req.NonSchoolDayDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "non_school_day_date invalid (YYYY-MM-DD)")
	}
	row := m.NonSchoolDayModel{
		NonSchoolDayDate:   date,
		NonSchoolDayReason: req.NonSchoolDayReason,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Hari libur ditambahkan", row)
}

// GET /api/a/non-school-days
func (ctl *CalendarController) ListNonSchoolDays(c *fiber.Ctx) error {
	var rows []m.NonSchoolDayModel
	if err := ctl.DB.Order("non_school_day_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// DELETE /api/a/non-school-days/:id
func (ctl *CalendarController) DeleteNonSchoolDay(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.Where("non_school_day_id = ?", id).Delete(&m.NonSchoolDayModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Hari libur tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Hari libur dihapus", fiber.Map{"non_school_day_id": id})
}
