// file: internals/features/school/schedules/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "presensiku_backend/internals/features/school/schedules/dto"
	m "presensiku_backend/internals/features/school/schedules/model"
	helper "presensiku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendance(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

// PATCH /api/u/attendance-records/:id
// minutes_late hanya valid untuk status late, dan wajib untuk late.
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	status := m.AttendanceStatus(req.Status)
	if status == m.AttendanceLate && req.MinutesLate == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "minutes_late wajib untuk status late")
	}
	if status != m.AttendanceLate && req.MinutesLate != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "minutes_late hanya untuk status late")
	}

	var row m.AttendanceRecordModel
	if err := ctl.DB.Where("attendance_record_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan presensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{
		"attendance_record_status":       status,
		"attendance_record_minutes_late": req.MinutesLate,
	}
	if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	row.AttendanceRecordStatus = status
	row.AttendanceRecordMinutesLate = req.MinutesLate
	return helper.JsonUpdated(c, "Presensi diperbarui", row)
}
