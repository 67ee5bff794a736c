// file: internals/features/school/schedules/controller/lesson_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "presensiku_backend/internals/features/school/schedules/model"
	helper "presensiku_backend/internals/helpers"
)

type LessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLesson(db *gorm.DB, v *validator.Validate) *LessonController {
	return &LessonController{DB: db, Validate: v}
}

// GET /api/u/lessons?from=YYYY-MM-DD&to=YYYY-MM-DD&course_id=
// `to` eksklusif, mengikuti konvensi rentang materialisasi.
func (ctl *LessonController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.LessonModel{})
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		q = q.Where("lesson_date >= ?", from)
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		q = q.Where("lesson_date < ?", to)
	}
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id invalid")
		}
		q = q.Where("lesson_course_id = ?", courseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []m.LessonModel
	if err := q.Order("lesson_date ASC, lesson_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/u/lessons/:id/attendance-records
func (ctl *LessonController) AttendanceRecords(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	var lesson m.LessonModel
	if err := ctl.DB.Where("lesson_id = ?", id).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.AttendanceRecordModel
	if err := ctl.DB.Preload("Student").
		Where("attendance_record_lesson_id = ?", id).
		Order("attendance_record_marked_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}
