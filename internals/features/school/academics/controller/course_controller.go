// file: internals/features/school/academics/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "presensiku_backend/internals/features/school/academics/dto"
	m "presensiku_backend/internals/features/school/academics/model"
	helper "presensiku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourse(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := m.CourseModel{
		CourseName:           strings.TrimSpace(req.CourseName),
		CourseLevel:          req.CourseLevel,
		CourseTeacherID:      req.CourseTeacherID,
		CourseWeeklySessions: req.CourseWeeklySessions,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Mapel ditambahkan", row)
}

// GET /api/a/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&m.CourseModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []m.CourseModel
	if err := ctl.DB.Preload("Teacher").Order("course_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/courses/:id/meeting-days
// Agregasi hari pertemuan (ISO weekday) dari aturan jadwal yang aktif.
func (ctl *CourseController) MeetingDays(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course m.CourseModel
	if err := ctl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var days pq.Int64Array
	err = ctl.DB.Raw(`
		SELECT COALESCE(array_agg(DISTINCT weekly_schedule_iso_weekday ORDER BY weekly_schedule_iso_weekday), '{}')
		FROM weekly_schedules
		WHERE weekly_schedule_course_id = ?`, id).Scan(&days).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", d.CourseMeetingDaysResponse{
		CourseID:    id,
		MeetingDays: []int64(days),
	})
}

// DELETE /api/a/courses/:id
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Where("course_id = ?", id).Delete(&m.CourseModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel dihapus", fiber.Map{"course_id": id})
}
