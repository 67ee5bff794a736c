// file: internals/features/school/academics/controller/enrolment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "presensiku_backend/internals/features/school/academics/dto"
	m "presensiku_backend/internals/features/school/academics/model"
	helper "presensiku_backend/internals/helpers"
)

type EnrolmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrolment(db *gorm.DB, v *validator.Validate) *EnrolmentController {
	return &EnrolmentController{DB: db, Validate: v}
}

// POST /api/a/enrolments
// Pasangan (student, course) unik. Duplikat dibalas 409.
func (ctl *EnrolmentController) Create(c *fiber.Ctx) error {
	var req d.CreateEnrolmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := m.EnrolmentModel{
		EnrolmentStudentID: req.EnrolmentStudentID,
		EnrolmentCourseID:  req.EnrolmentCourseID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah terdaftar di mapel ini")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pendaftaran dibuat", row)
}

// GET /api/a/enrolments?course_id=&student_id=
func (ctl *EnrolmentController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&m.EnrolmentModel{})
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id invalid")
		}
		q = q.Where("enrolment_course_id = ?", courseID)
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
		}
		q = q.Where("enrolment_student_id = ?", studentID)
	}

	var rows []m.EnrolmentModel
	if err := q.Preload("Student").Preload("Course").
		Order("enrolment_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// DELETE /api/a/enrolments/:id
func (ctl *EnrolmentController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Where("enrolment_id = ?", id).Delete(&m.EnrolmentModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pendaftaran dihapus", fiber.Map{"enrolment_id": id})
}
