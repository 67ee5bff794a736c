// file: internals/features/school/academics/controller/roster_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	d "presensiku_backend/internals/features/school/academics/dto"
	m "presensiku_backend/internals/features/school/academics/model"
	helper "presensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type RosterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoster(db *gorm.DB, v *validator.Validate) *RosterController {
	return &RosterController{DB: db, Validate: v}
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id invalid")
	}
	return id, nil
}

/* ========================= Teachers ========================= */

// POST /api/a/teachers
func (ctl *RosterController) CreateTeacher(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := m.TeacherModel{
		TeacherFirstName: strings.TrimSpace(req.TeacherFirstName),
		TeacherLastName:  strings.TrimSpace(req.TeacherLastName),
		TeacherUserID:    req.TeacherUserID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Guru ditambahkan", row)
}

// GET /api/a/teachers
func (ctl *RosterController) ListTeachers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&m.TeacherModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []m.TeacherModel
	if err := ctl.DB.Order("teacher_last_name ASC, teacher_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// DELETE /api/a/teachers/:id
func (ctl *RosterController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Where("teacher_id = ?", id).Delete(&m.TeacherModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru dihapus", fiber.Map{"teacher_id": id})
}

/* ========================= Sections ========================= */

// POST /api/a/sections
func (ctl *RosterController) CreateSection(c *fiber.Ctx) error {
	var req d.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := m.SectionModel{
		SectionName:  strings.TrimSpace(req.SectionName),
		SectionLevel: req.SectionLevel,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Rombel ditambahkan", row)
}

// GET /api/a/sections
func (ctl *RosterController) ListSections(c *fiber.Ctx) error {
	var rows []m.SectionModel
	if err := ctl.DB.Order("section_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}

/* ========================= Students ========================= */

// POST /api/a/students
func (ctl *RosterController) CreateStudent(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := m.StudentModel{
		StudentEmail:     strings.ToLower(strings.TrimSpace(req.StudentEmail)),
		StudentFirstName: strings.TrimSpace(req.StudentFirstName),
		StudentLastName:  strings.TrimSpace(req.StudentLastName),
		StudentSectionID: req.StudentSectionID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Siswa ditambahkan", row)
}

// GET /api/a/students?section_id=
func (ctl *RosterController) ListStudents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.StudentModel{})
	if raw := strings.TrimSpace(c.Query("section_id")); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
		}
		q = q.Where("student_section_id = ?", sectionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []m.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", rows, &pg)
}

// DELETE /api/a/students/:id
func (ctl *RosterController) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctl.DB.Where("student_id = ?", id).Delete(&m.StudentModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa dihapus", fiber.Map{"student_id": id})
}

/* ========================= Classrooms ========================= */

// POST /api/a/classrooms
func (ctl *RosterController) CreateClassroom(c *fiber.Ctx) error {
	var req d.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := m.ClassroomModel{
		ClassroomName:     strings.TrimSpace(req.ClassroomName),
		ClassroomCapacity: req.ClassroomCapacity,
	}
	if len(req.ClassroomFacilities) > 0 {
		raw, err := sonicMarshal(req.ClassroomFacilities)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_facilities invalid")
		}
		row.ClassroomFacilities = datatypes.JSON(raw)
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Ruang kelas ditambahkan", row)
}

// GET /api/a/classrooms
func (ctl *RosterController) ListClassrooms(c *fiber.Ctx) error {
	var rows []m.ClassroomModel
	if err := ctl.DB.Order("classroom_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, nil)
}
