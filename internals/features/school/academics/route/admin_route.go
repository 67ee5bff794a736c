// file: internals/features/school/academics/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acadctl "presensiku_backend/internals/features/school/academics/controller"
)

// AcademicsAdminRoutes: master data roster, mapel, jam pelajaran, pendaftaran.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	roster := acadctl.NewRoster(db, v)
	course := acadctl.NewCourse(db, v)
	period := acadctl.NewPeriod(db, v)
	enrol := acadctl.NewEnrolment(db, v)

	t := admin.Group("/teachers")
	t.Post("/", roster.CreateTeacher)
	t.Get("/", roster.ListTeachers)
	t.Delete("/:id", roster.DeleteTeacher)

	sec := admin.Group("/sections")
	sec.Post("/", roster.CreateSection)
	sec.Get("/", roster.ListSections)

	st := admin.Group("/students")
	st.Post("/", roster.CreateStudent)
	st.Get("/", roster.ListStudents)
	st.Delete("/:id", roster.DeleteStudent)

	room := admin.Group("/classrooms")
	room.Post("/", roster.CreateClassroom)
	room.Get("/", roster.ListClassrooms)

	co := admin.Group("/courses")
	co.Post("/", course.Create)
	co.Get("/", course.List)
	co.Get("/:id/meeting-days", course.MeetingDays)
	co.Delete("/:id", course.Delete)

	pe := admin.Group("/periods")
	pe.Post("/", period.Create)
	pe.Get("/", period.List)
	pe.Delete("/:id", period.Delete)

	en := admin.Group("/enrolments")
	en.Post("/", enrol.Create)
	en.Get("/", enrol.List)
	en.Delete("/:id", enrol.Delete)
}
