// file: internals/features/school/calendar/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calctl "presensiku_backend/internals/features/school/calendar/controller"
)

// CalendarAdminRoutes: setup kalender sekolah (tahun ajaran + hari libur).
func CalendarAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := calctl.New(db, v)

	admin.Post("/academic-year", ctl.UpsertAcademicYear)
	admin.Get("/academic-year", ctl.GetAcademicYear)

	grp := admin.Group("/non-school-days")
	grp.Post("/", ctl.CreateNonSchoolDay)
	grp.Get("/", ctl.ListNonSchoolDays)
	grp.Delete("/:id", ctl.DeleteNonSchoolDay)
}
