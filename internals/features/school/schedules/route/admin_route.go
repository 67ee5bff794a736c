// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedctl "presensiku_backend/internals/features/school/schedules/controller"
)

// SchedulesAdminRoutes: toggle jadwal mingguan + backfill massal.
func SchedulesAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	sched := schedctl.NewSchedule(db, v)
	backfill := schedctl.NewBackfill(db, v)

	ws := admin.Group("/weekly-schedules")
	ws.Get("/", sched.List)
	ws.Post("/toggle", sched.Toggle)

	admin.Post("/lessons/generate-all", backfill.GenerateLessons)
	admin.Post("/attendance-records/generate-all", backfill.GenerateAttendanceRecords)
}
