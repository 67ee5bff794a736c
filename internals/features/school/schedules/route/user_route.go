// file: internals/features/school/schedules/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedctl "presensiku_backend/internals/features/school/schedules/controller"
)

// SchedulesUserRoutes: akses guru (lihat pertemuan, isi presensi).
func SchedulesUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	lesson := schedctl.NewLesson(db, v)
	att := schedctl.NewAttendance(db, v)

	user.Get("/lessons", lesson.List)
	user.Get("/lessons/:id/attendance-records", lesson.AttendanceRecords)
	user.Patch("/attendance-records/:id", att.Mark)
}
