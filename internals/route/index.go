// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	academicsroute "presensiku_backend/internals/features/school/academics/route"
	calendarroute "presensiku_backend/internals/features/school/calendar/route"
	schedulesroute "presensiku_backend/internals/features/school/schedules/route"
	authroute "presensiku_backend/internals/features/users/auth/route"
	"presensiku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua endpoint:
//
//	/api/auth  publik (login email + google)
//	/api/a     admin (kalender, master data, toggle jadwal, backfill)
//	/api/u     guru  (pertemuan + presensi)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	authroute.AuthRoutes(app, db, v)

	jwtGuard := auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	admin := app.Group("/api/a", jwtGuard, auth.OnlyRoles("admin"))
	calendarroute.CalendarAdminRoutes(admin, db, v)
	academicsroute.AcademicsAdminRoutes(admin, db, v)
	schedulesroute.SchedulesAdminRoutes(admin, db, v)

	user := app.Group("/api/u", jwtGuard, auth.OnlyRoles("admin", "teacher"))
	schedulesroute.SchedulesUserRoutes(user, db, v)
}
