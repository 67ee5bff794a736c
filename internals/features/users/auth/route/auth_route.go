// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctl "presensiku_backend/internals/features/users/auth/controller"
	middlewares "presensiku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (limiter login lebih ketat).
func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := authctl.New(db, v)

	grp := app.Group("/api/auth", middlewares.LoginRateLimiter())
	grp.Post("/login", ctl.Login)
	grp.Post("/google", ctl.GoogleLogin)
}
