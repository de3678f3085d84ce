// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/users/auth/controller"
	"acaraku_backend/internals/middlewares"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// 🔒 Protected
	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Post("/change-password", authController.ChangePassword)
	protected.Get("/me", authController.Me)
}
