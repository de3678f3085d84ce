// file: internals/features/events/registrations/route/registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/registrations/controller"
	"acaraku_backend/internals/helpers/mailer"
)

// RegistrationAdminRoutes mount ke group /api/a (admin & super-admin)
func RegistrationAdminRoutes(router fiber.Router, db *gorm.DB, m mailer.Mailer) {
	ctrl := controller.NewRegistrationController(db, m)

	router.Patch("/registrations/:id", ctrl.Transition)
	router.Get("/events/:id/registrations", ctrl.ListRegistrations)
	router.Post("/events/:id/registrations/bulk", ctrl.BulkTransition)
}

// RegistrationPublicRoutes mount ke group /api (tanpa login)
func RegistrationPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRegistrationController(db, nil)

	router.Post("/events/:slug/register", ctrl.PublicRegister)
}
