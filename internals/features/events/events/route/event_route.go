// file: internals/features/events/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/events/controller"
	osshelper "acaraku_backend/internals/helpers/oss"
)

// EventAdminRoutes mount ke group /api/a (admin & super-admin)
func EventAdminRoutes(router fiber.Router, db *gorm.DB, oss *osshelper.OSSService) {
	ctrl := controller.NewEventController(db, oss)

	events := router.Group("/events")
	events.Get("/", ctrl.ListEvents)
	events.Post("/", ctrl.CreateEvent)
	events.Post("/logo", ctrl.UploadLogo)
	events.Put("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
	events.Get("/:id/form", ctrl.GetForm)
	events.Post("/:id/form", ctrl.SaveForm)
}

// EventPublicRoutes mount ke group /api (tanpa login)
func EventPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db, nil)

	router.Get("/events/:slug", ctrl.GetEventBySlug)
}
