// file: internals/route/details/event_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "acaraku_backend/internals/features/events/attendance/route"
	eventRoute "acaraku_backend/internals/features/events/events/route"
	registrationRoute "acaraku_backend/internals/features/events/registrations/route"
	"acaraku_backend/internals/helpers/mailer"
	osshelper "acaraku_backend/internals/helpers/oss"
)

func EventAdminRoutes(router fiber.Router, db *gorm.DB, oss *osshelper.OSSService, m mailer.Mailer) {
	eventRoute.EventAdminRoutes(router, db, oss)
	registrationRoute.RegistrationAdminRoutes(router, db, m)
	attendanceRoute.AttendanceAdminRoutes(router, db)
}

func EventPublicRoutes(router fiber.Router, db *gorm.DB) {
	eventRoute.EventPublicRoutes(router, db)
	registrationRoute.RegistrationPublicRoutes(router, db)
	attendanceRoute.AttendancePublicRoutes(router, db)
}
