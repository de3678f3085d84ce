// file: internals/features/events/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/attendance/controller"
)

// AttendanceAdminRoutes mount ke group /api/a (admin & super-admin)
func AttendanceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	router.Post("/attendance/:registration_id", ctrl.CheckIn)
	router.Get("/events/:id/attendance", ctrl.ListAttendance)
}

// AttendancePublicRoutes mount ke group /api: QR bisa diambil tanpa login
// (link-nya dikirim lewat email penerimaan).
func AttendancePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	router.Get("/qr-code", ctrl.QRCode)
}
