// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/helpers/mailer"
	osshelper "acaraku_backend/internals/helpers/oss"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
	routeDetails "acaraku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, oss *osshelper.OSSService, m mailer.Mailer) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa login (halaman pendaftaran, QR)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	// PRIVATE (USER) → login saja
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ADMIN → login + role admin/super-admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireMinRole(constants.RoleAdmin),
	)

	// SUPER-ADMIN → login, role dicek per-route di dalamnya
	log.Println("[INFO] Setting up SUPER-ADMIN group...")
	superAdmin := app.Group("/api/super-admin",
		authMiddleware.AuthMiddleware(db),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserSuperAdminRoutes(superAdmin, db)

	log.Println("[INFO] Mounting Module routes...")
	routeDetails.ModuleSuperAdminRoutes(superAdmin, db)
	routeDetails.ModuleUserRoutes(private, db)

	log.Println("[INFO] Mounting Event routes...")
	routeDetails.EventPublicRoutes(public, db)
	routeDetails.EventAdminRoutes(admin, db, oss, m)
}
