// file: internals/features/modules/route/module_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/modules/controller"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

// ModuleSuperAdminRoutes mount ke group /api/super-admin
func ModuleSuperAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModuleController(db)

	guarded := router.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("manajemen modul"),
			constants.RoleSuperAdmin,
		),
	)

	guarded.Post("/modules/toggle", ctrl.ToggleModule)
	guarded.Post("/users/toggle-module", ctrl.ToggleUserModule)
}

// ModuleUserRoutes mount ke group /api/u (user login)
func ModuleUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModuleController(db)

	router.Get("/modules", ctrl.ListModules)
	router.Post("/modules/select", ctrl.SelectModule)
}
