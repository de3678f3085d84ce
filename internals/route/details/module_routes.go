// file: internals/route/details/module_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleRoute "acaraku_backend/internals/features/modules/route"
)

func ModuleSuperAdminRoutes(router fiber.Router, db *gorm.DB) {
	moduleRoute.ModuleSuperAdminRoutes(router, db)
}

func ModuleUserRoutes(router fiber.Router, db *gorm.DB) {
	moduleRoute.ModuleUserRoutes(router, db)
}
