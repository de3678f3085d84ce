// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "acaraku_backend/internals/features/users/user/route"
)

func UserSuperAdminRoutes(router fiber.Router, db *gorm.DB) {
	userRoute.SuperAdminUserRoutes(router, db)
}
