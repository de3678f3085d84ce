// file: internals/features/users/user/route/super_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/users/user/controller"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

// SuperAdminUserRoutes mount ke group /api/super-admin (sudah ber-AuthMiddleware)
func SuperAdminUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	guarded := router.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("manajemen akun"),
			constants.RoleSuperAdmin,
		),
	)

	users := guarded.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Post("/create", ctrl.CreateUser)
	users.Post("/delete", ctrl.DeleteUser)
	users.Post("/toggle-status", ctrl.ToggleUserStatus)

	admins := guarded.Group("/admins")
	admins.Post("/create", ctrl.CreateAdmin)
	admins.Post("/delete", ctrl.DeleteAdmin)
	admins.Post("/toggle-status", ctrl.ToggleAdminStatus)
}
