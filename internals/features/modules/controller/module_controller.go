package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/modules/dto"
	"acaraku_backend/internals/features/modules/service"
	helper "acaraku_backend/internals/helpers"
)

var validate = validator.New()

type ModuleController struct {
	Service *service.ModuleService
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{Service: service.NewModuleService(db)}
}

// POST /api/super-admin/modules/toggle
func (mc *ModuleController) ToggleModule(c *fiber.Ctx) error {
	var req dto.ToggleModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	active, err := mc.Service.ToggleModule(req.ModuleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Status modul berhasil diubah", fiber.Map{"module_is_active": active})
}

// POST /api/super-admin/users/toggle-module
func (mc *ModuleController) ToggleUserModule(c *fiber.Ctx) error {
	var req dto.ToggleUserModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := mc.Service.SetUserModule(req.UserID, req.ModuleID, *req.IsEnabled); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Grant modul berhasil disimpan", nil)
}

// POST /api/u/modules/select — self-service oleh user login
func (mc *ModuleController) SelectModule(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SelectModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := mc.Service.SelectModule(userID, req.ModuleID, *req.IsEnabled); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Pilihan modul berhasil disimpan", nil)
}

// GET /api/u/modules — daftar modul + status enable caller
func (mc *ModuleController) ListModules(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	modules, err := mc.Service.ListModulesWithState(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Berhasil mengambil data modul", fiber.Map{
		"total":   len(modules),
		"modules": modules,
	})
}
