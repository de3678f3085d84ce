package dto

import "github.com/google/uuid"

// ToggleModuleRequest body untuk POST /api/super-admin/modules/toggle
type ToggleModuleRequest struct {
	ModuleID uuid.UUID `json:"module_id" validate:"required"`
}

// ToggleUserModuleRequest body untuk POST /api/super-admin/users/toggle-module
type ToggleUserModuleRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ModuleID  uuid.UUID `json:"module_id" validate:"required"`
	IsEnabled *bool     `json:"is_enabled" validate:"required"`
}

// SelectModuleRequest body untuk POST /api/u/modules/select (self-service)
type SelectModuleRequest struct {
	ModuleID  uuid.UUID `json:"module_id" validate:"required"`
	IsEnabled *bool     `json:"is_enabled" validate:"required"`
}

// ModuleWithStateResponse: modul + status enable milik caller
type ModuleWithStateResponse struct {
	ModuleID          uuid.UUID `json:"module_id"`
	ModuleName        string    `json:"module_name"`
	ModuleDescription string    `json:"module_description"`
	ModuleIsActive    bool      `json:"module_is_active"`
	IsEnabled         bool      `json:"is_enabled"`
}
