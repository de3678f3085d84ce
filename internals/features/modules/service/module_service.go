package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"acaraku_backend/internals/features/modules/dto"
	"acaraku_backend/internals/features/modules/model"
)

type ModuleService struct {
	DB *gorm.DB
}

func NewModuleService(db *gorm.DB) *ModuleService {
	return &ModuleService{DB: db}
}

// ToggleModule flip flag global modul (super-admin).
func (s *ModuleService) ToggleModule(moduleID uuid.UUID) (bool, error) {
	var mod model.ModuleModel
	if err := s.DB.First(&mod, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fiber.NewError(fiber.StatusNotFound, "Modul tidak ditemukan")
		}
		log.Println("[ERROR] ToggleModule query gagal:", err)
		return false, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	next := !mod.ModuleIsActive
	if err := s.DB.Model(&mod).Update("module_is_active", next).Error; err != nil {
		log.Println("[ERROR] ToggleModule update gagal:", err)
		return false, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status modul")
	}
	return next, nil
}

// SetUserModule upsert grant modul per (user, module).
// Unique index gabungan jadi arbiter; konflik di-update, bukan error.
func (s *ModuleService) SetUserModule(userID, moduleID uuid.UUID, enabled bool) error {
	var mod model.ModuleModel
	if err := s.DB.First(&mod, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Modul tidak ditemukan")
		}
		log.Println("[ERROR] SetUserModule query gagal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	grant := model.UserModuleModel{
		UserModuleUserID:    userID,
		UserModuleModuleID:  moduleID,
		UserModuleIsEnabled: enabled,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_module_user_id"},
			{Name: "user_module_module_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"user_module_is_enabled", "user_module_updated_at"}),
	}).Create(&grant).Error
	if err != nil {
		log.Println("[ERROR] SetUserModule upsert gagal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan grant modul")
	}
	return nil
}

// SelectModule: self-service oleh user. Modul nonaktif global tidak bisa dipilih.
func (s *ModuleService) SelectModule(userID, moduleID uuid.UUID, enabled bool) error {
	var mod model.ModuleModel
	if err := s.DB.First(&mod, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Modul tidak ditemukan")
		}
		log.Println("[ERROR] SelectModule query gagal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if !mod.ModuleIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Modul sedang dinonaktifkan")
	}
	return s.SetUserModule(userID, moduleID, enabled)
}

// ListModulesWithState: semua modul aktif + status enable milik caller.
func (s *ModuleService) ListModulesWithState(userID uuid.UUID) ([]dto.ModuleWithStateResponse, error) {
	var modules []model.ModuleModel
	if err := s.DB.Order("module_name ASC").Find(&modules).Error; err != nil {
		log.Println("[ERROR] ListModulesWithState query gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data modul")
	}

	var grants []model.UserModuleModel
	if err := s.DB.Where("user_module_user_id = ?", userID).Find(&grants).Error; err != nil {
		log.Println("[ERROR] ListModulesWithState grants gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data modul")
	}
	enabled := make(map[uuid.UUID]bool, len(grants))
	for _, g := range grants {
		enabled[g.UserModuleModuleID] = g.UserModuleIsEnabled
	}

	out := make([]dto.ModuleWithStateResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ModuleWithStateResponse{
			ModuleID:          m.ModuleID,
			ModuleName:        m.ModuleName,
			ModuleDescription: m.ModuleDescription,
			ModuleIsActive:    m.ModuleIsActive,
			IsEnabled:         enabled[m.ModuleID],
		})
	}
	return out, nil
}
