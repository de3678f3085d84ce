package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acaraku_backend/internals/features/modules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.ModuleModel{},
		&model.UserModuleModel{},
	))
	return db
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func seedModule(t *testing.T, db *gorm.DB, name string, active bool) *model.ModuleModel {
	t.Helper()
	mod := model.ModuleModel{ModuleName: name, ModuleIsActive: active}
	require.NoError(t, db.Create(&mod).Error)
	if !active {
		// default kolom true, pastikan nilai tersimpan sesuai
		require.NoError(t, db.Model(&mod).Update("module_is_active", false).Error)
	}
	return &mod
}

func TestToggleModuleFlipsGlobalFlag(t *testing.T) {
	db := openTestDB(t)
	svc := NewModuleService(db)

	mod := seedModule(t, db, "events", true)

	active, err := svc.ToggleModule(mod.ModuleID)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.ToggleModule(mod.ModuleID)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = svc.ToggleModule(uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

// Grant per (user, module) unik: set kedua kali meng-update, bukan menduplikat.
func TestSetUserModuleUpserts(t *testing.T) {
	db := openTestDB(t)
	svc := NewModuleService(db)

	mod := seedModule(t, db, "events", true)
	userID := uuid.New()

	require.NoError(t, svc.SetUserModule(userID, mod.ModuleID, true))
	require.NoError(t, svc.SetUserModule(userID, mod.ModuleID, false))

	var grants []model.UserModuleModel
	require.NoError(t, db.Find(&grants).Error)
	require.Len(t, grants, 1)
	assert.False(t, grants[0].UserModuleIsEnabled)
}

func TestSetUserModuleUnknownModule(t *testing.T) {
	db := openTestDB(t)
	svc := NewModuleService(db)

	err := svc.SetUserModule(uuid.New(), uuid.New(), true)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestSelectModuleBlockedWhenGloballyInactive(t *testing.T) {
	db := openTestDB(t)
	svc := NewModuleService(db)

	mod := seedModule(t, db, "events", false)
	userID := uuid.New()

	err := svc.SelectModule(userID, mod.ModuleID, true)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	var count int64
	require.NoError(t, db.Model(&model.UserModuleModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListModulesWithState(t *testing.T) {
	db := openTestDB(t)
	svc := NewModuleService(db)

	modA := seedModule(t, db, "attendance", true)
	seedModule(t, db, "events", true)
	userID := uuid.New()

	require.NoError(t, svc.SetUserModule(userID, modA.ModuleID, true))

	out, err := svc.ListModulesWithState(userID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// urut nama
	assert.Equal(t, "attendance", out[0].ModuleName)
	assert.True(t, out[0].IsEnabled)
	assert.Equal(t, "events", out[1].ModuleName)
	assert.False(t, out[1].IsEnabled)
}
