package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/configs"
	"acaraku_backend/internals/features/events/attendance/dto"
	"acaraku_backend/internals/features/events/attendance/service"
	helper "acaraku_backend/internals/helpers"
)

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{Service: service.NewAttendanceService(db)}
}

// POST /api/a/attendance/:registration_id — scan QR lalu catat kehadiran
func (ac *AttendanceController) CheckIn(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	registrationID, err := uuid.Parse(c.Params("registration_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Registration ID tidak valid")
	}

	attendance, err := ac.Service.CheckIn(caller, registrationID)
	if err != nil {
		// duplicate check-in: ikutkan timestamp check-in asli di payload error
		if attendance != nil {
			return helper.FromFiberErrorWithData(c, err, fiber.Map{
				"checked_in_at": attendance.EventAttendanceCheckedInAt,
			})
		}
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran berhasil dicatat",
		dto.ToAttendanceResponse(attendance))
}

// GET /api/qr-code?registration_id=ID — PNG QR link check-in, cache 1 hari
func (ac *AttendanceController) QRCode(c *fiber.Ctx) error {
	raw := c.Query("registration_id")
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter registration_id wajib diisi")
	}
	registrationID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Registration ID tidak valid")
	}

	png, err := service.GenerateQRPNG(configs.AppBaseURL, registrationID, 256)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}

// GET /api/a/events/:id/attendance — daftar kehadiran event milik caller
func (ac *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	rows, err := ac.Service.ListAttendance(caller, eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := make([]dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToAttendanceResponse(&rows[i]))
	}
	return helper.Success(c, "Berhasil mengambil data kehadiran", fiber.Map{
		"total":      len(resp),
		"attendance": resp,
	})
}
