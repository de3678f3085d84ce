package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/registrations/dto"
	"acaraku_backend/internals/features/events/registrations/service"
	helper "acaraku_backend/internals/helpers"
	"acaraku_backend/internals/helpers/mailer"
)

var validate = validator.New()

type RegistrationController struct {
	Service *service.RegistrationService
}

func NewRegistrationController(db *gorm.DB, m mailer.Mailer) *RegistrationController {
	return &RegistrationController{
		Service: service.NewRegistrationService(db, m),
	}
}

// POST /api/events/:slug/register — endpoint publik, tanpa login
func (rc *RegistrationController) PublicRegister(c *fiber.Ctx) error {
	var req dto.PublicRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if len(req.Data) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Data pendaftaran tidak boleh kosong")
	}

	reg, err := rc.Service.Register(c.Params("slug"), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil dikirim", dto.ToRegistrationResponse(reg))
}

// POST /api/a/registrations/:id — accept / reject satu registrasi
func (rc *RegistrationController) Transition(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Registration ID tidak valid")
	}

	var req dto.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := rc.Service.Transition(caller, registrationID, req.Action)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Status registrasi berhasil diubah", fiber.Map{"updated": updated})
}

// POST /api/a/events/:id/registrations/bulk — satu aksi untuk banyak registrasi
func (rc *RegistrationController) BulkTransition(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var req dto.BulkTransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := rc.Service.BulkTransition(caller, eventID, req.RegistrationIDs, req.Action)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Status registrasi berhasil diubah", fiber.Map{"updated": updated})
}

// GET /api/a/events/:id/registrations?status=pending
func (rc *RegistrationController) ListRegistrations(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	status := c.Query("status")
	p := helper.ParsePagination(c, helper.AdminOpts)
	regs, total, err := rc.Service.ListRegistrations(caller, eventID, status, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		resp = append(resp, dto.ToRegistrationResponse(&regs[i]))
	}
	return helper.Success(c, "Berhasil mengambil data registrasi", fiber.Map{
		"registrations": resp,
		"meta":          helper.BuildMeta(total, p),
	})
}
