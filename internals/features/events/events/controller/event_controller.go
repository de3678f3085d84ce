package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/events/dto"
	"acaraku_backend/internals/features/events/events/service"
	helper "acaraku_backend/internals/helpers"
	osshelper "acaraku_backend/internals/helpers/oss"
)

var validate = validator.New()

type EventController struct {
	Service *service.EventService
	OSS     *osshelper.OSSService
}

func NewEventController(db *gorm.DB, oss *osshelper.OSSService) *EventController {
	return &EventController{
		Service: service.NewEventService(db),
		OSS:     oss,
	}
}

// POST /api/a/events
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event, err := ec.Service.CreateEvent(caller, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", dto.ToEventResponse(event))
}

// PUT /api/a/events/:id
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event, err := ec.Service.UpdateEvent(caller, eventID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Event berhasil diubah", dto.ToEventResponse(event))
}

// DELETE /api/a/events/:id
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	if err := ec.Service.DeleteEvent(caller, eventID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Event berhasil dihapus", nil)
}

// GET /api/a/events
func (ec *EventController) ListEvents(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParsePagination(c, helper.DefaultOpts)
	events, total, err := ec.Service.ListEvents(caller, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}
	return helper.Success(c, "Berhasil mengambil data event", fiber.Map{
		"events": resp,
		"meta":   helper.BuildMeta(total, p),
	})
}

// GET /api/events/:slug — detail publik + form field untuk halaman pendaftaran
func (ec *EventController) GetEventBySlug(c *fiber.Ctx) error {
	event, err := ec.Service.GetEventBySlug(c.Params("slug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fields, err := ec.Service.ListFields(event.EventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	fieldResp := make([]dto.FormFieldResponse, 0, len(fields))
	for i := range fields {
		fieldResp = append(fieldResp, dto.ToFormFieldResponse(&fields[i]))
	}

	return helper.Success(c, "Berhasil mengambil data event", fiber.Map{
		"event":  dto.ToEventResponse(event),
		"fields": fieldResp,
	})
}

// POST /api/a/events/:id/form — full replace form field
func (ec *EventController) SaveForm(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var req dto.SaveFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fields, err := ec.Service.SaveForm(caller, eventID, req.Fields)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := make([]dto.FormFieldResponse, 0, len(fields))
	for i := range fields {
		resp = append(resp, dto.ToFormFieldResponse(&fields[i]))
	}
	return helper.Success(c, "Form berhasil disimpan", fiber.Map{
		"total":  len(resp),
		"fields": resp,
	})
}

// GET /api/a/events/:id/form
func (ec *EventController) GetForm(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	fields, err := ec.Service.ListFields(eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resp := make([]dto.FormFieldResponse, 0, len(fields))
	for i := range fields {
		resp = append(resp, dto.ToFormFieldResponse(&fields[i]))
	}
	return helper.Success(c, "Berhasil mengambil data form", fiber.Map{
		"total":  len(resp),
		"fields": resp,
	})
}

// POST /api/a/events/logo — multipart field "logo" (jpg/png/gif/webp max 5MB).
// Form value "event_id" opsional: kalau diisi, URL langsung disimpan ke event.
func (ec *EventController) UploadLogo(c *fiber.Ctx) error {
	caller, err := helper.GetCaller(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if ec.OSS == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Penyimpanan file belum dikonfigurasi")
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File logo tidak ditemukan")
	}

	url, err := ec.OSS.UploadLogoAsWebP(c.UserContext(), fh, "event-logos")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if raw := c.FormValue("event_id"); raw != "" {
		eventID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Event ID tidak valid")
		}
		if err := ec.Service.SetLogoURL(caller, eventID, url); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	return helper.Success(c, "Logo berhasil diupload", fiber.Map{"url": url})
}
