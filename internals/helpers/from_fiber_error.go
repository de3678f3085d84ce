package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError mengubah error hasil service/Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten via helper.Error.
// Jika bukan *fiber.Error, fallback ke 500 dengan pesan generik
// (detail aslinya cukup di log server, jangan bocor ke client).
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// FromFiberErrorWithData sama seperti FromFiberError tapi menyertakan payload
// tambahan (mis. checked_in_at lama pada duplicate check-in).
func FromFiberErrorWithData(c *fiber.Ctx, err error, data interface{}) error {
	if fe, ok := err.(*fiber.Error); ok {
		return ErrorWithDetails(c, fe.Code, fe.Message, data)
	}
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
