package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/factuurpro/factuur-api/internal/application/billing"
	"github.com/factuurpro/factuur-api/internal/application/dto"
	"github.com/factuurpro/factuur-api/internal/domain"
)

// InvoiceHandler handles the invoicing HTTP endpoints.
type InvoiceHandler struct {
	uc        *billing.CreateInvoiceUseCase
	qrEncoder billing.QRImageEncoder // optional; nil when no image library is wired
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.CreateInvoiceUseCase, qrEncoder billing.QRImageEncoder) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, qrEncoder: qrEncoder}
}

// Create composes and persists an invoice.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	invoice, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidVATRate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NUMBER", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List returns all invoice headers, newest first.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.ListInvoices(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoices)
}

// GetByID returns an invoice with its lines.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id is required"})
	}
	invoice, err := h.uc.GetInvoice(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// GetQRPayload returns the raw EPC069-12 payload as text, for clients that
// render the QR image themselves.
// GET /api/invoices/:id/sepa-qr
func (h *InvoiceHandler) GetQRPayload(c *fiber.Ctx) error {
	payload, err := h.uc.GetQRPayload(c.Context(), c.Params("id"))
	if err != nil {
		return h.payloadError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(payload)
}

// GetQRImage renders the payment QR as PNG when an image encoder is wired.
// GET /api/invoices/:id/sepa-qr.png
func (h *InvoiceHandler) GetQRImage(c *fiber.Ctx) error {
	if h.qrEncoder == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NO_QR_RENDERER", Message: "QR image rendering is not configured"})
	}
	payload, err := h.uc.GetQRPayload(c.Context(), c.Params("id"))
	if err != nil {
		return h.payloadError(c, err)
	}
	png, err := h.qrEncoder.EncodePNG(payload, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *InvoiceHandler) payloadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
