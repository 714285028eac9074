package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/factuurpro/factuur-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CreateInvoice *billing.CreateInvoiceUseCase
	QRImage       billing.QRImageEncoder // optional
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.QRImage)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/sepa-qr", invoiceHandler.GetQRPayload)
	invoices.Get("/:id/sepa-qr.png", invoiceHandler.GetQRImage)
}
