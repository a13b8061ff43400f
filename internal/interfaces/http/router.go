package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-api/internal/application/auth"
	"github.com/tu-usuario/facturas-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ClientUC   *billing.ClientUseCase
	InvoiceUC  *billing.InvoiceUseCase
	BankInfoUC *billing.BankInfoUseCase
	SendUC     *billing.SendInvoiceUseCase
	PDFUC      *billing.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/by-name/:name", clientHandler.GetByName)
	clients.Delete("/:id", clientHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.SendUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Bank info (protegido, un registro por usuario)
	bank := protected.Group("/bank-info")
	bankHandler := NewBankInfoHandler(deps.BankInfoUC)
	bank.Get("/", bankHandler.Get)
	bank.Put("/", bankHandler.Upsert)
}
