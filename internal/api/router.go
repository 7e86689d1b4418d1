package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/veloralabs/agencydesk/internal/api/v1"
	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/rest/middleware"
)

type Handlers struct {
	Health    *v1.HealthHandler
	Inquiry   *v1.InquiryHandler
	Client    *v1.ClientHandler
	Quotation *v1.QuotationHandler
	Invoice   *v1.InvoiceHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.Default()

	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, cfg, logger)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration, logger *logger.Logger) {
	// The inquiry form on the marketing site posts without credentials
	public := router.Group("", middleware.GuestMiddleware)
	{
		public.POST("/inquiries", handlers.Inquiry.CreateInquiry)
	}

	private := router.Group("", middleware.AuthenticateMiddleware(cfg, logger))

	// Inquiry triage routes
	inquiries := private.Group("/inquiries")
	{
		inquiries.GET("", handlers.Inquiry.ListInquiries)
		inquiries.GET("/:id", handlers.Inquiry.GetInquiry)
		inquiries.PUT("/:id", handlers.Inquiry.UpdateInquiry)
		inquiries.POST("/:id/convert", middleware.RequireDocumentAccess, handlers.Inquiry.ConvertInquiry)
	}

	// Client routes
	clients := private.Group("/clients")
	{
		clients.POST("", middleware.RequireDocumentAccess, handlers.Client.CreateClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", middleware.RequireDocumentAccess, handlers.Client.UpdateClient)
	}

	// Quotation routes
	quotations := private.Group("/quotations")
	{
		quotations.POST("", middleware.RequireDocumentAccess, handlers.Quotation.CreateQuotation)
		quotations.GET("", handlers.Quotation.ListQuotations)
		quotations.GET("/:id", handlers.Quotation.GetQuotation)
		quotations.PUT("/:id", middleware.RequireDocumentAccess, handlers.Quotation.UpdateQuotation)
		quotations.POST("/:id/send", middleware.RequireDocumentAccess, handlers.Quotation.SendQuotation)
	}

	// Invoice routes
	invoices := private.Group("/invoices")
	{
		invoices.POST("", middleware.RequireDocumentAccess, handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/finalize", middleware.RequireDocumentAccess, handlers.Invoice.FinalizeInvoice)
		invoices.POST("/:id/void", middleware.RequireDocumentAccess, handlers.Invoice.VoidInvoice)
		invoices.POST("/:id/payments", middleware.RequireDocumentAccess, handlers.Invoice.RecordPayment)
		invoices.GET("/:id/payments", handlers.Invoice.ListPayments)
	}
}
