package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/veloralabs/agencydesk/internal/api"
	v1 "github.com/veloralabs/agencydesk/internal/api/v1"
	"github.com/veloralabs/agencydesk/internal/cache"
	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/email"
	"github.com/veloralabs/agencydesk/internal/httpclient"
	"github.com/veloralabs/agencydesk/internal/idgen"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/payment"
	"github.com/veloralabs/agencydesk/internal/postgres"
	"github.com/veloralabs/agencydesk/internal/repository"
	"github.com/veloralabs/agencydesk/internal/service"
	"github.com/veloralabs/agencydesk/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Load .env if present; real deployments use environment variables
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewDB,
			func(db *postgres.DB) postgres.IClient { return db },

			// HTTP Client
			httpclient.NewDefaultClient,

			// Repositories
			repository.NewSequenceStore,
			repository.NewInquiryRepository,
			repository.NewClientRepository,
			repository.NewQuotationRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,

			// Identifier generation
			idgen.NewGenerator,

			// Outbound integrations
			email.NewClient,
			email.NewEmail,
			payment.NewStripeGateway,

			// Services
			service.NewServiceParams,
			service.NewInquiryService,
			service.NewClientService,
			service.NewQuotationService,
			service.NewInvoiceService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	inquiryService service.InquiryService,
	clientService service.ClientService,
	quotationService service.QuotationService,
	invoiceService service.InvoiceService,
) api.Handlers {
	return api.Handlers{
		Health:    v1.NewHealthHandler(logger),
		Inquiry:   v1.NewInquiryHandler(inquiryService, logger),
		Client:    v1.NewClientHandler(clientService, logger),
		Quotation: v1.NewQuotationHandler(quotationService, logger),
		Invoice:   v1.NewInvoiceHandler(invoiceService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
