// @title           API AguaVP
// @version         1.0
// @description     Billing API for a drinking water utility: customers, meters, readings, tiered tariffs, invoices and payments.

// @host      localhost:8080
// @BasePath  /api/v1
// @Schemes   http

package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api"
	v1 "github.com/Mahynlo/Api-AguaVp-sub000/internal/api/v1"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/cache"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/config"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/notification"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/repository"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			cache.NewInMemoryCache,
			postgres.NewClient,

			repository.NewTariffRepository,
			repository.NewCustomerRepository,
			repository.NewMeterRepository,
			repository.NewReadingRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,
			repository.NewRouteRepository,

			notification.NewHub,
			newPublisher,
			newServiceParams,

			service.NewRatingService,
			service.NewTariffService,
			service.NewCustomerService,
			service.NewMeterService,
			service.NewReadingService,
			service.NewInvoiceService,
			service.NewPaymentService,
			service.NewRouteService,

			newHandlers,
			newRouter,
		),
		fx.Invoke(migrate, startServer),
	)
	app.Run()
}

func newPublisher(hub *notification.Hub) notification.Publisher {
	return hub
}

func newServiceParams(p serviceParamsInput) service.ServiceParams {
	return service.ServiceParams{
		Logger:       p.Logger,
		Config:       p.Config,
		TariffRepo:   p.TariffRepo,
		CustomerRepo: p.CustomerRepo,
		MeterRepo:    p.MeterRepo,
		ReadingRepo:  p.ReadingRepo,
		InvoiceRepo:  p.InvoiceRepo,
		PaymentRepo:  p.PaymentRepo,
		RouteRepo:    p.RouteRepo,
		Publisher:    p.Publisher,
	}
}

type serviceParamsInput struct {
	fx.In

	Logger       *logger.Logger
	Config       *config.Configuration
	TariffRepo   tariff.Repository
	CustomerRepo customer.Repository
	MeterRepo    meter.Repository
	ReadingRepo  reading.Repository
	InvoiceRepo  invoice.Repository
	PaymentRepo  payment.Repository
	RouteRepo    route.Repository
	Publisher    notification.Publisher
}

func newHandlers(
	tariffSvc service.TariffService,
	customerSvc service.CustomerService,
	meterSvc service.MeterService,
	readingSvc service.ReadingService,
	invoiceSvc service.InvoiceService,
	paymentSvc service.PaymentService,
	routeSvc service.RouteService,
	hub *notification.Hub,
	log *logger.Logger,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(),
		Tariff:   v1.NewTariffHandler(tariffSvc, log),
		Customer: v1.NewCustomerHandler(customerSvc, meterSvc, log),
		Meter:    v1.NewMeterHandler(meterSvc, log),
		Reading:  v1.NewReadingHandler(readingSvc, log),
		Invoice:  v1.NewInvoiceHandler(invoiceSvc, log),
		Payment:  v1.NewPaymentHandler(paymentSvc, log),
		Route:    v1.NewRouteHandler(routeSvc, log),
		Events:   v1.NewEventsHandler(hub, log),
	}
}

func newRouter(cfg *config.Configuration, handlers api.Handlers, log *logger.Logger) *gin.Engine {
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, log)
}

func migrate(client *postgres.Client) error {
	return client.Migrate()
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
