package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/Mahynlo/Api-AguaVp-sub000/internal/api/v1"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/rest/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health   *v1.HealthHandler
	Tariff   *v1.TariffHandler
	Customer *v1.CustomerHandler
	Meter    *v1.MeterHandler
	Reading  *v1.ReadingHandler
	Invoice  *v1.InvoiceHandler
	Payment  *v1.PaymentHandler
	Route    *v1.RouteHandler
	Events   *v1.EventsHandler
}

// NewRouter wires middleware and mounts every versioned route group.
func NewRouter(handlers Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.IdentityMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandler(log),
	)

	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api/v1")

	tariffs := api.Group("/tarifas")
	{
		tariffs.POST("", handlers.Tariff.CreateTariff)
		tariffs.GET("", handlers.Tariff.ListTariffs)
		tariffs.GET("/:id", handlers.Tariff.GetTariff)
		tariffs.PUT("/:id", handlers.Tariff.UpdateTariff)
		tariffs.PUT("/:id/rangos", handlers.Tariff.ReplaceBands)
		tariffs.DELETE("/:id", handlers.Tariff.DeleteTariff)
	}

	customers := api.Group("/clientes")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.GET("/:id/medidores", handlers.Customer.ListCustomerMeters)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.DELETE("/:id", handlers.Customer.DeleteCustomer)
	}

	meters := api.Group("/medidores")
	{
		meters.POST("", handlers.Meter.CreateMeter)
		meters.GET("", handlers.Meter.ListMeters)
		meters.GET("/:id", handlers.Meter.GetMeter)
		meters.PUT("/:id", handlers.Meter.UpdateMeter)
		meters.DELETE("/:id", handlers.Meter.DeleteMeter)
	}

	readings := api.Group("/lecturas")
	{
		readings.POST("", handlers.Reading.CreateReading)
		readings.GET("", handlers.Reading.ListReadings)
		readings.GET("/:id", handlers.Reading.GetReading)
		readings.PUT("/:id", handlers.Reading.UpdateReading)
		readings.DELETE("/:id", handlers.Reading.DeleteReading)
	}

	invoices := api.Group("/facturas")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.POST("/generar", handlers.Invoice.GenerateInvoices)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
	}

	payments := api.Group("/pagos")
	{
		payments.POST("", handlers.Payment.ApplyPayment)
		payments.GET("", handlers.Payment.ListPayments)
		payments.GET("/:id", handlers.Payment.GetPayment)
		payments.PUT("/:id", handlers.Payment.UpdatePayment)
	}

	routes := api.Group("/rutas")
	{
		routes.POST("", handlers.Route.CreateRoute)
		routes.GET("", handlers.Route.ListRoutes)
		routes.GET("/:id", handlers.Route.GetRoute)
		routes.PUT("/:id", handlers.Route.UpdateRoute)
		routes.DELETE("/:id", handlers.Route.DeleteRoute)
	}

	api.GET("/eventos", handlers.Events.Stream)

	return router
}
