package service

import (
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
)

// ServiceParams bundles every dependency a service can need. Services embed
// it and pick what they use; the notification publisher is injected here so
// no service ever reaches for ambient state.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	TariffRepo   tariff.Repository
	CustomerRepo customer.Repository
	MeterRepo    meter.Repository
	ReadingRepo  reading.Repository
	InvoiceRepo  invoice.Repository
	PaymentRepo  payment.Repository
	RouteRepo    route.Repository

	Publisher notification.Publisher
}
