package repository

import (
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/cache"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	pgclient "github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
	repo "github.com/Mahynlo/Api-AguaVp-sub000/internal/repository/postgres"
)

// The factory funcs below exist so the fx graph depends on domain
// interfaces, never on the storage package.

func NewTariffRepository(client *pgclient.Client, log *logger.Logger, c cache.Cache) tariff.Repository {
	return repo.NewTariffRepository(client, log, c)
}

func NewCustomerRepository(client *pgclient.Client, log *logger.Logger) customer.Repository {
	return repo.NewCustomerRepository(client, log)
}

func NewMeterRepository(client *pgclient.Client, log *logger.Logger) meter.Repository {
	return repo.NewMeterRepository(client, log)
}

func NewReadingRepository(client *pgclient.Client, log *logger.Logger) reading.Repository {
	return repo.NewReadingRepository(client, log)
}

func NewInvoiceRepository(client *pgclient.Client, log *logger.Logger) invoice.Repository {
	return repo.NewInvoiceRepository(client, log)
}

func NewPaymentRepository(client *pgclient.Client, log *logger.Logger) payment.Repository {
	return repo.NewPaymentRepository(client, log)
}

func NewRouteRepository(client *pgclient.Client, log *logger.Logger) route.Repository {
	return repo.NewRouteRepository(client, log)
}
