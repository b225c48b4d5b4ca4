package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/config"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
)

// Stores bundles the in-memory repositories a service test needs.
type Stores struct {
	TariffRepo   tariff.Repository
	CustomerRepo customer.Repository
	MeterRepo    meter.Repository
	ReadingRepo  *InMemoryReadingStore
	InvoiceRepo  *InMemoryInvoiceStore
	PaymentRepo  payment.Repository
	RouteRepo    route.Repository
}

// BaseServiceTestSuite wires fresh in-memory stores, a logger and a test
// context for every test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	logger    *logger.Logger
	config    *config.Configuration
	stores    Stores
	publisher *RecordingPublisher
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.config = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.logger = log

	payments := NewInMemoryPaymentStore()
	invoices := NewInMemoryInvoiceStore(payments)
	readings := NewInMemoryReadingStore().WithInvoiceStore(invoices)

	s.stores = Stores{
		TariffRepo:   NewInMemoryTariffStore(),
		CustomerRepo: NewInMemoryCustomerStore(),
		MeterRepo:    NewInMemoryMeterStore(),
		ReadingRepo:  readings,
		InvoiceRepo:  invoices,
		PaymentRepo:  payments,
		RouteRepo:    NewInMemoryRouteStore(),
	}
	s.publisher = NewRecordingPublisher()
}

func (s *BaseServiceTestSuite) TearDownTest() {}

func (s *BaseServiceTestSuite) GetContext() context.Context   { return s.ctx }
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger     { return s.logger }
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration { return s.config }
func (s *BaseServiceTestSuite) GetStores() Stores             { return s.stores }
func (s *BaseServiceTestSuite) GetPublisher() *RecordingPublisher { return s.publisher }
