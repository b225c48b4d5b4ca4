package postgres

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/config"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
)

// Client wraps the gorm connection so repositories never import gorm's
// driver details directly.
type Client struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewClient opens the postgres connection and tunes the pool.
func NewClient(cfg *config.Configuration, log *logger.Logger) (*Client, error) {
	gormLevel := gormlogger.Warn
	if cfg.Logging.Level == "debug" {
		gormLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to postgres").
			Mark(ierr.ErrDatabase)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to access the underlying connection pool").
			Mark(ierr.ErrDatabase)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Client{db: db, log: log}, nil
}

// DB returns a session bound to the given context.
func (c *Client) DB(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}

// WithTx runs fn inside a single transaction bound to ctx.
func (c *Client) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return c.db.WithContext(ctx).Transaction(fn)
}

// Migrate creates or updates the schema for every persisted entity.
func (c *Client) Migrate() error {
	err := c.db.AutoMigrate(
		&route.Route{},
		&tariff.Tariff{},
		&tariff.Band{},
		&customer.Customer{},
		&meter.Meter{},
		&reading.Reading{},
		&invoice.Invoice{},
		&payment.Payment{},
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Schema migration failed").
			Mark(ierr.ErrDatabase)
	}
	c.log.Infow("database schema migrated")
	return nil
}
