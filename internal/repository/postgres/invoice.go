package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainInvoice "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	domainPayment "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

type invoiceRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewInvoiceRepository(client *postgres.Client, log *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{client: client, log: log}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *domainInvoice.Invoice) (*domainInvoice.Invoice, error) {
	r.log.Debugw("creating invoice",
		"reading_id", inv.ReadingID,
		"customer_id", inv.CustomerID,
		"total", inv.Total.String(),
	)

	if err := r.client.DB(ctx).Create(inv).Error; err != nil {
		// The unique index on lectura_id closes the race two concurrent
		// creations would otherwise win together.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ierr.WithError(err).
				WithHint("An invoice already exists for this reading").
				WithReportableDetails(map[string]interface{}{"lectura_id": inv.ReadingID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}
	return inv, nil
}

func (r *invoiceRepository) Get(ctx context.Context, id int64) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	err := r.client.DB(ctx).First(&inv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("invoice not found").
				WithHint("Invoice not found").
				WithReportableDetails(map[string]interface{}{"factura_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) GetByReading(ctx context.Context, readingID int64) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	err := r.client.DB(ctx).Where("lectura_id = ?", readingID).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("invoice not found for reading").
				WithHint("No invoice exists for this reading").
				WithReportableDetails(map[string]interface{}{"lectura_id": readingID}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch invoice by reading").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]*domainInvoice.Invoice, error) {
	var invoices []*domainInvoice.Invoice
	if err := r.client.DB(ctx).Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domainInvoice.Invoice, error) {
	var invoices []*domainInvoice.Invoice
	err := r.client.DB(ctx).
		Where("cliente_id = ?", customerID).
		Order("id ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices for customer").
			WithReportableDetails(map[string]interface{}{"cliente_id": customerID}).
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByStatus(ctx context.Context, status types.InvoiceStatus) ([]*domainInvoice.Invoice, error) {
	var invoices []*domainInvoice.Invoice
	err := r.client.DB(ctx).
		Where("estado = ?", status).
		Order("id ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices by status").
			WithReportableDetails(map[string]interface{}{"estado": status}).
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

// ApplyPayment inserts the payment and updates the invoice in one
// transaction. The invoice row is locked with FOR UPDATE so concurrent
// payments against the same invoice serialize and each one sees the
// balance left by the previous.
func (r *invoiceRepository) ApplyPayment(ctx context.Context, invoiceID int64, p *domainPayment.Payment) (*domainInvoice.Invoice, error) {
	var updated domainInvoice.Invoice

	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		var inv domainInvoice.Invoice
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv, invoiceID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ierr.NewError("invoice not found").
					WithHint("Invoice not found").
					WithReportableDetails(map[string]interface{}{"factura_id": invoiceID}).
					Mark(ierr.ErrNotFound)
			}
			return err
		}

		newBalance := types.RoundMoney(inv.OutstandingBalance.Sub(p.Amount))
		if newBalance.LessThan(decimal.Zero) {
			return ierr.NewError("payment would overdraw the invoice balance").
				WithHint("The applied amount exceeds the outstanding balance").
				WithReportableDetails(map[string]interface{}{
					"factura_id": invoiceID,
					"monto":      p.Amount.String(),
				}).
				Mark(ierr.ErrInvalidOperation)
		}

		status := inv.Status
		if newBalance.IsZero() {
			status = types.InvoiceStatusPaid
		}

		p.InvoiceID = invoiceID
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		err = tx.Model(&domainInvoice.Invoice{}).
			Where("id = ?", invoiceID).
			Updates(map[string]interface{}{
				"saldo_pendiente": newBalance,
				"estado":          status,
			}).Error
		if err != nil {
			return err
		}

		inv.OutstandingBalance = newBalance
		inv.Status = status
		updated = inv
		return nil
	})
	if err != nil {
		if ierr.IsNotFound(err) || ierr.IsInvalidOperation(err) {
			return nil, err
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to apply payment").
			WithReportableDetails(map[string]interface{}{"factura_id": invoiceID}).
			Mark(ierr.ErrDatabase)
	}

	r.log.Infow("payment applied",
		"invoice_id", invoiceID,
		"payment_id", p.ID,
		"amount", p.Amount.String(),
		"new_balance", updated.OutstandingBalance.String(),
	)
	return &updated, nil
}
