package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainPayment "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
)

type paymentRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewPaymentRepository(client *postgres.Client, log *logger.Logger) domainPayment.Repository {
	return &paymentRepository{client: client, log: log}
}

func (r *paymentRepository) Get(ctx context.Context, id int64) (*domainPayment.Payment, error) {
	var p domainPayment.Payment
	err := r.client.DB(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("payment not found").
				WithHint("Payment not found").
				WithReportableDetails(map[string]interface{}{"pago_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch payment").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]*domainPayment.Payment, error) {
	var payments []*domainPayment.Payment
	if err := r.client.DB(ctx).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]*domainPayment.Payment, error) {
	var payments []*domainPayment.Payment
	err := r.client.DB(ctx).
		Where("factura_id = ?", invoiceID).
		Order("id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments for invoice").
			WithReportableDetails(map[string]interface{}{"factura_id": invoiceID}).
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

// Update touches bookkeeping columns only. Monetary columns never change
// after the payment is applied.
func (r *paymentRepository) Update(ctx context.Context, p *domainPayment.Payment) (*domainPayment.Payment, error) {
	result := r.client.DB(ctx).Model(&domainPayment.Payment{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"metodo_pago":    p.Method,
			"modificado_por": p.ModifiedBy,
			"updated_at":     p.UpdatedAt,
			"updated_by":     p.UpdatedBy,
		})
	if result.Error != nil {
		return nil, ierr.WithError(result.Error).
			WithHint("Failed to update payment").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]interface{}{"pago_id": p.ID}).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, p.ID)
}
