package invoice

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// Repository provides access to invoices and owns the two write paths that
// must be atomic: invoice creation (guarded by the unique index on
// lectura_id) and payment application.
type Repository interface {
	// Create persists a new invoice. The storage layer's uniqueness
	// constraint on the reading id is the second line of defense against
	// concurrent duplicate creation; violations surface as ErrAlreadyExists.
	Create(ctx context.Context, inv *Invoice) (*Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	GetByReading(ctx context.Context, readingID int64) (*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*Invoice, error)
	ListByStatus(ctx context.Context, status types.InvoiceStatus) ([]*Invoice, error)

	// ApplyPayment atomically inserts the payment row, decrements the
	// invoice's outstanding balance by p.Amount and flips the status to
	// paid when the balance reaches zero. The invoice row is locked for
	// the duration of the transaction so concurrent payments serialize.
	// Returns the updated invoice.
	ApplyPayment(ctx context.Context, invoiceID int64, p *payment.Payment) (*Invoice, error)
}
