package payment

import "context"

// Repository provides read and bookkeeping access to payments. Payment
// creation does not happen here: inserting a payment and decrementing the
// invoice balance must be one transaction, so it lives on the invoice
// repository's ApplyPayment.
type Repository interface {
	Get(ctx context.Context, id int64) (*Payment, error)
	List(ctx context.Context) ([]*Payment, error)
	ListByInvoice(ctx context.Context, invoiceID int64) ([]*Payment, error)
	// Update modifies bookkeeping fields only (method, modified-by).
	// Monetary fields are immutable after creation.
	Update(ctx context.Context, p *Payment) (*Payment, error)
}
