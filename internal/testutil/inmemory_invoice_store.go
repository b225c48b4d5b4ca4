package testutil

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/invoice"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository, including the atomic
// payment application the production store performs in one transaction.
type InMemoryInvoiceStore struct {
	mu       sync.Mutex
	store    *InMemoryStore[*invoice.Invoice]
	payments *InMemoryPaymentStore
}

func NewInMemoryInvoiceStore(payments *InMemoryPaymentStore) *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		store:    NewInMemoryStore[*invoice.Invoice](),
		payments: payments,
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	copied := *inv
	return &copied
}

func (s *InMemoryInvoiceStore) Create(_ context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness on the reading id, like the database index.
	for _, existing := range s.store.List() {
		if existing.ReadingID == inv.ReadingID {
			return nil, ierr.NewError("an invoice already exists for this reading").
				WithHint("Each reading can be billed only once").
				WithReportableDetails(map[string]interface{}{
					"lectura_id": inv.ReadingID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	stored := copyInvoice(inv)
	stored.ID = s.store.Insert(stored)
	return copyInvoice(stored), nil
}

func (s *InMemoryInvoiceStore) Get(_ context.Context, id int64) (*invoice.Invoice, error) {
	inv, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]interface{}{"factura_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) GetByReading(_ context.Context, readingID int64) (*invoice.Invoice, error) {
	for _, inv := range s.store.List() {
		if inv.ReadingID == readingID {
			return copyInvoice(inv), nil
		}
	}
	return nil, ierr.NewError("invoice not found for reading").
		WithHint("No invoice exists for this reading").
		WithReportableDetails(map[string]interface{}{"lectura_id": readingID}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryInvoiceStore) List(_ context.Context) ([]*invoice.Invoice, error) {
	invoices := s.store.List()
	out := make([]*invoice.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, copyInvoice(inv))
	}
	return out, nil
}

func (s *InMemoryInvoiceStore) ListByCustomer(_ context.Context, customerID int64) ([]*invoice.Invoice, error) {
	out := make([]*invoice.Invoice, 0)
	for _, inv := range s.store.List() {
		if inv.CustomerID == customerID {
			out = append(out, copyInvoice(inv))
		}
	}
	return out, nil
}

func (s *InMemoryInvoiceStore) ListByStatus(_ context.Context, status types.InvoiceStatus) ([]*invoice.Invoice, error) {
	out := make([]*invoice.Invoice, 0)
	for _, inv := range s.store.List() {
		if inv.Status == status {
			out = append(out, copyInvoice(inv))
		}
	}
	return out, nil
}

func (s *InMemoryInvoiceStore) ApplyPayment(_ context.Context, invoiceID int64, p *payment.Payment) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.store.Get(invoiceID)
	if !ok {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]interface{}{"factura_id": invoiceID}).
			Mark(ierr.ErrNotFound)
	}

	updated := copyInvoice(inv)
	updated.OutstandingBalance = types.RoundMoney(updated.OutstandingBalance.Sub(p.Amount))
	if updated.OutstandingBalance.LessThan(decimal.Zero) {
		return nil, ierr.NewError("payment would overdraw the invoice balance").
			WithHint("The applied amount exceeds the outstanding balance").
			WithReportableDetails(map[string]interface{}{
				"factura_id": invoiceID,
				"monto":      p.Amount.String(),
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	if updated.OutstandingBalance.IsZero() {
		updated.Status = types.InvoiceStatusPaid
	}

	p.InvoiceID = invoiceID
	s.payments.insert(p)

	if err := s.store.Update(invoiceID, updated); err != nil {
		return nil, err
	}
	return copyInvoice(updated), nil
}

func (s *InMemoryInvoiceStore) hasInvoiceForReading(readingID int64) bool {
	for _, inv := range s.store.List() {
		if inv.ReadingID == readingID {
			return true
		}
	}
	return false
}

// CountByReading reports how many invoices exist for a reading; tests use
// it to assert the no-double-invoice property.
func (s *InMemoryInvoiceStore) CountByReading(readingID int64) int {
	count := 0
	for _, inv := range s.store.List() {
		if inv.ReadingID == readingID {
			count++
		}
	}
	return count
}
