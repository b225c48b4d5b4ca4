package testutil

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/payment"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// InMemoryPaymentStore implements payment.Repository. Inserts happen only
// through the invoice store's ApplyPayment, matching production.
type InMemoryPaymentStore struct {
	store *InMemoryStore[*payment.Payment]
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{store: NewInMemoryStore[*payment.Payment]()}
}

func copyPayment(p *payment.Payment) *payment.Payment {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryPaymentStore) insert(p *payment.Payment) {
	p.ID = s.store.Insert(copyPayment(p))
	stored, _ := s.store.Get(p.ID)
	stored.ID = p.ID
}

func (s *InMemoryPaymentStore) Get(_ context.Context, id int64) (*payment.Payment, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]interface{}{"pago_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) List(_ context.Context) ([]*payment.Payment, error) {
	payments := s.store.List()
	out := make([]*payment.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, copyPayment(p))
	}
	return out, nil
}

func (s *InMemoryPaymentStore) ListByInvoice(_ context.Context, invoiceID int64) ([]*payment.Payment, error) {
	out := make([]*payment.Payment, 0)
	for _, p := range s.store.List() {
		if p.InvoiceID == invoiceID {
			out = append(out, copyPayment(p))
		}
	}
	return out, nil
}

func (s *InMemoryPaymentStore) Update(_ context.Context, p *payment.Payment) (*payment.Payment, error) {
	if err := s.store.Update(p.ID, copyPayment(p)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Payment not found").
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(p), nil
}
