package types

// InvoiceStatus tracks the payment state of an invoice. The values are the
// Spanish labels the billing operation uses on the wire and in the store.
type InvoiceStatus string

const (
	// InvoiceStatusPending is set at creation and kept while any balance
	// remains outstanding.
	InvoiceStatusPending InvoiceStatus = "Pendiente"
	// InvoiceStatusPaid is set by payment application once the outstanding
	// balance reaches zero.
	InvoiceStatusPaid InvoiceStatus = "Pagada"
)

func (s InvoiceStatus) Validate() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid:
		return true
	}
	return false
}

// PaymentMethod enumerates how a payment was tendered.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "efectivo"
	PaymentMethodTransfer PaymentMethod = "transferencia"
	PaymentMethodCard     PaymentMethod = "tarjeta"
)

func (m PaymentMethod) Validate() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCard:
		return true
	}
	return false
}

// InvoiceDueDays is the number of days between issue and due date.
const InvoiceDueDays = 30

// BulkItemStatus labels one candidate's outcome in a bulk generation run.
type BulkItemStatus string

const (
	BulkItemGenerated BulkItemStatus = "generada"
	BulkItemFailed    BulkItemStatus = "fallida"
)
