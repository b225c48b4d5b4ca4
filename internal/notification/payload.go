package notification

import "github.com/shopspring/decimal"

// InvoiceCreatedPayload is published after an invoice is persisted.
type InvoiceCreatedPayload struct {
	InvoiceID    int64           `json:"factura_id"`
	CustomerName string          `json:"cliente_nombre"`
	MeterSerial  string          `json:"numero_medidor"`
	Period       string          `json:"periodo"`
	Total        decimal.Decimal `json:"total"`
	DueDate      string          `json:"fecha_vencimiento"`
}

// PaymentReceivedPayload is published after a payment is applied.
type PaymentReceivedPayload struct {
	PaymentID          int64           `json:"pago_id"`
	InvoiceID          int64           `json:"factura_id"`
	Amount             decimal.Decimal `json:"monto"`
	Change             decimal.Decimal `json:"cambio"`
	OutstandingBalance decimal.Decimal `json:"saldo_pendiente"`
	InvoiceStatus      string          `json:"estado_factura"`
}
