package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the deposit payment outcome.
//
// In the current scope we only need to create/process and persist an approved
// deposit. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BookingPayment is the booking-deposit payment persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.

type BookingPayment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
