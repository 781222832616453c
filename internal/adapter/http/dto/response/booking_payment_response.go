package response

import (
	"time"

	"caterlane/internal/domain/entities"
)

type BookingPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBookingPayment(p entities.BookingPayment) BookingPaymentResponse {
	return BookingPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		InvoiceID:    p.InvoiceID,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
