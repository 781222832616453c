package interfaces

import (
	"context"

	"caterlane/internal/domain/entities"
)

// IBookingPaymentRepository abstracts DynamoDB persistence for BookingPayment.

type IBookingPaymentRepository interface {
	Create(ctx context.Context, p entities.BookingPayment) (entities.BookingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BookingPayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BookingPayment, error)
}
