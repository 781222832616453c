package interfaces

import (
	"context"

	"caterlane/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The service must be able to:
//   - create an invoice once the pricing engine accepted a snapshot
//   - move an invoice through drafting/submitted/paid/cancelled
//   - list a contact's invoices for the booking dashboard

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByBookingEmail(ctx context.Context, email string) ([]entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
