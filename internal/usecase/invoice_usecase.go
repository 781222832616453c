package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"caterlane/internal/domain/entities"
	"caterlane/internal/domain/pricing"
	"caterlane/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrInvalidBookingEmail = errors.New("invalid booking email")
	ErrNoServices          = errors.New("snapshot has no services")
	ErrInvalidGuestCount   = errors.New("invalid guest count")
	ErrInvalidStatusChange = errors.New("invalid invoice status change")
)

// IInvoiceUseCase exposes the order-composition operations.
//
// Preview and Create both run the full pricing engine over a snapshot; Create
// additionally persists the result. Status changes drive the
// drafting -> submitted -> paid|cancelled lifecycle.

type IInvoiceUseCase interface {
	Preview(ctx context.Context, snap pricing.Snapshot) (entities.Invoice, error)
	Create(ctx context.Context, snap pricing.Snapshot) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByBookingEmail(ctx context.Context, email string) ([]entities.Invoice, error)
	Submit(ctx context.Context, id string) (entities.Invoice, error)
	Cancel(ctx context.Context, id string) (entities.Invoice, error)
}

// Rates holds the marketplace-level knobs threaded into every snapshot.
type Rates struct {
	ServiceFeePercent float64
	TaxRatePercent    float64
}

type InvoiceUseCase struct {
	repo  interfaces.IInvoiceRepository
	rates Rates
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, rates Rates) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, rates: rates}
}

func (u *InvoiceUseCase) Preview(ctx context.Context, snap pricing.Snapshot) (entities.Invoice, error) {
	if err := validateSnapshot(snap); err != nil {
		return entities.Invoice{}, err
	}
	return u.assemble(snap)
}

func (u *InvoiceUseCase) Create(ctx context.Context, snap pricing.Snapshot) (entities.Invoice, error) {
	if err := validateSnapshot(snap); err != nil {
		return entities.Invoice{}, err
	}
	if strings.TrimSpace(snap.Booking.EmailAddress) == "" {
		return entities.Invoice{}, ErrInvalidBookingEmail
	}

	inv, err := u.assemble(snap)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv.ID = uuid.NewString()
	inv.Status = entities.InvoiceStatusDrafting
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return u.repo.Create(ctx, inv)
}

// assemble threads the marketplace rates into the snapshot and runs the
// engine. Validation failures pass through as *pricing.ValidationError.
func (u *InvoiceUseCase) assemble(snap pricing.Snapshot) (entities.Invoice, error) {
	snap.ServiceFeePercent = u.rates.ServiceFeePercent
	snap.TaxRatePercent = u.rates.TaxRatePercent
	return pricing.AssembleInvoice(snap)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByBookingEmail(ctx context.Context, email string) ([]entities.Invoice, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidBookingEmail
	}
	return u.repo.ListByBookingEmail(ctx, email)
}

func (u *InvoiceUseCase) Submit(ctx context.Context, id string) (entities.Invoice, error) {
	return u.changeStatus(ctx, id, entities.InvoiceStatusSubmitted)
}

func (u *InvoiceUseCase) Cancel(ctx context.Context, id string) (entities.Invoice, error) {
	return u.changeStatus(ctx, id, entities.InvoiceStatusCancelled)
}

func (u *InvoiceUseCase) changeStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !statusChangeAllowed(inv.Status, status) {
		return entities.Invoice{}, ErrInvalidStatusChange
	}

	updated, err := u.repo.UpdateStatusByID(ctx, inv.ID, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func statusChangeAllowed(from, to entities.InvoiceStatus) bool {
	switch to {
	case entities.InvoiceStatusSubmitted:
		return from == entities.InvoiceStatusDrafting
	case entities.InvoiceStatusPaid:
		return from == entities.InvoiceStatusSubmitted
	case entities.InvoiceStatusCancelled:
		return from == entities.InvoiceStatusDrafting || from == entities.InvoiceStatusSubmitted
	default:
		return false
	}
}

func validateSnapshot(snap pricing.Snapshot) error {
	if len(snap.Services) == 0 {
		return ErrNoServices
	}
	if snap.GuestCount < 0 {
		return ErrInvalidGuestCount
	}
	return nil
}
