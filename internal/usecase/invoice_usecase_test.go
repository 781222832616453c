package usecase

import (
	"context"
	"errors"
	"testing"

	"caterlane/internal/domain/entities"
	"caterlane/internal/domain/pricing"
	mock_interfaces "caterlane/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func venueSnapshot() pricing.Snapshot {
	return pricing.Snapshot{
		Booking:    entities.BookingDetails{EventName: "Launch Party", EmailAddress: "host@example.com"},
		GuestCount: 40,
		Services: []entities.Service{
			{ID: "svc-venue", ServiceType: entities.ServiceTypeVenue, Name: "Downtown Loft", Price: 200, Quantity: 3},
		},
	}
}

func gatedSnapshot() pricing.Snapshot {
	snap := venueSnapshot()
	snap.Services = append(snap.Services, entities.Service{
		ID:          "svc-catering",
		ServiceType: entities.ServiceTypeCatering,
		Name:        "Smokehouse BBQ",
		Details: entities.ServiceDetails{
			Catering: &entities.CateringDetails{MinimumGuests: 100},
		},
	})
	return snap
}

func TestInvoiceUseCase_Preview(t *testing.T) {
	t.Run("no services", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{})
		_, err := uc.Preview(context.Background(), pricing.Snapshot{})
		if !errors.Is(err, ErrNoServices) {
			t.Fatalf("expected ErrNoServices, got %v", err)
		}
	})

	t.Run("negative guest count", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{})
		snap := venueSnapshot()
		snap.GuestCount = -1
		_, err := uc.Preview(context.Background(), snap)
		if !errors.Is(err, ErrInvalidGuestCount) {
			t.Fatalf("expected ErrInvalidGuestCount, got %v", err)
		}
	})

	t.Run("unmet minimum surfaces the validation error", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{})
		_, err := uc.Preview(context.Background(), gatedSnapshot())
		var verr *pricing.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *pricing.ValidationError, got %v", err)
		}
	})

	t.Run("success applies the marketplace rates without persisting", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{ServiceFeePercent: 5, TaxRatePercent: 8})

		inv, err := uc.Preview(context.Background(), venueSnapshot())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "" {
			t.Fatalf("preview must not assign an id, got %q", inv.ID)
		}
		if inv.ServiceFee != 30 {
			t.Fatalf("expected service fee 30, got %.2f", inv.ServiceFee)
		}
		if inv.Tax != 50.4 {
			t.Fatalf("expected tax 50.40, got %.2f", inv.Tax)
		}
	})
}

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("missing booking email", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{})
		snap := venueSnapshot()
		snap.Booking.EmailAddress = "   "
		_, err := uc.Create(context.Background(), snap)
		if !errors.Is(err, ErrInvalidBookingEmail) {
			t.Fatalf("expected ErrInvalidBookingEmail, got %v", err)
		}
	})

	t.Run("success persists a drafting invoice with id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{ServiceFeePercent: 5})

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.ID == "" {
					t.Fatalf("expected an id")
				}
				if inv.Status != entities.InvoiceStatusDrafting {
					t.Fatalf("expected drafting, got %s", inv.Status)
				}
				if inv.CreatedAt.IsZero() || inv.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if inv.Subtotal != 600 {
					t.Fatalf("expected subtotal 600, got %.2f", inv.Subtotal)
				}
				return inv, nil
			},
		)

		inv, err := uc.Create(context.Background(), venueSnapshot())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID == "" {
			t.Fatalf("expected the persisted invoice back")
		}
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.Create(context.Background(), venueSnapshot())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{})
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.GetByID(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("success trims the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)

		inv, err := uc.GetByID(context.Background(), " inv-1 ")
		if err != nil || inv.ID != "inv-1" {
			t.Fatalf("unexpected result: %+v %v", inv, err)
		}
	})
}

func TestInvoiceUseCase_StatusChanges(t *testing.T) {
	t.Run("submit a drafting invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDrafting}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "inv-1", entities.InvoiceStatusSubmitted).Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted}, nil)

		inv, err := uc.Submit(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusSubmitted {
			t.Fatalf("expected submitted, got %s", inv.Status)
		}
	})

	t.Run("submit twice is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted}, nil)

		_, err := uc.Submit(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvalidStatusChange) {
			t.Fatalf("expected ErrInvalidStatusChange, got %v", err)
		}
	})

	t.Run("cancel a submitted invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "inv-1", entities.InvoiceStatusCancelled).Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusCancelled}, nil)

		if _, err := uc.Cancel(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel a paid invoice is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		_, err := uc.Cancel(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvalidStatusChange) {
			t.Fatalf("expected ErrInvalidStatusChange, got %v", err)
		}
	})
}

func TestInvoiceUseCase_ListByBookingEmail(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, Rates{})
		_, err := uc.ListByBookingEmail(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidBookingEmail) {
			t.Fatalf("expected ErrInvalidBookingEmail, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, Rates{})

		repo.EXPECT().ListByBookingEmail(gomock.Any(), "host@example.com").Return([]entities.Invoice{{ID: "inv-1"}}, nil)

		got, err := uc.ListByBookingEmail(context.Background(), "host@example.com")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func TestStatusChangeAllowed(t *testing.T) {
	cases := []struct {
		from, to entities.InvoiceStatus
		want     bool
	}{
		{entities.InvoiceStatusDrafting, entities.InvoiceStatusSubmitted, true},
		{entities.InvoiceStatusDrafting, entities.InvoiceStatusCancelled, true},
		{entities.InvoiceStatusDrafting, entities.InvoiceStatusPaid, false},
		{entities.InvoiceStatusSubmitted, entities.InvoiceStatusPaid, true},
		{entities.InvoiceStatusSubmitted, entities.InvoiceStatusCancelled, true},
		{entities.InvoiceStatusSubmitted, entities.InvoiceStatusSubmitted, false},
		{entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled, false},
		{entities.InvoiceStatusCancelled, entities.InvoiceStatusSubmitted, false},
	}
	for _, tc := range cases {
		if got := statusChangeAllowed(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}
