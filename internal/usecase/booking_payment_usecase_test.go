package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"caterlane/internal/domain/entities"
	mock_interfaces "caterlane/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBookingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty invoice id", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentInvoiceID) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewBookingPaymentUseCase(nil, invRepo, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("invoice repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(nil, nil, gateway)

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "invoice repository not configured" {
			t.Fatalf("expected invoice repository not configured error, got %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_InvoiceChecks(t *testing.T) {
	t.Run("invoice repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

		invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

		invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("invoice not submitted", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

		invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDrafting}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvoiceNotSubmitted) {
			t.Fatalf("expected ErrInvoiceNotSubmitted, got %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
			invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

			invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted, GrandTotal: 500}, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

		invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted, GrandTotal: 500}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
	invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

	invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted, GrandTotal: 758.75}, nil)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("payload should be valid json: %v", err)
			}
			if body["external_reference"] != "inv-1" {
				t.Fatalf("external_reference not set")
			}
			if body["description"] != "Booking deposit for invoice inv-1" {
				t.Fatalf("description not set")
			}
			if body["transaction_amount"] != float64(758.75) {
				t.Fatalf("transaction_amount should come from the stored invoice")
			}
			return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
		},
	)

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingPayment{})).DoAndReturn(
		func(_ context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
			if p.ID != "pay-1" || p.InvoiceID != "inv-1" || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if p.Date.IsZero() {
				t.Fatalf("date must be set")
			}
			return p, nil
		},
	)

	invRepo.EXPECT().UpdateStatusByID(gomock.Any(), "inv-1", entities.InvoiceStatusPaid).Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

	// A caller-supplied amount must be ignored in favor of the stored total.
	created, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "pay-1" {
		t.Fatalf("unexpected created payment: %+v", created)
	}
}

func TestBookingPaymentUseCase_CreateAndApprove_MarkPaidFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
	invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBookingPaymentUseCase(repo, invRepo, gateway)

	invRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSubmitted, GrandTotal: 100}, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":"pay-1"}`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.BookingPayment) (entities.BookingPayment, error) { return p, nil },
	)
	invRepo.EXPECT().UpdateStatusByID(gomock.Any(), "inv-1", entities.InvoiceStatusPaid).Return(entities.Invoice{}, errors.New("db"))

	created, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("deposit is captured, expected success, got %v", err)
	}
	if created.ID != "pay-1" {
		t.Fatalf("unexpected payment: %+v", created)
	}
}

func TestBookingPaymentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		uc := NewBookingPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BookingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrBookingPaymentNotFound) {
			t.Fatalf("expected ErrBookingPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		uc := NewBookingPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BookingPayment{ID: "pay-1", Date: time.Now()}, nil)

		p, err := uc.GetByID(context.Background(), "pay-1")
		if err != nil || p.ID != "pay-1" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})
}

func TestBookingPaymentUseCase_ListByInvoiceID(t *testing.T) {
	t.Run("invalid invoice id", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByInvoiceID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentInvoiceID) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		uc := NewBookingPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.BookingPayment{{ID: "pay-1"}}, nil)

		got, err := uc.ListByInvoiceID(context.Background(), "inv-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
