package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"caterlane/internal/domain/entities"
	"caterlane/internal/usecase/interfaces"
)

var (
	ErrBookingPaymentNotFound     = errors.New("booking payment not found")
	ErrInvalidPaymentInvoiceID    = errors.New("invalid invoice_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrInvoiceNotSubmitted        = errors.New("invoice not submitted")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBookingPaymentUseCase encapsulates the "collect a booking deposit" flow:
// charge the stored invoice's grand total through the gateway and persist the
// approved payment.

type IBookingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.BookingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BookingPayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BookingPayment, error)
}

type BookingPaymentUseCase struct {
	repo        interfaces.IBookingPaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
}

var _ IBookingPaymentUseCase = (*BookingPaymentUseCase)(nil)

func NewBookingPaymentUseCase(repo interfaces.IBookingPaymentRepository, invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *BookingPaymentUseCase {
	return &BookingPaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway}
}

func (u *BookingPaymentUseCase) CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.BookingPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_invoice_id=%q payload_len=%d", invoiceID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.BookingPayment{}, ErrInvalidPaymentInvoiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload invoice_id=%s", invoiceID)
			return entities.BookingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BookingPayment{}, errors.New("payment gateway not configured")
	}
	if u.invoiceRepo == nil {
		return entities.BookingPayment{}, errors.New("invoice repository not configured")
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_id=%s err=%v", invoiceID, err)
		return entities.BookingPayment{}, err
	}
	if inv.ID == "" {
		return entities.BookingPayment{}, ErrInvoiceNotFound
	}
	if !mockMode && inv.Status != entities.InvoiceStatusSubmitted {
		log.Printf("[payment][usecase] invoice not submitted invoice_id=%s status=%s", invoiceID, inv.Status)
		return entities.BookingPayment{}, ErrInvoiceNotSubmitted
	}
	log.Printf("[payment][usecase] invoice loaded invoice_id=%s status=%s grand_total=%.2f", invoiceID, inv.Status, inv.GrandTotal)

	// Mercado Pago uses external_reference to reconcile events; the amount is
	// never caller-supplied, the stored invoice is the source of truth.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = invoiceID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Booking deposit for invoice %s", invoiceID)
		}
		reqMap["transaction_amount"] = inv.GrandTotal
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway invoice_id=%s", invoiceID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerResp = mockProviderResponse(providerPaymentID, invoiceID, inv.GrandTotal, mpPayload)
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
			if isGatewayUnauthorized(err) {
				return entities.BookingPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.BookingPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.BookingPayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}

	p := entities.BookingPayment{
		ID:           providerPaymentID,
		InvoiceID:    invoiceID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed invoice_id=%s payment_id=%s err=%v", invoiceID, p.ID, err)
		return entities.BookingPayment{}, err
	}

	if _, err := u.invoiceRepo.UpdateStatusByID(ctx, invoiceID, entities.InvoiceStatusPaid); err != nil {
		// The deposit is captured; status reconciliation can retry later.
		log.Printf("[payment][usecase] failed marking invoice paid invoice_id=%s err=%v", invoiceID, err)
	}

	log.Printf("[payment][usecase] create-and-approve success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)
	return created, nil
}

func (u *BookingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BookingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BookingPayment{}, err
	}
	if p.ID == "" {
		return entities.BookingPayment{}, ErrBookingPaymentNotFound
	}
	return p, nil
}

func (u *BookingPaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BookingPayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func mockProviderResponse(paymentID, invoiceID string, amount float64, requestPayload json.RawMessage) json.RawMessage {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		_ = json.Unmarshal(requestPayload, &resp)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = paymentID
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = invoiceID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return json.RawMessage("{}")
	}
	return b
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`)
}
