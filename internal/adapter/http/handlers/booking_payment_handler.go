package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "caterlane/internal/adapter/http/dto/response"
	"caterlane/internal/usecase"
	"caterlane/pkg"

	"github.com/gin-gonic/gin"
)

// BookingPaymentHandler handles HTTP requests for booking deposit payments.

type BookingPaymentHandler struct {
	usecase usecase.IBookingPaymentUseCase
}

func NewBookingPaymentHandler(uc usecase.IBookingPaymentUseCase) *BookingPaymentHandler {
	return &BookingPaymentHandler{usecase: uc}
}

// CreatePaymentByInvoiceID creates/approves a deposit payment using invoice_id in path.
func (h *BookingPaymentHandler) CreatePaymentByInvoiceID(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] create start invoice_id=%s", invoiceID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload invoice_id=%s err=%v", invoiceID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapBookingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBookingPayment(created))
}

// GetPaymentByInvoiceID returns the latest payment for an invoice.
func (h *BookingPaymentHandler) GetPaymentByInvoiceID(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] get-by-invoice start invoice_id=%s", invoiceID)

	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] get-by-invoice failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapBookingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-invoice not-found invoice_id=%s", invoiceID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-invoice success invoice_id=%s payment_id=%s status=%s", invoiceID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromBookingPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBookingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotSubmitted):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_SUBMITTED", "Invoice not submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
