package handlers

import (
	"context"
	"errors"
	"net/http"

	request "caterlane/internal/adapter/http/dto/request"
	response "caterlane/internal/adapter/http/dto/response"
	"caterlane/internal/domain/entities"
	"caterlane/internal/domain/pricing"
	"caterlane/internal/usecase"
	"caterlane/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for order composition and pricing.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// PreviewInvoice prices a booking snapshot without persisting anything.
//
// The same payload sent twice returns the same totals, so the frontend can
// re-render the invoice on every cart change.
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	snap, ok := h.bindSnapshot(c)
	if !ok {
		return
	}

	invoice, err := h.usecase.Preview(c.Request.Context(), snap)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// CreateInvoice prices a booking snapshot and persists the resulting invoice
// in drafting status.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	snap, ok := h.bindSnapshot(c)
	if !ok {
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), snap)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// GetInvoice returns a stored invoice by id, or the invoices for a booking
// email when the booking_email query parameter is set instead.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// ListInvoicesByBookingEmail returns every invoice stored for a booking email.
func (h *InvoiceHandler) ListInvoicesByBookingEmail(c *gin.Context) {
	email := c.Query("booking_email")
	if email == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	invoices, err := h.usecase.ListByBookingEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) SubmitInvoice(c *gin.Context) {
	h.patchInvoiceStatusByID(c, h.usecase.Submit)
}

func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	h.patchInvoiceStatusByID(c, h.usecase.Cancel)
}

func (h *InvoiceHandler) patchInvoiceStatusByID(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Invoice, error),
) {
	invoice, err := updater(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) bindSnapshot(c *gin.Context) (pricing.Snapshot, bool) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return pricing.Snapshot{}, false
	}

	snap, err := payload.ToSnapshot()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return pricing.Snapshot{}, false
	}

	return snap, true
}

func mapInvoiceError(err error) *pkg.AppError {
	var minimumErr *pricing.ValidationError
	if errors.As(err, &minimumErr) {
		return pkg.NewDomainErrorSimple("MINIMUM_ORDER_NOT_MET", minimumErr.Error(), http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidBookingEmail), errors.Is(err, usecase.ErrNoServices), errors.Is(err, usecase.ErrInvalidGuestCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusChange):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_CHANGE", "Invoice status change not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
