package routes

import (
	"caterlane/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathPayments = "/payments"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.BookingPaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/preview", invoiceHandler.PreviewInvoice)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoicesByBookingEmail)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:invoice_id/submit", invoiceHandler.SubmitInvoice)
		invoices.PATCH("/:invoice_id/cancel", invoiceHandler.CancelInvoice)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:invoice_id", paymentHandler.CreatePaymentByInvoiceID)
		payments.GET("/:invoice_id", paymentHandler.GetPaymentByInvoiceID)
	}
}
