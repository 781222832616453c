package response

import (
	"time"

	"caterlane/internal/domain/entities"
)

// CateringItemResponse is one itemized catering row on the wire payload.
type CateringItemResponse struct {
	MenuName            string  `json:"menuName"`
	MenuItemName        string  `json:"menuItemName"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	TotalPrice          float64 `json:"totalPrice"`
	CateringID          string  `json:"cateringId"`
	ComboID             string  `json:"comboId,omitempty"`
	IsComboCategoryItem bool    `json:"isComboCategoryItem"`
	PremiumCharge       float64 `json:"premiumCharge,omitempty"`
}

type DeliveryRangeResponse struct {
	Range    string  `json:"range"`
	MaxMiles float64 `json:"maxMiles"`
	Fee      float64 `json:"fee"`
}

type InvoiceServiceResponse struct {
	ServiceID      string                  `json:"serviceId"`
	ServiceType    string                  `json:"serviceType"`
	ServiceName    string                  `json:"serviceName"`
	VendorID       string                  `json:"vendorId"`
	TotalPrice     float64                 `json:"totalPrice"`
	PriceType      string                  `json:"priceType,omitempty"`
	CateringItems  []CateringItemResponse  `json:"cateringItems,omitempty"`
	DeliveryFee    *float64                `json:"deliveryFee,omitempty"`
	DeliveryRanges []DeliveryRangeResponse `json:"deliveryRanges,omitempty"`
	Price          *float64                `json:"price,omitempty"`
	Quantity       *int                    `json:"quantity,omitempty"`
}

type CustomLineItemResponse struct {
	Label             string  `json:"label"`
	Type              string  `json:"type"`
	Mode              string  `json:"mode"`
	Value             float64 `json:"value"`
	Taxable           bool    `json:"taxable"`
	StatusForDrafting string  `json:"statusForDrafting,omitempty"`
}

type AdjustmentLineResponse struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Taxable bool    `json:"taxable"`
}

// InvoiceResponse is the assembled invoice wire payload.
type InvoiceResponse struct {
	InvoiceID string `json:"invoiceId"`
	ID        string `json:"id"`
	Status    string `json:"status"`

	EventName       string `json:"eventName"`
	CompanyName     string `json:"companyName"`
	EventLocation   string `json:"eventLocation"`
	EventDate       string `json:"eventDate"`
	ServiceTime     string `json:"serviceTime"`
	GuestCount      int    `json:"guestCount"`
	ContactName     string `json:"contactName"`
	PhoneNumber     string `json:"phoneNumber"`
	EmailAddress    string `json:"emailAddress"`
	AdditionalNotes string `json:"additionalNotes"`

	TaxExemptStatus bool `json:"taxExemptStatus"`
	WaiveServiceFee bool `json:"waiveServiceFee"`

	Services        []InvoiceServiceResponse `json:"services"`
	CustomLineItems []CustomLineItemResponse `json:"customLineItems"`
	AdjustmentLines []AdjustmentLineResponse `json:"adjustmentLines,omitempty"`

	Subtotal          float64 `json:"subtotal"`
	AdjustmentsTotal  float64 `json:"adjustmentsTotal"`
	ServiceFee        float64 `json:"serviceFee"`
	DeliveryFeesTotal float64 `json:"deliveryFeesTotal"`
	Tax               float64 `json:"tax"`
	Tip               float64 `json:"tip"`
	GrandTotal        float64 `json:"grandTotal"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:         inv.ID,
		ID:                inv.ID,
		Status:            string(inv.Status),
		EventName:         inv.Booking.EventName,
		CompanyName:       inv.Booking.CompanyName,
		EventLocation:     inv.Booking.EventLocation,
		EventDate:         inv.Booking.EventDate,
		ServiceTime:       inv.Booking.ServiceTime,
		GuestCount:        inv.GuestCount,
		ContactName:       inv.Booking.ContactName,
		PhoneNumber:       inv.Booking.PhoneNumber,
		EmailAddress:      inv.Booking.EmailAddress,
		AdditionalNotes:   inv.Booking.AdditionalNotes,
		TaxExemptStatus:   inv.TaxExemptStatus,
		WaiveServiceFee:   inv.WaiveServiceFee,
		Subtotal:          inv.Subtotal,
		AdjustmentsTotal:  inv.AdjustmentsTotal,
		ServiceFee:        inv.ServiceFee,
		DeliveryFeesTotal: inv.DeliveryFeesTotal,
		Tax:               inv.Tax,
		Tip:               inv.Tip,
		GrandTotal:        inv.GrandTotal,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}

	for _, svc := range inv.Services {
		resp.Services = append(resp.Services, fromInvoiceService(svc))
	}
	for _, adj := range inv.CustomLineItems {
		resp.CustomLineItems = append(resp.CustomLineItems, CustomLineItemResponse{
			Label:             adj.Label,
			Type:              string(adj.Type),
			Mode:              string(adj.Mode),
			Value:             adj.Value,
			Taxable:           adj.Taxable,
			StatusForDrafting: adj.StatusForDrafting,
		})
	}
	for _, line := range inv.AdjustmentLines {
		resp.AdjustmentLines = append(resp.AdjustmentLines, AdjustmentLineResponse(line))
	}

	return resp
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

func fromInvoiceService(svc entities.InvoiceService) InvoiceServiceResponse {
	out := InvoiceServiceResponse{
		ServiceID:   svc.ServiceID,
		ServiceType: string(svc.ServiceType),
		ServiceName: svc.ServiceName,
		VendorID:    svc.VendorID,
		TotalPrice:  svc.TotalPrice,
		PriceType:   svc.PriceType,
		DeliveryFee: svc.DeliveryFee,
	}

	if svc.ServiceType == entities.ServiceTypeCatering {
		for _, li := range svc.LineItems {
			out.CateringItems = append(out.CateringItems, CateringItemResponse{
				MenuName:            li.MenuName,
				MenuItemName:        li.ItemName,
				Price:               li.UnitPrice,
				Quantity:            li.Quantity,
				TotalPrice:          li.TotalPrice,
				CateringID:          li.ItemID,
				ComboID:             li.ParentComboID,
				IsComboCategoryItem: li.IsComboCategoryItem,
				PremiumCharge:       li.PremiumCharge,
			})
		}
		for _, dr := range svc.DeliveryRanges {
			out.DeliveryRanges = append(out.DeliveryRanges, DeliveryRangeResponse{
				Range:    dr.Range,
				MaxMiles: dr.MaxMiles,
				Fee:      dr.Fee,
			})
		}
	} else {
		price := svc.Price
		qty := svc.Quantity
		out.Price = &price
		out.Quantity = &qty
	}

	return out
}
