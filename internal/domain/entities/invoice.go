package entities

import "time"

// InvoiceStatus represents the lifecycle of a marketplace invoice.
//
// Domain notes:
//   - This service is the source of truth for invoice/payment state.
//   - Transitions: drafting -> submitted -> paid | cancelled.

type InvoiceStatus string

const (
	InvoiceStatusDrafting  InvoiceStatus = "drafting"
	InvoiceStatusSubmitted InvoiceStatus = "submitted"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// AdjustmentType and AdjustmentMode qualify a custom line item entered by an
// admin against the aggregate services subtotal.

type AdjustmentType string

const (
	AdjustmentTypeFixed      AdjustmentType = "fixed"
	AdjustmentTypePercentage AdjustmentType = "percentage"
)

type AdjustmentMode string

const (
	AdjustmentModeDiscount  AdjustmentMode = "discount"
	AdjustmentModeSurcharge AdjustmentMode = "surcharge"
)

// CustomAdjustment is an admin-entered discount or surcharge. Applied once
// against the aggregate services subtotal, never against delivery fees.
type CustomAdjustment struct {
	Label             string         `json:"label"`
	Type              AdjustmentType `json:"type"`
	Mode              AdjustmentMode `json:"mode"`
	Value             float64        `json:"value"`
	Taxable           bool           `json:"taxable"`
	StatusForDrafting string         `json:"status_for_drafting,omitempty"`
}

// InvoiceLineItem is one itemized row of a priced service.
type InvoiceLineItem struct {
	MenuName            string  `json:"menu_name"`
	ItemName            string  `json:"item_name"`
	ItemID              string  `json:"item_id"`
	UnitPrice           float64 `json:"unit_price"`
	Quantity            int     `json:"quantity"`
	TotalPrice          float64 `json:"total_price"`
	PremiumCharge       float64 `json:"premium_charge,omitempty"`
	ParentComboID       string  `json:"parent_combo_id,omitempty"`
	IsComboCategoryItem bool    `json:"is_combo_category_item"`
}

// InvoiceService is the priced form of one booked service.
//
// Catering is the only type whose TotalPrice is the sum of its line items;
// every other type bills Price x Quantity and keeps line items informational.
type InvoiceService struct {
	ServiceID      string            `json:"service_id"`
	ServiceType    ServiceType       `json:"service_type"`
	ServiceName    string            `json:"service_name"`
	VendorID       string            `json:"vendor_id"`
	PriceType      string            `json:"price_type,omitempty"`
	Price          float64           `json:"price,omitempty"`
	Quantity       int               `json:"quantity,omitempty"`
	TotalPrice     float64           `json:"total_price"`
	LineItems      []InvoiceLineItem `json:"line_items,omitempty"`
	DeliveryFee    *float64          `json:"delivery_fee,omitempty"`
	DeliveryRanges []DeliveryRange   `json:"delivery_ranges,omitempty"`
}

// AdjustmentLine records one applied custom adjustment with its signed amount.
type AdjustmentLine struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Taxable bool    `json:"taxable"`
}

// BookingDetails carries the event/contact fields the invoice payload echoes.
type BookingDetails struct {
	EventName       string `json:"event_name"`
	CompanyName     string `json:"company_name"`
	EventLocation   string `json:"event_location"`
	EventDate       string `json:"event_date"`
	ServiceTime     string `json:"service_time"`
	ContactName     string `json:"contact_name"`
	PhoneNumber     string `json:"phone_number"`
	EmailAddress    string `json:"email_address"`
	AdditionalNotes string `json:"additional_notes"`
}

// Invoice is the fully assembled, reconciled output of the pricing engine,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_email-index): booking_email
type Invoice struct {
	ID      string
	Status  InvoiceStatus
	Booking BookingDetails

	GuestCount      int
	TaxExemptStatus bool
	WaiveServiceFee bool
	Services        []InvoiceService
	CustomLineItems []CustomAdjustment
	AdjustmentLines []AdjustmentLine

	Subtotal          float64
	AdjustmentsTotal  float64
	ServiceFee        float64
	DeliveryFeesTotal float64
	Tax               float64
	Tip               float64
	GrandTotal        float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedDeliveryFees maps service id to the fee resolved for it, the sticky
// state the caller passes back on recomputation.
func (i Invoice) ResolvedDeliveryFees() map[string]float64 {
	fees := map[string]float64{}
	for _, s := range i.Services {
		if s.DeliveryFee != nil {
			fees[s.ServiceID] = *s.DeliveryFee
		}
	}
	return fees
}
