package request

import (
	"errors"
	"fmt"
	"strings"

	"caterlane/internal/domain/entities"
	"caterlane/internal/domain/pricing"
)

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrMissingServiceID   = errors.New("missing service id")
)

type ComboCategoryItemRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	AdditionalCharge float64 `json:"additional_charge"`
	IsPremium        bool    `json:"is_premium"`
}

type ComboCategoryRequest struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	MaxSelections int                        `json:"max_selections"`
	Items         []ComboCategoryItemRequest `json:"items"`
}

type SelectableItemRequest struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Category         string                 `json:"category"`
	Price            float64                `json:"price"`
	AdditionalCharge float64                `json:"additional_charge"`
	IsPremium        bool                   `json:"is_premium"`
	IsCombo          bool                   `json:"is_combo"`
	ComboCategories  []ComboCategoryRequest `json:"combo_categories,omitempty"`
}

type DeliveryRangeRequest struct {
	Range    string  `json:"range"`
	MaxMiles float64 `json:"max_miles"`
	Fee      float64 `json:"fee"`
}

type CateringDetailsRequest struct {
	MenuItems          []SelectableItemRequest `json:"menu_items"`
	DeliveryEnabled    bool                    `json:"delivery_enabled"`
	DeliveryRanges     []DeliveryRangeRequest  `json:"delivery_ranges"`
	MinimumGuests      int                     `json:"minimum_guests"`
	MinimumOrderAmount float64                 `json:"minimum_order_amount"`
}

// ServiceRequest carries one booked service: its typed catalog, the raw
// selection map for that service, and the delivery inputs the caller owns
// (computed distance plus any previously resolved sticky fee).
type ServiceRequest struct {
	ID          string  `json:"id"`
	ServiceType string  `json:"service_type" binding:"required"`
	ServiceName string  `json:"service_name"`
	VendorID    string  `json:"vendor_id"`
	Price       float64 `json:"price"`
	PriceType   string  `json:"price_type"`
	Quantity    int     `json:"quantity"`

	Catering    *CateringDetailsRequest `json:"catering,omitempty"`
	Venue       []SelectableItemRequest `json:"venue_amenities,omitempty"`
	RentalItems []SelectableItemRequest `json:"rental_items,omitempty"`
	StaffItems  []SelectableItemRequest `json:"staff_services,omitempty"`

	Selections          map[string]int `json:"selections"`
	DistanceMiles       float64        `json:"distance_miles"`
	ResolvedDeliveryFee *float64       `json:"resolved_delivery_fee,omitempty"`
}

type CustomLineItemRequest struct {
	Label             string  `json:"label"`
	Type              string  `json:"type"`
	Mode              string  `json:"mode"`
	Value             float64 `json:"value"`
	Taxable           bool    `json:"taxable"`
	StatusForDrafting string  `json:"status_for_drafting,omitempty"`
}

// InvoiceRequest is the raw booking snapshot the pricing engine computes
// over. Composite selection keys stay inside each service's selections map;
// the engine decodes them once and they never appear on the response.
type InvoiceRequest struct {
	EventName       string `json:"event_name"`
	CompanyName     string `json:"company_name"`
	EventLocation   string `json:"event_location"`
	EventDate       string `json:"event_date"`
	ServiceTime     string `json:"service_time"`
	GuestCount      int    `json:"guest_count"`
	ContactName     string `json:"contact_name"`
	PhoneNumber     string `json:"phone_number"`
	EmailAddress    string `json:"email_address"`
	AdditionalNotes string `json:"additional_notes"`

	TaxExemptStatus bool    `json:"tax_exempt_status"`
	WaiveServiceFee bool    `json:"waive_service_fee"`
	Tip             float64 `json:"tip"`

	Services        []ServiceRequest        `json:"services" binding:"required"`
	CustomLineItems []CustomLineItemRequest `json:"custom_line_items"`
}

// ToSnapshot converts the payload into the engine's input snapshot.
func (r InvoiceRequest) ToSnapshot() (pricing.Snapshot, error) {
	snap := pricing.Snapshot{
		Booking: entities.BookingDetails{
			EventName:       strings.TrimSpace(r.EventName),
			CompanyName:     strings.TrimSpace(r.CompanyName),
			EventLocation:   strings.TrimSpace(r.EventLocation),
			EventDate:       strings.TrimSpace(r.EventDate),
			ServiceTime:     strings.TrimSpace(r.ServiceTime),
			ContactName:     strings.TrimSpace(r.ContactName),
			PhoneNumber:     strings.TrimSpace(r.PhoneNumber),
			EmailAddress:    strings.TrimSpace(r.EmailAddress),
			AdditionalNotes: r.AdditionalNotes,
		},
		GuestCount:           r.GuestCount,
		TaxExemptStatus:      r.TaxExemptStatus,
		WaiveServiceFee:      r.WaiveServiceFee,
		Tip:                  r.Tip,
		Selections:           map[string]entities.SelectionMap{},
		Distances:            map[string]float64{},
		ResolvedDeliveryFees: map[string]float64{},
	}

	for _, sr := range r.Services {
		svc, err := sr.toService()
		if err != nil {
			return pricing.Snapshot{}, err
		}
		snap.Services = append(snap.Services, svc)
		if len(sr.Selections) > 0 {
			snap.Selections[svc.ID] = sr.Selections
		}
		snap.Distances[svc.ID] = sr.DistanceMiles
		if sr.ResolvedDeliveryFee != nil {
			snap.ResolvedDeliveryFees[svc.ID] = *sr.ResolvedDeliveryFee
		}
	}

	for _, adj := range r.CustomLineItems {
		snap.Adjustments = append(snap.Adjustments, entities.CustomAdjustment{
			Label:             adj.Label,
			Type:              entities.AdjustmentType(adj.Type),
			Mode:              entities.AdjustmentMode(adj.Mode),
			Value:             adj.Value,
			Taxable:           adj.Taxable,
			StatusForDrafting: adj.StatusForDrafting,
		})
	}

	return snap, nil
}

func (sr ServiceRequest) toService() (entities.Service, error) {
	id := strings.TrimSpace(sr.ID)
	if id == "" {
		return entities.Service{}, ErrMissingServiceID
	}

	svc := entities.Service{
		ID:        id,
		Name:      strings.TrimSpace(sr.ServiceName),
		VendorID:  strings.TrimSpace(sr.VendorID),
		Price:     sr.Price,
		PriceType: sr.PriceType,
		Quantity:  sr.Quantity,
	}

	switch entities.ServiceType(sr.ServiceType) {
	case entities.ServiceTypeCatering:
		svc.ServiceType = entities.ServiceTypeCatering
		det := &entities.CateringDetails{}
		if sr.Catering != nil {
			det.MenuItems = toItems(sr.Catering.MenuItems)
			det.DeliveryEnabled = sr.Catering.DeliveryEnabled
			det.MinimumGuests = sr.Catering.MinimumGuests
			det.MinimumOrderAmount = sr.Catering.MinimumOrderAmount
			for _, dr := range sr.Catering.DeliveryRanges {
				det.DeliveryRanges = append(det.DeliveryRanges, entities.DeliveryRange{
					Range:    dr.Range,
					MaxMiles: dr.MaxMiles,
					Fee:      dr.Fee,
				})
			}
		}
		svc.Details.Catering = det
	case entities.ServiceTypeVenue:
		svc.ServiceType = entities.ServiceTypeVenue
		svc.Details.Venue = &entities.VenueDetails{Amenities: toItems(sr.Venue)}
	case entities.ServiceTypePartyRental:
		svc.ServiceType = entities.ServiceTypePartyRental
		svc.Details.PartyRental = &entities.PartyRentalDetails{RentalItems: toItems(sr.RentalItems)}
	case entities.ServiceTypeEventsStaff:
		svc.ServiceType = entities.ServiceTypeEventsStaff
		svc.Details.Staff = &entities.StaffDetails{StaffServices: toItems(sr.StaffItems)}
	default:
		return entities.Service{}, fmt.Errorf("%w: %q", ErrUnknownServiceType, sr.ServiceType)
	}

	return svc, nil
}

func toItems(items []SelectableItemRequest) []entities.SelectableItem {
	out := make([]entities.SelectableItem, 0, len(items))
	for _, it := range items {
		item := entities.SelectableItem{
			ID:               it.ID,
			Name:             it.Name,
			Category:         it.Category,
			Price:            it.Price,
			AdditionalCharge: it.AdditionalCharge,
			IsPremium:        it.IsPremium,
			IsCombo:          it.IsCombo,
		}
		for _, cat := range it.ComboCategories {
			cc := entities.ComboCategory{
				ID:            cat.ID,
				Name:          cat.Name,
				MaxSelections: cat.MaxSelections,
			}
			for _, ci := range cat.Items {
				cc.Items = append(cc.Items, entities.ComboCategoryItem{
					ID:               ci.ID,
					Name:             ci.Name,
					Price:            ci.Price,
					AdditionalCharge: ci.AdditionalCharge,
					IsPremium:        ci.IsPremium,
				})
			}
			item.ComboCategories = append(item.ComboCategories, cc)
		}
		out = append(out, item)
	}
	return out
}
