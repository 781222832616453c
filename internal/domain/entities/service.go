package entities

// ServiceType discriminates which variant of ServiceDetails a booked service
// carries. The values match the marketplace wire contract.

type ServiceType string

const (
	ServiceTypeCatering    ServiceType = "catering"
	ServiceTypeVenue       ServiceType = "venues"
	ServiceTypePartyRental ServiceType = "party_rentals"
	ServiceTypeEventsStaff ServiceType = "events_staff"
)

// Service is one booked offering inside a booking snapshot.
//
// Quantity semantics vary by type:
//   - catering: metadata only; the billed total is the sum of resolved line items
//   - venues: 1 unless a flat fee repeats (hours)
//   - party_rentals: rented units
//   - events_staff: hours
type Service struct {
	ID          string
	ServiceType ServiceType
	Name        string
	VendorID    string
	Price       float64
	PriceType   string
	Quantity    int
	Details     ServiceDetails
}

// ServiceDetails is a tagged variant over the per-type catalogs. Exactly one
// field is non-nil, and it must agree with the owning Service's ServiceType.
type ServiceDetails struct {
	Catering    *CateringDetails
	Venue       *VenueDetails
	PartyRental *PartyRentalDetails
	Staff       *StaffDetails
}

// CateringDetails owns the menu catalog plus the vendor-declared delivery and
// minimum-order policy for a catering service.
type CateringDetails struct {
	MenuItems          []SelectableItem
	DeliveryEnabled    bool
	DeliveryRanges     []DeliveryRange
	MinimumGuests      int
	MinimumOrderAmount float64
}

type VenueDetails struct {
	Amenities []SelectableItem
}

type PartyRentalDetails struct {
	RentalItems []SelectableItem
}

type StaffDetails struct {
	StaffServices []SelectableItem
}

// SelectableItem is a catalog entry belonging to a Service: a menu item,
// rental item, staff-service line, or combo. Combos carry category children.
type SelectableItem struct {
	ID               string
	Name             string
	Category         string
	Price            float64
	AdditionalCharge float64
	IsPremium        bool
	IsCombo          bool
	ComboCategories  []ComboCategory
}

// ComboCategory is one sub-choice group inside a combo. MaxSelections caps how
// many items a buyer may pick from the category.
type ComboCategory struct {
	ID            string
	Name          string
	MaxSelections int
	Items         []ComboCategoryItem
}

type ComboCategoryItem struct {
	ID               string
	Name             string
	Price            float64
	AdditionalCharge float64
	IsPremium        bool
}

// DeliveryRange is one vendor-declared (distance tier, fee) pair. MaxMiles is
// the tier ceiling; tiers are kept sorted ascending by ceiling.
type DeliveryRange struct {
	Range    string  `json:"range"`
	MaxMiles float64 `json:"max_miles"`
	Fee      float64 `json:"fee"`
}

// CatalogItems returns the catalog governed by the service's type. The tag
// dispatch replaces presence-checking optional fields on an untyped bag.
func (s Service) CatalogItems() []SelectableItem {
	switch s.ServiceType {
	case ServiceTypeCatering:
		if s.Details.Catering != nil {
			return s.Details.Catering.MenuItems
		}
	case ServiceTypeVenue:
		if s.Details.Venue != nil {
			return s.Details.Venue.Amenities
		}
	case ServiceTypePartyRental:
		if s.Details.PartyRental != nil {
			return s.Details.PartyRental.RentalItems
		}
	case ServiceTypeEventsStaff:
		if s.Details.Staff != nil {
			return s.Details.Staff.StaffServices
		}
	}
	return nil
}

// FindCatalogItem looks an item up by id in the service's catalog.
func (s Service) FindCatalogItem(itemID string) (SelectableItem, bool) {
	for _, it := range s.CatalogItems() {
		if it.ID == itemID {
			return it, true
		}
	}
	return SelectableItem{}, false
}

// Combos returns the combo definitions present in the service catalog.
func (s Service) Combos() []SelectableItem {
	var combos []SelectableItem
	for _, it := range s.CatalogItems() {
		if it.IsCombo {
			combos = append(combos, it)
		}
	}
	return combos
}
