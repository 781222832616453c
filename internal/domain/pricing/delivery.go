package pricing

import (
	"sort"

	"caterlane/internal/domain/entities"
)

// ResolveDeliveryFee maps a computed travel distance to a vendor-declared
// delivery tier: the first range whose ceiling covers the distance, with
// ranges considered in ascending ceiling order.
//
// The already pointer is the sticky state the caller persists per service:
// once a fee was resolved it is returned unchanged regardless of the new
// distance, so fees do not flap while distance estimates refine. A nil result
// means the vendor has delivery disabled or no tier covers the distance; the
// caller decides whether that implies ineligibility or a flat fee.
func ResolveDeliveryFee(distanceMiles float64, details *entities.CateringDetails, already *float64) *float64 {
	if already != nil {
		fee := *already
		return &fee
	}
	if details == nil || !details.DeliveryEnabled || len(details.DeliveryRanges) == 0 {
		return nil
	}
	if distanceMiles < 0 {
		return nil
	}

	ranges := make([]entities.DeliveryRange, len(details.DeliveryRanges))
	copy(ranges, details.DeliveryRanges)
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].MaxMiles < ranges[j].MaxMiles
	})

	for _, r := range ranges {
		if r.MaxMiles >= distanceMiles {
			fee := r.Fee
			return &fee
		}
	}
	return nil
}
