package pricing

import (
	"fmt"

	"caterlane/internal/domain/entities"
)

// Minimum-order rules a vendor can declare on a catering service.
const (
	RuleMinimumGuests      = "minimum_guests"
	RuleMinimumOrderAmount = "minimum_order_amount"
)

// ValidationError reports an unmet vendor minimum. It is the only failure the
// engine signals: data-shape anomalies recover silently, but an unmet minimum
// must abort submission before any invoice is sent.
type ValidationError struct {
	ServiceName string
	Rule        string
	Threshold   float64
	Actual      float64
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleMinimumGuests:
		return fmt.Sprintf("%s requires at least %d guests (got %d)", e.ServiceName, int(e.Threshold), int(e.Actual))
	case RuleMinimumOrderAmount:
		return fmt.Sprintf("%s requires a minimum order of $%.2f (got $%.2f)", e.ServiceName, e.Threshold, e.Actual)
	default:
		return fmt.Sprintf("%s does not meet the vendor minimum", e.ServiceName)
	}
}

// ValidateMinimums runs the two independent vendor gates for a catering
// service: minimum guests and minimum order amount. serviceTotal is the
// per-service catering total only, excluding delivery fee and global
// adjustments. Non-catering services have no minimums and always pass.
func ValidateMinimums(svc entities.Service, guestCount int, serviceTotal float64) *ValidationError {
	if svc.ServiceType != entities.ServiceTypeCatering || svc.Details.Catering == nil {
		return nil
	}
	det := svc.Details.Catering

	if det.MinimumGuests > 0 && guestCount < det.MinimumGuests {
		return &ValidationError{
			ServiceName: svc.Name,
			Rule:        RuleMinimumGuests,
			Threshold:   float64(det.MinimumGuests),
			Actual:      float64(guestCount),
		}
	}
	if det.MinimumOrderAmount > 0 && serviceTotal < det.MinimumOrderAmount {
		return &ValidationError{
			ServiceName: svc.Name,
			Rule:        RuleMinimumOrderAmount,
			Threshold:   det.MinimumOrderAmount,
			Actual:      serviceTotal,
		}
	}
	return nil
}
