package pricing

import "caterlane/internal/domain/entities"

// Snapshot is the immutable input the engine prices. Callers own it and
// decide when to recompute; the engine never mutates it, so every call to
// AssembleInvoice is complete and self-consistent.
type Snapshot struct {
	Booking         entities.BookingDetails
	GuestCount      int
	TaxExemptStatus bool
	WaiveServiceFee bool
	Tip             float64

	Services   []entities.Service
	Selections map[string]entities.SelectionMap // service id -> raw selections

	// Delivery inputs. Distances holds the computed travel miles per service;
	// ResolvedDeliveryFees is the sticky state from earlier resolutions.
	Distances            map[string]float64
	ResolvedDeliveryFees map[string]float64

	Adjustments []entities.CustomAdjustment

	ServiceFeePercent float64
	TaxRatePercent    float64
}

// AssembleInvoice runs the full engine over a snapshot: price every service,
// gate on vendor minimums, resolve delivery fees, apply adjustments, and
// reconcile the grand total.
//
// The invoice is recomputed from scratch on every call; identical snapshots
// yield identical invoices. On an unmet minimum the returned error is a
// *ValidationError and no invoice is produced.
func AssembleInvoice(snap Snapshot) (entities.Invoice, error) {
	bills := make([]ServiceBill, len(snap.Services))
	for i, svc := range snap.Services {
		bills[i] = PriceService(svc, snap.Selections[svc.ID], snap.GuestCount)
	}

	// The gate runs on per-service catering totals, before any payload is
	// assembled, so a failed submission sends nothing partial.
	for i, svc := range snap.Services {
		if verr := ValidateMinimums(svc, snap.GuestCount, bills[i].Total); verr != nil {
			return entities.Invoice{}, verr
		}
	}

	subtotal := 0.0
	deliveryTotal := 0.0
	services := make([]entities.InvoiceService, 0, len(snap.Services))
	for i, svc := range snap.Services {
		bill := bills[i]
		subtotal += bill.Total

		out := entities.InvoiceService{
			ServiceID:   svc.ID,
			ServiceType: svc.ServiceType,
			ServiceName: svc.Name,
			VendorID:    svc.VendorID,
			PriceType:   svc.PriceType,
			TotalPrice:  bill.Total,
			LineItems:   bill.LineItems,
		}
		if svc.ServiceType != entities.ServiceTypeCatering {
			out.Price = svc.Price
			out.Quantity = svc.Quantity
		}

		if svc.ServiceType == entities.ServiceTypeCatering && svc.Details.Catering != nil {
			out.DeliveryRanges = svc.Details.Catering.DeliveryRanges
			fee := ResolveDeliveryFee(
				snap.Distances[svc.ID],
				svc.Details.Catering,
				stickyFee(snap.ResolvedDeliveryFees, svc.ID),
			)
			if fee != nil {
				out.DeliveryFee = fee
				deliveryTotal += *fee
			}
		}

		services = append(services, out)
	}
	subtotal = round2(subtotal)
	deliveryTotal = round2(deliveryTotal)

	adjustmentsTotal, adjustmentLines := ApplyAdjustments(subtotal, snap.Adjustments)

	serviceFee := 0.0
	if !snap.WaiveServiceFee {
		serviceFee = round2(subtotal * (snap.ServiceFeePercent / 100))
	}

	tax := computeTax(snap, subtotal, serviceFee, adjustmentLines)

	grand := round2(subtotal + adjustmentsTotal + serviceFee + deliveryTotal + tax + snap.Tip)

	return entities.Invoice{
		Status:            entities.InvoiceStatusDrafting,
		Booking:           snap.Booking,
		GuestCount:        snap.GuestCount,
		TaxExemptStatus:   snap.TaxExemptStatus,
		WaiveServiceFee:   snap.WaiveServiceFee,
		Services:          services,
		CustomLineItems:   snap.Adjustments,
		AdjustmentLines:   adjustmentLines,
		Subtotal:          subtotal,
		AdjustmentsTotal:  adjustmentsTotal,
		ServiceFee:        serviceFee,
		DeliveryFeesTotal: deliveryTotal,
		Tax:               tax,
		Tip:               snap.Tip,
		GrandTotal:        grand,
	}, nil
}

func stickyFee(resolved map[string]float64, serviceID string) *float64 {
	if resolved == nil {
		return nil
	}
	fee, ok := resolved[serviceID]
	if !ok {
		return nil
	}
	return &fee
}

// computeTax taxes the services subtotal, taxable adjustments, and the
// service fee. Delivery fees and tips are never taxed.
func computeTax(snap Snapshot, subtotal, serviceFee float64, adjustments []entities.AdjustmentLine) float64 {
	if snap.TaxExemptStatus || snap.TaxRatePercent <= 0 {
		return 0
	}
	base := subtotal + serviceFee
	for _, adj := range adjustments {
		if adj.Taxable {
			base += adj.Amount
		}
	}
	if base < 0 {
		base = 0
	}
	return round2(base * (snap.TaxRatePercent / 100))
}
