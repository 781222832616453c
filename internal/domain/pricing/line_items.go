package pricing

import "caterlane/internal/domain/entities"

// ServiceBill is the priced form of one service before invoice aggregation.
type ServiceBill struct {
	LineItems []entities.InvoiceLineItem
	Total     float64
}

// PriceService resolves a service's raw selections into an itemized bill.
//
// Catering is the only type billed from its line items. Every other type
// bills the service's own Price x Quantity; any itemization it produces is an
// informational breakdown and never changes the total. Catering base "service
// price" is a metadata field, not a charge.
func PriceService(svc entities.Service, raw entities.SelectionMap, guestCount int) ServiceBill {
	switch svc.ServiceType {
	case entities.ServiceTypeCatering:
		return priceCateringService(svc, raw, guestCount)
	case entities.ServiceTypePartyRental:
		return ServiceBill{
			LineItems: priceRentalItems(svc, raw),
			Total:     flatTotal(svc),
		}
	case entities.ServiceTypeEventsStaff:
		return ServiceBill{
			LineItems: priceStaffItems(svc, raw),
			Total:     flatTotal(svc),
		}
	default:
		// Venues: flat fee, no line-item decomposition.
		return ServiceBill{Total: flatTotal(svc)}
	}
}

func flatTotal(svc entities.Service) float64 {
	qty := svc.Quantity
	if qty < 1 {
		qty = 1
	}
	return round2(svc.Price * float64(qty))
}

func priceCateringService(svc entities.Service, raw entities.SelectionMap, guestCount int) ServiceBill {
	combos := svc.Combos()
	comboIDs := make([]string, 0, len(combos))
	for _, c := range combos {
		comboIDs = append(comboIDs, c.ID)
	}
	decoded := entities.DecodeSelections(raw, comboIDs)

	var bill ServiceBill

	// Quantities keyed directly on a combo id feed the combo resolver as its
	// fallback multiplier, not a base line.
	directComboQty := map[string]int{}
	for _, sel := range decoded.Base {
		item, ok := svc.FindCatalogItem(sel.ItemID)
		if !ok {
			// Stale catalog reference; dropped, buyer UI must not crash.
			continue
		}
		if item.IsCombo {
			directComboQty[item.ID] = sel.Quantity
			continue
		}
		line := baseMenuLine(item, sel.Quantity, guestCount)
		bill.LineItems = append(bill.LineItems, line)
		bill.Total += line.TotalPrice
	}

	for _, combo := range combos {
		cp := PriceCombo(combo, decoded.ComboPicks(combo.ID), directComboQty[combo.ID], guestCount)
		if !cp.Selected() {
			continue
		}
		bill.LineItems = append(bill.LineItems, cp.LineItems...)
		bill.Total += cp.Total
	}

	bill.Total = round2(bill.Total)
	return bill
}

// baseMenuLine prices a non-combo menu item. A premium item's additional
// charge is a per-guest upcharge on top of the quantity-priced base.
func baseMenuLine(item entities.SelectableItem, qty, guestCount int) entities.InvoiceLineItem {
	premium := 0.0
	if item.AdditionalCharge > 0 {
		premium = round2(item.AdditionalCharge * float64(guestCount))
	}
	return entities.InvoiceLineItem{
		MenuName:      item.Category,
		ItemName:      item.Name,
		ItemID:        item.ID,
		UnitPrice:     item.Price,
		Quantity:      qty,
		TotalPrice:    round2(item.Price*float64(qty) + premium),
		PremiumCharge: premium,
	}
}

// priceRentalItems itemizes rental selections. Unmatched keys are not
// dropped: rentals tolerate items added outside the normal catalog, so an
// unknown id synthesizes a zero-price line for audit visibility.
func priceRentalItems(svc entities.Service, raw entities.SelectionMap) []entities.InvoiceLineItem {
	decoded := entities.DecodeSelections(raw, nil)

	var lines []entities.InvoiceLineItem
	for _, sel := range decoded.Base {
		if item, ok := svc.FindCatalogItem(sel.ItemID); ok {
			lines = append(lines, entities.InvoiceLineItem{
				MenuName:   item.Category,
				ItemName:   item.Name,
				ItemID:     item.ID,
				UnitPrice:  item.Price,
				Quantity:   sel.Quantity,
				TotalPrice: round2(item.Price * float64(sel.Quantity)),
			})
			continue
		}
		lines = append(lines, synthesizeRentalLine(sel))
	}
	return lines
}

func synthesizeRentalLine(sel entities.Selection) entities.InvoiceLineItem {
	return entities.InvoiceLineItem{
		ItemName:   sel.ItemID,
		ItemID:     sel.ItemID,
		UnitPrice:  0,
		Quantity:   sel.Quantity,
		TotalPrice: 0,
	}
}

// priceStaffItems itemizes staff selections: a quantity entry counts staff
// and the paired duration entry carries their hours.
func priceStaffItems(svc entities.Service, raw entities.SelectionMap) []entities.InvoiceLineItem {
	decoded := entities.DecodeSelections(raw, nil)

	var lines []entities.InvoiceLineItem
	for _, sel := range decoded.Base {
		item, ok := svc.FindCatalogItem(sel.ItemID)
		if !ok {
			continue
		}
		hours := decoded.Durations[sel.ItemID]
		if hours < 1 {
			hours = 1
		}
		lines = append(lines, entities.InvoiceLineItem{
			MenuName:   item.Category,
			ItemName:   item.Name,
			ItemID:     item.ID,
			UnitPrice:  item.Price,
			Quantity:   sel.Quantity * hours,
			TotalPrice: round2(item.Price * float64(sel.Quantity) * float64(hours)),
		})
	}
	return lines
}
