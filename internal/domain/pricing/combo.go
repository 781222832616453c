package pricing

import (
	"regexp"

	"caterlane/internal/domain/entities"

	"github.com/google/uuid"
)

// proteinCategoryPattern identifies the combo category whose selected count
// drives the combo's base-price multiplier.
var proteinCategoryPattern = regexp.MustCompile(`(?i)protein|meat|main`)

// ComboPricing is the priced contribution of one combo.
//
// Total is authoritative for billing. LineItems carries the combo row followed
// by per-category informational rows priced at the item's own quantity and
// price; the two are not required to reconcile.
type ComboPricing struct {
	Quantity  int
	UnitPrice float64
	Total     float64
	LineItems []entities.InvoiceLineItem
}

// Selected reports whether the combo contributes anything to the invoice.
// Combos are never silently auto-added: no selection means no contribution.
func (c ComboPricing) Selected() bool {
	return c.Quantity > 0
}

// PriceCombo computes a combo's price contribution.
//
// The multiplier for the combo's base price is the protein quantity: the sum
// of quantities picked in any category matching the protein pattern. When no
// protein category was picked, the quantity keyed directly on the combo id is
// used instead. Upcharges on selected category items scale with the guest
// count, not the item's own quantity: they represent a per-guest premium,
// whereas the protein selection counts discrete units.
func PriceCombo(combo entities.SelectableItem, picks []entities.Selection, directQuantity, guestCount int) ComboPricing {
	type resolvedPick struct {
		sel      entities.Selection
		category entities.ComboCategory
		item     entities.ComboCategoryItem
	}

	var resolved []resolvedPick
	proteinQty := 0
	for _, pick := range picks {
		cat, item, ok := findComboCategoryItem(combo, pick.CategoryID, pick.ItemID)
		if !ok {
			continue
		}
		if isPlaceholderCategoryItem(item) {
			continue
		}
		resolved = append(resolved, resolvedPick{sel: pick, category: cat, item: item})
		if proteinCategoryPattern.MatchString(cat.Name) {
			proteinQty += pick.Quantity
		}
	}

	qty := proteinQty
	if qty == 0 {
		qty = directQuantity
	}
	if qty == 0 && len(resolved) == 0 {
		return ComboPricing{}
	}
	if qty < 1 {
		// Something was selected; the combo bills at least one unit.
		qty = 1
	}

	base := combo.Price * float64(qty)
	upcharges := 0.0
	for _, rp := range resolved {
		upcharges += rp.item.AdditionalCharge * float64(guestCount)
	}
	total := base + upcharges

	lines := []entities.InvoiceLineItem{{
		MenuName:      combo.Category,
		ItemName:      combo.Name,
		ItemID:        combo.ID,
		UnitPrice:     round2(total / float64(qty)),
		Quantity:      qty,
		TotalPrice:    round2(total),
		PremiumCharge: round2(upcharges),
	}}
	for _, rp := range resolved {
		lines = append(lines, entities.InvoiceLineItem{
			MenuName:            rp.category.Name,
			ItemName:            rp.item.Name,
			ItemID:              rp.item.ID,
			UnitPrice:           rp.item.Price,
			Quantity:            rp.sel.Quantity,
			TotalPrice:          round2(rp.item.Price * float64(rp.sel.Quantity)),
			ParentComboID:       combo.ID,
			IsComboCategoryItem: true,
		})
	}

	return ComboPricing{
		Quantity:  qty,
		UnitPrice: round2(total / float64(qty)),
		Total:     round2(total),
		LineItems: lines,
	}
}

func findComboCategoryItem(combo entities.SelectableItem, categoryID, itemID string) (entities.ComboCategory, entities.ComboCategoryItem, bool) {
	for _, cat := range combo.ComboCategories {
		if cat.ID != categoryID {
			continue
		}
		for _, item := range cat.Items {
			if item.ID == itemID {
				return cat, item, true
			}
		}
	}
	return entities.ComboCategory{}, entities.ComboCategoryItem{}, false
}

// isPlaceholderCategoryItem spots incomplete seed data: a bare UUID with no
// resolvable display name and a zero price bills nothing and is excluded.
func isPlaceholderCategoryItem(item entities.ComboCategoryItem) bool {
	if item.Name != "" || item.Price != 0 || item.AdditionalCharge != 0 {
		return false
	}
	return uuid.Validate(item.ID) == nil
}
