package pricing

import "caterlane/internal/domain/entities"

// ApplyAdjustments applies an ordered list of custom line items against the
// aggregate services subtotal.
//
// Every adjustment is computed against the original subtotal, not a running
// balance: adjustments do not compound. Delivery fees are never part of the
// base.
func ApplyAdjustments(subtotal float64, adjustments []entities.CustomAdjustment) (float64, []entities.AdjustmentLine) {
	total := 0.0
	lines := make([]entities.AdjustmentLine, 0, len(adjustments))

	for _, adj := range adjustments {
		amount := adj.Value
		if adj.Type == entities.AdjustmentTypePercentage {
			amount = subtotal * (adj.Value / 100)
		}
		if adj.Mode == entities.AdjustmentModeDiscount {
			amount = -amount
		}
		amount = round2(amount)
		total += amount
		lines = append(lines, entities.AdjustmentLine{
			Label:   adj.Label,
			Amount:  amount,
			Taxable: adj.Taxable,
		})
	}

	return round2(total), lines
}
