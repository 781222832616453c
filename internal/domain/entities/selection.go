package entities

import (
	"sort"
	"strings"
)

// SelectionMap is the raw form state: composite string keys mapped to integer
// quantities. A quantity of 0 or an absent entry means "not selected".
//
// Key shapes, disambiguated by structure:
//   - itemId                      base-item quantity
//   - itemId_duration             hours for a staff item
//   - comboId_categoryId_itemId   quantity of a combo-category pick
//
// Keys are an internal contract with the form layer; they are decoded once by
// DecodeSelections and never appear on the wire payload.
type SelectionMap map[string]int

// SelectionKind discriminates the decoded selection union.

type SelectionKind string

const (
	SelectionBase     SelectionKind = "base"
	SelectionDuration SelectionKind = "duration"
	SelectionCombo    SelectionKind = "combo"
)

const durationKeySuffix = "_duration"

// Selection is the structured form of one selection-map entry.
type Selection struct {
	Kind       SelectionKind
	ItemID     string
	ComboID    string
	CategoryID string
	Quantity   int
}

// ServiceSelections groups the decoded selections relevant to one service.
type ServiceSelections struct {
	Base      []Selection
	Durations map[string]int // item id -> hours, paired with the base entry
	Combo     []Selection
}

// ComboPicks returns the combo selections grouped under one combo id.
func (s ServiceSelections) ComboPicks(comboID string) []Selection {
	var picks []Selection
	for _, sel := range s.Combo {
		if sel.ComboID == comboID {
			picks = append(picks, sel)
		}
	}
	return picks
}

// DecodeSelections partitions a selection map into its three buckets for one
// service. comboIDs is the set of combo identifiers known to the service's
// catalog: a key with at least three underscore-delimited segments is treated
// as a combo-category key only when a known combo id prefixes it. Item ids may
// themselves contain underscores, so prefixes are tried longest-first before
// falling back to a base-item read. Buckets come back key-sorted so downstream
// pricing sees the same order on every call.
func DecodeSelections(raw SelectionMap, comboIDs []string) ServiceSelections {
	out := ServiceSelections{Durations: map[string]int{}}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		qty := raw[key]
		if qty < 1 {
			// Not selected; never materialized.
			continue
		}

		if strings.HasSuffix(key, durationKeySuffix) {
			itemID := strings.TrimSuffix(key, durationKeySuffix)
			if itemID != "" {
				out.Durations[itemID] = qty
				continue
			}
		}

		if sel, ok := decodeComboKey(key, qty, comboIDs); ok {
			out.Combo = append(out.Combo, sel)
			continue
		}

		out.Base = append(out.Base, Selection{Kind: SelectionBase, ItemID: key, Quantity: qty})
	}

	return out
}

func decodeComboKey(key string, qty int, comboIDs []string) (Selection, bool) {
	if strings.Count(key, "_") < 2 {
		return Selection{}, false
	}
	candidates := make([]string, len(comboIDs))
	copy(candidates, comboIDs)
	sort.Slice(candidates, func(i, j int) bool { return len(candidates[i]) > len(candidates[j]) })
	for _, comboID := range candidates {
		prefix := comboID + "_"
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(key, prefix)
		// The remainder must still split into category and item; the item id
		// may carry underscores of its own, the category id may not.
		catID, itemID, ok := strings.Cut(rest, "_")
		if !ok || catID == "" || itemID == "" {
			continue
		}
		return Selection{
			Kind:       SelectionCombo,
			ComboID:    comboID,
			CategoryID: catID,
			ItemID:     itemID,
			Quantity:   qty,
		}, true
	}
	return Selection{}, false
}
