package entities

import "testing"

func TestDecodeSelections(t *testing.T) {
	t.Run("base items", func(t *testing.T) {
		raw := SelectionMap{"item-1": 2, "item-2": 1}
		got := DecodeSelections(raw, nil)

		if len(got.Base) != 2 {
			t.Fatalf("expected 2 base selections, got %d", len(got.Base))
		}
		for _, sel := range got.Base {
			if sel.Kind != SelectionBase {
				t.Fatalf("expected base kind, got %s", sel.Kind)
			}
		}
	})

	t.Run("zero and negative quantities are skipped", func(t *testing.T) {
		raw := SelectionMap{"item-1": 0, "item-2": -3, "item-3": 1}
		got := DecodeSelections(raw, nil)

		if len(got.Base) != 1 {
			t.Fatalf("expected 1 base selection, got %d", len(got.Base))
		}
		if got.Base[0].ItemID != "item-3" {
			t.Fatalf("expected item-3, got %s", got.Base[0].ItemID)
		}
	})

	t.Run("duration suffix pairs with item id", func(t *testing.T) {
		raw := SelectionMap{"staff-1": 2, "staff-1_duration": 4}
		got := DecodeSelections(raw, nil)

		if len(got.Base) != 1 {
			t.Fatalf("expected 1 base selection, got %d", len(got.Base))
		}
		if got.Durations["staff-1"] != 4 {
			t.Fatalf("expected 4 hours for staff-1, got %d", got.Durations["staff-1"])
		}
	})

	t.Run("combo key decodes against known combo ids", func(t *testing.T) {
		raw := SelectionMap{"combo1_cat1_item1": 3}
		got := DecodeSelections(raw, []string{"combo1"})

		if len(got.Combo) != 1 {
			t.Fatalf("expected 1 combo selection, got %d", len(got.Combo))
		}
		sel := got.Combo[0]
		if sel.ComboID != "combo1" || sel.CategoryID != "cat1" || sel.ItemID != "item1" || sel.Quantity != 3 {
			t.Fatalf("unexpected combo selection: %+v", sel)
		}
	})

	t.Run("item id may contain underscores", func(t *testing.T) {
		raw := SelectionMap{"combo1_cat1_item_with_underscores": 1}
		got := DecodeSelections(raw, []string{"combo1"})

		if len(got.Combo) != 1 {
			t.Fatalf("expected 1 combo selection, got %d", len(got.Combo))
		}
		if got.Combo[0].ItemID != "item_with_underscores" {
			t.Fatalf("expected item_with_underscores, got %s", got.Combo[0].ItemID)
		}
	})

	t.Run("underscored key without known combo prefix stays a base item", func(t *testing.T) {
		raw := SelectionMap{"some_weird_id": 2}
		got := DecodeSelections(raw, []string{"combo1"})

		if len(got.Combo) != 0 {
			t.Fatalf("expected no combo selections, got %d", len(got.Combo))
		}
		if len(got.Base) != 1 || got.Base[0].ItemID != "some_weird_id" {
			t.Fatalf("expected some_weird_id as base, got %+v", got.Base)
		}
	})

	t.Run("selections decode in key order every call", func(t *testing.T) {
		raw := SelectionMap{"tacos": 2, "guac": 1, "chips": 3, "salsa": 1}
		want := []string{"chips", "guac", "salsa", "tacos"}

		for i := 0; i < 50; i++ {
			got := DecodeSelections(raw, nil)
			if len(got.Base) != len(want) {
				t.Fatalf("expected %d base selections, got %d", len(want), len(got.Base))
			}
			for j, sel := range got.Base {
				if sel.ItemID != want[j] {
					t.Fatalf("run %d: expected %s at position %d, got %s", i, want[j], j, sel.ItemID)
				}
			}
		}
	})

	t.Run("longer combo id wins when ids share a prefix", func(t *testing.T) {
		raw := SelectionMap{"combo_deluxe_cat1_item1": 1}
		got := DecodeSelections(raw, []string{"combo", "combo_deluxe"})

		if len(got.Combo) != 1 {
			t.Fatalf("expected 1 combo selection, got %d", len(got.Combo))
		}
		sel := got.Combo[0]
		if sel.ComboID != "combo_deluxe" || sel.CategoryID != "cat1" || sel.ItemID != "item1" {
			t.Fatalf("unexpected combo selection: %+v", sel)
		}
	})

	t.Run("combo picks group by combo id", func(t *testing.T) {
		raw := SelectionMap{
			"combo1_cat1_a": 1,
			"combo1_cat2_b": 2,
			"combo2_cat1_c": 3,
		}
		got := DecodeSelections(raw, []string{"combo1", "combo2"})

		if picks := got.ComboPicks("combo1"); len(picks) != 2 {
			t.Fatalf("expected 2 picks for combo1, got %d", len(picks))
		}
		if picks := got.ComboPicks("combo2"); len(picks) != 1 {
			t.Fatalf("expected 1 pick for combo2, got %d", len(picks))
		}
	})
}
