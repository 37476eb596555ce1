package totals

import (
	"testing"

	"fren_docs/internal/domain/entities"
)

func items(rows ...entities.LineItem) []entities.LineItem { return rows }

func TestCompute(t *testing.T) {
	t.Run("standard breakdown", func(t *testing.T) {
		got := Compute(items(
			entities.LineItem{UnitPrice: 150000, Quantity: 1},
			entities.LineItem{UnitPrice: 25000, Quantity: 2},
		), 0, 10)

		if got.Subtotal != 200000 {
			t.Fatalf("subtotal = %d", got.Subtotal)
		}
		if got.TaxExclusive != 200000 {
			t.Fatalf("tax exclusive = %d", got.TaxExclusive)
		}
		if got.Tax != 20000 {
			t.Fatalf("tax = %d", got.Tax)
		}
		if got.TaxInclusive != 220000 {
			t.Fatalf("tax inclusive = %d", got.TaxInclusive)
		}
	})

	t.Run("tax rounds down", func(t *testing.T) {
		got := Compute(items(entities.LineItem{UnitPrice: 105, Quantity: 1}), 0, 10)
		if got.Tax != 10 {
			t.Fatalf("tax on 105 = %d, want 10", got.Tax)
		}
		if got.TaxInclusive != 115 {
			t.Fatalf("tax inclusive = %d, want 115", got.TaxInclusive)
		}
	})

	t.Run("fractional quantity truncates per row", func(t *testing.T) {
		got := Compute(items(entities.LineItem{UnitPrice: 50000, Quantity: 1.5}), 0, 10)
		if got.Subtotal != 75000 {
			t.Fatalf("subtotal = %d", got.Subtotal)
		}
	})

	t.Run("discount can push below zero", func(t *testing.T) {
		got := Compute(items(entities.LineItem{UnitPrice: 1000, Quantity: 1}), 5000, 10)
		if got.TaxExclusive != -4000 {
			t.Fatalf("tax exclusive = %d, want -4000", got.TaxExclusive)
		}
		if got.Tax != -400 {
			t.Fatalf("tax = %d, want -400", got.Tax)
		}
	})

	t.Run("empty record is all zeros", func(t *testing.T) {
		got := Compute(nil, 0, 10)
		if got != (Totals{}) {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("ordering independent", func(t *testing.T) {
		a := Compute(items(
			entities.LineItem{UnitPrice: 3333, Quantity: 3},
			entities.LineItem{UnitPrice: 777, Quantity: 7},
		), 100, 10)
		b := Compute(items(
			entities.LineItem{UnitPrice: 777, Quantity: 7},
			entities.LineItem{UnitPrice: 3333, Quantity: 3},
		), 100, 10)
		if a != b {
			t.Fatalf("totals depend on item order: %+v vs %+v", a, b)
		}
	})
}

func TestMilestoneSplit(t *testing.T) {
	cases := []struct {
		total, kickoff, completion int64
	}{
		{200000, 100000, 100000},
		{100001, 50001, 50000},
		{1, 1, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		k, comp := MilestoneSplit(c.total)
		if k != c.kickoff || comp != c.completion {
			t.Errorf("MilestoneSplit(%d) = (%d, %d), want (%d, %d)", c.total, k, comp, c.kickoff, c.completion)
		}
		if k+comp != c.total {
			t.Errorf("MilestoneSplit(%d) does not reconcile", c.total)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Run("insertion order preserved", func(t *testing.T) {
		groups := GroupByCategory(items(
			entities.LineItem{Category: "B", UnitPrice: 1, Quantity: 1},
			entities.LineItem{Category: "A", UnitPrice: 2, Quantity: 1},
			entities.LineItem{Category: "B", UnitPrice: 4, Quantity: 1},
		))
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Category != "B" || groups[1].Category != "A" {
			t.Fatalf("group order = %s, %s", groups[0].Category, groups[1].Category)
		}
		if groups[0].Subtotal != 5 {
			t.Fatalf("B subtotal = %d", groups[0].Subtotal)
		}
	})

	t.Run("trimmed keys merge", func(t *testing.T) {
		groups := GroupByCategory(items(
			entities.LineItem{Category: "  A ", UnitPrice: 1, Quantity: 1},
			entities.LineItem{Category: "A", UnitPrice: 1, Quantity: 1},
		))
		if len(groups) != 1 || groups[0].Category != "A" {
			t.Fatalf("expected single trimmed group, got %+v", groups)
		}
	})

	t.Run("empty category falls back", func(t *testing.T) {
		groups := GroupByCategory(items(entities.LineItem{Category: "   ", UnitPrice: 1, Quantity: 1}))
		if len(groups) != 1 || groups[0].Category != FallbackCategory {
			t.Fatalf("expected %s group, got %+v", FallbackCategory, groups)
		}
	})

	t.Run("idempotent over regrouped items", func(t *testing.T) {
		in := items(
			entities.LineItem{Category: " A", UnitPrice: 1, Quantity: 1},
			entities.LineItem{Category: "B", UnitPrice: 2, Quantity: 1},
			entities.LineItem{Category: "A ", UnitPrice: 3, Quantity: 1},
		)
		first := GroupByCategory(in)

		var flat []entities.LineItem
		for _, g := range first {
			for _, it := range g.Items {
				it.Category = g.Category
				flat = append(flat, it)
			}
		}
		second := GroupByCategory(flat)

		if len(first) != len(second) {
			t.Fatalf("regrouping changed partition: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Category != second[i].Category || first[i].Subtotal != second[i].Subtotal {
				t.Fatalf("group %d drifted: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

func TestSplitByContractKind(t *testing.T) {
	t.Run("routes by sub category with category fallback", func(t *testing.T) {
		s := SplitByContractKind(items(
			entities.LineItem{SubCategory: entities.SubCategoryFixed, UnitPrice: 100, Quantity: 1},
			entities.LineItem{Category: entities.SubCategoryQuasi, UnitPrice: 200, Quantity: 1},
			entities.LineItem{Category: "その他", UnitPrice: 400, Quantity: 1},
		))
		if len(s.Fixed) != 1 || s.FixedSubtotal != 100 {
			t.Fatalf("fixed bucket = %+v", s.Fixed)
		}
		if len(s.Quasi) != 1 || s.QuasiSubtotal != 200 {
			t.Fatalf("quasi bucket = %+v", s.Quasi)
		}
	})

	t.Run("unrecognized items are in neither bucket", func(t *testing.T) {
		s := SplitByContractKind(items(entities.LineItem{Category: "x", UnitPrice: 1, Quantity: 1}))
		if len(s.Fixed)+len(s.Quasi) != 0 {
			t.Fatalf("unexpected routing: %+v", s)
		}
	})
}
