// Package totals derives every monetary figure printed on the documents.
// All functions are pure; nothing here mutates or caches.
package totals

import (
	"math"
	"strings"

	"fren_docs/internal/domain/entities"
)

// FallbackCategory labels items whose category is empty after trimming.
const FallbackCategory = "未分類"

// Totals is the figure set shared by the three documents. TaxExclusive may go
// negative when the discount exceeds the subtotal; no clamping is applied.
type Totals struct {
	Subtotal     int64 `json:"subtotal"`
	Discount     int64 `json:"discount"`
	TaxExclusive int64 `json:"taxExclusive"`
	Tax          int64 `json:"tax"`
	TaxInclusive int64 `json:"taxInclusive"`
}

// Compute sums the line items and applies discount and tax.
//
// Tax is truncated toward negative infinity, never rounded: invoices must be
// reproducible to the yen. ratePercent is the consumption tax percentage.
func Compute(items []entities.LineItem, discount int64, ratePercent float64) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Amount()
	}
	taxExclusive := subtotal - discount
	tax := int64(math.Floor(float64(taxExclusive) * ratePercent / 100))
	return Totals{
		Subtotal:     subtotal,
		Discount:     discount,
		TaxExclusive: taxExclusive,
		Tax:          tax,
		TaxInclusive: taxExclusive + tax,
	}
}

// MilestoneSplit divides the tax-exclusive total into the kickoff and
// completion installments. The kickoff row absorbs the odd yen so the two
// rows always reconcile exactly to the total.
func MilestoneSplit(taxExclusive int64) (kickoff, completion int64) {
	completion = taxExclusive / 2
	kickoff = taxExclusive - completion
	return kickoff, completion
}

// CategoryGroup is one display grouping of line items.
type CategoryGroup struct {
	Category string
	Items    []entities.LineItem
	Subtotal int64
}

// GroupByCategory partitions items by trimmed category string.
//
// Group order is the insertion order of each category's first appearance;
// that order is a contract, not an accident of map iteration. "  A " and "A"
// land in the same group.
func GroupByCategory(items []entities.LineItem) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, it := range items {
		cat := strings.TrimSpace(it.Category)
		if cat == "" {
			cat = FallbackCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Subtotal += it.Amount()
	}
	return groups
}

// ContractSplit buckets items for the individual-contract fee table.
//
// Items claim a bucket through their sub-category, falling back to the
// category itself. Items matching neither bucket are dropped from both tables
// while still counting toward the grand subtotal; see DESIGN.md for the open
// product question around an "unclassified" third bucket.
type ContractSplit struct {
	Fixed         []entities.LineItem
	Quasi         []entities.LineItem
	FixedSubtotal int64
	QuasiSubtotal int64
}

// SplitByContractKind routes each item into the fixed-price or
// time-and-materials bucket.
func SplitByContractKind(items []entities.LineItem) ContractSplit {
	var s ContractSplit
	for _, it := range items {
		switch {
		case it.SubCategory == entities.SubCategoryFixed || it.Category == entities.SubCategoryFixed:
			s.Fixed = append(s.Fixed, it)
			s.FixedSubtotal += it.Amount()
		case it.SubCategory == entities.SubCategoryQuasi || it.Category == entities.SubCategoryQuasi:
			s.Quasi = append(s.Quasi, it)
			s.QuasiSubtotal += it.Amount()
		}
	}
	return s
}
