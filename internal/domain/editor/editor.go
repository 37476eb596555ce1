// Package editor holds the pure mutation functions behind the form surface.
// Every function takes a record by value and returns a new record; callers
// never observe shared slices between the input and the output.
package editor

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/domain/totals"
)

// DefaultUnit seeds the unit label of a freshly added row.
const DefaultUnit = "式"

// AddItem appends an empty row to the given category. The category is stored
// trimmed; the row gets a fresh opaque identifier so two adds never collide.
func AddItem(e entities.Estimate, category string) entities.Estimate {
	e.Items = append(cloneItems(e.Items), entities.LineItem{
		ID:       uuid.NewString(),
		Category: strings.TrimSpace(category),
		Unit:     DefaultUnit,
	})
	return e
}

// RemoveItem drops the row with the given identifier. Unknown identifiers
// leave the record unchanged.
func RemoveItem(e entities.Estimate, id string) entities.Estimate {
	out := make([]entities.LineItem, 0, len(e.Items))
	for _, it := range e.Items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	e.Items = out
	return e
}

// RemoveCategory drops every row whose trimmed category matches, using the
// same fallback label the grouping applies, so deleting the unclassified
// group removes rows with an empty category.
func RemoveCategory(e entities.Estimate, category string) entities.Estimate {
	target := strings.TrimSpace(category)
	out := make([]entities.LineItem, 0, len(e.Items))
	for _, it := range e.Items {
		cat := strings.TrimSpace(it.Category)
		if cat == "" {
			cat = totals.FallbackCategory
		}
		if cat != target {
			out = append(out, it)
		}
	}
	e.Items = out
	return e
}

// ItemPatch carries at most a handful of replacement values for one row.
// Nil fields stay untouched.
type ItemPatch struct {
	Category    *string  `json:"category,omitempty"`
	SubCategory *string  `json:"subCategory,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Details     *string  `json:"details,omitempty"`
	UnitPrice   *int64   `json:"unitPrice,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
}

// UpdateItem applies the patch to the row with the given identifier. The
// second return reports whether the row was found.
func UpdateItem(e entities.Estimate, id string, p ItemPatch) (entities.Estimate, bool) {
	items := cloneItems(e.Items)
	found := false
	for i := range items {
		if items[i].ID != id {
			continue
		}
		found = true
		if p.Category != nil {
			items[i].Category = *p.Category
		}
		if p.SubCategory != nil {
			items[i].SubCategory = *p.SubCategory
		}
		if p.Name != nil {
			items[i].Name = *p.Name
		}
		if p.Details != nil {
			items[i].Details = *p.Details
		}
		if p.UnitPrice != nil {
			items[i].UnitPrice = *p.UnitPrice
		}
		if p.Quantity != nil {
			items[i].Quantity = *p.Quantity
		}
		if p.Unit != nil {
			items[i].Unit = *p.Unit
		}
	}
	e.Items = items
	return e, found
}

// ClientPatch replaces individual commissioning-party fields.
type ClientPatch struct {
	CompanyName    *string `json:"companyName,omitempty"`
	Address        *string `json:"address,omitempty"`
	Representative *string `json:"representative,omitempty"`
	ProjectName    *string `json:"projectName,omitempty"`
}

func UpdateClient(e entities.Estimate, p ClientPatch) entities.Estimate {
	if p.CompanyName != nil {
		e.Client.CompanyName = *p.CompanyName
	}
	if p.Address != nil {
		e.Client.Address = *p.Address
	}
	if p.Representative != nil {
		e.Client.Representative = *p.Representative
	}
	if p.ProjectName != nil {
		e.Client.ProjectName = *p.ProjectName
	}
	return e
}

// ProviderPatch replaces individual contracted-party fields.
type ProviderPatch struct {
	CompanyName    *string `json:"companyName,omitempty"`
	ZipCode        *string `json:"zipCode,omitempty"`
	Address        *string `json:"address,omitempty"`
	Building       *string `json:"building,omitempty"`
	Representative *string `json:"representative,omitempty"`
	Tel            *string `json:"tel,omitempty"`
	PersonInCharge *string `json:"personInCharge,omitempty"`
}

func UpdateProvider(e entities.Estimate, p ProviderPatch) entities.Estimate {
	if p.CompanyName != nil {
		e.Provider.CompanyName = *p.CompanyName
	}
	if p.ZipCode != nil {
		e.Provider.ZipCode = *p.ZipCode
	}
	if p.Address != nil {
		e.Provider.Address = *p.Address
	}
	if p.Building != nil {
		e.Provider.Building = *p.Building
	}
	if p.Representative != nil {
		e.Provider.Representative = *p.Representative
	}
	if p.Tel != nil {
		e.Provider.Tel = *p.Tel
	}
	if p.PersonInCharge != nil {
		e.Provider.PersonInCharge = *p.PersonInCharge
	}
	return e
}

// QuasiPatternPatch replaces individual fields of one pricing template.
type QuasiPatternPatch struct {
	Name      *string `json:"name,omitempty"`
	Price     *string `json:"price,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Overtime  *string `json:"overtime,omitempty"`
}

// UpdateQuasiPattern patches the template under the given key. All four
// templates stay editable regardless of which one is selected.
func UpdateQuasiPattern(e entities.Estimate, key entities.QuasiPatternKey, p QuasiPatternPatch) entities.Estimate {
	target := e.QuasiPatterns.Get(key)
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Price != nil {
		target.Price = *p.Price
	}
	if p.Condition != nil {
		target.Condition = *p.Condition
	}
	if p.Overtime != nil {
		target.Overtime = *p.Overtime
	}
	switch key {
	case entities.QuasiPatternB:
		e.QuasiPatterns.B = target
	case entities.QuasiPatternC:
		e.QuasiPatterns.C = target
	case entities.QuasiPatternD:
		e.QuasiPatterns.D = target
	default:
		e.QuasiPatterns.A = target
	}
	return e
}

// SelectQuasiPattern switches the active template without touching the
// stored pattern texts.
func SelectQuasiPattern(e entities.Estimate, key entities.QuasiPatternKey) entities.Estimate {
	e.QuasiPatterns.Selected = key
	return e
}

// Reset discards everything except the remembered provider and hands back a
// fresh draft. Callers gate this behind an explicit confirmation.
func Reset(provider entities.ProviderInfo, now time.Time) entities.Estimate {
	return entities.NewEstimate(provider, now)
}

func cloneItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	return out
}
