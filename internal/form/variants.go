package form

import (
	"strings"

	"github.com/google/uuid"

	"clubhub-app/internal/model"
)

// VariantInput is one size/color combination as edited on the variants tab.
type VariantInput struct {
	ID    string `json:"id"`
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	Price string `json:"price"`
	Stock string `json:"stock"`
	SKU   string `json:"sku"`
}

func (v VariantInput) key() string {
	return model.Variant{Size: v.Size, Color: v.Color}.Key()
}

// GenerateVariants builds one variant per option combination: the
// cartesian product when both axes have values, one per value when only
// one axis does, none otherwise. A combination already present in
// existing keeps its id, price, stock and sku. New combinations start
// from base.
func GenerateVariants(opts model.VariantOptions, existing []VariantInput, base VariantInput) []VariantInput {
	type combo struct{ size, color string }
	var combos []combo
	switch {
	case len(opts.Size) > 0 && len(opts.Color) > 0:
		for _, s := range opts.Size {
			for _, c := range opts.Color {
				combos = append(combos, combo{s, c})
			}
		}
	case len(opts.Size) > 0:
		for _, s := range opts.Size {
			combos = append(combos, combo{size: s})
		}
	case len(opts.Color) > 0:
		for _, c := range opts.Color {
			combos = append(combos, combo{color: c})
		}
	}

	prev := make(map[string]VariantInput, len(existing))
	for _, v := range existing {
		prev[v.key()] = v
	}
	out := make([]VariantInput, 0, len(combos))
	for _, c := range combos {
		v := VariantInput{Size: c.size, Color: c.color}
		if old, ok := prev[v.key()]; ok {
			out = append(out, old)
			continue
		}
		v.ID = uuid.NewString()
		v.Price = base.Price
		v.Stock = base.Stock
		v.SKU = variantSKU(base.SKU, c.size, c.color)
		out = append(out, v)
	}
	return out
}

func variantSKU(base, size, color string) string {
	if base == "" {
		return ""
	}
	parts := []string{base}
	for _, p := range []string{size, color} {
		if p != "" {
			parts = append(parts, strings.ToUpper(strings.ReplaceAll(p, " ", "")))
		}
	}
	return strings.Join(parts, "-")
}

func addOption(values []string, v string) ([]string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return values, false
	}
	for _, existing := range values {
		if strings.EqualFold(existing, v) {
			return values, false
		}
	}
	return append(values, v), true
}

func removeOption(values []string, v string) ([]string, bool) {
	for i, existing := range values {
		if existing == v {
			return append(values[:i:i], values[i+1:]...), true
		}
	}
	return values, false
}
