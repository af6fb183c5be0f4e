package form

import (
	"testing"
	"time"

	"clubhub-app/internal/model"
)

func TestGenerateVariantsCounts(t *testing.T) {
	cases := []struct {
		name   string
		opts   model.VariantOptions
		want   int
		sizes  []string
		colors []string
	}{
		{"sizes only", model.VariantOptions{Size: []string{"S", "M"}}, 2, []string{"S", "M"}, []string{"", ""}},
		{"colors only", model.VariantOptions{Color: []string{"Green"}}, 1, []string{""}, []string{"Green"}},
		{"both axes", model.VariantOptions{Size: []string{"L"}, Color: []string{"Green", "White"}}, 2, []string{"L", "L"}, []string{"Green", "White"}},
		{"neither", model.VariantOptions{}, 0, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GenerateVariants(tc.opts, nil, VariantInput{Price: "25", Stock: "0"})
			if len(got) != tc.want {
				t.Fatalf("got %d variants, want %d", len(got), tc.want)
			}
			for i, v := range got {
				if v.Size != tc.sizes[i] || v.Color != tc.colors[i] {
					t.Errorf("variant %d = %s/%s", i, v.Size, v.Color)
				}
				if v.ID == "" || v.Price != "25" {
					t.Errorf("variant %d not initialised from base: %+v", i, v)
				}
			}
		})
	}
}

func TestRegenerationKeepsOverrides(t *testing.T) {
	f := NewProductForm()
	_ = f.Apply("price", "30")
	_ = f.Apply("sku", "KIT")
	f.AddSize("M")
	f.AddSize("L")
	if len(f.Variants) != 2 || f.Variants[0].SKU != "KIT-M" {
		t.Fatalf("unexpected variants %+v", f.Variants)
	}

	large := f.Variants[1].ID
	if err := f.UpdateVariant(large, "stock", "7"); err != nil {
		t.Fatal(err)
	}
	_ = f.UpdateVariant(large, "price", "32.5")

	f.AddSize("XL")
	f.RemoveSize("M")
	if len(f.Variants) != 2 {
		t.Fatalf("expected L and XL, got %+v", f.Variants)
	}
	l := f.Variants[0]
	if l.ID != large || l.Stock != "7" || l.Price != "32.5" {
		t.Errorf("override lost on regeneration: %+v", l)
	}
	if f.Variants[1].Size != "XL" || f.Variants[1].Price != "30" {
		t.Errorf("new variant %+v", f.Variants[1])
	}

	// Adding a color turns every size into a new combination.
	f.AddColor("Green")
	if len(f.Variants) != 2 || f.Variants[0].ID == large {
		t.Errorf("size-only variant should not survive as size+color: %+v", f.Variants)
	}
	if f.AddColor("green") {
		t.Error("duplicate color added")
	}
	if f.AddSize("  ") {
		t.Error("blank size added")
	}
}

func validProductForm(t *testing.T) *ProductForm {
	t.Helper()
	f := NewProductForm()
	for k, v := range map[string]string{
		"name":          "Home Shirt 2026",
		"description":   "Official home shirt",
		"category":      "c1",
		"price":         "59.99",
		"stockQuantity": "40",
	} {
		if err := f.Apply(k, v); err != nil {
			t.Fatalf("apply %s: %v", k, err)
		}
	}
	return f
}

func TestProductValidation(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(f *ProductForm)
		field string
	}{
		{"valid", func(f *ProductForm) {}, ""},
		{"no name", func(f *ProductForm) { f.Name = "" }, "name"},
		{"zero price", func(f *ProductForm) { f.Price = "0" }, "price"},
		{"price not a number", func(f *ProductForm) { f.Price = "cheap" }, "price"},
		{"discount above price", func(f *ProductForm) { f.DiscountPrice = "60" }, "discountPrice"},
		{"fractional stock", func(f *ProductForm) { f.StockQuantity = "1.5" }, "stockQuantity"},
		{"negative weight", func(f *ProductForm) { f.Weight = "-0.2" }, "weight"},
		{"promotion without end", func(f *ProductForm) {
			f.HasPromotion = true
			f.PromotionStartDate = "2026-11-01"
		}, "promotionEndDate"},
		{"promotion ends before start", func(f *ProductForm) {
			f.HasPromotion = true
			f.PromotionStartDate = "2026-11-10"
			f.PromotionEndDate = "2026-11-01"
		}, "promotionEndDate"},
		{"variants enabled but none", func(f *ProductForm) { f.HasVariants = true }, "variants"},
		{"bad variant stock", func(f *ProductForm) {
			f.HasVariants = true
			f.AddSize("M")
			f.Variants[0].Stock = "many"
		}, "variants[0].stock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validProductForm(t)
			tc.edit(f)
			errs := f.Validate(now)
			if tc.field == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[tc.field] == "" {
				t.Errorf("expected only %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestProductLoadBuild(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	p := model.ShopProduct{
		ID:                 "s1",
		Name:               "Home Shirt",
		Description:        "Shirt",
		Price:              59.99,
		DiscountPrice:      model.FloatPtr(49.99),
		CategoryID:         "c1",
		StockQuantity:      12,
		Status:             model.ProductActive,
		HasPromotion:       true,
		PromotionStartDate: model.TimePtr(start),
		PromotionEndDate:   model.TimePtr(start.AddDate(0, 0, 14)),
		HasVariants:        true,
		Variants: []model.Variant{
			{ID: "v1", Size: "M", Color: "Green", Price: 59.99, Stock: 5, SKU: "HS-M-G"},
			{ID: "v2", Size: "L", Color: "Green", Price: 61, Stock: 7, SKU: "HS-L-G"},
		},
		VariantOptions: model.VariantOptions{Size: []string{"M", "L"}, Color: []string{"Green"}},
	}
	f := NewProductForm()
	f.Load(p)
	if errs := f.Validate(now); len(errs) != 0 {
		t.Fatalf("loaded product should be valid: %v", errs)
	}
	got, err := f.Build("s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != 59.99 || *got.DiscountPrice != 49.99 || got.StockQuantity != 12 ||
		!got.PromotionEndDate.Equal(*p.PromotionEndDate) || len(got.Variants) != 2 ||
		got.Variants[1] != p.Variants[1] || len(got.VariantOptions.Size) != 2 {
		t.Errorf("round trip lost data: %+v", got)
	}

	f.HasVariants = false
	got, _ = f.Build("s1")
	if got.Variants != nil {
		t.Errorf("variants kept while disabled: %+v", got.Variants)
	}
}
