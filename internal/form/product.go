package form

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/model"
)

const (
	ProductTabBasic     Tab = "basic"
	ProductTabPricing   Tab = "pricing"
	ProductTabVariants  Tab = "variants"
	ProductTabPromotion Tab = "promotion"
	ProductTabMedia     Tab = "media"
	ProductTabSEO       Tab = "seo"
)

type ProductForm struct {
	Name               string
	Description        string
	Category           string
	Status             string
	IsFeatured         bool
	Tags               string
	Price              string
	DiscountPrice      string
	StockQuantity      string
	SKU                string
	Barcode            string
	Weight             string
	HasPromotion       bool
	PromotionStartDate string
	PromotionEndDate   string
	HasVariants        bool
	MetaTitle          string
	MetaDescription    string
	ImageURL           string

	Options  model.VariantOptions
	Variants []VariantInput
	Gallery  []model.GalleryItem
}

func NewProductForm() *ProductForm {
	f := &ProductForm{}
	f.Reset()
	return f
}

func (f *ProductForm) Reset() {
	*f = ProductForm{Status: string(model.ProductActive), StockQuantity: "0"}
}

func (f *ProductForm) Tabs() []Tab {
	return []Tab{ProductTabBasic, ProductTabPricing, ProductTabVariants, ProductTabPromotion, ProductTabMedia, ProductTabSEO}
}

func (f *ProductForm) fields() map[string]field {
	return map[string]field{
		"name":               text(ProductTabBasic, &f.Name),
		"description":        text(ProductTabBasic, &f.Description),
		"category":           text(ProductTabBasic, &f.Category),
		"status":             text(ProductTabBasic, &f.Status),
		"isFeatured":         flag(ProductTabBasic, &f.IsFeatured),
		"tags":               text(ProductTabBasic, &f.Tags),
		"price":              text(ProductTabPricing, &f.Price),
		"discountPrice":      text(ProductTabPricing, &f.DiscountPrice),
		"stockQuantity":      text(ProductTabPricing, &f.StockQuantity),
		"sku":                text(ProductTabPricing, &f.SKU),
		"barcode":            text(ProductTabPricing, &f.Barcode),
		"weight":             text(ProductTabPricing, &f.Weight),
		"hasVariants":        flag(ProductTabVariants, &f.HasVariants),
		"hasPromotion":       flag(ProductTabPromotion, &f.HasPromotion),
		"promotionStartDate": text(ProductTabPromotion, &f.PromotionStartDate),
		"promotionEndDate":   text(ProductTabPromotion, &f.PromotionEndDate),
		"imageUrl":           text(ProductTabMedia, &f.ImageURL),
		"metaTitle":          text(ProductTabSEO, &f.MetaTitle),
		"metaDescription":    text(ProductTabSEO, &f.MetaDescription),
	}
}

func (f *ProductForm) Fields(tab Tab) []string {
	return fieldsOn(f.fields(), tab)
}

func (f *ProductForm) Apply(name, value string) error {
	return applyField(f.fields(), name, value)
}

func (f *ProductForm) Values() map[string]string {
	return fieldValues(f.fields())
}

func (f *ProductForm) AddSize(v string) bool {
	var ok bool
	if f.Options.Size, ok = addOption(f.Options.Size, v); ok {
		f.regenerate()
	}
	return ok
}

func (f *ProductForm) RemoveSize(v string) bool {
	var ok bool
	if f.Options.Size, ok = removeOption(f.Options.Size, v); ok {
		f.regenerate()
	}
	return ok
}

func (f *ProductForm) AddColor(v string) bool {
	var ok bool
	if f.Options.Color, ok = addOption(f.Options.Color, v); ok {
		f.regenerate()
	}
	return ok
}

func (f *ProductForm) RemoveColor(v string) bool {
	var ok bool
	if f.Options.Color, ok = removeOption(f.Options.Color, v); ok {
		f.regenerate()
	}
	return ok
}

func (f *ProductForm) regenerate() {
	base := VariantInput{Price: strings.TrimSpace(f.Price), Stock: "0", SKU: strings.TrimSpace(f.SKU)}
	if base.Price == "" {
		base.Price = "0"
	}
	f.Variants = GenerateVariants(f.Options, f.Variants, base)
}

// UpdateVariant overrides the price, stock or sku of one variant.
func (f *ProductForm) UpdateVariant(id, name, value string) error {
	i := slices.IndexFunc(f.Variants, func(v VariantInput) bool { return v.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: variant %s", ErrNoSuchItem, id)
	}
	switch name {
	case "price":
		f.Variants[i].Price = value
	case "stock":
		f.Variants[i].Stock = value
	case "sku":
		f.Variants[i].SKU = value
	default:
		return fmt.Errorf("%w: variant.%s", ErrUnknownField, name)
	}
	return nil
}

func (f *ProductForm) AddGalleryItem(uri, fileName, mimeType string) model.GalleryItem {
	item := newGalleryItem(uri, fileName, mimeType)
	f.Gallery = append(f.Gallery, item)
	return item
}

func (f *ProductForm) RemoveGalleryItem(id string) (err error) {
	f.Gallery, err = removeGalleryItem(f.Gallery, id)
	return err
}

func (f *ProductForm) Validate(now time.Time) Errors {
	errs := Errors{}
	errs.required("name", f.Name, "Product name is required")
	errs.required("description", f.Description, "Description is required")
	errs.required("category", f.Category, "Category is required")

	if !model.ProductStatus(f.Status).Valid() {
		errs.add("status", "Status is not valid")
	}

	price, priceErr := parseFloat(f.Price)
	switch {
	case strings.TrimSpace(f.Price) == "":
		errs.add("price", "Price is required")
	case priceErr != nil:
		errs.add("price", "Price must be a number")
	case price <= 0:
		errs.add("price", "Price must be greater than zero")
	}
	if strings.TrimSpace(f.DiscountPrice) != "" {
		d, err := parseFloat(f.DiscountPrice)
		switch {
		case err != nil:
			errs.add("discountPrice", "Discount price must be a number")
		case d < 0:
			errs.add("discountPrice", "Discount price cannot be negative")
		case priceErr == nil && d >= price:
			errs.add("discountPrice", "Discount price must be lower than the price")
		}
	}
	if !nonNegativeInt(f.StockQuantity) {
		errs.add("stockQuantity", "Stock quantity must be a whole number of zero or more")
	}
	if strings.TrimSpace(f.Weight) != "" {
		if w, err := parseFloat(f.Weight); err != nil || w < 0 {
			errs.add("weight", "Weight must be a number of zero or more")
		}
	}

	if f.HasPromotion {
		errs.required("promotionStartDate", f.PromotionStartDate, "Promotion start date is required")
		errs.required("promotionEndDate", f.PromotionEndDate, "Promotion end date is required")
		start, startErr := parseDate(f.PromotionStartDate)
		end, endErr := parseDate(f.PromotionEndDate)
		if startErr != nil {
			errs.add("promotionStartDate", "Promotion start date is not a valid date")
		}
		if endErr != nil {
			errs.add("promotionEndDate", "Promotion end date is not a valid date")
		}
		if startErr == nil && endErr == nil && !end.After(start) {
			errs.add("promotionEndDate", "Promotion end date must be after the start date")
		}
	}

	if f.HasVariants {
		if len(f.Variants) == 0 {
			errs.add("variants", "Add at least one size or color to create variants")
		}
		for i, v := range f.Variants {
			if p, err := parseFloat(v.Price); err != nil || p < 0 {
				errs.add(fmt.Sprintf("variants[%d].price", i), "Variant price must be a number of zero or more")
			}
			if !nonNegativeInt(v.Stock) {
				errs.add(fmt.Sprintf("variants[%d].stock", i), "Variant stock must be a whole number of zero or more")
			}
		}
	}
	checkGallery(errs, f.Gallery)
	return errs
}

func (f *ProductForm) Load(p model.ShopProduct) {
	f.Reset()
	f.Name = p.Name
	f.Description = p.Description
	f.Category = p.CategoryID
	if p.Status != "" {
		f.Status = string(p.Status)
	}
	f.IsFeatured = p.IsFeatured
	f.Tags = p.Tags
	f.Price = floatString(p.Price)
	f.DiscountPrice = floatPtrString(p.DiscountPrice)
	f.StockQuantity = fmt.Sprint(p.StockQuantity)
	f.SKU = p.SKU
	f.Barcode = p.Barcode
	f.Weight = floatPtrString(p.Weight)
	f.HasPromotion = p.HasPromotion
	f.PromotionStartDate = formatDatePtr(p.PromotionStartDate)
	f.PromotionEndDate = formatDatePtr(p.PromotionEndDate)
	f.HasVariants = p.HasVariants
	f.MetaTitle = p.MetaTitle
	f.MetaDescription = p.MetaDescription
	f.ImageURL = p.ImageURL
	f.Options = model.VariantOptions{
		Size:  slices.Clone(p.VariantOptions.Size),
		Color: slices.Clone(p.VariantOptions.Color),
	}
	for _, v := range p.Variants {
		f.Variants = append(f.Variants, VariantInput{
			ID:    v.ID,
			Size:  v.Size,
			Color: v.Color,
			Price: floatString(v.Price),
			Stock: fmt.Sprint(v.Stock),
			SKU:   v.SKU,
		})
	}
	f.Gallery = slices.Clone(p.Gallery)
}

func (f *ProductForm) ResolveMedia(ctx context.Context, r assets.Resolver) error {
	if err := resolveImage(ctx, r, &f.ImageURL); err != nil {
		return err
	}
	return resolveGallery(ctx, r, f.Gallery)
}

func (f *ProductForm) Build(id string) (model.ShopProduct, error) {
	p := model.ShopProduct{
		ID:              id,
		Name:            strings.TrimSpace(f.Name),
		Description:     f.Description,
		CategoryID:      strings.TrimSpace(f.Category),
		Status:          model.ProductStatus(f.Status),
		IsFeatured:      f.IsFeatured,
		SKU:             strings.TrimSpace(f.SKU),
		Barcode:         strings.TrimSpace(f.Barcode),
		Tags:            model.JoinTags([]string{f.Tags}),
		MetaTitle:       strings.TrimSpace(f.MetaTitle),
		MetaDescription: strings.TrimSpace(f.MetaDescription),
		ImageURL:        f.ImageURL,
		HasPromotion:    f.HasPromotion,
		HasVariants:     f.HasVariants,
		VariantOptions: model.VariantOptions{
			Size:  slices.Clone(f.Options.Size),
			Color: slices.Clone(f.Options.Color),
		},
		Gallery: slices.Clone(f.Gallery),
	}
	var err error
	if p.Price, err = parseFloat(f.Price); err != nil {
		return model.ShopProduct{}, fmt.Errorf("price: %w", err)
	}
	if p.DiscountPrice, err = optionalFloat(f.DiscountPrice); err != nil {
		return model.ShopProduct{}, fmt.Errorf("discountPrice: %w", err)
	}
	if p.StockQuantity, err = intOrZero(f.StockQuantity); err != nil {
		return model.ShopProduct{}, fmt.Errorf("stockQuantity: %w", err)
	}
	if p.Weight, err = optionalFloat(f.Weight); err != nil {
		return model.ShopProduct{}, fmt.Errorf("weight: %w", err)
	}
	if f.HasPromotion {
		if p.PromotionStartDate, err = optionalDate(f.PromotionStartDate); err != nil {
			return model.ShopProduct{}, fmt.Errorf("promotionStartDate: %w", err)
		}
		if p.PromotionEndDate, err = optionalDate(f.PromotionEndDate); err != nil {
			return model.ShopProduct{}, fmt.Errorf("promotionEndDate: %w", err)
		}
	}
	if f.HasVariants {
		for _, in := range f.Variants {
			v := model.Variant{ID: in.ID, Size: in.Size, Color: in.Color, SKU: in.SKU}
			if v.Price, err = parseFloat(in.Price); err != nil {
				return model.ShopProduct{}, fmt.Errorf("variant %s price: %w", in.ID, err)
			}
			if v.Stock, err = parseInt(in.Stock); err != nil {
				return model.ShopProduct{}, fmt.Errorf("variant %s stock: %w", in.ID, err)
			}
			p.Variants = append(p.Variants, v)
		}
	}
	return p, nil
}
