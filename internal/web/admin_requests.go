package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sort"

	"clubhub-app/internal/form"
	"clubhub-app/internal/model"
)

// Admin write bodies carry flat form fields plus the nested editors.
// A nil nested list leaves the current one untouched.

type galleryInput struct {
	ID       string `json:"id"`
	URI      string `json:"uri"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
}

type matchRequest struct {
	Fields  map[string]string  `json:"fields"`
	Events  []model.MatchEvent `json:"events"`
	Gallery []galleryInput     `json:"gallery"`
}

type newsRequest struct {
	Fields          map[string]string `json:"fields"`
	RelatedArticles []string          `json:"related_articles"`
	Gallery         []galleryInput    `json:"gallery"`
}

type variantOverride struct {
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Price *string `json:"price"`
	Stock *string `json:"stock"`
	SKU   *string `json:"sku"`
}

type productRequest struct {
	Fields   map[string]string `json:"fields"`
	Sizes    []string          `json:"sizes"`
	Colors   []string          `json:"colors"`
	Variants []variantOverride `json:"variants"`
	Gallery  []galleryInput    `json:"gallery"`
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

type fieldApplier interface {
	Apply(field, value string) error
}

// applyFields applies in name order so repeated runs give the same state.
func applyFields(f fieldApplier, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := f.Apply(name, fields[name]); err != nil {
			return err
		}
	}
	return nil
}

// applyGallery keeps listed items that already exist and adds the rest.
func applyGallery(items *[]model.GalleryItem, in []galleryInput, add func(uri, fileName, mimeType string) model.GalleryItem) {
	if in == nil {
		return
	}
	current := *items
	*items = nil
	for _, g := range in {
		i := slices.IndexFunc(current, func(c model.GalleryItem) bool { return g.ID != "" && c.ID == g.ID })
		if i >= 0 {
			*items = append(*items, current[i])
			continue
		}
		add(g.URI, g.FileName, g.MimeType)
	}
}

func syncOptions(current, want []string, add, remove func(string) bool) {
	if want == nil {
		return
	}
	for _, v := range slices.Clone(current) {
		if !slices.Contains(want, v) {
			remove(v)
		}
	}
	for _, v := range want {
		add(v)
	}
}

func (req matchRequest) apply(f *form.MatchForm) error {
	if err := applyFields(f, req.Fields); err != nil {
		return err
	}
	if req.Events != nil {
		f.Events = nil
		for _, e := range req.Events {
			f.AddEvent(e)
		}
	}
	applyGallery(&f.Gallery, req.Gallery, f.AddGalleryItem)
	return nil
}

func (req newsRequest) apply(f *form.NewsForm) error {
	if err := applyFields(f, req.Fields); err != nil {
		return err
	}
	if req.RelatedArticles != nil {
		f.RelatedArticles = nil
		for _, id := range req.RelatedArticles {
			f.AddRelated(id)
		}
	}
	applyGallery(&f.Gallery, req.Gallery, f.AddGalleryItem)
	return nil
}

func (req productRequest) apply(f *form.ProductForm) error {
	if err := applyFields(f, req.Fields); err != nil {
		return err
	}
	syncOptions(f.Options.Size, req.Sizes, f.AddSize, f.RemoveSize)
	syncOptions(f.Options.Color, req.Colors, f.AddColor, f.RemoveColor)
	for _, o := range req.Variants {
		i := slices.IndexFunc(f.Variants, func(v form.VariantInput) bool { return v.Size == o.Size && v.Color == o.Color })
		if i < 0 {
			return fmt.Errorf("no variant for size %q and color %q", o.Size, o.Color)
		}
		id := f.Variants[i].ID
		for name, value := range map[string]*string{"price": o.Price, "stock": o.Stock, "sku": o.SKU} {
			if value == nil {
				continue
			}
			if err := f.UpdateVariant(id, name, *value); err != nil {
				return err
			}
		}
	}
	applyGallery(&f.Gallery, req.Gallery, f.AddGalleryItem)
	return nil
}

type FormTab struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// FormView is the edit-load state of a form as the admin screen shows it.
type FormView struct {
	ID     string    `json:"id,omitempty"`
	Tab    string    `json:"tab"`
	Tabs   []FormTab `json:"tabs"`
	Nested any       `json:"nested"`
}

func buildFormView[E any](c *form.Controller[E], nested any) FormView {
	f := c.Form()
	values := f.Values()
	v := FormView{ID: c.Editing(), Tab: string(c.Tab()), Nested: nested}
	for _, tab := range f.Tabs() {
		ft := FormTab{Name: string(tab), Fields: map[string]string{}}
		for _, name := range f.Fields(tab) {
			ft.Fields[name] = values[name]
		}
		v.Tabs = append(v.Tabs, ft)
	}
	return v
}
