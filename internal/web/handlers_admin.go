package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clubhub-app/internal/form"
	"clubhub-app/internal/listview"
	"clubhub-app/internal/model"
)

type AdminListView struct {
	Result *model.Result  `json:"result,omitempty"`
	Rows   []listview.Row `json:"rows"`
}

func (s *Server) formOptions(reloader form.Reloader) form.Options {
	return form.Options{Assets: s.assets, Reloader: reloader, Now: s.now, Logger: s.log}
}

func writeRows[T any](s *Server, w http.ResponseWriter, r *http.Request, l *listview.List[T]) {
	if err := l.Reload(r.Context()); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AdminListView{Rows: l.Rows()})
}

func deleteRow[T any](s *Server, w http.ResponseWriter, r *http.Request, l *listview.List[T], id string) {
	res, err := l.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AdminListView{Result: &res, Rows: l.Rows()})
}

func runAction[T any](s *Server, w http.ResponseWriter, r *http.Request, l *listview.List[T], id string) {
	ctx := r.Context()
	if err := l.Reload(ctx); err != nil {
		s.writeStoreError(w, err)
		return
	}
	if err := l.RunAction(ctx, chi.URLParam(r, "action"), id); err != nil {
		if errors.Is(err, listview.ErrUnknownRow) {
			notFound(w)
			return
		}
		if errors.Is(err, listview.ErrUnknownAction) {
			s.badRequest(w, err)
			return
		}
		s.writeSaveError(w, err)
		return
	}
	if err := l.Reload(ctx); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AdminListView{Rows: l.Rows()})
}

func saveForm[E, T any](s *Server, w http.ResponseWriter, r *http.Request, c *form.Controller[E], l *listview.List[T], status int) {
	res, err := c.Save(r.Context())
	if err != nil {
		s.writeSaveError(w, err)
		return
	}
	writeJSON(w, status, AdminListView{Result: &res, Rows: l.Rows()})
}

func checkResult(res model.Result, err error) error {
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("write rejected: %s", res.Message)
	}
	return nil
}

// Matches

func (s *Server) matchList(r *http.Request, d display) *listview.List[model.Match] {
	q := r.URL.Query()
	return listview.New(listview.Config[model.Match]{
		ID:     func(m model.Match) string { return m.ID },
		Fetch:  s.store.ListMatches,
		Delete: s.store.DeleteMatch,
		Filter: matchFilters(q.Get("status"), q.Get("team"), q.Get("q")),
		Fields: func(m model.Match) []listview.Field {
			return []listview.Field{
				{Label: "Fixture", Value: d.teamName(m.HomeTeamID) + " vs " + d.teamName(m.AwayTeamID)},
				{Label: "Date", Value: d.date(&m.MatchDate)},
				{Label: "Status", Value: d.text(string(m.Status))},
				{Label: "Score", Value: scoreLine(m, d.fallback)},
			}
		},
		ExtraActions: []listview.Action[model.Match]{{
			Name: "feature", Icon: "star", Color: "#f5a623", Tooltip: "Toggle featured",
			Run: func(ctx context.Context, m model.Match) error {
				m.IsFeatured = !m.IsFeatured
				return checkResult(s.store.UpdateMatch(ctx, m.ID, m))
			},
		}},
	})
}

func (s *Server) adminDisplay(w http.ResponseWriter, r *http.Request) (display, bool) {
	d, err := s.display(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return display{}, false
	}
	return d, true
}

func (s *Server) handleAdminMatches(w http.ResponseWriter, r *http.Request) {
	d, ok := s.adminDisplay(w, r)
	if !ok {
		return
	}
	writeRows(s, w, r, s.matchList(r, d))
}

func (s *Server) handleAdminMatchCreate(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	d, ok := s.adminDisplay(w, r)
	if !ok {
		return
	}
	list := s.matchList(r, d)
	c, f := form.NewMatchController(s.store, s.formOptions(list))
	if err := req.apply(f); err != nil {
		s.badRequest(w, err)
		return
	}
	saveForm(s, w, r, c, list, http.StatusCreated)
}

func (s *Server) editMatch(w http.ResponseWriter, r *http.Request, reloader form.Reloader) (*form.Controller[model.Match], *form.MatchForm, bool) {
	id := chi.URLParam(r, "matchID")
	match, err := s.store.GetMatch(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return nil, nil, false
	}
	c, f := form.NewMatchController(s.store, s.formOptions(reloader))
	c.Edit(id, match)
	return c, f, true
}

func (s *Server) handleAdminMatchForm(w http.ResponseWriter, r *http.Request) {
	c, f, ok := s.editMatch(w, r, nil)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, buildFormView(c, map[string]any{"events": f.Events, "gallery": f.Gallery}))
}

func (s *Server) handleAdminMatchUpdate(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	d, ok := s.adminDisplay(w, r)
	if !ok {
		return
	}
	list := s.matchList(r, d)
	c, f, ok := s.editMatch(w, r, list)
	if !ok {
		return
	}
	if err := req.apply(f); err != nil {
		s.badRequest(w, err)
		return
	}
	saveForm(s, w, r, c, list, http.StatusOK)
}

func (s *Server) handleAdminMatchDelete(w http.ResponseWriter, r *http.Request) {
	d, ok := s.adminDisplay(w, r)
	if !ok {
		return
	}
	deleteRow(s, w, r, s.matchList(r, d), chi.URLParam(r, "matchID"))
}

func (s *Server) handleAdminMatchAction(w http.ResponseWriter, r *http.Request) {
	d, ok := s.adminDisplay(w, r)
	if !ok {
		return
	}
	runAction(s, w, r, s.matchList(r, d), chi.URLParam(r, "matchID"))
}

// News

func (s *Server) newsList(r *http.Request, d display) *listview.List[model.NewsArticle] {
	q := r.URL.Query()
	return listview.New(listview.Config[model.NewsArticle]{
		ID:     func(n model.NewsArticle) string { return n.ID },
		Fetch:  s.store.ListNews,
		Delete: s.store.DeleteNews,
		Filter: newsFilters(q.Get("status"), q.Get("category"), q.Get("q")),
		Fields: func(n model.NewsArticle) []listview.Field {
			return []listview.Field{
				{Label: "Title", Value: d.text(n.Title)},
				{Label: "Category", Value: d.text(n.Category)},
				{Label: "Status", Value: d.text(string(n.Status))},
				{Label: "Published", Value: d.date(n.PublishDate)},
			}
		},
		ExtraActions: []listview.Action[model.NewsArticle]{{
			Name: "publish", Icon: "send", Color: "#2e7d32", Tooltip: "Publish now",
			Run: func(ctx context.Context, n model.NewsArticle) error {
				n.Status = model.NewsPublished
				if n.PublishDate == nil {
					now := s.now()
					n.PublishDate = &now
				}
				return checkResult(s.store.UpdateNews(ctx, n.ID, n))
			},
		}},
	})
}

func (s *Server) handleAdminNews(w http.ResponseWriter, r *http.Request) {
	writeRows(s, w, r, s.newsList(r, newDisplay(s.locale, nil, nil)))
}

func (s *Server) handleAdminNewsCreate(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	list := s.newsList(r, newDisplay(s.locale, nil, nil))
	c, f := form.NewNewsController(s.store, s.formOptions(list))
	if err := req.apply(f); err != nil {
		s.badRequest(w, err)
		return
	}
	saveForm(s, w, r, c, list, http.StatusCreated)
}

func (s *Server) editNews(w http.ResponseWriter, r *http.Request, reloader form.Reloader) (*form.Controller[model.NewsArticle], *form.NewsForm, bool) {
	id := chi.URLParam(r, "newsID")
	article, err := s.store.GetNews(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return nil, nil, false
	}
	c, f := form.NewNewsController(s.store, s.formOptions(reloader))
	c.Edit(id, article)
	return c, f, true
}

func (s *Server) handleAdminNewsForm(w http.ResponseWriter, r *http.Request) {
	c, f, ok := s.editNews(w, r, nil)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, buildFormView(c, map[string]any{"related_articles": f.RelatedArticles, "gallery": f.Gallery}))
}

func (s *Server) handleAdminNewsUpdate(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	list := s.newsList(r, newDisplay(s.locale, nil, nil))
	c, f, ok := s.editNews(w, r, list)
	if !ok {
		return
	}
	if err := req.apply(f); err != nil {
		s.badRequest(w, err)
		return
	}
	saveForm(s, w, r, c, list, http.StatusOK)
}

func (s *Server) handleAdminNewsDelete(w http.ResponseWriter, r *http.Request) {
	deleteRow(s, w, r, s.newsList(r, newDisplay(s.locale, nil, nil)), chi.URLParam(r, "newsID"))
}

func (s *Server) handleAdminNewsAction(w http.ResponseWriter, r *http.Request) {
	runAction(s, w, r, s.newsList(r, newDisplay(s.locale, nil, nil)), chi.URLParam(r, "newsID"))
}

// Products

func (s *Server) productList(r *http.Request, d display) *listview.List[model.ShopProduct] {
	q := r.URL.Query()
	return listview.New(listview.Config[model.ShopProduct]{
		ID:     func(p model.ShopProduct) string { return p.ID },
		Fetch:  s.store.ListShopItems,
		Delete: s.store.DeleteShopItem,
		Filter: productFilters(q.Get("status"), q.Get("category"), q.Get("q")),
		Fields: func(p model.ShopProduct) []listview.Field {
			price := p.EffectivePrice()
			return []listview.Field{
				{Label: "Name", Value: d.text(p.Name)},
				{Label: "Price", Value: d.decimal(&price)},
				{Label: "Stock", Value: strconv.Itoa(p.StockQuantity)},
				{Label: "Status", Value: d.text(string(p.Status))},
			}
		},
		ExtraActions: []listview.Action[model.ShopProduct]{{
			Name: "out_of_stock", Icon: "remove_shopping_cart", Color: "#c62828", Tooltip: "Mark out of stock",
			Run: func(ctx context.Context, p model.ShopProduct) error {
				p.Status = model.ProductOutOfStock
				p.StockQuantity = 0
				return checkResult(s.store.UpdateShopItem(ctx, p.ID, p))
			},
		}},
	})
}

func (s *Server) handleAdminProducts(w http.ResponseWriter, r *http.Request) {
	writeRows(s, w, r, s.productList(r, newDisplay(s.locale, nil, nil)))
}

func (s *Server) handleAdminProductCreate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	list := s.productList(r, newDisplay(s.locale, nil, nil))
	c, f := form.NewProductController(s.store, s.formOptions(list))
	if err := req.apply(f); err != nil {
		s.badRequest(w, err)
		return
	}
	saveForm(s, w, r, c, list, http.StatusCreated)
}

func (s *Server) editProduct(w http.ResponseWriter, r *http.Request, reloader form.Reloader) (*form.Controller[model.ShopProduct], *form.ProductForm, bool) {
	id := chi.URLParam(r, "itemID")
	product, err := s.store.GetShopItem(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return nil, nil, false
	}
	c, f := form.NewProductController(s.store, s.formOptions(reloader))
	c.Edit(id, product)
	return c, f, true
}

func (s *Server) handleAdminProductForm(w http.ResponseWriter, r *http.Request) {
	c, f, ok := s.editProduct(w, r, nil)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, buildFormView(c, map[string]any{
		"options":  f.Options,
		"variants": f.Variants,
		"gallery":  f.Gallery,
	}))
}

func (s *Server) handleAdminProductUpdate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		s.badRequest(w, err)
		return
	}
	list := s.productList(r, newDisplay(s.locale, nil, nil))
	c, f, ok := s.editProduct(w, r, list)
	if !ok {
		return
	}
	if err := req.apply(f); err != nil {
		s.badRequest(w, err)
		return
	}
	saveForm(s, w, r, c, list, http.StatusOK)
}

func (s *Server) handleAdminProductDelete(w http.ResponseWriter, r *http.Request) {
	deleteRow(s, w, r, s.productList(r, newDisplay(s.locale, nil, nil)), chi.URLParam(r, "itemID"))
}

func (s *Server) handleAdminProductAction(w http.ResponseWriter, r *http.Request) {
	runAction(s, w, r, s.productList(r, newDisplay(s.locale, nil, nil)), chi.URLParam(r, "itemID"))
}
