package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"clubhub-app/internal/listview"
	"clubhub-app/internal/model"
)

func writeList[T any](s *Server, w http.ResponseWriter, r *http.Request, l *listview.List[T]) {
	if err := l.Reload(r.Context()); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l.Items())
}

// whenSet returns keep as a filter only if the query value is present.
func whenSet[T any](value string, keep func(T, string) bool) func([]T) []T {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return listview.Where(func(item T) bool { return keep(item, value) })
}

func (s *Server) display(ctx context.Context) (display, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return display{}, err
	}
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return display{}, err
	}
	return newDisplay(s.locale, teams, players), nil
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeList(s, w, r, listview.New(listview.Config[model.Team]{
		ID:    func(t model.Team) string { return t.ID },
		Fetch: s.store.ListTeams,
		Filter: listview.Search(q.Get("q"), func(t model.Team) string {
			return t.Name + " " + t.City + " " + t.HomeStadium
		}),
	}))
}

func (s *Server) handleTeamShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	team, err := s.store.GetTeam(ctx, chi.URLParam(r, "teamID"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	d := newDisplay(s.locale, []model.Team{team}, players)
	writeJSON(w, http.StatusOK, d.team(team, players))
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeList(s, w, r, listview.New(listview.Config[model.Player]{
		ID:    func(p model.Player) string { return p.ID },
		Fetch: s.store.ListPlayers,
		Filter: listview.Chain(
			whenSet(q.Get("team"), func(p model.Player, team string) bool { return p.TeamID == team }),
			whenSet(q.Get("position"), func(p model.Player, pos string) bool { return strings.EqualFold(p.Position, pos) }),
			listview.Search(q.Get("q"), func(p model.Player) string { return p.Name + " " + p.Nationality }),
		),
	}))
}

func (s *Server) handlePlayerShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	player, err := s.store.GetPlayer(ctx, chi.URLParam(r, "playerID"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	d, err := s.display(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d.player(player))
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeList(s, w, r, listview.New(listview.Config[model.Match]{
		ID:     func(m model.Match) string { return m.ID },
		Fetch:  s.store.ListMatches,
		Filter: matchFilters(q.Get("status"), q.Get("team"), q.Get("q")),
	}))
}

func matchFilters(status, team, query string) func([]model.Match) []model.Match {
	return listview.Chain(
		whenSet(status, func(m model.Match, st string) bool { return string(m.Status) == st }),
		whenSet(team, func(m model.Match, id string) bool { return m.Involves(id) }),
		listview.Search(query, func(m model.Match) string { return m.Venue + " " + m.Competition + " " + m.Season }),
	)
}

func (s *Server) handleMatchShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	match, err := s.store.GetMatch(ctx, chi.URLParam(r, "matchID"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	d, err := s.display(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d.match(match))
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeList(s, w, r, listview.New(listview.Config[model.NewsArticle]{
		ID:     func(n model.NewsArticle) string { return n.ID },
		Fetch:  s.store.ListNews,
		Filter: newsFilters(q.Get("status"), q.Get("category"), q.Get("q")),
	}))
}

func newsFilters(status, category, query string) func([]model.NewsArticle) []model.NewsArticle {
	return listview.Chain(
		whenSet(status, func(n model.NewsArticle, st string) bool { return string(n.Status) == st }),
		whenSet(category, func(n model.NewsArticle, c string) bool { return strings.EqualFold(n.Category, c) }),
		listview.Search(query, func(n model.NewsArticle) string { return n.Title + " " + n.Excerpt + " " + n.Tags }),
	)
}

func (s *Server) handleNewsShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	article, err := s.store.GetNews(ctx, chi.URLParam(r, "newsID"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	all, err := s.store.ListNews(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newDisplay(s.locale, nil, nil).news(article, all))
}

func (s *Server) handleShopItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeList(s, w, r, listview.New(listview.Config[model.ShopProduct]{
		ID:     func(p model.ShopProduct) string { return p.ID },
		Fetch:  s.store.ListShopItems,
		Filter: productFilters(q.Get("status"), q.Get("category"), q.Get("q")),
	}))
}

func productFilters(status, category, query string) func([]model.ShopProduct) []model.ShopProduct {
	return listview.Chain(
		whenSet(status, func(p model.ShopProduct, st string) bool { return string(p.Status) == st }),
		whenSet(category, func(p model.ShopProduct, c string) bool { return p.CategoryID == c }),
		listview.Search(query, func(p model.ShopProduct) string { return p.Name + " " + p.Description + " " + p.Tags }),
	)
}

func (s *Server) handleShopItemShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	product, err := s.store.GetShopItem(ctx, chi.URLParam(r, "itemID"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	categories, err := s.store.ListShopCategories(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newDisplay(s.locale, nil, nil).product(product, categories))
}

func (s *Server) handleShopCategories(w http.ResponseWriter, r *http.Request) {
	writeList(s, w, r, listview.New(listview.Config[model.ShopCategory]{
		ID:    func(c model.ShopCategory) string { return c.ID },
		Fetch: s.store.ListShopCategories,
	}))
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BuildStandings(teams, matches))
}
