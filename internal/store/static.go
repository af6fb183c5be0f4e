package store

import (
	"context"
	"slices"
	"sort"

	"clubhub-app/internal/model"
)

// Dataset is the fixed content the app ships with.
type Dataset struct {
	Teams      []model.Team
	Players    []model.Player
	Matches    []model.Match
	News       []model.NewsArticle
	Products   []model.ShopProduct
	Categories []model.ShopCategory
}

// StaticStore serves a Dataset that never changes after construction.
// Writes are accepted and acknowledged but have no effect.
type StaticStore struct {
	data Dataset
}

func NewStaticStore() *StaticStore {
	return NewStaticStoreFrom(SeedDataset())
}

func NewStaticStoreFrom(data Dataset) *StaticStore {
	s := &StaticStore{data: Dataset{
		Teams:      slices.Clone(data.Teams),
		Players:    slices.Clone(data.Players),
		Categories: slices.Clone(data.Categories),
	}}
	for _, m := range data.Matches {
		s.data.Matches = append(s.data.Matches, m.Clone())
	}
	for _, n := range data.News {
		s.data.News = append(s.data.News, n.Clone())
	}
	for _, p := range data.Products {
		s.data.Products = append(s.data.Products, p.Clone())
	}
	sortMatches(s.data.Matches)
	sortNews(s.data.News)
	return s
}

func (s *StaticStore) ListTeams(ctx context.Context) ([]model.Team, error) {
	return slices.Clone(s.data.Teams), nil
}

func (s *StaticStore) GetTeam(ctx context.Context, id string) (model.Team, error) {
	for _, t := range s.data.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Team{}, ErrNotFound
}

func (s *StaticStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return slices.Clone(s.data.Players), nil
}

func (s *StaticStore) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	for _, p := range s.data.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Player{}, ErrNotFound
}

func (s *StaticStore) ListMatches(ctx context.Context) ([]model.Match, error) {
	matches := make([]model.Match, 0, len(s.data.Matches))
	for _, m := range s.data.Matches {
		matches = append(matches, m.Clone())
	}
	return matches, nil
}

func (s *StaticStore) GetMatch(ctx context.Context, id string) (model.Match, error) {
	for _, m := range s.data.Matches {
		if m.ID == id {
			return m.Clone(), nil
		}
	}
	return model.Match{}, ErrNotFound
}

func (s *StaticStore) CreateMatch(ctx context.Context, match model.Match) (model.Result, error) {
	return inertResult(KindMatch, "created", match.ID), nil
}

func (s *StaticStore) UpdateMatch(ctx context.Context, id string, match model.Match) (model.Result, error) {
	return inertResult(KindMatch, "updated", id), nil
}

func (s *StaticStore) DeleteMatch(ctx context.Context, id string) (model.Result, error) {
	return inertResult(KindMatch, "deleted", id), nil
}

func (s *StaticStore) ListNews(ctx context.Context) ([]model.NewsArticle, error) {
	news := make([]model.NewsArticle, 0, len(s.data.News))
	for _, n := range s.data.News {
		news = append(news, n.Clone())
	}
	return news, nil
}

func (s *StaticStore) GetNews(ctx context.Context, id string) (model.NewsArticle, error) {
	for _, n := range s.data.News {
		if n.ID == id {
			return n.Clone(), nil
		}
	}
	return model.NewsArticle{}, ErrNotFound
}

func (s *StaticStore) CreateNews(ctx context.Context, article model.NewsArticle) (model.Result, error) {
	return inertResult(KindNews, "created", article.ID), nil
}

func (s *StaticStore) UpdateNews(ctx context.Context, id string, article model.NewsArticle) (model.Result, error) {
	return inertResult(KindNews, "updated", id), nil
}

func (s *StaticStore) DeleteNews(ctx context.Context, id string) (model.Result, error) {
	return inertResult(KindNews, "deleted", id), nil
}

func (s *StaticStore) ListShopItems(ctx context.Context) ([]model.ShopProduct, error) {
	products := make([]model.ShopProduct, 0, len(s.data.Products))
	for _, p := range s.data.Products {
		products = append(products, p.Clone())
	}
	return products, nil
}

func (s *StaticStore) GetShopItem(ctx context.Context, id string) (model.ShopProduct, error) {
	for _, p := range s.data.Products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return model.ShopProduct{}, ErrNotFound
}

func (s *StaticStore) CreateShopItem(ctx context.Context, product model.ShopProduct) (model.Result, error) {
	return inertResult(KindProduct, "created", product.ID), nil
}

func (s *StaticStore) UpdateShopItem(ctx context.Context, id string, product model.ShopProduct) (model.Result, error) {
	return inertResult(KindProduct, "updated", id), nil
}

func (s *StaticStore) DeleteShopItem(ctx context.Context, id string) (model.Result, error) {
	return inertResult(KindProduct, "deleted", id), nil
}

func (s *StaticStore) ListShopCategories(ctx context.Context) ([]model.ShopCategory, error) {
	return slices.Clone(s.data.Categories), nil
}

func inertResult(kind, verb, id string) model.Result {
	return model.Result{Success: true, Message: resultMessage(kind, verb), ID: id}
}

func sortMatches(matches []model.Match) {
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].MatchDate.After(matches[j].MatchDate) })
}

func sortNews(news []model.NewsArticle) {
	sort.SliceStable(news, func(i, j int) bool {
		a, b := news[i].PublishDate, news[j].PublishDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
