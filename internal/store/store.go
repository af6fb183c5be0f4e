package store

import (
	"context"
	"errors"

	"clubhub-app/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Store is the data service the screens and forms talk to. Reads return
// slices the caller owns; writes report a Result.
type Store interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (model.Team, error)

	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (model.Player, error)

	ListMatches(ctx context.Context) ([]model.Match, error)
	GetMatch(ctx context.Context, id string) (model.Match, error)
	CreateMatch(ctx context.Context, match model.Match) (model.Result, error)
	UpdateMatch(ctx context.Context, id string, match model.Match) (model.Result, error)
	DeleteMatch(ctx context.Context, id string) (model.Result, error)

	ListNews(ctx context.Context) ([]model.NewsArticle, error)
	GetNews(ctx context.Context, id string) (model.NewsArticle, error)
	CreateNews(ctx context.Context, article model.NewsArticle) (model.Result, error)
	UpdateNews(ctx context.Context, id string, article model.NewsArticle) (model.Result, error)
	DeleteNews(ctx context.Context, id string) (model.Result, error)

	ListShopItems(ctx context.Context) ([]model.ShopProduct, error)
	GetShopItem(ctx context.Context, id string) (model.ShopProduct, error)
	CreateShopItem(ctx context.Context, product model.ShopProduct) (model.Result, error)
	UpdateShopItem(ctx context.Context, id string, product model.ShopProduct) (model.Result, error)
	DeleteShopItem(ctx context.Context, id string) (model.Result, error)

	ListShopCategories(ctx context.Context) ([]model.ShopCategory, error)
}

const (
	KindTeam     = "team"
	KindPlayer   = "player"
	KindMatch    = "match"
	KindNews     = "news"
	KindProduct  = "product"
	KindCategory = "category"
)

func resultMessage(kind, verb string) string {
	switch kind {
	case KindMatch:
		return "Match " + verb + " successfully"
	case KindNews:
		return "News article " + verb + " successfully"
	case KindProduct:
		return "Product " + verb + " successfully"
	}
	return "Item " + verb + " successfully"
}

var (
	_ Store = (*StaticStore)(nil)
	_ Store = (*SQLStore)(nil)
)
