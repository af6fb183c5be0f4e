package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/logging"
	"clubhub-app/internal/metrics"
	"clubhub-app/internal/store"
)

type Options struct {
	Assets         assets.Resolver
	Locale         string
	Logger         logrus.FieldLogger
	Now            func() time.Time
	AllowedOrigins []string
}

type Server struct {
	store  store.Store
	assets assets.Resolver
	locale string
	log    logrus.FieldLogger
	now    func() time.Time
	cors   []string
}

func NewServer(st store.Store, opts Options) *Server {
	s := &Server{
		store:  st,
		assets: opts.Assets,
		locale: opts.Locale,
		log:    opts.Logger,
		now:    opts.Now,
		cors:   opts.AllowedOrigins,
	}
	if s.assets == nil {
		s.assets = assets.Passthrough{}
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.withCORS)
	r.Use(s.withRequestLog)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.handleTeams)
		r.Get("/teams/{teamID}", s.handleTeamShow)
		r.Get("/players", s.handlePlayers)
		r.Get("/players/{playerID}", s.handlePlayerShow)
		r.Get("/matches", s.handleMatches)
		r.Get("/matches/{matchID}", s.handleMatchShow)
		r.Get("/news", s.handleNews)
		r.Get("/news/{newsID}", s.handleNewsShow)
		r.Get("/shop/items", s.handleShopItems)
		r.Get("/shop/items/{itemID}", s.handleShopItemShow)
		r.Get("/shop/categories", s.handleShopCategories)
		r.Get("/standings", s.handleStandings)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/matches", s.handleAdminMatches)
			r.Post("/matches", s.handleAdminMatchCreate)
			r.Get("/matches/{matchID}/form", s.handleAdminMatchForm)
			r.Put("/matches/{matchID}", s.handleAdminMatchUpdate)
			r.Delete("/matches/{matchID}", s.handleAdminMatchDelete)
			r.Post("/matches/{matchID}/actions/{action}", s.handleAdminMatchAction)

			r.Get("/news", s.handleAdminNews)
			r.Post("/news", s.handleAdminNewsCreate)
			r.Get("/news/{newsID}/form", s.handleAdminNewsForm)
			r.Put("/news/{newsID}", s.handleAdminNewsUpdate)
			r.Delete("/news/{newsID}", s.handleAdminNewsDelete)
			r.Post("/news/{newsID}/actions/{action}", s.handleAdminNewsAction)

			r.Get("/products", s.handleAdminProducts)
			r.Post("/products", s.handleAdminProductCreate)
			r.Get("/products/{itemID}/form", s.handleAdminProductForm)
			r.Put("/products/{itemID}", s.handleAdminProductUpdate)
			r.Delete("/products/{itemID}", s.handleAdminProductDelete)
			r.Post("/products/{itemID}/actions/{action}", s.handleAdminProductAction)
		})
	})

	return r
}
