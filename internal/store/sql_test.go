package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"clubhub-app/internal/codec"
	"clubhub-app/internal/model"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:", SQLiteOptions{})
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLStoreSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLStore(t)
	data := SeedDataset()

	if err := s.Seed(ctx, data); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := s.Seed(ctx, data); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	teams, err := s.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != len(data.Teams) {
		t.Errorf("expected %d teams, got %d", len(data.Teams), len(teams))
	}
	m1, err := s.GetMatch(ctx, "m1")
	if err != nil {
		t.Fatalf("get m1: %v", err)
	}
	if len(m1.Events) != 4 || m1.Statistics.Possession.Home != 58 {
		t.Errorf("nested records lost: %+v", m1)
	}
}

func TestSQLStoreMatchLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLStore(t)

	match := model.Match{
		HomeTeamID: "t1",
		AwayTeamID: "t2",
		MatchDate:  time.Date(2026, time.March, 1, 18, 0, 0, 0, time.UTC),
		Venue:      "Aqaba Stadium",
		Status:     model.MatchScheduled,
		Statistics: model.DefaultStatistics(),
		Events:     []model.MatchEvent{{ID: "e1", Type: model.EventGoal, Minute: 3, Team: model.SideHome, Player: "p1"}},
	}
	res, err := s.CreateMatch(ctx, match)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.Success || res.ID == "" {
		t.Fatalf("expected success with id, got %+v", res)
	}

	got, err := s.GetMatch(ctx, res.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Venue != "Aqaba Stadium" || len(got.Events) != 1 || got.Events[0].Minute != 3 {
		t.Errorf("unexpected match %+v", got)
	}

	match.ID = res.ID
	if _, err := s.CreateMatch(ctx, match); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict on duplicate create, got %v", err)
	}

	got.Venue = "Amman International"
	if _, err := s.UpdateMatch(ctx, res.ID, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := s.GetMatch(ctx, res.ID)
	if updated.Venue != "Amman International" {
		t.Errorf("update not visible, venue %q", updated.Venue)
	}

	if _, err := s.DeleteMatch(ctx, res.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetMatch(ctx, res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.DeleteMatch(ctx, res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := s.UpdateMatch(ctx, "missing", got); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on update of missing id, got %v", err)
	}
}

func TestSQLStoreMalformedNestedFieldFallsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLStore(t)

	rec := toMatchRecord(model.Match{ID: "broken", HomeTeamID: "t1", AwayTeamID: "t2", Status: model.MatchScheduled})
	rec.Events = `[{"id":"e1","type":"goal","minute":`
	rec.Statistics = `{"possession":`
	if err := s.seedDoc(ctx, KindMatch, "broken", rec); err != nil {
		t.Fatalf("insert raw doc: %v", err)
	}

	m, err := s.GetMatch(ctx, "broken")
	if err != nil {
		t.Fatalf("expected fallback, got error %v", err)
	}
	if m.Events == nil || len(m.Events) != 0 {
		t.Errorf("expected empty events, got %#v", m.Events)
	}
	if m.Statistics != model.DefaultStatistics() {
		t.Errorf("expected default statistics, got %+v", m.Statistics)
	}
	if m.HomeTeamID != "t1" {
		t.Errorf("flat fields lost: %+v", m)
	}
}

func TestSQLStoreNewsAndProducts(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLStore(t)

	article := model.NewsArticle{Title: "Derby preview", Status: model.NewsDraft, RelatedArticles: []string{"n1", "n2"}}
	res, err := s.CreateNews(ctx, article)
	if err != nil {
		t.Fatalf("create news: %v", err)
	}
	got, err := s.GetNews(ctx, res.ID)
	if err != nil {
		t.Fatalf("get news: %v", err)
	}
	if len(got.RelatedArticles) != 2 || got.RelatedArticles[1] != "n2" {
		t.Errorf("related articles lost: %#v", got.RelatedArticles)
	}

	product := model.ShopProduct{
		Name: "Cap", Price: 15, CategoryID: "c3", Status: model.ProductActive, HasVariants: true,
		VariantOptions: model.VariantOptions{Color: []string{"Black"}},
		Variants:       []model.Variant{{ID: "v1", Color: "Black", Price: 15, Stock: 4, SKU: "CAP-BLACK"}},
	}
	res, err = s.CreateShopItem(ctx, product)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	p, err := s.GetShopItem(ctx, res.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if len(p.Variants) != 1 || p.VariantOptions.Color[0] != "Black" {
		t.Errorf("variants lost: %+v", p)
	}
	items, _ := s.ListShopItems(ctx)
	if len(items) != 1 {
		t.Errorf("expected 1 product, got %d", len(items))
	}
}

func TestRecordEncodingIsTransportText(t *testing.T) {
	rec := toProductRecord(model.ShopProduct{Variants: []model.Variant{{ID: "v1", Size: "S", Price: 1, Stock: 2, SKU: "X"}}})
	variants, err := codec.Decode(rec.Variants, []model.Variant{})
	if err != nil || len(variants) != 1 || variants[0].Size != "S" {
		t.Fatalf("variants not stored as transport text: %q %v", rec.Variants, err)
	}
}

func TestRebindPostgres(t *testing.T) {
	got := dialectPostgres.rebind(`UPDATE documents SET payload = ? WHERE kind = ? AND id = ?`)
	want := `UPDATE documents SET payload = $1 WHERE kind = $2 AND id = $3`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if q := dialectSQLite.rebind("a = ?"); q != "a = ?" {
		t.Errorf("sqlite query changed: %q", q)
	}
}

type affectedResult struct {
	rows int64
	err  error
}

func (r affectedResult) LastInsertId() (int64, error) { return 0, nil }
func (r affectedResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffected(t *testing.T) {
	driverErr := errors.New("driver cannot count rows")
	cases := []struct {
		name    string
		res     affectedResult
		want    error
		notWant error
	}{
		{"one row", affectedResult{rows: 1}, nil, nil},
		{"no rows", affectedResult{}, ErrNotFound, nil},
		{"driver error", affectedResult{err: driverErr}, driverErr, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkAffected(tc.res, KindMatch, "update", "m1")
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
			if tc.notWant != nil && errors.Is(err, tc.notWant) {
				t.Errorf("did not expect %v, got %v", tc.notWant, err)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other", &pgconn.PgError{Code: "23502"}, false},
		{"plain text mentioning duplicate", errors.New("duplicate entry"), false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	ctx := context.Background()
	s := newTestSQLStore(t)
	if _, err := s.CreateShopItem(ctx, model.ShopProduct{ID: "dup", Name: "Scarf"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO documents (kind, id, payload, schema_version, updated_at) VALUES (?,?,?,?,?)`,
		KindProduct, "dup", "{}", codec.SchemaVersion, time.Now().UTC())
	if !isUniqueViolation(err) {
		t.Errorf("expected sqlite primary key violation, got %v", err)
	}
}
