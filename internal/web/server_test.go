package web

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/logging"
	"clubhub-app/internal/store"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, st store.Store, locale string) http.Handler {
	t.Helper()
	return NewServer(st, Options{
		Assets: assets.UploadStub{BaseURL: "https://cdn.test/uploads"},
		Locale: locale,
		Logger: logging.Discard(),
		Now:    func() time.Time { return fixedNow },
	}).Routes()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestTeamDetailFallsBackPerLocale(t *testing.T) {
	for locale, want := range map[string]string{"en": fallbackEN, "ar": fallbackAR} {
		h := newTestServer(t, store.NewStaticStore(), locale)
		rec := do(t, h, http.MethodGet, "/api/teams/t4", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", locale, rec.Code)
		}
		team := decode[TeamView](t, rec)
		if team.Logo != want {
			t.Errorf("%s: expected logo %q, got %q", locale, want, team.Logo)
		}
		if team.Name != "Northern Stars" {
			t.Errorf("%s: unexpected name %q", locale, team.Name)
		}
	}
}

func TestPlayerDetailShowsTeamAndFallbacks(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	player := decode[PlayerView](t, do(t, h, http.MethodGet, "/api/players/p8", ""))
	if player.Team != "Northern Stars" {
		t.Errorf("expected team name, got %q", player.Team)
	}
	if player.Bio != fallbackEN || player.Image != fallbackEN {
		t.Errorf("expected fallbacks, got bio %q image %q", player.Bio, player.Image)
	}
	if player.Height != "180 cm" {
		t.Errorf("unexpected height %q", player.Height)
	}
}

func TestMatchDetailResolvesEvents(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	match := decode[MatchView](t, do(t, h, http.MethodGet, "/api/matches/m1", ""))
	if match.ScoreLine != "2 - 1" {
		t.Errorf("unexpected score line %q", match.ScoreLine)
	}
	if len(match.Events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(match.Events))
	}
	first := match.Events[0]
	if first.Minute != "17'" || first.Team != "Al Nour FC" || first.Player != "Ahmad Yasin" {
		t.Errorf("unexpected first event %+v", first)
	}
	if match.Events[1].Description != fallbackEN {
		t.Errorf("expected description fallback, got %q", match.Events[1].Description)
	}
}

func TestUnknownEntityIsNotFound(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "ar")
	for _, target := range []string{"/api/teams/zz", "/api/players/zz", "/api/matches/zz", "/api/news/zz", "/api/shop/items/zz"} {
		rec := do(t, h, http.MethodGet, target, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, rec.Code)
		}
		if body := decode[errorBody](t, rec); body.Error != "not found" {
			t.Errorf("%s: unexpected body %+v", target, body)
		}
	}
}

func TestMatchListFilters(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	cases := map[string]int{
		"/api/matches":                  5,
		"/api/matches?status=completed": 3,
		"/api/matches?status=scheduled": 1,
		"/api/matches?team=t4":          2,
	}
	for target, want := range cases {
		rec := do(t, h, http.MethodGet, target, "")
		var items []json.RawMessage
		if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		if len(items) != want {
			t.Errorf("%s: expected %d items, got %d", target, want, len(items))
		}
	}
}

func TestStandingsOrder(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	table := decode[[]StandingEntry](t, do(t, h, http.MethodGet, "/api/standings", ""))
	var order []string
	for _, e := range table {
		order = append(order, e.TeamID)
	}
	if strings.Join(order, ",") != "t3,t1,t4,t2" {
		t.Fatalf("unexpected order %v", order)
	}
	if table[0].Points != 4 || table[0].Played != 2 {
		t.Errorf("unexpected leader %+v", table[0])
	}
}

const completedWithoutHomeScore = `{"fields":{
	"homeTeam":"t1","awayTeam":"t2","matchDate":"2026-11-01T18:30",
	"venue":"Riverside Arena","competition":"Premier League",
	"status":"completed","awayScore":"2"}}`

func TestAdminMatchCreateRejectsInvalidForm(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	rec := do(t, h, http.MethodPost, "/api/admin/matches", completedWithoutHomeScore)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := decode[errorBody](t, rec)
	want := map[string]string{"homeScore": "Home score is required for completed or live matches"}
	if !maps.Equal(body.Fields, want) {
		t.Errorf("got %v, want %v", body.Fields, want)
	}
}

func TestAdminMatchCreate(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	body := `{"fields":{
		"homeTeam":"t1","awayTeam":"t3","matchDate":"2026-11-08T18:30",
		"venue":"King Abdullah II Stadium","competition":"Pro League","homePossession":"60"},
		"events":[],
		"gallery":[{"uri":"file:///tmp/photo.jpg"}]}`
	rec := do(t, h, http.MethodPost, "/api/admin/matches", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	view := decode[AdminListView](t, rec)
	if view.Result == nil || !view.Result.Success {
		t.Fatalf("expected a successful result, got %+v", view.Result)
	}
	if len(view.Rows) != 5 {
		t.Errorf("expected the reloaded list, got %d rows", len(view.Rows))
	}
}

func TestAdminRejectsBlankGalleryURI(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	body := `{"fields":{
		"homeTeam":"t1","awayTeam":"t3","matchDate":"2026-11-08T18:30",
		"venue":"King Abdullah II Stadium","competition":"Pro League"},
		"gallery":[{"uri":"https://cdn.test/a.jpg"},{"uri":"  "}]}`
	rec := do(t, h, http.MethodPost, "/api/admin/matches", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[errorBody](t, rec).Fields
	want := map[string]string{"gallery[1].uri": "Image is required"}
	if !maps.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestServerDefaultsServeWithoutOptions(t *testing.T) {
	h := NewServer(store.NewStaticStore(), Options{}).Routes()
	if rec := do(t, h, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/api/admin/matches", completedWithoutHomeScore); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestAdminRejectsUnknownBodyFields(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	rec := do(t, h, http.MethodPost, "/api/admin/news", `{"title":"flat"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminMatchForm(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	rec := do(t, h, http.MethodGet, "/api/admin/matches/m1/form", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	view := decode[FormView](t, rec)
	if view.ID != "m1" || view.Tab != "basic" {
		t.Errorf("unexpected form header %q %q", view.ID, view.Tab)
	}
	if len(view.Tabs) != 5 || view.Tabs[0].Fields["homeTeam"] != "t1" {
		t.Errorf("unexpected tabs %+v", view.Tabs)
	}

	if rec := do(t, h, http.MethodGet, "/api/admin/matches/zz/form", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown match, got %d", rec.Code)
	}
}

func TestAdminDeleteReturnsRows(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	rec := do(t, h, http.MethodDelete, "/api/admin/products/s2?status=active", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	view := decode[AdminListView](t, rec)
	if view.Result == nil || !view.Result.Success {
		t.Fatalf("unexpected result %+v", view.Result)
	}
	if len(view.Rows) != 2 {
		t.Errorf("expected 2 active products, got %d", len(view.Rows))
	}
	if len(view.Rows[0].Actions) != 1 || view.Rows[0].Actions[0].Name != "out_of_stock" {
		t.Errorf("unexpected actions %+v", view.Rows[0].Actions)
	}
}

func TestAdminActions(t *testing.T) {
	h := newTestServer(t, store.NewStaticStore(), "en")
	cases := []struct {
		target string
		want   int
	}{
		{"/api/admin/matches/m1/actions/feature", http.StatusOK},
		{"/api/admin/news/n4/actions/publish", http.StatusOK},
		{"/api/admin/products/s1/actions/out_of_stock", http.StatusOK},
		{"/api/admin/matches/zz/actions/feature", http.StatusNotFound},
		{"/api/admin/matches/m1/actions/explode", http.StatusBadRequest},
	}
	for _, tc := range cases {
		if rec := do(t, h, http.MethodPost, tc.target, ""); rec.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.target, tc.want, rec.Code)
		}
	}
}

func TestAdminUpdatePersistsToSQLStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.NewSQLiteStore(":memory:", store.SQLiteOptions{})
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Seed(ctx, store.SeedDataset()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := newTestServer(t, st, "en")

	rec := do(t, h, http.MethodPut, "/api/admin/matches/m1", `{"fields":{"venue":"Renamed Arena"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	match, err := st.GetMatch(ctx, "m1")
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if match.Venue != "Renamed Arena" {
		t.Errorf("expected updated venue, got %q", match.Venue)
	}
	if len(match.Events) != 4 {
		t.Errorf("expected events kept, got %d", len(match.Events))
	}

	stamp := time.Date(2026, 11, 1, 18, 30, 45, 0, time.UTC)
	match.MatchDate = stamp
	if _, err := st.UpdateMatch(ctx, "m1", match); err != nil {
		t.Fatalf("update match: %v", err)
	}
	if rec := do(t, h, http.MethodPut, "/api/admin/matches/m1", `{"fields":{"venue":"West Stand"}}`); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if match, err = st.GetMatch(ctx, "m1"); err != nil {
		t.Fatalf("get match: %v", err)
	}
	if !match.MatchDate.Equal(stamp) || match.Venue != "West Stand" {
		t.Errorf("edit rewrote untouched date: got %v venue %q", match.MatchDate, match.Venue)
	}

	if rec := do(t, h, http.MethodPut, "/api/admin/matches/zz", `{"fields":{}}`); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown match, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodDelete, "/api/admin/news/n4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if view := decode[AdminListView](t, rec); len(view.Rows) != 3 {
		t.Errorf("expected 3 rows after delete, got %d", len(view.Rows))
	}
	if rec := do(t, h, http.MethodDelete, "/api/admin/news/n4", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestBuildStandingsIgnoresUnfinishedMatches(t *testing.T) {
	data := store.SeedDataset()
	table := BuildStandings(data.Teams, data.Matches)
	played := 0
	for _, e := range table {
		played += e.Played
	}
	if played != 6 {
		t.Errorf("expected 3 completed matches counted twice, got %d", played)
	}
}
