package form

import (
	"errors"
	"maps"
	"testing"
	"time"

	"clubhub-app/internal/model"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func validMatchForm(t *testing.T) *MatchForm {
	t.Helper()
	f := NewMatchForm()
	for k, v := range map[string]string{
		"homeTeam":    "t1",
		"awayTeam":    "t2",
		"matchDate":   "2026-11-01T18:30",
		"venue":       "Riverside Arena",
		"competition": "Premier League",
	} {
		if err := f.Apply(k, v); err != nil {
			t.Fatalf("apply %s: %v", k, err)
		}
	}
	return f
}

func TestCompletedMatchNeedsHomeScore(t *testing.T) {
	f := validMatchForm(t)
	_ = f.Apply("status", "completed")
	_ = f.Apply("homeScore", "")
	_ = f.Apply("awayScore", "2")

	got := f.Validate(now)
	want := Errors{"homeScore": "Home score is required for completed or live matches"}
	if !maps.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatchValidation(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(f *MatchForm)
		field string
	}{
		{"valid", func(f *MatchForm) {}, ""},
		{"missing venue", func(f *MatchForm) { f.Venue = " " }, "venue"},
		{"missing competition", func(f *MatchForm) { f.Competition = "" }, "competition"},
		{"same teams", func(f *MatchForm) { f.AwayTeam = "t1" }, "awayTeam"},
		{"bad date", func(f *MatchForm) { f.MatchDate = "next sunday" }, "matchDate"},
		{"bad status", func(f *MatchForm) { f.Status = "abandoned" }, "status"},
		{"live without away score", func(f *MatchForm) { f.Status = "live"; f.HomeScore = "1" }, "awayScore"},
		{"score not a number", func(f *MatchForm) { f.HomeScore = "two" }, "homeScore"},
		{"attendance not a number", func(f *MatchForm) { f.Attendance = "lots" }, "attendance"},
		{"possession over 100", func(f *MatchForm) { f.Stats[0].Home = "120" }, "homePossession"},
		{"negative shots", func(f *MatchForm) { f.Stats[1].Away = "-1" }, "awayShots"},
		{"event minute out of range", func(f *MatchForm) {
			f.AddEvent(model.MatchEvent{Type: model.EventGoal, Minute: 121, Team: model.SideHome, Player: "p1"})
		}, "events[0].minute"},
		{"event without player", func(f *MatchForm) {
			f.AddEvent(model.MatchEvent{Type: model.EventGoal, Minute: 10, Team: model.SideHome})
		}, "events[0].player"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validMatchForm(t)
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

func TestPossessionComplement(t *testing.T) {
	f := NewMatchForm()
	if f.Stats[0] != (StatInput{"50", "50"}) {
		t.Fatalf("default possession %v", f.Stats[0])
	}
	_ = f.Apply("homePossession", "62")
	if f.Stats[0].Away != "38" {
		t.Errorf("away = %q, want 38", f.Stats[0].Away)
	}
	_ = f.Apply("awayPossession", "45")
	if f.Stats[0].Home != "55" {
		t.Errorf("home = %q, want 55", f.Stats[0].Home)
	}
	_ = f.Apply("homePossession", "")
	if f.Stats[0] != (StatInput{"50", "50"}) {
		t.Errorf("clearing should reset both sides, got %v", f.Stats[0])
	}
}

func TestEventsStayOrderedByMinute(t *testing.T) {
	f := NewMatchForm()
	late := f.AddEvent(model.MatchEvent{Type: model.EventGoal, Minute: 80, Team: model.SideAway, Player: "p5"})
	f.AddEvent(model.MatchEvent{Type: model.EventYellowCard, Minute: 12, Team: model.SideHome, Player: "p2"})
	if f.Events[0].Minute != 12 || f.Events[1].ID != late {
		t.Fatalf("events not ordered: %+v", f.Events)
	}

	e := f.Events[1]
	e.Minute = 5
	if err := f.UpdateEvent(e); err != nil {
		t.Fatal(err)
	}
	if f.Events[0].ID != late {
		t.Errorf("updated event should move first: %+v", f.Events)
	}
	if err := f.RemoveEvent(late); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveEvent(late); !errors.Is(err, ErrNoSuchItem) {
		t.Errorf("expected ErrNoSuchItem, got %v", err)
	}
	if len(f.Events) != 1 {
		t.Errorf("expected 1 event, got %d", len(f.Events))
	}
}

func TestMatchLoadBuild(t *testing.T) {
	m := model.Match{
		ID:          "m1",
		HomeTeamID:  "t1",
		AwayTeamID:  "t2",
		MatchDate:   time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Venue:       "Riverside Arena",
		Status:      model.MatchCompleted,
		HomeScore:   model.IntPtr(2),
		AwayScore:   model.IntPtr(0),
		Competition: "Cup",
		Attendance:  18000,
		Statistics: model.MatchStatistics{
			Possession: model.StatPair{Home: 58, Away: 42},
			Corners:    model.StatPair{Home: 7, Away: 3},
		},
		Events: []model.MatchEvent{{ID: "e1", Type: model.EventGoal, Minute: 33, Team: model.SideHome, Player: "p1"}},
	}
	f := NewMatchForm()
	f.Load(m)

	v := f.Values()
	if v["matchDate"] != "2026-03-14T15:00" || v["homeScore"] != "2" || v["awayPossession"] != "42" || v["homeCorners"] != "7" {
		t.Errorf("unexpected values %v", v)
	}
	if errs := f.Validate(now); len(errs) != 0 {
		t.Fatalf("loaded match should be valid, got %v", errs)
	}
	got, err := f.Build("m1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.MatchDate.Equal(m.MatchDate) || *got.HomeScore != 2 || *got.AwayScore != 0 ||
		got.Statistics != m.Statistics || got.Attendance != 18000 || len(got.Events) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestMatchLoadZeroStatisticsFallsBackToEvenPossession(t *testing.T) {
	f := NewMatchForm()
	f.Load(model.Match{HomeTeamID: "t1"})
	if f.Stats[0] != (StatInput{"50", "50"}) {
		t.Errorf("got %v", f.Stats[0])
	}
}

func TestApplyUnknownFieldAndTabs(t *testing.T) {
	f := NewMatchForm()
	if err := f.Apply("kickoff", "now"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if err := f.Apply("isFeatured", "maybe"); err == nil {
		t.Error("expected bool parse error")
	}
	stats := f.Fields(MatchTabStats)
	if len(stats) != 2*len(statDefs) {
		t.Errorf("stats tab has %d fields: %v", len(stats), stats)
	}
}

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Time{}, ""},
		{time.Date(2026, 11, 1, 18, 30, 0, 0, time.UTC), "2026-11-01T18:30"},
		{time.Date(2026, 11, 1, 18, 30, 45, 0, time.UTC), "2026-11-01T18:30:45Z"},
		{time.Date(2026, 11, 1, 18, 30, 45, 500_000_000, time.UTC), "2026-11-01T18:30:45.5Z"},
		{time.Date(2026, 11, 1, 20, 30, 0, 0, time.FixedZone("AST", 2*3600)), "2026-11-01T18:30"},
	}
	for _, tc := range cases {
		got := formatDateTime(tc.in)
		if got != tc.want {
			t.Errorf("formatDateTime(%v) = %q, want %q", tc.in, got, tc.want)
		}
		if tc.want == "" {
			continue
		}
		back, err := parseDate(got)
		if err != nil || !back.Equal(tc.in) {
			t.Errorf("parseDate(%q) = %v, %v; want %v", got, back, err, tc.in)
		}
	}
}

func TestLoadBuildKeepsSeconds(t *testing.T) {
	stamp := time.Date(2026, 11, 1, 18, 30, 45, 0, time.UTC)

	mf := validMatchForm(t)
	match, err := mf.Build("m9")
	if err != nil {
		t.Fatal(err)
	}
	match.MatchDate = stamp
	mf = NewMatchForm()
	mf.Load(match)
	if match, err = mf.Build("m9"); err != nil || !match.MatchDate.Equal(stamp) {
		t.Errorf("match date: got %v, %v; want %v", match.MatchDate, err, stamp)
	}

	nf := validNewsForm(t)
	article, err := nf.Build("n9")
	if err != nil {
		t.Fatal(err)
	}
	article.Status = model.NewsPublished
	article.PublishDate = model.TimePtr(stamp)
	nf = NewNewsForm()
	nf.Load(article)
	if article, err = nf.Build("n9"); err != nil || article.PublishDate == nil || !article.PublishDate.Equal(stamp) {
		t.Errorf("publish date: got %v, %v; want %v", article.PublishDate, err, stamp)
	}

	pf := validProductForm(t)
	product, err := pf.Build("s9")
	if err != nil {
		t.Fatal(err)
	}
	product.HasPromotion = true
	product.PromotionStartDate = model.TimePtr(stamp)
	product.PromotionEndDate = model.TimePtr(stamp.Add(36*time.Hour + 15*time.Second))
	pf = NewProductForm()
	pf.Load(product)
	got, err := pf.Build("s9")
	if err != nil || got.PromotionStartDate == nil || got.PromotionEndDate == nil {
		t.Fatalf("promotion dates dropped: %+v, %v", got, err)
	}
	if !got.PromotionStartDate.Equal(stamp) || !got.PromotionEndDate.Equal(*product.PromotionEndDate) {
		t.Errorf("promotion dates: got %v - %v", *got.PromotionStartDate, *got.PromotionEndDate)
	}
}
