package form

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/model"
)

const (
	MatchTabBasic   Tab = "basic"
	MatchTabDetails Tab = "details"
	MatchTabEvents  Tab = "events"
	MatchTabStats   Tab = "stats"
	MatchTabMedia   Tab = "media"
)

type StatInput struct {
	Home string
	Away string
}

type statDef struct {
	key   string
	label string
}

var statDefs = []statDef{
	{"possession", "Possession"},
	{"shots", "Shots"},
	{"shotsOnTarget", "Shots on target"},
	{"corners", "Corners"},
	{"fouls", "Fouls"},
	{"yellowCards", "Yellow cards"},
	{"redCards", "Red cards"},
	{"offsides", "Offsides"},
}

func statPairs(s *model.MatchStatistics) []*model.StatPair {
	return []*model.StatPair{
		&s.Possession, &s.Shots, &s.ShotsOnTarget, &s.Corners,
		&s.Fouls, &s.YellowCards, &s.RedCards, &s.Offsides,
	}
}

func homeField(key string) string { return "home" + strings.ToUpper(key[:1]) + key[1:] }
func awayField(key string) string { return "away" + strings.ToUpper(key[:1]) + key[1:] }

type MatchForm struct {
	HomeTeam      string
	AwayTeam      string
	MatchDate     string
	Venue         string
	Competition   string
	Season        string
	MatchDay      string
	Status        string
	HomeScore     string
	AwayScore     string
	Referee       string
	Attendance    string
	IsFeatured    bool
	Description   string
	HighlightsURL string
	CoverImage    string

	// Stats is indexed like statDefs.
	Stats   []StatInput
	Events  []model.MatchEvent
	Gallery []model.GalleryItem
}

func NewMatchForm() *MatchForm {
	f := &MatchForm{}
	f.Reset()
	return f
}

func (f *MatchForm) Reset() {
	*f = MatchForm{Status: string(model.MatchScheduled)}
	f.Stats = make([]StatInput, len(statDefs))
	for i := range f.Stats {
		f.Stats[i] = StatInput{Home: "0", Away: "0"}
	}
	f.Stats[0] = StatInput{Home: "50", Away: "50"}
}

func (f *MatchForm) Tabs() []Tab {
	return []Tab{MatchTabBasic, MatchTabDetails, MatchTabEvents, MatchTabStats, MatchTabMedia}
}

func (f *MatchForm) fields() map[string]field {
	fs := map[string]field{
		"homeTeam":      text(MatchTabBasic, &f.HomeTeam),
		"awayTeam":      text(MatchTabBasic, &f.AwayTeam),
		"matchDate":     text(MatchTabBasic, &f.MatchDate),
		"venue":         text(MatchTabBasic, &f.Venue),
		"competition":   text(MatchTabBasic, &f.Competition),
		"season":        text(MatchTabDetails, &f.Season),
		"matchDay":      text(MatchTabDetails, &f.MatchDay),
		"status":        text(MatchTabDetails, &f.Status),
		"homeScore":     text(MatchTabDetails, &f.HomeScore),
		"awayScore":     text(MatchTabDetails, &f.AwayScore),
		"referee":       text(MatchTabDetails, &f.Referee),
		"attendance":    text(MatchTabDetails, &f.Attendance),
		"isFeatured":    flag(MatchTabDetails, &f.IsFeatured),
		"description":   text(MatchTabDetails, &f.Description),
		"highlightsUrl": text(MatchTabMedia, &f.HighlightsURL),
		"coverImage":    text(MatchTabMedia, &f.CoverImage),
	}
	for i, def := range statDefs {
		in := &f.Stats[i]
		fs[homeField(def.key)] = text(MatchTabStats, &in.Home)
		fs[awayField(def.key)] = text(MatchTabStats, &in.Away)
	}
	fs["homePossession"] = possession(&f.Stats[0].Home, &f.Stats[0].Away)
	fs["awayPossession"] = possession(&f.Stats[0].Away, &f.Stats[0].Home)
	return fs
}

// possession keeps the two sides summing to 100. Clearing either side
// puts both back to an even split.
func possession(side, other *string) field {
	return field{
		tab: MatchTabStats,
		get: func() string { return *side },
		set: func(v string) error {
			if strings.TrimSpace(v) == "" {
				*side, *other = "50", "50"
				return nil
			}
			*side = v
			if n, err := parseInt(v); err == nil {
				*other = strconv.Itoa(100 - n)
			}
			return nil
		},
	}
}

func (f *MatchForm) Fields(tab Tab) []string {
	return fieldsOn(f.fields(), tab)
}

func (f *MatchForm) Apply(name, value string) error {
	return applyField(f.fields(), name, value)
}

func (f *MatchForm) Values() map[string]string {
	return fieldValues(f.fields())
}

// AddEvent appends an event and keeps the list ordered by minute.
func (f *MatchForm) AddEvent(e model.MatchEvent) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	f.Events = append(f.Events, e)
	f.sortEvents()
	return e.ID
}

func (f *MatchForm) UpdateEvent(e model.MatchEvent) error {
	i := slices.IndexFunc(f.Events, func(x model.MatchEvent) bool { return x.ID == e.ID })
	if i < 0 {
		return fmt.Errorf("%w: event %s", ErrNoSuchItem, e.ID)
	}
	f.Events[i] = e
	f.sortEvents()
	return nil
}

func (f *MatchForm) RemoveEvent(id string) error {
	i := slices.IndexFunc(f.Events, func(x model.MatchEvent) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: event %s", ErrNoSuchItem, id)
	}
	f.Events = slices.Delete(f.Events, i, i+1)
	return nil
}

func (f *MatchForm) sortEvents() {
	slices.SortStableFunc(f.Events, func(a, b model.MatchEvent) int { return a.Minute - b.Minute })
}

func (f *MatchForm) AddGalleryItem(uri, fileName, mimeType string) model.GalleryItem {
	item := newGalleryItem(uri, fileName, mimeType)
	f.Gallery = append(f.Gallery, item)
	return item
}

func (f *MatchForm) RemoveGalleryItem(id string) (err error) {
	f.Gallery, err = removeGalleryItem(f.Gallery, id)
	return err
}

func (f *MatchForm) Validate(now time.Time) Errors {
	errs := Errors{}
	errs.required("homeTeam", f.HomeTeam, "Home team is required")
	errs.required("awayTeam", f.AwayTeam, "Away team is required")
	errs.required("matchDate", f.MatchDate, "Match date is required")
	errs.required("venue", f.Venue, "Venue is required")
	errs.required("competition", f.Competition, "Competition is required")

	if home := strings.TrimSpace(f.HomeTeam); home != "" && home == strings.TrimSpace(f.AwayTeam) {
		errs.add("awayTeam", "Home and away teams must be different")
	}
	if strings.TrimSpace(f.MatchDate) != "" {
		if _, err := parseDate(f.MatchDate); err != nil {
			errs.add("matchDate", "Match date is not a valid date")
		}
	}

	status := model.MatchStatus(f.Status)
	if !status.Valid() {
		errs.add("status", "Status is not valid")
	}
	checkScore(errs, "homeScore", "Home", f.HomeScore, status)
	checkScore(errs, "awayScore", "Away", f.AwayScore, status)

	if strings.TrimSpace(f.Attendance) != "" && !nonNegativeInt(f.Attendance) {
		errs.add("attendance", "Attendance must be a whole number")
	}
	if strings.TrimSpace(f.MatchDay) != "" && !nonNegativeInt(f.MatchDay) {
		errs.add("matchDay", "Match day must be a whole number")
	}

	for i, def := range statDefs {
		in := f.Stats[i]
		checkStat(errs, homeField(def.key), def, in.Home)
		checkStat(errs, awayField(def.key), def, in.Away)
	}

	for i, e := range f.Events {
		key := fmt.Sprintf("events[%d]", i)
		if e.Minute < model.MinEventMinute || e.Minute > model.MaxEventMinute {
			errs.add(key+".minute", fmt.Sprintf("Minute must be between %d and %d", model.MinEventMinute, model.MaxEventMinute))
		}
		if !e.Type.Valid() {
			errs.add(key+".type", "Event type is not valid")
		}
		if !e.Team.Valid() {
			errs.add(key+".team", "Event team must be home or away")
		}
		if strings.TrimSpace(e.Player) == "" {
			errs.add(key+".player", "Player is required")
		}
	}
	checkGallery(errs, f.Gallery)
	return errs
}

func checkScore(errs Errors, key, side, value string, status model.MatchStatus) {
	if strings.TrimSpace(value) == "" {
		if status.HasScore() {
			errs.add(key, side+" score is required for completed or live matches")
		}
		return
	}
	if !nonNegativeInt(value) {
		errs.add(key, side+" score must be a whole number")
	}
}

// checkStat allows an empty stat, which counts as zero.
func checkStat(errs Errors, key string, def statDef, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	n, err := parseInt(value)
	switch {
	case err != nil:
		errs.add(key, def.label+" must be a whole number")
	case def.key == "possession" && (n < 0 || n > 100):
		errs.add(key, "Possession must be between 0 and 100")
	case n < 0:
		errs.add(key, def.label+" cannot be negative")
	}
}

// Load fills the form from a stored match.
func (f *MatchForm) Load(m model.Match) {
	f.Reset()
	f.HomeTeam = m.HomeTeamID
	f.AwayTeam = m.AwayTeamID
	f.MatchDate = formatDateTime(m.MatchDate)
	f.Venue = m.Venue
	f.Competition = m.Competition
	f.Season = m.Season
	f.MatchDay = intString(m.MatchDay)
	if m.Status != "" {
		f.Status = string(m.Status)
	}
	f.HomeScore = intPtrString(m.HomeScore)
	f.AwayScore = intPtrString(m.AwayScore)
	f.Referee = m.Referee
	f.Attendance = intString(m.Attendance)
	f.IsFeatured = m.IsFeatured
	f.Description = m.Description
	f.HighlightsURL = m.HighlightsURL
	f.CoverImage = m.CoverImage

	stats := m.Statistics
	if stats.Possession.Home+stats.Possession.Away == 0 {
		stats.Possession = model.DefaultStatistics().Possession
	}
	for i, p := range statPairs(&stats) {
		f.Stats[i] = StatInput{Home: strconv.Itoa(p.Home), Away: strconv.Itoa(p.Away)}
	}
	f.Events = slices.Clone(m.Events)
	f.sortEvents()
	f.Gallery = slices.Clone(m.Gallery)
}

func (f *MatchForm) ResolveMedia(ctx context.Context, r assets.Resolver) error {
	if err := resolveImage(ctx, r, &f.CoverImage); err != nil {
		return err
	}
	return resolveGallery(ctx, r, f.Gallery)
}

// Build converts validated form state into a match.
func (f *MatchForm) Build(id string) (model.Match, error) {
	date, err := parseDate(f.MatchDate)
	if err != nil {
		return model.Match{}, fmt.Errorf("matchDate: %w", err)
	}
	m := model.Match{
		ID:            id,
		HomeTeamID:    strings.TrimSpace(f.HomeTeam),
		AwayTeamID:    strings.TrimSpace(f.AwayTeam),
		MatchDate:     date,
		Venue:         strings.TrimSpace(f.Venue),
		Status:        model.MatchStatus(f.Status),
		Referee:       strings.TrimSpace(f.Referee),
		Season:        strings.TrimSpace(f.Season),
		Competition:   strings.TrimSpace(f.Competition),
		IsFeatured:    f.IsFeatured,
		Description:   f.Description,
		HighlightsURL: strings.TrimSpace(f.HighlightsURL),
		CoverImage:    f.CoverImage,
		Events:        slices.Clone(f.Events),
		Gallery:       slices.Clone(f.Gallery),
	}
	if m.HomeScore, err = optionalInt(f.HomeScore); err != nil {
		return model.Match{}, fmt.Errorf("homeScore: %w", err)
	}
	if m.AwayScore, err = optionalInt(f.AwayScore); err != nil {
		return model.Match{}, fmt.Errorf("awayScore: %w", err)
	}
	if m.Attendance, err = intOrZero(f.Attendance); err != nil {
		return model.Match{}, fmt.Errorf("attendance: %w", err)
	}
	if m.MatchDay, err = intOrZero(f.MatchDay); err != nil {
		return model.Match{}, fmt.Errorf("matchDay: %w", err)
	}
	for i, p := range statPairs(&m.Statistics) {
		in := f.Stats[i]
		if p.Home, err = intOrZero(in.Home); err != nil {
			return model.Match{}, fmt.Errorf("%s: %w", homeField(statDefs[i].key), err)
		}
		if p.Away, err = intOrZero(in.Away); err != nil {
			return model.Match{}, fmt.Errorf("%s: %w", awayField(statDefs[i].key), err)
		}
	}
	return m, nil
}
