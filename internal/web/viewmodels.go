package web

import (
	"fmt"
	"strconv"
	"time"

	"clubhub-app/internal/model"
)

const (
	fallbackEN = "not specified"
	fallbackAR = "غير محدد"
)

// display renders values for the detail screens, substituting the
// fallback text for anything absent.
type display struct {
	fallback string
	teams    map[string]model.Team
	players  map[string]model.Player
}

func newDisplay(locale string, teams []model.Team, players []model.Player) display {
	d := display{fallback: fallbackEN, teams: map[string]model.Team{}, players: map[string]model.Player{}}
	if locale == "ar" {
		d.fallback = fallbackAR
	}
	for _, t := range teams {
		d.teams[t.ID] = t
	}
	for _, p := range players {
		d.players[p.ID] = p
	}
	return d
}

func (d display) text(v string) string {
	if v == "" {
		return d.fallback
	}
	return v
}

func (d display) number(n int) string {
	if n == 0 {
		return d.fallback
	}
	return strconv.Itoa(n)
}

func (d display) unit(n int, unit string) string {
	if n == 0 {
		return d.fallback
	}
	return fmt.Sprintf("%d %s", n, unit)
}

func (d display) date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return d.fallback
	}
	return t.Format("02 Jan 2006 15:04")
}

func (d display) decimal(p *float64) string {
	if p == nil {
		return d.fallback
	}
	return fmt.Sprintf("%.2f", *p)
}

func (d display) teamName(id string) string {
	if t, ok := d.teams[id]; ok && t.Name != "" {
		return t.Name
	}
	return d.fallback
}

func (d display) playerName(id string) string {
	if p, ok := d.players[id]; ok && p.Name != "" {
		return p.Name
	}
	return d.text(id)
}

type TeamView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	City        string          `json:"city"`
	Coach       string          `json:"coach"`
	HomeStadium string          `json:"home_stadium"`
	Founded     string          `json:"founded"`
	Logo        string          `json:"logo"`
	Players     []PlayerSummary `json:"players"`
}

type PlayerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   string `json:"number"`
}

type PlayerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Team          string `json:"team"`
	Position      string `json:"position"`
	JerseyNumber  string `json:"jersey_number"`
	Age           string `json:"age"`
	Nationality   string `json:"nationality"`
	Height        string `json:"height"`
	Weight        string `json:"weight"`
	MatchesPlayed int    `json:"matches_played"`
	GoalsScored   int    `json:"goals_scored"`
	Assists       int    `json:"assists"`
	Bio           string `json:"bio"`
	Image         string `json:"image"`
}

type MatchView struct {
	ID            string              `json:"id"`
	HomeTeam      string              `json:"home_team"`
	AwayTeam      string              `json:"away_team"`
	Date          string              `json:"date"`
	Venue         string              `json:"venue"`
	Status        string              `json:"status"`
	ScoreLine     string              `json:"score_line"`
	Referee       string              `json:"referee"`
	Attendance    string              `json:"attendance"`
	Season        string              `json:"season"`
	Competition   string              `json:"competition"`
	MatchDay      string              `json:"match_day"`
	Description   string              `json:"description"`
	HighlightsURL string              `json:"highlights_url"`
	CoverImage    string              `json:"cover_image"`
	Statistics    []StatLine          `json:"statistics"`
	Events        []EventLine         `json:"events"`
	Gallery       []model.GalleryItem `json:"gallery"`
}

type StatLine struct {
	Label string `json:"label"`
	Home  int    `json:"home"`
	Away  int    `json:"away"`
}

type EventLine struct {
	Minute      string `json:"minute"`
	Type        string `json:"type"`
	Team        string `json:"team"`
	Player      string `json:"player"`
	Description string `json:"description"`
}

type NewsView struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Author      string              `json:"author"`
	Category    string              `json:"category"`
	Status      string              `json:"status"`
	PublishDate string              `json:"publish_date"`
	Excerpt     string              `json:"excerpt"`
	Content     string              `json:"content"`
	Image       string              `json:"image"`
	Tags        []string            `json:"tags"`
	Breaking    bool                `json:"breaking"`
	Related     []RelatedLink       `json:"related"`
	Gallery     []model.GalleryItem `json:"gallery"`
}

type RelatedLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ProductView struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	Price          string              `json:"price"`
	DiscountPrice  string              `json:"discount_price"`
	EffectivePrice string              `json:"effective_price"`
	Stock          int                 `json:"stock"`
	Status         string              `json:"status"`
	Weight         string              `json:"weight"`
	SKU            string              `json:"sku"`
	Barcode        string              `json:"barcode"`
	Promotion      string              `json:"promotion"`
	Image          string              `json:"image"`
	Variants       []model.Variant     `json:"variants"`
	Gallery        []model.GalleryItem `json:"gallery"`
}

var statLabels = []string{"Possession", "Shots", "Shots on target", "Corners", "Fouls", "Yellow cards", "Red cards", "Offsides"}

func (d display) team(t model.Team, players []model.Player) TeamView {
	v := TeamView{
		ID:          t.ID,
		Name:        d.text(t.Name),
		City:        d.text(t.City),
		Coach:       d.text(t.Coach),
		HomeStadium: d.text(t.HomeStadium),
		Founded:     d.number(t.FoundedYear),
		Logo:        d.text(t.LogoURL),
		Players:     []PlayerSummary{},
	}
	for _, p := range players {
		if p.TeamID != t.ID {
			continue
		}
		v.Players = append(v.Players, PlayerSummary{
			ID:       p.ID,
			Name:     d.text(p.Name),
			Position: d.text(p.Position),
			Number:   d.number(p.JerseyNumber),
		})
	}
	return v
}

func (d display) player(p model.Player) PlayerView {
	return PlayerView{
		ID:            p.ID,
		Name:          d.text(p.Name),
		Team:          d.teamName(p.TeamID),
		Position:      d.text(p.Position),
		JerseyNumber:  d.number(p.JerseyNumber),
		Age:           d.number(p.Age),
		Nationality:   d.text(p.Nationality),
		Height:        d.unit(p.Height, "cm"),
		Weight:        d.unit(p.Weight, "kg"),
		MatchesPlayed: p.MatchesPlayed,
		GoalsScored:   p.GoalsScored,
		Assists:       p.Assists,
		Bio:           d.text(p.Bio),
		Image:         d.text(p.ImageURL),
	}
}

func (d display) match(m model.Match) MatchView {
	v := MatchView{
		ID:            m.ID,
		HomeTeam:      d.teamName(m.HomeTeamID),
		AwayTeam:      d.teamName(m.AwayTeamID),
		Date:          d.date(&m.MatchDate),
		Venue:         d.text(m.Venue),
		Status:        d.text(string(m.Status)),
		ScoreLine:     scoreLine(m, d.fallback),
		Referee:       d.text(m.Referee),
		Attendance:    d.number(m.Attendance),
		Season:        d.text(m.Season),
		Competition:   d.text(m.Competition),
		MatchDay:      d.number(m.MatchDay),
		Description:   d.text(m.Description),
		HighlightsURL: d.text(m.HighlightsURL),
		CoverImage:    d.text(m.CoverImage),
		Events:        []EventLine{},
		Gallery:       m.Gallery,
	}
	stats := m.Statistics
	pairs := []model.StatPair{
		stats.Possession, stats.Shots, stats.ShotsOnTarget, stats.Corners,
		stats.Fouls, stats.YellowCards, stats.RedCards, stats.Offsides,
	}
	for i, p := range pairs {
		v.Statistics = append(v.Statistics, StatLine{Label: statLabels[i], Home: p.Home, Away: p.Away})
	}
	for _, e := range m.Events {
		team := m.HomeTeamID
		if e.Team == model.SideAway {
			team = m.AwayTeamID
		}
		v.Events = append(v.Events, EventLine{
			Minute:      fmt.Sprintf("%d'", e.Minute),
			Type:        d.text(string(e.Type)),
			Team:        d.teamName(team),
			Player:      d.playerName(e.Player),
			Description: d.text(e.Description),
		})
	}
	if v.Gallery == nil {
		v.Gallery = []model.GalleryItem{}
	}
	return v
}

func scoreLine(m model.Match, fallback string) string {
	if m.HomeScore == nil || m.AwayScore == nil {
		return fallback
	}
	return fmt.Sprintf("%d - %d", *m.HomeScore, *m.AwayScore)
}

func (d display) news(n model.NewsArticle, all []model.NewsArticle) NewsView {
	v := NewsView{
		ID:          n.ID,
		Title:       d.text(n.Title),
		Author:      d.text(n.Author),
		Category:    d.text(n.Category),
		Status:      d.text(string(n.Status)),
		PublishDate: d.date(n.PublishDate),
		Excerpt:     d.text(n.Excerpt),
		Content:     d.text(n.Content),
		Image:       d.text(n.ImageURL),
		Tags:        n.TagList(),
		Breaking:    n.IsBreakingNews,
		Related:     []RelatedLink{},
		Gallery:     n.Gallery,
	}
	titles := make(map[string]string, len(all))
	for _, a := range all {
		titles[a.ID] = a.Title
	}
	for _, id := range n.RelatedArticles {
		v.Related = append(v.Related, RelatedLink{ID: id, Title: d.text(titles[id])})
	}
	if v.Gallery == nil {
		v.Gallery = []model.GalleryItem{}
	}
	return v
}

func (d display) product(p model.ShopProduct, categories []model.ShopCategory) ProductView {
	category := ""
	for _, c := range categories {
		if c.ID == p.CategoryID {
			category = c.Name
		}
	}
	effective := p.EffectivePrice()
	v := ProductView{
		ID:             p.ID,
		Name:           d.text(p.Name),
		Description:    d.text(p.Description),
		Category:       d.text(category),
		Price:          d.decimal(&p.Price),
		DiscountPrice:  d.decimal(p.DiscountPrice),
		EffectivePrice: d.decimal(&effective),
		Stock:          p.StockQuantity,
		Status:         d.text(string(p.Status)),
		Weight:         d.decimal(p.Weight),
		SKU:            d.text(p.SKU),
		Barcode:        d.text(p.Barcode),
		Promotion:      d.fallback,
		Image:          d.text(p.ImageURL),
		Variants:       p.Variants,
		Gallery:        p.Gallery,
	}
	if p.HasPromotion {
		v.Promotion = d.date(p.PromotionStartDate) + " → " + d.date(p.PromotionEndDate)
	}
	if v.Variants == nil {
		v.Variants = []model.Variant{}
	}
	if v.Gallery == nil {
		v.Gallery = []model.GalleryItem{}
	}
	return v
}
