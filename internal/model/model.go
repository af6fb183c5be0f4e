package model

import (
	"strings"
	"time"
)

type MatchStatus string
type NewsStatus string
type ProductStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
	MatchPostponed MatchStatus = "postponed"
	MatchCancelled MatchStatus = "cancelled"

	NewsPublished NewsStatus = "published"
	NewsDraft     NewsStatus = "draft"
	NewsScheduled NewsStatus = "scheduled"
	NewsArchived  NewsStatus = "archived"

	ProductActive     ProductStatus = "active"
	ProductDraft      ProductStatus = "draft"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchLive, MatchCompleted, MatchPostponed, MatchCancelled:
		return true
	}
	return false
}

// HasScore reports whether a match in this status must carry a score.
func (s MatchStatus) HasScore() bool {
	return s == MatchLive || s == MatchCompleted
}

func (s NewsStatus) Valid() bool {
	switch s {
	case NewsPublished, NewsDraft, NewsScheduled, NewsArchived:
		return true
	}
	return false
}

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductDraft, ProductOutOfStock:
		return true
	}
	return false
}

type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	City        string `json:"city"`
	Coach       string `json:"coach"`
	HomeStadium string `json:"home_stadium"`
	FoundedYear int    `json:"founded_year"`
}

type Player struct {
	ID            string `json:"id"`
	TeamID        string `json:"team_id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	JerseyNumber  int    `json:"jersey_number"`
	Age           int    `json:"age"`
	Nationality   string `json:"nationality"`
	Height        int    `json:"height"`
	Weight        int    `json:"weight"`
	MatchesPlayed int    `json:"matches_played"`
	GoalsScored   int    `json:"goals_scored"`
	Assists       int    `json:"assists"`
	Bio           string `json:"bio"`
	ImageURL      string `json:"image_url"`
}

type Match struct {
	ID            string          `json:"id"`
	HomeTeamID    string          `json:"home_team_id"`
	AwayTeamID    string          `json:"away_team_id"`
	MatchDate     time.Time       `json:"match_date"`
	Venue         string          `json:"venue"`
	Status        MatchStatus     `json:"status"`
	HomeScore     *int            `json:"home_score"`
	AwayScore     *int            `json:"away_score"`
	Referee       string          `json:"referee"`
	Attendance    int             `json:"attendance"`
	Season        string          `json:"season"`
	Competition   string          `json:"competition"`
	MatchDay      int             `json:"match_day"`
	IsFeatured    bool            `json:"is_featured"`
	Description   string          `json:"description"`
	HighlightsURL string          `json:"highlights_url"`
	Statistics    MatchStatistics `json:"statistics"`
	Events        []MatchEvent    `json:"events"`
	CoverImage    string          `json:"cover_image"`
	Gallery       []GalleryItem   `json:"gallery"`
}

// Involves reports whether the team plays in the match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

type NewsArticle struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Content           string        `json:"content"`
	Author            string        `json:"author"`
	Excerpt           string        `json:"excerpt"`
	Category          string        `json:"category"`
	Tags              string        `json:"tags"`
	Status            NewsStatus    `json:"status"`
	PublishDate       *time.Time    `json:"publish_date"`
	IsFeatured        bool          `json:"is_featured"`
	IsBreakingNews    bool          `json:"is_breaking_news"`
	SEOTitle          string        `json:"seo_title"`
	SEODescription    string        `json:"seo_description"`
	SEOKeywords       string        `json:"seo_keywords"`
	SocialTitle       string        `json:"social_title"`
	SocialDescription string        `json:"social_description"`
	ImageURL          string        `json:"image_url"`
	RelatedArticles   []string      `json:"related_articles"`
	Gallery           []GalleryItem `json:"gallery"`
}

// TagList splits the comma-joined tags.
func (n NewsArticle) TagList() []string {
	return SplitTags(n.Tags)
}

type ShopCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShopProduct struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Price              float64        `json:"price"`
	DiscountPrice      *float64       `json:"discount_price"`
	CategoryID         string         `json:"category_id"`
	StockQuantity      int            `json:"stock_quantity"`
	Status             ProductStatus  `json:"status"`
	IsFeatured         bool           `json:"is_featured"`
	Weight             *float64       `json:"weight"`
	SKU                string         `json:"sku"`
	Barcode            string         `json:"barcode"`
	Tags               string         `json:"tags"`
	MetaTitle          string         `json:"meta_title"`
	MetaDescription    string         `json:"meta_description"`
	ImageURL           string         `json:"image_url"`
	HasPromotion       bool           `json:"has_promotion"`
	PromotionStartDate *time.Time     `json:"promotion_start_date"`
	PromotionEndDate   *time.Time     `json:"promotion_end_date"`
	HasVariants        bool           `json:"has_variants"`
	Variants           []Variant      `json:"variants"`
	VariantOptions     VariantOptions `json:"variant_options"`
	Gallery            []GalleryItem  `json:"gallery"`
}

// EffectivePrice is the discount price when one applies.
func (p ShopProduct) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}

// Result is what a data service write reports back.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func JoinTags(tags []string) string {
	return strings.Join(SplitTags(strings.Join(tags, ",")), ", ")
}
