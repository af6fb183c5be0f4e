package store

import (
	"clubhub-app/internal/codec"
	"clubhub-app/internal/model"
)

// Persisted documents keep nested sub-records in their transport encoding.
// The string fields shadow the typed ones of the embedded entity when the
// record is marshalled.

type matchRecord struct {
	model.Match
	Statistics string `json:"statistics"`
	Events     string `json:"events"`
	Gallery    string `json:"gallery"`
}

type newsRecord struct {
	model.NewsArticle
	RelatedArticles string `json:"related_articles"`
	Gallery         string `json:"gallery"`
}

type productRecord struct {
	model.ShopProduct
	Variants       string `json:"variants"`
	VariantOptions string `json:"variant_options"`
	Gallery        string `json:"gallery"`
}

// decodeIssue names a nested field that fell back to its empty default.
type decodeIssue struct {
	Field string
	Err   error
}

func toMatchRecord(m model.Match) matchRecord {
	return matchRecord{
		Match:      m,
		Statistics: codec.Encode(m.Statistics),
		Events:     codec.Encode(m.Events),
		Gallery:    codec.Encode(m.Gallery),
	}
}

func fromMatchRecord(r matchRecord) (model.Match, []decodeIssue) {
	var issues []decodeIssue
	m := r.Match
	var err error
	if m.Statistics, err = codec.Decode(r.Statistics, model.DefaultStatistics()); err != nil {
		issues = append(issues, decodeIssue{Field: "statistics", Err: err})
	}
	if m.Events, err = codec.Decode(r.Events, []model.MatchEvent{}); err != nil {
		issues = append(issues, decodeIssue{Field: "events", Err: err})
	}
	if m.Gallery, err = codec.Decode(r.Gallery, []model.GalleryItem{}); err != nil {
		issues = append(issues, decodeIssue{Field: "gallery", Err: err})
	}
	return m, issues
}

func toNewsRecord(n model.NewsArticle) newsRecord {
	return newsRecord{
		NewsArticle:     n,
		RelatedArticles: codec.Encode(n.RelatedArticles),
		Gallery:         codec.Encode(n.Gallery),
	}
}

func fromNewsRecord(r newsRecord) (model.NewsArticle, []decodeIssue) {
	var issues []decodeIssue
	n := r.NewsArticle
	var err error
	if n.RelatedArticles, err = codec.Decode(r.RelatedArticles, []string{}); err != nil {
		issues = append(issues, decodeIssue{Field: "related_articles", Err: err})
	}
	if n.Gallery, err = codec.Decode(r.Gallery, []model.GalleryItem{}); err != nil {
		issues = append(issues, decodeIssue{Field: "gallery", Err: err})
	}
	return n, issues
}

func toProductRecord(p model.ShopProduct) productRecord {
	return productRecord{
		ShopProduct:    p,
		Variants:       codec.Encode(p.Variants),
		VariantOptions: codec.Encode(p.VariantOptions),
		Gallery:        codec.Encode(p.Gallery),
	}
}

func fromProductRecord(r productRecord) (model.ShopProduct, []decodeIssue) {
	var issues []decodeIssue
	p := r.ShopProduct
	var err error
	if p.Variants, err = codec.Decode(r.Variants, []model.Variant{}); err != nil {
		issues = append(issues, decodeIssue{Field: "variants", Err: err})
	}
	if p.VariantOptions, err = codec.Decode(r.VariantOptions, model.VariantOptions{}); err != nil {
		issues = append(issues, decodeIssue{Field: "variant_options", Err: err})
	}
	if p.Gallery, err = codec.Decode(r.Gallery, []model.GalleryItem{}); err != nil {
		issues = append(issues, decodeIssue{Field: "gallery", Err: err})
	}
	return p, issues
}
