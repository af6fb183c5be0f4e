package model

import (
	"slices"
	"time"
)

// Clone returns a copy that shares no slices or pointers with m.
func (m Match) Clone() Match {
	m.HomeScore = cloneInt(m.HomeScore)
	m.AwayScore = cloneInt(m.AwayScore)
	m.Events = slices.Clone(m.Events)
	m.Gallery = slices.Clone(m.Gallery)
	return m
}

func (n NewsArticle) Clone() NewsArticle {
	n.PublishDate = cloneTime(n.PublishDate)
	n.RelatedArticles = slices.Clone(n.RelatedArticles)
	n.Gallery = slices.Clone(n.Gallery)
	return n
}

func (p ShopProduct) Clone() ShopProduct {
	p.DiscountPrice = cloneFloat(p.DiscountPrice)
	p.Weight = cloneFloat(p.Weight)
	p.PromotionStartDate = cloneTime(p.PromotionStartDate)
	p.PromotionEndDate = cloneTime(p.PromotionEndDate)
	p.Variants = slices.Clone(p.Variants)
	p.VariantOptions = VariantOptions{
		Size:  slices.Clone(p.VariantOptions.Size),
		Color: slices.Clone(p.VariantOptions.Color),
	}
	p.Gallery = slices.Clone(p.Gallery)
	return p
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func IntPtr(v int) *int              { return &v }
func FloatPtr(v float64) *float64    { return &v }
func TimePtr(v time.Time) *time.Time { return &v }
