package form

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/model"
)

const (
	NewsTabBasic      Tab = "basic"
	NewsTabContent    Tab = "content"
	NewsTabMedia      Tab = "media"
	NewsTabPublishing Tab = "publishing"
	NewsTabSEO        Tab = "seo"

	MaxSEOTitle       = 60
	MaxSEODescription = 160
)

type NewsForm struct {
	// id is the article being edited, used to reject self references.
	id string

	Title             string
	Excerpt           string
	Author            string
	Category          string
	Tags              string
	Content           string
	ImageURL          string
	Status            string
	PublishDate       string
	IsFeatured        bool
	IsBreakingNews    bool
	SEOTitle          string
	SEODescription    string
	SEOKeywords       string
	SocialTitle       string
	SocialDescription string

	RelatedArticles []string
	Gallery         []model.GalleryItem
}

func NewNewsForm() *NewsForm {
	f := &NewsForm{}
	f.Reset()
	return f
}

func (f *NewsForm) Reset() {
	*f = NewsForm{Status: string(model.NewsDraft)}
}

func (f *NewsForm) Tabs() []Tab {
	return []Tab{NewsTabBasic, NewsTabContent, NewsTabMedia, NewsTabPublishing, NewsTabSEO}
}

func (f *NewsForm) fields() map[string]field {
	return map[string]field{
		"title":             text(NewsTabBasic, &f.Title),
		"excerpt":           text(NewsTabBasic, &f.Excerpt),
		"author":            text(NewsTabBasic, &f.Author),
		"category":          text(NewsTabBasic, &f.Category),
		"tags":              text(NewsTabBasic, &f.Tags),
		"content":           text(NewsTabContent, &f.Content),
		"imageUrl":          text(NewsTabMedia, &f.ImageURL),
		"status":            text(NewsTabPublishing, &f.Status),
		"publishDate":       text(NewsTabPublishing, &f.PublishDate),
		"isFeatured":        flag(NewsTabPublishing, &f.IsFeatured),
		"isBreakingNews":    flag(NewsTabPublishing, &f.IsBreakingNews),
		"seoTitle":          text(NewsTabSEO, &f.SEOTitle),
		"seoDescription":    text(NewsTabSEO, &f.SEODescription),
		"seoKeywords":       text(NewsTabSEO, &f.SEOKeywords),
		"socialTitle":       text(NewsTabSEO, &f.SocialTitle),
		"socialDescription": text(NewsTabSEO, &f.SocialDescription),
	}
}

func (f *NewsForm) Fields(tab Tab) []string {
	return fieldsOn(f.fields(), tab)
}

func (f *NewsForm) Apply(name, value string) error {
	return applyField(f.fields(), name, value)
}

func (f *NewsForm) Values() map[string]string {
	return fieldValues(f.fields())
}

// AddRelated links another article. Blank and repeated ids are ignored.
func (f *NewsForm) AddRelated(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || slices.Contains(f.RelatedArticles, id) {
		return false
	}
	f.RelatedArticles = append(f.RelatedArticles, id)
	return true
}

func (f *NewsForm) RemoveRelated(id string) error {
	i := slices.Index(f.RelatedArticles, id)
	if i < 0 {
		return fmt.Errorf("%w: related article %s", ErrNoSuchItem, id)
	}
	f.RelatedArticles = slices.Delete(f.RelatedArticles, i, i+1)
	return nil
}

func (f *NewsForm) AddGalleryItem(uri, fileName, mimeType string) model.GalleryItem {
	item := newGalleryItem(uri, fileName, mimeType)
	f.Gallery = append(f.Gallery, item)
	return item
}

func (f *NewsForm) RemoveGalleryItem(id string) (err error) {
	f.Gallery, err = removeGalleryItem(f.Gallery, id)
	return err
}

func (f *NewsForm) Validate(now time.Time) Errors {
	errs := Errors{}
	errs.required("title", f.Title, "Title is required")
	errs.required("content", f.Content, "Content is required")
	errs.required("author", f.Author, "Author is required")
	errs.required("category", f.Category, "Category is required")

	status := model.NewsStatus(f.Status)
	if !status.Valid() {
		errs.add("status", "Status is not valid")
	}
	if strings.TrimSpace(f.PublishDate) != "" {
		date, err := parseDate(f.PublishDate)
		switch {
		case err != nil:
			errs.add("publishDate", "Publish date is not a valid date")
		case status == model.NewsScheduled && !date.After(now):
			errs.add("publishDate", "Publish date must be in the future for scheduled articles")
		}
	} else if status == model.NewsScheduled {
		errs.add("publishDate", "Publish date is required for scheduled articles")
	}

	if utf8.RuneCountInString(f.SEOTitle) > MaxSEOTitle {
		errs.add("seoTitle", fmt.Sprintf("SEO title must be at most %d characters", MaxSEOTitle))
	}
	if utf8.RuneCountInString(f.SEODescription) > MaxSEODescription {
		errs.add("seoDescription", fmt.Sprintf("SEO description must be at most %d characters", MaxSEODescription))
	}
	if f.id != "" && slices.Contains(f.RelatedArticles, f.id) {
		errs.add("relatedArticles", "An article cannot be related to itself")
	}
	checkGallery(errs, f.Gallery)
	return errs
}

func (f *NewsForm) Load(n model.NewsArticle) {
	f.Reset()
	f.id = n.ID
	f.Title = n.Title
	f.Excerpt = n.Excerpt
	f.Author = n.Author
	f.Category = n.Category
	f.Tags = n.Tags
	f.Content = n.Content
	f.ImageURL = n.ImageURL
	if n.Status != "" {
		f.Status = string(n.Status)
	}
	f.PublishDate = formatDatePtr(n.PublishDate)
	f.IsFeatured = n.IsFeatured
	f.IsBreakingNews = n.IsBreakingNews
	f.SEOTitle = n.SEOTitle
	f.SEODescription = n.SEODescription
	f.SEOKeywords = n.SEOKeywords
	f.SocialTitle = n.SocialTitle
	f.SocialDescription = n.SocialDescription
	f.RelatedArticles = slices.Clone(n.RelatedArticles)
	f.Gallery = slices.Clone(n.Gallery)
}

func (f *NewsForm) ResolveMedia(ctx context.Context, r assets.Resolver) error {
	if err := resolveImage(ctx, r, &f.ImageURL); err != nil {
		return err
	}
	return resolveGallery(ctx, r, f.Gallery)
}

func (f *NewsForm) Build(id string) (model.NewsArticle, error) {
	date, err := optionalDate(f.PublishDate)
	if err != nil {
		return model.NewsArticle{}, fmt.Errorf("publishDate: %w", err)
	}
	return model.NewsArticle{
		ID:                id,
		Title:             strings.TrimSpace(f.Title),
		Content:           f.Content,
		Author:            strings.TrimSpace(f.Author),
		Excerpt:           strings.TrimSpace(f.Excerpt),
		Category:          strings.TrimSpace(f.Category),
		Tags:              model.JoinTags([]string{f.Tags}),
		Status:            model.NewsStatus(f.Status),
		PublishDate:       date,
		IsFeatured:        f.IsFeatured,
		IsBreakingNews:    f.IsBreakingNews,
		SEOTitle:          strings.TrimSpace(f.SEOTitle),
		SEODescription:    strings.TrimSpace(f.SEODescription),
		SEOKeywords:       strings.TrimSpace(f.SEOKeywords),
		SocialTitle:       strings.TrimSpace(f.SocialTitle),
		SocialDescription: strings.TrimSpace(f.SocialDescription),
		ImageURL:          f.ImageURL,
		RelatedArticles:   slices.Clone(f.RelatedArticles),
		Gallery:           slices.Clone(f.Gallery),
	}, nil
}
