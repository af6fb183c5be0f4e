package form

import (
	"context"
	"fmt"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/model"
)

func newGalleryItem(uri, fileName, mimeType string) model.GalleryItem {
	uri = strings.TrimSpace(uri)
	if fileName == "" {
		fileName = path.Base(uri)
	}
	if mimeType == "" {
		mimeType = mime.TypeByExtension(strings.ToLower(path.Ext(fileName)))
	}
	return model.GalleryItem{
		ID:       uuid.NewString(),
		URI:      uri,
		FileName: fileName,
		MimeType: mimeType,
		Uploaded: assets.IsRemote(uri),
	}
}

func removeGalleryItem(items []model.GalleryItem, id string) ([]model.GalleryItem, error) {
	i := slices.IndexFunc(items, func(g model.GalleryItem) bool { return g.ID == id })
	if i < 0 {
		return items, fmt.Errorf("%w: gallery item %s", ErrNoSuchItem, id)
	}
	return slices.Delete(items, i, i+1), nil
}

// checkGallery requires a source for every gallery item.
func checkGallery(errs Errors, items []model.GalleryItem) {
	for i, g := range items {
		if strings.TrimSpace(g.URI) == "" {
			errs.add(fmt.Sprintf("gallery[%d].uri", i), "Image is required")
		}
	}
}

// resolveImage replaces a local image URI with its resolved URL.
func resolveImage(ctx context.Context, r assets.Resolver, uri *string) error {
	if strings.TrimSpace(*uri) == "" || assets.IsRemote(*uri) {
		return nil
	}
	url, err := r.Resolve(ctx, *uri)
	if err != nil {
		return fmt.Errorf("resolve image: %w", err)
	}
	*uri = url
	return nil
}

func resolveGallery(ctx context.Context, r assets.Resolver, items []model.GalleryItem) error {
	for i := range items {
		if items[i].Uploaded {
			continue
		}
		url, err := r.Resolve(ctx, items[i].URI)
		if err != nil {
			return fmt.Errorf("resolve gallery item %s: %w", items[i].ID, err)
		}
		items[i].URI = url
		items[i].Uploaded = true
	}
	return nil
}
