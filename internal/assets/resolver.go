// Package assets turns images picked on a device into URLs that can be
// stored on an entity. There is no real upload pipeline; UploadStub only
// derives the URL an upload would have produced.
package assets

import (
	"context"
	"encoding/hex"
	"errors"
	"path"
	"strings"

	"golang.org/x/crypto/blake2b"
)

var ErrEmptyURI = errors.New("empty asset uri")

type Resolver interface {
	Resolve(ctx context.Context, localURI string) (string, error)
}

// Passthrough stores the device URI as is.
type Passthrough struct{}

func (Passthrough) Resolve(ctx context.Context, localURI string) (string, error) {
	uri := strings.TrimSpace(localURI)
	if uri == "" {
		return "", ErrEmptyURI
	}
	return uri, nil
}

// UploadStub maps a local URI to a content-addressed URL under BaseURL.
type UploadStub struct {
	BaseURL string
}

func (u UploadStub) Resolve(ctx context.Context, localURI string) (string, error) {
	uri := strings.TrimSpace(localURI)
	if uri == "" {
		return "", ErrEmptyURI
	}
	if IsRemote(uri) {
		return uri, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sum := blake2b.Sum256([]byte(uri))
	ext := strings.ToLower(path.Ext(uri))
	return strings.TrimRight(u.BaseURL, "/") + "/" + hex.EncodeToString(sum[:]) + ext, nil
}

func IsRemote(uri string) bool {
	lower := strings.ToLower(uri)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
