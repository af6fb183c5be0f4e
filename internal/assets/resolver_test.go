package assets

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPassthrough(t *testing.T) {
	got, err := Passthrough{}.Resolve(context.Background(), " file:///data/img.jpg ")
	if err != nil || got != "file:///data/img.jpg" {
		t.Fatalf("got %q %v", got, err)
	}
	if _, err := (Passthrough{}).Resolve(context.Background(), ""); !errors.Is(err, ErrEmptyURI) {
		t.Errorf("expected ErrEmptyURI, got %v", err)
	}
}

func TestUploadStub(t *testing.T) {
	stub := UploadStub{BaseURL: "https://cdn.clubhub.app/uploads/"}
	ctx := context.Background()

	a, err := stub.Resolve(ctx, "file:///data/cover.JPG")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.HasPrefix(a, "https://cdn.clubhub.app/uploads/") || !strings.HasSuffix(a, ".jpg") {
		t.Errorf("unexpected url %q", a)
	}
	b, _ := stub.Resolve(ctx, "file:///data/cover.JPG")
	if a != b {
		t.Errorf("same uri should map to the same url: %q vs %q", a, b)
	}
	c, _ := stub.Resolve(ctx, "file:///data/other.JPG")
	if a == c {
		t.Error("different uris mapped to the same url")
	}

	remote := "https://example.com/x.png"
	if got, _ := stub.Resolve(ctx, remote); got != remote {
		t.Errorf("remote uri should be unchanged, got %q", got)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := stub.Resolve(cancelled, "file:///data/late.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
