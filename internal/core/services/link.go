package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driving"
)

// Ensure LinkService implements the interface.
var _ driving.LinkService = (*LinkService)(nil)

// LinkService opens or copies a source's URL. URLs are passed through unchanged.
type LinkService struct {
	store     driven.CatalogStore
	opener    driven.URLOpener
	clipboard driven.Clipboard
}

// NewLinkService creates a new link service. opener and clipboard may be nil.
func NewLinkService(store driven.CatalogStore, opener driven.URLOpener, clipboard driven.Clipboard) *LinkService {
	return &LinkService{store: store, opener: opener, clipboard: clipboard}
}

// Open launches the source URL in the browser.
func (s *LinkService) Open(ctx context.Context, id string) (string, error) {
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("source %q: %w", id, err)
	}
	if s.opener == nil {
		return src.URL, fmt.Errorf("open link: browser %w", domain.ErrUnavailable)
	}
	if err := s.opener.OpenURL(src.URL); err != nil {
		return src.URL, fmt.Errorf("open %s: %w", src.URL, err)
	}
	return src.URL, nil
}

// Copy writes the source URL to the clipboard.
func (s *LinkService) Copy(ctx context.Context, id string) (string, error) {
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("source %q: %w", id, err)
	}
	if s.clipboard == nil {
		return src.URL, fmt.Errorf("copy link: clipboard %w", domain.ErrUnavailable)
	}
	if err := s.clipboard.WriteText(src.URL); err != nil {
		return src.URL, fmt.Errorf("copy %s: %w", src.URL, err)
	}
	return src.URL, nil
}
