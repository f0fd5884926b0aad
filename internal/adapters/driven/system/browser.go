package system

import (
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"

	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
)

// Ensure Browser implements the interface.
var _ driven.URLOpener = (*Browser)(nil)

// Browser opens URLs with the platform's default browser.
type Browser struct {
	open func(string) error
}

// NewBrowser creates a browser opener. Launcher chatter is discarded so it
// does not bleed into the terminal UI.
func NewBrowser() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{open: browser.OpenURL}
}

// OpenURL opens an absolute http(s) URL. The URL is passed through unchanged.
func (b *Browser) OpenURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", raw)
	}
	return b.open(raw)
}
