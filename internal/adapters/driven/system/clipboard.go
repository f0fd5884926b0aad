package system

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

// NewClipboard creates a clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// WriteText copies text to the clipboard.
// Returns domain.ErrUnavailable when no clipboard utility is installed.
func (c *Clipboard) WriteText(text string) error {
	if c.unsupported {
		return fmt.Errorf("clipboard %w: install xclip, xsel or wl-clipboard", domain.ErrUnavailable)
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
