package content

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// SourceCard renders a source the way the catalog card lays it out:
// header, description, badge, formats, pro tip and link.
func SourceCard(src domain.Source) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", src.Name)
	fmt.Fprintf(&b, "%s · **%s** · %s\n\n", src.Provider, src.Type, src.Coverage.Label())
	fmt.Fprintf(&b, "%s\n\n", src.Description)
	fmt.Fprintf(&b, "**%s**\n\n", src.Reliability.BadgeLabel())

	if len(src.Formats) > 0 {
		b.WriteString("**Formats**\n\n")
		for _, f := range src.Formats {
			fmt.Fprintf(&b, "- `%s` %s\n", f, domain.FormatDescription(f))
		}
		b.WriteString("\n")
	}

	if src.EducativeNote != "" {
		fmt.Fprintf(&b, "> **Pro Tip:** %s\n\n", src.EducativeNote)
	}
	fmt.Fprintf(&b, "[Visit Source](%s) %s\n", src.URL, src.URL)
	return b.String()
}
