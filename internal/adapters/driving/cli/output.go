package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputCSV   = "csv"
)

// minDescriptionWidth keeps the table description column readable on narrow terminals.
const minDescriptionWidth = 20

func parseOutput(s string, allowed ...string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(s))
	if format == "" {
		format = outputTable
	}
	if !lo.Contains(allowed, format) {
		return "", fmt.Errorf("%w: output %q (want %s)", domain.ErrInvalidInput, s, strings.Join(allowed, ", "))
	}
	return format, nil
}

// stdoutTerminal reports whether the command writes to an interactive terminal.
func stdoutTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// terminalWidth returns the width of the command's terminal, or the default.
func terminalWidth(cmd *cobra.Command) int {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return content.DefaultWidth
}

// printMarkdown styles md with glamour on a terminal and writes it raw otherwise.
func printMarkdown(cmd *cobra.Command, md string) error {
	if !stdoutTerminal(cmd) {
		cmd.Print(md)
		return nil
	}

	theme := domain.DefaultTheme
	if themeService != nil {
		theme = themeService.Current()
	}
	out, err := content.Render(md, theme, terminalWidth(cmd))
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return enc.Close()
}

// writeSources prints a filter result in the requested format.
func writeSources(cmd *cobra.Command, result domain.FilterResult, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case outputJSON:
		return writeJSON(w, result.Sources)
	case outputYAML:
		return writeYAML(w, result.Sources)
	case outputCSV:
		return writeSourcesCSV(w, result.Sources)
	default:
		return writeSourcesTable(cmd, result)
	}
}

func writeSourcesTable(cmd *cobra.Command, result domain.FilterResult) error {
	if result.Empty() {
		cmd.Println(result.Summary())
		if result.ShowClearFilters() {
			cmd.Println("Clear the query and type filter to see every source.")
		}
		return nil
	}

	descWidth := descriptionWidth(cmd, result.Sources)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCOVERAGE\tRELIABILITY\tDESCRIPTION")
	for _, src := range result.Sources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/5\t%s\n",
			src.ID, src.Name, src.Type, src.Coverage, src.Reliability,
			truncate(src.Description, descWidth))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	cmd.Println()
	cmd.Println(result.Summary())
	return nil
}

// descriptionWidth fits the description column into what remains of the terminal.
func descriptionWidth(cmd *cobra.Command, sources []domain.Source) int {
	fixed := lo.Max(lo.Map(sources, func(s domain.Source, _ int) int { return len(s.ID) })) +
		lo.Max(lo.Map(sources, func(s domain.Source, _ int) int { return len([]rune(s.Name)) })) +
		len("Point Cloud") + len("Regional") + len("RELIABILITY") + 5*2
	return max(terminalWidth(cmd)-fixed, minDescriptionWidth)
}

func writeSourcesCSV(w io.Writer, sources []domain.Source) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "name", "provider", "type", "coverage", "category", "reliability", "formats", "url", "description"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, src := range sources {
		record := []string{
			src.ID,
			src.Name,
			src.Provider,
			src.Type.String(),
			string(src.Coverage),
			src.Category.String(),
			strconv.Itoa(int(src.Reliability)),
			strings.Join(src.Formats, " "),
			src.URL,
			src.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
