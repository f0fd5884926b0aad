package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/content"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

var (
	showOutput       string
	categoriesOutput string
	formatsOutput    string
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a source card",
	Long: `Show the full card for one source: provider, type, coverage, description,
reliability badge, format tooltips, the Pro Tip and the source link.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their source counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var formatsCmd = &cobra.Command{
	Use:   "formats [tag...]",
	Short: "Explain GIS file format tags",
	Long: `Explain what GIS file format tags mean.

With no arguments the full cheatsheet is printed. Tags may be given with
or without the leading dot.

Examples:
  sourcebook formats
  sourcebook formats shp .gpkg tiff`,
	RunE: runFormats,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "card", "output format: card, json or yaml")
	categoriesCmd.Flags().StringVarP(&categoriesOutput, "output", "o", outputTable, "output format: table, json or yaml")
	formatsCmd.Flags().StringVarP(&formatsOutput, "output", "o", outputTable, "output format: table, json or yaml")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(formatsCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNotConfigured("catalog")
	}

	src, err := catalogService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no source with id %q (run 'sourcebook list' to see ids): %w", args[0], err)
	}
	if err != nil {
		return err
	}

	switch strings.ToLower(showOutput) {
	case outputJSON:
		return writeJSON(cmd.OutOrStdout(), src)
	case outputYAML:
		return writeYAML(cmd.OutOrStdout(), src)
	case "card", "":
		return printMarkdown(cmd, content.SourceCard(*src))
	default:
		return fmt.Errorf("%w: output %q (want card, json, yaml)", domain.ErrInvalidInput, showOutput)
	}
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNotConfigured("catalog")
	}
	format, err := parseOutput(categoriesOutput, outputTable, outputJSON, outputYAML)
	if err != nil {
		return err
	}

	counts, err := catalogService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	switch format {
	case outputJSON:
		return writeJSON(cmd.OutOrStdout(), counts)
	case outputYAML:
		return writeYAML(cmd.OutOrStdout(), counts)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSOURCES")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Category, c.Count)
	}
	return tw.Flush()
}

func runFormats(cmd *cobra.Command, args []string) error {
	if formatService == nil {
		return errNotConfigured("format")
	}
	format, err := parseOutput(formatsOutput, outputTable, outputJSON, outputYAML)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		sections := formatService.Cheatsheet()
		switch format {
		case outputJSON:
			return writeJSON(cmd.OutOrStdout(), sections)
		case outputYAML:
			return writeYAML(cmd.OutOrStdout(), sections)
		}
		return printMarkdown(cmd, content.Cheatsheet(sections))
	}

	tags := make([]string, len(args))
	for i, arg := range args {
		tags[i] = normaliseTag(arg)
	}
	described := formatService.DescribeAll(tags)

	switch format {
	case outputJSON:
		return writeJSON(cmd.OutOrStdout(), described)
	case outputYAML:
		return writeYAML(cmd.OutOrStdout(), described)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, f := range described {
		fmt.Fprintf(tw, "%s\t%s\n", f.Tag, f.Description)
	}
	return tw.Flush()
}

// normaliseTag adds the leading dot format tags are keyed by.
func normaliseTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if !strings.HasPrefix(tag, ".") {
		tag = "." + tag
	}
	return tag
}
