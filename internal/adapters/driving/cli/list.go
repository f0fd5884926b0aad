package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

var (
	listQuery    string
	listType     string
	listCategory string
	listOutput   string

	searchType string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog sources",
	Long: `List the sources in the catalog, optionally narrowed by a text query,
a data type and a category.

The query matches the name, description and provider case-insensitively.
Type is one of All, Vector, Raster, Mixed or "Point Cloud".

Examples:
  sourcebook list
  sourcebook list -t raster
  sourcebook list -q elevation -o json
  sourcebook list -c environment -o csv > environment.csv`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search catalog sources",
	Long:  `Search the catalog by name, description or provider.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "text to match against name, description and provider")
	listCmd.Flags().StringVarP(&listType, "type", "t", "All", "data type filter")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only list sources in this category")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", outputTable, "output format: table, json, yaml or csv")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "All", "data type filter")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	format, err := parseOutput(listOutput, outputTable, outputJSON, outputYAML, outputCSV)
	if err != nil {
		return err
	}
	result, err := filterCatalog(cmd, listQuery, listType, listCategory)
	if err != nil {
		return err
	}
	return writeSources(cmd, result, format)
}

func runSearch(cmd *cobra.Command, args []string) error {
	result, err := filterCatalog(cmd, args[0], searchType, "")
	if err != nil {
		return err
	}
	return writeSources(cmd, result, outputTable)
}

// filterCatalog runs the catalog filter and narrows the result to a category.
func filterCatalog(cmd *cobra.Command, query, typeName, categoryName string) (domain.FilterResult, error) {
	if catalogService == nil {
		return domain.FilterResult{}, errNotConfigured("catalog")
	}

	typeFilter, err := domain.ParseTypeFilter(typeName)
	if err != nil {
		return domain.FilterResult{}, err
	}

	result, err := catalogService.Filter(cmd.Context(), domain.FilterState{Query: query, Type: typeFilter})
	if err != nil {
		return domain.FilterResult{}, fmt.Errorf("filtering catalog: %w", err)
	}
	log.Debug("filter %q/%s matched %d of %d", query, typeFilter, len(result.Sources), result.Total)

	if categoryName == "" {
		return result, nil
	}
	category, ok := domain.ParseCategory(categoryName)
	if !ok {
		return domain.FilterResult{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, categoryName)
	}
	result.Sources = lo.Filter(result.Sources, func(src domain.Source, _ int) bool {
		return src.Category == category
	})
	return result, nil
}
