package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog",
}

var exportSQLiteCmd = &cobra.Command{
	Use:   "sqlite <path>",
	Short: "Write the catalog to a new SQLite database",
	Long: `Write every source, its format tags and the category list to a new
SQLite database. The file must not already exist.

The database can be read back with --catalog:
  sourcebook export sqlite catalog.db
  sourcebook --catalog catalog.db list`,
	Args: cobra.ExactArgs(1),
	RunE: runExportSQLite,
}

func init() {
	exportCmd.AddCommand(exportSQLiteCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportSQLite(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errNotConfigured("export")
	}

	report, err := exportService.ExportSQLite(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d sources (%d format tags) to %s\n", report.Sources, report.Formats, report.Path)
	cmd.Printf("Run ID: %s\n", report.ID)
	return nil
}
