package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/content"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "About the sourcebook and its rating rubric",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printMarkdown(cmd, content.About())
	},
}

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "A short introduction to GIS",
	Long: `Print the Learn GIS page: the five components of a GIS, a timeline of
its history and the campus layer model used by the map demo.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printMarkdown(cmd, content.Learn())
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(learnCmd)
}
