package cli

import (
	"github.com/spf13/cobra"
)

var openCopy bool

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a source's website",
	Long: `Open the provider URL of a source in the default browser.
With --copy the URL is copied to the clipboard instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openCopy, "copy", false, "copy the URL to the clipboard instead of opening it")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	if linkService == nil {
		return errNotConfigured("link")
	}

	if openCopy {
		url, err := linkService.Copy(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Copied %s\n", url)
		return nil
	}

	url, err := linkService.Open(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Opened %s\n", url)
	return nil
}
