package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/spf13/cobra"
)

var reportRaw bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a markdown report of today and recent days",
	Long: `Render a markdown report of today's plan and alerts, summary metrics,
the last two weeks of logs and the weekly plan.

Use --raw to print the markdown source, e.g. to save it to a file.`,
	Example: `  protocolctl report
  protocolctl report --raw > report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitOnError(reportRun(os.Stdout, reportRaw))
	},
}

func reportRun(w io.Writer, raw bool) error {
	logs, err := svc.Load()
	if err != nil {
		return err
	}
	md, err := ui.BuildReport(logs, svc.Today())
	if err != nil {
		return err
	}

	if raw {
		_, err := io.WriteString(w, md)
		return err
	}
	rendered := ui.RenderMarkdown(md, appConfig.MaxWidth, appConfig.Theme.MarkdownStyle)
	return ui.OutputOrPage(w, rendered, ui.ResolveTheme(appConfig.Theme), appConfig.MaxWidth)
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "print markdown without rendering")
	rootCmd.AddCommand(reportCmd)
}
