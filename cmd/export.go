package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/site"
)

var (
	exportOut   string
	exportTitle string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the knowledge base as a standalone HTML page",
	Long:  `Renders the FAQ and the event-day programme to a static HTML page, for publishing or editorial review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		base, err := kb.Load(cfg.DataDir, cfg.Include)
		if err != nil {
			return fmt.Errorf("loading knowledge base: %w", err)
		}

		exporter := site.NewExporter(base, exportOut, exportTitle)
		outPath, err := exporter.Export()
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d FAQ entries and %d programme entries to %s\n",
			base.NumFAQEntries(), base.NumScheduleEntries(), outPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "site", "output directory")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "page title (defaults to the event name)")
	rootCmd.AddCommand(exportCmd)
}
