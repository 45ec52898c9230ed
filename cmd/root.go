package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dklbot",
	Short: "Rule-based chat assistant for De Koninklijke Loop",
	Long: `dklbot answers Dutch questions about De Koninklijke Loop, a yearly
sponsored walk. It classifies the visitor's intent, retrieves answers
from a curated FAQ and the event-day programme, and suggests follow-up
questions. The same engine is served over HTTP for the site widget,
over MCP for AI agents, and interactively on the terminal.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".dklbot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
