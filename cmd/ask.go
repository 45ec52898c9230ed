package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/engine"
)

var askCmd = &cobra.Command{
	Use:   "ask [vraag]",
	Short: "Ask the assistant a single question",
	Long:  `Runs one dialogue turn against the knowledge base and prints the answer.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Bool("json", false, "output the result as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the JSON shape of one answered turn.
type askOutput struct {
	Response    string         `json:"response"`
	ContextHint string         `json:"context_hint"`
	Suggestions []string       `json:"suggestions"`
	Action      *engine.Action `json:"action,omitempty"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	result := eng.Process(args[0])

	if jsonOutput {
		out := askOutput{
			Response:    result.Response,
			ContextHint: result.ContextHint,
			Suggestions: eng.Suggest(result.ContextHint),
		}
		if action, ok := engine.ParseAction(result.Response); ok {
			out.Action = &action
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(result.Response)
	if verbose {
		fmt.Fprintf(os.Stderr, "\n[%s]\n", result.ContextHint)
		for _, suggestion := range eng.Suggest(result.ContextHint) {
			fmt.Fprintf(os.Stderr, "  • %s\n", suggestion)
		}
	}
	return nil
}
