package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant on the terminal",
	Long:  `Starts an interactive session. Type "stop" or press Ctrl+C to leave.`,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	fmt.Println(eng.Intro())
	fmt.Println()
	printSuggestions(eng.InitialSuggestions())

	for {
		prompt := promptui.Prompt{Label: "jij"}
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Tot ziens!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "stop", "exit", "quit":
			fmt.Println("Tot ziens!")
			return nil
		case "":
			continue
		}

		result := eng.Process(input)
		fmt.Println()
		fmt.Println(result.Response)
		fmt.Println()
		printSuggestions(eng.Suggest(result.ContextHint))
	}
}

func printSuggestions(suggestions []string) {
	fmt.Println("Bijvoorbeeld:")
	for _, suggestion := range suggestions {
		fmt.Printf("  • %s\n", suggestion)
	}
	fmt.Println()
}
