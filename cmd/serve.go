package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/chatlog"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for the site chat widget",
	Long:  `Starts the assistant HTTP server with the chat, suggestion, schedule and telemetry endpoints used by the event-site widget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		eng, err := newEngine(cfg)
		if err != nil {
			return err
		}

		// Telemetry is optional; an empty db_path disables it.
		var store *chatlog.Store
		if cfg.DBPath != "" {
			database, err := chatlog.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening telemetry database: %w", err)
			}
			defer database.Close()
			store = chatlog.NewStore(database)

			if cfg.RetentionDays > 0 {
				cutoff := time.Now().AddDate(0, 0, -cfg.RetentionDays)
				deleted, err := store.DeleteBefore(context.Background(), cutoff)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Warning: pruning telemetry: %v\n", err)
				} else if deleted > 0 && verbose {
					fmt.Fprintf(os.Stderr, "Pruned %d telemetry rows older than %d days\n", deleted, cfg.RetentionDays)
				}
			}
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			Origins:  cfg.Origins,
			AllowAll: cfg.AllowAllOrigins,
		}, eng, store)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "dklbot v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  FAQ entries: %d\n", eng.KnowledgeBase().NumFAQEntries())
		fmt.Fprintf(os.Stderr, "  Programme entries: %d\n", eng.KnowledgeBase().NumScheduleEntries())
		if cfg.DBPath != "" {
			fmt.Fprintf(os.Stderr, "  Telemetry: %s\n", cfg.DBPath)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
