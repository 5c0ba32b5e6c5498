package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skovgaard/platepilot/internal/app"
	"github.com/skovgaard/platepilot/internal/config"
	"github.com/skovgaard/platepilot/internal/server"
)

// NewServeCmd creates the 'serve' command for running the HTTP API.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the personalization engine behind an HTTP API",
		Long: `Start the HTTP API for a browser frontend.

Endpoints under /api cover lookups, keystroke-driven suggestions, history,
interests, the pending feedback prompt, cached-lookup search, and the
forget-preferences control. A feedback question pending from a previous run
is re-opened on start.`,
		Example: `  platepilot serve
  platepilot serve --addr 0.0.0.0:8750`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Bind address (default from config)")
	return cmd
}

// runServe starts the HTTP service with graceful shutdown on
// SIGINT/SIGTERM/SIGQUIT.
func runServe(addr string) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Settings.ListenAddr
	}

	logger := newLogger().Level(serveLogLevel())

	a, err := app.New(cfg, nil, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	svc := server.NewService(a, addr, logger)
	return svc.Run(ctx)
}
