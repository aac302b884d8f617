package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/internal/config"
	"github.com/deckforge/deckforge/internal/deckgen"
	"github.com/deckforge/deckforge/internal/llm"
	"github.com/deckforge/deckforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	// A missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.Port = p
	}

	log := newLogger(cfg)

	var gen server.Generator
	modelID := ""

	llmCfg := cfg.LLM
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		llmCfg.Provider = p
	} else if os.Getenv("DECKFORGE_LLM_PROVIDER") == "" {
		// No explicit choice: pick whichever backend has a credential.
		if !llm.DiscoverProvider(&llmCfg) {
			llmCfg.Provider = ""
		}
	}

	if llmCfg.Provider == "" {
		log.Warn().Msg("no LLM credential configured, generation endpoints disabled")
	} else {
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, log)
		if err != nil {
			return err
		}
		gen = deckgen.NewService(provider, cfg.Gen, log)
		modelID = provider.ModelID()
		log.Info().Str("provider", llmCfg.Provider).Str("model", modelID).Msg("llm provider ready")
	}

	srv := server.New(gen, server.Info{
		Provider:    llmCfg.Provider,
		ModelID:     modelID,
		Environment: cfg.Environment,
		Version:     version,
	}, log)

	// Graceful shutdown on SIGINT/SIGTERM.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.Port)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		return srv.Shutdown()
	}
}

// newLogger builds the process logger: JSON in production, human-readable
// console output in development.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
