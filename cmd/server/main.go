package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/config"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/nats"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/resolver"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/store/kv"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/web"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/workflow"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start embedded NATS server
	natsServer, err := nats.NewEmbeddedServer(cfg.DBPath)
	if err != nil {
		slog.Error("NATS server could not start", "error", err)
		os.Exit(1)
	}
	defer natsServer.Shutdown()

	js := natsServer.JetStream()

	st, err := kv.New(ctx, js)
	if err != nil {
		slog.Error("State store could not be opened", "error", err)
		os.Exit(1)
	}

	// Pick the assignment resolver: the AI endpoint when a key is
	// configured, the deterministic fallback otherwise.
	var res resolver.Resolver
	resolverKind := "rule-based"
	if cfg.ResolverAPIKey != "" {
		res = resolver.NewLLMResolver(cfg.ResolverURL, cfg.ResolverAPIKey, cfg.ResolverModel, cfg.ResolverTimeout)
		resolverKind = fmt.Sprintf("llm (%s)", cfg.ResolverModel)
	} else {
		res = resolver.NewRuleBasedResolver()
	}

	wf := workflow.New(st, res)

	var wg sync.WaitGroup

	// Start web server
	webServer := web.NewServer(js, st, wf, cfg)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := webServer.Start(ctx); err != nil {
			slog.Error("Web server error", "error", err)
		}
	}()

	slog.Info("Hospital Command Center started",
		"webPort", cfg.WebPort,
		"resolver", resolverKind,
		"dataDir", cfg.DBPath,
	)

	printStartupInfo(cfg, resolverKind)

	// Wait for shutdown signal
	<-sigChan
	slog.Info("Shutdown signal received, stopping server...")

	cancel()
	wg.Wait()

	slog.Info("Hospital Command Center stopped")
}

func printStartupInfo(cfg *config.Config, resolverKind string) {
	info := `
╔═══════════════════════════════════════════════════════════════╗
║               Hospital Command Center Started                 ║
╠═══════════════════════════════════════════════════════════════╣
║ Web Dashboard        : http://localhost:%-22d ║
║ Assignment Resolver  : %-39s ║
║ Data Directory       : %-39s ║
╚═══════════════════════════════════════════════════════════════╝
`
	fmt.Printf(info,
		cfg.WebPort,
		resolverKind,
		cfg.DBPath,
	)
}
