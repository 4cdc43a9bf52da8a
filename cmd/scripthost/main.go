package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeusync/scripthost/internal/config"
	"github.com/zeusync/scripthost/internal/core/content"
	"github.com/zeusync/scripthost/internal/core/observability/log"
	"github.com/zeusync/scripthost/internal/injector"
	"github.com/zeusync/scripthost/internal/scripts/examples"
)

const worldTick = 100 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "scripthost:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := loadContent(ctx, cfg)
	if err != nil {
		return err
	}

	host, err := injector.InitializeHost(cfg, dir)
	if err != nil {
		return err
	}
	defer func() { _ = host.Logger.Sync() }()

	stats := dir.Stats()
	host.Logger.Info("content loaded",
		log.Int("scripts", stats.Scripts),
		log.Int("spell_scripts", stats.SpellScripts),
		log.Int("maps", stats.Maps),
	)

	host.Manager.SetLoader(examples.Manifest(host.Logger).Loader())
	initCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	err = host.Manager.Initialize(initCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("initialize scripts: %w", err)
	}

	host.Engine.OnStartup()

	ticker := time.NewTicker(worldTick)
	defer ticker.Stop()
	last := time.Now()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case now := <-ticker.C:
			host.Engine.OnWorldUpdate(uint32(now.Sub(last).Milliseconds()))
			last = now
		}
	}

	host.Logger.Info("shutting down")
	host.Engine.OnShutdown()
	return host.Manager.Unload()
}

// loadContent reads the configured sources, or the bundled example content
// when none are configured.
func loadContent(ctx context.Context, cfg config.Config) (*content.Directory, error) {
	src := cfg.Content()
	if src.Empty() {
		return examples.Content()
	}
	return content.Load(ctx, src)
}
