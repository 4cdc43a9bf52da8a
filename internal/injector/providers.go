package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scripthost/internal/config"
	"github.com/zeusync/scripthost/internal/core/content"
	"github.com/zeusync/scripthost/internal/core/events/bus"
	"github.com/zeusync/scripthost/internal/core/observability/log"
	"github.com/zeusync/scripthost/internal/core/scripting"
)

// Host is everything a process needs to run scripts.
type Host struct {
	Logger  *log.Logger
	Events  bus.EventBus
	Context *scripting.Context
	Manager *scripting.Manager
	Engine  *scripting.Engine
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	bus.New,
	ProvideContext,
	ProvideManager,
	ProvideEngine,
	wire.Struct(new(Host), "*"),
)

func ProvideLogger(cfg config.Config) (*log.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return log.New(level), nil
}

// ProvideContext binds the directory as both name resolver and map catalog.
func ProvideContext(dir *content.Directory, logger *log.Logger) *scripting.Context {
	return scripting.NewContext(dir, dir, logger)
}

func ProvideManager(ctx *scripting.Context, logger *log.Logger, events bus.EventBus, cfg config.Config) *scripting.Manager {
	return scripting.NewManager(ctx, logger, events, scripting.WithRegionWarnings(cfg.RegionWarnings))
}

func ProvideEngine(ctx *scripting.Context, dir *content.Directory) *scripting.Engine {
	return scripting.NewEngine(ctx, dir)
}
