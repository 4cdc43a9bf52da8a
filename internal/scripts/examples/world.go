package examples

import (
	"time"

	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/observability/log"
	"github.com/zeusync/scripthost/internal/core/scripting"
)

// worldClock logs world uptime at startup and shutdown.
type worldClock struct {
	scripting.WorldScriptBase
	logger    log.Log
	startedAt time.Time
	updates   uint64
}

func newWorldClock(logger log.Log) *worldClock {
	return &worldClock{
		WorldScriptBase: scripting.NewWorldScriptBase("world_clock"),
		logger:          logger,
	}
}

func (w *worldClock) OnStartup() {
	w.startedAt = time.Now()
	w.logger.Info("world started")
}

func (w *worldClock) OnUpdate(uint32) { w.updates++ }

func (w *worldClock) OnShutdown() {
	w.logger.Info("world stopped",
		log.Duration("uptime", time.Since(w.startedAt)),
		log.Uint64("updates", w.updates),
	)
}

// weekendHonor doubles honor on Saturdays and Sundays.
type weekendHonor struct {
	scripting.FormulaScriptBase
	now func() time.Time
}

func newWeekendHonor() *weekendHonor {
	return &weekendHonor{FormulaScriptBase: scripting.NewFormulaScriptBase("formula_weekend_honor"), now: time.Now}
}

func (w *weekendHonor) OnHonorCalculation(honor *float32, _ uint8, _ float32) {
	switch w.now().Weekday() {
	case time.Saturday, time.Sunday:
		*honor *= 2
	}
}

// scriptCommands exposes a .scripts chat command tree.
type scriptCommands struct {
	scripting.CommandScriptBase
	logger log.Log
}

func newScriptCommands(logger log.Log) *scriptCommands {
	return &scriptCommands{CommandScriptBase: scripting.NewCommandScriptBase("cmd_scripts"), logger: logger}
}

func (c *scriptCommands) Commands() []game.ChatCommand {
	return []game.ChatCommand{{
		Name:       "scripts",
		Permission: 3,
		Help:       "Syntax: .scripts ping",
		Children: []game.ChatCommand{{
			Name:       "ping",
			Permission: 3,
			Help:       "Checks that bundled scripts are loaded.",
			Handler: func(args string) bool {
				c.logger.Debug("scripts ping", log.String("args", args))
				return true
			},
		}},
	}}
}
