package scripting

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeusync/scripthost/internal/core/events/bus"
	"github.com/zeusync/scripthost/internal/core/observability/log"
)

// State is a lifecycle phase. Phases only move forward.
type State uint8

const (
	StateUninitialized State = iota
	StateInitializing
	StateOperational
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateOperational:
		return "operational"
	case StateShuttingDown:
		return "shutting_down"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// EventStateChanged is published on every lifecycle transition with a
// StateChange payload.
const EventStateChanged = "scripting.state"

type StateChange struct {
	From State
	To   State
}

type ManagerOption func(*Manager)

// WithRegionWarnings toggles the startup warning for map ids bound by more
// than one region script. On by default.
func WithRegionWarnings(enabled bool) ManagerOption {
	return func(m *Manager) { m.warnRegions = enabled }
}

// Manager drives a Context through startup registration and shutdown
// teardown.
type Manager struct {
	mu sync.Mutex

	ctx    *Context
	log    log.Log
	events bus.EventBus

	loader      func(*Registrar)
	state       atomic.Uint32
	warnRegions bool
}

// NewManager creates a manager for ctx. events may be nil.
func NewManager(ctx *Context, logger log.Log, events bus.EventBus, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}
	m := &Manager{
		ctx:         ctx,
		log:         logger.Named("scripting"),
		events:      events,
		warnRegions: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLoader sets the callback that registers every script. It must be called
// before Initialize.
func (m *Manager) SetLoader(fn func(*Registrar)) {
	m.mu.Lock()
	m.loader = fn
	m.mu.Unlock()
}

// State is safe to call from anywhere, state event handlers included.
func (m *Manager) State() State { return State(m.state.Load()) }

func (m *Manager) Context() *Context { return m.ctx }

// Initialize runs the loader, audits the result and seals the context.
// A missing loader aborts the process. If ctx ends while the loader runs,
// every script registered so far is released and the manager terminates.
func (m *Manager) Initialize(ctx context.Context) error {
	changes, err := m.initialize(ctx)
	m.publish(changes)
	return err
}

func (m *Manager) initialize(ctx context.Context) ([]StateChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state := m.State(); state != StateUninitialized {
		return nil, fmt.Errorf("initialize from %s: %w", state, ErrInvalidState)
	}
	if m.loader == nil {
		m.log.Fatal("script loader callback was not registered")
		return nil, ErrNoLoader
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	changes := []StateChange{m.transition(StateInitializing)}
	m.log.Info("loading scripts")
	start := time.Now()

	r := NewRegistrar(m.ctx)
	r.done = ctx
	m.loader(r)

	if err := ctx.Err(); err != nil {
		m.log.Error("script loading aborted",
			log.Uint32("registered", m.ctx.ScriptCount()),
			log.Duration("elapsed", time.Since(start)),
			log.Error(err),
		)
		changes = append(changes, m.transition(StateShuttingDown))
		m.teardown()
		changes = append(changes, m.transition(StateTerminated))
		return changes, fmt.Errorf("load scripts: %w", err)
	}

	for _, name := range m.ctx.UnresolvedNames() {
		m.log.Error("script named in the directory does not have a script implementation",
			log.String("script", name),
		)
	}
	if m.warnRegions {
		warnDuplicateRegions(m.log, KindWorldMap, duplicateRegions(m.ctx.WorldMaps))
		warnDuplicateRegions(m.log, KindInstanceMap, duplicateRegions(m.ctx.InstanceMaps))
		warnDuplicateRegions(m.log, KindBattlegroundMap, duplicateRegions(m.ctx.BattlegroundMaps))
	}

	m.ctx.Seal()
	m.log.Info("loaded scripts",
		log.Uint32("count", m.ctx.ScriptCount()),
		log.Duration("elapsed", time.Since(start)),
		log.Hex("fingerprint", m.ctx.Fingerprint()),
	)

	return append(changes, m.transition(StateOperational)), nil
}

// Unload releases every owned script, kind by kind in Kinds order.
func (m *Manager) Unload() error {
	changes, err := m.unload()
	m.publish(changes)
	return err
}

func (m *Manager) unload() ([]StateChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state := m.State(); state != StateOperational {
		return nil, fmt.Errorf("unload from %s: %w", state, ErrInvalidState)
	}
	changes := []StateChange{m.transition(StateShuttingDown)}
	released := m.teardown()
	m.log.Info("unloaded scripts", log.Int("released", released))

	return append(changes, m.transition(StateTerminated)), nil
}

func (m *Manager) teardown() int {
	released := 0
	for _, k := range Kinds() {
		r := m.ctx.registry(k)
		released += r.Owned()
		r.TeardownAll()
	}
	return released
}

// transition moves to the next state. Callers hold m.mu and publish the
// returned change once they release it.
func (m *Manager) transition(to State) StateChange {
	change := StateChange{From: State(m.state.Swap(uint32(to))), To: to}
	m.log.Debug("lifecycle transition",
		log.String("from", change.From.String()),
		log.String("to", change.To.String()),
	)
	return change
}

func (m *Manager) publish(changes []StateChange) {
	if m.events == nil {
		return
	}
	for _, change := range changes {
		if err := m.events.Publish(bus.NewEvent(EventStateChanged, "scripting", change, 0, nil)); err != nil {
			m.log.Warn("state change handler failed", log.String("to", change.To.String()), log.Error(err))
		}
	}
}

func warnDuplicateRegions(logger log.Log, kind Kind, dups map[uint32][]string) {
	for _, id := range slices.Sorted(maps.Keys(dups)) {
		logger.Warn("map bound by more than one script; only the first fires",
			log.String("kind", kind.String()),
			log.Uint32("map", id),
			log.Strings("scripts", dups[id]),
		)
	}
}
