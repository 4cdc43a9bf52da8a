package scripting

import (
	"maps"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/observability/log"
)

// directory is an in-memory content directory.
type directory struct {
	ids    map[string]uint32
	maps   map[uint32]*game.MapEntry
	spells map[uint32][]SpellScriptBinding
}

func newDirectory(ids map[string]uint32) *directory {
	if ids == nil {
		ids = map[string]uint32{}
	}
	return &directory{
		ids:    ids,
		maps:   map[uint32]*game.MapEntry{},
		spells: map[uint32][]SpellScriptBinding{},
	}
}

func (d *directory) ResolveID(name string) (uint32, bool) {
	id, ok := d.ids[name]
	return id, ok
}

func (d *directory) Names() []string {
	return slices.Sorted(maps.Keys(d.ids))
}

func (d *directory) MapEntry(id uint32) (*game.MapEntry, bool) {
	e, ok := d.maps[id]
	return e, ok
}

func (d *directory) SpellScriptsBounds(spellID uint32) []SpellScriptBinding {
	return d.spells[spellID]
}

func (d *directory) withMap(id uint32, c game.MapCategory) *directory {
	d.maps[id] = &game.MapEntry{ID: id, Category: c}
	return d
}

// observedLogger records every entry and panics on Fatal instead of exiting.
func observedLogger(t *testing.T) (*log.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return log.NewFromZap(zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))), logs
}

func newTestContext(t *testing.T, d *directory) (*Context, *observer.ObservedLogs) {
	t.Helper()
	logger, logs := observedLogger(t)
	return NewContext(d, d, logger), logs
}

// releases counts Release calls.
type releases struct{ n int }

func (r *releases) Release() { r.n++ }

type testWorld struct {
	WorldScriptBase
	releases
	startups int
}

func newWorld(name string) *testWorld {
	return &testWorld{WorldScriptBase: NewWorldScriptBase(name)}
}

func (w *testWorld) OnStartup() { w.startups++ }

type testCreature struct {
	CreatureScriptBase
	releases
	hellos  int
	damaged int
}

func newCreature(name string) *testCreature {
	return &testCreature{CreatureScriptBase: NewCreatureScriptBase(name)}
}

func (c *testCreature) OnGossipHello(p *game.Player, _ *game.Creature) bool {
	c.hellos++
	p.Menu.Add(game.GossipOption{Text: c.Name()})
	return true
}

func (c *testCreature) OnDamage(_, _ *game.Unit, damage *uint32) {
	c.damaged++
	*damage += 1
}

type testPlayer struct {
	PlayerScriptBase
	releases
	mapChanges int
	damaged    int
}

func newPlayer(name string) *testPlayer {
	return &testPlayer{PlayerScriptBase: NewPlayerScriptBase(name)}
}

func (p *testPlayer) OnMapChanged(*game.Player) { p.mapChanges++ }

func (p *testPlayer) OnDamage(_, _ *game.Unit, damage *uint32) {
	p.damaged++
	*damage *= 2
}

// mapHits records which region script fired for which hook.
type mapHits struct {
	fired []string
}

type testWorldMap struct {
	MapScriptBase
	hits *mapHits
}

func newWorldMap(name string, mapID uint32, hits *mapHits) *testWorldMap {
	return &testWorldMap{MapScriptBase: NewMapScriptBase(name, mapID), hits: hits}
}

func (m *testWorldMap) OnPlayerEnter(*game.Map, *game.Player) {
	m.hits.fired = append(m.hits.fired, m.Name())
}

type testInstanceMap struct {
	InstanceMapScriptBase
	hits *mapHits
}

func newInstanceMap(name string, mapID uint32, hits *mapHits) *testInstanceMap {
	return &testInstanceMap{InstanceMapScriptBase: NewInstanceMapScriptBase(name, mapID), hits: hits}
}

func (m *testInstanceMap) OnPlayerEnter(*game.Map, *game.Player) {
	m.hits.fired = append(m.hits.fired, m.Name())
}

type testSpell struct {
	SpellBehaviorBase
}

type testAura struct {
	SpellBehaviorBase
}

type testLoader struct {
	SpellScriptLoaderBase
	releases
	withAura bool
}

func newLoader(name string, withAura bool) *testLoader {
	return &testLoader{SpellScriptLoaderBase: NewSpellScriptLoaderBase(name), withAura: withAura}
}

func (l *testLoader) NewSpellScript() SpellScript { return &testSpell{} }

func (l *testLoader) NewAuraScript() AuraScript {
	if !l.withAura {
		return nil
	}
	return &testAura{}
}
