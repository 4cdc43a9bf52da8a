package scripting

import (
	"cmp"
	"slices"

	"github.com/zeusync/scripthost/internal/core/game"
)

// Engine is what simulation code calls. Each method forwards one hook to the
// scripts bound to it through one of the dispatch patterns.
//
// Engine only reads the Context and is safe for concurrent use once the
// Context is sealed.
type Engine struct {
	ctx    *Context
	bounds SpellScriptBounds
}

// NewEngine builds an engine over ctx. bounds supplies the spell to loader
// bindings; nil means no spell has scripts.
func NewEngine(ctx *Context, bounds SpellScriptBounds) *Engine {
	if bounds == nil {
		bounds = noBounds{}
	}
	return &Engine{ctx: ctx, bounds: bounds}
}

func (e *Engine) Context() *Context { return e.ctx }

// CreateSpellScripts manufactures one fresh spell script per loader bound to
// spellID. The caller owns the result.
func (e *Engine) CreateSpellScripts(spellID uint32) []SpellScript {
	return Manufacture(e.ctx.SpellLoaders, spellID, e.bounds.SpellScriptsBounds(spellID),
		func(l SpellScriptLoader) SpellScript { return l.NewSpellScript() })
}

// CreateAuraScripts is CreateSpellScripts for aura parts.
func (e *Engine) CreateAuraScripts(spellID uint32) []AuraScript {
	return Manufacture(e.ctx.SpellLoaders, spellID, e.bounds.SpellScriptsBounds(spellID),
		func(l SpellScriptLoader) AuraScript { return l.NewAuraScript() })
}

// CreateSpellScriptLoaders resolves the loaders bound to spellID without
// manufacturing anything. Bindings whose loader is missing are skipped.
func (e *Engine) CreateSpellScriptLoaders(spellID uint32) []LoaderBinding {
	bindings := e.bounds.SpellScriptsBounds(spellID)
	out := make([]LoaderBinding, 0, len(bindings))
	for _, b := range bindings {
		if l, ok := e.ctx.SpellLoaders.Lookup(b.ScriptID); ok {
			out = append(out, LoaderBinding{Loader: l, Binding: b})
		}
	}
	return out
}

// Server

func (e *Engine) OnNetworkStart() {
	Broadcast(e.ctx.Servers, func(s ServerScript) { s.OnNetworkStart() })
}

func (e *Engine) OnNetworkStop() {
	Broadcast(e.ctx.Servers, func(s ServerScript) { s.OnNetworkStop() })
}

func (e *Engine) OnSocketOpen(socket game.Socket) {
	Broadcast(e.ctx.Servers, func(s ServerScript) { s.OnSocketOpen(socket) })
}

func (e *Engine) OnSocketClose(socket game.Socket) {
	Broadcast(e.ctx.Servers, func(s ServerScript) { s.OnSocketClose(socket) })
}

// OnPacketSend hands scripts a copy of packet. The copy is shared by every
// script of the call.
func (e *Engine) OnPacketSend(session *game.Session, packet game.Packet) {
	if e.ctx.Servers.Len() == 0 {
		return
	}
	cp := packet.Clone()
	Broadcast(e.ctx.Servers, func(s ServerScript) { s.OnPacketSend(session, &cp) })
}

func (e *Engine) OnPacketReceive(session *game.Session, packet game.Packet) {
	if e.ctx.Servers.Len() == 0 {
		return
	}
	cp := packet.Clone()
	Broadcast(e.ctx.Servers, func(s ServerScript) { s.OnPacketReceive(session, &cp) })
}

// World

func (e *Engine) OnOpenStateChange(open bool) {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnOpenStateChange(open) })
}

func (e *Engine) OnConfigLoad(reload bool) {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnConfigLoad(reload) })
}

func (e *Engine) OnMotdChange(motd *string) {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnMotdChange(motd) })
}

func (e *Engine) OnShutdownInitiate(code game.ShutdownExitCode, mask game.ShutdownMask) {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnShutdownInitiate(code, mask) })
}

func (e *Engine) OnShutdownCancel() {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnShutdownCancel() })
}

func (e *Engine) OnWorldUpdate(diff uint32) {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnUpdate(diff) })
}

func (e *Engine) OnStartup() {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnStartup() })
}

func (e *Engine) OnShutdown() {
	Broadcast(e.ctx.Worlds, func(s WorldScript) { s.OnShutdown() })
}

// Formula

func (e *Engine) OnHonorCalculation(honor *float32, level uint8, multiplier float32) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnHonorCalculation(honor, level, multiplier) })
}

func (e *Engine) OnGrayLevelCalculation(grayLevel *uint8, playerLevel uint8) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnGrayLevelCalculation(grayLevel, playerLevel) })
}

func (e *Engine) OnColorCodeCalculation(color *game.XPColor, playerLevel, mobLevel uint8) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnColorCodeCalculation(color, playerLevel, mobLevel) })
}

func (e *Engine) OnZeroDifferenceCalculation(diff *uint8, playerLevel uint8) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnZeroDifferenceCalculation(diff, playerLevel) })
}

func (e *Engine) OnBaseGainCalculation(gain *uint32, playerLevel, mobLevel uint8, content game.ContentLevels) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnBaseGainCalculation(gain, playerLevel, mobLevel, content) })
}

func (e *Engine) OnGainCalculation(gain *uint32, player *game.Player, unit *game.Unit) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnGainCalculation(gain, player, unit) })
}

func (e *Engine) OnGroupRateCalculation(rate *float32, count uint32, isRaid bool) {
	Broadcast(e.ctx.Formulas, func(s FormulaScript) { s.OnGroupRateCalculation(rate, count, isRaid) })
}

// Commands

// GetChatCommands merges the commands of every command script, sorted by
// name.
func (e *Engine) GetChatCommands() []game.ChatCommand {
	table := Collect(e.ctx.Commands, func(s CommandScript) []game.ChatCommand { return s.Commands() })
	slices.SortStableFunc(table, func(a, b game.ChatCommand) int { return cmp.Compare(a.Name, b.Name) })
	return table
}

type noBounds struct{}

func (noBounds) SpellScriptsBounds(uint32) []SpellScriptBinding { return nil }
