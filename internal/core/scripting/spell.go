package scripting

import "github.com/google/uuid"

// SpellBehavior is a per-cast object manufactured by a SpellScriptLoader.
// It belongs to the caller that asked for it, not to any registry.
type SpellBehavior interface {
	// Bind attaches the instance to the loader that produced it and the spell
	// it was produced for. The engine calls it once, right after creation.
	Bind(scriptName string, spellID uint32)
	InstanceID() uuid.UUID
	ScriptName() string
	SpellID() uint32
}

type SpellScript interface {
	SpellBehavior
}

type AuraScript interface {
	SpellBehavior
}

// SpellScriptLoader is the factory kind. It is looked up by id like any
// name-bound script, but never executed itself.
type SpellScriptLoader interface {
	Script
	// NewSpellScript returns a fresh instance per call, or nil if the loader
	// has no spell part.
	NewSpellScript() SpellScript
	// NewAuraScript returns a fresh instance per call, or nil if the loader
	// has no aura part.
	NewAuraScript() AuraScript
}

type SpellScriptLoaderBase struct{ Named }

func NewSpellScriptLoaderBase(name string) SpellScriptLoaderBase {
	return SpellScriptLoaderBase{Named(name)}
}

func (SpellScriptLoaderBase) NewSpellScript() SpellScript { return nil }
func (SpellScriptLoaderBase) NewAuraScript() AuraScript   { return nil }

// SpellBehaviorBase implements SpellBehavior. Embed it by pointer or as a
// field of a pointer receiver type.
type SpellBehaviorBase struct {
	instanceID uuid.UUID
	scriptName string
	spellID    uint32
}

func (b *SpellBehaviorBase) Bind(scriptName string, spellID uint32) {
	if b.instanceID == uuid.Nil {
		b.instanceID = uuid.New()
	}
	b.scriptName = scriptName
	b.spellID = spellID
}

func (b *SpellBehaviorBase) InstanceID() uuid.UUID { return b.instanceID }
func (b *SpellBehaviorBase) ScriptName() string    { return b.scriptName }
func (b *SpellBehaviorBase) SpellID() uint32       { return b.spellID }

// SpellScriptBinding is one row of the spell to loader table: spell SpellID
// uses the loader registered under ScriptID.
type SpellScriptBinding struct {
	SpellID  uint32
	ScriptID uint32
}

// SpellScriptBounds returns every binding for a spell, in content order.
type SpellScriptBounds interface {
	SpellScriptsBounds(spellID uint32) []SpellScriptBinding
}

// LoaderBinding pairs a resolved loader with the binding that selected it.
type LoaderBinding struct {
	Loader  SpellScriptLoader
	Binding SpellScriptBinding
}
