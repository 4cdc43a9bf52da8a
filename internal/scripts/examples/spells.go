package examples

import (
	"github.com/zeusync/scripthost/internal/core/scripting"
)

// frostNova provides both a spell part and an aura part.
type frostNova struct {
	scripting.SpellScriptLoaderBase
}

func newFrostNova() *frostNova {
	return &frostNova{scripting.NewSpellScriptLoaderBase("spell_mage_frost_nova")}
}

func (frostNova) NewSpellScript() scripting.SpellScript { return &frostNovaSpell{} }
func (frostNova) NewAuraScript() scripting.AuraScript   { return &frostNovaAura{} }

type frostNovaSpell struct {
	scripting.SpellBehaviorBase
	targets int
}

// HitTarget counts a rooted target for this cast.
func (s *frostNovaSpell) HitTarget() { s.targets++ }

func (s *frostNovaSpell) Targets() int { return s.targets }

type frostNovaAura struct {
	scripting.SpellBehaviorBase
	remaining uint32
}

const frostNovaDuration uint32 = 8000

// Tick advances the root and reports whether it is still active.
func (a *frostNovaAura) Tick(diff uint32) bool {
	if a.remaining == 0 {
		a.remaining = frostNovaDuration
	}
	if diff >= a.remaining {
		a.remaining = 0
		return false
	}
	a.remaining -= diff
	return true
}
