package scripting

import (
	"errors"
	"fmt"

	"github.com/zeusync/scripthost/internal/core/observability/log"
)

// Descriptor declares one script a module contributes. New is called once,
// during Apply, and must return a fresh instance.
type Descriptor struct {
	Kind Kind
	New  func() Script
}

// Manifest is the ordered list of scripts a build ships. Registration follows
// manifest order, which makes sequential ids deterministic.
type Manifest []Descriptor

// Apply constructs and registers every descriptor in order. Failures are
// logged and joined into the returned error; they never stop the pass. The
// pass stops early only when the load context ends.
func (r *Registrar) Apply(m Manifest) error {
	var errs []error
	for i, d := range m {
		if err := r.done.Err(); err != nil {
			errs = append(errs, fmt.Errorf("manifest stopped at entry %d of %d: %w", i, len(m), err))
			break
		}
		if err := r.applyOne(d); err != nil {
			errs = append(errs, fmt.Errorf("manifest entry %d (%s): %w", i, d.Kind, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Registrar) applyOne(d Descriptor) error {
	if !d.Kind.Valid() {
		r.ctx.env.log.Error("manifest entry has unknown kind", log.Int("kind", int(d.Kind)))
		return ErrUnknownKind
	}
	if d.New == nil {
		r.ctx.env.log.Error("manifest entry has no constructor", log.String("kind", d.Kind.String()))
		return ErrNilScript
	}
	s := d.New()
	if isNilScript(s) {
		r.ctx.env.log.Error("nil script registered", log.String("kind", d.Kind.String()))
		return ErrNilScript
	}

	switch d.Kind {
	case KindSpellScriptLoader:
		return addAs(r, d.Kind, s, r.AddSpellScriptLoader)
	case KindServer:
		return addAs(r, d.Kind, s, r.AddServerScript)
	case KindWorld:
		return addAs(r, d.Kind, s, r.AddWorldScript)
	case KindFormula:
		return addAs(r, d.Kind, s, r.AddFormulaScript)
	case KindWorldMap:
		return addAs(r, d.Kind, s, r.AddWorldMapScript)
	case KindInstanceMap:
		return addAs(r, d.Kind, s, r.AddInstanceMapScript)
	case KindBattlegroundMap:
		return addAs(r, d.Kind, s, r.AddBattlegroundMapScript)
	case KindItem:
		return addAs(r, d.Kind, s, r.AddItemScript)
	case KindCreature:
		return addAs(r, d.Kind, s, r.AddCreatureScript)
	case KindGameObject:
		return addAs(r, d.Kind, s, r.AddGameObjectScript)
	case KindAreaTrigger:
		return addAs(r, d.Kind, s, r.AddAreaTriggerScript)
	case KindBattleground:
		return addAs(r, d.Kind, s, r.AddBattlegroundScript)
	case KindOutdoorPvP:
		return addAs(r, d.Kind, s, r.AddOutdoorPvPScript)
	case KindCommand:
		return addAs(r, d.Kind, s, r.AddCommandScript)
	case KindWeather:
		return addAs(r, d.Kind, s, r.AddWeatherScript)
	case KindAuctionHouse:
		return addAs(r, d.Kind, s, r.AddAuctionHouseScript)
	case KindCondition:
		return addAs(r, d.Kind, s, r.AddConditionScript)
	case KindVehicle:
		return addAs(r, d.Kind, s, r.AddVehicleScript)
	case KindDynamicObject:
		return addAs(r, d.Kind, s, r.AddDynamicObjectScript)
	case KindTransport:
		return addAs(r, d.Kind, s, r.AddTransportScript)
	case KindAchievementCriteria:
		return addAs(r, d.Kind, s, r.AddAchievementCriteriaScript)
	case KindPlayer:
		return addAs(r, d.Kind, s, r.AddPlayerScript)
	case KindAccount:
		return addAs(r, d.Kind, s, r.AddAccountScript)
	case KindGuild:
		return addAs(r, d.Kind, s, r.AddGuildScript)
	case KindGroup:
		return addAs(r, d.Kind, s, r.AddGroupScript)
	case KindUnit:
		return addAs(r, d.Kind, s, r.AddUnitScript)
	}
	return ErrUnknownKind
}

func addAs[T Script](r *Registrar, kind Kind, s Script, add func(T) error) error {
	typed, ok := s.(T)
	if !ok {
		r.ctx.env.log.Error("script does not implement its declared kind",
			log.String("kind", kind.String()),
			log.String("script", s.Name()),
			log.String("type", fmt.Sprintf("%T", s)),
		)
		return ErrKindMismatch
	}
	return add(typed)
}

// Loader returns a lifecycle loader that applies the manifest. Errors were
// already logged per entry, so only a summary is reported here.
func (m Manifest) Loader() func(*Registrar) {
	return func(r *Registrar) {
		if err := r.Apply(m); err != nil {
			r.ctx.env.log.Warn("manifest applied with errors",
				log.Int("entries", len(m)),
				log.Error(err),
			)
		}
	}
}
