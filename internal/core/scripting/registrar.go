package scripting

import (
	"context"

	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/observability/log"
)

// Registrar is the write side of a Context. The lifecycle hands one to the
// loader while the context is still unsealed.
type Registrar struct {
	ctx *Context
	// done bounds Apply. The lifecycle sets it to the Initialize context.
	done context.Context
}

func NewRegistrar(ctx *Context) *Registrar {
	return &Registrar{ctx: ctx, done: context.Background()}
}

func (r *Registrar) Context() *Context { return r.ctx }

func (r *Registrar) AddSpellScriptLoader(s SpellScriptLoader) error {
	return r.ctx.SpellLoaders.Register(s)
}

func (r *Registrar) AddServerScript(s ServerScript) error {
	return r.ctx.Servers.Register(s)
}

func (r *Registrar) AddWorldScript(s WorldScript) error {
	return r.ctx.Worlds.Register(s)
}

func (r *Registrar) AddFormulaScript(s FormulaScript) error {
	return r.ctx.Formulas.Register(s)
}

func (r *Registrar) AddWorldMapScript(s WorldMapScript) error {
	if !isNilScript(s) {
		r.checkMap(s, KindWorldMap, (*game.MapEntry).IsWorldMap)
	}
	return r.ctx.WorldMaps.Register(s)
}

func (r *Registrar) AddInstanceMapScript(s InstanceMapScript) error {
	if !isNilScript(s) {
		r.checkMap(s, KindInstanceMap, (*game.MapEntry).IsDungeon)
	}
	return r.ctx.InstanceMaps.Register(s)
}

func (r *Registrar) AddBattlegroundMapScript(s BattlegroundMapScript) error {
	if !isNilScript(s) {
		r.checkMap(s, KindBattlegroundMap, (*game.MapEntry).IsBattleground)
	}
	return r.ctx.BattlegroundMaps.Register(s)
}

func (r *Registrar) AddItemScript(s ItemScript) error {
	return r.ctx.Items.Register(s)
}

// AddCreatureScript registers s as a creature script and indexes it for unit
// hooks. The creature registry owns it.
func (r *Registrar) AddCreatureScript(s CreatureScript) error {
	err := r.ctx.Creatures.Register(s)
	if !indexableAfter(err) {
		return err
	}
	if uerr := r.ctx.Units.Register(s, WithoutOwnership()); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

func (r *Registrar) AddGameObjectScript(s GameObjectScript) error {
	return r.ctx.GameObjects.Register(s)
}

func (r *Registrar) AddAreaTriggerScript(s AreaTriggerScript) error {
	return r.ctx.AreaTriggers.Register(s)
}

func (r *Registrar) AddBattlegroundScript(s BattlegroundScript) error {
	return r.ctx.Battlegrounds.Register(s)
}

func (r *Registrar) AddOutdoorPvPScript(s OutdoorPvPScript) error {
	return r.ctx.OutdoorPvPs.Register(s)
}

func (r *Registrar) AddCommandScript(s CommandScript) error {
	return r.ctx.Commands.Register(s)
}

func (r *Registrar) AddWeatherScript(s WeatherScript) error {
	return r.ctx.Weathers.Register(s)
}

func (r *Registrar) AddAuctionHouseScript(s AuctionHouseScript) error {
	return r.ctx.AuctionHouses.Register(s)
}

func (r *Registrar) AddConditionScript(s ConditionScript) error {
	return r.ctx.Conditions.Register(s)
}

func (r *Registrar) AddVehicleScript(s VehicleScript) error {
	return r.ctx.Vehicles.Register(s)
}

func (r *Registrar) AddDynamicObjectScript(s DynamicObjectScript) error {
	return r.ctx.DynamicObjects.Register(s)
}

func (r *Registrar) AddTransportScript(s TransportScript) error {
	return r.ctx.Transports.Register(s)
}

func (r *Registrar) AddAchievementCriteriaScript(s AchievementCriteriaScript) error {
	return r.ctx.AchievementCriterias.Register(s)
}

// AddPlayerScript registers s as a player script and indexes it for unit
// hooks. The player registry owns it.
func (r *Registrar) AddPlayerScript(s PlayerScript) error {
	err := r.ctx.Players.Register(s)
	if !indexableAfter(err) {
		return err
	}
	if uerr := r.ctx.Units.Register(s, WithoutOwnership()); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

func (r *Registrar) AddAccountScript(s AccountScript) error {
	return r.ctx.Accounts.Register(s)
}

func (r *Registrar) AddGuildScript(s GuildScript) error {
	return r.ctx.Guilds.Register(s)
}

func (r *Registrar) AddGroupScript(s GroupScript) error {
	return r.ctx.Groups.Register(s)
}

func (r *Registrar) AddUnitScript(s UnitScript) error {
	return r.ctx.Units.Register(s)
}

// checkMap logs a region script whose map exists but is of another
// category. The script is registered anyway and will never fire.
func (r *Registrar) checkMap(s RegionScript, kind Kind, ok func(*game.MapEntry) bool) {
	entry, found := r.ctx.catalog.MapEntry(s.MapID())
	if !found || entry == nil || ok(entry) {
		return
	}
	r.ctx.env.log.Error("map script is bound to a map of another category",
		log.String("kind", kind.String()),
		log.String("script", s.Name()),
		log.Uint32("map", s.MapID()),
		log.String("category", entry.Category.String()),
	)
}

// indexableAfter reports whether a script may still be indexed for unit hooks
// after its own registration returned err. A name without an id still gets
// unit hooks; a dropped script gets nothing.
func indexableAfter(err error) bool {
	switch err {
	case nil, ErrNameNotBound:
		return true
	}
	return false
}
