package scripting

import "github.com/zeusync/scripthost/internal/core/game"

// Entity hooks are point lookups on the script id the content loader put on
// the entity. An entity with no bound script gets the documented default.

// Items

func (e *Engine) OnItemDummyEffect(caster *game.Unit, spellID uint32, effIndex game.SpellEffIndex, target *game.Item) bool {
	if target == nil {
		return false
	}
	return CallOr(e.ctx.Items, target.ScriptID, false, func(s ItemScript) bool {
		return s.OnDummyEffect(caster, spellID, effIndex, target)
	})
}

func (e *Engine) OnItemQuestAccept(player *game.Player, item *game.Item, quest *game.Quest) bool {
	if item == nil {
		return false
	}
	return CallOr(e.ctx.Items, item.ScriptID, false, func(s ItemScript) bool {
		clearMenu(player)
		return s.OnQuestAccept(player, item, quest)
	})
}

func (e *Engine) OnItemUse(player *game.Player, item *game.Item, targets *game.SpellCastTargets) bool {
	if item == nil {
		return false
	}
	return CallOr(e.ctx.Items, item.ScriptID, false, func(s ItemScript) bool {
		return s.OnUse(player, item, targets)
	})
}

// OnItemExpire looks the script up by the template, since the item itself is
// already gone.
func (e *Engine) OnItemExpire(player *game.Player, proto *game.ItemTemplate) bool {
	if proto == nil {
		return false
	}
	return CallOr(e.ctx.Items, proto.ScriptID, false, func(s ItemScript) bool {
		return s.OnExpire(player, proto)
	})
}

func (e *Engine) OnItemRemove(player *game.Player, item *game.Item) bool {
	if item == nil {
		return false
	}
	return CallOr(e.ctx.Items, item.ScriptID, false, func(s ItemScript) bool {
		return s.OnRemove(player, item)
	})
}

// Creatures

func (e *Engine) OnCreatureDummyEffect(caster *game.Unit, spellID uint32, effIndex game.SpellEffIndex, target *game.Creature) bool {
	if target == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, target.ScriptID, false, func(s CreatureScript) bool {
		return s.OnDummyEffect(caster, spellID, effIndex, target)
	})
}

func (e *Engine) OnCreatureGossipHello(player *game.Player, creature *game.Creature) bool {
	if creature == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, false, func(s CreatureScript) bool {
		clearMenu(player)
		return s.OnGossipHello(player, creature)
	})
}

func (e *Engine) OnCreatureGossipSelect(player *game.Player, creature *game.Creature, sender, action uint32) bool {
	if creature == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, false, func(s CreatureScript) bool {
		return s.OnGossipSelect(player, creature, sender, action)
	})
}

func (e *Engine) OnCreatureGossipSelectCode(player *game.Player, creature *game.Creature, sender, action uint32, code string) bool {
	if creature == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, false, func(s CreatureScript) bool {
		return s.OnGossipSelectCode(player, creature, sender, action, code)
	})
}

func (e *Engine) OnCreatureQuestAccept(player *game.Player, creature *game.Creature, quest *game.Quest) bool {
	if creature == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, false, func(s CreatureScript) bool {
		clearMenu(player)
		return s.OnQuestAccept(player, creature, quest)
	})
}

func (e *Engine) OnCreatureQuestSelect(player *game.Player, creature *game.Creature, quest *game.Quest) bool {
	if creature == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, false, func(s CreatureScript) bool {
		clearMenu(player)
		return s.OnQuestSelect(player, creature, quest)
	})
}

func (e *Engine) OnCreatureQuestReward(player *game.Player, creature *game.Creature, quest *game.Quest, opt uint32) bool {
	if creature == nil {
		return false
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, false, func(s CreatureScript) bool {
		clearMenu(player)
		return s.OnQuestReward(player, creature, quest, opt)
	})
}

func (e *Engine) GetCreatureDialogStatus(player *game.Player, creature *game.Creature) uint32 {
	if creature == nil {
		return game.DialogStatusScriptedNoStatus
	}
	return CallOr(e.ctx.Creatures, creature.ScriptID, game.DialogStatusScriptedNoStatus, func(s CreatureScript) uint32 {
		clearMenu(player)
		return s.GetDialogStatus(player, creature)
	})
}

// GetCreatureAI returns a new AI from the creature's script, or nil to let
// the simulation pick its default AI.
func (e *Engine) GetCreatureAI(creature *game.Creature) game.CreatureAI {
	if creature == nil {
		return nil
	}
	return CallOr[CreatureScript, game.CreatureAI](e.ctx.Creatures, creature.ScriptID, nil, func(s CreatureScript) game.CreatureAI {
		return s.NewAI(creature)
	})
}

func (e *Engine) OnCreatureUpdate(creature *game.Creature, diff uint32) {
	if creature == nil {
		return
	}
	Call(e.ctx.Creatures, creature.ScriptID, func(s CreatureScript) { s.OnUpdate(creature, diff) })
}

// Game objects

func (e *Engine) OnGameObjectDummyEffect(caster *game.Unit, spellID uint32, effIndex game.SpellEffIndex, target *game.GameObject) bool {
	if target == nil {
		return false
	}
	return CallOr(e.ctx.GameObjects, target.ScriptID, false, func(s GameObjectScript) bool {
		return s.OnDummyEffect(caster, spellID, effIndex, target)
	})
}

func (e *Engine) OnGameObjectGossipHello(player *game.Player, obj *game.GameObject) bool {
	if obj == nil {
		return false
	}
	return CallOr(e.ctx.GameObjects, obj.ScriptID, false, func(s GameObjectScript) bool {
		clearMenu(player)
		return s.OnGossipHello(player, obj)
	})
}

func (e *Engine) OnGameObjectGossipSelect(player *game.Player, obj *game.GameObject, sender, action uint32) bool {
	if obj == nil {
		return false
	}
	return CallOr(e.ctx.GameObjects, obj.ScriptID, false, func(s GameObjectScript) bool {
		return s.OnGossipSelect(player, obj, sender, action)
	})
}

func (e *Engine) OnGameObjectGossipSelectCode(player *game.Player, obj *game.GameObject, sender, action uint32, code string) bool {
	if obj == nil {
		return false
	}
	return CallOr(e.ctx.GameObjects, obj.ScriptID, false, func(s GameObjectScript) bool {
		return s.OnGossipSelectCode(player, obj, sender, action, code)
	})
}

func (e *Engine) OnGameObjectQuestAccept(player *game.Player, obj *game.GameObject, quest *game.Quest) bool {
	if obj == nil {
		return false
	}
	return CallOr(e.ctx.GameObjects, obj.ScriptID, false, func(s GameObjectScript) bool {
		clearMenu(player)
		return s.OnQuestAccept(player, obj, quest)
	})
}

func (e *Engine) OnGameObjectQuestReward(player *game.Player, obj *game.GameObject, quest *game.Quest, opt uint32) bool {
	if obj == nil {
		return false
	}
	return CallOr(e.ctx.GameObjects, obj.ScriptID, false, func(s GameObjectScript) bool {
		clearMenu(player)
		return s.OnQuestReward(player, obj, quest, opt)
	})
}

func (e *Engine) GetGameObjectDialogStatus(player *game.Player, obj *game.GameObject) uint32 {
	if obj == nil {
		return game.DialogStatusScriptedNoStatus
	}
	return CallOr(e.ctx.GameObjects, obj.ScriptID, game.DialogStatusScriptedNoStatus, func(s GameObjectScript) uint32 {
		clearMenu(player)
		return s.GetDialogStatus(player, obj)
	})
}

func (e *Engine) GetGameObjectAI(obj *game.GameObject) game.GameObjectAI {
	if obj == nil {
		return nil
	}
	return CallOr[GameObjectScript, game.GameObjectAI](e.ctx.GameObjects, obj.ScriptID, nil, func(s GameObjectScript) game.GameObjectAI {
		return s.NewAI(obj)
	})
}

func (e *Engine) OnGameObjectDestroyed(obj *game.GameObject, player *game.Player) {
	if obj == nil {
		return
	}
	Call(e.ctx.GameObjects, obj.ScriptID, func(s GameObjectScript) { s.OnDestroyed(obj, player) })
}

func (e *Engine) OnGameObjectDamaged(obj *game.GameObject, player *game.Player) {
	if obj == nil {
		return
	}
	Call(e.ctx.GameObjects, obj.ScriptID, func(s GameObjectScript) { s.OnDamaged(obj, player) })
}

func (e *Engine) OnGameObjectLootStateChanged(obj *game.GameObject, state uint32, unit *game.Unit) {
	if obj == nil {
		return
	}
	Call(e.ctx.GameObjects, obj.ScriptID, func(s GameObjectScript) { s.OnLootStateChanged(obj, state, unit) })
}

func (e *Engine) OnGameObjectStateChanged(obj *game.GameObject, state uint32) {
	if obj == nil {
		return
	}
	Call(e.ctx.GameObjects, obj.ScriptID, func(s GameObjectScript) { s.OnGameObjectStateChanged(obj, state) })
}

func (e *Engine) OnGameObjectUpdate(obj *game.GameObject, diff uint32) {
	if obj == nil {
		return
	}
	Call(e.ctx.GameObjects, obj.ScriptID, func(s GameObjectScript) { s.OnUpdate(obj, diff) })
}

// Area triggers, battlegrounds, outdoor PvP

func (e *Engine) OnAreaTrigger(player *game.Player, trigger *game.AreaTrigger) bool {
	if trigger == nil {
		return false
	}
	return CallOr(e.ctx.AreaTriggers, trigger.ScriptID, false, func(s AreaTriggerScript) bool {
		return s.OnTrigger(player, trigger)
	})
}

// CreateBattleground is not supported; battlegrounds are built by the
// simulation itself.
func (e *Engine) CreateBattleground(game.BattlegroundTypeID) (game.Battleground, error) {
	return nil, ErrNotImplemented
}

func (e *Engine) CreateOutdoorPvP(data *game.OutdoorPvPData) game.OutdoorPvP {
	if data == nil {
		return nil
	}
	return CallOr[OutdoorPvPScript, game.OutdoorPvP](e.ctx.OutdoorPvPs, data.ScriptID, nil, func(s OutdoorPvPScript) game.OutdoorPvP {
		return s.NewOutdoorPvP()
	})
}

// Weather

func (e *Engine) OnWeatherChange(weather *game.Weather, state game.WeatherState, grade float32) {
	if weather == nil {
		return
	}
	Call(e.ctx.Weathers, weather.ScriptID, func(s WeatherScript) { s.OnChange(weather, state, grade) })
}

func (e *Engine) OnWeatherUpdate(weather *game.Weather, diff uint32) {
	if weather == nil {
		return
	}
	Call(e.ctx.Weathers, weather.ScriptID, func(s WeatherScript) { s.OnUpdate(weather, diff) })
}

// Auction house

func (e *Engine) OnAuctionAdd(ah *game.AuctionHouse, entry *game.AuctionEntry) {
	Broadcast(e.ctx.AuctionHouses, func(s AuctionHouseScript) { s.OnAuctionAdd(ah, entry) })
}

func (e *Engine) OnAuctionRemove(ah *game.AuctionHouse, entry *game.AuctionEntry) {
	Broadcast(e.ctx.AuctionHouses, func(s AuctionHouseScript) { s.OnAuctionRemove(ah, entry) })
}

func (e *Engine) OnAuctionSuccessful(ah *game.AuctionHouse, entry *game.AuctionEntry) {
	Broadcast(e.ctx.AuctionHouses, func(s AuctionHouseScript) { s.OnAuctionSuccessful(ah, entry) })
}

func (e *Engine) OnAuctionExpire(ah *game.AuctionHouse, entry *game.AuctionEntry) {
	Broadcast(e.ctx.AuctionHouses, func(s AuctionHouseScript) { s.OnAuctionExpire(ah, entry) })
}

// Conditions and achievement criteria

// OnConditionCheck passes when no script is bound to the condition.
func (e *Engine) OnConditionCheck(cond *game.Condition, source *game.ConditionSourceInfo) bool {
	if cond == nil {
		return true
	}
	return CallOr(e.ctx.Conditions, cond.ScriptID, true, func(s ConditionScript) bool {
		return s.OnConditionCheck(cond, source)
	})
}

// OnCriteriaCheck fails when no script is bound. target may be nil.
func (e *Engine) OnCriteriaCheck(scriptID uint32, source *game.Player, target *game.Unit) bool {
	return CallOr(e.ctx.AchievementCriterias, scriptID, false, func(s AchievementCriteriaScript) bool {
		return s.OnCheck(source, target)
	})
}

// Vehicles are looked up by the script id of their base creature.

func (e *Engine) vehicle(veh *game.Vehicle, fn func(VehicleScript)) {
	if veh == nil || veh.Base == nil {
		return
	}
	Call(e.ctx.Vehicles, veh.Base.ScriptID, fn)
}

func (e *Engine) OnVehicleInstall(veh *game.Vehicle) {
	e.vehicle(veh, func(s VehicleScript) { s.OnInstall(veh) })
}

func (e *Engine) OnVehicleUninstall(veh *game.Vehicle) {
	e.vehicle(veh, func(s VehicleScript) { s.OnUninstall(veh) })
}

func (e *Engine) OnVehicleReset(veh *game.Vehicle) {
	e.vehicle(veh, func(s VehicleScript) { s.OnReset(veh) })
}

func (e *Engine) OnVehicleInstallAccessory(veh *game.Vehicle, accessory *game.Creature) {
	e.vehicle(veh, func(s VehicleScript) { s.OnInstallAccessory(veh, accessory) })
}

func (e *Engine) OnVehicleAddPassenger(veh *game.Vehicle, passenger *game.Unit, seatID int8) {
	e.vehicle(veh, func(s VehicleScript) { s.OnAddPassenger(veh, passenger, seatID) })
}

func (e *Engine) OnVehicleRemovePassenger(veh *game.Vehicle, passenger *game.Unit) {
	e.vehicle(veh, func(s VehicleScript) { s.OnRemovePassenger(veh, passenger) })
}

// Dynamic objects

func (e *Engine) OnDynamicObjectUpdate(obj *game.DynamicObject, diff uint32) {
	Broadcast(e.ctx.DynamicObjects, func(s DynamicObjectScript) { s.OnUpdate(obj, diff) })
}

// Transports

func (e *Engine) OnTransportAddPassenger(transport *game.Transport, player *game.Player) {
	if transport == nil {
		return
	}
	Call(e.ctx.Transports, transport.ScriptID, func(s TransportScript) { s.OnAddPassenger(transport, player) })
}

func (e *Engine) OnTransportAddCreaturePassenger(transport *game.Transport, creature *game.Creature) {
	if transport == nil {
		return
	}
	Call(e.ctx.Transports, transport.ScriptID, func(s TransportScript) { s.OnAddCreaturePassenger(transport, creature) })
}

func (e *Engine) OnTransportRemovePassenger(transport *game.Transport, player *game.Player) {
	if transport == nil {
		return
	}
	Call(e.ctx.Transports, transport.ScriptID, func(s TransportScript) { s.OnRemovePassenger(transport, player) })
}

func (e *Engine) OnTransportUpdate(transport *game.Transport, diff uint32) {
	if transport == nil {
		return
	}
	Call(e.ctx.Transports, transport.ScriptID, func(s TransportScript) { s.OnUpdate(transport, diff) })
}

func (e *Engine) OnTransportRelocate(transport *game.Transport, waypointID, mapID uint32, x, y, z float32) {
	if transport == nil {
		return
	}
	Call(e.ctx.Transports, transport.ScriptID, func(s TransportScript) {
		s.OnRelocate(transport, waypointID, mapID, x, y, z)
	})
}

func clearMenu(player *game.Player) {
	if player != nil {
		player.Menu.Clear()
	}
}
