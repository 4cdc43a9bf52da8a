package scripting

import "github.com/zeusync/scripthost/internal/core/game"

type ItemScript interface {
	Script
	OnDummyEffect(caster *game.Unit, spellID uint32, effIndex game.SpellEffIndex, target *game.Item) bool
	OnQuestAccept(player *game.Player, item *game.Item, quest *game.Quest) bool
	OnUse(player *game.Player, item *game.Item, targets *game.SpellCastTargets) bool
	OnExpire(player *game.Player, proto *game.ItemTemplate) bool
	OnRemove(player *game.Player, item *game.Item) bool
}

type ItemScriptBase struct{ Named }

func NewItemScriptBase(name string) ItemScriptBase { return ItemScriptBase{Named(name)} }

func (ItemScriptBase) OnDummyEffect(*game.Unit, uint32, game.SpellEffIndex, *game.Item) bool {
	return false
}
func (ItemScriptBase) OnQuestAccept(*game.Player, *game.Item, *game.Quest) bool    { return false }
func (ItemScriptBase) OnUse(*game.Player, *game.Item, *game.SpellCastTargets) bool { return false }
func (ItemScriptBase) OnExpire(*game.Player, *game.ItemTemplate) bool              { return false }
func (ItemScriptBase) OnRemove(*game.Player, *game.Item) bool                      { return false }

// CreatureScript binds behavior to creatures by script id. Creature scripts
// also receive unit hooks.
type CreatureScript interface {
	UnitScript
	OnDummyEffect(caster *game.Unit, spellID uint32, effIndex game.SpellEffIndex, target *game.Creature) bool
	OnGossipHello(player *game.Player, creature *game.Creature) bool
	OnGossipSelect(player *game.Player, creature *game.Creature, sender, action uint32) bool
	OnGossipSelectCode(player *game.Player, creature *game.Creature, sender, action uint32, code string) bool
	OnQuestAccept(player *game.Player, creature *game.Creature, quest *game.Quest) bool
	OnQuestSelect(player *game.Player, creature *game.Creature, quest *game.Quest) bool
	OnQuestReward(player *game.Player, creature *game.Creature, quest *game.Quest, opt uint32) bool
	GetDialogStatus(player *game.Player, creature *game.Creature) uint32
	OnUpdate(creature *game.Creature, diff uint32)
	NewAI(creature *game.Creature) game.CreatureAI
}

type CreatureScriptBase struct{ UnitScriptBase }

func NewCreatureScriptBase(name string) CreatureScriptBase {
	return CreatureScriptBase{NewUnitScriptBase(name)}
}

func (CreatureScriptBase) OnDummyEffect(*game.Unit, uint32, game.SpellEffIndex, *game.Creature) bool {
	return false
}
func (CreatureScriptBase) OnGossipHello(*game.Player, *game.Creature) bool { return false }
func (CreatureScriptBase) OnGossipSelect(*game.Player, *game.Creature, uint32, uint32) bool {
	return false
}
func (CreatureScriptBase) OnGossipSelectCode(*game.Player, *game.Creature, uint32, uint32, string) bool {
	return false
}
func (CreatureScriptBase) OnQuestAccept(*game.Player, *game.Creature, *game.Quest) bool { return false }
func (CreatureScriptBase) OnQuestSelect(*game.Player, *game.Creature, *game.Quest) bool { return false }
func (CreatureScriptBase) OnQuestReward(*game.Player, *game.Creature, *game.Quest, uint32) bool {
	return false
}
func (CreatureScriptBase) GetDialogStatus(*game.Player, *game.Creature) uint32 {
	return game.DialogStatusScriptedNoStatus
}
func (CreatureScriptBase) OnUpdate(*game.Creature, uint32)      {}
func (CreatureScriptBase) NewAI(*game.Creature) game.CreatureAI { return nil }

type GameObjectScript interface {
	Script
	OnDummyEffect(caster *game.Unit, spellID uint32, effIndex game.SpellEffIndex, target *game.GameObject) bool
	OnGossipHello(player *game.Player, obj *game.GameObject) bool
	OnGossipSelect(player *game.Player, obj *game.GameObject, sender, action uint32) bool
	OnGossipSelectCode(player *game.Player, obj *game.GameObject, sender, action uint32, code string) bool
	OnQuestAccept(player *game.Player, obj *game.GameObject, quest *game.Quest) bool
	OnQuestReward(player *game.Player, obj *game.GameObject, quest *game.Quest, opt uint32) bool
	GetDialogStatus(player *game.Player, obj *game.GameObject) uint32
	OnDestroyed(obj *game.GameObject, player *game.Player)
	OnDamaged(obj *game.GameObject, player *game.Player)
	OnLootStateChanged(obj *game.GameObject, state uint32, unit *game.Unit)
	OnGameObjectStateChanged(obj *game.GameObject, state uint32)
	OnUpdate(obj *game.GameObject, diff uint32)
	NewAI(obj *game.GameObject) game.GameObjectAI
}

type GameObjectScriptBase struct{ Named }

func NewGameObjectScriptBase(name string) GameObjectScriptBase {
	return GameObjectScriptBase{Named(name)}
}

func (GameObjectScriptBase) OnDummyEffect(*game.Unit, uint32, game.SpellEffIndex, *game.GameObject) bool {
	return false
}
func (GameObjectScriptBase) OnGossipHello(*game.Player, *game.GameObject) bool { return false }
func (GameObjectScriptBase) OnGossipSelect(*game.Player, *game.GameObject, uint32, uint32) bool {
	return false
}
func (GameObjectScriptBase) OnGossipSelectCode(*game.Player, *game.GameObject, uint32, uint32, string) bool {
	return false
}
func (GameObjectScriptBase) OnQuestAccept(*game.Player, *game.GameObject, *game.Quest) bool {
	return false
}
func (GameObjectScriptBase) OnQuestReward(*game.Player, *game.GameObject, *game.Quest, uint32) bool {
	return false
}
func (GameObjectScriptBase) GetDialogStatus(*game.Player, *game.GameObject) uint32 {
	return game.DialogStatusScriptedNoStatus
}
func (GameObjectScriptBase) OnDestroyed(*game.GameObject, *game.Player)              {}
func (GameObjectScriptBase) OnDamaged(*game.GameObject, *game.Player)                {}
func (GameObjectScriptBase) OnLootStateChanged(*game.GameObject, uint32, *game.Unit) {}
func (GameObjectScriptBase) OnGameObjectStateChanged(*game.GameObject, uint32)       {}
func (GameObjectScriptBase) OnUpdate(*game.GameObject, uint32)                       {}
func (GameObjectScriptBase) NewAI(*game.GameObject) game.GameObjectAI                { return nil }

type AreaTriggerScript interface {
	Script
	OnTrigger(player *game.Player, trigger *game.AreaTrigger) bool
}

type AreaTriggerScriptBase struct{ Named }

func NewAreaTriggerScriptBase(name string) AreaTriggerScriptBase {
	return AreaTriggerScriptBase{Named(name)}
}

func (AreaTriggerScriptBase) OnTrigger(*game.Player, *game.AreaTrigger) bool { return false }

type BattlegroundScript interface {
	Script
	NewBattleground() game.Battleground
}

type BattlegroundScriptBase struct{ Named }

func NewBattlegroundScriptBase(name string) BattlegroundScriptBase {
	return BattlegroundScriptBase{Named(name)}
}

func (BattlegroundScriptBase) NewBattleground() game.Battleground { return nil }

type OutdoorPvPScript interface {
	Script
	NewOutdoorPvP() game.OutdoorPvP
}

type OutdoorPvPScriptBase struct{ Named }

func NewOutdoorPvPScriptBase(name string) OutdoorPvPScriptBase {
	return OutdoorPvPScriptBase{Named(name)}
}

func (OutdoorPvPScriptBase) NewOutdoorPvP() game.OutdoorPvP { return nil }

// CommandScript contributes chat commands to the server command table.
type CommandScript interface {
	Script
	Commands() []game.ChatCommand
}

type CommandScriptBase struct{ Named }

func NewCommandScriptBase(name string) CommandScriptBase { return CommandScriptBase{Named(name)} }

func (CommandScriptBase) Commands() []game.ChatCommand { return nil }

type WeatherScript interface {
	Script
	OnChange(weather *game.Weather, state game.WeatherState, grade float32)
	OnUpdate(weather *game.Weather, diff uint32)
}

type WeatherScriptBase struct{ Named }

func NewWeatherScriptBase(name string) WeatherScriptBase { return WeatherScriptBase{Named(name)} }

func (WeatherScriptBase) OnChange(*game.Weather, game.WeatherState, float32) {}
func (WeatherScriptBase) OnUpdate(*game.Weather, uint32)                     {}

type AuctionHouseScript interface {
	Script
	OnAuctionAdd(ah *game.AuctionHouse, entry *game.AuctionEntry)
	OnAuctionRemove(ah *game.AuctionHouse, entry *game.AuctionEntry)
	OnAuctionSuccessful(ah *game.AuctionHouse, entry *game.AuctionEntry)
	OnAuctionExpire(ah *game.AuctionHouse, entry *game.AuctionEntry)
}

type AuctionHouseScriptBase struct{ Named }

func NewAuctionHouseScriptBase(name string) AuctionHouseScriptBase {
	return AuctionHouseScriptBase{Named(name)}
}

func (AuctionHouseScriptBase) OnAuctionAdd(*game.AuctionHouse, *game.AuctionEntry)        {}
func (AuctionHouseScriptBase) OnAuctionRemove(*game.AuctionHouse, *game.AuctionEntry)     {}
func (AuctionHouseScriptBase) OnAuctionSuccessful(*game.AuctionHouse, *game.AuctionEntry) {}
func (AuctionHouseScriptBase) OnAuctionExpire(*game.AuctionHouse, *game.AuctionEntry)     {}

type ConditionScript interface {
	Script
	OnConditionCheck(cond *game.Condition, source *game.ConditionSourceInfo) bool
}

type ConditionScriptBase struct{ Named }

func NewConditionScriptBase(name string) ConditionScriptBase {
	return ConditionScriptBase{Named(name)}
}

func (ConditionScriptBase) OnConditionCheck(*game.Condition, *game.ConditionSourceInfo) bool {
	return true
}

type VehicleScript interface {
	Script
	OnInstall(veh *game.Vehicle)
	OnUninstall(veh *game.Vehicle)
	OnReset(veh *game.Vehicle)
	OnInstallAccessory(veh *game.Vehicle, accessory *game.Creature)
	OnAddPassenger(veh *game.Vehicle, passenger *game.Unit, seatID int8)
	OnRemovePassenger(veh *game.Vehicle, passenger *game.Unit)
}

type VehicleScriptBase struct{ Named }

func NewVehicleScriptBase(name string) VehicleScriptBase { return VehicleScriptBase{Named(name)} }

func (VehicleScriptBase) OnInstall(*game.Vehicle)                          {}
func (VehicleScriptBase) OnUninstall(*game.Vehicle)                        {}
func (VehicleScriptBase) OnReset(*game.Vehicle)                            {}
func (VehicleScriptBase) OnInstallAccessory(*game.Vehicle, *game.Creature) {}
func (VehicleScriptBase) OnAddPassenger(*game.Vehicle, *game.Unit, int8)   {}
func (VehicleScriptBase) OnRemovePassenger(*game.Vehicle, *game.Unit)      {}

type DynamicObjectScript interface {
	Script
	OnUpdate(obj *game.DynamicObject, diff uint32)
}

type DynamicObjectScriptBase struct{ Named }

func NewDynamicObjectScriptBase(name string) DynamicObjectScriptBase {
	return DynamicObjectScriptBase{Named(name)}
}

func (DynamicObjectScriptBase) OnUpdate(*game.DynamicObject, uint32) {}

type TransportScript interface {
	Script
	OnAddPassenger(transport *game.Transport, player *game.Player)
	OnAddCreaturePassenger(transport *game.Transport, creature *game.Creature)
	OnRemovePassenger(transport *game.Transport, player *game.Player)
	OnUpdate(transport *game.Transport, diff uint32)
	OnRelocate(transport *game.Transport, waypointID, mapID uint32, x, y, z float32)
}

type TransportScriptBase struct{ Named }

func NewTransportScriptBase(name string) TransportScriptBase {
	return TransportScriptBase{Named(name)}
}

func (TransportScriptBase) OnAddPassenger(*game.Transport, *game.Player)                          {}
func (TransportScriptBase) OnAddCreaturePassenger(*game.Transport, *game.Creature)                {}
func (TransportScriptBase) OnRemovePassenger(*game.Transport, *game.Player)                       {}
func (TransportScriptBase) OnUpdate(*game.Transport, uint32)                                      {}
func (TransportScriptBase) OnRelocate(*game.Transport, uint32, uint32, float32, float32, float32) {}

// AchievementCriteriaScript decides scripted achievement criteria. Target may
// be nil.
type AchievementCriteriaScript interface {
	Script
	OnCheck(source *game.Player, target *game.Unit) bool
}

type AchievementCriteriaScriptBase struct{ Named }

func NewAchievementCriteriaScriptBase(name string) AchievementCriteriaScriptBase {
	return AchievementCriteriaScriptBase{Named(name)}
}

func (AchievementCriteriaScriptBase) OnCheck(*game.Player, *game.Unit) bool { return false }
