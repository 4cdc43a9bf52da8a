package scripting

// IdentityMode decides how a registry keys its scripts.
type IdentityMode uint8

const (
	// NameBound scripts take their id from the directory, by name.
	NameBound IdentityMode = iota
	// SequentialBound scripts get an in-process counter value starting at 0.
	SequentialBound
)

func (m IdentityMode) String() string {
	if m == NameBound {
		return "name-bound"
	}
	return "sequential"
}

// Kind is one extension point scripts can attach to.
type Kind uint8

const (
	KindSpellScriptLoader Kind = iota
	KindServer
	KindWorld
	KindFormula
	KindWorldMap
	KindInstanceMap
	KindBattlegroundMap
	KindItem
	KindCreature
	KindGameObject
	KindAreaTrigger
	KindBattleground
	KindOutdoorPvP
	KindCommand
	KindWeather
	KindAuctionHouse
	KindCondition
	KindVehicle
	KindDynamicObject
	KindTransport
	KindAchievementCriteria
	KindPlayer
	KindAccount
	KindGuild
	KindGroup
	KindUnit

	kindCount
)

type kindInfo struct {
	name string
	mode IdentityMode
}

var kinds = [kindCount]kindInfo{
	KindSpellScriptLoader:   {"SpellScriptLoader", NameBound},
	KindServer:              {"ServerScript", SequentialBound},
	KindWorld:               {"WorldScript", SequentialBound},
	KindFormula:             {"FormulaScript", SequentialBound},
	KindWorldMap:            {"WorldMapScript", SequentialBound},
	KindInstanceMap:         {"InstanceMapScript", NameBound},
	KindBattlegroundMap:     {"BattlegroundMapScript", SequentialBound},
	KindItem:                {"ItemScript", NameBound},
	KindCreature:            {"CreatureScript", NameBound},
	KindGameObject:          {"GameObjectScript", NameBound},
	KindAreaTrigger:         {"AreaTriggerScript", NameBound},
	KindBattleground:        {"BattlegroundScript", NameBound},
	KindOutdoorPvP:          {"OutdoorPvPScript", NameBound},
	KindCommand:             {"CommandScript", SequentialBound},
	KindWeather:             {"WeatherScript", NameBound},
	KindAuctionHouse:        {"AuctionHouseScript", SequentialBound},
	KindCondition:           {"ConditionScript", NameBound},
	KindVehicle:             {"VehicleScript", SequentialBound},
	KindDynamicObject:       {"DynamicObjectScript", SequentialBound},
	KindTransport:           {"TransportScript", NameBound},
	KindAchievementCriteria: {"AchievementCriteriaScript", NameBound},
	KindPlayer:              {"PlayerScript", SequentialBound},
	KindAccount:             {"AccountScript", SequentialBound},
	KindGuild:               {"GuildScript", SequentialBound},
	KindGroup:               {"GroupScript", SequentialBound},
	KindUnit:                {"UnitScript", SequentialBound},
}

func (k Kind) String() string {
	if k >= kindCount {
		return "UnknownScript"
	}
	return kinds[k].name
}

// Mode returns the identity mode registries of this kind use.
func (k Kind) Mode() IdentityMode {
	if k >= kindCount {
		return SequentialBound
	}
	return kinds[k].mode
}

func (k Kind) Valid() bool { return k < kindCount }

// ParseKind looks a kind up by its String form.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns every kind in teardown order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
