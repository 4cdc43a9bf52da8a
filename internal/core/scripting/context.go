package scripting

import (
	"cmp"
	"encoding/binary"
	"slices"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/scripthost/internal/core/game"
	"github.com/zeusync/scripthost/internal/core/observability/log"
)

// MapCatalog describes the maps scripts can be bound to.
type MapCatalog interface {
	MapEntry(id uint32) (*game.MapEntry, bool)
}

// Context holds one registry per kind. It is built once at startup, filled
// through a Registrar and sealed before any dispatch happens.
type Context struct {
	env     *environment
	catalog MapCatalog

	SpellLoaders         *Registry[SpellScriptLoader]
	Servers              *Registry[ServerScript]
	Worlds               *Registry[WorldScript]
	Formulas             *Registry[FormulaScript]
	WorldMaps            *Registry[WorldMapScript]
	InstanceMaps         *Registry[InstanceMapScript]
	BattlegroundMaps     *Registry[BattlegroundMapScript]
	Items                *Registry[ItemScript]
	Creatures            *Registry[CreatureScript]
	GameObjects          *Registry[GameObjectScript]
	AreaTriggers         *Registry[AreaTriggerScript]
	Battlegrounds        *Registry[BattlegroundScript]
	OutdoorPvPs          *Registry[OutdoorPvPScript]
	Commands             *Registry[CommandScript]
	Weathers             *Registry[WeatherScript]
	AuctionHouses        *Registry[AuctionHouseScript]
	Conditions           *Registry[ConditionScript]
	Vehicles             *Registry[VehicleScript]
	DynamicObjects       *Registry[DynamicObjectScript]
	Transports           *Registry[TransportScript]
	AchievementCriterias *Registry[AchievementCriteriaScript]
	Players              *Registry[PlayerScript]
	Accounts             *Registry[AccountScript]
	Guilds               *Registry[GuildScript]
	Groups               *Registry[GroupScript]
	Units                *Registry[UnitScript]
}

// NewContext builds an empty, unsealed context. A nil resolver resolves
// nothing; a nil catalog knows no maps.
func NewContext(resolver Resolver, catalog MapCatalog, logger log.Log) *Context {
	if resolver == nil {
		resolver = emptyDirectory{}
	}
	if catalog == nil {
		catalog = emptyDirectory{}
	}
	if logger == nil {
		logger = log.NewNop()
	}

	env := &environment{
		resolver:   resolver,
		unresolved: make(map[string]struct{}),
		log:        logger,
	}
	if lister, ok := resolver.(NameLister); ok {
		for _, name := range lister.Names() {
			env.unresolved[name] = struct{}{}
		}
	}

	return &Context{
		env:     env,
		catalog: catalog,

		SpellLoaders:         newRegistry[SpellScriptLoader](KindSpellScriptLoader, env),
		Servers:              newRegistry[ServerScript](KindServer, env),
		Worlds:               newRegistry[WorldScript](KindWorld, env),
		Formulas:             newRegistry[FormulaScript](KindFormula, env),
		WorldMaps:            newRegistry[WorldMapScript](KindWorldMap, env),
		InstanceMaps:         newRegistry[InstanceMapScript](KindInstanceMap, env),
		BattlegroundMaps:     newRegistry[BattlegroundMapScript](KindBattlegroundMap, env),
		Items:                newRegistry[ItemScript](KindItem, env),
		Creatures:            newRegistry[CreatureScript](KindCreature, env),
		GameObjects:          newRegistry[GameObjectScript](KindGameObject, env),
		AreaTriggers:         newRegistry[AreaTriggerScript](KindAreaTrigger, env),
		Battlegrounds:        newRegistry[BattlegroundScript](KindBattleground, env),
		OutdoorPvPs:          newRegistry[OutdoorPvPScript](KindOutdoorPvP, env),
		Commands:             newRegistry[CommandScript](KindCommand, env),
		Weathers:             newRegistry[WeatherScript](KindWeather, env),
		AuctionHouses:        newRegistry[AuctionHouseScript](KindAuctionHouse, env),
		Conditions:           newRegistry[ConditionScript](KindCondition, env),
		Vehicles:             newRegistry[VehicleScript](KindVehicle, env),
		DynamicObjects:       newRegistry[DynamicObjectScript](KindDynamicObject, env),
		Transports:           newRegistry[TransportScript](KindTransport, env),
		AchievementCriterias: newRegistry[AchievementCriteriaScript](KindAchievementCriteria, env),
		Players:              newRegistry[PlayerScript](KindPlayer, env),
		Accounts:             newRegistry[AccountScript](KindAccount, env),
		Guilds:               newRegistry[GuildScript](KindGuild, env),
		Groups:               newRegistry[GroupScript](KindGroup, env),
		Units:                newRegistry[UnitScript](KindUnit, env),
	}
}

// Seal makes every registry read-only. It cannot be undone.
func (c *Context) Seal() { c.env.sealed.Store(true) }

func (c *Context) Sealed() bool { return c.env.sealed.Load() }

// ScriptCount is the number of successful registrations across all kinds.
func (c *Context) ScriptCount() uint32 { return c.env.count.Load() }

// UnresolvedNames returns, sorted, the directory names no script claimed.
func (c *Context) UnresolvedNames() []string {
	out := make([]string, 0, len(c.env.unresolved))
	for name := range c.env.unresolved {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Fingerprint digests every (kind, id, name) binding. Two processes built
// from the same scripts and content report the same value.
func (c *Context) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [4]byte
	for _, k := range Kinds() {
		bs := c.registry(k).bindings()
		slices.SortFunc(bs, func(a, b binding) int {
			return cmp.Or(cmp.Compare(a.id, b.id), strings.Compare(a.name, b.name))
		})
		for _, b := range bs {
			_, _ = d.WriteString(k.String())
			binary.LittleEndian.PutUint32(buf[:], b.id)
			_, _ = d.Write(buf[:])
			_, _ = d.WriteString(b.name)
			_, _ = d.Write([]byte{0})
		}
	}
	return d.Sum64()
}

// registryView is the kind-erased part of a Registry the lifecycle needs.
type registryView interface {
	Kind() Kind
	Len() int
	Owned() int
	TeardownAll()
	bindings() []binding
}

func (c *Context) registry(k Kind) registryView {
	switch k {
	case KindSpellScriptLoader:
		return c.SpellLoaders
	case KindServer:
		return c.Servers
	case KindWorld:
		return c.Worlds
	case KindFormula:
		return c.Formulas
	case KindWorldMap:
		return c.WorldMaps
	case KindInstanceMap:
		return c.InstanceMaps
	case KindBattlegroundMap:
		return c.BattlegroundMaps
	case KindItem:
		return c.Items
	case KindCreature:
		return c.Creatures
	case KindGameObject:
		return c.GameObjects
	case KindAreaTrigger:
		return c.AreaTriggers
	case KindBattleground:
		return c.Battlegrounds
	case KindOutdoorPvP:
		return c.OutdoorPvPs
	case KindCommand:
		return c.Commands
	case KindWeather:
		return c.Weathers
	case KindAuctionHouse:
		return c.AuctionHouses
	case KindCondition:
		return c.Conditions
	case KindVehicle:
		return c.Vehicles
	case KindDynamicObject:
		return c.DynamicObjects
	case KindTransport:
		return c.Transports
	case KindAchievementCriteria:
		return c.AchievementCriterias
	case KindPlayer:
		return c.Players
	case KindAccount:
		return c.Accounts
	case KindGuild:
		return c.Guilds
	case KindGroup:
		return c.Groups
	case KindUnit:
		return c.Units
	}
	return nil
}

// duplicateRegions reports map ids bound by more than one script of a region
// kind. Only the first of them can ever fire.
func duplicateRegions[T RegionScript](r *Registry[T]) map[uint32][]string {
	seen := make(map[uint32][]string)
	r.Each(func(s T) {
		seen[s.MapID()] = append(seen[s.MapID()], s.Name())
	})
	for id, names := range seen {
		if len(names) < 2 {
			delete(seen, id)
		}
	}
	return seen
}

type emptyDirectory struct{}

func (emptyDirectory) ResolveID(string) (uint32, bool)        { return 0, false }
func (emptyDirectory) MapEntry(uint32) (*game.MapEntry, bool) { return nil, false }
