// Package game holds the simulation types that script hooks receive. The
// simulation owns their lifecycle; this module only reads the script IDs the
// content loader placed on them.
package game

type ObjectGUID uint64

type Unit struct {
	GUID   ObjectGUID
	Entry  uint32
	Level  uint8
	Health uint32
}

type Player struct {
	Unit
	Name      string
	AccountID uint32
	Money     int64
	ZoneID    uint32
	AreaID    uint32
	Menu      GossipMenu
}

type Creature struct {
	Unit
	ScriptID uint32
}

type Item struct {
	GUID     ObjectGUID
	Entry    uint32
	ScriptID uint32
}

type ItemTemplate struct {
	Entry    uint32
	Name     string
	ScriptID uint32
}

type GameObject struct {
	GUID     ObjectGUID
	Entry    uint32
	State    uint32
	ScriptID uint32
}

type DynamicObject struct {
	GUID    ObjectGUID
	SpellID uint32
}

type Quest struct {
	ID    uint32
	Title string
}

type QuestStatus uint8

const (
	QuestStatusNone QuestStatus = iota
	QuestStatusComplete
	QuestStatusIncomplete
	QuestStatusFailed
	QuestStatusRewarded
)

// DialogStatusScriptedNoStatus is returned for dialog status queries when no
// script is bound to the NPC or object.
const DialogStatusScriptedNoStatus uint32 = 0x1000

// GossipMenu is the per-player menu scripts fill during gossip hooks.
type GossipMenu struct {
	Options []GossipOption
}

type GossipOption struct {
	Icon   uint8
	Text   string
	Sender uint32
	Action uint32
}

func (m *GossipMenu) Add(opt GossipOption) {
	m.Options = append(m.Options, opt)
}

func (m *GossipMenu) Clear() {
	m.Options = m.Options[:0]
}

type AreaTrigger struct {
	ID       uint32
	MapID    uint32
	ScriptID uint32
}

type Weather struct {
	ZoneID   uint32
	State    WeatherState
	Grade    float32
	ScriptID uint32
}

type WeatherState uint32

const (
	WeatherStateFine WeatherState = iota
	WeatherStateFog
	WeatherStateLightRain
	WeatherStateMediumRain
	WeatherStateHeavyRain
)

type Vehicle struct {
	Base  *Creature
	Seats int
}

type Transport struct {
	GUID     ObjectGUID
	Entry    uint32
	ScriptID uint32
}

type Condition struct {
	ID       uint32
	ScriptID uint32
}

type ConditionSourceInfo struct {
	Objects             [3]any
	LastFailedCondition *Condition
}

type OutdoorPvPData struct {
	TypeID   uint32
	ScriptID uint32
}

// OutdoorPvP is a zone-wide PvP controller produced by an outdoor PvP script.
type OutdoorPvP interface {
	TypeID() uint32
}

// Battleground is produced by a battleground script.
type Battleground interface {
	TypeID() uint32
}

type BattlegroundTypeID uint32

// CreatureAI drives a single creature; scripts return a fresh one per creature.
type CreatureAI interface {
	UpdateAI(diff uint32)
}

type GameObjectAI interface {
	UpdateAI(diff uint32)
}

// InstanceScript keeps per-instance encounter state.
type InstanceScript interface {
	Initialize()
}
