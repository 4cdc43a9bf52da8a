package game

// MapCategory classifies a map entry. Exactly one category applies to a map.
type MapCategory uint8

const (
	MapCategoryNone MapCategory = iota
	MapCategoryWorld
	MapCategoryDungeon
	MapCategoryBattleground
)

func (c MapCategory) String() string {
	switch c {
	case MapCategoryWorld:
		return "world"
	case MapCategoryDungeon:
		return "dungeon"
	case MapCategoryBattleground:
		return "battleground"
	default:
		return "none"
	}
}

// ParseMapCategory is the inverse of MapCategory.String.
func ParseMapCategory(s string) (MapCategory, bool) {
	switch s {
	case "world":
		return MapCategoryWorld, true
	case "dungeon", "instance":
		return MapCategoryDungeon, true
	case "battleground":
		return MapCategoryBattleground, true
	default:
		return MapCategoryNone, false
	}
}

type MapEntry struct {
	ID       uint32
	Name     string
	Category MapCategory
}

func (e *MapEntry) IsWorldMap() bool     { return e != nil && e.Category == MapCategoryWorld }
func (e *MapEntry) IsDungeon() bool      { return e != nil && e.Category == MapCategoryDungeon }
func (e *MapEntry) IsBattleground() bool { return e != nil && e.Category == MapCategoryBattleground }

// Map is a live map instance. Entry is nil for maps missing from the catalog.
type Map struct {
	ID         uint32
	InstanceID uint32
	Entry      *MapEntry
	ScriptID   uint32
}

type GridMap struct {
	X, Y uint32
}

type Difficulty uint8

type ShutdownExitCode uint8

const (
	ExitCodeShutdown ShutdownExitCode = iota
	ExitCodeError
	ExitCodeRestart
)

type ShutdownMask uint32

const (
	ShutdownMaskRestart ShutdownMask = 1 << iota
	ShutdownMaskIdle
)

type XPColor uint8

const (
	XPColorRed XPColor = iota
	XPColorOrange
	XPColorYellow
	XPColorGreen
	XPColorGray
)

type ContentLevels uint8

type DuelCompleteType uint8

const (
	DuelInterrupted DuelCompleteType = iota
	DuelWon
	DuelFled
)

type RemoveMethod uint8

const (
	GroupRemoveDefault RemoveMethod = iota
	GroupRemoveKick
	GroupRemoveLeave
	GroupRemoveKickLFG
)

type SpellEffIndex uint8

type Spell struct {
	ID     uint32
	Caster *Unit
}

type SpellCastTargets struct {
	Unit       *Unit
	GameObject *GameObject
	Item       *Item
}

type Guild struct {
	ID   uint32
	Name string
	MOTD string
}

type Group struct {
	ID     uint32
	Leader ObjectGUID
	Raid   bool
}

type Channel struct {
	Name string
}

type AuctionHouse struct {
	FactionID uint32
}

type AuctionEntry struct {
	ID     uint32
	ItemID ObjectGUID
	Bid    uint32
	Buyout uint32
}

// Packet is a raw network message. Hooks receive a copy they may modify.
type Packet struct {
	Opcode  uint16
	Payload []byte
}

// Clone returns a deep copy of the packet.
func (p Packet) Clone() Packet {
	out := Packet{Opcode: p.Opcode}
	if p.Payload != nil {
		out.Payload = append([]byte(nil), p.Payload...)
	}
	return out
}

type Session struct {
	AccountID uint32
	Player    *Player
}

// Socket is the transport endpoint of a client connection.
type Socket interface {
	RemoteAddr() string
}

// ChatCommand is one entry of the server command table.
type ChatCommand struct {
	Name       string
	Permission uint32
	Help       string
	Handler    func(args string) bool
	Children   []ChatCommand
}
