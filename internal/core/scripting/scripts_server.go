package scripting

import "github.com/zeusync/scripthost/internal/core/game"

// Named implements Script for a fixed name. Script bases embed it.
type Named string

func (n Named) Name() string { return string(n) }

// ServerScript observes the network layer.
type ServerScript interface {
	Script
	OnNetworkStart()
	OnNetworkStop()
	OnSocketOpen(socket game.Socket)
	OnSocketClose(socket game.Socket)
	// OnPacketSend and OnPacketReceive get a copy of the packet. Scripts may
	// edit it; later scripts see the edits, the network layer does not.
	OnPacketSend(session *game.Session, packet *game.Packet)
	OnPacketReceive(session *game.Session, packet *game.Packet)
}

type ServerScriptBase struct{ Named }

func NewServerScriptBase(name string) ServerScriptBase {
	return ServerScriptBase{Named(name)}
}

func (ServerScriptBase) OnNetworkStart()                             {}
func (ServerScriptBase) OnNetworkStop()                              {}
func (ServerScriptBase) OnSocketOpen(game.Socket)                    {}
func (ServerScriptBase) OnSocketClose(game.Socket)                   {}
func (ServerScriptBase) OnPacketSend(*game.Session, *game.Packet)    {}
func (ServerScriptBase) OnPacketReceive(*game.Session, *game.Packet) {}

// WorldScript observes process-wide world events.
type WorldScript interface {
	Script
	OnOpenStateChange(open bool)
	OnConfigLoad(reload bool)
	OnMotdChange(motd *string)
	OnShutdownInitiate(code game.ShutdownExitCode, mask game.ShutdownMask)
	OnShutdownCancel()
	OnUpdate(diff uint32)
	OnStartup()
	OnShutdown()
}

type WorldScriptBase struct{ Named }

func NewWorldScriptBase(name string) WorldScriptBase {
	return WorldScriptBase{Named(name)}
}

func (WorldScriptBase) OnOpenStateChange(bool)                                      {}
func (WorldScriptBase) OnConfigLoad(bool)                                           {}
func (WorldScriptBase) OnMotdChange(*string)                                        {}
func (WorldScriptBase) OnShutdownInitiate(game.ShutdownExitCode, game.ShutdownMask) {}
func (WorldScriptBase) OnShutdownCancel()                                           {}
func (WorldScriptBase) OnUpdate(uint32)                                             {}
func (WorldScriptBase) OnStartup()                                                  {}
func (WorldScriptBase) OnShutdown()                                                 {}

// FormulaScript adjusts economy and experience formulas. Every hook receives
// the running value by pointer; scripts run in registration order and see the
// changes made by earlier ones.
type FormulaScript interface {
	Script
	OnHonorCalculation(honor *float32, level uint8, multiplier float32)
	OnGrayLevelCalculation(grayLevel *uint8, playerLevel uint8)
	OnColorCodeCalculation(color *game.XPColor, playerLevel, mobLevel uint8)
	OnZeroDifferenceCalculation(diff *uint8, playerLevel uint8)
	OnBaseGainCalculation(gain *uint32, playerLevel, mobLevel uint8, content game.ContentLevels)
	OnGainCalculation(gain *uint32, player *game.Player, unit *game.Unit)
	OnGroupRateCalculation(rate *float32, count uint32, isRaid bool)
}

type FormulaScriptBase struct{ Named }

func NewFormulaScriptBase(name string) FormulaScriptBase {
	return FormulaScriptBase{Named(name)}
}

func (FormulaScriptBase) OnHonorCalculation(*float32, uint8, float32)                     {}
func (FormulaScriptBase) OnGrayLevelCalculation(*uint8, uint8)                            {}
func (FormulaScriptBase) OnColorCodeCalculation(*game.XPColor, uint8, uint8)              {}
func (FormulaScriptBase) OnZeroDifferenceCalculation(*uint8, uint8)                       {}
func (FormulaScriptBase) OnBaseGainCalculation(*uint32, uint8, uint8, game.ContentLevels) {}
func (FormulaScriptBase) OnGainCalculation(*uint32, *game.Player, *game.Unit)             {}
func (FormulaScriptBase) OnGroupRateCalculation(*float32, uint32, bool)                   {}
