package scripting

import "github.com/zeusync/scripthost/internal/core/game"

// UnitScript adjusts combat numbers for every unit. Amounts are passed by
// pointer and accumulate across scripts.
type UnitScript interface {
	Script
	OnHeal(healer, receiver *game.Unit, gain *uint32)
	OnDamage(attacker, victim *game.Unit, damage *uint32)
	ModifyPeriodicDamageAurasTick(target, attacker *game.Unit, damage *uint32)
	ModifyMeleeDamage(target, attacker *game.Unit, damage *uint32)
	ModifySpellDamageTaken(target, attacker *game.Unit, damage *int32)
}

type UnitScriptBase struct{ Named }

func NewUnitScriptBase(name string) UnitScriptBase { return UnitScriptBase{Named(name)} }

func (UnitScriptBase) OnHeal(*game.Unit, *game.Unit, *uint32)                        {}
func (UnitScriptBase) OnDamage(*game.Unit, *game.Unit, *uint32)                      {}
func (UnitScriptBase) ModifyPeriodicDamageAurasTick(*game.Unit, *game.Unit, *uint32) {}
func (UnitScriptBase) ModifyMeleeDamage(*game.Unit, *game.Unit, *uint32)             {}
func (UnitScriptBase) ModifySpellDamageTaken(*game.Unit, *game.Unit, *int32)         {}

// PlayerScript observes player events. Player scripts also receive unit hooks.
type PlayerScript interface {
	UnitScript
	OnPVPKill(killer, killed *game.Player)
	OnCreatureKill(killer *game.Player, killed *game.Creature)
	OnPlayerKilledByCreature(killer *game.Creature, killed *game.Player)
	OnLevelChanged(player *game.Player, oldLevel uint8)
	OnFreeTalentPointsChanged(player *game.Player, points uint32)
	OnTalentsReset(player *game.Player, noCost bool)
	OnMoneyChanged(player *game.Player, amount *int32)
	OnMoneyLimit(player *game.Player, amount int32)
	OnGiveXP(player *game.Player, amount *uint32, victim *game.Unit)
	OnReputationChange(player *game.Player, factionID uint32, standing *int32, incremental bool)
	OnDuelRequest(target, challenger *game.Player)
	OnDuelStart(player1, player2 *game.Player)
	OnDuelEnd(winner, loser *game.Player, kind game.DuelCompleteType)
	OnChat(player *game.Player, chatType, lang uint32, msg *string)
	OnWhisper(player *game.Player, chatType, lang uint32, msg *string, receiver *game.Player)
	OnGroupChat(player *game.Player, chatType, lang uint32, msg *string, group *game.Group)
	OnGuildChat(player *game.Player, chatType, lang uint32, msg *string, guild *game.Guild)
	OnChannelChat(player *game.Player, chatType, lang uint32, msg *string, channel *game.Channel)
	OnEmote(player *game.Player, emote uint32)
	OnTextEmote(player *game.Player, textEmote, emoteNum uint32, guid game.ObjectGUID)
	OnSpellCast(player *game.Player, spell *game.Spell, skipCheck bool)
	OnLogin(player *game.Player, firstLogin bool)
	OnLogout(player *game.Player)
	OnCreate(player *game.Player)
	OnDelete(guid game.ObjectGUID, accountID uint32)
	OnFailedDelete(guid game.ObjectGUID, accountID uint32)
	OnSave(player *game.Player)
	OnBindToInstance(player *game.Player, difficulty game.Difficulty, mapID uint32, permanent bool, extendState uint8)
	OnUpdateZone(player *game.Player, newZone, newArea uint32)
	OnMapChanged(player *game.Player)
	OnQuestStatusChange(player *game.Player, questID uint32, status game.QuestStatus)
}

type PlayerScriptBase struct{ UnitScriptBase }

func NewPlayerScriptBase(name string) PlayerScriptBase {
	return PlayerScriptBase{NewUnitScriptBase(name)}
}

func (PlayerScriptBase) OnPVPKill(*game.Player, *game.Player)                                {}
func (PlayerScriptBase) OnCreatureKill(*game.Player, *game.Creature)                         {}
func (PlayerScriptBase) OnPlayerKilledByCreature(*game.Creature, *game.Player)               {}
func (PlayerScriptBase) OnLevelChanged(*game.Player, uint8)                                  {}
func (PlayerScriptBase) OnFreeTalentPointsChanged(*game.Player, uint32)                      {}
func (PlayerScriptBase) OnTalentsReset(*game.Player, bool)                                   {}
func (PlayerScriptBase) OnMoneyChanged(*game.Player, *int32)                                 {}
func (PlayerScriptBase) OnMoneyLimit(*game.Player, int32)                                    {}
func (PlayerScriptBase) OnGiveXP(*game.Player, *uint32, *game.Unit)                          {}
func (PlayerScriptBase) OnReputationChange(*game.Player, uint32, *int32, bool)               {}
func (PlayerScriptBase) OnDuelRequest(*game.Player, *game.Player)                            {}
func (PlayerScriptBase) OnDuelStart(*game.Player, *game.Player)                              {}
func (PlayerScriptBase) OnDuelEnd(*game.Player, *game.Player, game.DuelCompleteType)         {}
func (PlayerScriptBase) OnChat(*game.Player, uint32, uint32, *string)                        {}
func (PlayerScriptBase) OnWhisper(*game.Player, uint32, uint32, *string, *game.Player)       {}
func (PlayerScriptBase) OnGroupChat(*game.Player, uint32, uint32, *string, *game.Group)      {}
func (PlayerScriptBase) OnGuildChat(*game.Player, uint32, uint32, *string, *game.Guild)      {}
func (PlayerScriptBase) OnChannelChat(*game.Player, uint32, uint32, *string, *game.Channel)  {}
func (PlayerScriptBase) OnEmote(*game.Player, uint32)                                        {}
func (PlayerScriptBase) OnTextEmote(*game.Player, uint32, uint32, game.ObjectGUID)           {}
func (PlayerScriptBase) OnSpellCast(*game.Player, *game.Spell, bool)                         {}
func (PlayerScriptBase) OnLogin(*game.Player, bool)                                          {}
func (PlayerScriptBase) OnLogout(*game.Player)                                               {}
func (PlayerScriptBase) OnCreate(*game.Player)                                               {}
func (PlayerScriptBase) OnDelete(game.ObjectGUID, uint32)                                    {}
func (PlayerScriptBase) OnFailedDelete(game.ObjectGUID, uint32)                              {}
func (PlayerScriptBase) OnSave(*game.Player)                                                 {}
func (PlayerScriptBase) OnBindToInstance(*game.Player, game.Difficulty, uint32, bool, uint8) {}
func (PlayerScriptBase) OnUpdateZone(*game.Player, uint32, uint32)                           {}
func (PlayerScriptBase) OnMapChanged(*game.Player)                                           {}
func (PlayerScriptBase) OnQuestStatusChange(*game.Player, uint32, game.QuestStatus)          {}

type AccountScript interface {
	Script
	OnAccountLogin(accountID uint32)
	OnFailedAccountLogin(accountID uint32)
	OnEmailChange(accountID uint32)
	OnFailedEmailChange(accountID uint32)
	OnPasswordChange(accountID uint32)
	OnFailedPasswordChange(accountID uint32)
}

type AccountScriptBase struct{ Named }

func NewAccountScriptBase(name string) AccountScriptBase { return AccountScriptBase{Named(name)} }

func (AccountScriptBase) OnAccountLogin(uint32)         {}
func (AccountScriptBase) OnFailedAccountLogin(uint32)   {}
func (AccountScriptBase) OnEmailChange(uint32)          {}
func (AccountScriptBase) OnFailedEmailChange(uint32)    {}
func (AccountScriptBase) OnPasswordChange(uint32)       {}
func (AccountScriptBase) OnFailedPasswordChange(uint32) {}

// GuildItemMove describes an item moved in or out of a guild bank.
type GuildItemMove struct {
	Item          *game.Item
	IsSrcBank     bool
	SrcContainer  uint8
	SrcSlotID     uint8
	IsDestBank    bool
	DestContainer uint8
	DestSlotID    uint8
}

// GuildBankEvent is one guild bank log entry.
type GuildBankEvent struct {
	EventType      uint8
	TabID          uint8
	PlayerGUID     uint64
	ItemOrMoney    uint32
	ItemStackCount uint16
	DestTabID      uint8
}

type GuildScript interface {
	Script
	OnAddMember(guild *game.Guild, player *game.Player, rank *uint8)
	OnRemoveMember(guild *game.Guild, player *game.Player, isDisbanding, isKicked bool)
	OnMOTDChanged(guild *game.Guild, newMotd string)
	OnInfoChanged(guild *game.Guild, newInfo string)
	OnCreate(guild *game.Guild, leader *game.Player, name string)
	OnDisband(guild *game.Guild)
	OnMemberWithdrawMoney(guild *game.Guild, player *game.Player, amount *uint32, isRepair bool)
	OnMemberDepositMoney(guild *game.Guild, player *game.Player, amount *uint32)
	OnItemMove(guild *game.Guild, player *game.Player, move GuildItemMove)
	OnEvent(guild *game.Guild, eventType uint8, playerGUID1, playerGUID2 uint64, newRank uint8)
	OnBankEvent(guild *game.Guild, event GuildBankEvent)
}

type GuildScriptBase struct{ Named }

func NewGuildScriptBase(name string) GuildScriptBase { return GuildScriptBase{Named(name)} }

func (GuildScriptBase) OnAddMember(*game.Guild, *game.Player, *uint8)                  {}
func (GuildScriptBase) OnRemoveMember(*game.Guild, *game.Player, bool, bool)           {}
func (GuildScriptBase) OnMOTDChanged(*game.Guild, string)                              {}
func (GuildScriptBase) OnInfoChanged(*game.Guild, string)                              {}
func (GuildScriptBase) OnCreate(*game.Guild, *game.Player, string)                     {}
func (GuildScriptBase) OnDisband(*game.Guild)                                          {}
func (GuildScriptBase) OnMemberWithdrawMoney(*game.Guild, *game.Player, *uint32, bool) {}
func (GuildScriptBase) OnMemberDepositMoney(*game.Guild, *game.Player, *uint32)        {}
func (GuildScriptBase) OnItemMove(*game.Guild, *game.Player, GuildItemMove)            {}
func (GuildScriptBase) OnEvent(*game.Guild, uint8, uint64, uint64, uint8)              {}
func (GuildScriptBase) OnBankEvent(*game.Guild, GuildBankEvent)                        {}

type GroupScript interface {
	Script
	OnAddMember(group *game.Group, guid game.ObjectGUID)
	OnInviteMember(group *game.Group, guid game.ObjectGUID)
	OnRemoveMember(group *game.Group, guid game.ObjectGUID, method game.RemoveMethod, kicker game.ObjectGUID, reason string)
	OnChangeLeader(group *game.Group, newLeader, oldLeader game.ObjectGUID)
	OnDisband(group *game.Group)
}

type GroupScriptBase struct{ Named }

func NewGroupScriptBase(name string) GroupScriptBase { return GroupScriptBase{Named(name)} }

func (GroupScriptBase) OnAddMember(*game.Group, game.ObjectGUID)    {}
func (GroupScriptBase) OnInviteMember(*game.Group, game.ObjectGUID) {}
func (GroupScriptBase) OnRemoveMember(*game.Group, game.ObjectGUID, game.RemoveMethod, game.ObjectGUID, string) {
}
func (GroupScriptBase) OnChangeLeader(*game.Group, game.ObjectGUID, game.ObjectGUID) {}
func (GroupScriptBase) OnDisband(*game.Group)                                        {}
