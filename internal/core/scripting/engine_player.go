package scripting

import "github.com/zeusync/scripthost/internal/core/game"

// Players

func (e *Engine) OnPVPKill(killer, killed *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnPVPKill(killer, killed) })
}

func (e *Engine) OnCreatureKill(killer *game.Player, killed *game.Creature) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnCreatureKill(killer, killed) })
}

func (e *Engine) OnPlayerKilledByCreature(killer *game.Creature, killed *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnPlayerKilledByCreature(killer, killed) })
}

func (e *Engine) OnPlayerLevelChanged(player *game.Player, oldLevel uint8) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnLevelChanged(player, oldLevel) })
}

func (e *Engine) OnPlayerFreeTalentPointsChanged(player *game.Player, points uint32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnFreeTalentPointsChanged(player, points) })
}

func (e *Engine) OnPlayerTalentsReset(player *game.Player, noCost bool) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnTalentsReset(player, noCost) })
}

func (e *Engine) OnPlayerMoneyChanged(player *game.Player, amount *int32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnMoneyChanged(player, amount) })
}

func (e *Engine) OnPlayerMoneyLimit(player *game.Player, amount int32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnMoneyLimit(player, amount) })
}

func (e *Engine) OnGivePlayerXP(player *game.Player, amount *uint32, victim *game.Unit) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnGiveXP(player, amount, victim) })
}

func (e *Engine) OnPlayerReputationChange(player *game.Player, factionID uint32, standing *int32, incremental bool) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnReputationChange(player, factionID, standing, incremental) })
}

func (e *Engine) OnPlayerDuelRequest(target, challenger *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnDuelRequest(target, challenger) })
}

func (e *Engine) OnPlayerDuelStart(player1, player2 *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnDuelStart(player1, player2) })
}

func (e *Engine) OnPlayerDuelEnd(winner, loser *game.Player, kind game.DuelCompleteType) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnDuelEnd(winner, loser, kind) })
}

func (e *Engine) OnPlayerChat(player *game.Player, chatType, lang uint32, msg *string) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnChat(player, chatType, lang, msg) })
}

func (e *Engine) OnPlayerWhisper(player *game.Player, chatType, lang uint32, msg *string, receiver *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnWhisper(player, chatType, lang, msg, receiver) })
}

func (e *Engine) OnPlayerGroupChat(player *game.Player, chatType, lang uint32, msg *string, group *game.Group) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnGroupChat(player, chatType, lang, msg, group) })
}

func (e *Engine) OnPlayerGuildChat(player *game.Player, chatType, lang uint32, msg *string, guild *game.Guild) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnGuildChat(player, chatType, lang, msg, guild) })
}

func (e *Engine) OnPlayerChannelChat(player *game.Player, chatType, lang uint32, msg *string, channel *game.Channel) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnChannelChat(player, chatType, lang, msg, channel) })
}

func (e *Engine) OnPlayerEmote(player *game.Player, emote uint32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnEmote(player, emote) })
}

func (e *Engine) OnPlayerTextEmote(player *game.Player, textEmote, emoteNum uint32, guid game.ObjectGUID) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnTextEmote(player, textEmote, emoteNum, guid) })
}

func (e *Engine) OnPlayerSpellCast(player *game.Player, spell *game.Spell, skipCheck bool) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnSpellCast(player, spell, skipCheck) })
}

func (e *Engine) OnPlayerLogin(player *game.Player, firstLogin bool) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnLogin(player, firstLogin) })
}

func (e *Engine) OnPlayerLogout(player *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnLogout(player) })
}

func (e *Engine) OnPlayerCreate(player *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnCreate(player) })
}

func (e *Engine) OnPlayerDelete(guid game.ObjectGUID, accountID uint32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnDelete(guid, accountID) })
}

func (e *Engine) OnPlayerFailedDelete(guid game.ObjectGUID, accountID uint32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnFailedDelete(guid, accountID) })
}

func (e *Engine) OnPlayerSave(player *game.Player) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnSave(player) })
}

func (e *Engine) OnPlayerBindToInstance(player *game.Player, difficulty game.Difficulty, mapID uint32, permanent bool, extendState uint8) {
	Broadcast(e.ctx.Players, func(s PlayerScript) {
		s.OnBindToInstance(player, difficulty, mapID, permanent, extendState)
	})
}

func (e *Engine) OnPlayerUpdateZone(player *game.Player, newZone, newArea uint32) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnUpdateZone(player, newZone, newArea) })
}

func (e *Engine) OnQuestStatusChange(player *game.Player, questID uint32, status game.QuestStatus) {
	Broadcast(e.ctx.Players, func(s PlayerScript) { s.OnQuestStatusChange(player, questID, status) })
}

// Accounts

func (e *Engine) OnAccountLogin(accountID uint32) {
	Broadcast(e.ctx.Accounts, func(s AccountScript) { s.OnAccountLogin(accountID) })
}

func (e *Engine) OnFailedAccountLogin(accountID uint32) {
	Broadcast(e.ctx.Accounts, func(s AccountScript) { s.OnFailedAccountLogin(accountID) })
}

func (e *Engine) OnEmailChange(accountID uint32) {
	Broadcast(e.ctx.Accounts, func(s AccountScript) { s.OnEmailChange(accountID) })
}

func (e *Engine) OnFailedEmailChange(accountID uint32) {
	Broadcast(e.ctx.Accounts, func(s AccountScript) { s.OnFailedEmailChange(accountID) })
}

func (e *Engine) OnPasswordChange(accountID uint32) {
	Broadcast(e.ctx.Accounts, func(s AccountScript) { s.OnPasswordChange(accountID) })
}

func (e *Engine) OnFailedPasswordChange(accountID uint32) {
	Broadcast(e.ctx.Accounts, func(s AccountScript) { s.OnFailedPasswordChange(accountID) })
}

// Guilds

func (e *Engine) OnGuildAddMember(guild *game.Guild, player *game.Player, rank *uint8) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnAddMember(guild, player, rank) })
}

func (e *Engine) OnGuildRemoveMember(guild *game.Guild, player *game.Player, isDisbanding, isKicked bool) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnRemoveMember(guild, player, isDisbanding, isKicked) })
}

func (e *Engine) OnGuildMOTDChanged(guild *game.Guild, newMotd string) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnMOTDChanged(guild, newMotd) })
}

func (e *Engine) OnGuildInfoChanged(guild *game.Guild, newInfo string) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnInfoChanged(guild, newInfo) })
}

func (e *Engine) OnGuildCreate(guild *game.Guild, leader *game.Player, name string) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnCreate(guild, leader, name) })
}

func (e *Engine) OnGuildDisband(guild *game.Guild) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnDisband(guild) })
}

func (e *Engine) OnGuildMemberWithdrawMoney(guild *game.Guild, player *game.Player, amount *uint32, isRepair bool) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnMemberWithdrawMoney(guild, player, amount, isRepair) })
}

func (e *Engine) OnGuildMemberDepositMoney(guild *game.Guild, player *game.Player, amount *uint32) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnMemberDepositMoney(guild, player, amount) })
}

func (e *Engine) OnGuildItemMove(guild *game.Guild, player *game.Player, move GuildItemMove) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnItemMove(guild, player, move) })
}

func (e *Engine) OnGuildEvent(guild *game.Guild, eventType uint8, playerGUID1, playerGUID2 uint64, newRank uint8) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnEvent(guild, eventType, playerGUID1, playerGUID2, newRank) })
}

func (e *Engine) OnGuildBankEvent(guild *game.Guild, event GuildBankEvent) {
	Broadcast(e.ctx.Guilds, func(s GuildScript) { s.OnBankEvent(guild, event) })
}

// Groups

func (e *Engine) OnGroupAddMember(group *game.Group, guid game.ObjectGUID) {
	Broadcast(e.ctx.Groups, func(s GroupScript) { s.OnAddMember(group, guid) })
}

func (e *Engine) OnGroupInviteMember(group *game.Group, guid game.ObjectGUID) {
	Broadcast(e.ctx.Groups, func(s GroupScript) { s.OnInviteMember(group, guid) })
}

func (e *Engine) OnGroupRemoveMember(group *game.Group, guid game.ObjectGUID, method game.RemoveMethod, kicker game.ObjectGUID, reason string) {
	Broadcast(e.ctx.Groups, func(s GroupScript) { s.OnRemoveMember(group, guid, method, kicker, reason) })
}

func (e *Engine) OnGroupChangeLeader(group *game.Group, newLeader, oldLeader game.ObjectGUID) {
	Broadcast(e.ctx.Groups, func(s GroupScript) { s.OnChangeLeader(group, newLeader, oldLeader) })
}

func (e *Engine) OnGroupDisband(group *game.Group) {
	Broadcast(e.ctx.Groups, func(s GroupScript) { s.OnDisband(group) })
}

// Units. Creature and player scripts are indexed here too, so they receive
// these hooks alongside plain unit scripts.

func (e *Engine) OnHeal(healer, receiver *game.Unit, gain *uint32) {
	Broadcast(e.ctx.Units, func(s UnitScript) { s.OnHeal(healer, receiver, gain) })
}

func (e *Engine) OnDamage(attacker, victim *game.Unit, damage *uint32) {
	Broadcast(e.ctx.Units, func(s UnitScript) { s.OnDamage(attacker, victim, damage) })
}

func (e *Engine) ModifyPeriodicDamageAurasTick(target, attacker *game.Unit, damage *uint32) {
	Broadcast(e.ctx.Units, func(s UnitScript) { s.ModifyPeriodicDamageAurasTick(target, attacker, damage) })
}

func (e *Engine) ModifyMeleeDamage(target, attacker *game.Unit, damage *uint32) {
	Broadcast(e.ctx.Units, func(s UnitScript) { s.ModifyMeleeDamage(target, attacker, damage) })
}

func (e *Engine) ModifySpellDamageTaken(target, attacker *game.Unit, damage *int32) {
	Broadcast(e.ctx.Units, func(s UnitScript) { s.ModifySpellDamageTaken(target, attacker, damage) })
}
