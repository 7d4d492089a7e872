package invites

import (
	"context"
	"fmt"

	"wheelbot/application"
	"wheelbot/bot/common"
	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"
	"wheelbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles invite credit tracking: join attribution, balance display
// and the admin credit adjustment commands.
type Feature struct {
	session         *discordgo.Session
	uowFactory      application.UnitOfWorkFactory
	inviteDirectory interfaces.InviteDirectory
}

// NewFeature creates a new invites feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, inviteDirectory interfaces.InviteDirectory) *Feature {
	return &Feature{
		session:         session,
		uowFactory:      uowFactory,
		inviteDirectory: inviteDirectory,
	}
}

// HandleCommand routes invite slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "add-invites":
		f.handleAddInvites(s, i)
	case "remove-invites":
		f.handleRemoveInvites(s, i)
	case "set-invite-log":
		f.handleSetInviteLog(s, i)
	}
}

// HandleMemberJoin attributes a new member to an inviter and posts to the
// invite log channel when one is configured.
func (f *Feature) HandleMemberJoin(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(m.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	trackerService := services.NewInviteTrackerService(uow.GuildStateRepository(), f.inviteDirectory)

	attribution, err := trackerService.RecordMemberJoin(ctx, guildID, m.User.ID, m.User.Bot)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id":  guildID,
			"member_id": m.User.ID,
		}).Error("Failed to record member join")
		return
	}

	var logChannel *int64
	if attribution != nil {
		stateService := services.NewGuildStateService(uow.GuildStateRepository())
		state, err := stateService.GetOrCreateState(ctx, guildID)
		if err == nil && state.Settings.HasInviteLogChannel() {
			logChannel = state.Settings.InviteLogChannel
		}
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		return
	}

	if attribution == nil {
		return
	}

	log.WithFields(log.Fields{
		"guild_id":   guildID,
		"member_id":  m.User.ID,
		"inviter_id": attribution.InviterID,
		"code":       attribution.Code,
	}).Info("Attributed member join to inviter")

	if logChannel != nil {
		f.postJoinLog(*logChannel, m, attribution)
	}
}

// postJoinLog posts the join attribution embed to the configured channel
func (f *Feature) postJoinLog(channelID int64, m *discordgo.GuildMemberAdd, attribution *entities.JoinAttribution) {
	embed := CreateJoinLogEmbed(m.User, attribution)
	_, err := f.session.ChannelMessageSendEmbed(fmt.Sprintf("%d", channelID), embed)
	if err != nil {
		log.Errorf("Failed to post invite log message: %v", err)
	}
}

// HandleInvitesPrefix handles the !invites text command
func (f *Feature) HandleInvitesPrefix(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(m.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	credits, err := stateService.GetInviteBalance(ctx, guildID, m.Author.ID)
	if err != nil {
		log.Errorf("Failed to get invite balance: %v", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		return
	}

	displayName := common.GetDisplayName(s, m.GuildID, m.Author.ID)
	embed := CreateBalanceEmbed(displayName, credits)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Failed to send balance embed: %v", err)
	}
}
