package invites

import (
	"context"
	"fmt"
	"strconv"

	"wheelbot/bot/common"
	"wheelbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleAddInvites handles the /add-invites command
func (f *Feature) handleAddInvites(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	options := i.ApplicationCommandData().Options
	user := options[0].UserValue(s)
	count := int(options[1].IntValue())

	credits, err := f.adjustInvites(i.GuildID, user.ID, count, true)
	if err != nil {
		log.Errorf("Failed to add invites: %v", err)
		common.RespondWithError(s, i, "Failed to add invites")
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Added %d invite(s) to %s. New balance: %d", count, user.Mention(), credits))
}

// handleRemoveInvites handles the /remove-invites command
func (f *Feature) handleRemoveInvites(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	options := i.ApplicationCommandData().Options
	user := options[0].UserValue(s)
	count := int(options[1].IntValue())

	credits, err := f.adjustInvites(i.GuildID, user.ID, count, false)
	if err != nil {
		log.Errorf("Failed to remove invites: %v", err)
		common.RespondWithError(s, i, "Failed to remove invites")
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Removed %d invite(s) from %s. New balance: %d", count, user.Mention(), credits))
}

// adjustInvites applies a credit adjustment inside a unit of work and
// returns the user's new normal-track balance.
func (f *Feature) adjustInvites(guildIDStr, userID string, count int, add bool) (int, error) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(guildIDStr)
	if err != nil {
		return 0, fmt.Errorf("invalid guild ID: %w", err)
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	var normal int
	if add {
		credits, err := stateService.AddInvites(ctx, guildID, userID, count)
		if err != nil {
			return 0, err
		}
		normal = credits.Normal
	} else {
		credits, err := stateService.RemoveInvites(ctx, guildID, userID, count)
		if err != nil {
			return 0, err
		}
		normal = credits.Normal
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return normal, nil
}

// handleSetInviteLog handles the /set-invite-log command
func (f *Feature) handleSetInviteLog(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	ctx := context.Background()

	guildID, err := common.ParseGuildID(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	channel := i.ApplicationCommandData().Options[0].ChannelValue(s)
	channelID, err := strconv.ParseInt(channel.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse channel ID: %v", err)
		common.RespondWithError(s, i, "Invalid channel selected")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	if err := stateService.UpdateInviteLogChannel(ctx, guildID, &channelID); err != nil {
		log.Errorf("Failed to update invite log channel: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Invite log channel set to <#%d>", channelID))
}
