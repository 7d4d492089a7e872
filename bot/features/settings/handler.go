package settings

import (
	"context"
	"fmt"

	"wheelbot/bot/common"
	"wheelbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleBotAvatar handles the /bot-avatar command
func (f *Feature) handleBotAvatar(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	url := i.ApplicationCommandData().Options[0].StringValue()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update avatar")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	if err := stateService.UpdateBotAvatarURL(ctx, guildID, url); err != nil {
		common.RespondWithError(s, i, "Avatar URL must not be empty")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update avatar")
		return
	}

	// Best effort; the URL is already stored if the fetch fails
	if err := f.applyAvatar(url); err != nil {
		log.Errorf("Failed to apply bot avatar: %v", err)
		common.RespondWithSuccess(s, i, "Avatar URL saved, but applying it failed. Check the URL points to an image.")
		return
	}

	common.RespondWithSuccess(s, i, "Bot avatar updated")
}

// applyAvatar downloads the image and updates the bot user's avatar
func (f *Feature) applyAvatar(url string) error {
	avatar, err := fetchImageDataURI(url)
	if err != nil {
		return err
	}

	_, err = f.session.UserUpdate("", avatar)
	if err != nil {
		return fmt.Errorf("failed to update bot user: %w", err)
	}
	return nil
}

// handleSetStreaming handles the /set-streaming command
func (f *Feature) handleSetStreaming(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	status := i.ApplicationCommandData().Options[0].StringValue()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update streaming status")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	if err := stateService.UpdateStreamingStatus(ctx, guildID, status); err != nil {
		common.RespondWithError(s, i, "Streaming status must not be empty")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update streaming status")
		return
	}

	if err := s.UpdateStreamingStatus(0, status, "https://twitch.tv/discord"); err != nil {
		log.Errorf("Failed to update presence: %v", err)
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Streaming status set to %q", status))
}
