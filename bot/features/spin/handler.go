package spin

import (
	"context"
	"fmt"

	"wheelbot/bot/common"
	"wheelbot/domain/entities"
	"wheelbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleSetPrizes handles /set-normal-prizes and /set-vip-prizes
func (f *Feature) handleSetPrizes(s *discordgo.Session, i *discordgo.InteractionCreate, spinType entities.SpinType) {
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

	prizes := make([]string, 0, entities.MaxPrizes)
	for _, opt := range i.ApplicationCommandData().Options {
		prizes = append(prizes, opt.StringValue())
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update prizes")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	saved, err := stateService.SetPrizePool(ctx, guildID, spinType, prizes)
	if err != nil {
		log.Errorf("Failed to set prize pool: %v", err)
		common.RespondWithError(s, i, "Failed to update prizes")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update prizes")
		return
	}

	label := "Normal"
	if spinType == entities.SpinTypeVip {
		label = "VIP"
	}
	common.RespondWithSuccess(s, i, fmt.Sprintf("%s prizes updated (%d configured)", label, len(saved)))
}

// handleSetSpinCost handles /set-spin-invites
func (f *Feature) handleSetSpinCost(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	options := i.ApplicationCommandData().Options
	spinType, err := entities.ParseSpinType(options[0].StringValue())
	if err != nil {
		common.RespondWithError(s, i, "Invalid spin type")
		return
	}
	cost := int(options[1].IntValue())

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update spin cost")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	if err := stateService.UpdateSpinCost(ctx, guildID, spinType, cost); err != nil {
		log.Errorf("Failed to update spin cost: %v", err)
		common.RespondWithError(s, i, "Spin cost must not be negative")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update spin cost")
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Spin cost for %s set to %d invite(s)", spinType, cost))
}

// handleSetDailyLimit handles /set-daily-limit
func (f *Feature) handleSetDailyLimit(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	limit := int(i.ApplicationCommandData().Options[0].IntValue())

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update daily limit")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	if err := stateService.UpdateDailyLimit(ctx, guildID, limit); err != nil {
		common.RespondWithError(s, i, fmt.Sprintf("Daily limit must be at least %d", entities.MinDailySpinLimit))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update daily limit")
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Daily spin limit set to %d", limit))
}

// handleSpinSettings handles /spin-settings
func (f *Feature) handleSpinSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	state, err := f.loadState(i.GuildID)
	if err != nil {
		log.Errorf("Failed to load guild state: %v", err)
		common.RespondWithError(s, i, "Failed to load settings")
		return
	}

	embed := CreateSettingsEmbed(state)
	common.RespondWithEmbed(s, i, embed, true)
}

// handleSpinResults handles /spin-results
func (f *Feature) handleSpinResults(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to load results")
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	results, err := stateService.GetRecentSpinResults(ctx, guildID, 10)
	if err != nil {
		log.Errorf("Failed to get spin results: %v", err)
		common.RespondWithError(s, i, "Failed to load results")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to load results")
		return
	}

	embed := CreateResultsEmbed(results)
	common.RespondWithEmbed(s, i, embed, true)
}

// handlePrizes handles the /prizes command, available to everyone
func (f *Feature) handlePrizes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	state, err := f.loadState(i.GuildID)
	if err != nil {
		log.Errorf("Failed to load guild state: %v", err)
		common.RespondWithError(s, i, "Failed to load prizes")
		return
	}

	embed := CreatePrizesEmbed(state.NormalPrizes, state.VipPrizes)
	common.RespondWithEmbed(s, i, embed, true)
}

// loadState fetches the guild document in a read-only unit of work
func (f *Feature) loadState(guildIDStr string) (*entities.GuildState, error) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(guildIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid guild ID: %w", err)
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	state, err := stateService.GetOrCreateState(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return state, nil
}
