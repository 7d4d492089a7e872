package spin

import (
	"context"
	"fmt"

	"wheelbot/application"
	"wheelbot/bot/common"
	"wheelbot/domain/entities"
	"wheelbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Custom ID prefixes for spin buttons
const (
	CustomIDSpinNormal = "spin_normal"
	CustomIDSpinVip    = "spin_vip"
)

// Feature handles the prize wheel: the !spin entry point, the variant
// buttons and the prize pool admin commands.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new spin feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}

// HandleCommand routes spin slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "set-normal-prizes":
		f.handleSetPrizes(s, i, entities.SpinTypeNormal)
	case "set-vip-prizes":
		f.handleSetPrizes(s, i, entities.SpinTypeVip)
	case "set-spin-invites":
		f.handleSetSpinCost(s, i)
	case "set-daily-limit":
		f.handleSetDailyLimit(s, i)
	case "spin-settings":
		f.handleSpinSettings(s, i)
	case "spin-results":
		f.handleSpinResults(s, i)
	case "prizes":
		f.handlePrizes(s, i)
	}
}

// HandleInteraction handles spin button presses
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		log.Warnf("Unknown interaction type in spin: %v", i.Type)
		return
	}

	switch i.MessageComponentData().CustomID {
	case CustomIDSpinNormal:
		f.handleSpinButton(s, i, entities.SpinTypeNormal)
	case CustomIDSpinVip:
		f.handleSpinButton(s, i, entities.SpinTypeVip)
	default:
		common.RespondWithError(s, i, "Unknown spin interaction")
	}
}

// HandleSpinPrefix handles the !spin text command. The wheel is only
// available inside ticket channels.
func (f *Feature) HandleSpinPrefix(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !common.IsTicketChannel(s, m.ChannelID) {
		embed := CreateNotTicketChannelEmbed()
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
			log.Errorf("Failed to send ticket channel notice: %v", err)
		}
		return
	}

	count, limit, err := f.dailyStanding(m.GuildID, m.Author.ID)
	if err != nil {
		log.Errorf("Failed to load daily spin standing: %v", err)
		return
	}

	embed := CreateSpinMenuEmbed(limit-count, limit)
	components := CreateSpinButtons()

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		log.Errorf("Failed to send spin menu: %v", err)
	}
}

// dailyStanding returns the user's rolled-over draw count for today and the
// guild's daily limit
func (f *Feature) dailyStanding(guildIDStr, userID string) (count, limit int, err error) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(guildIDStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid guild ID: %w", err)
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	limitService := services.NewDailyLimitService(uow.GuildStateRepository())
	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	count, err = limitService.GetDailyCount(ctx, guildID, userID)
	if err != nil {
		return 0, 0, err
	}

	state, err := stateService.GetOrCreateState(ctx, guildID)
	if err != nil {
		return 0, 0, err
	}

	if err := uow.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return count, state.Settings.DailySpinLimit, nil
}

// handleSpinButton runs one draw for the pressed variant
func (f *Feature) handleSpinButton(s *discordgo.Session, i *discordgo.InteractionCreate, spinType entities.SpinType) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process spin")
		return
	}

	userID := i.Member.User.ID
	displayName := common.GetDisplayName(s, i.GuildID, userID)

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to process spin")
		return
	}
	defer uow.Rollback()

	spinService := services.NewSpinService(uow.GuildStateRepository())

	outcome, err := spinService.PerformSpin(ctx, guildID, userID, displayName, spinType)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id": guildID,
			"user_id":  userID,
			"type":     spinType,
		}).Error("Failed to perform spin")
		common.RespondWithError(s, i, "Failed to process spin")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to process spin")
		return
	}

	if outcome.Rejected {
		embed := CreateRejectionEmbed(outcome)
		common.RespondWithEmbed(s, i, embed, true)
		return
	}

	log.WithFields(log.Fields{
		"guild_id": guildID,
		"user_id":  userID,
		"type":     outcome.Type,
		"prize":    outcome.Prize,
	}).Info("Spin completed")

	embed := CreateWinEmbed(displayName, outcome)
	common.RespondWithEmbed(s, i, embed, false)
}
