package bot

import (
	"context"
	"fmt"
	"strings"

	"wheelbot/application"
	"wheelbot/bot/common"
	"wheelbot/bot/features/help"
	"wheelbot/bot/features/invites"
	"wheelbot/bot/features/settings"
	"wheelbot/bot/features/spin"
	"wheelbot/bot/features/voice"
	"wheelbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token         string
	CommandPrefix string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory

	// Feature modules
	invites  *invites.Feature
	spin     *spin.Feature
	settings *settings.Feature
	help     *help.Feature
	voice    *voice.Feature
}

// New creates a new bot instance with all features and opens the gateway
func New(config Config, uowFactory application.UnitOfWorkFactory) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAllWithoutPrivileged |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
	}

	inviteDirectory := NewSessionInviteDirectory(dg)
	bot.invites = invites.NewFeature(dg, uowFactory, inviteDirectory)
	bot.spin = spin.NewFeature(dg, uowFactory)
	bot.settings = settings.NewFeature(dg, uowFactory)
	bot.help = help.NewFeature(dg)
	bot.voice = voice.NewFeature(dg)

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleInteractions)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleGuildMemberAdd)
	dg.AddHandler(bot.handleGuildCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleReady logs in-guild presence once the gateway is up
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("Bot is ready")
}

// handleCommands routes slash commands to appropriate features
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "add-invites", "remove-invites", "set-invite-log":
		b.invites.HandleCommand(s, i)
	case "set-normal-prizes", "set-vip-prizes", "set-spin-invites",
		"set-daily-limit", "spin-settings", "spin-results", "prizes":
		b.spin.HandleCommand(s, i)
	case "bot-avatar", "set-streaming":
		b.settings.HandleCommand(s, i)
	case "help", "support", "about":
		b.help.HandleCommand(s, i)
	case "join-voice":
		b.voice.HandleCommand(s, i)
	}
}

// handleInteractions routes component interactions to appropriate features
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "spin_"):
		b.spin.HandleInteraction(s, i)
	case strings.HasPrefix(customID, "help_"):
		b.help.HandleInteraction(s, i)
	}
}

// handleMessageCreate handles prefix text commands
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}
	if !strings.HasPrefix(m.Content, b.config.CommandPrefix) {
		return
	}

	command := strings.Fields(strings.TrimPrefix(m.Content, b.config.CommandPrefix))
	if len(command) == 0 {
		return
	}

	switch command[0] {
	case "invites":
		b.invites.HandleInvitesPrefix(s, m)
	case "spin":
		b.spin.HandleSpinPrefix(s, m)
	}
}

// handleGuildMemberAdd runs join attribution for new members
func (b *Bot) handleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	b.invites.HandleMemberJoin(s, m)
}

// handleGuildCreate seeds the guild document when the bot joins a guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	guildID, err := common.ParseGuildID(g.ID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	stateService := services.NewGuildStateService(uow.GuildStateRepository())

	state, err := stateService.GetOrCreateState(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to track new guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Failed to commit transaction: %v", err)
		return
	}

	log.WithFields(log.Fields{
		"guild_id":    guildID,
		"guild_name":  g.Name,
		"daily_limit": state.Settings.DailySpinLimit,
	}).Info("Guild state ready")
}
