package bot

import (
	"fmt"

	"wheelbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	minCount := float64(1)
	minCost := float64(0)
	minLimit := float64(entities.MinDailySpinLimit)

	prizeOptions := func() []*discordgo.ApplicationCommandOption {
		options := make([]*discordgo.ApplicationCommandOption, 0, entities.MaxPrizes)
		for n := 1; n <= entities.MaxPrizes; n++ {
			options = append(options, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        fmt.Sprintf("prize%d", n),
				Description: fmt.Sprintf("Prize #%d", n),
				Required:    n == 1,
			})
		}
		return options
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "add-invites",
			Description: "Add invite credits to a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to credit",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Number of invites to add",
					Required:    true,
					MinValue:    &minCount,
				},
			},
		},
		{
			Name:        "remove-invites",
			Description: "Remove invite credits from a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to debit",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Number of invites to remove",
					Required:    true,
					MinValue:    &minCount,
				},
			},
		},
		{
			Name:        "set-invite-log",
			Description: "Set the channel for invite join logs",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to post join attributions in",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		{
			Name:        "set-normal-prizes",
			Description: "Set the normal wheel prizes (up to 5)",
			Options:     prizeOptions(),
		},
		{
			Name:        "set-vip-prizes",
			Description: "Set the VIP wheel prizes (up to 5)",
			Options:     prizeOptions(),
		},
		{
			Name:        "set-spin-invites",
			Description: "Set the invite cost for a spin variant",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Spin variant",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Normal", Value: string(entities.SpinTypeNormal)},
						{Name: "VIP", Value: string(entities.SpinTypeVip)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "cost",
					Description: "Invite cost per spin",
					Required:    true,
					MinValue:    &minCost,
				},
			},
		},
		{
			Name:        "set-daily-limit",
			Description: "Set how many spins each user gets per day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "Spins per user per day",
					Required:    true,
					MinValue:    &minLimit,
				},
			},
		},
		{
			Name:        "spin-settings",
			Description: "Show the full spin configuration",
		},
		{
			Name:        "spin-results",
			Description: "Show the last 10 spin results",
		},
		{
			Name:        "bot-avatar",
			Description: "Set the bot avatar from an image URL",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "url",
					Description: "Image URL",
					Required:    true,
				},
			},
		},
		{
			Name:        "set-streaming",
			Description: "Set the bot streaming status",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "status",
					Description: "Streaming status text",
					Required:    true,
				},
			},
		},
		{
			Name:        "prizes",
			Description: "Show all available prizes",
		},
		{
			Name:        "help",
			Description: "Show the help menu",
		},
		{
			Name:        "support",
			Description: "Get support information",
		},
		{
			Name:        "about",
			Description: "About this bot",
		},
		{
			Name:        "join-voice",
			Description: "Bring the bot into a voice channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Voice channel to join",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildVoice,
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}

	return nil
}
