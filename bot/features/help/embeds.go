package help

import (
	"wheelbot/bot/common"

	"github.com/bwmarrin/discordgo"
)

// CreateMainHelpEmbed creates the top-level help menu embed
func CreateMainHelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📖 Help",
		Color:       common.ColorPrimary,
		Description: "Pick a category below to see the available commands",
	}
}

// CreateAdminHelpEmbed lists the admin-only commands
func CreateAdminHelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "👑 Admin Commands",
		Color:       common.ColorDanger,
		Description: "Commands available to administrators only",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Invite management", Value: "​", Inline: false},
			{Name: "/add-invites", Value: "Add invite credits to a user", Inline: false},
			{Name: "/remove-invites", Value: "Remove invite credits from a user", Inline: false},
			{Name: "/set-invite-log", Value: "Set the invite log channel", Inline: false},
			{Name: "Prize management", Value: "​", Inline: false},
			{Name: "/set-normal-prizes", Value: "Set the normal prizes (up to 5)", Inline: false},
			{Name: "/set-vip-prizes", Value: "Set the VIP prizes (up to 5)", Inline: false},
			{Name: "Spin settings", Value: "​", Inline: false},
			{Name: "/spin-settings", Value: "Show the full spin configuration", Inline: false},
			{Name: "/set-spin-invites", Value: "Set the spin cost (normal/VIP)", Inline: false},
			{Name: "/set-daily-limit", Value: "Set the daily spin limit per user", Inline: false},
			{Name: "/spin-results", Value: "Show the last 10 spin results", Inline: false},
			{Name: "Bot settings", Value: "​", Inline: false},
			{Name: "/bot-avatar", Value: "Set the bot avatar (image URL)", Inline: false},
			{Name: "/set-streaming", Value: "Set the bot streaming status", Inline: false},
		},
	}
}

// CreateUserHelpEmbed lists the commands available to everyone
func CreateUserHelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📚 General Commands",
		Color:       common.ColorSuccess,
		Description: "Commands available to everyone",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "!invites", Value: "Show your invite credits (normal and VIP)", Inline: false},
			{Name: "!spin", Value: "Spin the wheel (inside ticket channels)", Inline: false},
			{Name: "/prizes", Value: "Show all available prizes", Inline: false},
			{Name: "/support", Value: "Get a support server link", Inline: false},
			{Name: "/about", Value: "About this bot", Inline: false},
			{Name: "/join-voice", Value: "Bring the bot into a voice channel", Inline: false},
		},
	}
}

// CreateSupportEmbed creates the /support embed
func CreateSupportEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛟 Support",
		Color:       common.ColorInfo,
		Description: "Need help? Ask a server administrator or open a ticket channel.",
	}
}

// CreateAboutEmbed creates the /about embed
func CreateAboutEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎡 Wheelbot",
		Color:       common.ColorPurple,
		Description: "Invite-powered prize wheel. Invite friends, earn credits and spin for prizes.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "How it works",
				Value:  "Each invited member earns the inviter a credit. Spin the wheel in a ticket channel with !spin.",
				Inline: false,
			},
		},
	}
}
