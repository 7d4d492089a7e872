package spin

import (
	"fmt"
	"strings"

	"wheelbot/bot/common"
	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// CreateSpinMenuEmbed creates the wheel menu shown by !spin
func CreateSpinMenuEmbed(remaining, limit int) *discordgo.MessageEmbed {
	if remaining < 0 {
		remaining = 0
	}
	return &discordgo.MessageEmbed{
		Title:       "🎮 Choose Your Spin",
		Color:       common.ColorPurple,
		Description: "Press a button to spin the wheel",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎯 Normal",
				Value:  "Standard prize wheel",
				Inline: true,
			},
			{
				Name:   "👑 VIP",
				Value:  "VIP prize wheel",
				Inline: true,
			},
			{
				Name:   "🎫 Spins remaining today",
				Value:  fmt.Sprintf("%d/%d", remaining, limit),
				Inline: false,
			},
		},
	}
}

// CreateNotTicketChannelEmbed tells the user where !spin can be used
func CreateNotTicketChannelEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ This command can't be used here",
		Color:       common.ColorDanger,
		Description: "The wheel is only available inside ticket channels",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "📍 Where to use it",
				Value:  "Channels with 'ticket' in their name or category",
				Inline: false,
			},
		},
	}
}

// CreateWinEmbed creates the embed for a successful draw
func CreateWinEmbed(displayName string, outcome *interfaces.SpinOutcome) *discordgo.MessageEmbed {
	variant := "🎯 Normal"
	if outcome.Type == entities.SpinTypeVip {
		variant = "👑 VIP"
	}

	return &discordgo.MessageEmbed{
		Title:       "🎉 Congratulations!",
		Color:       common.ColorSuccess,
		Description: fmt.Sprintf("%s spun the %s wheel", displayName, variant),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎁 Prize",
				Value:  outcome.Prize,
				Inline: false,
			},
			{
				Name:   "🎫 Spins remaining today",
				Value:  fmt.Sprintf("%d/%d", outcome.Remaining, outcome.Limit),
				Inline: false,
			},
		},
	}
}

// CreateRejectionEmbed creates the embed for a rejected draw
func CreateRejectionEmbed(outcome *interfaces.SpinOutcome) *discordgo.MessageEmbed {
	switch outcome.Reason {
	case entities.SpinRejectionCapExceeded:
		return &discordgo.MessageEmbed{
			Title:       "⛔ Daily limit reached",
			Color:       common.ColorDanger,
			Description: fmt.Sprintf("You have used all %d of your spins for today. Come back tomorrow!", outcome.Limit),
		}
	case entities.SpinRejectionEmptyPool:
		return &discordgo.MessageEmbed{
			Title:       "⚠️ No prizes configured",
			Color:       common.ColorWarning,
			Description: "This wheel has no prizes yet. Ask an administrator to configure some.",
		}
	default:
		return &discordgo.MessageEmbed{
			Title: "❌ Spin rejected",
			Color: common.ColorDanger,
		}
	}
}

// CreateSettingsEmbed creates the full config snapshot for /spin-settings
func CreateSettingsEmbed(state *entities.GuildState) *discordgo.MessageEmbed {
	logChannel := "Not set"
	if state.Settings.HasInviteLogChannel() {
		logChannel = fmt.Sprintf("<#%d>", *state.Settings.InviteLogChannel)
	}

	return &discordgo.MessageEmbed{
		Title: "⚙️ Spin Settings",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Normal prizes",
				Value:  formatPool(state.NormalPrizes),
				Inline: false,
			},
			{
				Name:   "VIP prizes",
				Value:  formatPool(state.VipPrizes),
				Inline: false,
			},
			{
				Name:   "Normal cost",
				Value:  fmt.Sprintf("%d invite(s)", state.Settings.SpinCostNormal),
				Inline: true,
			},
			{
				Name:   "VIP cost",
				Value:  fmt.Sprintf("%d invite(s)", state.Settings.SpinCostVip),
				Inline: true,
			},
			{
				Name:   "Daily limit",
				Value:  fmt.Sprintf("%d spins", state.Settings.DailySpinLimit),
				Inline: true,
			},
			{
				Name:   "Invite log channel",
				Value:  logChannel,
				Inline: true,
			},
			{
				Name:   "Streaming status",
				Value:  state.Settings.StreamingStatus,
				Inline: true,
			},
		},
	}
}

// CreateResultsEmbed creates the /spin-results embed, newest last
func CreateResultsEmbed(results []entities.SpinRecord) *discordgo.MessageEmbed {
	description := "No spins recorded yet"
	if len(results) > 0 {
		lines := make([]string, 0, len(results))
		for _, r := range results {
			variant := "🎯"
			if r.Type == entities.SpinTypeVip {
				variant = "👑"
			}
			lines = append(lines, fmt.Sprintf("%s **%s** won **%s** <t:%d:R>", variant, r.User, r.Prize, r.Timestamp.Unix()))
		}
		description = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Recent Spin Results",
		Color:       common.ColorInfo,
		Description: description,
	}
}

// CreatePrizesEmbed creates the /prizes embed
func CreatePrizesEmbed(normalPrizes, vipPrizes []string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎁 Available Prizes",
		Color: common.ColorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Normal prizes",
				Value:  formatPool(normalPrizes),
				Inline: false,
			},
			{
				Name:   "VIP prizes",
				Value:  formatPool(vipPrizes),
				Inline: false,
			},
		},
	}
}

func formatPool(pool []string) string {
	if len(pool) == 0 {
		return "No prizes configured"
	}
	return strings.Join(pool, "\n")
}
