package invites

import (
	"fmt"

	"wheelbot/bot/common"
	"wheelbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// CreateBalanceEmbed creates the invite balance embed for !invites
func CreateBalanceEmbed(displayName string, credits entities.InviteCredits) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Invites for %s", displayName),
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎯 Normal",
				Value:  fmt.Sprintf("%d", credits.Normal),
				Inline: true,
			},
			{
				Name:   "👑 VIP",
				Value:  fmt.Sprintf("%d", credits.Vip),
				Inline: true,
			},
			{
				Name:   "Total",
				Value:  fmt.Sprintf("%d", credits.Total()),
				Inline: true,
			},
		},
	}
}

// CreateJoinLogEmbed creates the embed posted to the invite log channel
func CreateJoinLogEmbed(user *discordgo.User, attribution *entities.JoinAttribution) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📥 Member Joined",
		Color: common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Member",
				Value:  user.Mention(),
				Inline: true,
			},
			{
				Name:   "Invited By",
				Value:  common.GetUserMention(attribution.InviterID),
				Inline: true,
			},
			{
				Name:   "Invite Code",
				Value:  attribution.Code,
				Inline: true,
			},
			{
				Name:   "Inviter Total",
				Value:  fmt.Sprintf("%d", attribution.NewTotal),
				Inline: true,
			},
		},
	}
}
