package spin

import (
	"github.com/bwmarrin/discordgo"
)

// CreateSpinButtons creates the Normal/VIP button row for the spin menu
func CreateSpinButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🎯 Normal",
					Style:    discordgo.SuccessButton,
					CustomID: CustomIDSpinNormal,
				},
				discordgo.Button{
					Label:    "👑 VIP",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDSpinVip,
				},
			},
		},
	}
}
