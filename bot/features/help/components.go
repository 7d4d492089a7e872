package help

import (
	"github.com/bwmarrin/discordgo"
)

// CreateHelpMenuButtons creates the category buttons for the main help menu
func CreateHelpMenuButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "👑 Admin Commands",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDHelpAdmin,
				},
				discordgo.Button{
					Label:    "📚 General Commands",
					Style:    discordgo.SuccessButton,
					CustomID: CustomIDHelpUser,
				},
			},
		},
	}
}

// CreateBackButton creates the back navigation row for help submenus
func CreateBackButton() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "⬅️ Back",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDHelpBack,
				},
			},
		},
	}
}
