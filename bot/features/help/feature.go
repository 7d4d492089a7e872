package help

import (
	"wheelbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Custom IDs for help menu navigation
const (
	CustomIDHelpAdmin = "help_admin"
	CustomIDHelpUser  = "help_user"
	CustomIDHelpBack  = "help_back"
)

// Feature handles the help, support and about commands
type Feature struct {
	session *discordgo.Session
}

// NewFeature creates a new help feature instance
func NewFeature(session *discordgo.Session) *Feature {
	return &Feature{session: session}
}

// HandleCommand routes help slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "help":
		f.handleHelp(s, i)
	case "support":
		f.handleSupport(s, i)
	case "about":
		f.handleAbout(s, i)
	}
}

// HandleInteraction handles help menu navigation buttons
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	var embed *discordgo.MessageEmbed
	var components []discordgo.MessageComponent

	switch i.MessageComponentData().CustomID {
	case CustomIDHelpAdmin:
		embed = CreateAdminHelpEmbed()
		components = CreateBackButton()
	case CustomIDHelpUser:
		embed = CreateUserHelpEmbed()
		components = CreateBackButton()
	case CustomIDHelpBack:
		embed = CreateMainHelpEmbed()
		components = CreateHelpMenuButtons()
	default:
		common.RespondWithError(s, i, "Unknown help interaction")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Errorf("Failed to update help menu: %v", err)
	}
}

// handleHelp handles /help
func (f *Feature) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{CreateMainHelpEmbed()},
			Components: CreateHelpMenuButtons(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Failed to send help menu: %v", err)
	}
}

// handleSupport handles /support
func (f *Feature) handleSupport(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.RespondWithEmbed(s, i, CreateSupportEmbed(), true)
}

// handleAbout handles /about
func (f *Feature) handleAbout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.RespondWithEmbed(s, i, CreateAboutEmbed(), true)
}
