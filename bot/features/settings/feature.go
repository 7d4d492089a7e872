package settings

import (
	"wheelbot/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles bot appearance settings: avatar and streaming presence
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new settings feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}

// HandleCommand routes settings slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "bot-avatar":
		f.handleBotAvatar(s, i)
	case "set-streaming":
		f.handleSetStreaming(s, i)
	}
}
