package voice

import (
	"wheelbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /join-voice command
type Feature struct {
	session *discordgo.Session
}

// NewFeature creates a new voice feature instance
func NewFeature(session *discordgo.Session) *Feature {
	return &Feature{session: session}
}

// HandleCommand routes voice slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name == "join-voice" {
		f.handleJoinVoice(s, i)
	}
}

// handleJoinVoice connects the bot to a voice channel, self-muted and
// self-deafened. It never transmits or records audio.
func (f *Feature) handleJoinVoice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channel := i.ApplicationCommandData().Options[0].ChannelValue(s)
	if channel == nil || channel.Type != discordgo.ChannelTypeGuildVoice {
		common.RespondWithError(s, i, "Please select a voice channel")
		return
	}

	if _, err := s.ChannelVoiceJoin(i.GuildID, channel.ID, true, true); err != nil {
		log.Errorf("Failed to join voice channel %s: %v", channel.ID, err)
		common.RespondWithError(s, i, "Failed to join the voice channel")
		return
	}

	common.RespondWithSuccess(s, i, "Joined "+channel.Mention())
}
