package common

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// GetDisplayName returns the server-specific display name for a user.
// Falls back to username if nickname is not set or if there's an error.
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// ParseGuildID converts a Discord guild ID string to int64
func ParseGuildID(guildID string) (int64, error) {
	return strconv.ParseInt(guildID, 10, 64)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID string) string {
	return "<@" + userID + ">"
}

// IsUserAdmin checks if a user has administrator permissions in a guild
func IsUserAdmin(s *discordgo.Session, guildID, userID string) bool {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Errorf("Failed to get guild member: %v", err)
		return false
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// IsTicketChannel reports whether a channel belongs to the ticket system.
// Matches "ticket" in the channel name or its category name.
func IsTicketChannel(s *discordgo.Session, channelID string) bool {
	channel, err := s.State.Channel(channelID)
	if err != nil {
		channel, err = s.Channel(channelID)
		if err != nil {
			return false
		}
	}

	if strings.Contains(strings.ToLower(channel.Name), "ticket") {
		return true
	}

	if channel.ParentID != "" {
		category, err := s.State.Channel(channel.ParentID)
		if err != nil {
			category, err = s.Channel(channel.ParentID)
		}
		if err == nil && strings.Contains(strings.ToLower(category.Name), "ticket") {
			return true
		}
	}

	return false
}
