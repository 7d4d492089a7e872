package bot

import (
	"context"
	"fmt"
	"strconv"

	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// sessionInviteDirectory adapts a discordgo session to the InviteDirectory
// interface. Invite order matches the Discord API response order, which is
// what the join-attribution diff keys on.
type sessionInviteDirectory struct {
	session *discordgo.Session
}

// NewSessionInviteDirectory creates an InviteDirectory backed by the Discord API
func NewSessionInviteDirectory(session *discordgo.Session) interfaces.InviteDirectory {
	return &sessionInviteDirectory{session: session}
}

// ListGuildInvites fetches the guild's active invites with current use counts
func (d *sessionInviteDirectory) ListGuildInvites(ctx context.Context, guildID int64) ([]entities.InviteUsage, error) {
	invites, err := d.session.GuildInvites(strconv.FormatInt(guildID, 10), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild invites: %w", err)
	}

	usages := make([]entities.InviteUsage, 0, len(invites))
	for _, invite := range invites {
		usage := entities.InviteUsage{
			Code: invite.Code,
			Uses: invite.Uses,
		}
		if invite.Inviter != nil {
			usage.InviterID = invite.Inviter.ID
		}
		usages = append(usages, usage)
	}

	return usages, nil
}
