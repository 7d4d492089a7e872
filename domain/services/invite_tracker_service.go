package services

import (
	"context"
	"fmt"

	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// inviteTrackerService implements the InviteTrackerService interface
type inviteTrackerService struct {
	guildStateRepo  interfaces.GuildStateRepository
	inviteDirectory interfaces.InviteDirectory
}

// NewInviteTrackerService creates a new invite tracker service
func NewInviteTrackerService(
	guildStateRepo interfaces.GuildStateRepository,
	inviteDirectory interfaces.InviteDirectory,
) interfaces.InviteTrackerService {
	return &inviteTrackerService{
		guildStateRepo:  guildStateRepo,
		inviteDirectory: inviteDirectory,
	}
}

// RecordMemberJoin attributes a join to the first invite link, in directory
// order, whose use count increased since the cached snapshot. The cache is
// replaced with the fresh snapshot whether or not an inviter was resolved,
// and the document is persisted once.
func (s *inviteTrackerService) RecordMemberJoin(ctx context.Context, guildID int64, memberID string, isBot bool) (*entities.JoinAttribution, error) {
	if isBot {
		return nil, nil
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild state: %w", err)
	}

	live, err := s.inviteDirectory.ListGuildInvites(ctx, guildID)
	if err != nil {
		// Attribution for this join is lost; the cached snapshot is kept
		// so the next join still diffs against the last good baseline.
		return nil, fmt.Errorf("failed to list guild invites: %w", err)
	}

	var attribution *entities.JoinAttribution
	for _, invite := range live {
		if invite.Uses <= state.InvitesCache[invite.Code] {
			continue
		}
		// First increased code wins; ties are broken by directory order
		if invite.InviterID != "" {
			credits := state.CreditInviter(invite.InviterID)
			attribution = &entities.JoinAttribution{
				InviterID: invite.InviterID,
				Code:      invite.Code,
				NewTotal:  credits.Total(),
			}
		}
		break
	}

	newCache := make(map[string]int, len(live))
	for _, invite := range live {
		newCache[invite.Code] = invite.Uses
	}
	state.InvitesCache = newCache

	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return nil, fmt.Errorf("failed to save guild state: %w", err)
	}

	if attribution == nil {
		log.WithFields(log.Fields{
			"guild_id":  guildID,
			"member_id": memberID,
		}).Debug("No inviter resolved for member join")
	}

	return attribution, nil
}
