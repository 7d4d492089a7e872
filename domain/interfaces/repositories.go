package interfaces

import (
	"context"

	"wheelbot/domain/entities"
)

// GuildStateRepository defines the interface for whole-guild-document access.
// The document is the unit of atomicity: implementations must serialize
// concurrent Get/Save cycles for the same guild.
type GuildStateRepository interface {
	// Get loads the guild document, inserting and persisting the default
	// document when the guild has not been seen before
	Get(ctx context.Context, guildID int64) (*entities.GuildState, error)

	// Save writes the whole guild document back
	Save(ctx context.Context, guildID int64, state *entities.GuildState) error
}

// InviteDirectory delivers a guild's current active invite links with their
// use counts. Slice order is the enumeration order used for snapshot diffing.
type InviteDirectory interface {
	ListGuildInvites(ctx context.Context, guildID int64) ([]entities.InviteUsage, error)
}
