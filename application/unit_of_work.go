package application

import (
	"context"

	"wheelbot/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations.
// The guild state repository it exposes holds the guild's row lock for the
// lifetime of the transaction, so read-modify-write sequences against the
// document are atomic per guild.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// GuildStateRepository returns the guild-scoped state repository
	GuildStateRepository() interfaces.GuildStateRepository
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// CreateForGuild creates a new UnitOfWork instance scoped to a specific guild
	CreateForGuild(guildID int64) UnitOfWork
}
