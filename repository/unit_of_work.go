package repository

import (
	"context"
	"fmt"

	"wheelbot/application"
	"wheelbot/database"
	"wheelbot/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db             *database.DB
	tx             pgx.Tx
	ctx            context.Context
	guildID        int64
	guildStateRepo interfaces.GuildStateRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db: db,
	}
}

// CreateForGuild creates a new UnitOfWork scoped to a specific guild
func (f *unitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return &unitOfWork{
		db:      f.db,
		guildID: guildID,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx
	u.guildStateRepo = newGuildStateRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// GuildStateRepository returns the guild state repository for this unit of work
func (u *unitOfWork) GuildStateRepository() interfaces.GuildStateRepository {
	if u.guildStateRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildStateRepo
}
