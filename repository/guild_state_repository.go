package repository

import (
	"context"
	"fmt"

	"wheelbot/database"
	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
)

// GuildStateRepository stores one JSONB document per guild. Reads and writes
// are always whole-document; inside a unit of work the read takes the row
// lock so concurrent read-modify-write cycles serialize per guild.
type GuildStateRepository struct {
	q       Queryable
	locking bool
}

// NewGuildStateRepository creates a repository backed by the connection pool.
// Pool-backed reads do not hold the row lock past the statement, so callers
// needing atomic read-modify-write should go through a unit of work.
func NewGuildStateRepository(db *database.DB) interfaces.GuildStateRepository {
	return &GuildStateRepository{q: db.Pool}
}

// newGuildStateRepositoryWithTx creates a repository bound to a transaction
func newGuildStateRepositoryWithTx(tx Queryable) interfaces.GuildStateRepository {
	return &GuildStateRepository{q: tx, locking: true}
}

// Get loads the guild document, inserting defaults on first access
func (r *GuildStateRepository) Get(ctx context.Context, guildID int64) (*entities.GuildState, error) {
	raw, err := r.selectState(ctx, guildID)
	if err == pgx.ErrNoRows {
		if err := r.insertDefaults(ctx, guildID); err != nil {
			return nil, err
		}
		raw, err = r.selectState(ctx, guildID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild state for guild %d: %w", guildID, err)
	}

	var state entities.GuildState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode guild state for guild %d: %w", guildID, err)
	}
	state.Normalize()
	return &state, nil
}

// Save writes the whole guild document back
func (r *GuildStateRepository) Save(ctx context.Context, guildID int64, state *entities.GuildState) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode guild state for guild %d: %w", guildID, err)
	}

	query := `
		INSERT INTO guild_states (guild_id, state)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = NOW()
	`
	if _, err := r.q.Exec(ctx, query, guildID, encoded); err != nil {
		return fmt.Errorf("failed to save guild state for guild %d: %w", guildID, err)
	}
	return nil
}

func (r *GuildStateRepository) selectState(ctx context.Context, guildID int64) ([]byte, error) {
	query := `SELECT state FROM guild_states WHERE guild_id = $1`
	if r.locking {
		query += ` FOR UPDATE`
	}

	var raw []byte
	err := r.q.QueryRow(ctx, query, guildID).Scan(&raw)
	return raw, err
}

// insertDefaults seeds a fresh document. ON CONFLICT DO NOTHING keeps this
// safe when two connections race on a guild's first access; the re-select
// then observes whichever insert won.
func (r *GuildStateRepository) insertDefaults(ctx context.Context, guildID int64) error {
	encoded, err := json.Marshal(entities.NewGuildState())
	if err != nil {
		return fmt.Errorf("failed to encode default guild state: %w", err)
	}

	query := `
		INSERT INTO guild_states (guild_id, state)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO NOTHING
	`
	if _, err := r.q.Exec(ctx, query, guildID, encoded); err != nil {
		return fmt.Errorf("failed to create guild state for guild %d: %w", guildID, err)
	}
	return nil
}
