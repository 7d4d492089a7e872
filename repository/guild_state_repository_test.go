package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"wheelbot/domain/entities"
	"wheelbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildStateRepository_GetCreatesDefaults(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewGuildStateRepository(testDB.DB)

	state, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"Prize 1", "Prize 2", "Prize 3", "Prize 4", "Prize 5"}, state.NormalPrizes)
	assert.Equal(t, []string{"VIP Prize 1", "VIP Prize 2", "VIP Prize 3", "VIP Prize 4", "VIP Prize 5"}, state.VipPrizes)
	assert.Equal(t, 10, state.Settings.DailySpinLimit)
	assert.Empty(t, state.Invites)
	assert.Empty(t, state.SpinResults)

	// A second read returns the stored document, not a fresh one
	state.Settings.DailySpinLimit = 4
	require.NoError(t, repo.Save(ctx, 100, state))

	again, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Settings.DailySpinLimit)
}

func TestGuildStateRepository_SaveRoundTrip(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewGuildStateRepository(testDB.DB)

	state, err := repo.Get(ctx, 100)
	require.NoError(t, err)

	state.AddInvites("alice", 7)
	state.CreditInviter("bob")
	state.InvitesCache = map[string]int{"abc123": 4}
	state.SetPrizePool(entities.SpinTypeVip, []string{"Gold", "Silver"})
	channelID := int64(555)
	state.Settings.InviteLogChannel = &channelID
	state.IncrementDailySpins("alice", "2025-06-01")
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	state.AppendSpinResult(entities.SpinRecord{
		User:      "alice",
		Type:      entities.SpinTypeNormal,
		Prize:     "Prize 2",
		Timestamp: ts,
	})

	require.NoError(t, repo.Save(ctx, 100, state))

	loaded, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.CreditsFor("alice").Normal)
	assert.Equal(t, 1, loaded.CreditsFor("bob").Normal)
	assert.Equal(t, map[string]int{"abc123": 4}, loaded.InvitesCache)
	assert.Equal(t, []string{"Gold", "Silver"}, loaded.VipPrizes)
	require.NotNil(t, loaded.Settings.InviteLogChannel)
	assert.Equal(t, channelID, *loaded.Settings.InviteLogChannel)
	require.Contains(t, loaded.DailySpins, "alice")
	assert.Equal(t, 1, loaded.DailySpins["alice"].Count)
	require.Len(t, loaded.SpinResults, 1)
	assert.True(t, ts.Equal(loaded.SpinResults[0].Timestamp))
}

func TestGuildStateRepository_GuildsAreIsolated(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewGuildStateRepository(testDB.DB)

	first, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	first.AddInvites("alice", 3)
	require.NoError(t, repo.Save(ctx, 100, first))

	second, err := repo.Get(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreditsFor("alice").Normal)
}

func TestUnitOfWork_CommitPersists(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB)

	uow := factory.CreateForGuild(100)
	require.NoError(t, uow.Begin(ctx))

	state, err := uow.GuildStateRepository().Get(ctx, 100)
	require.NoError(t, err)
	state.AddInvites("alice", 2)
	require.NoError(t, uow.GuildStateRepository().Save(ctx, 100, state))
	require.NoError(t, uow.Commit())

	check := NewGuildStateRepository(testDB.DB)
	loaded, err := check.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CreditsFor("alice").Normal)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	// Seed outside the transaction so the document exists beforehand
	seed := NewGuildStateRepository(testDB.DB)
	_, err := seed.Get(ctx, 100)
	require.NoError(t, err)

	factory := NewUnitOfWorkFactory(testDB.DB)
	uow := factory.CreateForGuild(100)
	require.NoError(t, uow.Begin(ctx))

	state, err := uow.GuildStateRepository().Get(ctx, 100)
	require.NoError(t, err)
	state.AddInvites("alice", 99)
	require.NoError(t, uow.GuildStateRepository().Save(ctx, 100, state))
	require.NoError(t, uow.Rollback())

	loaded, err := seed.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.CreditsFor("alice").Normal)
}

func TestUnitOfWork_BeginTwiceFails(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	factory := NewUnitOfWorkFactory(testDB.DB)
	uow := factory.CreateForGuild(100)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	assert.Error(t, uow.Begin(ctx))
}

func TestUnitOfWork_RowLockSerializesWriters(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	// Seed the document so every worker contends on the same row
	seed := NewGuildStateRepository(testDB.DB)
	_, err := seed.Get(ctx, 100)
	require.NoError(t, err)

	factory := NewUnitOfWorkFactory(testDB.DB)

	const workers = 4
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				uow := factory.CreateForGuild(100)
				if err := uow.Begin(ctx); err != nil {
					errs <- err
					return
				}
				state, err := uow.GuildStateRepository().Get(ctx, 100)
				if err != nil {
					uow.Rollback()
					errs <- err
					return
				}
				state.AddInvites("alice", 1)
				if err := uow.GuildStateRepository().Save(ctx, 100, state); err != nil {
					uow.Rollback()
					errs <- err
					return
				}
				if err := uow.Commit(); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	loaded, err := seed.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, loaded.CreditsFor("alice").Normal)
}
