package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wheelbot/domain/entities"
	"wheelbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinService_PerformSpin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful draw increments the counter by exactly one", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedPrizes(t, repo, 1, entities.SpinTypeNormal, []string{"Nitro"})

		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}

		outcome, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		require.False(t, outcome.Rejected)
		assert.Equal(t, "Nitro", outcome.Prize)
		assert.Equal(t, 1, outcome.Count)
		assert.Equal(t, outcome.Limit-1, outcome.Remaining)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, state.DailySpins["42"].Count)
		require.Len(t, state.SpinResults, 1)
		assert.Equal(t, "Player", state.SpinResults[0].User)
		assert.Equal(t, entities.SpinTypeNormal, state.SpinResults[0].Type)
	})

	t.Run("draw at the cap is rejected and counter is unchanged", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedPrizes(t, repo, 1, entities.SpinTypeNormal, []string{"Nitro"})

		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		limit := state.Settings.DailySpinLimit

		for i := 0; i < limit; i++ {
			outcome, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
			require.NoError(t, err)
			require.False(t, outcome.Rejected)
		}

		savesBefore := repo.SaveCalls
		outcome, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		assert.True(t, outcome.Rejected)
		assert.Equal(t, entities.SpinRejectionCapExceeded, outcome.Reason)
		assert.Equal(t, limit, outcome.Count)
		assert.Equal(t, 0, outcome.Remaining)
		assert.Equal(t, savesBefore, repo.SaveCalls)

		state, err = repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, limit, state.DailySpins["42"].Count)
		assert.Len(t, state.SpinResults, limit)
	})

	t.Run("empty pool is rejected without mutating state", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedPrizes(t, repo, 1, entities.SpinTypeNormal, nil)

		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}

		savesBefore := repo.SaveCalls
		outcome, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		assert.True(t, outcome.Rejected)
		assert.Equal(t, entities.SpinRejectionEmptyPool, outcome.Reason)
		assert.Equal(t, savesBefore, repo.SaveCalls)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.NotContains(t, state.DailySpins, "42")
		assert.Empty(t, state.SpinResults)
	})

	t.Run("prize always comes from the configured pool", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		pool := []string{"Alpha", "Beta", "Gamma"}
		seedPrizes(t, repo, 1, entities.SpinTypeVip, pool)

		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}

		for i := 0; i < 5; i++ {
			outcome, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeVip)
			require.NoError(t, err)
			require.False(t, outcome.Rejected)
			assert.Contains(t, pool, outcome.Prize)
			assert.Equal(t, entities.SpinTypeVip, outcome.Type)
		}
	})

	t.Run("limit of two allows exactly two draws", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedPrizes(t, repo, 1, entities.SpinTypeNormal, []string{"X", "Y"})

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		state.Settings.DailySpinLimit = 2
		require.NoError(t, repo.Save(ctx, 1, state))

		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}

		first, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		require.False(t, first.Rejected)
		assert.Equal(t, 1, first.Remaining)

		second, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		require.False(t, second.Rejected)
		assert.Equal(t, 0, second.Remaining)

		third, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		assert.True(t, third.Rejected)
		assert.Equal(t, entities.SpinRejectionCapExceeded, third.Reason)
		assert.Equal(t, 2, third.Count)
	})

	t.Run("cap resets on a new day", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedPrizes(t, repo, 1, entities.SpinTypeNormal, []string{"X"})

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		state.Settings.DailySpinLimit = 1
		require.NoError(t, repo.Save(ctx, 1, state))

		day1 := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}
		outcome, err := day1.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		require.False(t, outcome.Rejected)

		outcome, err = day1.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		assert.True(t, outcome.Rejected)

		day2 := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-02")}
		outcome, err = day2.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		require.NoError(t, err)
		assert.False(t, outcome.Rejected)
		assert.Equal(t, 1, outcome.Count)
	})

	t.Run("history stays bounded under many draws", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedPrizes(t, repo, 1, entities.SpinTypeNormal, []string{"X"})

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		state.Settings.DailySpinLimit = entities.MaxSpinHistory + 50
		require.NoError(t, repo.Save(ctx, 1, state))

		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}
		for i := 0; i < entities.MaxSpinHistory+25; i++ {
			outcome, err := svc.PerformSpin(ctx, 1, "42", fmt.Sprintf("user-%d", i), entities.SpinTypeNormal)
			require.NoError(t, err)
			require.False(t, outcome.Rejected)
		}

		state, err = repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, state.SpinResults, entities.MaxSpinHistory)
		assert.Equal(t, "user-25", state.SpinResults[0].User)
	})

	t.Run("invalid spin type is an error", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		svc := &spinService{guildStateRepo: repo, now: fixedClock("2025-06-01")}

		_, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinType("mega"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid spin type")
	})

	t.Run("repository error propagates", func(t *testing.T) {
		t.Parallel()

		mockRepo := new(testhelpers.MockGuildStateRepository)
		mockRepo.On("Get", ctx, int64(1)).Return((*entities.GuildState)(nil), errors.New("connection refused"))

		svc := &spinService{guildStateRepo: mockRepo, now: fixedClock("2025-06-01")}
		_, err := svc.PerformSpin(ctx, 1, "42", "Player", entities.SpinTypeNormal)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get guild state")
		mockRepo.AssertExpectations(t)
	})
}

// seedPrizes replaces a guild's prize pool for one variant
func seedPrizes(t *testing.T, repo *testhelpers.MemoryGuildStateRepository, guildID int64, spinType entities.SpinType, prizes []string) {
	t.Helper()
	ctx := context.Background()

	state, err := repo.Get(ctx, guildID)
	require.NoError(t, err)
	state.SetPrizePool(spinType, prizes)
	require.NoError(t, repo.Save(ctx, guildID, state))
}
