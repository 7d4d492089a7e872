package services

import (
	"context"
	"errors"
	"testing"

	"wheelbot/domain/entities"
	"wheelbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteTrackerService_RecordMemberJoin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("credits the creator of the invite whose uses increased", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 5, "bbb": 2})

		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 5, InviterID: "alice"},
			{Code: "bbb", Uses: 3, InviterID: "bob"},
		}, nil)

		svc := NewInviteTrackerService(repo, directory)

		attribution, err := svc.RecordMemberJoin(ctx, 1, "newcomer", false)
		require.NoError(t, err)
		require.NotNil(t, attribution)
		assert.Equal(t, "bob", attribution.InviterID)
		assert.Equal(t, "bbb", attribution.Code)
		assert.Equal(t, 1, attribution.NewTotal)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, state.CreditsFor("bob").Normal)
		assert.Equal(t, 0, state.CreditsFor("alice").Normal)
		directory.AssertExpectations(t)
	})

	t.Run("first increased invite wins when several changed", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 5, "bbb": 2})

		// bbb increased and ccc is brand new; bbb comes first in
		// directory order so bob gets the credit.
		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 5, InviterID: "alice"},
			{Code: "bbb", Uses: 3, InviterID: "bob"},
			{Code: "ccc", Uses: 1, InviterID: "carol"},
		}, nil)

		svc := NewInviteTrackerService(repo, directory)

		attribution, err := svc.RecordMemberJoin(ctx, 1, "newcomer", false)
		require.NoError(t, err)
		require.NotNil(t, attribution)
		assert.Equal(t, "bob", attribution.InviterID)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, state.CreditsFor("carol").Normal)
	})

	t.Run("cache is replaced wholesale with the fresh snapshot", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 5, "stale": 9})

		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 6, InviterID: "alice"},
		}, nil)

		svc := NewInviteTrackerService(repo, directory)

		_, err := svc.RecordMemberJoin(ctx, 1, "newcomer", false)
		require.NoError(t, err)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"aaa": 6}, state.InvitesCache)
	})

	t.Run("no diff yields no attribution but still refreshes the cache", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 5})

		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 5, InviterID: "alice"},
		}, nil)

		svc := NewInviteTrackerService(repo, directory)

		attribution, err := svc.RecordMemberJoin(ctx, 1, "newcomer", false)
		require.NoError(t, err)
		assert.Nil(t, attribution)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, state.CreditsFor("alice").Normal)
	})

	t.Run("increased invite without a resolvable creator gives no credit", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 5})

		// Vanity or widget invites surface with no creator; the diff still
		// consumes the increase so later codes are not credited instead.
		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 6, InviterID: ""},
			{Code: "bbb", Uses: 1, InviterID: "bob"},
		}, nil)

		svc := NewInviteTrackerService(repo, directory)

		attribution, err := svc.RecordMemberJoin(ctx, 1, "newcomer", false)
		require.NoError(t, err)
		assert.Nil(t, attribution)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, state.CreditsFor("bob").Normal)
		assert.Equal(t, map[string]int{"aaa": 6, "bbb": 1}, state.InvitesCache)
	})

	t.Run("bot joins are ignored entirely", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		directory := new(testhelpers.MockInviteDirectory)

		svc := NewInviteTrackerService(repo, directory)

		attribution, err := svc.RecordMemberJoin(ctx, 1, "some-bot", true)
		require.NoError(t, err)
		assert.Nil(t, attribution)
		assert.Equal(t, 0, repo.GetCalls)
		directory.AssertNotCalled(t, "ListGuildInvites")
	})

	t.Run("directory failure keeps the cached baseline", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 5})
		savesBefore := repo.SaveCalls

		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return(nil, errors.New("missing permission"))

		svc := NewInviteTrackerService(repo, directory)

		_, err := svc.RecordMemberJoin(ctx, 1, "newcomer", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list guild invites")
		assert.Equal(t, savesBefore, repo.SaveCalls)

		state, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"aaa": 5}, state.InvitesCache)
	})

	t.Run("repeated joins accumulate credits for the same inviter", func(t *testing.T) {
		t.Parallel()

		repo := testhelpers.NewMemoryGuildStateRepository()
		seedInviteCache(t, repo, 1, map[string]int{"aaa": 0})

		directory := new(testhelpers.MockInviteDirectory)
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 1, InviterID: "alice"},
		}, nil).Once()
		directory.On("ListGuildInvites", ctx, int64(1)).Return([]entities.InviteUsage{
			{Code: "aaa", Uses: 2, InviterID: "alice"},
		}, nil).Once()

		svc := NewInviteTrackerService(repo, directory)

		first, err := svc.RecordMemberJoin(ctx, 1, "m1", false)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, 1, first.NewTotal)

		second, err := svc.RecordMemberJoin(ctx, 1, "m2", false)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, 2, second.NewTotal)
		directory.AssertExpectations(t)
	})
}

// seedInviteCache sets a guild's invite usage snapshot
func seedInviteCache(t *testing.T, repo *testhelpers.MemoryGuildStateRepository, guildID int64, cache map[string]int) {
	t.Helper()
	ctx := context.Background()

	state, err := repo.Get(ctx, guildID)
	require.NoError(t, err)
	state.InvitesCache = cache
	require.NoError(t, repo.Save(ctx, guildID, state))
}
