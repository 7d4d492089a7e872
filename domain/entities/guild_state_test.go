package entities

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuildState_Defaults(t *testing.T) {
	t.Parallel()

	g := NewGuildState()

	assert.Empty(t, g.Invites)
	assert.Empty(t, g.InvitesCache)
	assert.Empty(t, g.SpinResults)
	assert.Empty(t, g.DailySpins)
	assert.Len(t, g.NormalPrizes, 5)
	assert.Len(t, g.VipPrizes, 5)
	assert.Equal(t, 1, g.Settings.SpinCostNormal)
	assert.Equal(t, 5, g.Settings.SpinCostVip)
	assert.Equal(t, 10, g.Settings.DailySpinLimit)
	assert.Equal(t, "Spin and win!", g.Settings.StreamingStatus)
	assert.Nil(t, g.Settings.BotAvatarURL)
	assert.Nil(t, g.Settings.InviteLogChannel)
}

func TestGuildState_Credits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		setup  func(*GuildState)
		check  func(*testing.T, *GuildState)
	}{
		{
			name:  "absent user reads as zero credits",
			setup: func(g *GuildState) {},
			check: func(t *testing.T, g *GuildState) {
				assert.Equal(t, InviteCredits{}, g.CreditsFor("42"))
			},
		},
		{
			name: "add creates entry and accumulates",
			setup: func(g *GuildState) {
				g.AddInvites("42", 3)
				g.AddInvites("42", 2)
			},
			check: func(t *testing.T, g *GuildState) {
				assert.Equal(t, InviteCredits{Normal: 5}, g.CreditsFor("42"))
				assert.Equal(t, 5, g.CreditsFor("42").Total())
			},
		},
		{
			name: "remove clamps at zero",
			setup: func(g *GuildState) {
				g.AddInvites("42", 2)
				g.RemoveInvites("42", 10)
			},
			check: func(t *testing.T, g *GuildState) {
				assert.Equal(t, InviteCredits{Normal: 0}, g.CreditsFor("42"))
			},
		},
		{
			name: "remove from absent user creates zeroed entry",
			setup: func(g *GuildState) {
				g.RemoveInvites("42", 4)
			},
			check: func(t *testing.T, g *GuildState) {
				assert.Equal(t, InviteCredits{}, g.CreditsFor("42"))
			},
		},
		{
			name: "crediting an inviter increments the normal track",
			setup: func(g *GuildState) {
				g.CreditInviter("7")
				g.CreditInviter("7")
			},
			check: func(t *testing.T, g *GuildState) {
				assert.Equal(t, InviteCredits{Normal: 2}, g.CreditsFor("7"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewGuildState()
			tt.setup(g)
			tt.check(t, g)
		})
	}
}

func TestGuildState_SetPrizePool(t *testing.T) {
	t.Parallel()

	g := NewGuildState()

	g.SetPrizePool(SpinTypeNormal, []string{"A", "B", "C", "D", "E", "F", "G"})
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.PrizePool(SpinTypeNormal))

	g.SetPrizePool(SpinTypeVip, []string{"X"})
	assert.Equal(t, []string{"X"}, g.PrizePool(SpinTypeVip))

	g.SetPrizePool(SpinTypeVip, nil)
	assert.Empty(t, g.PrizePool(SpinTypeVip))
}

func TestGuildState_AppendSpinResult_Bound(t *testing.T) {
	t.Parallel()

	g := NewGuildState()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < MaxSpinHistory+25; i++ {
		g.AppendSpinResult(SpinRecord{
			User:      "42",
			Type:      SpinTypeNormal,
			Prize:     fmt.Sprintf("prize-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}

	require.Len(t, g.SpinResults, MaxSpinHistory)
	// Oldest 25 were evicted; remaining entries are the newest in order
	assert.Equal(t, "prize-25", g.SpinResults[0].Prize)
	assert.Equal(t, fmt.Sprintf("prize-%d", MaxSpinHistory+24), g.SpinResults[MaxSpinHistory-1].Prize)
	for i := 1; i < len(g.SpinResults); i++ {
		assert.True(t, g.SpinResults[i].Timestamp.After(g.SpinResults[i-1].Timestamp))
	}
}

func TestGuildState_RecentSpinResults(t *testing.T) {
	t.Parallel()

	g := NewGuildState()
	for i := 0; i < 15; i++ {
		g.AppendSpinResult(SpinRecord{Prize: fmt.Sprintf("p%d", i)})
	}

	recent := g.RecentSpinResults(10)
	require.Len(t, recent, 10)
	assert.Equal(t, "p5", recent[0].Prize)
	assert.Equal(t, "p14", recent[9].Prize)

	assert.Len(t, g.RecentSpinResults(0), 15)
	assert.Len(t, g.RecentSpinResults(100), 15)
}

func TestGuildState_DailyCounter(t *testing.T) {
	t.Parallel()

	t.Run("absent user creates today's counter and reports change", func(t *testing.T) {
		t.Parallel()

		g := NewGuildState()
		counter, changed := g.DailyCounter("42", "2025-06-01")
		assert.True(t, changed)
		assert.Equal(t, DailySpinCounter{Date: "2025-06-01", Count: 0}, counter)

		// Second read on the same day is a pure read
		counter, changed = g.DailyCounter("42", "2025-06-01")
		assert.False(t, changed)
		assert.Equal(t, 0, counter.Count)
	})

	t.Run("stale date rolls over to zero", func(t *testing.T) {
		t.Parallel()

		g := NewGuildState()
		g.DailySpins["42"] = &DailySpinCounter{Date: "2025-05-31", Count: 9}

		counter, changed := g.DailyCounter("42", "2025-06-01")
		assert.True(t, changed)
		assert.Equal(t, DailySpinCounter{Date: "2025-06-01", Count: 0}, counter)
	})

	t.Run("increment is monotonic across rollover", func(t *testing.T) {
		t.Parallel()

		g := NewGuildState()
		g.DailySpins["42"] = &DailySpinCounter{Date: "2025-05-31", Count: 9}

		assert.Equal(t, 1, g.IncrementDailySpins("42", "2025-06-01"))
		assert.Equal(t, 2, g.IncrementDailySpins("42", "2025-06-01"))

		counter, changed := g.DailyCounter("42", "2025-06-01")
		assert.False(t, changed)
		assert.Equal(t, 2, counter.Count)
	})
}

func TestGuildState_Normalize(t *testing.T) {
	t.Parallel()

	g := &GuildState{}
	g.Normalize()

	assert.NotNil(t, g.Invites)
	assert.NotNil(t, g.InvitesCache)
	assert.NotNil(t, g.DailySpins)
	assert.NotNil(t, g.SpinResults)
}

func TestValidateDailyLimit(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateDailyLimit(1))
	assert.NoError(t, ValidateDailyLimit(10))
	assert.Error(t, ValidateDailyLimit(0))
	assert.Error(t, ValidateDailyLimit(-3))
}
