package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"
)

// spinService implements the SpinService interface
type spinService struct {
	guildStateRepo interfaces.GuildStateRepository
	now            func() time.Time
}

// NewSpinService creates a new spin service
func NewSpinService(guildStateRepo interfaces.GuildStateRepository) interfaces.SpinService {
	return &spinService{
		guildStateRepo: guildStateRepo,
		now:            time.Now,
	}
}

// PerformSpin runs one draw: cap check, pool check, uniform random prize,
// counter increment and history append, committed in a single save.
// Rejections come back in the outcome; errors are persistence failures only.
func (s *spinService) PerformSpin(ctx context.Context, guildID int64, userID, displayName string, spinType entities.SpinType) (*interfaces.SpinOutcome, error) {
	if !spinType.IsValid() {
		return nil, fmt.Errorf("invalid spin type: %q", spinType)
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild state: %w", err)
	}

	now := s.now()
	today := entities.LocalDay(now)
	limit := state.Settings.DailySpinLimit

	counter, _ := state.DailyCounter(userID, today)
	if counter.Count >= limit {
		// Rejected draws never mutate the counter or history, so any
		// rollover applied above is deliberately not persisted either.
		return &interfaces.SpinOutcome{
			Rejected:  true,
			Reason:    entities.SpinRejectionCapExceeded,
			Type:      spinType,
			Count:     counter.Count,
			Remaining: 0,
			Limit:     limit,
		}, nil
	}

	pool := state.PrizePool(spinType)
	if len(pool) == 0 {
		return &interfaces.SpinOutcome{
			Rejected: true,
			Reason:   entities.SpinRejectionEmptyPool,
			Type:     spinType,
			Count:    counter.Count,
			Limit:    limit,
		}, nil
	}

	prize, err := pickPrize(pool)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prize: %w", err)
	}

	newCount := state.IncrementDailySpins(userID, today)
	state.AppendSpinResult(entities.SpinRecord{
		User:      displayName,
		Type:      spinType,
		Prize:     prize,
		Timestamp: now,
	})

	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return nil, fmt.Errorf("failed to save guild state: %w", err)
	}

	return &interfaces.SpinOutcome{
		Prize:     prize,
		Type:      spinType,
		Count:     newCount,
		Remaining: limit - newCount,
		Limit:     limit,
	}, nil
}

// pickPrize selects one prize uniformly at random. Each draw is an
// independent, memoryless selection; repeats across draws are allowed.
func pickPrize(pool []string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return "", fmt.Errorf("random generation failed: %w", err)
	}
	return pool[n.Int64()], nil
}
