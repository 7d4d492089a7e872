package services

import (
	"context"
	"fmt"
	"time"

	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"
)

// dailyLimitService implements the DailyLimitService interface
type dailyLimitService struct {
	guildStateRepo interfaces.GuildStateRepository
	now            func() time.Time
}

// NewDailyLimitService creates a new daily limit service
func NewDailyLimitService(guildStateRepo interfaces.GuildStateRepository) interfaces.DailyLimitService {
	return &dailyLimitService{
		guildStateRepo: guildStateRepo,
		now:            time.Now,
	}
}

// GetDailyCount returns the user's draw count for today. Creating a missing
// counter or rolling over a stale one persists the document; a same-day read
// leaves it untouched.
func (s *dailyLimitService) GetDailyCount(ctx context.Context, guildID int64, userID string) (int, error) {
	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to get guild state: %w", err)
	}

	counter, changed := state.DailyCounter(userID, entities.LocalDay(s.now()))
	if changed {
		if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
			return 0, fmt.Errorf("failed to save guild state: %w", err)
		}
	}

	return counter.Count, nil
}

// IncrementDailyCount applies the rollover, adds one draw and persists
func (s *dailyLimitService) IncrementDailyCount(ctx context.Context, guildID int64, userID string) (int, error) {
	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to get guild state: %w", err)
	}

	count := state.IncrementDailySpins(userID, entities.LocalDay(s.now()))
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return 0, fmt.Errorf("failed to save guild state: %w", err)
	}

	return count, nil
}
