package services

import (
	"context"
	"fmt"
	"strings"

	"wheelbot/domain/entities"
	"wheelbot/domain/interfaces"
)

// guildStateService implements the GuildStateService interface
type guildStateService struct {
	guildStateRepo interfaces.GuildStateRepository
}

// NewGuildStateService creates a new guild state service
func NewGuildStateService(guildStateRepo interfaces.GuildStateRepository) interfaces.GuildStateService {
	return &guildStateService{
		guildStateRepo: guildStateRepo,
	}
}

// GetOrCreateState retrieves the guild document, creating defaults on first access
func (s *guildStateService) GetOrCreateState(ctx context.Context, guildID int64) (*entities.GuildState, error) {
	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild state: %w", err)
	}
	return state, nil
}

// GetInviteBalance returns a user's credit balance
func (s *guildStateService) GetInviteBalance(ctx context.Context, guildID int64, userID string) (entities.InviteCredits, error) {
	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return entities.InviteCredits{}, fmt.Errorf("failed to get guild state: %w", err)
	}
	return state.CreditsFor(userID), nil
}

// AddInvites grants normal-track credits to a user
func (s *guildStateService) AddInvites(ctx context.Context, guildID int64, userID string, count int) (entities.InviteCredits, error) {
	if count <= 0 {
		return entities.InviteCredits{}, fmt.Errorf("invite count must be positive")
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return entities.InviteCredits{}, fmt.Errorf("failed to get guild state: %w", err)
	}

	credits := state.AddInvites(userID, count)
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return entities.InviteCredits{}, fmt.Errorf("failed to save guild state: %w", err)
	}

	return credits, nil
}

// RemoveInvites revokes normal-track credits, clamping at zero
func (s *guildStateService) RemoveInvites(ctx context.Context, guildID int64, userID string, count int) (entities.InviteCredits, error) {
	if count <= 0 {
		return entities.InviteCredits{}, fmt.Errorf("invite count must be positive")
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return entities.InviteCredits{}, fmt.Errorf("failed to get guild state: %w", err)
	}

	credits := state.RemoveInvites(userID, count)
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return entities.InviteCredits{}, fmt.Errorf("failed to save guild state: %w", err)
	}

	return credits, nil
}

// SetPrizePool replaces a variant's prize pool. Blank entries are filtered
// out; the pool is capped at entities.MaxPrizes.
func (s *guildStateService) SetPrizePool(ctx context.Context, guildID int64, spinType entities.SpinType, prizes []string) ([]string, error) {
	if !spinType.IsValid() {
		return nil, fmt.Errorf("invalid spin type: %q", spinType)
	}

	filtered := make([]string, 0, len(prizes))
	for _, p := range prizes {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild state: %w", err)
	}

	state.SetPrizePool(spinType, filtered)
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return nil, fmt.Errorf("failed to save guild state: %w", err)
	}

	return state.PrizePool(spinType), nil
}

// UpdateSpinCost sets the configured credit cost for a variant
func (s *guildStateService) UpdateSpinCost(ctx context.Context, guildID int64, spinType entities.SpinType, cost int) error {
	if !spinType.IsValid() {
		return fmt.Errorf("invalid spin type: %q", spinType)
	}
	if cost < 0 {
		return fmt.Errorf("spin cost must not be negative")
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild state: %w", err)
	}

	if spinType == entities.SpinTypeVip {
		state.Settings.SpinCostVip = cost
	} else {
		state.Settings.SpinCostNormal = cost
	}

	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return fmt.Errorf("failed to save guild state: %w", err)
	}

	return nil
}

// UpdateDailyLimit sets the per-user daily draw cap
func (s *guildStateService) UpdateDailyLimit(ctx context.Context, guildID int64, limit int) error {
	if err := entities.ValidateDailyLimit(limit); err != nil {
		return err
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild state: %w", err)
	}

	state.Settings.DailySpinLimit = limit
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return fmt.Errorf("failed to save guild state: %w", err)
	}

	return nil
}

// UpdateInviteLogChannel sets the channel for join-attribution posts
func (s *guildStateService) UpdateInviteLogChannel(ctx context.Context, guildID int64, channelID *int64) error {
	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild state: %w", err)
	}

	state.Settings.InviteLogChannel = channelID
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return fmt.Errorf("failed to save guild state: %w", err)
	}

	return nil
}

// UpdateBotAvatarURL stores the bot avatar URL
func (s *guildStateService) UpdateBotAvatarURL(ctx context.Context, guildID int64, url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("avatar URL must not be empty")
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild state: %w", err)
	}

	state.Settings.BotAvatarURL = &url
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return fmt.Errorf("failed to save guild state: %w", err)
	}

	return nil
}

// UpdateStreamingStatus stores the streaming presence text
func (s *guildStateService) UpdateStreamingStatus(ctx context.Context, guildID int64, status string) error {
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("streaming status must not be empty")
	}

	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild state: %w", err)
	}

	state.Settings.StreamingStatus = status
	if err := s.guildStateRepo.Save(ctx, guildID, state); err != nil {
		return fmt.Errorf("failed to save guild state: %w", err)
	}

	return nil
}

// GetRecentSpinResults returns the newest history records, oldest first
func (s *guildStateService) GetRecentSpinResults(ctx context.Context, guildID int64, limit int) ([]entities.SpinRecord, error) {
	state, err := s.guildStateRepo.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild state: %w", err)
	}
	return state.RecentSpinResults(limit), nil
}
