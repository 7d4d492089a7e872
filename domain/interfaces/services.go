package interfaces

import (
	"context"

	"wheelbot/domain/entities"
)

// SpinOutcome is the result of one draw request. Business-rule rejections
// are carried here as values, never as errors.
type SpinOutcome struct {
	Rejected  bool
	Reason    entities.SpinRejectionReason
	Prize     string
	Type      entities.SpinType
	Count     int
	Remaining int
	Limit     int
}

// SpinService runs the prize draw state machine
type SpinService interface {
	// PerformSpin validates the daily cap and prize pool, draws a prize
	// uniformly at random, records history and commits the guild document.
	// The returned outcome carries rejections; errors are reserved for
	// persistence failures.
	PerformSpin(ctx context.Context, guildID int64, userID, displayName string, spinType entities.SpinType) (*SpinOutcome, error)
}

// DailyLimitService manages per-user daily draw counters with lazy
// calendar-day rollover
type DailyLimitService interface {
	// GetDailyCount returns the user's draw count for today, persisting the
	// counter when it is created or rolled over
	GetDailyCount(ctx context.Context, guildID int64, userID string) (int, error)

	// IncrementDailyCount applies the rollover, adds one draw and persists
	IncrementDailyCount(ctx context.Context, guildID int64, userID string) (int, error)
}

// InviteTrackerService attributes member joins to inviters by diffing
// invite-usage snapshots
type InviteTrackerService interface {
	// RecordMemberJoin reconciles one join event. Bot members are ignored
	// (nil, nil). A nil attribution with nil error means no inviter could
	// be resolved; the snapshot cache is still replaced and persisted.
	RecordMemberJoin(ctx context.Context, guildID int64, memberID string, isBot bool) (*entities.JoinAttribution, error)
}

// GuildStateService exposes typed reads and administrative mutations over
// the guild document
type GuildStateService interface {
	// GetOrCreateState retrieves the guild document, creating defaults on
	// first access
	GetOrCreateState(ctx context.Context, guildID int64) (*entities.GuildState, error)

	// GetInviteBalance returns a user's credit balance
	GetInviteBalance(ctx context.Context, guildID int64, userID string) (entities.InviteCredits, error)

	// AddInvites grants normal-track credits to a user
	AddInvites(ctx context.Context, guildID int64, userID string, count int) (entities.InviteCredits, error)

	// RemoveInvites revokes normal-track credits, clamping at zero
	RemoveInvites(ctx context.Context, guildID int64, userID string, count int) (entities.InviteCredits, error)

	// SetPrizePool replaces a variant's prize pool (blanks filtered, cap 5)
	SetPrizePool(ctx context.Context, guildID int64, spinType entities.SpinType, prizes []string) ([]string, error)

	// UpdateSpinCost sets the configured credit cost for a variant
	UpdateSpinCost(ctx context.Context, guildID int64, spinType entities.SpinType, cost int) error

	// UpdateDailyLimit sets the per-user daily draw cap (minimum 1)
	UpdateDailyLimit(ctx context.Context, guildID int64, limit int) error

	// UpdateInviteLogChannel sets the channel for join-attribution posts
	UpdateInviteLogChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateBotAvatarURL stores the bot avatar URL
	UpdateBotAvatarURL(ctx context.Context, guildID int64, url string) error

	// UpdateStreamingStatus stores the streaming presence text
	UpdateStreamingStatus(ctx context.Context, guildID int64, status string) error

	// GetRecentSpinResults returns the newest history records, oldest first
	GetRecentSpinResults(ctx context.Context, guildID int64, limit int) ([]entities.SpinRecord, error)
}
