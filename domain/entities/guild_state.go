package entities

import "fmt"

const (
	// MaxSpinHistory bounds the spin_results FIFO
	MaxSpinHistory = 100

	// MaxPrizes is the setter-enforced cap on a prize pool
	MaxPrizes = 5

	// MinDailySpinLimit is the lowest configurable daily draw cap
	MinDailySpinLimit = 1
)

// GuildSettings holds per-guild configuration embedded in the guild document
type GuildSettings struct {
	SpinCostNormal   int     `json:"spin_cost_normal"`
	SpinCostVip      int     `json:"spin_cost_vip"`
	BotAvatarURL     *string `json:"bot_avatar_url"`
	StreamingStatus  string  `json:"streaming_status"`
	InviteLogChannel *int64  `json:"invite_log_channel"`
	DailySpinLimit   int     `json:"daily_spin_limit"`
}

// SpinCost returns the configured credit cost for a spin type. The draw path
// does not currently debit this cost; see DESIGN.md.
func (s GuildSettings) SpinCost(t SpinType) int {
	if t == SpinTypeVip {
		return s.SpinCostVip
	}
	return s.SpinCostNormal
}

// HasInviteLogChannel checks if an invite log channel is configured
func (s GuildSettings) HasInviteLogChannel() bool {
	return s.InviteLogChannel != nil && *s.InviteLogChannel > 0
}

// GuildState is the whole-guild persistence document. It is loaded, mutated
// and written back as a unit; the repository serializes access per guild.
type GuildState struct {
	Invites      map[string]*InviteCredits    `json:"invites"`
	InvitesCache map[string]int               `json:"invites_cache"`
	NormalPrizes []string                     `json:"normal_prizes"`
	VipPrizes    []string                     `json:"vip_prizes"`
	Settings     GuildSettings                `json:"settings"`
	SpinResults  []SpinRecord                 `json:"spin_results"`
	DailySpins   map[string]*DailySpinCounter `json:"daily_spins"`
}

// NewGuildState creates the default document for a first-seen guild
func NewGuildState() *GuildState {
	return &GuildState{
		Invites:      make(map[string]*InviteCredits),
		InvitesCache: make(map[string]int),
		NormalPrizes: []string{"Prize 1", "Prize 2", "Prize 3", "Prize 4", "Prize 5"},
		VipPrizes:    []string{"VIP Prize 1", "VIP Prize 2", "VIP Prize 3", "VIP Prize 4", "VIP Prize 5"},
		Settings: GuildSettings{
			SpinCostNormal:  1,
			SpinCostVip:     5,
			StreamingStatus: "Spin and win!",
			DailySpinLimit:  10,
		},
		SpinResults: []SpinRecord{},
		DailySpins:  make(map[string]*DailySpinCounter),
	}
}

// Normalize repairs nil maps and slices after JSON decoding so callers can
// mutate the document without nil checks
func (g *GuildState) Normalize() {
	if g.Invites == nil {
		g.Invites = make(map[string]*InviteCredits)
	}
	if g.InvitesCache == nil {
		g.InvitesCache = make(map[string]int)
	}
	if g.DailySpins == nil {
		g.DailySpins = make(map[string]*DailySpinCounter)
	}
	if g.SpinResults == nil {
		g.SpinResults = []SpinRecord{}
	}
}

// CreditsFor returns the user's invite credits, zero-valued when absent
func (g *GuildState) CreditsFor(userID string) InviteCredits {
	if c, ok := g.Invites[userID]; ok && c != nil {
		return *c
	}
	return InviteCredits{}
}

// ensureCredits returns the mutable credit entry for a user, creating the
// default {0,0} entry when absent
func (g *GuildState) ensureCredits(userID string) *InviteCredits {
	c, ok := g.Invites[userID]
	if !ok || c == nil {
		c = &InviteCredits{}
		g.Invites[userID] = c
	}
	return c
}

// AddInvites adds count normal-track credits to a user
func (g *GuildState) AddInvites(userID string, count int) InviteCredits {
	c := g.ensureCredits(userID)
	c.Normal += count
	return *c
}

// RemoveInvites removes count normal-track credits, clamping at zero
func (g *GuildState) RemoveInvites(userID string, count int) InviteCredits {
	c := g.ensureCredits(userID)
	c.Normal -= count
	if c.Normal < 0 {
		c.Normal = 0
	}
	return *c
}

// CreditInviter awards one normal-track credit for a successful referral
func (g *GuildState) CreditInviter(userID string) InviteCredits {
	c := g.ensureCredits(userID)
	c.Normal++
	return *c
}

// PrizePool returns the pool for a spin type
func (g *GuildState) PrizePool(t SpinType) []string {
	if t == SpinTypeVip {
		return g.VipPrizes
	}
	return g.NormalPrizes
}

// SetPrizePool replaces the pool for a spin type, capping at MaxPrizes
func (g *GuildState) SetPrizePool(t SpinType, prizes []string) {
	if len(prizes) > MaxPrizes {
		prizes = prizes[:MaxPrizes]
	}
	if t == SpinTypeVip {
		g.VipPrizes = prizes
	} else {
		g.NormalPrizes = prizes
	}
}

// AppendSpinResult appends a history record, evicting the oldest entries
// once the FIFO exceeds MaxSpinHistory
func (g *GuildState) AppendSpinResult(r SpinRecord) {
	g.SpinResults = append(g.SpinResults, r)
	if len(g.SpinResults) > MaxSpinHistory {
		g.SpinResults = g.SpinResults[len(g.SpinResults)-MaxSpinHistory:]
	}
}

// RecentSpinResults returns up to limit of the newest history records in
// chronological order
func (g *GuildState) RecentSpinResults(limit int) []SpinRecord {
	if limit <= 0 || len(g.SpinResults) <= limit {
		return g.SpinResults
	}
	return g.SpinResults[len(g.SpinResults)-limit:]
}

// DailyCounter returns the user's counter after applying the lazy rollover
// for today. The second return reports whether the document changed and
// needs persisting.
func (g *GuildState) DailyCounter(userID, today string) (DailySpinCounter, bool) {
	c, ok := g.DailySpins[userID]
	if !ok || c == nil {
		fresh := &DailySpinCounter{Date: today, Count: 0}
		g.DailySpins[userID] = fresh
		return *fresh, true
	}
	rolled := c.Rollover(today)
	if rolled != *c {
		*c = rolled
		return rolled, true
	}
	return rolled, false
}

// IncrementDailySpins applies the rollover for today and adds one draw,
// returning the new count
func (g *GuildState) IncrementDailySpins(userID, today string) int {
	counter, _ := g.DailyCounter(userID, today)
	counter.Count++
	g.DailySpins[userID] = &counter
	return counter.Count
}

// ValidateDailyLimit checks a proposed daily draw cap
func ValidateDailyLimit(limit int) error {
	if limit < MinDailySpinLimit {
		return fmt.Errorf("daily spin limit must be at least %d", MinDailySpinLimit)
	}
	return nil
}
