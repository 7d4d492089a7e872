package entities

// InviteCredits tracks a user's accrued referral credits, split by track
type InviteCredits struct {
	Normal int `json:"normal"`
	Vip    int `json:"vip"`
}

// Total returns the combined credit balance across both tracks
func (c InviteCredits) Total() int {
	return c.Normal + c.Vip
}

// InviteUsage is one live invite link as reported by the invite directory.
// The slice order returned by the directory is the enumeration order used
// for snapshot diffing.
type InviteUsage struct {
	Code      string
	Uses      int
	InviterID string
}

// JoinAttribution is the outcome of reconciling one member join
type JoinAttribution struct {
	InviterID string
	Code      string
	NewTotal  int
}
