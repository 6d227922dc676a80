package domain

import "time"

// Account holds a user's credit balance and the per-user timestamps the economy gates on.
// Accounts are created lazily with a zero balance and never deleted.
type Account struct {
	UserID         int64      `json:"user_id"`
	Balance        int64      `json:"balance"`
	LastDailyClaim *time.Time `json:"last_daily_claim,omitempty"`
	JobPoints      int64      `json:"job_points"`
	LastRobAt      *time.Time `json:"last_rob_at,omitempty"`
	LastDigAt      *time.Time `json:"last_dig_at,omitempty"`
}

// DailyResult is returned by a successful daily claim
type DailyResult struct {
	Amount     int64     `json:"amount"`
	NewBalance int64     `json:"new_balance"`
	ClaimedAt  time.Time `json:"claimed_at"`
}

// RobResult describes the outcome of a robbery attempt
type RobResult struct {
	Success bool  `json:"success"`
	Stolen  int64 `json:"stolen,omitempty"`
	Fine    int64 `json:"fine,omitempty"`
	Balance int64 `json:"balance"`
}
