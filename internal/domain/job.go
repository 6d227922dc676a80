package domain

import "time"

// Job is a static catalog entry users can apply for
type Job struct {
	JobID            string  `json:"job_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	HourlyPay        int64   `json:"hourly_pay"`
	AcceptanceChance float64 `json:"acceptance_chance"`
}

// Employment is a user's single active job
type Employment struct {
	UserID     int64      `json:"user_id"`
	JobID      string     `json:"job_id"`
	StartedAt  time.Time  `json:"started_at"`
	LastWorkAt *time.Time `json:"last_work_at,omitempty"`
}

// UserJob joins an employment with its catalog entry
type UserJob struct {
	Employment
	Job Job `json:"job"`
}

// ApplicationResult reports the random outcome of a job application
type ApplicationResult struct {
	Job      Job  `json:"job"`
	Accepted bool `json:"accepted"`
}

// WorkChallenge is the arithmetic puzzle that gates a work payout
type WorkChallenge struct {
	UserID    int64     `json:"user_id"`
	A         int       `json:"a"`
	B         int       `json:"b"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Answer returns the expected solution
func (c WorkChallenge) Answer() int {
	return c.A * c.B
}

// WorkResult reports what a submitted answer earned
type WorkResult struct {
	Correct     bool  `json:"correct"`
	Late        bool  `json:"late,omitempty"`
	Expected    int   `json:"expected"`
	Pay         int64 `json:"pay,omitempty"`
	PointsBonus int64 `json:"points_bonus,omitempty"`
	NewBalance  int64 `json:"new_balance,omitempty"`
}
