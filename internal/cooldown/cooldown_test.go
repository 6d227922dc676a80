package cooldown

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

func ptr(t time.Time) *time.Time { return &t }

func TestCheckCooldownInternal(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	duration := 5 * time.Minute

	tests := []struct {
		name           string
		lastUsed       *time.Time
		wantOnCooldown bool
		wantRemaining  time.Duration
	}{
		{"nil lastUsed", nil, false, 0},
		{"active cooldown", ptr(now.Add(-2 * time.Minute)), true, 3 * time.Minute},
		{"expired cooldown", ptr(now.Add(-6 * time.Minute)), false, 0},
		{"exact boundary", ptr(now.Add(-5 * time.Minute)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onCooldown, remaining := checkCooldownInternal(tt.lastUsed, duration, now)
			assert.Equal(t, tt.wantOnCooldown, onCooldown)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestConfig_Check(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	cfg := Config{}

	err := cfg.Check(domain.ActionDaily, ptr(now.Add(-23*time.Hour)), now)
	require.Error(t, err)

	var cdErr ErrOnCooldown
	require.True(t, errors.As(err, &cdErr))
	assert.Equal(t, domain.ActionDaily, cdErr.Action)
	assert.Equal(t, time.Hour, cdErr.Remaining)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)

	assert.NoError(t, cfg.Check(domain.ActionDaily, ptr(now.Add(-24*time.Hour)), now))
	assert.NoError(t, cfg.Check(domain.ActionDaily, nil, now))
}

func TestConfig_DevModeBypass(t *testing.T) {
	now := time.Now()
	cfg := Config{DevMode: true}
	assert.NoError(t, cfg.Check(domain.ActionWork, &now, now))
}

func TestConfig_GetCooldownDuration(t *testing.T) {
	cfg := Config{Cooldowns: map[string]time.Duration{domain.ActionRob: 30 * time.Minute}}

	assert.Equal(t, 30*time.Minute, cfg.GetCooldownDuration(domain.ActionRob))
	assert.Equal(t, domain.DefaultApplyCooldown, cfg.GetCooldownDuration(domain.ActionApply))
	assert.Equal(t, domain.DefaultResignTenure, cfg.GetCooldownDuration(domain.ActionResign))
	assert.Equal(t, DefaultCooldownDuration, cfg.GetCooldownDuration("unknown"))
}

func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{90 * time.Minute, "you can daily again in 1h 30m"},
		{150 * time.Second, "you can daily again in 2m 30s"},
		{42 * time.Second, "you can daily again in 42s"},
		{0, "you can daily again in 0s"},
	}
	for _, tt := range tests {
		err := ErrOnCooldown{Action: domain.ActionDaily, Remaining: tt.remaining}
		assert.Equal(t, tt.want, err.Error())
	}
}

func TestErrOnCooldown_Is(t *testing.T) {
	wrapped := fmt.Errorf("claim: %w", ErrOnCooldown{Action: domain.ActionWork, Remaining: time.Minute})

	assert.ErrorIs(t, wrapped, ErrOnCooldown{})
	assert.ErrorIs(t, wrapped, domain.ErrOnCooldown)
	assert.Equal(t, domain.KindCooldown, domain.KindOf(wrapped))
	assert.False(t, errors.Is(errors.New("other"), ErrOnCooldown{}))
}
