package cooldown

import (
	"time"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Config holds cooldown durations per action
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations
	// If not specified, defaults from domain package are used
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c Config) GetCooldownDuration(action string) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case domain.ActionDaily:
		return domain.DefaultDailyCooldown
	case domain.ActionApply:
		return domain.DefaultApplyCooldown
	case domain.ActionWork:
		return domain.DefaultWorkCooldown
	case domain.ActionResign:
		return domain.DefaultResignTenure
	case domain.ActionRob:
		return domain.DefaultRobCooldown
	case domain.ActionDig:
		return domain.DefaultDigCooldown
	default:
		return DefaultCooldownDuration
	}
}
