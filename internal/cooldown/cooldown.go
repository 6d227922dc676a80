package cooldown

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60
	seconds := int(e.Remaining.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	default:
		return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
	}
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Check returns ErrOnCooldown when lastUsed is less than the action's duration before now.
// A nil lastUsed never gates.
func (c Config) Check(action string, lastUsed *time.Time, now time.Time) error {
	if c.DevMode {
		slog.Debug(LogMsgDevModeBypass, "action", action)
		return nil
	}
	onCooldown, remaining := checkCooldownInternal(lastUsed, c.GetCooldownDuration(action), now)
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return nil
}

// Remaining reports how long until action is available again
func (c Config) Remaining(action string, lastUsed *time.Time, now time.Time) time.Duration {
	_, remaining := checkCooldownInternal(lastUsed, c.GetCooldownDuration(action), now)
	return remaining
}

func checkCooldownInternal(lastUsed *time.Time, duration time.Duration, now time.Time) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	elapsed := now.Sub(*lastUsed)
	if elapsed >= duration {
		return false, 0
	}
	return true, duration - elapsed
}
