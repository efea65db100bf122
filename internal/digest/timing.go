package digest

import (
	"log/slog"
	"time"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// Policy decides whether "now" is the right moment to dispatch a digest to an
// account. The scan tick runs every few minutes; the time-of-day window keeps
// an eligible account from receiving a digest on every tick.
type Policy struct {
	DefaultSendTime string        // "15:04" wall-clock default, applied when the account has none
	Tolerance       time.Duration // accepted distance from the preferred send time
	Logger          *slog.Logger
}

func NewPolicy(defaultSendTime string, tolerance time.Duration, logger *slog.Logger) Policy {
	return Policy{
		DefaultSendTime: defaultSendTime,
		Tolerance:       tolerance,
		Logger:          logger,
	}
}

// ShouldSend applies the cadence and time-of-day rules. cadences are the
// review cadences of the account's active sitemaps; an account with no active
// sitemaps never receives a digest. lastSent is nil when the account has
// never received one.
func (p Policy) ShouldSend(account domain.Account, cadences []domain.Cadence, lastSent *time.Time, now time.Time) bool {
	if len(cadences) == 0 {
		return false
	}

	localNow := now.In(p.location(account))
	if !p.withinSendWindow(account, localNow) {
		return false
	}

	if lastSent == nil {
		return true
	}

	cadence, _ := domain.MostUrgentCadence(cadences)
	return now.Sub(*lastSent) >= cadence.Window()
}

// location resolves the account's timezone, falling back to UTC when it is
// blank or unparseable. Never fatal.
func (p Policy) location(account domain.Account) *time.Location {
	if account.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(account.Timezone)
	if err != nil {
		p.Logger.Warn("invalid account timezone, using UTC",
			"account_id", account.ID,
			"timezone", account.Timezone,
		)
		return time.UTC
	}
	return loc
}

func (p Policy) withinSendWindow(account domain.Account, localNow time.Time) bool {
	preferred := p.DefaultSendTime
	if account.PreferredSendTime != nil && *account.PreferredSendTime != "" {
		preferred = *account.PreferredSendTime
	}

	prefHour, prefMinute, ok := parseSendTime(preferred)
	if !ok {
		p.Logger.Warn("invalid preferred send time, using default",
			"account_id", account.ID,
			"send_time", preferred,
		)
		prefHour, prefMinute, ok = parseSendTime(p.DefaultSendTime)
		if !ok {
			prefHour, prefMinute = 9, 0
		}
	}

	diff := minutesOfDay(localNow.Hour(), localNow.Minute()) - minutesOfDay(prefHour, prefMinute)
	if diff < 0 {
		diff = -diff
	}
	return time.Duration(diff)*time.Minute <= p.Tolerance
}

// parseSendTime accepts "15:04" and the "15:04:05" form a TIME column scans
// into.
func parseSendTime(value string) (hour, minute int, ok bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

func minutesOfDay(hour, minute int) int {
	return hour*60 + minute
}
