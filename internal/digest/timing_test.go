package digest

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rasulkireev/cleanapp/internal/domain"
	"github.com/rasulkireev/cleanapp/testdata/utils"
)

func testPolicy() Policy {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewPolicy("09:00", 5*time.Minute, logger)
}

func TestPolicy_ShouldSend_NoActiveSitemaps(t *testing.T) {
	p := testPolicy()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	assert.False(t, p.ShouldSend(domain.Account{ID: 1}, nil, nil, now))
}

func TestPolicy_ShouldSend_TimeWindow(t *testing.T) {
	p := testPolicy()
	account := domain.Account{ID: 1, Timezone: "UTC"}
	cadences := []domain.Cadence{domain.CadenceDaily}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"exactly on time", time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), true},
		{"five minutes early", time.Date(2025, 6, 2, 8, 55, 0, 0, time.UTC), true},
		{"five minutes late", time.Date(2025, 6, 2, 9, 5, 0, 0, time.UTC), true},
		{"six minutes early", time.Date(2025, 6, 2, 8, 54, 0, 0, time.UTC), false},
		{"six minutes late", time.Date(2025, 6, 2, 9, 6, 0, 0, time.UTC), false},
		{"middle of the night", time.Date(2025, 6, 2, 2, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ShouldSend(account, cadences, nil, tt.now))
		})
	}
}

func TestPolicy_ShouldSend_AccountPreferredTime(t *testing.T) {
	p := testPolicy()
	account := domain.Account{ID: 1, PreferredSendTime: utils.Ptr("17:30")}
	cadences := []domain.Cadence{domain.CadenceDaily}

	assert.True(t, p.ShouldSend(account, cadences, nil, time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC)))
	assert.False(t, p.ShouldSend(account, cadences, nil, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
}

func TestPolicy_ShouldSend_Timezone(t *testing.T) {
	p := testPolicy()
	account := domain.Account{ID: 1, Timezone: "America/New_York"}
	cadences := []domain.Cadence{domain.CadenceDaily}

	// 13:00 UTC is 09:00 in New York during DST.
	assert.True(t, p.ShouldSend(account, cadences, nil, time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)))
	assert.False(t, p.ShouldSend(account, cadences, nil, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
}

func TestPolicy_ShouldSend_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	p := testPolicy()
	account := domain.Account{ID: 1, Timezone: "Mars/Olympus_Mons"}
	cadences := []domain.Cadence{domain.CadenceDaily}

	assert.True(t, p.ShouldSend(account, cadences, nil, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
}

func TestPolicy_ShouldSend_CadenceWindow(t *testing.T) {
	p := testPolicy()
	account := domain.Account{ID: 1}
	now := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cadences []domain.Cadence
		lastSent time.Time
		want     bool
	}{
		{
			name:     "never sent",
			cadences: []domain.Cadence{domain.CadenceMonthly},
			want:     true,
		},
		{
			name:     "daily window elapsed",
			cadences: []domain.Cadence{domain.CadenceDaily},
			lastSent: now.Add(-24 * time.Hour),
			want:     true,
		},
		{
			name:     "daily window not elapsed",
			cadences: []domain.Cadence{domain.CadenceDaily},
			lastSent: now.Add(-23 * time.Hour),
			want:     false,
		},
		{
			name:     "most urgent cadence governs",
			cadences: []domain.Cadence{domain.CadenceMonthly, domain.CadenceDaily},
			lastSent: now.Add(-25 * time.Hour),
			want:     true,
		},
		{
			name:     "weekly window not elapsed",
			cadences: []domain.Cadence{domain.CadenceWeekly},
			lastSent: now.Add(-6 * 24 * time.Hour),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lastSent *time.Time
			if !tt.lastSent.IsZero() {
				lastSent = &tt.lastSent
			}
			assert.Equal(t, tt.want, p.ShouldSend(account, tt.cadences, lastSent, now))
		})
	}
}

func TestParseSendTime(t *testing.T) {
	hour, minute, ok := parseSendTime("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	hour, minute, ok = parseSendTime("17:45:12")
	assert.True(t, ok)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 45, minute)

	_, _, ok = parseSendTime("not a time")
	assert.False(t, ok)
}
