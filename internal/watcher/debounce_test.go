package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerFiresOnLeadingEdge(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	now := time.Now()

	assert.True(t, d.Check(now, true))
	assert.False(t, d.Pending())
}

func TestDebouncerSwallowsEventsDuringCooldown(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	t0 := time.Now()

	require.True(t, d.Check(t0, true))

	assert.False(t, d.Check(t0.Add(50*time.Millisecond), true))
	assert.False(t, d.Check(t0.Add(100*time.Millisecond), true))
	assert.True(t, d.Pending())
}

func TestDebouncerFiresExactlyOneTrailingRefresh(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	t0 := time.Now()

	require.True(t, d.Check(t0, true))
	require.False(t, d.Check(t0.Add(50*time.Millisecond), true))

	// Cooldown expires with no new events: the swallowed burst owes
	// exactly one refresh.
	assert.True(t, d.Check(t0.Add(210*time.Millisecond), false))
	assert.False(t, d.Check(t0.Add(220*time.Millisecond), false))
	assert.False(t, d.Check(t0.Add(500*time.Millisecond), false))
}

func TestDebouncerQuietStreamNeverFires(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	t0 := time.Now()

	for i := 0; i < 20; i++ {
		assert.False(t, d.Check(t0.Add(time.Duration(i)*100*time.Millisecond), false))
	}
}

func TestDebouncerBoundsRefreshRateUnderBurst(t *testing.T) {
	cooldown := 200 * time.Millisecond
	d := NewDebouncer(cooldown)
	t0 := time.Now()

	// Events on every 10ms tick for one second.
	var fires []time.Time
	for i := 0; i <= 100; i++ {
		now := t0.Add(time.Duration(i) * 10 * time.Millisecond)
		if d.Check(now, true) {
			fires = append(fires, now)
		}
	}

	require.NotEmpty(t, fires)
	assert.Equal(t, t0, fires[0])
	for i := 1; i < len(fires); i++ {
		assert.GreaterOrEqual(t, fires[i].Sub(fires[i-1]), cooldown,
			"refreshes must be at least one cooldown apart")
	}

	// Burst over: one trailing refresh at most, then silence.
	trailing := 0
	for i := 101; i <= 200; i++ {
		now := t0.Add(time.Duration(i) * 10 * time.Millisecond)
		if d.Check(now, false) {
			trailing++
		}
	}
	assert.LessOrEqual(t, trailing, 1)
}

func TestNewDebouncerDefaultsCooldown(t *testing.T) {
	d := NewDebouncer(0)
	t0 := time.Now()

	require.True(t, d.Check(t0, true))
	require.False(t, d.Check(t0.Add(100*time.Millisecond), true))

	// Fires once the default 200ms window has passed.
	assert.True(t, d.Check(t0.Add(DefaultCooldown+10*time.Millisecond), false))
}
