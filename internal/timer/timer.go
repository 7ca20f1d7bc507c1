// Package timer implements the countdown timer lifecycle: idle -> armed ->
// running -> expired. Pure logic; wall-clock time is injected on every tick.
package timer

import (
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/settings"
)

// Countdown tracks a single countdown selected from the fixed duration set.
type Countdown struct {
	durationIndex int // index into settings.TimerMinutes

	armed   bool
	running bool
	started time.Time
	total   time.Duration

	remaining time.Duration
	lastTick  time.Time

	// lastBeepSecond is the most recent whole second the running tick beep
	// fired for, so each second beeps exactly once.
	lastBeepSecond int
}

// New creates an idle countdown with the saved duration profile selected.
func New(profile uint8) *Countdown {
	c := &Countdown{}
	if int(profile) < len(settings.TimerMinutes) {
		c.durationIndex = int(profile)
	}
	return c
}

// Snapshot is a read-only projection of timer state for rendering and
// telemetry.
type Snapshot struct {
	Minutes   int
	Armed     bool
	Running   bool
	Remaining time.Duration
}

// Snapshot returns the current timer state.
func (c *Countdown) Snapshot() Snapshot {
	return Snapshot{
		Minutes:   c.SelectedMinutes(),
		Armed:     c.armed,
		Running:   c.running,
		Remaining: c.remaining,
	}
}

// SelectedMinutes returns the currently selected duration in minutes
// (0 = off).
func (c *Countdown) SelectedMinutes() int {
	return settings.TimerMinutes[c.durationIndex]
}

// Profile returns the selected duration index for persistence.
func (c *Countdown) Profile() uint8 {
	return uint8(c.durationIndex)
}

// CycleNext selects the next duration in the fixed set, wrapping around.
func (c *Countdown) CycleNext() {
	c.durationIndex = (c.durationIndex + 1) % len(settings.TimerMinutes)
}

// CyclePrev selects the previous duration in the fixed set, wrapping around.
func (c *Countdown) CyclePrev() {
	n := len(settings.TimerMinutes)
	c.durationIndex = (c.durationIndex - 1 + n) % n
}

// Commit arms and starts the countdown if a nonzero duration is selected,
// or disarms if "off" is selected. Called when the operator leaves timer
// edit mode.
func (c *Countdown) Commit(now time.Time) {
	minutes := c.SelectedMinutes()
	if minutes == 0 {
		c.Disarm()
		return
	}
	c.total = time.Duration(minutes) * time.Minute
	c.remaining = c.total
	c.started = now
	c.lastTick = now
	c.armed = true
	c.running = true
	c.lastBeepSecond = -1
}

// Disarm cancels without firing the expiry alert. Used when the operator
// re-enters edit mode before expiry.
func (c *Countdown) Disarm() {
	c.armed = false
	c.running = false
	c.remaining = 0
	c.lastBeepSecond = -1
}

// TickBeep reports whether the once-per-second running beep should fire for
// the current remaining time. While the countdown runs, each whole second
// fires exactly once; Commit and Disarm reset the tracking so a fresh
// countdown beeps from its first second.
func (c *Countdown) TickBeep() bool {
	if !c.running {
		return false
	}
	sec := int(c.remaining.Truncate(time.Second).Seconds())
	if sec <= 0 || sec == c.lastBeepSecond {
		return false
	}
	c.lastBeepSecond = sec
	return true
}

// Tick projects the remaining time from the wall clock. Returns true exactly
// once, on the tick where the countdown reaches zero; the caller fires the
// expiry alert. After expiry both armed and running are false until a new
// duration is committed.
func (c *Countdown) Tick(now time.Time) (expired bool) {
	if !c.running {
		return false
	}
	c.lastTick = now

	elapsed := now.Sub(c.started)
	if elapsed >= c.total {
		c.remaining = 0
		c.running = false
		c.armed = false
		return true
	}
	c.remaining = c.total - elapsed
	return false
}

// Armed reports whether a countdown is armed.
func (c *Countdown) Armed() bool { return c.armed }

// Running reports whether the countdown is actively counting.
func (c *Countdown) Running() bool { return c.running }

// Remaining returns the last projected remaining duration.
func (c *Countdown) Remaining() time.Duration { return c.remaining }
