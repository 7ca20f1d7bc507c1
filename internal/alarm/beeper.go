// Package alarm drives the buzzer: short confirmation tones for UI feedback
// and the continuous low-battery warning pattern. Everything here is
// non-blocking; each Tick computes the desired buzzer level from timestamps
// and returns immediately, so a tone in progress can never stall the loop.
package alarm

import "time"

// UI tone durations. Each interaction class has its own length so the
// operator can tell them apart by ear.
const (
	ToneNav    = 40 * time.Millisecond  // cursor movement
	ToneEnter  = 50 * time.Millisecond  // enter press
	ToneCommit = 100 * time.Millisecond // committed action
	ToneTrim   = 20 * time.Millisecond  // trim click
	ToneTick   = 50 * time.Millisecond  // per-second countdown tick
	ToneExpiry = 500 * time.Millisecond // timer expiry (fired twice)
)

// toneQueueDepth bounds pending tones; a full queue drops new requests
// rather than growing without bound.
const toneQueueDepth = 4

// toneGap separates queued tones so a double tone is audible as two.
const toneGap = 100 * time.Millisecond

type tone struct {
	duration time.Duration
	forced   bool
}

// Beeper sequences short tones. Muting suppresses unforced tones at request
// time; forced tones (timer expiry, countdown ticks) always sound.
type Beeper struct {
	muted bool

	queue []tone

	active      bool
	activeUntil time.Time
	gapUntil    time.Time
}

// NewBeeper creates a Beeper. muted mirrors the persisted buzzer setting.
func NewBeeper(muted bool) *Beeper {
	return &Beeper{muted: muted}
}

// SetMuted updates the mute state (persisted buzzer toggle).
func (b *Beeper) SetMuted(muted bool) {
	b.muted = muted
}

// Request queues a tone of the given duration. Unforced tones are dropped
// while muted. Returns immediately; the tone plays across subsequent Ticks.
func (b *Beeper) Request(duration time.Duration, forced bool) {
	if b.muted && !forced {
		return
	}
	if len(b.queue) >= toneQueueDepth {
		return
	}
	b.queue = append(b.queue, tone{duration: duration, forced: forced})
}

// Tick advances the tone sequencer and returns the desired buzzer level for
// this instant.
func (b *Beeper) Tick(now time.Time) bool {
	if b.active {
		if now.Before(b.activeUntil) {
			return true
		}
		b.active = false
		b.gapUntil = now.Add(toneGap)
	}

	if len(b.queue) == 0 || now.Before(b.gapUntil) {
		return false
	}

	next := b.queue[0]
	b.queue = b.queue[1:]
	b.active = true
	b.activeUntil = now.Add(next.duration)
	return true
}
