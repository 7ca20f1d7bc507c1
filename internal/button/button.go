// Package button contains the debounce state machine for physical push
// buttons. This package has NO hardware dependencies: raw samples and time
// are passed into Update, so tests can script arbitrary signal sequences.
package button

import "time"

// DefaultDebounce suits navigation buttons; trim buttons use a shorter
// window so held-repeat starts promptly.
const DefaultDebounce = 100 * time.Millisecond

// Button debounces a single active-low input line (pressed = raw low).
//
// The click event fires on the pressed-to-released edge, not on the initial
// press, so an accidental touch while picking up the transmitter does not
// register. A raw pulse shorter than the debounce window never registers at
// all; that is the intended noise rejection.
type Button struct {
	debounce time.Duration

	lastRaw       bool // raw level from the previous sample (true = high/idle)
	lastRawChange time.Time

	held        bool
	justClicked bool
}

// New creates a Button with the given debounce window.
func New(debounce time.Duration) *Button {
	return &Button{
		debounce: debounce,
		lastRaw:  true, // pull-up idles high
	}
}

// Update feeds one raw sample into the debounce filter. rawHigh is the
// electrical level (true = high = released). Must be called every loop
// iteration.
func (b *Button) Update(rawHigh bool, now time.Time) {
	if rawHigh != b.lastRaw {
		b.lastRawChange = now
		b.lastRaw = rawHigh
	}

	if now.Sub(b.lastRawChange) <= b.debounce {
		return
	}

	// Stable reading: commit transitions. Active-low, so low = pressed.
	switch {
	case !rawHigh && !b.held:
		b.held = true
	case rawHigh && b.held:
		b.held = false
		b.justClicked = true
	}
}

// WasJustPressed reports a completed click (press then release). The event
// is consumed on read: at most one true per physical click.
func (b *Button) WasJustPressed() bool {
	if b.justClicked {
		b.justClicked = false
		return true
	}
	return false
}

// IsBeingHeld returns the live debounced state without consuming anything.
// Safe to poll repeatedly within one iteration; used for held-repeat actions
// such as trim adjustment.
func (b *Button) IsBeingHeld() bool {
	return b.held
}
