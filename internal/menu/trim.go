package menu

import (
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/alarm"
	"github.com/EbrSiami/rc-transmitter/internal/settings"
)

// trimRepeat throttles held-button trim stepping so a held button walks the
// trim at a predictable rate instead of once per loop iteration.
const trimRepeat = 50 * time.Millisecond

// TrimInput is the state of one trim button pair direction for this
// iteration.
type TrimInput struct {
	Clicked bool // consume-on-read click, for the feedback tone
	Held    bool // live debounced state, drives stepping
}

// TrimInputs carries all six trim buttons: an increment/decrement pair per
// trimmed axis.
type TrimInputs struct {
	Axis1Inc, Axis1Dec TrimInput
	Axis2Inc, Axis2Dec TrimInput
	Axis3Inc, Axis3Dec TrimInput
}

// TrimAdjuster steps the trim offsets while trim buttons are held. Changes
// stay in memory until the operator saves from the trims page.
type TrimAdjuster struct {
	settings *settings.Settings
	beeper   *alarm.Beeper
	lastStep [6]time.Time
}

// NewTrimAdjuster creates an adjuster over the shared settings record.
func NewTrimAdjuster(s *settings.Settings, beeper *alarm.Beeper) *TrimAdjuster {
	return &TrimAdjuster{settings: s, beeper: beeper}
}

// Apply processes one iteration of trim button state.
func (t *TrimAdjuster) Apply(in TrimInputs, now time.Time) {
	t.axis(0, in.Axis1Inc, &t.settings.Trim1, +settings.TrimStep, now)
	t.axis(1, in.Axis1Dec, &t.settings.Trim1, -settings.TrimStep, now)
	t.axis(2, in.Axis2Inc, &t.settings.Trim2, +settings.TrimStep, now)
	t.axis(3, in.Axis2Dec, &t.settings.Trim2, -settings.TrimStep, now)
	t.axis(4, in.Axis3Inc, &t.settings.Trim3, +settings.TrimStep, now)
	t.axis(5, in.Axis3Dec, &t.settings.Trim3, -settings.TrimStep, now)
}

func (t *TrimAdjuster) axis(i int, in TrimInput, trim *int, step int, now time.Time) {
	if in.Clicked {
		t.beeper.Request(alarm.ToneTrim, false)
	}
	if !in.Held {
		return
	}
	if now.Sub(t.lastStep[i]) < trimRepeat {
		return
	}
	t.lastStep[i] = now

	v := *trim + step
	if v < settings.TrimMin {
		v = settings.TrimMin
	}
	if v > settings.TrimMax {
		v = settings.TrimMax
	}
	*trim = v
}
