package alarm

import "time"

// Low-battery thresholds in volts. The floor rejects the no-sensor case:
// with the divider unpowered the ADC reads near zero, which must not alarm.
const (
	LowBatteryWarning = 6.4 // ~3.2V per cell on a 2S pack
	SensorFloor       = 4.0
)

// The warning pattern: beep, gap, short pause, beep, gap, long pause,
// then restart. The buzzer sounds during phases 0 and 3.
var batteryPhases = [6]time.Duration{
	150 * time.Millisecond,  // tone on
	150 * time.Millisecond,  // tone off
	50 * time.Millisecond,   // short pause
	150 * time.Millisecond,  // tone on
	150 * time.Millisecond,  // tone off
	1000 * time.Millisecond, // long pause
}

// BatteryAlarm generates the six-phase low-battery beep pattern. Phase
// transitions are gated purely by elapsed time since the last transition;
// no call ever waits.
type BatteryAlarm struct {
	active    bool
	phase     int // 0..5
	phaseTime time.Time
}

// NewBatteryAlarm creates an inactive alarm.
func NewBatteryAlarm() *BatteryAlarm {
	return &BatteryAlarm{}
}

// Active reports whether the low-battery condition currently holds.
func (a *BatteryAlarm) Active() bool {
	return a.active
}

// Phase returns the current pattern phase (0..5) for diagnostics.
func (a *BatteryAlarm) Phase() int {
	return a.phase
}

// Tick evaluates the battery condition and advances the pattern. Returns the
// desired buzzer level. Leaving the alarm condition zeroes the phase and
// silences the output on the same tick, so re-entering always restarts the
// pattern cleanly from phase 0.
func (a *BatteryAlarm) Tick(voltage float64, now time.Time) bool {
	if voltage >= LowBatteryWarning || voltage <= SensorFloor {
		a.active = false
		a.phase = 0
		return false
	}

	if !a.active {
		a.active = true
		a.phase = 0
		a.phaseTime = now
	}

	if now.Sub(a.phaseTime) >= batteryPhases[a.phase] {
		a.phase = (a.phase + 1) % len(batteryPhases)
		a.phaseTime = now
	}

	return a.phase == 0 || a.phase == 3
}
