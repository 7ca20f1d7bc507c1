// Package settings owns the persisted transmitter configuration.
// This package has NO hardware dependencies; durable storage is abstracted
// behind the Store interface so tests can use an in-memory device.
package settings

// Trim value range (12-bit ADC counts). Center is the default trim.
const (
	TrimMin    = 0
	TrimMax    = 4095
	TrimCenter = 2048
	TrimStep   = 5
)

// NumChannels is the number of logical output channels (CH1-CH8).
const NumChannels = 8

// Settings is the durable transmitter configuration.
//
// The in-memory layout is NOT the wire layout; see codec.go for the
// serialized field order and widths.
type Settings struct {
	// Trim offsets shift the center of the stick mapping curve.
	// Range: TrimMin..TrimMax, center TrimCenter.
	Trim1 int // CH1 (Roll/Aileron)
	Trim2 int // CH2 (Pitch/Elevator)
	Trim3 int // CH4 (Yaw/Rudder)

	BuzzerEnabled    bool // false = mute (forced tones still sound)
	LightModeEnabled bool // true = light background, false = dark

	// Inverted[i] reverses channel i+1 as the final mapping step.
	Inverted [NumChannels]bool

	// TimerProfile is the saved index into the timer duration set.
	TimerProfile uint8

	// AirplaneMode selects the throttle curve: false = standard split-linear
	// mapping, true = lower-half cutoff for motors that must not idle.
	AirplaneMode bool
}

// Defaults returns the documented default record: centered trims, buzzer on,
// dark theme, no inversions, standard throttle mode.
func Defaults() Settings {
	return Settings{
		Trim1:         TrimCenter,
		Trim2:         TrimCenter,
		Trim3:         TrimCenter,
		BuzzerEnabled: true,
	}
}

// Valid reports whether the record passed range validation.
// A record read from storage must not be used until it validates.
func (s Settings) Valid() bool {
	for _, trim := range []int{s.Trim1, s.Trim2, s.Trim3} {
		if trim < TrimMin || trim > TrimMax {
			return false
		}
	}
	if int(s.TimerProfile) >= len(TimerMinutes) {
		return false
	}
	return true
}

// TimerMinutes is the fixed ordered set of selectable countdown durations.
// Index 0 (off) disarms the timer.
var TimerMinutes = []int{0, 2, 5, 10}
