// Package channels reduces raw stick and switch samples to the 8-channel
// control packet. Pure logic: samplers and settings are passed in, nothing
// is cached between iterations.
package channels

import "github.com/EbrSiami/rc-transmitter/internal/settings"

// Raw ADC range for the stick inputs (12-bit).
const (
	RawMin = 0
	RawMax = 4095
	RawMid = 2048
)

// Center is the mapped value at the middle of the stick travel.
const Center = 128

// Packet is the fixed control frame recomputed every loop iteration.
// All channels are recomputed together; the packet is never partially
// updated.
type Packet struct {
	Throttle uint8
	Pitch    uint8
	Roll     uint8
	Yaw      uint8
	Aux1     uint8
	Aux2     uint8
	Aux3     bool
	Aux4     bool
}

// Neutral returns the packet in its safe resting state: throttle cut,
// everything else centered.
func Neutral() Packet {
	return Packet{
		Throttle: 0,
		Pitch:    Center,
		Roll:     Center,
		Yaw:      Center,
		Aux1:     Center,
		Aux2:     Center,
	}
}

// BorderMap maps a raw reading onto 0..255 with a split-linear curve:
// [lower, middle] maps to [0, 128] and [middle, upper] maps to [128, 255].
// The curve is continuous at middle even when middle is not the numeric
// midpoint; shifting middle is how trim works. The reading is clamped to
// [lower, upper] first. inverted applies 255-v as the final step.
func BorderMap(val, lower, middle, upper int, inverted bool) uint8 {
	if val < lower {
		val = lower
	}
	if val > upper {
		val = upper
	}

	var mapped int
	if val < middle {
		mapped = scale(val, lower, middle, 0, Center)
	} else {
		mapped = scale(val, middle, upper, Center, 255)
	}

	if inverted {
		mapped = 255 - mapped
	}
	return uint8(mapped)
}

// ThrottleMap applies the throttle curve. In airplane mode the lower half of
// the stick travel is hard zero and only the upper half spans 0..255, so the
// motor cannot idle near the bottom of the stick. In standard mode throttle
// uses the generic split-linear curve with a fixed center.
func ThrottleMap(val int, airplaneMode, inverted bool) uint8 {
	if !airplaneMode {
		return BorderMap(val, RawMin, RawMid-1, RawMax, inverted)
	}

	if val > RawMax {
		val = RawMax
	}
	var mapped int
	if val > RawMid {
		mapped = scale(val, RawMid, RawMax, 0, 255)
	}
	if inverted {
		mapped = 255 - mapped
	}
	return uint8(mapped)
}

// scale is integer linear interpolation from [inLo,inHi] to [outLo,outHi].
func scale(v, inLo, inHi, outLo, outHi int) int {
	if inHi == inLo {
		return outLo
	}
	return (v-inLo)*(outHi-outLo)/(inHi-inLo) + outLo
}

// Sampler provides instantaneous raw readings of the physical controls.
type Sampler interface {
	// ReadAnalog returns the raw 12-bit level of an analog input.
	ReadAnalog(input AnalogInput) (int, error)

	// ReadDigital returns the logical on/off state of a switch input.
	ReadDigital(input DigitalInput) (bool, error)
}

// AnalogInput identifies a stick axis or potentiometer.
type AnalogInput int

const (
	InputRoll AnalogInput = iota
	InputPitch
	InputThrottle
	InputYaw
	InputAux1
	InputAux2
)

// DigitalInput identifies a two-position switch.
type DigitalInput int

const (
	InputSwitchA DigitalInput = iota
	InputSwitchB
)

// Compute recomputes the full packet from the latest raw samples and the
// current settings. Sampler errors leave the affected channel at its
// previous-packet value so a single flaky line cannot zero a control surface.
func Compute(sampler Sampler, s settings.Settings, prev Packet) Packet {
	p := prev

	if v, err := sampler.ReadAnalog(InputRoll); err == nil {
		p.Roll = BorderMap(v, RawMin, s.Trim1, RawMax, s.Inverted[0])
	}
	if v, err := sampler.ReadAnalog(InputPitch); err == nil {
		p.Pitch = BorderMap(v, RawMin, s.Trim2, RawMax, s.Inverted[1])
	}
	if v, err := sampler.ReadAnalog(InputThrottle); err == nil {
		p.Throttle = ThrottleMap(v, s.AirplaneMode, s.Inverted[2])
	}
	if v, err := sampler.ReadAnalog(InputYaw); err == nil {
		p.Yaw = BorderMap(v, RawMin, s.Trim3, RawMax, s.Inverted[3])
	}
	if v, err := sampler.ReadAnalog(InputAux1); err == nil {
		p.Aux1 = BorderMap(v, RawMin, RawMid, RawMax, s.Inverted[4])
	}
	if v, err := sampler.ReadAnalog(InputAux2); err == nil {
		p.Aux2 = BorderMap(v, RawMin, RawMid, RawMax, s.Inverted[5])
	}
	if v, err := sampler.ReadDigital(InputSwitchA); err == nil {
		p.Aux3 = v != s.Inverted[6] // logical negation when inverted
	}
	if v, err := sampler.ReadDigital(InputSwitchB); err == nil {
		p.Aux4 = v != s.Inverted[7]
	}

	return p
}
