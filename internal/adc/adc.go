// Package adc provides the analog sampling boundary for the sticks, the aux
// pots, and the battery divider. The real implementation reads the Linux IIO
// sysfs interface; the fake allows testing without hardware.
package adc

// ADC channel assignments, matching the board wiring.
const (
	ChanRoll = iota
	ChanPitch
	ChanThrottle
	ChanYaw
	ChanAux1
	ChanAux2
	ChanBattery
	NumChannels
)

// Raw full-scale reading (12-bit converter).
const RawMax = 4095

// Reader samples a single ADC channel.
type Reader interface {
	// Read returns the instantaneous raw count of the channel.
	Read(channel int) (int, error)

	// Close releases sampler resources.
	Close() error
}
