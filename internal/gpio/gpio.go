// Package gpio provides the digital I/O boundary: raw button and switch
// levels in, buzzer level out. The real implementation uses the Linux GPIO
// character device; the fake allows testing without hardware.
package gpio

// Line indices into a raw digital sample, in fixed order.
const (
	LineEnter = iota
	LineUp
	LineDown
	LineTrim1Inc
	LineTrim1Dec
	LineTrim2Inc
	LineTrim2Dec
	LineTrim3Inc
	LineTrim3Dec
	LineSwitchA
	LineSwitchB
	NumLines
)

// Sample is one instantaneous reading of every input line. Button lines are
// raw electrical levels (true = high = released, pull-up wiring); switch
// lines follow the same convention.
type Sample [NumLines]bool

// Reader samples all input lines at once.
type Reader interface {
	// Read returns the current raw levels of all lines.
	Read() (Sample, error)

	// Close releases GPIO resources.
	Close() error
}

// Buzzer drives the buzzer output line.
type Buzzer interface {
	// Set drives the buzzer line high (sounding) or low.
	Set(on bool) error

	// Close forces the line low and releases it.
	Close() error
}

// DefaultPins are the BCM pin assignments for a Raspberry Pi carrier board.
var DefaultPins = [NumLines]int{
	LineEnter:    17,
	LineUp:       27,
	LineDown:     22,
	LineTrim1Inc: 5,
	LineTrim1Dec: 6,
	LineTrim2Inc: 13,
	LineTrim2Dec: 19,
	LineTrim3Inc: 26,
	LineTrim3Dec: 21,
	LineSwitchA:  20,
	LineSwitchB:  16,
}

// DefaultBuzzerPin is the BCM pin of the buzzer output.
const DefaultBuzzerPin = 12
