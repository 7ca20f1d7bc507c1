// Package battery converts raw ADC counts from the voltage divider into pack
// voltage.
package battery

import "github.com/EbrSiami/rc-transmitter/internal/adc"

// Voltage divider and converter constants, from the transmitter hardware:
// a 22k/6.8k divider into a 3.3V 12-bit ADC, with an empirical correction
// for resistor tolerance.
const (
	dividerR1        = 22.0
	dividerR2        = 6.8
	adcReference     = 3.3
	correctionFactor = 1.01

	// disconnectFloor rejects readings from an unconnected divider; a
	// floating input reads near zero and must not be trusted.
	disconnectFloor = 100
)

// countsToVolts is the full conversion from raw counts to pack volts.
const countsToVolts = (adcReference / adc.RawMax) * ((dividerR1 + dividerR2) / dividerR2) * correctionFactor

// Monitor tracks the pack voltage. Readings below the disconnect floor keep
// the previous value, so a momentary sampling glitch cannot fake a healthy
// or dead pack.
type Monitor struct {
	reader  adc.Reader
	voltage float64
}

// NewMonitor creates a Monitor reading the battery divider channel.
func NewMonitor(reader adc.Reader) *Monitor {
	return &Monitor{reader: reader}
}

// Update samples the divider and returns the current voltage estimate.
func (m *Monitor) Update() float64 {
	counts, err := m.reader.Read(adc.ChanBattery)
	if err != nil || counts <= disconnectFloor {
		return m.voltage
	}
	m.voltage = float64(counts) * countsToVolts
	return m.voltage
}

// Voltage returns the last trusted voltage estimate.
func (m *Monitor) Voltage() float64 {
	return m.voltage
}

// CountsForVoltage returns the raw counts that correspond to a pack voltage.
// Used by tests to script divider readings.
func CountsForVoltage(volts float64) int {
	return int(volts / countsToVolts)
}
