package battery

import (
	"errors"
	"math"
	"testing"

	"github.com/EbrSiami/rc-transmitter/internal/adc"
)

func TestVoltageConversion(t *testing.T) {
	reader := adc.NewFakeReader()
	m := NewMonitor(reader)

	for _, volts := range []float64{6.0, 7.4, 8.4} {
		reader.Set(adc.ChanBattery, CountsForVoltage(volts))
		got := m.Update()
		if math.Abs(got-volts) > 0.02 {
			t.Errorf("update for %.1fV = %.3fV", volts, got)
		}
	}
}

func TestDisconnectGuardKeepsLastReading(t *testing.T) {
	reader := adc.NewFakeReader()
	m := NewMonitor(reader)

	reader.Set(adc.ChanBattery, CountsForVoltage(7.4))
	first := m.Update()

	// Divider unplugged: input floats near zero.
	reader.Set(adc.ChanBattery, 10)
	if got := m.Update(); got != first {
		t.Errorf("floating input should keep last reading, got %.3f", got)
	}

	// Read errors are also non-events.
	reader.Errors = map[int]error{adc.ChanBattery: errors.New("bus error")}
	if got := m.Update(); got != first {
		t.Errorf("read error should keep last reading, got %.3f", got)
	}
}

func TestFreshMonitorReadsZero(t *testing.T) {
	reader := adc.NewFakeReader()
	reader.Set(adc.ChanBattery, 0)
	m := NewMonitor(reader)
	if got := m.Update(); got != 0 {
		t.Errorf("fresh monitor with no sensor = %.3f, want 0", got)
	}
}
