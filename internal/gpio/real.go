//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads the input lines through the Linux GPIO character device.
type RealReader struct {
	chip  *gpiocdev.Chip
	lines [NumLines]*gpiocdev.Line
}

// NewRealReader requests all input lines as pulled-up inputs, matching the
// active-low button wiring.
func NewRealReader(chipName string, pins [NumLines]int) (*RealReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	r := &RealReader{chip: chip}
	for i, pin := range pins {
		line, err := chip.RequestLine(pin, gpiocdev.AsInput, gpiocdev.WithPullUp)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("request line %d (pin %d): %w", i, pin, err)
		}
		r.lines[i] = line
	}
	return r, nil
}

// Read returns the raw electrical level of every line (true = high).
func (r *RealReader) Read() (Sample, error) {
	var s Sample
	for i, line := range r.lines {
		v, err := line.Value()
		if err != nil {
			return Sample{}, fmt.Errorf("read line %d: %w", i, err)
		}
		s[i] = v != 0
	}
	return s, nil
}

// Close releases all requested lines and the chip.
func (r *RealReader) Close() error {
	var firstErr error
	for i, line := range r.lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close line %d: %w", i, err)
		}
		r.lines[i] = nil
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close chip: %w", err)
		}
		r.chip = nil
	}
	return firstErr
}

// RealBuzzer drives the buzzer pin as a GPIO output.
type RealBuzzer struct {
	line *gpiocdev.Line
}

// NewRealBuzzer requests the buzzer pin as an output, initially low.
func NewRealBuzzer(chipName string, pin int) (*RealBuzzer, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}
	defer chip.Close()

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request buzzer pin %d: %w", pin, err)
	}
	return &RealBuzzer{line: line}, nil
}

// Set drives the buzzer line.
func (b *RealBuzzer) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	return b.line.SetValue(v)
}

// Close silences the buzzer and releases the line.
func (b *RealBuzzer) Close() error {
	if b.line == nil {
		return nil
	}
	if err := b.line.SetValue(0); err != nil {
		b.line.Close()
		return err
	}
	return b.line.Close()
}
