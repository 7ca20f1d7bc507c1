package gpio

import "errors"

// IdleSample returns a sample with every line at its released level (high,
// pull-up wiring).
func IdleSample() Sample {
	var s Sample
	for i := range s {
		s[i] = true
	}
	return s
}

// FakeReader is a test double that returns scripted line samples.
type FakeReader struct {
	// Samples contains scripted readings. Each call to Read consumes the
	// next sample; once exhausted, the last sample repeats.
	Samples []Sample

	index int

	// Closed tracks if Close was called.
	Closed bool

	// ReadError, if set, is returned by Read.
	ReadError error
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Sample) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
func (f *FakeReader) Read() (Sample, error) {
	if f.ReadError != nil {
		return Sample{}, f.ReadError
	}
	if len(f.Samples) == 0 {
		return Sample{}, errors.New("no samples configured")
	}
	s := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return s, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// FakeBuzzer records buzzer levels for test assertions.
type FakeBuzzer struct {
	// On is the current buzzer level.
	On bool

	// Transitions counts level changes.
	Transitions int

	// Closed tracks if Close was called.
	Closed bool
}

// Set records the requested level.
func (f *FakeBuzzer) Set(on bool) error {
	if on != f.On {
		f.Transitions++
	}
	f.On = on
	return nil
}

// Close marks the buzzer as closed and silenced.
func (f *FakeBuzzer) Close() error {
	f.On = false
	f.Closed = true
	return nil
}
