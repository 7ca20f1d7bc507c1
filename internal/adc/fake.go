package adc

import "fmt"

// FakeReader returns settable per-channel values for tests.
type FakeReader struct {
	// Values maps channel to raw count.
	Values map[int]int

	// Errors maps channel to a forced error.
	Errors map[int]error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeReader creates a FakeReader with all channels at mid-scale and the
// battery channel at a healthy level.
func NewFakeReader() *FakeReader {
	values := make(map[int]int)
	for ch := 0; ch < NumChannels; ch++ {
		values[ch] = RawMax / 2
	}
	return &FakeReader{Values: values}
}

// Read returns the configured value for the channel.
func (f *FakeReader) Read(channel int) (int, error) {
	if err, ok := f.Errors[channel]; ok {
		return 0, err
	}
	v, ok := f.Values[channel]
	if !ok {
		return 0, fmt.Errorf("no value configured for channel %d", channel)
	}
	return v, nil
}

// Set assigns a channel value.
func (f *FakeReader) Set(channel, value int) {
	f.Values[channel] = value
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}
