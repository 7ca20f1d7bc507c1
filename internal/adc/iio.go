package adc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultDevicePath is the sysfs directory of the first IIO ADC device.
const DefaultDevicePath = "/sys/bus/iio/devices/iio:device0"

// IIOReader reads raw counts from a Linux IIO ADC through sysfs.
// Each Read is a single short file read; latency is bounded and there is no
// background goroutine.
type IIOReader struct {
	device string
}

// NewIIOReader verifies the device directory exists and returns a reader.
func NewIIOReader(device string) (*IIOReader, error) {
	if _, err := os.Stat(device); err != nil {
		return nil, fmt.Errorf("open iio device: %w", err)
	}
	return &IIOReader{device: device}, nil
}

// Read returns the raw count of in_voltage<channel>_raw.
func (r *IIOReader) Read(channel int) (int, error) {
	path := fmt.Sprintf("%s/in_voltage%d_raw", r.device, channel)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read adc channel %d: %w", channel, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse adc channel %d: %w", channel, err)
	}
	return v, nil
}

// Close releases nothing; sysfs reads hold no state.
func (r *IIOReader) Close() error {
	return nil
}
