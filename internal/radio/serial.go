package radio

import (
	"fmt"

	"go.bug.st/serial"

	"github.com/EbrSiami/rc-transmitter/internal/channels"
)

// SerialSender writes MSP frames to a serial-attached RF module.
type SerialSender struct {
	port serial.Port
}

// NewSerialSender opens the serial device in transmitter mode.
func NewSerialSender(device string, baud int) (*SerialSender, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open radio port %s: %w", device, err)
	}
	return &SerialSender{port: port}, nil
}

// Send writes one frame. A short write is reported as an error; the caller
// drops it and carries on.
func (s *SerialSender) Send(p channels.Packet) error {
	frame := EncodeFrame(p)
	n, err := s.port.Write(frame)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if n != len(frame) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(frame))
	}
	return nil
}

// Close closes the serial port.
func (s *SerialSender) Close() error {
	return s.port.Close()
}
