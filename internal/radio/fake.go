package radio

import "github.com/EbrSiami/rc-transmitter/internal/channels"

// FakeSender records transmitted packets for test assertions.
type FakeSender struct {
	// Packets contains every packet passed to Send.
	Packets []channels.Packet

	// Frames contains the encoded MSP frames.
	Frames [][]byte

	// SendError, if set, is returned by Send.
	SendError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeSender creates a FakeSender.
func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

// Send records the packet and its encoded frame.
func (f *FakeSender) Send(p channels.Packet) error {
	if f.SendError != nil {
		return f.SendError
	}
	f.Packets = append(f.Packets, p)
	f.Frames = append(f.Frames, EncodeFrame(p))
	return nil
}

// Close marks the sender as closed.
func (f *FakeSender) Close() error {
	f.Closed = true
	return nil
}
