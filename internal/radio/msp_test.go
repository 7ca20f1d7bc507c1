package radio

import (
	"encoding/binary"
	"testing"

	"github.com/EbrSiami/rc-transmitter/internal/channels"
)

func TestEncodeFrameStructure(t *testing.T) {
	frame := EncodeFrame(channels.Neutral())

	if len(frame) != 6+16 {
		t.Fatalf("frame length = %d, want 22", len(frame))
	}
	if frame[0] != '$' || frame[1] != 'M' || frame[2] != '<' {
		t.Errorf("bad header: % x", frame[:3])
	}
	if frame[3] != 16 {
		t.Errorf("payload length byte = %d, want 16", frame[3])
	}
	if frame[4] != cmdSetRawRC {
		t.Errorf("command = %d, want %d", frame[4], cmdSetRawRC)
	}

	crc := byte(0)
	for _, b := range frame[3 : len(frame)-1] {
		crc ^= b
	}
	if frame[len(frame)-1] != crc {
		t.Errorf("crc = %#x, want %#x", frame[len(frame)-1], crc)
	}
}

func TestEncodeFramePulses(t *testing.T) {
	p := channels.Packet{
		Throttle: 0,
		Pitch:    128,
		Roll:     255,
		Yaw:      128,
		Aux1:     128,
		Aux2:     128,
		Aux3:     true,
		Aux4:     false,
	}
	frame := EncodeFrame(p)
	payload := frame[5 : len(frame)-1]

	ch := func(i int) uint16 {
		return binary.LittleEndian.Uint16(payload[i*2:])
	}

	if got := ch(0); got != pulseMax { // roll full deflection
		t.Errorf("roll pulse = %d, want %d", got, pulseMax)
	}
	if got := ch(3); got != pulseMin { // throttle cut
		t.Errorf("throttle pulse = %d, want %d", got, pulseMin)
	}
	// Centered channels land near mid-pulse (integer scaling rounds down).
	for _, i := range []int{1, 2, 4, 5} {
		got := ch(i)
		if got < pulseMid-3 || got > pulseMid+3 {
			t.Errorf("channel %d pulse = %d, want ~%d", i, got, pulseMid)
		}
	}
	if got := ch(6); got != pulseMax { // switch A on
		t.Errorf("switch A pulse = %d, want %d", got, pulseMax)
	}
	if got := ch(7); got != pulseMin { // switch B off
		t.Errorf("switch B pulse = %d, want %d", got, pulseMin)
	}
}

func TestPulseRange(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := pulse(uint8(v))
		if got < pulseMin || got > pulseMax {
			t.Fatalf("pulse(%d) = %d, outside [%d,%d]", v, got, pulseMin, pulseMax)
		}
	}
	if pulse(0) != pulseMin || pulse(255) != pulseMax {
		t.Error("pulse endpoints must hit the full range")
	}
}

func TestFakeSenderRecords(t *testing.T) {
	f := NewFakeSender()
	if err := f.Send(channels.Neutral()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(f.Packets) != 1 || len(f.Frames) != 1 {
		t.Fatalf("recorded %d packets, %d frames", len(f.Packets), len(f.Frames))
	}
	if f.Frames[0][4] != cmdSetRawRC {
		t.Error("recorded frame should be a SET_RAW_RC frame")
	}
}
