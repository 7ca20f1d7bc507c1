package radio

import (
	"encoding/binary"

	"github.com/EbrSiami/rc-transmitter/internal/channels"
)

// MSP v1 command for pushing raw RC channel values to a flight controller.
const cmdSetRawRC = 200

// Pulse range in microseconds for the wire representation. 0..255 channel
// bytes scale onto the standard 1000..2000us servo range.
const (
	pulseMin = 1000
	pulseMax = 2000
	pulseMid = 1500
)

// mspChannelCount is the number of channel slots in a SET_RAW_RC payload.
const mspChannelCount = 8

// pulse scales a 0..255 channel byte to microseconds.
func pulse(v uint8) uint16 {
	return uint16(pulseMin + int(v)*(pulseMax-pulseMin)/255)
}

// switchPulse maps a two-position switch to its endpoint pulses.
func switchPulse(on bool) uint16 {
	if on {
		return pulseMax
	}
	return pulseMin
}

// EncodeFrame builds a complete MSP v1 SET_RAW_RC frame for the packet.
// Channel order is AERT (aileron, elevator, rudder, throttle) followed by
// the four aux channels, each a little-endian pulse width.
func EncodeFrame(p channels.Packet) []byte {
	payload := make([]byte, mspChannelCount*2)
	pulses := [mspChannelCount]uint16{
		pulse(p.Roll),
		pulse(p.Pitch),
		pulse(p.Yaw),
		pulse(p.Throttle),
		pulse(p.Aux1),
		pulse(p.Aux2),
		switchPulse(p.Aux3),
		switchPulse(p.Aux4),
	}
	for i, v := range pulses {
		binary.LittleEndian.PutUint16(payload[i*2:], v)
	}
	return encodeMSP(cmdSetRawRC, payload)
}

// encodeMSP wraps a payload in an MSP v1 request frame:
// '$' 'M' '<' len cmd payload... crc, where crc is the XOR of everything
// from len through the final payload byte.
func encodeMSP(cmd byte, payload []byte) []byte {
	paylen := byte(len(payload))
	buf := make([]byte, 6+int(paylen))
	buf[0] = '$'
	buf[1] = 'M'
	buf[2] = '<'
	buf[3] = paylen
	buf[4] = cmd
	copy(buf[5:], payload)

	crc := byte(0)
	for _, b := range buf[3 : 5+int(paylen)] {
		crc ^= b
	}
	buf[5+int(paylen)] = crc
	return buf
}
