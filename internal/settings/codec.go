package settings

import (
	"encoding/binary"
	"fmt"
)

// Serialized record layout (little-endian, RecordSize bytes at RecordOffset):
//
//	0..1   trim1 uint16
//	2..3   trim2 uint16
//	4..5   trim3 uint16
//	6      buzzerEnabled (0/1)
//	7      lightModeEnabled (0/1)
//	8..15  inverted[0..7] (0/1 each)
//	16     timerProfile
//	17     airplaneMode (0/1)
//
// Changing the order or width of any field invalidates stored records.
const (
	RecordOffset = 0
	RecordSize   = 18
)

// Marshal serializes the record into its fixed wire layout.
func Marshal(s Settings) []byte {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(s.Trim1))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(s.Trim2))
	binary.LittleEndian.PutUint16(buf[4:6], uint16(s.Trim3))
	buf[6] = boolByte(s.BuzzerEnabled)
	buf[7] = boolByte(s.LightModeEnabled)
	for i := 0; i < NumChannels; i++ {
		buf[8+i] = boolByte(s.Inverted[i])
	}
	buf[16] = s.TimerProfile
	buf[17] = boolByte(s.AirplaneMode)
	return buf
}

// Unmarshal decodes a stored record. The result is NOT validated; callers
// must check Valid() before trusting it.
func Unmarshal(buf []byte) (Settings, error) {
	if len(buf) < RecordSize {
		return Settings{}, fmt.Errorf("settings record too short: %d bytes, need %d", len(buf), RecordSize)
	}
	var s Settings
	s.Trim1 = int(binary.LittleEndian.Uint16(buf[0:2]))
	s.Trim2 = int(binary.LittleEndian.Uint16(buf[2:4]))
	s.Trim3 = int(binary.LittleEndian.Uint16(buf[4:6]))
	s.BuzzerEnabled = buf[6] != 0
	s.LightModeEnabled = buf[7] != 0
	for i := 0; i < NumChannels; i++ {
		s.Inverted[i] = buf[8+i] != 0
	}
	s.TimerProfile = buf[16]
	s.AirplaneMode = buf[17] != 0
	return s, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
