package settings

import (
	"fmt"
	"log"
)

// Store is a flat byte-range storage device (EEPROM-style semantics).
type Store interface {
	// ReadBlock reads length bytes starting at offset.
	ReadBlock(offset, length int) ([]byte, error)

	// WriteBlock writes the buffer starting at offset. The write must be
	// durable when the call returns.
	WriteBlock(offset int, buf []byte) error
}

// Load reads the persisted record and validates it. If the stored record is
// unreadable or out of range it is replaced with Defaults() and the corrected
// record is written back immediately, so the durable copy is never left
// inconsistent. The returned bool is true when defaults were applied.
func Load(store Store) (Settings, bool, error) {
	buf, err := store.ReadBlock(RecordOffset, RecordSize)
	if err != nil {
		return Settings{}, false, fmt.Errorf("read settings: %w", err)
	}

	s, err := Unmarshal(buf)
	if err == nil && s.Valid() {
		return s, false, nil
	}
	if err != nil {
		log.Printf("settings: stored record unreadable (%v), writing defaults", err)
	} else {
		log.Printf("settings: stored record out of range, writing defaults")
	}

	s = Defaults()
	if err := Save(store, s); err != nil {
		return Settings{}, false, fmt.Errorf("write default settings: %w", err)
	}
	return s, true, nil
}

// Save persists the entire record in a single transfer. Partial-field writes
// are never performed; this keeps the stored record consistent across power
// loss mid-save.
func Save(store Store, s Settings) error {
	if err := store.WriteBlock(RecordOffset, Marshal(s)); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
