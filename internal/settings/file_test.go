package settings

import (
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Fresh file reads as erased, like a blank EEPROM.
	buf, err := store.ReadBlock(RecordOffset, RecordSize)
	if err != nil {
		t.Fatalf("read blank: %v", err)
	}
	for i, b := range buf {
		if b != 0xFF {
			t.Fatalf("byte %d of blank device = %#x, want 0xFF", i, b)
		}
	}

	want := Defaults()
	want.Trim2 = 1800
	if err := Save(store, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, defaulted, err := Load(store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if defaulted {
		t.Error("saved record should load as trusted")
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}
