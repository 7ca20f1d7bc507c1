package settings

// FakeStore is an in-memory byte device for tests. A fresh store reads as
// erased (0xFF) like a blank EEPROM.
type FakeStore struct {
	// Mem is the raw device contents. Grown on demand by WriteBlock.
	Mem []byte

	// ReadError, if set, is returned by ReadBlock.
	ReadError error

	// WriteError, if set, is returned by WriteBlock.
	WriteError error

	// Writes counts WriteBlock calls, for asserting write-wear discipline.
	Writes int
}

// NewFakeStore creates an empty (erased) store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// ReadBlock returns length bytes at offset, 0xFF beyond written extent.
func (f *FakeStore) ReadBlock(offset, length int) ([]byte, error) {
	if f.ReadError != nil {
		return nil, f.ReadError
	}
	buf := make([]byte, length)
	for i := range buf {
		if offset+i < len(f.Mem) {
			buf[i] = f.Mem[offset+i]
		} else {
			buf[i] = 0xFF
		}
	}
	return buf, nil
}

// WriteBlock stores the buffer at offset.
func (f *FakeStore) WriteBlock(offset int, buf []byte) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	if need := offset + len(buf); need > len(f.Mem) {
		grown := make([]byte, need)
		for i := range grown {
			grown[i] = 0xFF
		}
		copy(grown, f.Mem)
		f.Mem = grown
	}
	copy(f.Mem[offset:], buf)
	f.Writes++
	return nil
}
