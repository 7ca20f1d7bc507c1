package settings

import (
	"fmt"
	"io"
	"os"
)

// FileStore persists the record slot in a regular file, standing in for the
// external EEPROM on hosts with a filesystem.
type FileStore struct {
	path string
}

// NewFileStore opens (creating if needed) the backing file.
func NewFileStore(path string) (*FileStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open settings file: %w", err)
	}
	f.Close()
	return &FileStore{path: path}, nil
}

// ReadBlock reads length bytes at offset. Bytes beyond the end of the file
// read as 0xFF, matching erased EEPROM cells, so a fresh file looks like a
// blank device rather than a short read.
func (fs *FileStore) ReadBlock(offset, length int) ([]byte, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = 0xFF
	}
	n, err := f.ReadAt(buf, int64(offset))
	if err != nil && err != io.EOF {
		return nil, err
	}
	_ = n
	return buf, nil
}

// WriteBlock writes the buffer at offset and syncs the file before returning.
func (fs *FileStore) WriteBlock(offset int, buf []byte) error {
	f, err := os.OpenFile(fs.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteAt(buf, int64(offset)); err != nil {
		return err
	}
	return f.Sync()
}
