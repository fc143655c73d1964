package store

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rustyeddy/papertrader/ledger"
)

// DefaultPath is where the portfolio is kept when nothing else is
// configured.
const DefaultPath = "portfolio.csv"

// FileStore persists ledger state to a single file in the portfolio
// format.
type FileStore struct {
	Path string
}

// NewFileStore returns a store at path, or DefaultPath when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path}
}

// Exists reports whether the portfolio file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads the portfolio file. ok is false, with a nil error, when the
// file does not exist.
func (s *FileStore) Load() (dec Decoded, ok bool, err error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Decoded{}, false, nil
	}
	if err != nil {
		return Decoded{}, false, &PersistenceError{Op: "load", Path: s.Path, Err: err}
	}
	defer f.Close()

	dec, err = Decode(f)
	if err != nil {
		return Decoded{}, false, &PersistenceError{Op: "load", Path: s.Path, Err: err}
	}
	return dec, true, nil
}

// Save writes st to the portfolio file, replacing what was there.
func (s *FileStore) Save(st ledger.State) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	if err := Encode(f, st); err != nil {
		f.Close()
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	return nil
}
