package allocation

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// LoadState reads the State persisted in 'path'.
//
// The error wraps fs.ErrNotExist when the file does not exist.
func LoadState(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("could not open allocation file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeState(f)
	if err != nil {
		return State{}, fmt.Errorf("could not decode allocation file %q: %w", path, err)
	}
	return s, nil
}

// SaveState persists 's' into 'path'. The file is replaced atomically.
func SaveState(path string, s State) error {
	var buf bytes.Buffer
	if err := EncodeState(&buf, s); err != nil {
		return fmt.Errorf("could not encode allocation: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write allocation file %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not write allocation file %q: %w", path, err)
	}
	return nil
}
