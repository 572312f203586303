package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// EnvDataPath overrides the data file location when set. Used by tests and
// by people who want their save somewhere else.
const EnvDataPath = "SHELL_GOTCHI_DATA"

// DefaultDataPath returns the save file location,
// ~/.local/share/shell-gotchi/data.json unless overridden.
func DefaultDataPath() (string, error) {
	if p := os.Getenv(EnvDataPath); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "shell-gotchi", "data.json"), nil
}

// Store reads and writes the game document at a fixed path.
//
// Saves are whole-file replaces via a temp file and rename. There is no
// cross-process locking: two invocations racing between load and save can
// lose the earlier writer's mutation. Acceptable for a single-user local
// tool.
type Store struct {
	path string
	log  *slog.Logger
}

func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log}
}

func (s *Store) Path() string { return s.path }

// Load reads the document, migrating any missing sections or keys to their
// defaults. A missing or unreadable file yields a fresh default document;
// corruption is recovered locally and never surfaced to the caller.
func (s *Store) Load() (*State, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("save file unreadable, starting fresh", "path", s.path, "err", err)
		}
		return s.Reset()
	}

	// Unmarshal over a default document: keys present in the file win,
	// keys absent keep their default. This is the whole migration step.
	st := DefaultState()
	if err := json.Unmarshal(b, st); err != nil {
		s.log.Warn("save file corrupt, resetting", "path", s.path, "err", err)
		return s.Reset()
	}
	st.normalize()
	return st, nil
}

// Save writes the whole document atomically (temp file + rename).
func (s *Store) Save(st *State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "data-*.json")
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Reset discards any existing save and writes a fresh default document.
func (s *Store) Reset() (*State, error) {
	st := DefaultState()
	if err := s.Save(st); err != nil {
		return nil, err
	}
	return st, nil
}
