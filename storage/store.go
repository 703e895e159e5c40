package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const tmpSuffix = ".tmp"

// Store holds the per-month documents of one calendar, one YAML file per
// (month, year) in a flat directory.
type Store struct {
	dir string
}

// NewStore returns a store over dir. The directory is created lazily on the
// first write; a missing directory reads back as an empty store.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Filename returns the document name for a (month, year) pair: the
// lowercase English month name followed by the year, "january2023.yaml".
func Filename(month, year int) string {
	return fmt.Sprintf("%s%d.yaml", strings.ToLower(time.Month(month).String()), year)
}

// ReadAll decodes every .yaml document in the store directory, in directory
// order. Reading is best-effort per file: documents that cannot be opened
// or parsed are skipped with a warning.
func (s *Store) ReadAll() ([]MonthRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("storage directory does not exist yet", "dir", s.dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("(*Store).ReadAll: %w", err)
	}

	var records []MonthRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		rec, err := s.readFile(entry.Name())
		if err != nil {
			slog.Warn("skipping unreadable month document", "file", entry.Name(), "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) readFile(name string) (MonthRecord, error) {
	file, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return MonthRecord{}, err
	}
	defer file.Close()

	var rec MonthRecord
	if err := yaml.NewDecoder(file).Decode(&rec); err != nil {
		return MonthRecord{}, err
	}
	return rec, nil
}

// Write encodes rec into its derived filename, creating the directory when
// needed. The document goes through a temp file and a rename so a failed
// write never truncates an existing one.
func (s *Store) Write(rec MonthRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("(*Store).Write: %w", err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("(*Store).Write: %w", err)
	}

	path := filepath.Join(s.dir, Filename(rec.Month, rec.Year))
	tmp := path + tmpSuffix
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("(*Store).Write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("(*Store).Write: %w", err)
	}
	return nil
}
