// Package file stores spinner state as one JSON document per storage key
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/utils"
	"github.com/osse101/DecisionSpinner_Go/internal/validation"
)

const (
	dirPermission = 0755
	fileExtension = ".json"
)

// Store keeps decision-spinner-options.json and decision-spinner-history.json
// under a directory. Documents are checked against the embedded schemas on
// load; anything that fails is reported as malformed.
type Store struct {
	dir       string
	validator validation.SchemaValidator
	mu        sync.Mutex
}

// New creates the directory if needed
func New(dir string, validator validation.SchemaValidator) (*Store, error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	if validator == nil {
		validator = validation.NewSchemaValidator()
	}
	return &Store{dir: dir, validator: validator}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+fileExtension)
}

func (s *Store) load(key, schema string, target interface{}) error {
	s.mu.Lock()
	data, err := os.ReadFile(s.path(key))
	s.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := s.validator.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStateMalformed, key, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStateMalformed, key, err)
	}
	return nil
}

func (s *Store) save(key string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utils.SaveJSON(s.path(key), data)
}

func (s *Store) LoadOptions(_ context.Context) ([]domain.Option, error) {
	var opts []domain.Option
	if err := s.load(domain.StorageKeyOptions, validation.SchemaOptions, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func (s *Store) SaveOptions(_ context.Context, options []domain.Option) error {
	return s.save(domain.StorageKeyOptions, domain.CloneOptions(options))
}

// historyRecord is the stored layout of one history entry. The option
// count is camelCase in the browser client's documents.
type historyRecord struct {
	ID           string        `json:"id"`
	Winner       domain.Option `json:"winner"`
	Timestamp    time.Time     `json:"timestamp"`
	TotalOptions int           `json:"totalOptions"`
}

func (s *Store) LoadHistory(_ context.Context) ([]domain.HistoryEntry, error) {
	var records []historyRecord
	if err := s.load(domain.StorageKeyHistory, validation.SchemaHistory, &records); err != nil {
		return nil, err
	}
	entries := make([]domain.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = domain.HistoryEntry{
			ID:           r.ID,
			Winner:       r.Winner,
			Timestamp:    r.Timestamp,
			TotalOptions: r.TotalOptions,
		}
	}
	return entries, nil
}

func (s *Store) SaveHistory(_ context.Context, entries []domain.HistoryEntry) error {
	records := make([]historyRecord, len(entries))
	for i, e := range entries {
		records[i] = historyRecord{
			ID:           e.ID,
			Winner:       e.Winner,
			Timestamp:    e.Timestamp,
			TotalOptions: e.TotalOptions,
		}
	}
	return s.save(domain.StorageKeyHistory, records)
}

// Clear removes both documents. Missing files are not an error.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range []string{domain.StorageKeyOptions, domain.StorageKeyHistory} {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}

// Ping checks the directory is still there
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}
