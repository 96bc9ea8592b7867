// Package files persists the history of generated network codes as a JSON
// file on disk.
package files

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record describes one generated code. It carries metadata only: the payload
// and the password are never written to disk.
type Record struct {
	ID        string    `json:"id"`
	SSID      string    `json:"ssid"`
	Auth      string    `json:"auth"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages the storage and retrieval of generation records. Safe for
// concurrent use.
type Store struct {
	filePath string
	mu       sync.RWMutex
}

// NewStore creates a Store backed by the JSON file at path. The file is
// created on first Save.
func NewStore(path string) *Store {
	return &Store{filePath: path}
}

// Save records a generated code. Saving an SSID already on record is
// idempotent: the existing record is returned untouched.
func (s *Store) Save(ssid, auth string, hidden bool) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].SSID == ssid {
			return &records[i], nil
		}
	}

	rec := Record{
		ID:        uuid.NewString(),
		SSID:      ssid,
		Auth:      auth,
		Hidden:    hidden,
		CreatedAt: time.Now().UTC(),
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetAll retrieves every record. A store that has never saved anything
// returns an empty slice.
func (s *Store) GetAll() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Clear removes all records.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// read loads the backing file. Callers hold the appropriate lock.
func (s *Store) read() ([]Record, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
