// README: JSON file implementation of the fuel price store.
package fuelprice

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore keeps the daily price record in a small JSON file.
// Concurrent first-requests-of-the-day may race on Save; last writer
// wins, which is acceptable for this value.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, ErrNoRecord
		}
		return Record{}, fmt.Errorf("read price file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode price file: %w", err)
	}
	return rec, nil
}

func (s *FileStore) Save(_ context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode price record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write price file: %w", err)
	}
	return nil
}
