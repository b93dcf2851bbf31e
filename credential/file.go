package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/tidwall/buntdb"
)

// InMemoryPath opens a FileStore that is never written to disk.
const InMemoryPath = ":memory:"

// FileStore persists the credential in a buntdb file.
type FileStore struct {
	db  *buntdb.DB
	key string
}

// DefaultFilePath returns ~/.giftsender/credentials.db.
func DefaultFilePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".giftsender", "credentials.db"), nil
}

// OpenFileStore opens or creates the database at path. A leading "~" is
// expanded; an empty path means [DefaultFilePath].
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultFilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if path != InMemoryPath {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("failed to expand path %q: %w", path, err)
		}
		path = expanded

		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create credential directory: %w", err)
		}
	}

	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	return &FileStore{db: db, key: DefaultKey}, nil
}

func (s *FileStore) Get(_ context.Context) (string, bool, error) {
	var apiKey string

	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(s.key)
		if err != nil {
			return err
		}
		apiKey = v
		return nil
	})

	if errors.Is(err, buntdb.ErrNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read credential: %w", err)
	}

	return apiKey, true, nil
}

func (s *FileStore) Set(_ context.Context, apiKey string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(s.key, apiKey, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}

	return nil
}

func (s *FileStore) Remove(_ context.Context) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(s.key)
		return err
	})
	if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("failed to remove credential: %w", err)
	}

	return nil
}

func (s *FileStore) Close() error {
	return s.db.Close()
}
