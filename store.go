package finbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection keys. Each collection persists as one JSON array under its own
// namespaced file.
const (
	keyTransactions  = "transactions"
	keyAccounts      = "accounts"
	keyAutoCredits   = "autocredits"
	keyLendings      = "lendings"
	keyBullion       = "bullion"
	keyFixedDeposits = "fixeddeposits"
	keyRealEstate    = "realestate"
	keyInsurances    = "insurances"
	keyLoans         = "loans"
)

// keyPrefix namespaces the book's files so the directory can be shared with
// unrelated data.
const keyPrefix = "finbook."

// Store persists named collections as JSON files under a directory.
//
// Writes are last-writer-wins with no multi-key transaction: a crash between
// two writes can leave collections inconsistent, accepted for local
// single-user operation.
type Store struct {
	dir string
}

// NewStore opens a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store persists into.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, keyPrefix+key+".json")
}

// Read returns the collection stored under key, or def when the file is
// absent or corrupt. Corruption is logged and degraded, never fatal: the
// engine has no user-facing error channel of its own.
func Read[T any](s *Store, key string, def T) T {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return def
	}
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("could not read collection, using default")
		return def
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("corrupt collection, using default")
		return def
	}
	return v
}

// Write serializes and persists the collection under key, replacing any
// previous value.
func Write[T any](s *Store, key string, v T) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", key, err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(s.path(key), b, 0644); err != nil {
		return fmt.Errorf("could not write collection %q: %w", key, err)
	}
	return nil
}
