package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository keeps session tokens in an embedded badger database using entry TTLs.
type SessionRepository struct {
	db *badgerdb.DB
}

// Open opens a badger database at dir. An empty dir opens an in-memory database.
func Open(dir string) (*SessionRepository, error) {
	opts := badgerdb.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLoggingLevel(badgerdb.WARNING)

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", dir, err)
	}

	return &SessionRepository{db: db}, nil
}

func (r *SessionRepository) Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.db.Update(func(txn *badgerdb.Txn) error {
		entry := badgerdb.NewEntry([]byte(model.SessionKey(token)), userID[:]).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	var userID uuid.UUID
	err := r.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(model.SessionKey(token)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id, err := uuid.FromBytes(val)
			if err != nil {
				return err
			}
			userID = id
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get session: %w", err)
	}

	return userID, nil
}

// Delete removes the token. A concurrent delete of the same token loses the
// transaction conflict and reports ErrNotFound.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(model.SessionKey(token))
	err := r.db.Update(func(txn *badgerdb.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) || errors.Is(err, badgerdb.ErrConflict) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

func (r *SessionRepository) Close() error {
	return r.db.Close()
}
