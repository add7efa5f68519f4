package repository

import (
	"encoding/json"
	"errors"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// SessionRepo holds the single current-identity record. Writing evicts any
// prior session; there is no merge and no expiry.
type SessionRepo struct {
	store store.Store
}

func NewSessionRepo(s store.Store) *SessionRepo {
	return &SessionRepo{store: s}
}

// Get returns the persisted session, or nil when none is stored or the blob
// does not decode.
func (r *SessionRepo) Get() *models.Session {
	raw, err := r.store.Get(keySession)
	if err != nil {
		return nil
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil
	}
	return &session
}

func (r *SessionRepo) Put(session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Put(keySession, raw)
}

// Clear deletes the session unconditionally.
func (r *SessionRepo) Clear() error {
	err := r.store.Delete(keySession)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	return err
}
