package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// AuthStore is the single source of truth for a session's auth state.
// Token and user are independent fields: holding one never implies
// holding the other, and each setter replaces exactly one of them.
type AuthStore struct {
	mu    sync.RWMutex
	user  *models.User
	token string
}

// NewAuthStore builds an empty store and hydrates it once from storage.
// Hydration populates the in-memory state only when both persisted
// values are present; a userData record that fails to parse is
// discarded and the session starts empty rather than carrying malformed
// data. Storage is never re-read after construction.
func NewAuthStore(ctx context.Context, storage SessionStorage, sessionID string) *AuthStore {
	s := &AuthStore{}
	if storage == nil {
		return s
	}

	token, err := storage.Token(ctx, sessionID)
	if err != nil {
		log.Printf("[auth-store] failed to read token for session %s: %v", sessionID, err)
		return s
	}
	userData, err := storage.UserData(ctx, sessionID)
	if err != nil {
		log.Printf("[auth-store] failed to read user data for session %s: %v", sessionID, err)
		return s
	}
	if token == "" || userData == "" {
		return s
	}

	var user models.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		log.Printf("[auth-store] corrupted user data for session %s, starting empty: %v", sessionID, err)
		return s
	}

	s.token = token
	s.user = &user
	return s
}

// SetUser replaces the user snapshot, leaving the token untouched.
func (s *AuthStore) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// SetToken replaces the bearer token, leaving the user untouched.
func (s *AuthStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// ClearAuth resets both fields in one atomic update (logout).
func (s *AuthStore) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// User returns the current user snapshot, or nil when signed out.
func (s *AuthStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current bearer token, or "" when absent.
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
