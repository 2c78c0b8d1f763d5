// Package users provides an in-memory user registry with unique email
// addresses, uuid identifiers, and offset/limit pagination.
package users

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// User is a registered user record.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Update carries optional field changes for an existing user. Nil fields
// are left unchanged.
type Update struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// DefaultListLimit bounds List results when the caller passes limit <= 0.
const DefaultListLimit = 100

// Registry stores users keyed by id with email uniqueness enforced
// case-insensitively. Thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string // normalized email -> user id
	now     func() time.Time
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create registers a new user. Returns ErrEmptyUsername or ErrEmptyEmail on
// blank fields and ErrEmailTaken when the email is already registered.
func (r *Registry) Create(_ context.Context, username, email string) (User, error) {
	if strings.TrimSpace(username) == "" {
		return User{}, ErrEmptyUsername
	}
	normalized := normalizeEmail(email)
	if normalized == "" {
		return User{}, ErrEmptyEmail
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[normalized]; taken {
		return User{}, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	user := User{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Username:  username,
		Email:     email,
		CreatedAt: r.now(),
	}
	r.byID[user.ID] = user
	r.byEmail[normalized] = user.ID
	return user, nil
}

// Get returns the user with the given id, or ErrUserNotFound.
func (r *Registry) Get(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return user, nil
}

// GetByEmail returns the user registered under the given email, or
// ErrUserNotFound.
func (r *Registry) GetByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[normalizeEmail(email)]
	if !exists {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}
	return r.byID[id], nil
}

// List returns users ordered by creation time, skipping the first skip
// records and returning at most limit. A non-positive limit falls back to
// DefaultListLimit.
func (r *Registry) List(_ context.Context, skip, limit int) ([]User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	r.mu.RLock()
	all := make([]User, 0, len(r.byID))
	for _, user := range r.byID {
		all = append(all, user)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	if skip >= len(all) {
		return []User{}, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

// ApplyUpdate changes the named user's fields. Returns ErrUserNotFound for
// unknown ids and ErrEmailTaken when the new email belongs to another user.
func (r *Registry) ApplyUpdate(_ context.Context, id string, update Update) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.byID[id]
	if !exists {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	// Validate every field before mutating either index so a rejected
	// update leaves the registry unchanged.
	if update.Username != nil && strings.TrimSpace(*update.Username) == "" {
		return User{}, ErrEmptyUsername
	}
	if update.Email != nil {
		normalized := normalizeEmail(*update.Email)
		if normalized == "" {
			return User{}, ErrEmptyEmail
		}
		if owner, taken := r.byEmail[normalized]; taken && owner != id {
			return User{}, fmt.Errorf("%w: %s", ErrEmailTaken, *update.Email)
		}
	}

	if update.Email != nil {
		delete(r.byEmail, normalizeEmail(user.Email))
		r.byEmail[normalizeEmail(*update.Email)] = id
		user.Email = *update.Email
	}
	if update.Username != nil {
		user.Username = *update.Username
	}

	r.byID[id] = user
	return user, nil
}

// Delete removes the user. Returns ErrUserNotFound for unknown ids.
func (r *Registry) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.byID[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	delete(r.byID, id)
	delete(r.byEmail, normalizeEmail(user.Email))
	return nil
}
