package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Application is an accepted submission.
type Application struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BirthDate    time.Time `json:"birthDate"`
	Photo        string    `json:"photo,omitempty"`
	Specialty    string    `json:"specialty"`
	Experience   float64   `json:"experience"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store persists accepted applications.
type Store interface {
	Save(ctx context.Context, app Application) error
	Get(ctx context.Context, id uuid.UUID) (Application, error)
}

// MemoryStore is a Store kept in process memory. Emails are unique,
// compared case-insensitively.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]Application
	byEmail map[string]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[uuid.UUID]Application),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) Save(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := strings.ToLower(strings.TrimSpace(app.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byEmail[key]; ok && id != app.ID {
		return ErrAlreadySubmitted
	}
	s.byID[app.ID] = app
	s.byEmail[key] = app.ID
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}
