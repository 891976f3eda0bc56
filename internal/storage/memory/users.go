package memory

import (
	"context"
	"log"  // For logging messages
	"sync" // For RWMutex to handle concurrent access

	"github.com/google/uuid"

	"github.com/jamoveo/jamoveo-backend/internal/models"
	"github.com/jamoveo/jamoveo-backend/internal/storage"
)

// UserStore manages registered users in memory. It is the default store
// when no Valkey address is configured.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User // username -> user
}

// NewUserStore creates and returns a new instance of UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*models.User),
	}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return storage.ErrExists
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	stored := *user
	s.users[user.Username] = &stored

	log.Printf("User created: ID=%s, Username=%s, Admin=%t", user.ID, user.Username, user.IsAdmin)
	return nil
}

func (s *UserStore) UserByName(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}

	u := *user
	return &u, nil
}

func (s *UserStore) HasAdmin(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}
