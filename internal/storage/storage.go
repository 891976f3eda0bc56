package storage

import (
	"context"
	"errors"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

var (
	// ErrNotFound is returned when no user exists for a username.
	ErrNotFound = errors.New("user not found")
	// ErrExists is returned when a username is already taken.
	ErrExists = errors.New("username already taken")
)

// UserStore persists registered users. Session state never goes through
// here; it lives in-process only.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByName(ctx context.Context, username string) (*models.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}
