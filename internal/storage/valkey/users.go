package valkey

import (
	"context"
	"fmt"
	"strconv"

	valkey "github.com/valkey-io/valkey-go"

	"github.com/jamoveo/jamoveo-backend/internal/models"
	"github.com/jamoveo/jamoveo-backend/internal/storage"
)

const (
	userKeyPrefix = "jamoveo:user:"
	hasAdminKey   = "jamoveo:has_admin"
)

// UserStore persists users in Valkey, one hash per user keyed by
// username. Usernames are unique by construction of the key.
type UserStore struct {
	client valkey.Client
}

func NewUserStore(addr string) (*UserStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("connect valkey at %s: %w", addr, err)
	}
	return &UserStore{client: client}, nil
}

func (s *UserStore) Close() {
	s.client.Close()
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	key := userKeyPrefix + user.Username

	// HSETNX on the id field doubles as the uniqueness check.
	created, err := s.client.Do(ctx, s.client.B().Hsetnx().Key(key).Field("id").Value(user.ID).Build()).AsInt64()
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}
	if created == 0 {
		return storage.ErrExists
	}

	err = s.client.Do(ctx, s.client.B().Hset().Key(key).FieldValue().
		FieldValue("username", user.Username).
		FieldValue("password", user.Password).
		FieldValue("instrument", string(user.Instrument)).
		FieldValue("is_admin", strconv.FormatBool(user.IsAdmin)).
		Build()).Error()
	if err != nil {
		return fmt.Errorf("store user %s: %w", user.Username, err)
	}

	if user.IsAdmin {
		err = s.client.Do(ctx, s.client.B().Set().Key(hasAdminKey).Value("1").Build()).Error()
		if err != nil {
			return fmt.Errorf("mark admin present: %w", err)
		}
	}
	return nil
}

func (s *UserStore) UserByName(ctx context.Context, username string) (*models.User, error) {
	fields, err := s.client.Do(ctx, s.client.B().Hgetall().Key(userKeyPrefix+username).Build()).AsStrMap()
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", username, err)
	}
	if len(fields) == 0 {
		return nil, storage.ErrNotFound
	}

	isAdmin, _ := strconv.ParseBool(fields["is_admin"])
	return &models.User{
		ID:         fields["id"],
		Username:   fields["username"],
		Password:   fields["password"],
		Instrument: models.Instrument(fields["instrument"]),
		IsAdmin:    isAdmin,
	}, nil
}

func (s *UserStore) HasAdmin(ctx context.Context) (bool, error) {
	n, err := s.client.Do(ctx, s.client.B().Exists().Key(hasAdminKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("check admin present: %w", err)
	}
	return n > 0, nil
}
