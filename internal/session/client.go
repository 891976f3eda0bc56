package session

import "github.com/jamoveo/jamoveo-backend/internal/models"

// Role is the declared role of a connection. It starts unset and is
// recorded by the first user_login event; re-announcing overwrites it.
type Role int

const (
	RoleUnset Role = iota
	RoleAdmin
	RolePlayer
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RolePlayer:
		return "player"
	default:
		return "unset"
	}
}

// Client is one connected endpoint as seen by the coordinator. The
// transport layer writes whatever lands on Send to the socket.
type Client struct {
	ID         string
	Username   string
	Role       Role
	Instrument models.Instrument
	Send       chan []byte
}

// NewClient constructs a client with a buffered send channel sized the
// same as the transport's write buffer.
func NewClient(id string) *Client {
	return &Client{
		ID:         id,
		Instrument: models.InstrumentNone,
		Send:       make(chan []byte, 256),
	}
}
