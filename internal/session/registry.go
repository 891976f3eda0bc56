package session

import "github.com/jamoveo/jamoveo-backend/internal/models"

// Registry holds the process-wide session state: the set of connected
// clients and the single active song (or none).
//
// It is not safe for concurrent use. The Coordinator's run loop is the
// only writer, which keeps mutation single-threaded without a lock.
type Registry struct {
	clients map[string]*Client
	active  *models.FullSong
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Add registers a connection with its role still unset.
func (r *Registry) Add(c *Client) {
	r.clients[c.ID] = c
}

// Get returns the client for the given connection id, or nil.
func (r *Registry) Get(id string) *Client {
	return r.clients[id]
}

// SetRole records role, username and instrument for a connection.
// Last write wins; re-announcing simply overwrites.
func (r *Registry) SetRole(id string, role Role, username string, instrument models.Instrument) {
	c, ok := r.clients[id]
	if !ok {
		return
	}
	c.Role = role
	c.Username = username
	c.Instrument = instrument
}

// ActiveSong returns the current song, or nil when the session is idle.
func (r *Registry) ActiveSong() *models.FullSong {
	return r.active
}

// SetActiveSong replaces the shared song record wholesale.
func (r *Registry) SetActiveSong(song *models.FullSong) {
	r.active = song
}

// ClearActiveSong drops the session back to idle.
func (r *Registry) ClearActiveSong() {
	r.active = nil
}

// Remove drops a connection and returns its last-known role so the
// caller can decide whether the session must be torn down.
func (r *Registry) Remove(id string) Role {
	c, ok := r.clients[id]
	if !ok {
		return RoleUnset
	}
	delete(r.clients, id)
	return c.Role
}

// Len reports how many connections are registered.
func (r *Registry) Len() int {
	return len(r.clients)
}
