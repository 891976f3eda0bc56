package session

import (
	"encoding/json"
	"fmt"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

// Event types exchanged over the websocket, both directions.
const (
	EventUserLogin    = "user_login"    // client -> server
	EventSelectSong   = "select_song"   // client -> server
	EventQuitSong     = "quit_song"     // both directions
	EventSongSelected = "song_selected" // server -> client
	EventSongError    = "song_error"    // server -> client, requester only
)

// Envelope is the wire framing for every event: a type tag plus an
// optional JSON payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// LoginPayload announces who is behind a connection. The coordinator
// trusts these fields as sent; role is not re-verified server-side.
type LoginPayload struct {
	UserID     string            `json:"userId"`
	Username   string            `json:"username"`
	IsAdmin    bool              `json:"isAdmin"`
	Instrument models.Instrument `json:"instrument"`
}

// ClientEvent is the closed set of events a client may send.
type ClientEvent interface {
	clientEvent()
}

type LoginEvent struct {
	LoginPayload
}

type SelectSongEvent struct {
	models.SongSummary
}

type QuitSongEvent struct{}

func (LoginEvent) clientEvent()      {}
func (SelectSongEvent) clientEvent() {}
func (QuitSongEvent) clientEvent()   {}

// DecodeClientEvent parses and validates a raw client message. Unknown
// types and missing required fields are rejected here so malformed input
// never reaches the coordinator.
func DecodeClientEvent(data []byte) (ClientEvent, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}

	switch env.Type {
	case EventUserLogin:
		var p LoginPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		if p.Username == "" {
			return nil, fmt.Errorf("%s: missing username", env.Type)
		}
		if p.Instrument == "" {
			p.Instrument = models.InstrumentNone
		}
		return LoginEvent{p}, nil

	case EventSelectSong:
		var s models.SongSummary
		if err := json.Unmarshal(env.Payload, &s); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		if s.Link == "" {
			return nil, fmt.Errorf("%s: missing link", env.Type)
		}
		return SelectSongEvent{s}, nil

	case EventQuitSong:
		return QuitSongEvent{}, nil

	default:
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
}

func encodeServerEvent(eventType string, payload any) []byte {
	env := Envelope{Type: eventType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			// Payloads are our own structs; this does not happen.
			return nil
		}
		env.Payload = raw
	}
	data, _ := json.Marshal(env)
	return data
}

func encodeSongSelected(song *models.FullSong) []byte {
	return encodeServerEvent(EventSongSelected, song)
}

func encodeQuitSong() []byte {
	return encodeServerEvent(EventQuitSong, nil)
}

func encodeSongError(message string) []byte {
	return encodeServerEvent(EventSongError, message)
}
