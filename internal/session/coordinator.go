package session

import (
	"context"
	"log"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

// ContentFetcher resolves a song link into its full content. The
// coordinator calls it at most once per select_song event.
type ContentFetcher interface {
	SongContent(ctx context.Context, link string) (*models.SongContent, error)
}

// Inbound is a decoded client event together with the connection that
// sent it.
type Inbound struct {
	Client *Client
	Event  ClientEvent
}

// Coordinator owns the session Registry and processes every event that
// can mutate it. All handlers run on the single Run goroutine in arrival
// order; the only work that happens off that goroutine is the content
// fetch itself, whose result is posted back onto the loop.
type Coordinator struct {
	Register   chan *Client
	Unregister chan *Client
	Inbound    chan Inbound

	fetcher  ContentFetcher
	registry *Registry
	resolved chan fetchResult
}

type fetchResult struct {
	requester *Client
	song      *models.FullSong
	err       error
}

func NewCoordinator(fetcher ContentFetcher) *Coordinator {
	return &Coordinator{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Inbound:    make(chan Inbound),
		fetcher:    fetcher,
		registry:   NewRegistry(),
		resolved:   make(chan fetchResult),
	}
}

func (co *Coordinator) Run() {
	for {
		select {
		case client := <-co.Register:
			co.registry.Add(client)
			log.Printf("[Session] Client connected: %s (%d total)", client.ID, co.registry.Len())
		case client := <-co.Unregister:
			co.handleDisconnect(client)
		case in := <-co.Inbound:
			co.handleEvent(in.Client, in.Event)
		case res := <-co.resolved:
			co.handleResolved(res)
		}
	}
}

func (co *Coordinator) handleEvent(client *Client, event ClientEvent) {
	if co.registry.Get(client.ID) == nil {
		return
	}

	switch ev := event.(type) {
	case LoginEvent:
		co.handleLogin(client, ev.LoginPayload)
	case SelectSongEvent:
		co.handleSelect(client, ev.SongSummary)
	case QuitSongEvent:
		co.handleQuit(client)
	}
}

func (co *Coordinator) handleLogin(client *Client, p LoginPayload) {
	role := RolePlayer
	if p.IsAdmin {
		role = RoleAdmin
	}
	co.registry.SetRole(client.ID, role, p.Username, p.Instrument)
	log.Printf("[Session] User logged in: %s - Role: %s", p.Username, role)

	// Late-join catch-up: a player announcing while a song is live gets
	// the current song pushed to it alone, not a full rebroadcast.
	if role != RoleAdmin {
		if song := co.registry.ActiveSong(); song != nil {
			log.Printf("[Session] Sending current song to new player: %s", song.Title)
			co.deliver(client, encodeSongSelected(song))
		}
	}
}

func (co *Coordinator) handleSelect(client *Client, summary models.SongSummary) {
	log.Printf("[Session] Song selected: %s - %s", summary.Title, summary.Artist)

	// The fetch is the only blocking operation in the core, so it runs off
	// the loop. There is no cancellation and no generation check: whenever
	// the fetch completes, its result is applied, even if a quit or a
	// newer select was processed in the meantime.
	go func() {
		content, err := co.fetcher.SongContent(context.Background(), summary.Link)
		if err != nil {
			co.resolved <- fetchResult{requester: client, err: err}
			return
		}
		co.resolved <- fetchResult{
			requester: client,
			song:      &models.FullSong{SongSummary: summary, SongContent: *content},
		}
	}()
}

func (co *Coordinator) handleResolved(res fetchResult) {
	if res.err != nil {
		log.Printf("[Session] Failed to fetch song content: %v", res.err)
		co.deliver(res.requester, encodeSongError("Could not load song content."))
		return
	}

	co.registry.SetActiveSong(res.song)
	log.Printf("[Session] Broadcasting song to all clients: %s", res.song.Title)
	co.broadcast(encodeSongSelected(res.song))
}

func (co *Coordinator) handleQuit(client *Client) {
	log.Printf("[Session] Song quit by %s - notifying all clients", client.ID)
	co.registry.ClearActiveSong()
	co.broadcast(encodeQuitSong())
}

func (co *Coordinator) handleDisconnect(client *Client) {
	// Already evicted by a failed broadcast send; Send is closed.
	if co.registry.Get(client.ID) == nil {
		return
	}
	role := co.registry.Remove(client.ID)
	close(client.Send)
	log.Printf("[Session] Client disconnected: %s (%s)", client.ID, role)

	// Without its admin the session cannot advance, so tear it down
	// rather than leave players stuck on a stale song.
	if role == RoleAdmin {
		co.registry.ClearActiveSong()
		co.broadcast(encodeQuitSong())
	}
}

// deliver sends to a single connection, dropping the message if the
// connection is gone or its send buffer is full.
func (co *Coordinator) deliver(client *Client, data []byte) {
	if co.registry.Get(client.ID) == nil {
		return
	}
	select {
	case client.Send <- data:
	default:
	}
}

// broadcast fans out over the connection set as it exists at emission
// time. A client that cannot keep up is evicted.
func (co *Coordinator) broadcast(data []byte) {
	adminEvicted := false
	for id, client := range co.registry.clients {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(co.registry.clients, id)
			log.Printf("[Session] Evicted slow client: %s (%s)", id, client.Role)
			if client.Role == RoleAdmin {
				adminEvicted = true
			}
		}
	}

	// An evicted admin never reaches handleDisconnect (its registry
	// entry is already gone by then), so the session teardown has to
	// happen here or the players stay stuck on a stale song.
	if adminEvicted {
		co.registry.ClearActiveSong()
		co.broadcast(encodeQuitSong())
	}
}
