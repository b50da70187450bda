package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/rs/zerolog"
)

// AllMentorships is the topic of clients that follow every mentorship
const AllMentorships int64 = 0

// EventTypeOccupancy tags occupancy events
const EventTypeOccupancy = "occupancy"

// OccupancyEvent is pushed to subscribers whenever a mentorship gains a participant
type OccupancyEvent struct {
	Type         string    `json:"type"`
	MentorshipID int64     `json:"mentorshipId"`
	Current      int       `json:"current"`
	Max          int       `json:"max"`
	Limit        string    `json:"limit"`
	Timestamp    time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts occupancy events to them.
// The client registry is owned by the Run goroutine.
type Hub struct {
	// Registered clients organized by mentorship ID; AllMentorships holds the firehose subscribers
	clients map[int64]map[*Client]bool

	broadcast  chan *OccupancyEvent
	register   chan *Client
	unregister chan *Client

	// guards counts, which mirror clients for readers outside Run
	mu     sync.RWMutex
	counts map[int64]int

	done   chan struct{}
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		broadcast:  make(chan *OccupancyEvent, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		counts:     make(map[int64]int),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled, then disconnects every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	topic := client.mentorshipID
	if _, ok := h.clients[topic]; !ok {
		h.clients[topic] = make(map[*Client]bool)
	}
	h.clients[topic][client] = true
	h.setCount(topic, len(h.clients[topic]))

	h.logger.Info().
		Int64("mentorshipID", topic).
		Str("addr", client.remoteAddr).
		Msg("Occupancy subscriber registered")
}

func (h *Hub) unregisterClient(client *Client) {
	topic := client.mentorshipID
	subscribers, ok := h.clients[topic]
	if !ok || !subscribers[client] {
		return
	}

	delete(subscribers, client)
	close(client.send)
	if len(subscribers) == 0 {
		delete(h.clients, topic)
	}
	h.setCount(topic, len(subscribers))

	h.logger.Info().
		Int64("mentorshipID", topic).
		Str("addr", client.remoteAddr).
		Msg("Occupancy subscriber unregistered")
}

func (h *Hub) closeAll() {
	for _, subscribers := range h.clients {
		for client := range subscribers {
			h.unregisterClient(client)
		}
	}
}

// broadcastEvent sends to the mentorship's subscribers and to the firehose subscribers
func (h *Hub) broadcastEvent(event *OccupancyEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Int64("mentorshipID", event.MentorshipID).Msg("Failed to marshal occupancy event")
		return
	}

	delivered := 0
	for _, topic := range []int64{event.MentorshipID, AllMentorships} {
		for client := range h.clients[topic] {
			select {
			case client.send <- data:
				delivered++
			default:
				// slow consumer; drop it rather than stall every other subscriber
				h.unregisterClient(client)
			}
		}
	}

	h.logger.Debug().
		Int64("mentorshipID", event.MentorshipID).
		Int("clientCount", delivered).
		Msg("Occupancy event broadcasted")
}

// PublishOccupancy queues an occupancy event. It never blocks the caller:
// when the queue is full or the hub has stopped the event is dropped.
func (h *Hub) PublishOccupancy(mentorshipID int64, current, max int) {
	event := &OccupancyEvent{
		Type:         EventTypeOccupancy,
		MentorshipID: mentorshipID,
		Current:      current,
		Max:          max,
		Limit:        models.FormatOccupancy(current, max),
		Timestamp:    time.Now(),
	}

	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Int64("mentorshipID", mentorshipID).Msg("Occupancy queue full, event dropped")
	}
}

// ClientsCount returns the number of subscribers of a mentorship topic
func (h *Hub) ClientsCount(mentorshipID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[mentorshipID]
}

func (h *Hub) setCount(topic int64, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n == 0 {
		delete(h.counts, topic)
		return
	}
	h.counts[topic] = n
}
