package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/inamate/sketchboard/internal/engine"
	"github.com/inamate/sketchboard/internal/typeid"
)

// Hub owns every live session and the clients attached to them. Sessions with no
// clients are dropped once they have been idle for longer than the TTL.
type Hub struct {
	mu         sync.RWMutex
	sessions   map[string]*Session // sessionID -> session
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	newEngine func() *engine.Engine
	ttl       time.Duration
	now       func() time.Time
}

func NewHub(newEngine func() *engine.Engine, ttl time.Duration) *Hub {
	return &Hub{
		sessions:   make(map[string]*Session),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		newEngine:  newEngine,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (h *Hub) Run() {
	ticker := time.NewTicker(sweepInterval(h.ttl))
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-ticker.C:
			h.sweep()
		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Stop disconnects every client and ends Run.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Create starts a new session. With sample set the canvas starts with the
// built-in sample scene.
func (h *Hub) Create(sample bool) *Session {
	eng := h.newEngine()
	if sample {
		eng.LoadSampleScene()
	}
	sess := newSession(typeid.NewSessionID(), eng, h.now())

	h.mu.Lock()
	h.sessions[sess.ID] = sess
	h.mu.Unlock()

	slog.Info("session created", "session", sess.ID)
	return sess
}

func (h *Hub) Get(id string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sess, ok := h.sessions[id]
	return sess, ok
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// addClient attaches client to its session. The session lookup and the attach
// share h.mu so a concurrent sweep cannot drop the session in between; a client
// whose session has already expired is told so and closed.
func (h *Hub) addClient(client *Client) {
	sess := client.session

	h.mu.RLock()
	live := h.sessions[sess.ID] == sess
	if live {
		sess.mu.Lock()
		sess.clients[client.ID] = client
		sess.lastSeen = h.now()
		sess.mu.Unlock()
	}
	h.mu.RUnlock()

	if !live {
		client.Send(errorMessage("session expired"))
		client.close()
		slog.Info("client rejected, session expired", "client", client.ID, "session", sess.ID)
		return
	}

	client.Send(newMessage(TypeWelcome, WelcomePayload{SessionID: sess.ID, ClientID: client.ID}))
	client.Send(sess.Render())

	slog.Info("client joined", "client", client.ID, "session", sess.ID)
}

func (h *Hub) removeClient(client *Client) {
	sess := client.session
	sess.mu.Lock()
	if _, ok := sess.clients[client.ID]; !ok {
		sess.mu.Unlock()
		return
	}
	delete(sess.clients, client.ID)
	client.close()
	sess.lastSeen = h.now()
	sess.mu.Unlock()

	slog.Info("client left", "client", client.ID, "session", sess.ID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	reply := sender.session.Handle(msg, h.now())
	if reply.Type == TypeError {
		sender.Send(reply)
		return
	}
	h.broadcast(sender.session, reply)
}

func (h *Hub) broadcast(sess *Session, msg *Message) {
	sess.mu.Lock()
	clients := make([]*Client, 0, len(sess.clients))
	for _, c := range sess.clients {
		clients = append(clients, c)
	}
	sess.mu.Unlock()

	for _, c := range clients {
		c.Send(msg)
	}
}

func (h *Hub) sweep() {
	now := h.now()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sess := range h.sessions {
		if sess.expired(now, h.ttl) {
			delete(h.sessions, id)
			slog.Info("session expired", "session", id)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sess := range h.sessions {
		sess.mu.Lock()
		for id, c := range sess.clients {
			delete(sess.clients, id)
			c.close()
		}
		sess.mu.Unlock()
	}
}

func sweepInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/2, time.Second), time.Minute)
}
