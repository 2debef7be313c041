// Package spectate streams world snapshots to read-only websocket viewers.
package spectate

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/kleiner-held/internal/games/hero"
)

const (
	// DefaultInterval limits broadcasts to 10 per second.
	DefaultInterval = 100 * time.Millisecond

	sendBuffer   = 4
	writeTimeout = time.Second
)

// Option configures a Hub.
type Option func(*Hub)

// WithInterval sets the minimum time between broadcasts.
func WithInterval(d time.Duration) Option {
	return func(h *Hub) { h.interval = d }
}

// WithLogger sets the logger. Nil means silent.
func WithLogger(l *log.Logger) Option {
	return func(h *Hub) { h.logger = l }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) { h.now = now }
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub fans snapshots out to every connected spectator.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	latest   []byte
	lastSent time.Time
	closed   bool

	interval time.Duration
	logger   *log.Logger
	now      func() time.Time
	upgrader websocket.Upgrader
}

// NewHub creates a hub with no spectators.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients:  make(map[*client]struct{}),
		interval: DefaultInterval,
		now:      time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish broadcasts s unless the previous broadcast was less than the
// interval ago. Returns whether s was sent.
func (h *Hub) Publish(s hero.Snapshot) bool {
	now := h.now()
	h.mu.Lock()
	if h.closed || (!h.lastSent.IsZero() && now.Sub(h.lastSent) < h.interval) {
		h.mu.Unlock()
		return false
	}
	h.lastSent = now
	h.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("snapshot marshal failed", "err", err)
		}
		return false
	}
	h.broadcast(data)
	return true
}

// broadcast queues data on every client. A client whose queue is full is
// dropped.
func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropLocked(c, "slow client")
		}
	}
}

func (h *Hub) dropLocked(c *client, reason string) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	c.close()
	if h.logger != nil {
		h.logger.Info("spectator dropped", "reason", reason, "remaining", len(h.clients))
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c, "disconnected")
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and streams snapshots until the viewer
// disconnects. Anything the viewer sends is ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		}
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.add(c) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"))
		conn.Close()
		return
	}
	if h.logger != nil {
		h.logger.Info("spectator joined", "remote", r.RemoteAddr)
	}

	go h.writeLoop(c)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(c)
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Handler returns a mux serving the feed at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

// Close disconnects every spectator and stops accepting new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}
