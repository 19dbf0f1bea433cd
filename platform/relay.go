package platform

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/config"
	"github.com/net-studio/intranet-sub001/models"
)

// relayEvent is the JSON frame exchanged with browser and service-worker
// contexts. Inbound frames carry clicks relayed by the service worker and
// token registrations; outbound frames carry navigation intents and unread
// snapshots.
type relayEvent struct {
	Event  string              `json:"event"`
	Token  string              `json:"token,omitempty"`
	Device models.DeviceKind   `json:"device,omitempty"`
	Data   models.Notification `json:"data,omitempty"`
}

const (
	eventNotificationClick = "notification_click"
	eventRegisterToken     = "register_token"
)

// TokenHandler consumes a push token reported by a connected client.
type TokenHandler func(token string, kind models.DeviceKind)

// Relay owns the websocket channel between the agent and browser contexts.
// The service worker owns display and click handling for background pushes;
// it only relays clicks here, and the relay fans them out to subscribers.
type Relay struct {
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[string]*websocket.Conn
	clicks   map[string]ClickedHandler
	tokens   map[string]TokenHandler
}

// NewRelay returns an empty relay hub.
func NewRelay() *Relay {
	return &Relay{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // intranet deployment, same-origin enforced upstream
			},
		},
		clients: make(map[string]*websocket.Conn),
		clicks:  make(map[string]ClickedHandler),
		tokens:  make(map[string]TokenHandler),
	}
}

// Routes registers the relay endpoints on the given router.
func (rl *Relay) Routes(r *mux.Router) {
	r.HandleFunc("/ws/notifications", rl.HandleSocket)
	r.HandleFunc("/relay/events", rl.HandleEvent).Methods("POST")
}

// HandleEvent accepts a single relay event over plain HTTP, for contexts that
// cannot hold a websocket open, like a service worker about to terminate.
func (rl *Relay) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var ev relayEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		config.ErrorStatus("Failed to decode relay event", http.StatusBadRequest, w, err)
		return
	}
	if ev.Event != eventNotificationClick && ev.Event != eventRegisterToken {
		config.ErrorStatus("Unsupported relay event", http.StatusBadRequest, w, fmt.Errorf("event %q", ev.Event))
		return
	}
	rl.dispatch(ev)
	w.WriteHeader(http.StatusAccepted)
}

// HandleSocket upgrades the connection and pumps inbound frames until the
// client goes away.
func (rl *Relay) HandleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := rl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	rl.mu.Lock()
	rl.clients[clientID] = conn
	rl.mu.Unlock()
	zap.S().Infow("relay client connected", "client", clientID)

	for {
		var ev relayEvent
		if err := conn.ReadJSON(&ev); err != nil {
			rl.mu.Lock()
			delete(rl.clients, clientID)
			rl.mu.Unlock()
			conn.Close()
			zap.S().Infow("relay client disconnected", "client", clientID)
			return
		}
		rl.dispatch(ev)
	}
}

func (rl *Relay) dispatch(ev relayEvent) {
	switch ev.Event {
	case eventNotificationClick:
		for _, fn := range rl.clickHandlers() {
			fn(ev.Data)
		}
	case eventRegisterToken:
		for _, fn := range rl.tokenHandlers() {
			fn(ev.Token, ev.Device)
		}
	default:
		zap.S().Debugw("relay event ignored", "event", ev.Event)
	}
}

// SubscribeClicks registers a click handler and returns its unsubscribe.
func (rl *Relay) SubscribeClicks(fn ClickedHandler) func() {
	id := uuid.NewString()
	rl.mu.Lock()
	rl.clicks[id] = fn
	rl.mu.Unlock()
	return func() {
		rl.mu.Lock()
		delete(rl.clicks, id)
		rl.mu.Unlock()
	}
}

// SubscribeTokens registers a token handler and returns its unsubscribe.
func (rl *Relay) SubscribeTokens(fn TokenHandler) func() {
	id := uuid.NewString()
	rl.mu.Lock()
	rl.tokens[id] = fn
	rl.mu.Unlock()
	return func() {
		rl.mu.Lock()
		delete(rl.tokens, id)
		rl.mu.Unlock()
	}
}

// Broadcast sends an event to every connected client, dropping any client
// whose write fails.
func (rl *Relay) Broadcast(event string, data interface{}) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for clientID, conn := range rl.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": event,
			"data":  data,
		})
		if err != nil {
			zap.S().Warnw("failed to send relay event, dropping client", "error", err, "client", clientID)
			delete(rl.clients, clientID)
			conn.Close()
		}
	}
}

func (rl *Relay) clickHandlers() []ClickedHandler {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	out := make([]ClickedHandler, 0, len(rl.clicks))
	for _, fn := range rl.clicks {
		out = append(out, fn)
	}
	return out
}

func (rl *Relay) tokenHandlers() []TokenHandler {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	out := make([]TokenHandler, 0, len(rl.tokens))
	for _, fn := range rl.tokens {
		out = append(out, fn)
	}
	return out
}
