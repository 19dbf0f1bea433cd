package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/models"
)

// Intent is the navigation target dispatched after a notification click.
type Intent struct {
	Screen string            `json:"screen"`
	Params map[string]string `json:"params,omitempty"`
}

// Navigator receives navigation intents. The app's navigation container
// implements it; dispatch is fire-and-forget and no acknowledgement is
// awaited.
type Navigator interface {
	Navigate(intent Intent)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(intent Intent)

// Navigate calls fn(intent).
func (fn NavigatorFunc) Navigate(intent Intent) { fn(intent) }

type routerState int

const (
	stateIdle routerState = iota
	stateDispatching
)

// Router turns notification clicks into navigation intents and marks the
// source notification read as a side effect. Only one dispatch runs at a
// time; clicks arriving mid-dispatch are dropped.
type Router struct {
	Gateway   *Gateway
	Navigator Navigator

	mu    sync.Mutex
	state routerState
}

// NewRouter initializes a router over the gateway and navigator.
func NewRouter(gateway *Gateway, navigator Navigator) *Router {
	return &Router{Gateway: gateway, Navigator: navigator}
}

// HandleClick dispatches the navigation for a clicked notification. The
// mark-read side effect is best-effort; its failure never blocks navigation.
func (r *Router) HandleClick(ctx context.Context, n models.Notification) {
	r.mu.Lock()
	if r.state == stateDispatching {
		r.mu.Unlock()
		zap.S().Debugw("notification click dropped, dispatch in progress", "id", n.ID)
		return
	}
	r.state = stateDispatching
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.state = stateIdle
		r.mu.Unlock()
	}()

	if n.ID != 0 {
		if ok := r.Gateway.MarkRead(ctx, n.ID); !ok {
			zap.S().Debugw("best-effort mark-read failed for clicked notification", "id", n.ID)
		}
	}

	r.Navigator.Navigate(intentFor(n.Data))
}

// intentFor branches on the declared screen. Unrecognized screens land on the
// generic notifications list.
func intentFor(p models.Payload) Intent {
	switch p.Screen {
	case models.ScreenMessageDetails:
		return Intent{
			Screen: models.ScreenMessageDetails,
			Params: map[string]string{"conversationId": p.ConversationID},
		}
	case models.ScreenDocumentDetails:
		return Intent{
			Screen: models.ScreenDocumentDetails,
			Params: map[string]string{"documentId": p.DocumentID},
		}
	case models.ScreenEventDetails:
		return Intent{
			Screen: models.ScreenEventDetails,
			Params: map[string]string{"eventId": p.EventID},
		}
	default:
		return Intent{Screen: models.ScreenNotifications}
	}
}
