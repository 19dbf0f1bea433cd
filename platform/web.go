package platform

import (
	"context"
	"sync"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/models"
)

// BrowserMessaging is the browser push-messaging primitive surface: the
// Notification permission prompt, FCM token retrieval, and the
// foreground-message channel. The running web client implements it; a nil
// value means no browser context is attached.
type BrowserMessaging interface {
	RequestPermission(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
	OnForegroundMessage(fn func(models.Notification)) (remove func())
}

// Web adapts the browser push environment to the unified capability surface.
// Foreground deliveries arrive over the browser messaging channel; clicks on
// background-delivered pushes are relayed from the service worker through the
// relay hub. The browser exposes no application badge.
type Web struct {
	Messaging BrowserMessaging
	Sender    WebPushSender // nil when FCM credentials are absent
	Relay     *Relay

	mu    sync.Mutex
	token string
}

// NewWeb returns the web adapter variant.
func NewWeb(browser BrowserMessaging, sender WebPushSender, relay *Relay) *Web {
	return &Web{Messaging: browser, Sender: sender, Relay: relay}
}

func (w *Web) RequestPermission(ctx context.Context) bool {
	if w.Messaging == nil {
		return false
	}
	granted, err := w.Messaging.RequestPermission(ctx)
	if err != nil {
		zap.S().Warnw("notification permission request failed", "error", err)
		return false
	}
	if !granted {
		zap.S().Warnw("notification permission denied")
	}
	return granted
}

// AcquireToken fetches and caches the FCM token for this browser context.
func (w *Web) AcquireToken(ctx context.Context) string {
	if w.Messaging == nil {
		return ""
	}
	token, err := w.Messaging.Token(ctx)
	if err != nil {
		zap.S().Warnw("failed to acquire fcm token", "error", err)
		return ""
	}
	w.mu.Lock()
	w.token = token
	w.mu.Unlock()
	return token
}

// ShowLocal displays a notification by sending a webpush message to this
// context's own token. Without FCM credentials or a token the display is
// silently unavailable.
func (w *Web) ShowLocal(ctx context.Context, title, body string, payload models.Payload) string {
	w.mu.Lock()
	token := w.token
	w.mu.Unlock()
	if w.Sender == nil || token == "" {
		return ""
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload.StringMap(),
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"Urgency": "high"},
		},
	}
	id, err := w.Sender.Send(ctx, msg)
	if err != nil {
		zap.S().Errorw("failed to display web notification", "error", err)
		return ""
	}
	return id
}

// Listen wires foreground deliveries from the browser messaging channel and
// clicks from the service-worker relay, returning a combined unsubscribe.
func (w *Web) Listen(onReceived ReceivedHandler, onClicked ClickedHandler) func() {
	removeForeground := func() {}
	if w.Messaging != nil {
		removeForeground = w.Messaging.OnForegroundMessage(onReceived)
	}
	removeClicks := func() {}
	if w.Relay != nil {
		removeClicks = w.Relay.SubscribeClicks(onClicked)
	}
	return func() {
		removeForeground()
		removeClicks()
	}
}

// SupportsBadge reports false: browsers in this deployment expose no
// application badge, and skipping is not an error.
func (w *Web) SupportsBadge() bool { return false }

// SetBadge is a no-op on web.
func (w *Web) SetBadge(context.Context, int) error { return nil }
