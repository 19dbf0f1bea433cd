package platform

import (
	"context"

	"github.com/net-studio/intranet-sub001/models"
)

// ReceivedHandler consumes a notification delivered while the app is in the
// foreground.
type ReceivedHandler func(n models.Notification)

// ClickedHandler consumes a user interaction with a displayed notification.
type ClickedHandler func(n models.Notification)

// Adapter is the single capability surface over the web and mobile push
// environments. Web delivery is service-worker-mediated and mobile delivery
// is OS-mediated; everything above this interface is transport-agnostic.
type Adapter interface {
	// RequestPermission asks the platform for notification permission.
	// Denial is logged as a warning and returns false; no retry loop exists.
	RequestPermission(ctx context.Context) bool

	// AcquireToken returns the platform push token, or "" when the
	// environment cannot produce one (e.g. an emulator without push support).
	AcquireToken(ctx context.Context) string

	// ShowLocal displays a notification immediately and returns its local
	// identifier, or "" when display is unavailable.
	ShowLocal(ctx context.Context, title, body string, payload models.Payload) string

	// Listen registers delivery and interaction handlers and returns a
	// combined unsubscribe.
	Listen(onReceived ReceivedHandler, onClicked ClickedHandler) (unsubscribe func())

	// SupportsBadge and SetBadge implement the optional application badge
	// capability; platforms without a badge report false and skip silently.
	SupportsBadge() bool
	SetBadge(ctx context.Context, count int) error
}
