package platform

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/models"
)

// PushRegistrar is the OS-level push registration primitive the mobile shell
// injects: permission prompts, device token acquisition, and the two native
// listener channels.
type PushRegistrar interface {
	RequestPermission(ctx context.Context) (bool, error)
	DeviceToken(ctx context.Context) (string, error)
	OnDelivery(fn func(models.Notification)) (remove func())
	OnInteraction(fn func(models.Notification)) (remove func())
}

// Mobile adapts the OS push environment to the unified capability surface.
// Local display and badge writes go out through the Expo push API against the
// device's own token.
type Mobile struct {
	Registrar PushRegistrar
	Sender    *ExpoSender
	Kind      models.DeviceKind

	mu    sync.Mutex
	token string
}

// NewMobile returns the mobile adapter variant.
func NewMobile(registrar PushRegistrar, sender *ExpoSender, kind models.DeviceKind) *Mobile {
	return &Mobile{Registrar: registrar, Sender: sender, Kind: kind}
}

func (m *Mobile) RequestPermission(ctx context.Context) bool {
	if m.Registrar == nil {
		return false
	}
	granted, err := m.Registrar.RequestPermission(ctx)
	if err != nil {
		zap.S().Warnw("push permission request failed", "error", err)
		return false
	}
	if !granted {
		zap.S().Warnw("push permission denied")
	}
	return granted
}

// AcquireToken fetches and caches the device push token. Environments
// without push support (emulators) yield "".
func (m *Mobile) AcquireToken(ctx context.Context) string {
	if m.Registrar == nil {
		return ""
	}
	token, err := m.Registrar.DeviceToken(ctx)
	if err != nil {
		zap.S().Warnw("failed to acquire device push token", "error", err)
		return ""
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return token
}

// ShowLocal displays a notification by sending an immediate push to the
// device's own token.
func (m *Mobile) ShowLocal(ctx context.Context, title, body string, payload models.Payload) string {
	token := m.currentToken()
	if token == "" {
		return ""
	}

	id := uuid.NewString()
	data := payload.Map()
	data["localId"] = id

	msg := ExpoPushMessage{
		To:        token,
		Title:     title,
		Body:      body,
		Sound:     "default",
		Data:      data,
		Priority:  "high",
		ChannelID: "default",
	}
	if err := m.Sender.Send(ctx, []ExpoPushMessage{msg}); err != nil {
		zap.S().Errorw("failed to display local notification", "error", err)
		return ""
	}
	return id
}

// Listen registers the delivery and interaction listeners and returns a
// combined unsubscribe.
func (m *Mobile) Listen(onReceived ReceivedHandler, onClicked ClickedHandler) func() {
	if m.Registrar == nil {
		return func() {}
	}
	removeDelivery := m.Registrar.OnDelivery(onReceived)
	removeInteraction := m.Registrar.OnInteraction(onClicked)
	return func() {
		removeDelivery()
		removeInteraction()
	}
}

// SupportsBadge reports true once a device token is known; the badge rides
// the Expo message badge field.
func (m *Mobile) SupportsBadge() bool {
	return m.currentToken() != ""
}

// SetBadge writes the absolute badge count through a silent push.
func (m *Mobile) SetBadge(ctx context.Context, count int) error {
	token := m.currentToken()
	if token == "" {
		return nil
	}
	msg := ExpoPushMessage{
		To:    token,
		Badge: &count,
	}
	return m.Sender.Send(ctx, []ExpoPushMessage{msg})
}

func (m *Mobile) currentToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}
