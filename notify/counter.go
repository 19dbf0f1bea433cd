package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/models"
)

// BadgeSetter is the optional application-badge capability of a platform.
// Writes are absolute sets, never increments, so concurrent writers converge.
type BadgeSetter interface {
	SupportsBadge() bool
	SetBadge(ctx context.Context, count int) error
}

// Counter derives the per-category unread counts from the live unread set.
// Classification is a pure pass over the fetched records; nothing is
// persisted between refreshes.
type Counter struct {
	Gateway *Gateway
	Badge   BadgeSetter
}

// NewCounter initializes a counter over the gateway. badge may be nil when
// the platform exposes no application badge.
func NewCounter(gateway *Gateway, badge BadgeSetter) *Counter {
	return &Counter{Gateway: gateway, Badge: badge}
}

// Refresh recomputes the unread snapshot and propagates the total to the
// application badge where one exists. A record carrying an eventId or
// navigating to EventDetails counts as an event; one carrying an agendaId or
// navigating to AgendaDetail counts as an agenda. A record satisfying both
// predicates counts toward both categories.
//
// When the unread set could not be fetched ok is false and the badge is left
// untouched; the last known counts stay on screen instead of flickering to
// zero on a transient failure.
func (c *Counter) Refresh(ctx context.Context) (models.UnreadSnapshot, bool) {
	unread, ok := c.Gateway.Unread(ctx)
	if !ok {
		return models.UnreadSnapshot{}, false
	}

	snapshot := models.UnreadSnapshot{Total: len(unread)}
	for _, record := range unread {
		if record.Data.IsEvent() {
			snapshot.EventCount++
		}
		if record.Data.IsAgenda() {
			snapshot.AgendaCount++
		}
	}

	c.propagateBadge(ctx, snapshot.Total)
	return snapshot, true
}

func (c *Counter) propagateBadge(ctx context.Context, total int) {
	if c.Badge == nil || !c.Badge.SupportsBadge() {
		return
	}
	if err := c.Badge.SetBadge(ctx, total); err != nil {
		zap.S().Warnw("failed to set application badge", "error", err, "count", total)
	}
}
