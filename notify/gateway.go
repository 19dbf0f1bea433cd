package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/cms"
	"github.com/net-studio/intranet-sub001/models"
)

const unreadPageSize = 100

// Gateway exposes the notification operations for the bound collaborator,
// independent of the transport a notification arrived on. Every operation
// resolves the identity first and fails closed: callers get an empty result
// or false instead of an error, so UI layers never handle "not logged in
// yet" races.
type Gateway struct {
	Identity *Identity
	API      cms.NotificationAPI

	// OnMutate, when set, runs after every successful mutating call so the
	// refresh scheduler can recompute counts immediately.
	OnMutate func()
}

// NewGateway initializes a notification gateway with the provided identity
// resolver and notification API.
func NewGateway(identity *Identity, api cms.NotificationAPI) *Gateway {
	return &Gateway{Identity: identity, API: api}
}

// List returns one page of the collaborator's notifications, newest first.
func (g *Gateway) List(ctx context.Context, page, pageSize int, unreadOnly bool) ([]models.Notification, models.Pagination) {
	collaborator, err := g.Identity.Resolve(ctx)
	if err != nil {
		zap.S().Warnw("listing notifications without a resolved identity", "error", err)
		return []models.Notification{}, models.Pagination{}
	}

	records, pagination, err := g.API.List(ctx, collaborator.ID, page, pageSize, unreadOnly)
	if err != nil {
		zap.S().Errorw("failed to list notifications", "error", err, "user", collaborator.ID)
		return []models.Notification{}, models.Pagination{}
	}
	if records == nil {
		records = []models.Notification{}
	}
	return records, pagination
}

// Unread walks every page of the unread set and returns it whole. The CMS has
// no aggregate count endpoint, so counting is fetching. ok is false when the
// set could not be fetched; callers must not treat that as zero unread, since
// an empty set and a dead network are different things.
func (g *Gateway) Unread(ctx context.Context) (_ []models.Notification, ok bool) {
	collaborator, err := g.Identity.Resolve(ctx)
	if err != nil {
		zap.S().Warnw("counting notifications without a resolved identity", "error", err)
		return []models.Notification{}, false
	}

	all := []models.Notification{}
	for page := 1; ; page++ {
		records, pagination, err := g.API.List(ctx, collaborator.ID, page, unreadPageSize, true)
		if err != nil {
			zap.S().Errorw("failed to fetch unread notifications", "error", err, "page", page)
			return []models.Notification{}, false
		}
		all = append(all, records...)
		if len(records) == 0 || page >= pagination.PageCount {
			break
		}
	}
	return all, true
}

// CountUnread returns the size of the unread set; ok mirrors Unread.
func (g *Gateway) CountUnread(ctx context.Context) (int, bool) {
	unread, ok := g.Unread(ctx)
	return len(unread), ok
}

// MarkRead marks a single notification as read. The read flag is monotonic;
// there is no unread transition.
func (g *Gateway) MarkRead(ctx context.Context, id int) bool {
	if _, err := g.Identity.Resolve(ctx); err != nil {
		zap.S().Warnw("mark-read skipped, identity not resolved", "error", err)
		return false
	}
	if err := g.API.MarkRead(ctx, id); err != nil {
		zap.S().Errorw("failed to mark notification read", "error", err, "id", id)
		return false
	}
	g.mutated()
	return true
}

// MarkAllRead marks every unread notification for the collaborator as read.
func (g *Gateway) MarkAllRead(ctx context.Context) bool {
	collaborator, err := g.Identity.Resolve(ctx)
	if err != nil {
		zap.S().Warnw("mark-all-read skipped, identity not resolved", "error", err)
		return false
	}
	if err := g.API.MarkAllRead(ctx, collaborator.ID); err != nil {
		zap.S().Errorw("failed to mark all notifications read", "error", err, "user", collaborator.ID)
		return false
	}
	g.mutated()
	return true
}

// Delete removes a notification record.
func (g *Gateway) Delete(ctx context.Context, id int) bool {
	if _, err := g.Identity.Resolve(ctx); err != nil {
		zap.S().Warnw("delete skipped, identity not resolved", "error", err)
		return false
	}
	if err := g.API.Delete(ctx, id); err != nil {
		zap.S().Errorw("failed to delete notification", "error", err, "id", id)
		return false
	}
	g.mutated()
	return true
}

func (g *Gateway) mutated() {
	if g.OnMutate != nil {
		g.OnMutate()
	}
}
