package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/cms"
	"github.com/net-studio/intranet-sub001/models"
)

// TokenRegistry reconciles a device push token against the collaborator
// record behind the local identity binding. At most one token row exists per
// raw token value: a known token is updated in place, an unknown one is
// created.
type TokenRegistry struct {
	Identity *Identity
	Tokens   cms.TokenAPI
}

// NewTokenRegistry initializes a token registry with the provided identity
// resolver and token API.
func NewTokenRegistry(identity *Identity, tokens cms.TokenAPI) *TokenRegistry {
	return &TokenRegistry{Identity: identity, Tokens: tokens}
}

// Register creates or updates the push token row for the bound collaborator.
// It returns false on any failure without retrying; the platform layer
// re-invokes on the next app-foreground registration cycle, which is
// self-healing.
func (r *TokenRegistry) Register(ctx context.Context, token string, kind models.DeviceKind) bool {
	if token == "" {
		zap.S().Warnw("skipping push token registration, empty token", "device", kind)
		return false
	}

	collaborator, err := r.Identity.Resolve(ctx)
	if err != nil {
		zap.S().Errorw("failed to resolve collaborator for token registration", "error", err)
		return false
	}

	existing, err := r.Tokens.FindByToken(ctx, token)
	if err != nil {
		zap.S().Errorw("failed to look up push token", "error", err)
		return false
	}

	now := time.Now()
	if existing != nil {
		// Reassign ownership: the device may now be used by a different
		// logged-in collaborator.
		existing.UserID = collaborator.ID
		existing.LastUsed = now
		if _, err := r.Tokens.Update(ctx, existing.ID, *existing); err != nil {
			zap.S().Errorw("failed to refresh push token", "error", err, "tokenId", existing.ID)
			return false
		}
		zap.S().Infow("push token refreshed", "device", kind, "user", collaborator.ID)
		return true
	}

	created := models.PushToken{
		Token:    token,
		Device:   kind,
		UserID:   collaborator.ID,
		LastUsed: now,
		Active:   true,
	}
	if _, err := r.Tokens.Create(ctx, created); err != nil {
		zap.S().Errorw("failed to register push token", "error", err, "device", kind)
		return false
	}
	zap.S().Infow("push token registered", "device", kind, "user", collaborator.ID)
	return true
}
