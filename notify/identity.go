package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/net-studio/intranet-sub001/cms"
	"github.com/net-studio/intranet-sub001/models"
	"github.com/net-studio/intranet-sub001/storage"
)

// Identity resolves the locally bound collaborator once per process start and
// caches the result for every subsequent registry and gateway call.
type Identity struct {
	Store storage.BindingStore
	API   cms.CollaboratorAPI

	mu     sync.Mutex
	cached *models.Collaborator
}

// NewIdentity returns an identity resolver over the given binding store and
// collaborator API.
func NewIdentity(store storage.BindingStore, api cms.CollaboratorAPI) *Identity {
	return &Identity{Store: store, API: api}
}

// Resolve returns the collaborator record the local binding points at. The
// first successful resolution is cached; callers treat any error as "not
// logged in yet" and fall back to their safe default.
func (i *Identity) Resolve(ctx context.Context) (*models.Collaborator, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.cached != nil {
		return i.cached, nil
	}

	documentID, err := i.Store.DocumentID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity binding: %w", err)
	}
	if documentID == "" {
		return nil, errors.New("no identity binding present")
	}

	collaborator, err := i.API.FindByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	i.cached = collaborator
	return collaborator, nil
}

// Invalidate drops the cached collaborator so the next Resolve re-reads the
// binding, e.g. after the surrounding app switches accounts.
func (i *Identity) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cached = nil
}
