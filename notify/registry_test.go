package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/net-studio/intranet-sub001/cms/mocks"
	"github.com/net-studio/intranet-sub001/models"
	"github.com/net-studio/intranet-sub001/notify"
	"github.com/net-studio/intranet-sub001/storage"
)

func newIdentity(t *testing.T, documentID string, collaborator *models.Collaborator, lookupErr error) *notify.Identity {
	t.Helper()
	collaborators := &mocks.CollaboratorAPI{}
	collaborators.On("FindByDocumentID", mock.Anything, documentID).Return(collaborator, lookupErr)
	return notify.NewIdentity(storage.NewMemoryBindingStore(documentID), collaborators)
}

func TestRegisterCreatesRowForUnknownToken(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12, DocumentID: "abc123"}, nil)

	tokens := &mocks.TokenAPI{}
	tokens.On("FindByToken", mock.Anything, "tok-1").Return(nil, nil)
	tokens.On("Create", mock.Anything, mock.MatchedBy(func(pt models.PushToken) bool {
		return pt.Token == "tok-1" && pt.UserID == 12 && pt.Active && !pt.LastUsed.IsZero()
	})).Return(&models.PushToken{ID: 9, Token: "tok-1"}, nil)

	registry := notify.NewTokenRegistry(identity, tokens)
	ok := registry.Register(context.Background(), "tok-1", models.DeviceIOS)

	assert.True(t, ok)
	tokens.AssertNumberOfCalls(t, "Create", 1)
	tokens.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterUpdatesExistingRowInPlace(t *testing.T) {
	identity := newIdentity(t, "xyz999", &models.Collaborator{ID: 44, DocumentID: "xyz999"}, nil)

	existing := &models.PushToken{ID: 9, Token: "tok-1", Device: models.DeviceIOS, UserID: 12, Active: true}
	tokens := &mocks.TokenAPI{}
	tokens.On("FindByToken", mock.Anything, "tok-1").Return(existing, nil)
	tokens.On("Update", mock.Anything, 9, mock.MatchedBy(func(pt models.PushToken) bool {
		// ownership reassigned to the new collaborator, same row
		return pt.UserID == 44 && pt.Token == "tok-1"
	})).Return(existing, nil)

	registry := notify.NewTokenRegistry(identity, tokens)
	ok := registry.Register(context.Background(), "tok-1", models.DeviceIOS)

	assert.True(t, ok)
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterIsIdempotentPerToken(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12, DocumentID: "abc123"}, nil)

	tokens := &mocks.TokenAPI{}
	tokens.On("FindByToken", mock.Anything, "tok-1").Return(nil, nil).Once()
	created := &models.PushToken{ID: 9, Token: "tok-1", UserID: 12, Active: true}
	tokens.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()
	tokens.On("FindByToken", mock.Anything, "tok-1").Return(created, nil)
	tokens.On("Update", mock.Anything, 9, mock.Anything).Return(created, nil)

	registry := notify.NewTokenRegistry(identity, tokens)
	assert.True(t, registry.Register(context.Background(), "tok-1", models.DeviceWeb))
	assert.True(t, registry.Register(context.Background(), "tok-1", models.DeviceWeb))

	// second call updated the existing row rather than creating a duplicate
	tokens.AssertNumberOfCalls(t, "Create", 1)
	tokens.AssertNumberOfCalls(t, "Update", 1)
}

func TestRegisterFailsClosedOnIdentityFailure(t *testing.T) {
	identity := newIdentity(t, "abc123", nil, errors.New("ambiguous collaborator lookup"))

	tokens := &mocks.TokenAPI{}
	registry := notify.NewTokenRegistry(identity, tokens)

	assert.False(t, registry.Register(context.Background(), "tok-1", models.DeviceIOS))
	tokens.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
}

func TestRegisterFailsClosedOnNetworkError(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	tokens := &mocks.TokenAPI{}
	tokens.On("FindByToken", mock.Anything, "tok-1").Return(nil, errors.New("connection refused"))

	registry := notify.NewTokenRegistry(identity, tokens)
	assert.False(t, registry.Register(context.Background(), "tok-1", models.DeviceAndroid))
}

func TestRegisterRejectsEmptyToken(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)
	registry := notify.NewTokenRegistry(identity, &mocks.TokenAPI{})

	assert.False(t, registry.Register(context.Background(), "", models.DeviceWeb))
}
