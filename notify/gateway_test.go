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

func TestGatewayListFailsClosedWithoutIdentity(t *testing.T) {
	collaborators := &mocks.CollaboratorAPI{}
	identity := notify.NewIdentity(storage.NewMemoryBindingStore(""), collaborators)
	gateway := notify.NewGateway(identity, &mocks.NotificationAPI{})

	records, pagination := gateway.List(context.Background(), 1, 25, true)

	assert.Empty(t, records)
	assert.Zero(t, pagination.Total)
	collaborators.AssertNotCalled(t, "FindByDocumentID", mock.Anything, mock.Anything)
}

func TestGatewayListReturnsPage(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	api := &mocks.NotificationAPI{}
	api.On("List", mock.Anything, 12, 1, 25, true).Return(
		[]models.Notification{{ID: 1, Title: "hi", Read: false}},
		models.Pagination{Page: 1, PageSize: 25, PageCount: 1, Total: 1},
		nil,
	)

	gateway := notify.NewGateway(identity, api)
	records, pagination := gateway.List(context.Background(), 1, 25, true)

	assert.Len(t, records, 1)
	assert.Equal(t, 1, pagination.Total)
}

func TestGatewayUnreadWalksAllPages(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	first := make([]models.Notification, 100)
	for i := range first {
		first[i] = models.Notification{ID: i + 1}
	}
	api := &mocks.NotificationAPI{}
	api.On("List", mock.Anything, 12, 1, 100, true).Return(first, models.Pagination{Page: 1, PageCount: 2, Total: 130}, nil)
	api.On("List", mock.Anything, 12, 2, 100, true).Return(
		[]models.Notification{{ID: 101}, {ID: 102}},
		models.Pagination{Page: 2, PageCount: 2, Total: 130},
		nil,
	)

	gateway := notify.NewGateway(identity, api)
	unread, ok := gateway.Unread(context.Background())

	assert.True(t, ok)
	assert.Len(t, unread, 102)
	count, ok := gateway.CountUnread(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 102, count)
}

func TestGatewayMarkReadRoundTrip(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	api := &mocks.NotificationAPI{}
	api.On("MarkRead", mock.Anything, 7).Return(nil)
	// after the mark, the unread fetch no longer includes the record
	api.On("List", mock.Anything, 12, 1, 100, true).Return(
		[]models.Notification{},
		models.Pagination{Page: 1, PageCount: 1, Total: 0},
		nil,
	)

	gateway := notify.NewGateway(identity, api)
	kicked := 0
	gateway.OnMutate = func() { kicked++ }

	assert.True(t, gateway.MarkRead(context.Background(), 7))
	count, ok := gateway.CountUnread(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, kicked)
}

func TestGatewayMarkAllReadFailureReturnsFalse(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	api := &mocks.NotificationAPI{}
	api.On("MarkAllRead", mock.Anything, 12).Return(errors.New("connection reset"))

	gateway := notify.NewGateway(identity, api)
	kicked := 0
	gateway.OnMutate = func() { kicked++ }

	assert.False(t, gateway.MarkAllRead(context.Background()))
	// no local state changed, no refresh triggered
	assert.Equal(t, 0, kicked)
}

func TestGatewayMarkAllReadScopedToCollaborator(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	api := &mocks.NotificationAPI{}
	api.On("MarkAllRead", mock.Anything, 12).Return(nil)

	gateway := notify.NewGateway(identity, api)
	assert.True(t, gateway.MarkAllRead(context.Background()))
	api.AssertCalled(t, "MarkAllRead", mock.Anything, 12)
}

func TestGatewayDelete(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	api := &mocks.NotificationAPI{}
	api.On("Delete", mock.Anything, 7).Return(nil)

	gateway := notify.NewGateway(identity, api)
	assert.True(t, gateway.Delete(context.Background(), 7))
}

func TestGatewayUnreadFailsClosedOnNetworkError(t *testing.T) {
	identity := newIdentity(t, "abc123", &models.Collaborator{ID: 12}, nil)

	api := &mocks.NotificationAPI{}
	api.On("List", mock.Anything, 12, 1, 100, true).Return(nil, models.Pagination{}, errors.New("timeout"))

	gateway := notify.NewGateway(identity, api)
	unread, ok := gateway.Unread(context.Background())
	assert.False(t, ok)
	assert.Empty(t, unread)
}
