package cms

// go generate: mockery --name NotificationAPI

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/net-studio/intranet-sub001/models"
)

// NotificationAPI contains the methods to use with the notifications resource
type NotificationAPI interface {
	List(ctx context.Context, userID, page, pageSize int, unreadOnly bool) ([]models.Notification, models.Pagination, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context, userID int) error
	Delete(ctx context.Context, id int) error
}

type notificationAPI struct {
	client *Client
}

// NewNotificationAPI initializes a new instance of the notification API with the provided client
func NewNotificationAPI(client *Client) NotificationAPI {
	return &notificationAPI{
		client: client,
	}
}

// List fetches one page of notifications for a user, newest first.
func (a *notificationAPI) List(ctx context.Context, userID, page, pageSize int, unreadOnly bool) ([]models.Notification, models.Pagination, error) {
	filter := "user:" + strconv.Itoa(userID)
	if unreadOnly {
		filter += ",read:false"
	}

	q := url.Values{}
	q.Set("filter", filter)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("sort", "createdAt:desc")

	var env notificationList
	if err := a.client.do(ctx, http.MethodGet, "/notifications", q, nil, &env); err != nil {
		return nil, models.Pagination{}, err
	}
	return env.Data, env.Meta.Pagination, nil
}

func (a *notificationAPI) MarkRead(ctx context.Context, id int) error {
	body := map[string]interface{}{
		"data": map[string]interface{}{"read": true},
	}
	return a.client.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d", id), nil, body, nil)
}

// MarkAllRead flips every unread notification for the user in one call.
func (a *notificationAPI) MarkAllRead(ctx context.Context, userID int) error {
	body := map[string]interface{}{
		"data": map[string]interface{}{"user": userID},
	}
	return a.client.do(ctx, http.MethodPut, "/notifications/mark-all-read", nil, body, nil)
}

func (a *notificationAPI) Delete(ctx context.Context, id int) error {
	return a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}
