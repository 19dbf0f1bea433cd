package cms

// go generate: mockery --name TokenAPI

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/net-studio/intranet-sub001/models"
)

// TokenAPI contains the methods to use with the fcm-tokens resource
type TokenAPI interface {
	FindByToken(ctx context.Context, token string) (*models.PushToken, error)
	Create(ctx context.Context, token models.PushToken) (*models.PushToken, error)
	Update(ctx context.Context, id int, token models.PushToken) (*models.PushToken, error)
}

type tokenAPI struct {
	client *Client
}

// NewTokenAPI initializes a new instance of the token API with the provided client
func NewTokenAPI(client *Client) TokenAPI {
	return &tokenAPI{
		client: client,
	}
}

// FindByToken returns the token row exact-matching the raw token value, or
// nil when no row exists.
func (a *tokenAPI) FindByToken(ctx context.Context, token string) (*models.PushToken, error) {
	q := url.Values{}
	q.Set("filter", "token:"+token)

	var env tokenList
	if err := a.client.do(ctx, http.MethodGet, "/fcm-tokens", q, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	return &env.Data[0], nil
}

func (a *tokenAPI) Create(ctx context.Context, token models.PushToken) (*models.PushToken, error) {
	body := map[string]interface{}{"data": token}
	var env tokenEnvelope
	if err := a.client.do(ctx, http.MethodPost, "/fcm-tokens", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (a *tokenAPI) Update(ctx context.Context, id int, token models.PushToken) (*models.PushToken, error) {
	body := map[string]interface{}{"data": token}
	var env tokenEnvelope
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/fcm-tokens/%d", id), nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
