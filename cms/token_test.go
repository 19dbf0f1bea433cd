package cms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/net-studio/intranet-sub001/cms"
	"github.com/net-studio/intranet-sub001/models"
)

func TestTokenFindByToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fcm-tokens", r.URL.Path)
		assert.Equal(t, "token:tok-1", r.URL.Query().Get("filter"))

		w.Write([]byte(`{"data":[{"id":3,"token":"tok-1","device":"web","user":12,"active":true}]}`))
	}))
	defer server.Close()

	api := cms.NewTokenAPI(cms.NewClientWithBase(server.URL, ""))
	token, err := api.FindByToken(context.Background(), "tok-1")

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, 3, token.ID)
	assert.Equal(t, models.DeviceWeb, token.Device)
}

func TestTokenFindByTokenAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	api := cms.NewTokenAPI(cms.NewClientWithBase(server.URL, ""))
	token, err := api.FindByToken(context.Background(), "unknown")

	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fcm-tokens", r.URL.Path)

		var body struct {
			Data models.PushToken `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-1", body.Data.Token)
		assert.True(t, body.Data.Active)

		w.Write([]byte(`{"data":{"id":9,"token":"tok-1","device":"ios","user":12,"active":true}}`))
	}))
	defer server.Close()

	api := cms.NewTokenAPI(cms.NewClientWithBase(server.URL, ""))
	created, err := api.Create(context.Background(), models.PushToken{
		Token:  "tok-1",
		Device: models.DeviceIOS,
		UserID: 12,
		Active: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
}

func TestTokenUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/fcm-tokens/9", r.URL.Path)

		w.Write([]byte(`{"data":{"id":9,"token":"tok-1","device":"ios","user":44,"active":true}}`))
	}))
	defer server.Close()

	api := cms.NewTokenAPI(cms.NewClientWithBase(server.URL, ""))
	updated, err := api.Update(context.Background(), 9, models.PushToken{Token: "tok-1", UserID: 44})

	require.NoError(t, err)
	assert.Equal(t, 44, updated.UserID)
}
