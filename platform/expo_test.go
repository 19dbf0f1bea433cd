package platform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/net-studio/intranet-sub001/platform"
)

func newExpoServer(t *testing.T, status int, batches *[][]platform.ExpoPushMessage) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var batch []platform.ExpoPushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		*batches = append(*batches, batch)

		w.WriteHeader(status)
		w.Write([]byte(`{"data":[]}`))
	}))
}

func TestExpoSenderSendsBatch(t *testing.T) {
	var batches [][]platform.ExpoPushMessage
	server := newExpoServer(t, http.StatusOK, &batches)
	defer server.Close()

	sender := platform.NewExpoSender()
	sender.URL = server.URL

	err := sender.Send(context.Background(), []platform.ExpoPushMessage{
		{To: "ExponentPushToken[a]", Title: "hi", Sound: "default"},
		{To: "ExponentPushToken[b]", Title: "hi", Sound: "default"},
	})

	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 2)
}

func TestExpoSenderSplitsOversizeBatches(t *testing.T) {
	var batches [][]platform.ExpoPushMessage
	server := newExpoServer(t, http.StatusOK, &batches)
	defer server.Close()

	sender := platform.NewExpoSender()
	sender.URL = server.URL

	messages := make([]platform.ExpoPushMessage, 130)
	for i := range messages {
		messages[i] = platform.ExpoPushMessage{To: "ExponentPushToken[x]"}
	}

	require.NoError(t, sender.Send(context.Background(), messages))
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 30)
}

func TestExpoSenderReportsAPIFailure(t *testing.T) {
	var batches [][]platform.ExpoPushMessage
	server := newExpoServer(t, http.StatusBadGateway, &batches)
	defer server.Close()

	sender := platform.NewExpoSender()
	sender.URL = server.URL

	err := sender.Send(context.Background(), []platform.ExpoPushMessage{{To: "ExponentPushToken[a]"}})
	assert.ErrorContains(t, err, "status 502")
}

func TestExpoSenderNoMessagesIsNoop(t *testing.T) {
	sender := platform.NewExpoSender()
	sender.URL = "http://127.0.0.1:1" // unreachable, must not be hit
	assert.NoError(t, sender.Send(context.Background(), nil))
}
