package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	expoPushURL    = "https://exp.host/--/api/v2/push/send"
	expoBatchLimit = 100
)

// ExpoPushMessage represents a single push notification message for the Expo push API
type ExpoPushMessage struct {
	To        string                 `json:"to"`
	Title     string                 `json:"title,omitempty"`
	Body      string                 `json:"body,omitempty"`
	Sound     string                 `json:"sound,omitempty"`
	Badge     *int                   `json:"badge,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Priority  string                 `json:"priority,omitempty"`
	ChannelID string                 `json:"channelId,omitempty"`
}

// ExpoSender delivers messages through the Expo push API. Messages are
// batched in groups of 100 per the Expo API limit.
type ExpoSender struct {
	URL  string
	HTTP *http.Client
}

// NewExpoSender returns a sender against the public Expo push endpoint.
func NewExpoSender() *ExpoSender {
	return &ExpoSender{
		URL:  expoPushURL,
		HTTP: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send pushes the messages, continuing with remaining batches when one fails.
func (s *ExpoSender) Send(ctx context.Context, messages []ExpoPushMessage) error {
	if len(messages) == 0 {
		return nil
	}

	var firstErr error
	for i := 0; i < len(messages); i += expoBatchLimit {
		end := i + expoBatchLimit
		if end > len(messages) {
			end = len(messages)
		}
		if err := s.sendBatch(ctx, messages[i:end]); err != nil {
			zap.S().Errorw("failed to send expo push batch", "error", err, "from", i, "to", end-1)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *ExpoSender) sendBatch(ctx context.Context, messages []ExpoPushMessage) error {
	jsonData, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal push messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expo push API returned status %d", resp.StatusCode)
	}

	zap.S().Infow("sent push notifications via expo", "count", len(messages))
	return nil
}
