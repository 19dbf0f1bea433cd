package platform

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// WebPushSender sends one message through FCM. *messaging.Client satisfies
// it; tests substitute their own.
type WebPushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NewMessagingClient initializes the Firebase application and returns its
// messaging client for webpush delivery.
func NewMessagingClient(ctx context.Context, credentialsPath string) (*messaging.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path not provided")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase messaging client: %w", err)
	}
	return client, nil
}
