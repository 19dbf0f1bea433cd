package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const bindingKey = "intranet:identity:documentId"

// BindingStore persists the collaborator document identifier that anchors
// every CMS call to a user record. The notification subsystem only reads it;
// the surrounding app writes it at login.
type BindingStore interface {
	DocumentID(ctx context.Context) (string, error)
	SetDocumentID(ctx context.Context, documentID string) error
}

// RedisBindingStore keeps the identity binding in redis so it survives agent
// restarts.
type RedisBindingStore struct {
	client *redis.Client
}

// NewRedisBindingStore connects to redis and verifies the connection before
// returning the store.
func NewRedisBindingStore(addr string) (*RedisBindingStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisBindingStore{client: rdb}, nil
}

// DocumentID returns the bound document identifier, or "" when none is set.
func (s *RedisBindingStore) DocumentID(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, bindingKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisBindingStore) SetDocumentID(ctx context.Context, documentID string) error {
	return s.client.Set(ctx, bindingKey, documentID, 0).Err()
}
