package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Client publishes game events to a Redis pub/sub channel. Nothing is stored.
type Client struct {
	client  *redis.Client
	channel string
}

// New - connects to Redis at addr and checks the connection.
func New(ctx context.Context, addr, channel string) (*Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(conn, channel), nil
}

func NewWithClient(client *redis.Client, channel string) *Client {
	return &Client{
		client:  client,
		channel: channel,
	}
}

// Publish - sends the event as JSON to the configured channel.
func (that *Client) Publish(ctx context.Context, event entity.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", that.channel, err)
	}

	return nil
}

func (that *Client) Close() error {
	return that.client.Close()
}
