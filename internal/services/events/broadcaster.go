package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/teletext/pkg/game"
	"github.com/redis/go-redis/v9"
)

// ChannelPrefix is prepended to the session ID to form a pub/sub channel.
const ChannelPrefix = "teletext-events:"

// Event is the JSON payload published for every game notification.
type Event struct {
	Type   game.NotificationType `json:"type"`
	GameID string                `json:"game_id"`
	Data   map[string]any        `json:"data,omitempty"`
}

// Broadcaster publishes game notifications to Redis Pub/Sub so that an
// out-of-process asset or audio player can follow a session.
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

var _ game.Notifier = (*Broadcaster)(nil)

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Channel returns the pub/sub channel of a session.
func Channel(gameID uuid.UUID) string {
	return ChannelPrefix + gameID.String()
}

// NewEvent converts a notification into its wire form.
func NewEvent(gameID uuid.UUID, n game.Notification) Event {
	event := Event{
		Type:   n.Type,
		GameID: gameID.String(),
	}
	switch n.Type {
	case game.NotificationRoomEntered:
		event.Data = map[string]any{"room": n.Room}
	case game.NotificationPersonFocused:
		event.Data = map[string]any{"person": n.Person}
	case game.NotificationMusicTrack:
		event.Data = map[string]any{"track": n.Track}
	case game.NotificationVolumeChanged:
		event.Data = map[string]any{"channel": string(n.Channel), "level": n.Level}
	}
	return event
}

// Notify implements game.Notifier.
func (b *Broadcaster) Notify(ctx context.Context, gameID uuid.UUID, n game.Notification) error {
	return b.publishToGame(ctx, gameID, NewEvent(gameID, n))
}

// publishToGame publishes an event to the game-specific channel
func (b *Broadcaster) publishToGame(ctx context.Context, gameID uuid.UUID, event Event) error {
	channel := Channel(gameID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event_type", event.Type)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}

// Subscribe follows every session's events until ctx is done. Each decoded
// event is passed to handle; undecodable payloads are logged and skipped.
func Subscribe(ctx context.Context, redisClient *redis.Client, logger *slog.Logger, handle func(Event)) error {
	sub := redisClient.PSubscribe(ctx, ChannelPrefix+"*")
	defer sub.Close()

	// Wait for the subscription to be confirmed
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Warn("Skipping malformed event", "channel", msg.Channel, "error", err)
				continue
			}
			handle(event)
		}
	}
}
