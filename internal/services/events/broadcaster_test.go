package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jwebster45206/teletext/pkg/game"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	rdb, err := NewClient(context.Background(), "redis://"+mr.Addr(), testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis client: %v", err)
	}

	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return rdb, mr
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(context.Background(), "not a url", testLogger())
	assert.ErrorContains(t, err, "failed to parse redis URL")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewClient(context.Background(), "redis://"+addr, testLogger())
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestNewEvent(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name string
		n    game.Notification
		data map[string]any
	}{
		{"room", game.Notification{Type: game.NotificationRoomEntered, Room: "Post"}, map[string]any{"room": "Post"}},
		{"person", game.Notification{Type: game.NotificationPersonFocused, Person: "Flo"}, map[string]any{"person": "Flo"}},
		{"track", game.Notification{Type: game.NotificationMusicTrack, Track: game.TrackGame}, map[string]any{"track": "game"}},
		{"volume", game.Notification{Type: game.NotificationVolumeChanged, Channel: game.ChannelSFX, Level: 3}, map[string]any{"channel": "sfx", "level": 3}},
		{"quit", game.Notification{Type: game.NotificationQuit}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvent(id, tt.n)
			assert.Equal(t, tt.n.Type, e.Type)
			assert.Equal(t, id.String(), e.GameID)
			assert.Equal(t, tt.data, e.Data)
		})
	}
}

func TestBroadcaster_Notify(t *testing.T) {
	rdb, _ := setupTestRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	sub := rdb.Subscribe(ctx, Channel(id))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	b := NewBroadcaster(rdb, testLogger())
	require.NoError(t, b.Notify(ctx, id, game.Notification{Type: game.NotificationRoomEntered, Room: "Technik"}))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "teletext-events:"+id.String(), msg.Channel)
		var e Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &e))
		assert.Equal(t, game.NotificationRoomEntered, e.Type)
		assert.Equal(t, id.String(), e.GameID)
		assert.Equal(t, "Technik", e.Data["room"])
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}

func TestBroadcaster_NotifyClosedClient(t *testing.T) {
	rdb, _ := setupTestRedis(t)
	b := NewBroadcaster(rdb, testLogger())
	require.NoError(t, rdb.Close())

	err := b.Notify(context.Background(), uuid.New(), game.Notification{Type: game.NotificationQuit})
	assert.ErrorContains(t, err, "failed to publish event")
}

func TestSubscribe(t *testing.T) {
	rdb, _ := setupTestRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan Event, 16)
	done := make(chan error, 1)
	go func() {
		done <- Subscribe(ctx, rdb, testLogger(), func(e Event) {
			select {
			case got <- e:
			default:
			}
		})
	}()

	id := uuid.New()
	b := NewBroadcaster(rdb, testLogger())
	n := game.Notification{Type: game.NotificationMusicTrack, Track: game.TrackMenu}

	// Publish until the pattern subscription is live.
	var event Event
	require.Eventually(t, func() bool {
		if err := b.Notify(ctx, id, n); err != nil {
			return false
		}
		select {
		case event = <-got:
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, game.NotificationMusicTrack, event.Type)
	assert.Equal(t, id.String(), event.GameID)
	assert.Equal(t, "menu", event.Data["track"])

	// Malformed payloads are skipped.
	require.NoError(t, rdb.Publish(ctx, Channel(id), "{not json").Err())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Subscribe did not return after cancel")
	}
}
