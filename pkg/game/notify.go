package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// NotificationType names a point where the core tells the asset/audio layer
// that something happened.
type NotificationType string

const (
	NotificationRoomEntered   NotificationType = "room.entered"
	NotificationMusicTrack    NotificationType = "music.track"
	NotificationVolumeChanged NotificationType = "volume.changed"
	NotificationPersonFocused NotificationType = "person.focused"
	NotificationQuit          NotificationType = "game.quit"
)

// Music tracks selected on scene entry.
const (
	TrackMenu = "menu"
	TrackGame = "game"
)

// Notification is a fire-and-forget message to the presentation side.
// Only the fields relevant to Type are set.
type Notification struct {
	Type    NotificationType
	Room    string
	Person  string
	Track   string
	Channel Channel
	Level   int
}

// Notifier receives notifications from the core. Failures are logged by the
// game and never change game state.
type Notifier interface {
	Notify(ctx context.Context, gameID uuid.UUID, n Notification) error
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, uuid.UUID, Notification) error { return nil }

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(ctx context.Context, gameID uuid.UUID, n Notification) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"game_id", gameID.String(), "type", string(n.Type)}
	switch n.Type {
	case NotificationRoomEntered:
		attrs = append(attrs, "room", n.Room)
	case NotificationPersonFocused:
		attrs = append(attrs, "person", n.Person)
	case NotificationMusicTrack:
		attrs = append(attrs, "track", n.Track)
	case NotificationVolumeChanged:
		attrs = append(attrs, "channel", string(n.Channel), "level", n.Level)
	}
	logger.InfoContext(ctx, "Notification", attrs...)
	return nil
}

// MultiNotifier fans a notification out to several notifiers. Every notifier
// is called; errors are joined.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, gameID uuid.UUID, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, gameID, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
