package state

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/teletext/pkg/world"
)

var (
	ErrNotConnected  = errors.New("room is not connected to the current room")
	ErrTaskNotFound  = errors.New("task not found")
	ErrPersonNotHere = errors.New("person is not in this room")
	ErrNobodyHere    = errors.New("nobody is in this room")
)

// GameState tracks the player's position in the world of one session.
// All mutation happens on the caller's goroutine; GameState is not safe for concurrent use.
type GameState struct {
	ID    uuid.UUID    // Unique ID per session
	World *world.World // Rooms and persons of this session

	current *world.Room
	logger  *slog.Logger
}

// PersonStatus is one line of the relationship overview.
type PersonStatus struct {
	Name         string `json:"name"`
	Room         string `json:"room,omitempty"`
	Relationship int    `json:"relationship"`
}

// NewGameState starts a session in the hub room of w.
func NewGameState(w *world.World) *GameState {
	return &GameState{
		ID:      uuid.New(),
		World:   w,
		current: w.HubRoom(),
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for state transitions.
// Returns the GameState for method chaining
func (gs *GameState) WithLogger(logger *slog.Logger) *GameState {
	if logger != nil {
		gs.logger = logger
	}
	return gs
}

// CurrentRoom returns the room the player is in.
func (gs *GameState) CurrentRoom() *world.Room {
	return gs.current
}

// MoveTo moves the player to the adjacent room named target. Only the current
// room's connections are considered; the global room set is not.
// On failure the current room is unchanged.
func (gs *GameState) MoveTo(target string) (*world.Room, error) {
	next, ok := gs.current.Connection(target)
	if !ok {
		gs.logger.Debug("Move rejected", "from", gs.current.Key, "target", target)
		return nil, fmt.Errorf("%w: %q from %q", ErrNotConnected, target, gs.current.Name)
	}

	gs.logger.Debug("Moved", "from", gs.current.Key, "to", next.Key, "game_id", gs.ID.String())
	gs.current = next
	return next, nil
}

// ExecuteTask removes the first task with id from room and returns it.
// Performing the task's effect is left to the caller.
func (gs *GameState) ExecuteTask(room *world.Room, id int) (world.Task, error) {
	if room == nil {
		return world.Task{}, fmt.Errorf("%w: %d (no room)", ErrTaskNotFound, id)
	}
	t, ok := room.RemoveTask(id)
	if !ok {
		return world.Task{}, fmt.Errorf("%w: %d in %q", ErrTaskNotFound, id, room.Name)
	}

	gs.logger.Debug("Task executed", "room", room.Key, "task_id", t.ID, "task", t.Name)
	return t, nil
}

// ExecuteCurrentTask is ExecuteTask on the current room.
func (gs *GameState) ExecuteCurrentTask(id int) (world.Task, error) {
	return gs.ExecuteTask(gs.current, id)
}

// FindPerson returns the person named name if they are in the current room.
func (gs *GameState) FindPerson(name string) (*world.Person, error) {
	if len(gs.current.People) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNobodyHere, gs.current.Name)
	}
	p, ok := gs.current.Person(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrPersonNotHere, name, gs.current.Name)
	}
	return p, nil
}

// Snapshot returns a read-only copy of the current room.
func (gs *GameState) Snapshot() world.RoomSnapshot {
	return gs.current.Snapshot()
}

// Relationships lists every person's relationship score in declaration order.
func (gs *GameState) Relationships() []PersonStatus {
	persons := gs.World.PersonList()
	statuses := make([]PersonStatus, 0, len(persons))
	for _, p := range persons {
		s := PersonStatus{Name: p.Name, Relationship: p.Relationship}
		if r := gs.World.RoomOf(p); r != nil {
			s.Room = r.Name
		}
		statuses = append(statuses, s)
	}
	return statuses
}
