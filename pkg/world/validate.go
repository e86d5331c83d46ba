package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validate checks the structural invariants of the world and returns every
// violation joined into one error.
func (w *World) Validate() error {
	var errs []error

	hub := w.HubRoom()
	if hub == nil {
		errs = append(errs, fmt.Errorf("hub %q: %w", w.Hub, ErrUnknownRoom))
	}

	for _, r := range w.RoomList() {
		for _, c := range r.Connections {
			if !c.IsConnected(r) {
				errs = append(errs, fmt.Errorf("edge %q -> %q has no way back", r.Key, c.Key))
			}
		}

		ids := mapset.New[int]()
		for _, t := range r.Tasks {
			if ids.Has(t.ID) {
				errs = append(errs, fmt.Errorf("room %q: duplicate task id %d", r.Key, t.ID))
			}
			ids.Put(t.ID)
		}
	}

	if hub != nil {
		reachable := w.Reachable(hub)
		for _, r := range w.RoomList() {
			if !reachable.Has(r.Key) {
				errs = append(errs, fmt.Errorf("room %q is not reachable from %q", r.Key, hub.Key))
			}
		}
	}

	placed := make(map[string]int, len(w.Persons))
	for _, r := range w.RoomList() {
		for _, p := range r.People {
			placed[p.Key]++
		}
	}
	for _, p := range w.PersonList() {
		switch n := placed[p.Key]; {
		case n == 0:
			errs = append(errs, fmt.Errorf("person %q is not placed in any room", p.Key))
		case n > 1:
			errs = append(errs, fmt.Errorf("person %q is placed in %d rooms", p.Key, n))
		}
	}

	for pk, a := range w.Assignments {
		if _, ok := w.Persons[pk]; !ok {
			errs = append(errs, fmt.Errorf("assignment: %w: %s", ErrUnknownPerson, pk))
		}
		if _, ok := w.Rooms[a.Room]; !ok {
			errs = append(errs, fmt.Errorf("assignment for %q: %w: %s", pk, ErrUnknownRoom, a.Room))
		}
	}

	return errors.Join(errs...)
}

// Reachable returns the keys of all rooms reachable from start, start included.
func (w *World) Reachable(start *Room) mapset.Set[string] {
	visited := mapset.New[string]()
	queue := []*Room{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == nil || visited.Has(current.Key) {
			continue
		}
		visited.Put(current.Key)

		for _, n := range current.Connections {
			if !visited.Has(n.Key) {
				queue = append(queue, n)
			}
		}
	}

	return visited
}
