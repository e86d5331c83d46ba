package world

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRoom   = errors.New("unknown room")
	ErrUnknownPerson = errors.New("unknown person")
)

// World is the fully wired room graph and person roster of one session.
// The world is owned by the game controller; nothing in it is safe for concurrent use.
type World struct {
	Title       string                // Title shown on the start screen
	Hub         string                // Key of the room play starts in
	Rooms       map[string]*Room      // Room key → Room
	Persons     map[string]*Person    // Person key → Person
	Assignments map[string]Assignment // Person key → task created when the player says yes

	roomOrder   []string
	personOrder []string
}

// HubRoom returns the room play starts in.
func (w *World) HubRoom() *Room {
	return w.Rooms[w.Hub]
}

// Room looks a room up by key or display name.
func (w *World) Room(name string) (*Room, bool) {
	key := Key(name)
	if r, ok := w.Rooms[key]; ok {
		return r, true
	}
	for _, k := range w.roomOrder {
		if r := w.Rooms[k]; Key(r.Name) == key {
			return r, true
		}
	}
	return nil, false
}

// Person looks a person up by key or display name.
func (w *World) Person(name string) (*Person, bool) {
	key := Key(name)
	if p, ok := w.Persons[key]; ok {
		return p, true
	}
	for _, k := range w.personOrder {
		if p := w.Persons[k]; Key(p.Name) == key {
			return p, true
		}
	}
	return nil, false
}

// RoomList returns all rooms in declaration order.
func (w *World) RoomList() []*Room {
	rooms := make([]*Room, 0, len(w.roomOrder))
	for _, k := range w.roomOrder {
		rooms = append(rooms, w.Rooms[k])
	}
	return rooms
}

// PersonList returns all persons in declaration order.
func (w *World) PersonList() []*Person {
	persons := make([]*Person, 0, len(w.personOrder))
	for _, k := range w.personOrder {
		persons = append(persons, w.Persons[k])
	}
	return persons
}

// AssignmentFor returns the task-assignment row for p.
func (w *World) AssignmentFor(p *Person) (Assignment, bool) {
	if p == nil {
		return Assignment{}, false
	}
	a, ok := w.Assignments[p.Key]
	return a, ok
}

// RoomOf returns the room p is placed in, or nil.
func (w *World) RoomOf(p *Person) *Room {
	for _, r := range w.RoomList() {
		for _, q := range r.People {
			if q == p {
				return r
			}
		}
	}
	return nil
}

// Build constructs a world from seed data. Connections may be declared on either
// side and are always wired in both directions. The result is validated.
func Build(seed Seed) (*World, error) {
	w := &World{
		Title:       seed.Title,
		Hub:         Key(seed.Hub),
		Rooms:       make(map[string]*Room, len(seed.Rooms)),
		Persons:     make(map[string]*Person, len(seed.Persons)),
		Assignments: make(map[string]Assignment, len(seed.Assignments)),
	}

	var errs []error

	for _, ps := range seed.Persons {
		key := ps.key()
		if _, exists := w.Persons[key]; exists {
			errs = append(errs, fmt.Errorf("duplicate person %q", key))
			continue
		}
		w.Persons[key] = &Person{
			Key:           key,
			Name:          ps.Name,
			Role:          ps.Role,
			Description:   ps.Description,
			Talkativeness: ps.Talkativeness,
		}
		w.personOrder = append(w.personOrder, key)
	}

	for _, rs := range seed.Rooms {
		key := rs.key()
		if _, exists := w.Rooms[key]; exists {
			errs = append(errs, fmt.Errorf("duplicate room %q", key))
			continue
		}
		r := &Room{
			Key:         key,
			Name:        rs.Name,
			Description: rs.Description,
			Items:       rs.Items,
		}
		for _, t := range rs.Tasks {
			r.AddTask(t)
		}
		for _, pk := range rs.Persons {
			p, ok := w.Persons[Key(pk)]
			if !ok {
				errs = append(errs, fmt.Errorf("room %q: %w: %s", key, ErrUnknownPerson, pk))
				continue
			}
			r.People = append(r.People, p)
		}
		w.Rooms[key] = r
		w.roomOrder = append(w.roomOrder, key)
	}

	for _, rs := range seed.Rooms {
		r := w.Rooms[rs.key()]
		for _, ck := range rs.Connections {
			other, ok := w.Rooms[Key(ck)]
			if !ok {
				errs = append(errs, fmt.Errorf("room %q: %w: %s", r.Key, ErrUnknownRoom, ck))
				continue
			}
			r.connect(other)
		}
	}

	for pk, a := range seed.Assignments {
		a.Person = Key(pk)
		a.Room = Key(a.Room)
		w.Assignments[a.Person] = a
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// MustBuild is like Build but panics on error. It is meant for seed data that
// ships with the binary.
func MustBuild(seed Seed) *World {
	w, err := Build(seed)
	if err != nil {
		panic(fmt.Sprintf("world: invalid seed %q: %v", seed.Title, err))
	}
	return w
}
