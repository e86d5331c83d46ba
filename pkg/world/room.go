package world

// Room is a node in the navigable location graph.
type Room struct {
	Key         string    `json:"key"`                   // Also the key in World.Rooms
	Name        string    `json:"name"`                  // Display name, matched case-insensitively
	Description string    `json:"description,omitempty"` // Shown on entering
	Tasks       []Task    `json:"tasks,omitempty"`       // Active tasks, in the order they were added
	People      []*Person `json:"-"`                     // Persons present in this room
	Items       []string  `json:"items,omitempty"`       // Items that can be found in this room
	Connections []*Room   `json:"-"`                     // Adjacent rooms, symmetric after Build
}

// RoomSnapshot is a read-only copy of a room for the presentation layer.
type RoomSnapshot struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Tasks       []Task           `json:"tasks,omitempty"`
	People      []PersonSnapshot `json:"people,omitempty"`
	Connections []string         `json:"connections,omitempty"` // Names of adjacent rooms
}

// IsConnected reports whether other is directly adjacent to r.
func (r *Room) IsConnected(other *Room) bool {
	for _, c := range r.Connections {
		if c == other {
			return true
		}
	}
	return false
}

// Connection returns the adjacent room whose name matches name, if any.
func (r *Room) Connection(name string) (*Room, bool) {
	key := Key(name)
	for _, c := range r.Connections {
		if Key(c.Name) == key {
			return c, true
		}
	}
	return nil, false
}

// connect adds a symmetric edge between r and other. Existing edges are kept once.
func (r *Room) connect(other *Room) {
	if r == other {
		return
	}
	if !r.IsConnected(other) {
		r.Connections = append(r.Connections, other)
	}
	if !other.IsConnected(r) {
		other.Connections = append(other.Connections, r)
	}
}

// HasTask reports whether an active task with id exists in the room.
func (r *Room) HasTask(id int) bool {
	_, ok := r.taskIndex(id)
	return ok
}

// AddTask appends t to the room's task list.
func (r *Room) AddTask(t Task) {
	r.Tasks = append(r.Tasks, t)
}

// RemoveTask removes the first task with id, in list order, and returns it.
func (r *Room) RemoveTask(id int) (Task, bool) {
	i, ok := r.taskIndex(id)
	if !ok {
		return Task{}, false
	}
	t := r.Tasks[i]
	r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
	return t, true
}

func (r *Room) taskIndex(id int) (int, bool) {
	for i, t := range r.Tasks {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Person returns the person present in the room whose name matches name.
func (r *Room) Person(name string) (*Person, bool) {
	key := Key(name)
	for _, p := range r.People {
		if Key(p.Name) == key || p.Key == key {
			return p, true
		}
	}
	return nil, false
}

// Snapshot copies the room's current contents.
func (r *Room) Snapshot() RoomSnapshot {
	snap := RoomSnapshot{
		Key:         r.Key,
		Name:        r.Name,
		Description: r.Description,
	}
	if len(r.Tasks) > 0 {
		snap.Tasks = make([]Task, len(r.Tasks))
		copy(snap.Tasks, r.Tasks)
	}
	for _, p := range r.People {
		snap.People = append(snap.People, p.Snapshot())
	}
	for _, c := range r.Connections {
		snap.Connections = append(snap.Connections, c.Name)
	}
	return snap
}
