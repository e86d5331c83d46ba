package world

import "fmt"

// Task is a completable unit of content scoped to one room.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
}

func (t Task) String() string {
	return fmt.Sprintf("[%d] %s - %s", t.ID, t.Name, t.Description)
}

// Person is a non-player character with a relationship score toward the player.
type Person struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`                  // e.g. "Teamleiter"
	Description   string   `json:"description,omitempty"` // short description
	Talkativeness int      `json:"talkativeness"`         // static, compared against the smalltalk threshold
	Relationship  int      `json:"relationship"`          // starts at 0, only ever increased
	History       []string `json:"history,omitempty"`     // past dialogue choices
}

// PersonSnapshot is a read-only copy of a person.
type PersonSnapshot struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Description  string `json:"description,omitempty"`
	Relationship int    `json:"relationship"`
}

// Snapshot copies the person's presentation fields.
func (p *Person) Snapshot() PersonSnapshot {
	return PersonSnapshot{
		Key:          p.Key,
		Name:         p.Name,
		Role:         p.Role,
		Description:  p.Description,
		Relationship: p.Relationship,
	}
}

// Label renders the person as "Name (Role)".
func (p *Person) Label() string {
	if p.Role == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Role)
}

// RaiseRelationship adds points to the relationship score. Non-positive values are ignored.
func (p *Person) RaiseRelationship(points int) int {
	if points > 0 {
		p.Relationship += points
	}
	return p.Relationship
}

// Assignment is one row of the task-assignment table: when the player agrees to
// help Person, Task is created in Room.
type Assignment struct {
	Person string `json:"person" yaml:"-"`
	Room   string `json:"room" yaml:"room"`
	Task   Task   `json:"task" yaml:"task"`
}
