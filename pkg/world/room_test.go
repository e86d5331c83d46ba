package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_RemoveTask_FirstMatch(t *testing.T) {
	r := &Room{Key: "post", Name: "Post"}
	r.AddTask(Task{ID: 1, Name: "first"})
	r.AddTask(Task{ID: 2, Name: "other"})
	r.AddTask(Task{ID: 1, Name: "second"})

	got, ok := r.RemoveTask(1)
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
	require.Len(t, r.Tasks, 2)
	assert.Equal(t, "other", r.Tasks[0].Name)
	assert.Equal(t, "second", r.Tasks[1].Name)

	got, ok = r.RemoveTask(1)
	require.True(t, ok)
	assert.Equal(t, "second", got.Name)

	_, ok = r.RemoveTask(1)
	assert.False(t, ok)
	assert.Len(t, r.Tasks, 1)
}

func TestRoom_Connection(t *testing.T) {
	flur := &Room{Key: "flur", Name: "Flur"}
	technik := &Room{Key: "technikraum", Name: "Technik"}
	flur.connect(technik)
	flur.connect(technik)

	assert.Len(t, flur.Connections, 1)
	assert.Len(t, technik.Connections, 1)

	got, ok := flur.Connection(" technik ")
	require.True(t, ok)
	assert.Same(t, technik, got)

	_, ok = flur.Connection("technikraum")
	assert.False(t, ok, "connections match by name, not key")
}

func TestRoom_Snapshot_IsCopy(t *testing.T) {
	p := &Person{Key: "flo", Name: "Flo", Role: "Stellvertretender Teamleiter"}
	flur := &Room{Key: "flur", Name: "Flur"}
	r := &Room{Key: "post", Name: "Post", People: []*Person{p}}
	r.connect(flur)
	r.AddTask(Task{ID: 1, Name: "Post abholen"})

	snap := r.Snapshot()
	r.RemoveTask(1)
	p.RaiseRelationship(2)

	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, []string{"Flur"}, snap.Connections)
	require.Len(t, snap.People, 1)
	assert.Equal(t, 0, snap.People[0].Relationship)
}

func TestPerson_RaiseRelationship(t *testing.T) {
	p := &Person{Name: "Holger"}
	assert.Equal(t, 2, p.RaiseRelationship(2))
	assert.Equal(t, 2, p.RaiseRelationship(0))
	assert.Equal(t, 2, p.RaiseRelationship(-5))
	assert.Equal(t, 3, p.RaiseRelationship(1))
}

func TestPerson_Label(t *testing.T) {
	assert.Equal(t, "Holger (Teamleiter)", (&Person{Name: "Holger", Role: "Teamleiter"}).Label())
	assert.Equal(t, "Gast", (&Person{Name: "Gast"}).Label())
}

func TestTask_String(t *testing.T) {
	task := Task{ID: 10, Name: "Brief abgeben", Description: "Gehe zur Post und gib den Brief ab."}
	assert.Equal(t, "[10] Brief abgeben - Gehe zur Post und gib den Brief ab.", task.String())
}
