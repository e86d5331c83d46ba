package world

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/teletext.yaml
var defaultSeed []byte

// Seed is the configuration data a world is built from.
type Seed struct {
	Title       string                `yaml:"title"`
	Hub         string                `yaml:"hub"`
	Persons     []PersonSeed          `yaml:"persons"`
	Rooms       []RoomSeed            `yaml:"rooms"`
	Assignments map[string]Assignment `yaml:"assignments"` // Person key → assignment
}

// PersonSeed declares a person. Placement happens through RoomSeed.Persons.
type PersonSeed struct {
	Key           string `yaml:"key"`
	Name          string `yaml:"name"`
	Role          string `yaml:"role"`
	Description   string `yaml:"description"`
	Talkativeness int    `yaml:"talkativeness"`
}

func (ps PersonSeed) key() string {
	if ps.Key != "" {
		return Key(ps.Key)
	}
	return Key(ps.Name)
}

// RoomSeed declares a room, its seed tasks, its people and its connections.
type RoomSeed struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Connections []string `yaml:"connections,omitempty"` // Room keys; wired both ways
	Persons     []string `yaml:"persons,omitempty"`     // Person keys
	Tasks       []Task   `yaml:"tasks,omitempty"`
	Items       []string `yaml:"items,omitempty"`
}

func (rs RoomSeed) key() string {
	if rs.Key != "" {
		return Key(rs.Key)
	}
	return Key(rs.Name)
}

// ParseSeed decodes YAML seed data. Unknown fields are rejected.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return Seed{}, fmt.Errorf("empty seed data")
		}
		return Seed{}, fmt.Errorf("failed to decode seed: %w", err)
	}
	return seed, nil
}

// LoadFile reads seed data from path and builds a world from it.
func LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	w, err := Build(seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// DefaultSeed returns the seed data shipped with the binary.
func DefaultSeed() Seed {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("world: embedded seed: %v", err))
	}
	return seed
}

// Default builds a fresh copy of the shipped world.
func Default() *World {
	return MustBuild(DefaultSeed())
}
