package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/teletext/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml> [more.yaml...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &WorldValidator{}
		w, err := validator.validateFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid: %s\n", filename, summary(w))
	}
	if failed {
		os.Exit(1)
	}
}

// WorldValidator checks a world seed file beyond what the game needs to
// start: naming rules and content that would make a dull or broken game.
type WorldValidator struct {
	errors []string
}

func (v *WorldValidator) validateFile(filename string) (*world.World, error) {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("world file must have .yaml extension: %s", baseName)
	}
	if !isValidWorldFilename(strings.TrimSuffix(baseName, ext)) {
		return nil, fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_office.yaml)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	seed, err := world.ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("file %s failed strict YAML unmarshaling: %w", filename, err)
	}

	v.validateSeed(&seed)

	w, err := world.Build(seed)
	if err != nil {
		v.addError(err.Error())
	}

	if len(v.errors) > 0 {
		return nil, fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return w, nil
}

func (v *WorldValidator) validateSeed(s *world.Seed) {
	if strings.TrimSpace(s.Title) == "" {
		v.addError("title is required")
	}
	v.validateKeyFormat("hub", s.Hub)

	for i, p := range s.Persons {
		if p.Key != "" {
			v.validateKeyFormat(fmt.Sprintf("persons[%d].key", i), p.Key)
		}
		if strings.TrimSpace(p.Name) == "" {
			v.addError(fmt.Sprintf("persons[%d]: name is required", i))
		}
		if p.Talkativeness < 0 || p.Talkativeness > 10 {
			v.addError(fmt.Sprintf("persons[%d] '%s': talkativeness %d must be between 0 and 10", i, p.Name, p.Talkativeness))
		}
	}

	for i, r := range s.Rooms {
		if r.Key != "" {
			v.validateKeyFormat(fmt.Sprintf("rooms[%d].key", i), r.Key)
		}
		if strings.TrimSpace(r.Name) == "" {
			v.addError(fmt.Sprintf("rooms[%d]: name is required", i))
		}
		for _, t := range r.Tasks {
			v.validateTask(fmt.Sprintf("rooms[%d] '%s'", i, r.Name), t)
		}
	}

	for person, a := range s.Assignments {
		v.validateTask(fmt.Sprintf("assignments[%s]", person), a.Task)
		if a.Room == "" {
			v.addError(fmt.Sprintf("assignments[%s]: room is required", person))
		}
	}
}

func (v *WorldValidator) validateTask(context string, t world.Task) {
	if t.ID <= 0 {
		v.addError(fmt.Sprintf("%s: task id %d must be positive", context, t.ID))
	}
	if strings.TrimSpace(t.Name) == "" {
		v.addError(fmt.Sprintf("%s: task %d needs a name", context, t.ID))
	}
}

func (v *WorldValidator) validateKeyFormat(fieldName, key string) {
	if key == "" {
		v.addError(fmt.Sprintf("%s is required", fieldName))
		return
	}
	if !isValidKey(key) {
		v.addError(fmt.Sprintf("%s '%s' must be lowercase without spaces (e.g., grossraumbuero)", fieldName, key))
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func summary(w *world.World) string {
	tasks := 0
	for _, r := range w.RoomList() {
		tasks += len(r.Tasks)
	}
	return fmt.Sprintf("%d rooms, %d persons, %d tasks, %d assignments",
		len(w.Rooms), len(w.Persons), tasks, len(w.Assignments))
}

var (
	validKeyRegex      = regexp.MustCompile(`^\p{Ll}[\p{Ll}0-9_]*$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidKey(key string) bool {
	return validKeyRegex.MatchString(key)
}

func isValidWorldFilename(name string) bool {
	return validFilenameRegex.MatchString(name)
}
