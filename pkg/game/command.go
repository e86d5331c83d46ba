package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/teletext/pkg/dialogue"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

type commandType string

const (
	cmdStart  commandType = "start"
	cmdMove   commandType = "move"
	cmdTask   commandType = "task"
	cmdTalk   commandType = "talk"
	cmdAnswer commandType = "answer"
	cmdBye    commandType = "bye"
	cmdTasks  commandType = "tasks"
	cmdStatus commandType = "status"
	cmdPause  commandType = "pause"
	cmdResume commandType = "resume"
	cmdVolume commandType = "volume"
	cmdQuit   commandType = "quit"
	cmdNone   commandType = ""
)

var knownCommands = map[string]commandType{
	"start":      cmdStart,
	"los":        cmdStart,
	"gehe":       cmdMove,
	"geh":        cmdMove,
	"g":          cmdMove,
	"aufgabe":    cmdTask,
	"a":          cmdTask,
	"sprich":     cmdTalk,
	"rede":       cmdTalk,
	"r":          cmdTalk,
	"ja":         cmdAnswer,
	"j":          cmdAnswer,
	"nein":       cmdAnswer,
	"n":          cmdAnswer,
	"smalltalk":  cmdAnswer,
	"s":          cmdAnswer,
	"tschüss":    cmdBye,
	"ende":       cmdBye,
	"aufgaben":   cmdTasks,
	"t":          cmdTasks,
	"status":     cmdStatus,
	"pause":      cmdPause,
	"p":          cmdPause,
	"weiter":     cmdResume,
	"fortfahren": cmdResume,
	"lautstärke": cmdVolume,
	"vol":        cmdVolume,
	"beenden":    cmdQuit,
	"quit":       cmdQuit,
	"q":          cmdQuit,
}

// HelpText lists the console commands.
const HelpText = `Befehle:
  start                      Spiel starten
  gehe <raum>                in einen angrenzenden Raum gehen
  aufgaben                   Aufgaben im Raum anzeigen
  aufgabe <id>               Aufgabe ausführen
  sprich <name>              Gespräch beginnen
  ja | nein | smalltalk      im Gespräch antworten
  ende                       Gespräch beenden
  status                     Beziehungen anzeigen
  pause | weiter             Pausenmenü
  lautstärke <musik|sfx> <0-10>
  beenden                    Spiel beenden`

// parseCommand splits input into a known command and its argument.
func parseCommand(input string) (commandType, string, string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return cmdNone, "", ""
	}
	word, arg, _ := strings.Cut(trimmed, " ")
	word = strings.ToLower(word)
	cmd, ok := knownCommands[word]
	if !ok {
		return cmdNone, word, ""
	}
	return cmd, word, strings.TrimSpace(arg)
}

// ParseIntent turns one line of console input into an Intent.
func ParseIntent(input string) (Intent, error) {
	cmd, word, arg := parseCommand(input)

	switch cmd {
	case cmdStart:
		return StartGame{}, nil
	case cmdMove:
		if arg == "" {
			return nil, fmt.Errorf("%w: %s <raum>", ErrMissingArgument, word)
		}
		return Move{Room: arg}, nil
	case cmdTask:
		if arg == "" {
			return nil, fmt.Errorf("%w: %s <id>", ErrMissingArgument, word)
		}
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid task id %q: %w", arg, err)
		}
		return RunTask{ID: id}, nil
	case cmdTalk:
		if arg == "" {
			return nil, fmt.Errorf("%w: %s <name>", ErrMissingArgument, word)
		}
		return Talk{Person: arg}, nil
	case cmdAnswer:
		return Choose{Option: dialogue.ParseOption(word)}, nil
	case cmdBye:
		return EndConversation{}, nil
	case cmdTasks:
		return ShowTasks{}, nil
	case cmdStatus:
		return Status{}, nil
	case cmdPause:
		return TogglePause{}, nil
	case cmdResume:
		return Resume{}, nil
	case cmdVolume:
		return parseVolume(word, arg)
	case cmdQuit:
		return Quit{}, nil
	default:
		if word == "" {
			return nil, fmt.Errorf("%w: empty input", ErrUnknownCommand)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
}

func parseVolume(word, arg string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(arg))
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: %s <musik|sfx> <0-%d>", ErrMissingArgument, word, MaxVolume)
	}
	ch, err := ParseChannel(fields[0])
	if err != nil {
		return nil, err
	}
	level, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid volume %q: %w", fields[1], err)
	}
	return SetVolume{Channel: ch, Level: level}, nil
}
