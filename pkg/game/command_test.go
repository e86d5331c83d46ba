package game

import (
	"testing"

	"github.com/jwebster45206/teletext/pkg/dialogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Intent
	}{
		{"start", "start", StartGame{}},
		{"move with spaces", "gehe Büro 1", Move{Room: "Büro 1"}},
		{"move short", "g  Post ", Move{Room: "Post"}},
		{"task", "aufgabe 3", RunTask{ID: 3}},
		{"talk", "Sprich Holger", Talk{Person: "Holger"}},
		{"yes", "ja", Choose{Option: dialogue.OptionYes}},
		{"no", "N", Choose{Option: dialogue.OptionNo}},
		{"smalltalk", "smalltalk", Choose{Option: dialogue.OptionSmalltalk}},
		{"bye", "ende", EndConversation{}},
		{"tasks", "aufgaben", ShowTasks{}},
		{"status", "status", Status{}},
		{"pause", "p", TogglePause{}},
		{"resume", "weiter", Resume{}},
		{"volume", "lautstärke musik 7", SetVolume{Channel: ChannelMusic, Level: 7}},
		{"volume sfx", "vol SFX 0", SetVolume{Channel: ChannelSFX, Level: 0}},
		{"quit", "beenden", Quit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntent(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "   ", ErrUnknownCommand},
		{"unknown", "tanzen", ErrUnknownCommand},
		{"move without room", "gehe", ErrMissingArgument},
		{"task without id", "aufgabe", ErrMissingArgument},
		{"talk without name", "sprich", ErrMissingArgument},
		{"volume without level", "lautstärke musik", ErrMissingArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntent(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := ParseIntent("aufgabe eins")
	assert.Error(t, err)
	_, err = ParseIntent("lautstärke bass 3")
	assert.Error(t, err)
}

func TestVolumes(t *testing.T) {
	v := Volumes{Music: 5, SFX: 5}
	assert.Equal(t, Volumes{Music: 10, SFX: 5}, v.With(ChannelMusic, 99))
	assert.Equal(t, Volumes{Music: 5, SFX: 0}, v.With(ChannelSFX, -4))
	assert.Equal(t, 5, v.Get(ChannelSFX))

	ch, err := ParseChannel("musik")
	require.NoError(t, err)
	assert.Equal(t, ChannelMusic, ch)
}
