package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/teletext/pkg/chat"
	"github.com/jwebster45206/teletext/pkg/game"
	"github.com/muesli/reflow/wordwrap"
)

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// formatMessage renders one log message wrapped to width.
func formatMessage(msg chat.ChatMessage, width int) string {
	if width < 10 {
		width = 10
	}
	switch {
	case msg.Role == chat.ChatRoleSystem || msg.Speaker == "":
		return narratorStyle.Render(wordwrap.String(msg.Content, width))
	case msg.Role == chat.ChatRoleUser:
		return userStyle.Render(msg.Speaker+": ") + wordwrap.String(msg.Content, width-len(msg.Speaker)-2)
	default:
		prefix := speakerStyle.Render(msg.Speaker + ":")
		return prefix + " " + wordwrap.String("\""+msg.Content+"\"", width-len(msg.Speaker)-2)
	}
}

// formatLog renders the whole text log, oldest first.
func formatLog(title string, msgs []chat.ChatMessage, width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.ToUpper(title)) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(1, width))) + "\n\n")
	for _, msg := range msgs {
		content.WriteString(formatMessage(msg, width) + "\n\n")
	}
	return content.String()
}

// formatElapsed renders play time as mm:ss.
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// writeRoomPanel renders the side panel of the play scene.
func writeRoomPanel(f game.Frame, width int) string {
	var content strings.Builder
	if f.Room == nil {
		return ""
	}
	room := f.Room

	content.WriteString(titleStyle.Render(strings.ToUpper(room.Name)) + "\n\n")
	if room.Description != "" {
		content.WriteString(wordwrap.String(room.Description, max(10, width)) + "\n\n")
	}

	content.WriteString(labelStyle.Render("Ausgänge:") + "\n")
	for _, c := range room.Connections {
		content.WriteString("• " + c + "\n")
	}
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Personen:") + "\n")
	if len(room.People) == 0 {
		content.WriteString("niemand\n")
	}
	for _, p := range room.People {
		content.WriteString(fmt.Sprintf("• %s (%s)\n", p.Name, p.Role))
	}
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Aufgaben:") + "\n")
	if len(room.Tasks) == 0 {
		content.WriteString("keine\n")
	}
	for _, t := range room.Tasks {
		content.WriteString(fmt.Sprintf("• [%d] %s\n", t.ID, t.Name))
	}
	content.WriteString("\n")

	if c := f.Conversation; c != nil {
		content.WriteString(labelStyle.Render("Gespräch mit "+c.Person.Name) + "\n")
		content.WriteString(fmt.Sprintf("Beziehung: %d\n", c.Person.Relationship))
		content.WriteString(promptStyle.Render(strings.Join(c.Options, " · ")) + "\n\n")
	}

	content.WriteString(labelStyle.Render("Spielzeit:") + " " + formatElapsed(f.Elapsed) + "\n")
	return content.String()
}

// renderVolume draws a volume slider on the 0..10 scale.
func renderVolume(bar progress.Model, level int) string {
	return bar.ViewAs(float64(level)/float64(game.MaxVolume)) + fmt.Sprintf(" %2d/%d", level, game.MaxVolume)
}

// renderPauseMenu draws the pause overlay content.
func renderPauseMenu(p *game.PauseOverlay, cursor int, bar progress.Model) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("PAUSE"))
	content.WriteString("\n\n")
	for i, item := range p.Menu {
		line := item
		switch item {
		case game.MenuSFX:
			line = fmt.Sprintf("%-18s %s", item, renderVolume(bar, p.Volumes.SFX))
		case game.MenuMusic:
			line = fmt.Sprintf("%-18s %s", item, renderVolume(bar, p.Volumes.Music))
		}
		if i == cursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + line))
		} else {
			content.WriteString(modalItemStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("↑/↓ wählen, ←/→ Lautstärke, Enter bestätigen, Esc weiter"))
	return content.String()
}

// renderStartMenu draws the title screen content.
func renderStartMenu(f game.Frame, cursor int) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(f.Title))
	content.WriteString("\n\n")
	for i, item := range f.Menu {
		if i == cursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + item))
		} else {
			content.WriteString(modalItemStyle.Render("  " + item))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("↑/↓ wählen, Enter bestätigen"))
	return content.String()
}
