package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/teletext/pkg/game"
	"github.com/jwebster45206/teletext/pkg/scene"
)

const (
	PlaceHolderText = "Befehl eingeben, z.B. 'gehe Post' oder 'hilfe'..."

	// FrameRate is the number of game updates per second.
	FrameRate = 60
)

// ConsoleUI is the BubbleTea model that drives a game.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	ctx          context.Context
	game         *game.Game
	logger       *slog.Logger
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	volumeBar    progress.Model
	ready        bool
	width        int
	height       int

	notice      string // One-line feedback below the log
	startCursor int
	pauseCursor int
	lastTick    time.Time
	lastSecond  time.Duration

	// Quit confirmation state
	showQuitModal bool
}

type tickMsg time.Time

func NewConsoleUI(ctx context.Context, g *game.Game, logger *slog.Logger) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)

	return ConsoleUI{
		ctx:          ctx,
		game:         g,
		logger:       logger,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		volumeBar:    bar,
	}
}

// tick schedules the next frame.
func tick() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tick())
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.game.Update(now.Sub(m.lastTick))
		}
		m.lastTick = now

		// Only redraw the side panel when the clock shows a new second.
		if f := m.game.View(); f.Elapsed.Truncate(time.Second) != m.lastSecond {
			m.lastSecond = f.Elapsed.Truncate(time.Second)
			m.metaViewport.SetContent(writeRoomPanel(f, m.metaViewport.Width))
		}
		return m, tick()

	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 3
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.showQuitModal = true
			return m, nil
		}
		switch m.game.Scene() {
		case scene.KindStart:
			return m.updateStart(msg)
		case scene.KindPaused:
			return m.updatePause(msg)
		}

		switch msg.Type {
		case tea.KeyEsc:
			cmd := m.handle(game.TogglePause{})
			return m, cmd
		case tea.KeyCtrlY:
			m.copyLog()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			m.chatViewport, vpCmd = m.chatViewport.Update(msg)
			return m, vpCmd
		case tea.KeyEnter:
			cmd := m.submit()
			return m, cmd
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	return m, tiCmd
}

// submit parses the textarea content and sends it to the game.
func (m *ConsoleUI) submit() tea.Cmd {
	input := strings.TrimSpace(m.textarea.Value())
	m.textarea.Reset()
	if input == "" {
		return nil
	}

	switch strings.ToLower(input) {
	case "hilfe", "help", "?":
		m.notice = game.HelpText
		m.refresh()
		return nil
	}

	in, err := game.ParseIntent(input)
	if err != nil {
		m.notice = errorStyle.Render(err.Error())
		m.refresh()
		return nil
	}
	return m.handle(in)
}

// handle sends in to the game and redraws. Gameplay rejections already
// appear in the text log; the notice line shows the error itself.
func (m *ConsoleUI) handle(in game.Intent) tea.Cmd {
	m.notice = ""
	if err := m.game.Handle(m.ctx, in); err != nil {
		m.logger.Debug("Intent failed", "intent", in.Name(), "error", err)
		m.notice = promptStyle.Render(err.Error())
	}
	if !m.game.Running() {
		return tea.Quit
	}
	m.refresh()
	return nil
}

func (m ConsoleUI) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.game.View().Menu
	switch msg.Type {
	case tea.KeyUp:
		m.startCursor = (m.startCursor + len(items) - 1) % len(items)
	case tea.KeyDown:
		m.startCursor = (m.startCursor + 1) % len(items)
	case tea.KeyEsc:
		cmd := m.handle(game.Quit{})
		return m, cmd
	case tea.KeyEnter:
		if items[m.startCursor] == game.MenuQuit {
			cmd := m.handle(game.Quit{})
			return m, cmd
		}
		cmd := m.handle(game.StartGame{})
		return m, cmd
	}
	return m, nil
}

func (m ConsoleUI) updatePause(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.game.View()
	items := f.Pause.Menu
	item := items[m.pauseCursor]

	switch msg.Type {
	case tea.KeyUp:
		m.pauseCursor = (m.pauseCursor + len(items) - 1) % len(items)
	case tea.KeyDown:
		m.pauseCursor = (m.pauseCursor + 1) % len(items)
	case tea.KeyLeft, tea.KeyRight:
		step := 1
		if msg.Type == tea.KeyLeft {
			step = -1
		}
		switch item {
		case game.MenuSFX:
			cmd := m.handle(game.SetVolume{Channel: game.ChannelSFX, Level: f.Pause.Volumes.SFX + step})
			return m, cmd
		case game.MenuMusic:
			cmd := m.handle(game.SetVolume{Channel: game.ChannelMusic, Level: f.Pause.Volumes.Music + step})
			return m, cmd
		}
	case tea.KeyEsc:
		m.pauseCursor = 0
		cmd := m.handle(game.Resume{})
		return m, cmd
	case tea.KeyEnter:
		switch item {
		case game.MenuContinue:
			m.pauseCursor = 0
			cmd := m.handle(game.Resume{})
			return m, cmd
		case game.MenuQuitGame:
			cmd := m.handle(game.Quit{})
			return m, cmd
		}
	}
	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Keep the clock scheduled; the game is frozen while asking.
		m.lastTick = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "j", "J", "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

// copyLog puts the plain text log on the system clipboard.
func (m *ConsoleUI) copyLog() {
	var lines []string
	for _, msg := range m.game.View().Log {
		lines = append(lines, msg.String())
	}
	if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
		m.logger.Warn("Failed to copy log", "error", err)
		m.notice = errorStyle.Render("Kopieren fehlgeschlagen: " + err.Error())
		return
	}
	m.notice = promptStyle.Render("Verlauf in die Zwischenablage kopiert.")
}

// refresh redraws the viewports from the current game frame.
func (m *ConsoleUI) refresh() {
	if !m.ready {
		return
	}
	f := m.game.View()
	content := formatLog(f.Title, f.Log, m.chatViewport.Width-4)
	if m.notice != "" {
		content += m.notice + "\n"
	}
	m.chatViewport.SetContent(content)
	m.chatViewport.GotoBottom()
	m.metaViewport.SetContent(writeRoomPanel(f, m.metaViewport.Width))
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Beenden?"))
	content.WriteString("\n\n")
	content.WriteString("Willst du das Spiel wirklich verlassen?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("J zum Beenden, N zum Weiterspielen"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	f := m.game.View()
	if f.Scene == scene.KindStart {
		modal := modalStyle.Width(50).Render(renderStartMenu(f, m.startCursor))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
	}

	chatWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(1, chatWidth-4))),
			m.textarea.View(),
		),
	)

	// The frozen play frame stays visible; the pause menu replaces the side panel.
	var side string
	if f.Pause != nil {
		side = modalStyle.Render(renderPauseMenu(f.Pause, m.pauseCursor, m.volumeBar))
	} else {
		side = m.metaViewport.View()
	}
	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(side)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
