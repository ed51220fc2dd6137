package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/huepick/internal/clipboard"
	"github.com/balkashynov/huepick/internal/color"
	"github.com/balkashynov/huepick/internal/i18n"
	"github.com/balkashynov/huepick/internal/state"
)

// Focus represents which panel receives keys
type Focus int

const (
	FocusInput Focus = iota
	FocusFormats
	FocusSaved
)

const (
	slotsPerRow = 10
	slotWidth   = 4
)

// Options configures the picker
type Options struct {
	Language string
	Feedback time.Duration // how long "copied" stays visible
	Shimmer  ShimmerConfig
}

// view is the latest state pushed by the Manager. It lives behind a pointer
// so the subscription outlives the value copies bubbletea makes of the model.
type view struct {
	state          state.State
	currentChanged bool
}

// PickerModel represents the TUI model for picking and saving colors
type PickerModel struct {
	manager *state.Manager
	clip    *clipboard.Tracker
	view    *view
	opts    Options

	input  textinput.Model
	width  int
	height int

	// UI state
	focus          Focus
	selectedFormat int
	selectedSlot   int
	invalid        bool
	copyFailed     bool
	failSeq        int

	shimmer *ShimmerState
}

// shimmerTickMsg is sent when the title shimmer should advance
type shimmerTickMsg struct{}

// copyResetMsg clears the "copied" badge for text
type copyResetMsg struct {
	text string
}

// copyFailResetMsg clears the failure notice left by copy attempt seq
type copyFailResetMsg struct {
	seq int
}

// NewPickerModel creates a picker bound to manager. The model subscribes to
// manager and re-renders from the snapshots it publishes.
func NewPickerModel(manager *state.Manager, clip *clipboard.Tracker, opts Options) PickerModel {
	if opts.Feedback <= 0 {
		opts.Feedback = clipboard.DefaultFeedback
	}

	input := textinput.New()
	input.Width = 20
	input.CharLimit = 7
	input.Placeholder = i18n.T(opts.Language, "colorInput.placeholder")
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.SetValue(manager.Current())
	input.Focus()

	v := &view{state: manager.Snapshot()}
	manager.Subscribe(func(s state.State) {
		if s.Current != v.state.Current {
			v.currentChanged = true
		}
		v.state = s
	})

	return PickerModel{
		manager: manager,
		clip:    clip,
		view:    v,
		opts:    opts,
		input:   input,
		focus:   FocusInput,
		shimmer: NewShimmerState(opts.Shimmer),
	}
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.Config.Enabled {
		cmds = append(cmds, m.shimmerTick())
	}
	return tea.Batch(cmds...)
}

func (m PickerModel) shimmerTick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.shimmer.Advance(len([]rune(m.title())))
		return m, m.shimmerTick()

	case copyResetMsg:
		m.clip.Reset(msg.text)
		return m, nil

	case copyFailResetMsg:
		if msg.seq == m.failSeq {
			m.copyFailed = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m.setFocus((m.focus + 1) % 3)
		case "shift+tab":
			return m.setFocus((m.focus + 2) % 3)
		case "ctrl+y":
			return m.copy(color.HexString(m.view.state.Current))
		}

		switch m.focus {
		case FocusFormats:
			return m.handleFormatKeys(msg)
		case FocusSaved:
			return m.handleSavedKeys(msg)
		}
		return m.handleInputKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PickerModel) setFocus(f Focus) (PickerModel, tea.Cmd) {
	m.focus = f
	if f == FocusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m PickerModel) handleInputKeys(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	if msg.String() == "enter" {
		if color.IsValid(m.input.Value()) {
			m.manager.AddColor(m.manager.Current())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	if color.IsValid(value) {
		m.manager.SetCurrentColor(value)
		m.invalid = false
	} else {
		// Only complain once something has been typed
		m.invalid = len(value) > 0
	}
	m.view.currentChanged = false

	return m, cmd
}

func (m PickerModel) handleFormatKeys(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	formats := color.Formats(m.view.state.Current)

	switch msg.String() {
	case "up", "k":
		if m.selectedFormat > 0 {
			m.selectedFormat--
		}
	case "down", "j":
		if m.selectedFormat < len(formats)-1 {
			m.selectedFormat++
		}
	case "enter", "c":
		return m.copy(formats[m.selectedFormat].Value)
	case "a":
		m.manager.AddColor(m.manager.Current())
	}
	return m, nil
}

func (m PickerModel) handleSavedKeys(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	saved := m.view.state.Saved

	switch msg.String() {
	case "left", "h":
		if m.selectedSlot > 0 {
			m.selectedSlot--
		}
	case "right", "l":
		if m.selectedSlot < state.MaxSaved-1 {
			m.selectedSlot++
		}
	case "up", "k":
		if m.selectedSlot >= slotsPerRow {
			m.selectedSlot -= slotsPerRow
		}
	case "down", "j":
		if m.selectedSlot+slotsPerRow < state.MaxSaved {
			m.selectedSlot += slotsPerRow
		}
	case "enter", "c":
		if m.selectedSlot < len(saved) {
			c := saved[m.selectedSlot]
			m.manager.SetCurrentColor(c)
			m = m.syncInput()
			return m.copy(c)
		}
	case "d", "delete", "backspace":
		if m.selectedSlot < len(saved) {
			m.manager.RemoveColor(saved[m.selectedSlot])
		}
	case "X":
		m.manager.ClearColors()
		m.selectedSlot = 0
	case "a":
		m.manager.AddColor(m.manager.Current())
	}
	return m, nil
}

// syncInput mirrors a current color set from outside the input field
func (m PickerModel) syncInput() PickerModel {
	if m.view.currentChanged {
		m.input.SetValue(m.view.state.Current)
		m.invalid = false
		m.view.currentChanged = false
	}
	return m
}

// copy copies text and schedules the confirmation to disappear
func (m PickerModel) copy(text string) (PickerModel, tea.Cmd) {
	if !m.clip.Copy(text) {
		m.copyFailed = true
		m.failSeq++
		seq := m.failSeq
		return m, tea.Tick(m.opts.Feedback, func(time.Time) tea.Msg {
			return copyFailResetMsg{seq: seq}
		})
	}
	m.copyFailed = false
	return m, tea.Tick(m.opts.Feedback, func(time.Time) tea.Msg {
		return copyResetMsg{text: text}
	})
}

func (m PickerModel) t(key string) string {
	return i18n.T(m.opts.Language, key)
}

func (m PickerModel) title() string {
	return m.t("app.title")
}

// View renders the TUI
func (m PickerModel) View() string {
	header := m.shimmer.Render(m.title(), ColorAccentMain, color.HexString(m.view.state.Current)) + "  " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(m.t("app.description"))

	help := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render(m.t("help.keys"))

	// Single column for small terminals
	if m.width < 85 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header, "",
			m.renderInput(), "",
			m.renderCard(30), "",
			m.renderFormats(), "",
			m.renderSaved(), "",
			help,
		)
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.renderInput(), "", m.renderSaved())
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderCard(40), "", m.renderFormats())

	leftPanel := m.panelStyle(m.focus != FocusFormats).Render(left)
	rightPanel := m.panelStyle(m.focus == FocusFormats).Render(right)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "",
		lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, " ", rightPanel),
		help,
	)
}

func (m PickerModel) panelStyle(focused bool) lipgloss.Style {
	border := ColorBorder
	if focused {
		border = ColorAccentMain
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1)
}

// renderInput renders the hex field and its validation message
func (m PickerModel) renderInput() string {
	var b strings.Builder

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(label.Render(m.t("colorInput.label")))
	b.WriteString("\n")

	inputStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(ColorBorder))
	if m.invalid {
		inputStyle = inputStyle.BorderForeground(lipgloss.Color(ColorError))
	} else if color.IsValid(m.input.Value()) {
		inputStyle = inputStyle.BorderForeground(lipgloss.Color(color.HexString(m.input.Value())))
	}
	b.WriteString(inputStyle.Render(m.input.View()))

	if m.invalid {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.t("colorInput.invalid")))
	}
	return b.String()
}

// renderCard renders the large swatch of the current color
func (m PickerModel) renderCard(width int) string {
	current := m.view.state.Current
	hex := color.HexString(current)

	hint := m.t("colorCard.copy")
	if m.clip.IsCopied(hex) || m.clip.IsCopied(current) {
		hint = m.t("clipboard.copied")
	}

	card := lipgloss.NewStyle().
		Width(width).
		Height(7).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(color.Contrast(current))).
		Bold(true)

	return card.Render(hex + "\n\n" + hint)
}

// renderFormats renders the converter rows
func (m PickerModel) renderFormats() string {
	var rows []string

	for i, f := range color.Formats(m.view.state.Current) {
		nameStyle := lipgloss.NewStyle().Width(6).Foreground(lipgloss.Color(ColorSecondaryText))
		valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

		cursor := "  "
		if m.focus == FocusFormats && i == m.selectedFormat {
			cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▶ ")
			valueStyle = valueStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}

		row := cursor + nameStyle.Render(f.Name) + valueStyle.Render(f.Value)
		if m.clip.IsCopied(f.Value) {
			row += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ "+m.t("clipboard.copied"))
		}
		rows = append(rows, row)
	}

	if m.copyFailed {
		rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.t("clipboard.failed")))
	}
	return strings.Join(rows, "\n")
}

// renderSaved renders the fixed grid of saved color slots
func (m PickerModel) renderSaved() string {
	saved := m.view.state.Saved
	current := m.view.state.Current

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	b.WriteString(title.Render(fmt.Sprintf("%s (%d/%d)", m.t("colorList.title"), len(saved), state.MaxSaved)))
	b.WriteString("\n")

	var rows []string
	for start := 0; start < state.MaxSaved; start += slotsPerRow {
		var cells []string
		for i := start; i < start+slotsPerRow; i++ {
			c := ""
			if i < len(saved) {
				c = saved[i]
			}
			selected := m.focus == FocusSaved && i == m.selectedSlot
			cells = append(cells, renderSlot(c, c != "" && c == current, selected, m.clip.IsCopied(c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(strings.Join(rows, "\n"))

	if len(saved) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(m.t("colorList.empty")))
	}
	if len(saved) >= state.MaxSaved {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.t("colorList.limit")))
	}
	return b.String()
}

// renderSlot renders one swatch; an empty c draws a dashed placeholder.
// active marks the current color with a dot, copied adds a check.
func renderSlot(c string, active, selected, copied bool) string {
	border := lipgloss.NormalBorder()
	borderColor := ColorCardBackground
	if selected {
		border = lipgloss.ThickBorder()
		borderColor = ColorAccentBright
	}

	style := lipgloss.NewStyle().Width(slotWidth).Border(border).BorderForeground(lipgloss.Color(borderColor))

	if c == "" {
		return style.Foreground(lipgloss.Color(ColorDisabledText)).Render("┄┄┄┄")
	}

	dot, check := " ", " "
	if active {
		dot = "●"
	}
	if copied {
		check = "✓"
	}
	mark := " " + dot + check + " "
	return style.
		Background(lipgloss.Color(color.HexString(c))).
		Foreground(lipgloss.Color(color.Contrast(c))).
		Render(mark)
}
