package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/huepick/internal/clipboard"
	"github.com/balkashynov/huepick/internal/color"
	"github.com/balkashynov/huepick/internal/i18n"
	"github.com/balkashynov/huepick/internal/state"
)

// RunPickerTUI starts the interactive color picker
func RunPickerTUI(manager *state.Manager, clip *clipboard.Tracker, opts Options) error {
	model := NewPickerModel(manager, clip, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	// Leave the last color on screen after the alt screen closes
	current := manager.Current()
	fmt.Printf("%s  %s  %s\n", color.HexString(current), color.RGBString(current), color.HSLString(current))
	if n := len(manager.Saved()); n > 0 {
		fmt.Printf("%s: %d/%d\n", i18n.T(opts.Language, "colorList.title"), n, state.MaxSaved)
	}

	return nil
}
