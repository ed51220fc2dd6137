package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/huepick/internal/color"
)

// ShimmerConfig holds configuration for the title shimmer
type ShimmerConfig struct {
	Enabled    bool    // animations: on|off
	SpeedMs    int     // tick interval (default 100)
	WidthRatio float64 // highlight width relative to the text (default 0.25)
	CycleMs    int     // time for one sweep across the text (default 1800)
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:    true,
		SpeedMs:    100,
		WidthRatio: 0.25,
		CycleMs:    1800,
	}
}

// ShimmerState is a highlight that sweeps across the title, tinted with the
// current color.
type ShimmerState struct {
	Center float64 // current center position, in runes
	Config ShimmerConfig
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{Config: config}
}

// Advance moves the highlight one tick along a text of visibleLen runes,
// wrapping back to before the start once it has left the end.
func (s *ShimmerState) Advance(visibleLen int) {
	if !s.Config.Enabled || visibleLen <= 0 {
		return
	}

	ticksPerCycle := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	margin := float64(visibleLen) * s.Config.WidthRatio
	s.Center += (float64(visibleLen) + 2*margin) / ticksPerCycle

	if s.Center >= float64(visibleLen)+margin {
		s.Center = -margin
	}
}

// Render draws text in base with the highlight blended towards highlight.
// Both colors must be valid hex strings.
func (s *ShimmerState) Render(text, base, highlight string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if !s.Config.Enabled {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(base)).Render(text)
	}

	sigma := math.Max(1.0, s.Config.WidthRatio*float64(len(runes))/2.0)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.Center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		c := color.Blend(base, highlight, weight)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}

// TickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) TickInterval() time.Duration {
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}
