package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gies-analytics/sustaindash/internal/keys"
)

// FlashType is the severity of a footer flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays visible.
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient message that replaces the key hints.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) >= m.Duration
}

// FlashTickMsg asks the model to drop an expired flash.
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer is the bottom bar with context-aware key hints.
type Footer struct {
	width        int
	bindings     []keys.Binding
	flashMessage *FlashMessage
}

// NewFooter creates a footer showing the desktop page bindings.
func NewFooter() *Footer {
	return &Footer{bindings: keys.Page(false)}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the key hints, usually when an overlay opens or closes.
func (f *Footer) SetBindings(bindings []keys.Binding) {
	f.bindings = bindings
}

// Bindings returns the current key hints.
func (f *Footer) Bindings() []keys.Binding {
	return f.bindings
}

// SetFlash shows text for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, t FlashType) {
	f.SetFlashWithDuration(text, t, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d.
func (f *Footer) SetFlashWithDuration(text string, t FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      t,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash drops the current flash.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether one remains.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
	}
	return f.flashMessage != nil
}

func flashStyle(t FlashType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch t {
	case FlashSuccess:
		return base.Foreground(ColorAccent)
	case FlashWarning:
		return base.Foreground(ColorWarning)
	case FlashError:
		return base.Foreground(ColorError)
	default:
		return base.Foreground(ColorAccentStrong)
	}
}

func flashIcon(t FlashType) string {
	switch t {
	case FlashSuccess:
		return "✓"
	case FlashWarning:
		return "⚠"
	case FlashError:
		return "✕"
	default:
		return "ℹ"
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		msg := flashStyle(f.flashMessage.Type).Render(flashIcon(f.flashMessage.Type) + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(msg)
	}

	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Help))
	}
	content := strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")
	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
