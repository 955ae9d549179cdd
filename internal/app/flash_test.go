package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gies-analytics/sustaindash/internal/ui"
)

func TestShowFlash_Variants(t *testing.T) {
	tests := []struct {
		name string
		show func(m *Model, text string) tea.Cmd
		icon string
	}{
		{"warning", func(m *Model, s string) tea.Cmd { return m.ShowFlash(s, ui.FlashWarning) }, "⚠"},
		{"info", func(m *Model, s string) tea.Cmd { return m.ShowFlashInfo(s) }, "ℹ"},
		{"success", func(m *Model, s string) tea.Cmd { return m.ShowFlashSuccess(s) }, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(120, 40)
			if cmd := tt.show(m, "hello"); cmd == nil {
				t.Error("expected a flash tick command")
			}
			got := stripANSI(m.footer.View())
			if !strings.Contains(got, tt.icon) || !strings.Contains(got, "hello") {
				t.Errorf("footer = %q, want %s hello", got, tt.icon)
			}
		})
	}
}

func TestFlashTick_KeepsTickingWhileVisible(t *testing.T) {
	m := testModelWithSize(120, 40)
	m.ShowFlash("saved", ui.FlashInfo)

	_, cmd := m.Update(ui.FlashTickMsg{})
	if cmd == nil {
		t.Error("a fresh flash should keep the tick running")
	}
	if !m.footer.HasFlash() {
		t.Error("a fresh flash must not be cleared")
	}

	m.footer.ClearFlash()
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("no flash left, the tick should stop")
	}
}
