package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gies-analytics/sustaindash/internal/ui"
)

// ShowFlash replaces the footer hints with text and starts the expiry timer.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.log.Debug("Flash", "type", int(flashType), "text", text)
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashInfo is used for links that lead off this page.
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess confirms an applied filter selection.
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
