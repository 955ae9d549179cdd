package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gies-analytics/sustaindash/internal/keys"
)

func expiredFlash(text string) *FlashMessage {
	return &FlashMessage{
		Text:      text,
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-2 * DefaultFlashDuration),
		Duration:  DefaultFlashDuration,
	}
}

func TestFooter_StartsWithPageBindings(t *testing.T) {
	footer := NewFooter()
	if footer.HasFlash() {
		t.Error("a new footer should not show a flash")
	}
	if len(footer.Bindings()) != len(keys.Page(false)) {
		t.Errorf("bindings = %d, want the desktop page set (%d)", len(footer.Bindings()), len(keys.Page(false)))
	}
}

func TestFooter_FlashDuration(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Filters applied", FlashSuccess)
	if got := footer.flashMessage.Duration; got != DefaultFlashDuration {
		t.Errorf("SetFlash duration = %v, want %v", got, DefaultFlashDuration)
	}

	footer.SetFlashWithDuration("#trends-annual is not part of this dashboard", FlashInfo, time.Minute)
	if got := footer.flashMessage.Duration; got != time.Minute {
		t.Errorf("SetFlashWithDuration duration = %v, want 1m", got)
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("ClearFlash should drop the flash")
	}
}

func TestFooter_ClearIfExpiredReportsRemaining(t *testing.T) {
	tests := []struct {
		name      string
		flash     *FlashMessage
		remaining bool
	}{
		{"no flash", nil, false},
		{"live flash", &FlashMessage{Text: "Filters applied", CreatedAt: time.Now(), Duration: DefaultFlashDuration}, true},
		{"expired flash", expiredFlash("Filters applied"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.flashMessage = tt.flash

			if got := footer.ClearIfExpired(); got != tt.remaining {
				t.Errorf("ClearIfExpired() = %v, want %v", got, tt.remaining)
			}
			if footer.HasFlash() != tt.remaining {
				t.Errorf("HasFlash() = %v after ClearIfExpired", footer.HasFlash())
			}
		})
	}
}

func TestFooter_FlashIcons(t *testing.T) {
	tests := []struct {
		flash FlashType
		icon  string
	}{
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
		{FlashWarning, "⚠"},
		{FlashError, "✕"},
	}

	for _, tt := range tests {
		footer := NewFooter()
		footer.SetWidth(80)
		footer.SetFlash("Theme saved", tt.flash)

		view := stripANSI(footer.View())
		if !strings.Contains(view, tt.icon+" Theme saved") {
			t.Errorf("flash type %d rendered %q, want icon %q", tt.flash, view, tt.icon)
		}
	}
}

func TestFooter_ShowsBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	view := stripANSI(footer.View())
	for _, want := range []string{"f: filters", "d: theme", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("page footer missing %q in %q", want, view)
		}
	}

	footer.SetBindings(keys.FilterPanel())
	view = stripANSI(footer.View())
	if !strings.Contains(view, "ctrl+a: apply") {
		t.Errorf("filter footer missing apply hint: %q", view)
	}
	if strings.Contains(view, "q: quit") {
		t.Error("filter footer should not show page bindings")
	}
}

func TestFooter_FlashTakesPriority(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetFlash("Unknown section #people", FlashWarning)

	view := stripANSI(footer.View())
	if !strings.Contains(view, "Unknown section #people") {
		t.Error("flash should be visible")
	}
	if strings.Contains(view, "filters") {
		t.Error("bindings should be hidden while a flash is showing")
	}

	footer.flashMessage = expiredFlash("Unknown section #people")
	footer.ClearIfExpired()
	if view := stripANSI(footer.View()); !strings.Contains(view, "f: filters") {
		t.Errorf("bindings should return once the flash expires: %q", view)
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}
