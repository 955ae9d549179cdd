// Package keys provides string constants for Bubble Tea v2 key press events
// and the dashboard's key bindings.
//
// The constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they always match the runtime values.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlA = (tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}).String() // "ctrl+a"
)

// Dashboard bindings. Single characters cannot be misspelled in a meaningful
// way, so they are plain literals.
const (
	Theme      = "d"
	Filter     = "f"
	MobileMenu = "m"
	Search     = "/"
	ScrollTop  = "t"
	Quit       = "q"
)

// Binding is a key and the short help shown for it in the footer.
type Binding struct {
	Key  string
	Help string
}

// Page returns the bindings active while no overlay is open.
func Page(compact bool) []Binding {
	if compact {
		return []Binding{
			{MobileMenu, "menu"},
			{Theme, "theme"},
			{ScrollTop, "top"},
			{Quit, "quit"},
		}
	}
	return []Binding{
		{"←/→", "nav"},
		{Filter, "filters"},
		{Search, "search"},
		{Theme, "theme"},
		{ScrollTop, "top"},
		{Quit, "quit"},
	}
}

// Dropdown returns the bindings active while a navigation dropdown is open.
func Dropdown() []Binding {
	return []Binding{
		{"↑/↓", "select"},
		{Enter, "open"},
		{"←/→", "switch"},
		{Escape, "close"},
	}
}

// FilterPanel returns the bindings active while the filter panel is open.
func FilterPanel() []Binding {
	return []Binding{
		{"tab/↑/↓", "move"},
		{"←/→", "adjust"},
		{Space, "toggle"},
		{CtrlA, "apply"},
		{Escape, "close"},
	}
}

// MobileMenuOpen returns the bindings active while the mobile menu is open.
func MobileMenuOpen() []Binding {
	return []Binding{
		{"↑/↓", "select"},
		{Enter, "go"},
		{MobileMenu, "close"},
	}
}

// Searching returns the bindings active while a search box has focus.
func Searching() []Binding {
	return []Binding{
		{Enter, "done"},
		{Escape, "cancel"},
	}
}
