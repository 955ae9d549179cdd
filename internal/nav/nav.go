// Package nav describes the header navigation tree and its hover state.
//
// The desktop menu tracks a single hovered entry, so at most one group can
// ever show its dropdown. The mobile menu renders the same tree flattened and
// fully expanded, without any hover state.
package nav

// Item is a leaf link.
type Item struct {
	Name string
	Href string
}

// Entry is either a link (Href set, no Items) or a group of links.
type Entry struct {
	Name  string
	Href  string
	Items []Item
}

// IsGroup reports whether the entry opens a dropdown.
func (e Entry) IsGroup() bool {
	return len(e.Items) > 0
}

// DefaultEntries returns the dashboard's navigation tree.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "Overview", Href: "#overview"},
		{Name: "Sustainability Goals", Items: []Item{
			{Name: "SDG Overview", Href: "#goals-overview"},
			{Name: "Detailed Breakdown", Href: "#goals-breakdown"},
			{Name: "Data Cards", Href: "#goals-grid"},
		}},
		{Name: "Journal Trends", Items: []Item{
			{Name: "Annual Trends", Href: "#trends-annual"},
			{Name: "Journal Tiers", Href: "#trends-tiers"},
			{Name: "Growth: Total Articles", Href: "#growth-total"},
			{Name: "Growth: Top Journals", Href: "#growth-top"},
			{Name: "Growth: SDG Impact", Href: "#growth-sdg"},
		}},
		{Name: "Departments", Items: []Item{
			{Name: "Accountancy", Href: "#dept-accountancy"},
			{Name: "Business Admin", Href: "#dept-business"},
			{Name: "Finance", Href: "#dept-finance"},
		}},
		{Name: "Faculty", Items: []Item{
			{Name: "Business Articles", Href: "#fac-articles"},
			{Name: "Top Journal Articles", Href: "#fac-top"},
			{Name: "SDG Articles", Href: "#fac-sdg"},
			{Name: "Contributors", Href: "#fac-contributors"},
		}},
	}
}

// Menu is the desktop navigation state: one optionally hovered entry plus a
// highlighted row inside the open dropdown for keyboard use.
type Menu struct {
	entries []Entry
	hovered int // index into entries, -1 when nothing is hovered
	row     int // highlighted item in the open dropdown, -1 for none
}

// NewMenu creates a closed menu over entries.
func NewMenu(entries []Entry) *Menu {
	return &Menu{entries: entries, hovered: -1, row: -1}
}

// Entries returns the navigation tree.
func (m *Menu) Entries() []Entry {
	return m.entries
}

func (m *Menu) index(name string) int {
	for i, e := range m.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Hover marks name as the hovered entry, replacing any previous one.
// Unknown names are ignored.
func (m *Menu) Hover(name string) {
	i := m.index(name)
	if i < 0 || i == m.hovered {
		return
	}
	m.hovered = i
	m.row = -1
}

// Leave clears the hover if name is the hovered entry. A leave event for some
// other entry is stale and has no effect.
func (m *Menu) Leave(name string) {
	if m.hovered >= 0 && m.entries[m.hovered].Name == name {
		m.CloseAll()
	}
}

// Toggle opens name, or closes it when it is already open.
func (m *Menu) Toggle(name string) {
	i := m.index(name)
	if i < 0 {
		return
	}
	if m.hovered == i {
		m.CloseAll()
		return
	}
	m.hovered = i
	m.row = -1
}

// CloseAll clears the hover state.
func (m *Menu) CloseAll() {
	m.hovered = -1
	m.row = -1
}

// Hovered returns the hovered entry's name, if any. Links can be hovered
// (for the underline) without opening anything.
func (m *Menu) Hovered() (string, bool) {
	if m.hovered < 0 {
		return "", false
	}
	return m.entries[m.hovered].Name, true
}

// Open returns the group whose dropdown is visible, if any.
func (m *Menu) Open() (string, bool) {
	if m.hovered < 0 || !m.entries[m.hovered].IsGroup() {
		return "", false
	}
	return m.entries[m.hovered].Name, true
}

// IsOpen reports whether name's dropdown is visible.
func (m *Menu) IsOpen(name string) bool {
	open, ok := m.Open()
	return ok && open == name
}

// MoveFocus moves the hover by delta entries, wrapping around. With nothing
// hovered it starts from the first (delta > 0) or last entry.
func (m *Menu) MoveFocus(delta int) {
	n := len(m.entries)
	if n == 0 || delta == 0 {
		return
	}
	var next int
	switch {
	case m.hovered < 0 && delta > 0:
		next = 0
	case m.hovered < 0:
		next = n - 1
	default:
		next = ((m.hovered+delta)%n + n) % n
	}
	m.hovered = next
	m.row = -1
}

// Focused returns the index of the hovered entry, or -1.
func (m *Menu) Focused() int {
	return m.hovered
}

// MoveRow moves the highlighted row in the open dropdown, clamping at both
// ends. It does nothing while no group is open.
func (m *Menu) MoveRow(delta int) {
	if _, ok := m.Open(); !ok {
		return
	}
	items := m.entries[m.hovered].Items
	m.row = max(0, min(m.row+delta, len(items)-1))
}

// Row returns the highlighted dropdown row, or -1.
func (m *Menu) Row() int {
	return m.row
}

// Activate resolves the link at entry/item and closes the menu. item < 0
// selects the entry itself, which only succeeds for links.
func (m *Menu) Activate(entry, item int) (string, bool) {
	if entry < 0 || entry >= len(m.entries) {
		return "", false
	}
	e := m.entries[entry]

	var href string
	switch {
	case item < 0 && !e.IsGroup():
		href = e.Href
	case item >= 0 && item < len(e.Items):
		href = e.Items[item].Href
	default:
		return "", false
	}
	m.CloseAll()
	return href, true
}

// ActivateFocused activates the hovered link or the highlighted dropdown row.
func (m *Menu) ActivateFocused() (string, bool) {
	if m.hovered < 0 {
		return "", false
	}
	return m.Activate(m.hovered, m.row)
}

// FlatRow is one line of the mobile menu.
type FlatRow struct {
	Depth   int
	Name    string
	Href    string
	Heading bool
}

// Flatten expands every group in place: a group becomes a heading row
// followed by its items at depth 1.
func Flatten(entries []Entry) []FlatRow {
	var rows []FlatRow
	for _, e := range entries {
		if !e.IsGroup() {
			rows = append(rows, FlatRow{Name: e.Name, Href: e.Href})
			continue
		}
		rows = append(rows, FlatRow{Name: e.Name, Heading: true})
		for _, it := range e.Items {
			rows = append(rows, FlatRow{Depth: 1, Name: it.Name, Href: it.Href})
		}
	}
	return rows
}
