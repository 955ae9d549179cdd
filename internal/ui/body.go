package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gies-analytics/sustaindash/internal/dashboard"
)

// BodyLayout is the rendered scrolling content and the line each section
// anchor starts on.
type BodyLayout struct {
	View    string
	Anchors map[string]int
}

// Line returns the first line of the section for href.
func (l BodyLayout) Line(href string) (int, bool) {
	n, ok := l.Anchors[href]
	return n, ok
}

// RenderBody lays out the mission grid, ticker, spotlight and page footer.
func RenderBody(c *dashboard.Content, ticker *Ticker, width, year int) BodyLayout {
	width = max(width, MinTerminalWidth)
	gap := strings.Repeat("\n", SectionGap)
	anchors := make(map[string]int, 3)

	var sections []string
	line := 0
	add := func(anchor, s string) {
		if anchor != "" {
			anchors[anchor] = line
		}
		sections = append(sections, s)
		line += lipgloss.Height(s) + SectionGap
	}

	add(AnchorOverview, RenderMissionGrid(c.Mission, c.KPIs, width))
	add(AnchorTicker, RenderTickerBand(ticker, width))
	add(AnchorImpact, RenderSpotlight(c.Spotlight, width))
	add("", PageFooterStyle.Width(width).Align(lipgloss.Center).Render(c.Copyright(year)))

	return BodyLayout{
		View:    strings.Join(sections, "\n"+gap),
		Anchors: anchors,
	}
}

// RenderMissionGrid draws the mission card above the KPI cards.
func RenderMissionGrid(m dashboard.Mission, kpis []dashboard.KPI, width int) string {
	inner := width - 2
	mission := MissionStyle.Width(inner).Render(
		MissionBadgeStyle.Render("● "+strings.ToUpper(m.Badge)) + "\n\n" +
			lipgloss.NewStyle().Bold(true).Render(m.Headline) + " " + MissionHighlight.Render(m.Highlight) + "\n" +
			m.Body + "\n\n" +
			strings.Join(m.Audiences, "  ·  "),
	)

	cols := columnsFor(width, len(kpis))
	cardWidth := (inner - (cols - 1)) / cols
	var rows []string
	for start := 0; start < len(kpis); start += cols {
		var cards []string
		for _, k := range kpis[start:min(start+cols, len(kpis))] {
			cards = append(cards, kpiCard(k, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cards)...))
	}

	return indent(lipgloss.JoinVertical(lipgloss.Left, append([]string{mission}, rows...)...))
}

func kpiCard(k dashboard.KPI, width int) string {
	return card(k.Accent, width,
		CardTitleStyle.Render(strings.ToUpper(k.Title)) + "\n" +
			CardValueStyle.Foreground(AccentColor(k.Accent)).Render(k.Value) + "\n" +
			CardSubtextStyle.Render(k.Subtext),
	)
}

// card frames content in an accent-colored box exactly width cells wide.
func card(accent string, width int, content string) string {
	style := CardStyle.BorderForeground(AccentColor(accent))
	inner := max(width-style.GetHorizontalFrameSize(), 1)
	return style.Render(lipgloss.NewStyle().Width(inner).Render(content))
}

// RenderTickerBand draws the ticker between two rules.
func RenderTickerBand(t *Ticker, width int) string {
	rule := HeaderRuleStyle.Render(strings.Repeat("─", width))
	return rule + "\n" + t.View(width) + "\n" + rule
}

// RenderSpotlight draws the research highlights.
func RenderSpotlight(s dashboard.Spotlight, width int) string {
	inner := width - 2
	head := SectionTitleStyle.Render(s.Title) + "\n" + SectionSubStyle.Render(s.Subtitle)

	cols := columnsFor(width, len(s.Cards))
	cardWidth := (inner - (cols - 1)) / cols
	var rows []string
	for start := 0; start < len(s.Cards); start += cols {
		var cards []string
		for _, c := range s.Cards[start:min(start+cols, len(s.Cards))] {
			cards = append(cards, spotlightCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cards)...))
	}

	return indent(lipgloss.JoinVertical(lipgloss.Left, append([]string{head, ""}, rows...)...))
}

func spotlightCard(c dashboard.Card, width int) string {
	return card(c.Accent, width,
		SDGBadgeStyle.Render(c.SDG) + "\n\n" +
			CardValueStyle.Render(c.Title) + "\n" +
			CardSubtextStyle.Render(c.Faculty) + "\n\n" +
			CardTitleStyle.Render(c.Abstract) + "\n\n" +
			CaseStudyLinkStyle.Render("Read Case Study →"),
	)
}

// ScrollTopBadge is the floating scroll-to-top affordance.
func ScrollTopBadge() string {
	return ScrollTopStyle.Render("↑ Top")
}

// columnsFor picks how many cards fit side by side.
func columnsFor(width, n int) int {
	switch {
	case n == 0:
		return 1
	case width >= 120:
		return n
	case width >= 80:
		return min(n, 2)
	default:
		return 1
	}
}

func spaced(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, b)
	}
	return out
}

func indent(s string) string {
	return lipgloss.NewStyle().PaddingLeft(1).Render(s)
}
