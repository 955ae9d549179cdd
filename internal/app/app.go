// Package app is the dashboard's Bubble Tea model: it owns the header
// controller, the scrolling body and the event sources the header behaviors
// subscribe to, and routes keys and mouse input between them.
package app

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/google/uuid"

	"github.com/gies-analytics/sustaindash/internal/clickout"
	"github.com/gies-analytics/sustaindash/internal/config"
	"github.com/gies-analytics/sustaindash/internal/dashboard"
	"github.com/gies-analytics/sustaindash/internal/event"
	"github.com/gies-analytics/sustaindash/internal/filter"
	"github.com/gies-analytics/sustaindash/internal/header"
	"github.com/gies-analytics/sustaindash/internal/logger"
	"github.com/gies-analytics/sustaindash/internal/nav"
	"github.com/gies-analytics/sustaindash/internal/scroll"
	"github.com/gies-analytics/sustaindash/internal/slider"
	"github.com/gies-analytics/sustaindash/internal/store"
	"github.com/gies-analytics/sustaindash/internal/theme"
	"github.com/gies-analytics/sustaindash/internal/ui"
)

// scrollFrameInterval paces the scroll-to-top animation.
const scrollFrameInterval = 16 * time.Millisecond

// wheelStep is how many body rows one wheel notch scrolls.
const wheelStep = 3

// Input identifies which text input has keyboard focus.
type Input int

const (
	InputNone Input = iota
	InputSearch
	InputMobileSearch
	InputFilterQuery
)

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Store   store.Store        // nil keeps the theme in memory
	Content *dashboard.Content // nil loads the embedded content
	Now     func() time.Time   // clock for the footer year, defaults to time.Now
}

// Model is the main Bubble Tea model
type Model struct {
	cfg     *config.Config
	log     *slog.Logger
	runID   string
	content *dashboard.Content
	year    int

	header *header.Controller
	footer *ui.Footer
	ticker *ui.Ticker

	body       viewport.Model
	bodyLayout ui.BodyLayout

	scrollBus  *event.Bus[int]
	pointerBus *event.Bus[uv.Position]
	watcher    *scroll.Watcher
	frames     []int // pending scroll-to-top offsets

	search       textinput.Model
	mobileSearch textinput.Model
	filterQuery  textinput.Model
	input        Input

	mobileRows []nav.FlatRow
	mobileRow  int

	width  int
	height int
}

// TickerTickMsg advances the data ticker.
type TickerTickMsg time.Time

// ScrollFrameMsg plays the next frame of the scroll-to-top animation.
type ScrollFrameMsg struct{}

// New creates the model. The theme is resolved from the store immediately;
// the terminal's background color is applied later if nothing was stored.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	content := opts.Content
	if content == nil {
		var err error
		if content, err = dashboard.Load(); err != nil {
			logger.Error("Failed to load dashboard content: %v", err)
			content = &dashboard.Content{}
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	runID := uuid.New().String()
	log := logger.WithSession(runID)

	pref := theme.New(opts.Store, ui.SetMode)
	pref.Initialize(nil)

	bounds := slider.Bounds{Min: cfg.Years.Min, Max: cfg.Years.Max}
	entries := nav.DefaultEntries()
	panel := filter.NewPanel(bounds, cfg.Years.SingleDefault)

	m := &Model{
		cfg:          cfg,
		log:          log,
		runID:        runID,
		content:      content,
		year:         now().Year(),
		header:       header.New(pref, nav.NewMenu(entries), panel, cfg.Layout.CompactWidth),
		footer:       ui.NewFooter(),
		ticker:       ui.NewTicker(content.Ticker),
		body:         viewport.New(),
		scrollBus:    event.NewBus[int](),
		pointerBus:   event.NewBus[uv.Position](),
		watcher:      scroll.New(cfg.Scroll.Threshold),
		search:       newInput("Search...", ui.SearchWidth),
		mobileSearch: newInput("Search research...", 0),
		filterQuery:  newInput("Search filters...", ui.FilterPanelWidth-10),
		mobileRows:   nav.Flatten(entries),
	}
	m.body.MouseWheelEnabled = false

	m.watcher.Attach(m.scrollBus)
	panel.AttachGuard(m.pointerBus, m.filterRegions)

	log.Info("Dashboard model created",
		"theme", pref.Mode().String(),
		"persistent", pref.Persistent(),
		"compact_width", cfg.Layout.CompactWidth)
	return m
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	if width > 0 {
		ti.SetWidth(width)
	}
	return ti
}

// RunID returns the id attached to this run's log lines.
func (m *Model) RunID() string {
	return m.runID
}

// Header returns the header controller.
func (m *Model) Header() *header.Controller {
	return m.header
}

// Watcher returns the scroll watcher.
func (m *Model) Watcher() *scroll.Watcher {
	return m.watcher
}

// BodyOffset returns the body viewport's top row.
func (m *Model) BodyOffset() int {
	return m.body.YOffset()
}

// FocusedInput returns which text input has focus.
func (m *Model) FocusedInput() Input {
	return m.input
}

// Close releases the model's subscriptions. Called once the program exits.
func (m *Model) Close() {
	m.watcher.Detach()
	m.header.Filter().Detach()
}

// filterRegions reports the filter panel and its trigger as currently laid
// out, for the click-outside guard.
func (m *Model) filterRegions() []clickout.Region {
	f := m.frame()
	var regions []clickout.Region
	if f.filter != nil {
		regions = append(regions, clickout.Region{ID: filter.RegionPanel, Rect: f.filter.Rect})
	}
	if r, ok := f.header.Button(ui.RegionFilterButton); ok {
		regions = append(regions, clickout.Region{ID: filter.RegionTrigger, Rect: r})
	}
	return regions
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.RequestBackgroundColor, m.tickerCmd())
}

func (m *Model) tickerCmd() tea.Cmd {
	if !m.cfg.Ticker.Enabled {
		return nil
	}
	return tea.Tick(m.cfg.TickerInterval(), func(t time.Time) tea.Msg {
		return TickerTickMsg(t)
	})
}

func scrollFrameCmd() tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return ScrollFrameMsg{}
	})
}
