// Package dashboard holds the static display data rendered below the header.
package dashboard

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Mission is the full-width introduction card.
type Mission struct {
	Badge     string   `yaml:"badge"`
	Headline  string   `yaml:"headline"`
	Highlight string   `yaml:"highlight"`
	Body      string   `yaml:"body"`
	Audiences []string `yaml:"audiences"`
}

// KPI is one headline metric card.
type KPI struct {
	Title   string `yaml:"title"`
	Value   string `yaml:"value"`
	Subtext string `yaml:"subtext"`
	Accent  string `yaml:"accent"`
}

// TickerPoint is one label/value pair in the scrolling ticker.
type TickerPoint struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Card is a research highlight.
type Card struct {
	SDG      string `yaml:"sdg"`
	Title    string `yaml:"title"`
	Faculty  string `yaml:"faculty"`
	Abstract string `yaml:"abstract"`
	Accent   string `yaml:"accent"`
}

// Spotlight is the research highlights section.
type Spotlight struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Cards    []Card `yaml:"cards"`
}

// Footer is the page footer.
type Footer struct {
	Owner string `yaml:"owner"`
}

// Content is everything the dashboard body displays.
type Content struct {
	Mission   Mission       `yaml:"mission"`
	KPIs      []KPI         `yaml:"kpis"`
	Ticker    []TickerPoint `yaml:"ticker"`
	Spotlight Spotlight     `yaml:"spotlight"`
	Footer    Footer        `yaml:"footer"`
}

// Copyright returns the footer line for year.
func (c *Content) Copyright(year int) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, c.Footer.Owner)
}

var (
	loadOnce sync.Once
	loaded   *Content
	loadErr  error
)

// Load parses the embedded content once and returns the shared result.
func Load() (*Content, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(contentYAML)
	})
	return loaded, loadErr
}

// Parse decodes content from YAML.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing dashboard content: %w", err)
	}
	return &c, nil
}
