// Package theme owns the process-wide light/dark preference.
//
// Resolution order is stored value, then the terminal's reported background,
// then Light. Every change is written through to the preference store; if the
// store fails the preference keeps working in memory for the rest of the run.
package theme

import (
	"strings"

	"github.com/gies-analytics/sustaindash/internal/errors"
	"github.com/gies-analytics/sustaindash/internal/logger"
	"github.com/gies-analytics/sustaindash/internal/store"
)

// StorageKey is the store key holding the serialized mode.
const StorageKey = "theme"

// Mode is the active color scheme.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode accepts "light" or "dark", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, errors.InvalidThemeMode(s)
}

// Resolve picks the effective mode from an optional stored value and an
// optional system preference.
func Resolve(stored, system *Mode) Mode {
	if stored != nil {
		return *stored
	}
	if system != nil {
		return *system
	}
	return Light
}

// Preference is the in-memory flag plus its write-through store.
type Preference struct {
	store      store.Store
	apply      func(Mode)
	mode       Mode
	stored     bool
	persistent bool
}

// New creates a preference backed by s. apply is called with the new mode on
// every change (and on Initialize); it may be nil. A nil store starts the
// preference in memory-only mode.
func New(s store.Store, apply func(Mode)) *Preference {
	return &Preference{store: s, apply: apply, persistent: s != nil}
}

// Initialize reads the store once and resolves the starting mode against the
// system preference, which may be nil when unknown.
func (p *Preference) Initialize(system *Mode) Mode {
	var stored *Mode
	if p.persistent {
		v, ok, err := p.store.Get(StorageKey)
		switch {
		case err != nil:
			p.degrade(err)
		case ok:
			if m, err := ParseMode(v); err == nil {
				stored = &m
			} else {
				logger.Warn("Ignoring stored theme %q: %v", v, err)
			}
		}
	}

	p.stored = stored != nil
	p.mode = Resolve(stored, system)
	logger.Debug("Theme initialized: mode=%s stored=%v system=%v", p.mode, p.stored, system != nil)
	p.notify()
	return p.mode
}

// ApplySystem handles a system preference that arrives after Initialize. It
// only takes effect while the user has never chosen a mode.
func (p *Preference) ApplySystem(system Mode) {
	if p.stored || p.mode == system {
		return
	}
	p.mode = system
	logger.Debug("Theme follows system preference: %s", system)
	p.notify()
}

// Set makes m the active mode and writes it to the store.
func (p *Preference) Set(m Mode) {
	p.mode = m
	p.stored = true
	if p.persistent {
		if err := p.store.Set(StorageKey, m.String()); err != nil {
			p.degrade(err)
		}
	}
	p.notify()
}

// Reset forgets the stored choice and resolves again against system.
func (p *Preference) Reset(system *Mode) Mode {
	if p.persistent {
		if err := p.store.Delete(StorageKey); err != nil {
			p.degrade(err)
		}
	}
	p.stored = false
	p.mode = Resolve(nil, system)
	p.notify()
	return p.mode
}

// Toggle flips the active mode and returns it.
func (p *Preference) Toggle() Mode {
	p.Set(p.mode.Flip())
	return p.mode
}

// Mode returns the active mode.
func (p *Preference) Mode() Mode { return p.mode }

// IsDark reports whether the active mode is Dark.
func (p *Preference) IsDark() bool { return p.mode == Dark }

// Stored reports whether the active mode was chosen by the user rather than
// derived from the system or the default.
func (p *Preference) Stored() bool { return p.stored }

// Persistent reports whether changes still reach the store.
func (p *Preference) Persistent() bool { return p.persistent }

func (p *Preference) degrade(err error) {
	p.persistent = false
	logger.Warn("Theme preference store unavailable, continuing in memory: %v", err)
}

func (p *Preference) notify() {
	if p.apply != nil {
		p.apply(p.mode)
	}
}
