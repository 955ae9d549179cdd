package cmd

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	huh "charm.land/huh/v2"

	"github.com/gies-analytics/sustaindash/internal/store"
	"github.com/gies-analytics/sustaindash/internal/theme"
)

func newPreference(t *testing.T) (*theme.Preference, *store.Memory) {
	t.Helper()
	s := store.NewMemory()
	p := theme.New(s, nil)
	p.Initialize(nil)
	return p, s
}

func TestThemeGet(t *testing.T) {
	p, _ := newPreference(t)
	var out bytes.Buffer

	if err := themeGet(&out, p); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "light (not set") {
		t.Errorf("output = %q, want the unset default", out.String())
	}

	p.Set(theme.Dark)
	out.Reset()
	themeGet(&out, p)
	if out.String() != "dark\n" {
		t.Errorf("output = %q, want %q", out.String(), "dark\n")
	}
}

func TestThemeSet(t *testing.T) {
	p, s := newPreference(t)
	var out bytes.Buffer

	if err := themeSet(&out, p, "dark"); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := s.Get(theme.StorageKey); v != "dark" {
		t.Errorf("stored = %q, want dark", v)
	}
	if out.String() != "Theme set to dark\n" {
		t.Errorf("output = %q", out.String())
	}

	if err := themeSet(&out, p, "sepia"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestThemeToggleAndReset(t *testing.T) {
	p, s := newPreference(t)
	var out bytes.Buffer

	themeToggle(&out, p)
	if v, _, _ := s.Get(theme.StorageKey); v != "dark" {
		t.Fatalf("stored after toggle = %q, want dark", v)
	}

	if err := themeReset(&out, p); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(theme.StorageKey); ok {
		t.Error("reset should delete the stored theme")
	}
	if p.Mode() != theme.Light {
		t.Errorf("mode after reset = %s, want light", p.Mode())
	}
}

type failingStore struct{ *store.Memory }

func (failingStore) Set(string, string) error { return stderrors.New("read-only") }

func TestThemeSet_UnsavedIsAnError(t *testing.T) {
	p := theme.New(failingStore{store.NewMemory()}, nil)
	p.Initialize(nil)

	var out bytes.Buffer
	if err := themeSet(&out, p, "dark"); err == nil {
		t.Error("a change that was not saved should be reported")
	}
}

func TestThemePick(t *testing.T) {
	p, s := newPreference(t)
	var out bytes.Buffer

	var offered string
	err := themePick(&out, p, func(selected *string) error {
		offered = *selected
		*selected = "dark"
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if offered != "light" {
		t.Errorf("picker started at %q, want the active light", offered)
	}
	if v, _, _ := s.Get(theme.StorageKey); v != "dark" {
		t.Errorf("stored = %q, want dark", v)
	}
}

func TestThemePick_Cancelled(t *testing.T) {
	p, s := newPreference(t)
	var out bytes.Buffer

	err := themePick(&out, p, func(*string) error { return huh.ErrUserAborted })
	if err != nil {
		t.Fatalf("cancel should not be an error, got %v", err)
	}
	if _, ok, _ := s.Get(theme.StorageKey); ok {
		t.Error("cancel must not save anything")
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPickerTheme(t *testing.T) {
	if pickerTheme() == nil {
		t.Error("picker theme is nil")
	}
}

func TestThemeSetCmd_WritesConfiguredStore(t *testing.T) {
	useConfig(t, "file")

	var out bytes.Buffer
	themeSetCmd.SetOut(&out)
	if err := themeSetCmd.RunE(themeSetCmd, []string{"dark"}); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	themeGetCmd.SetOut(&out)
	if err := themeGetCmd.RunE(themeGetCmd, nil); err != nil {
		t.Fatal(err)
	}
	if out.String() != "dark\n" {
		t.Errorf("theme get = %q, want dark", out.String())
	}
}
