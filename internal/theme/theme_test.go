package theme

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gies-analytics/sustaindash/internal/errors"
	"github.com/gies-analytics/sustaindash/internal/store"
)

// brokenStore fails every operation, like a read-only or disabled backend.
type brokenStore struct {
	gets, sets int
	failGet    bool
}

var errBroken = stderrors.New("storage disabled")

func (b *brokenStore) Get(string) (string, bool, error) {
	b.gets++
	if b.failGet {
		return "", false, errBroken
	}
	return "", false, nil
}

func (b *brokenStore) Set(string, string) error {
	b.sets++
	return errBroken
}

func (b *brokenStore) Delete(string) error { return errBroken }
func (b *brokenStore) Close() error        { return nil }

func modePtr(m Mode) *Mode { return &m }

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{" Dark ", Dark, false},
		{"LIGHT", Light, false},
		{"", Light, true},
		{"sepia", Light, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.KindInvalid) {
			t.Errorf("ParseMode(%q) err kind = %v, want invalid", tt.in, errors.GetKind(err))
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		stored, system *Mode
		want           Mode
	}{
		{"nothing known", nil, nil, Light},
		{"system only", nil, modePtr(Dark), Dark},
		{"stored wins over system", modePtr(Light), modePtr(Dark), Light},
		{"stored only", modePtr(Dark), nil, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.stored, tt.system); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreference_SystemDarkThenToggle(t *testing.T) {
	s := store.NewMemory()
	p := New(s, nil)

	if got := p.Initialize(modePtr(Dark)); got != Dark {
		t.Fatalf("Initialize = %v, want Dark", got)
	}
	if got := p.Toggle(); got != Light {
		t.Fatalf("Toggle = %v, want Light", got)
	}

	v, ok, _ := s.Get(StorageKey)
	if !ok || v != "light" {
		t.Errorf("store holds (%q, %v), want light", v, ok)
	}
}

func TestPreference_ToggleTwiceRestoresOriginal(t *testing.T) {
	for _, start := range []Mode{Light, Dark} {
		s := store.NewMemory()
		s.Set(StorageKey, start.String())

		p := New(s, nil)
		p.Initialize(nil)
		p.Toggle()
		p.Toggle()

		if p.Mode() != start {
			t.Errorf("start %v: mode after two toggles = %v", start, p.Mode())
		}
		if v, _, _ := s.Get(StorageKey); v != start.String() {
			t.Errorf("start %v: store holds %q after two toggles", start, v)
		}
	}
}

func TestPreference_StoredValueWins(t *testing.T) {
	s := store.NewMemory()
	s.Set(StorageKey, "light")

	p := New(s, nil)
	if got := p.Initialize(modePtr(Dark)); got != Light {
		t.Errorf("Initialize = %v, want stored Light", got)
	}

	p.ApplySystem(Dark)
	if p.Mode() != Light {
		t.Error("a late system signal must not override a stored choice")
	}
}

func TestPreference_InvalidStoredValueFallsBack(t *testing.T) {
	s := store.NewMemory()
	s.Set(StorageKey, "purple")

	p := New(s, nil)
	if got := p.Initialize(modePtr(Dark)); got != Dark {
		t.Errorf("Initialize = %v, want system Dark", got)
	}
	if !p.Persistent() {
		t.Error("a bad stored value is not a storage failure")
	}
}

func TestPreference_LateSystemSignal(t *testing.T) {
	p := New(store.NewMemory(), nil)
	p.Initialize(nil)
	if p.Mode() != Light {
		t.Fatalf("default mode = %v, want Light", p.Mode())
	}

	p.ApplySystem(Dark)
	if p.Mode() != Dark {
		t.Errorf("mode after system signal = %v, want Dark", p.Mode())
	}

	p.Set(Light)
	p.ApplySystem(Dark)
	if p.Mode() != Light {
		t.Error("system signal overrode an explicit Set")
	}
}

func TestPreference_ApplyCallback(t *testing.T) {
	var applied []Mode
	p := New(store.NewMemory(), func(m Mode) { applied = append(applied, m) })

	p.Initialize(nil)
	p.Toggle()
	p.Set(Dark)
	p.ApplySystem(Light)

	want := []Mode{Light, Dark, Dark}
	if diff := cmp.Diff(want, applied); diff != "" {
		t.Errorf("apply calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPreference_ReadFailureDegrades(t *testing.T) {
	b := &brokenStore{failGet: true}
	p := New(b, nil)

	if got := p.Initialize(modePtr(Dark)); got != Dark {
		t.Errorf("Initialize = %v, want system Dark", got)
	}
	if p.Persistent() {
		t.Fatal("read failure should switch to memory-only")
	}

	p.Toggle()
	if p.Mode() != Light {
		t.Errorf("Toggle in memory-only mode = %v, want Light", p.Mode())
	}
	if b.sets != 0 {
		t.Errorf("degraded preference still wrote to the store %d times", b.sets)
	}
}

func TestPreference_WriteFailureDegrades(t *testing.T) {
	b := &brokenStore{}
	p := New(b, nil)
	p.Initialize(nil)

	p.Toggle()
	p.Toggle()
	p.Toggle()

	if p.Mode() != Dark {
		t.Errorf("mode after three toggles = %v, want Dark", p.Mode())
	}
	if b.sets != 1 {
		t.Errorf("store written %d times, want 1 before degrading", b.sets)
	}
	if p.Persistent() {
		t.Error("write failure should switch to memory-only")
	}
}

func TestPreference_NilStore(t *testing.T) {
	p := New(nil, nil)
	if p.Persistent() {
		t.Fatal("nil store cannot be persistent")
	}
	p.Initialize(nil)
	if p.Toggle() != Dark || !p.IsDark() {
		t.Error("Toggle should work without a store")
	}
}

func TestPreference_ResetForgetsChoice(t *testing.T) {
	s := store.NewMemory()
	p := New(s, nil)
	p.Initialize(nil)
	p.Set(Dark)
	if !p.Stored() {
		t.Fatal("Set should mark the mode as stored")
	}

	if got := p.Reset(modePtr(Light)); got != Light {
		t.Errorf("Reset = %v, want system Light", got)
	}
	if p.Stored() {
		t.Error("Reset should clear the stored flag")
	}
	if _, ok, _ := s.Get(StorageKey); ok {
		t.Error("Reset should delete the stored value")
	}

	p.ApplySystem(Dark)
	if p.Mode() != Dark {
		t.Error("after Reset the system preference applies again")
	}
}
