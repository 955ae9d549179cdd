package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40, false)

	if ctx.TerminalWidth != 120 || ctx.TerminalHeight != 40 {
		t.Errorf("terminal = %dx%d, want 120x40", ctx.TerminalWidth, ctx.TerminalHeight)
	}
	if ctx.HeaderHeight != DesktopHeaderHeight {
		t.Errorf("HeaderHeight = %d, want %d", ctx.HeaderHeight, DesktopHeaderHeight)
	}
	if want := 40 - DesktopHeaderHeight - FooterHeight; ctx.BodyHeight != want {
		t.Errorf("BodyHeight = %d, want %d", ctx.BodyHeight, want)
	}

	ctx.UpdateTerminalSize(80, 30, true)
	if ctx.HeaderHeight != CompactHeaderHeight {
		t.Errorf("compact HeaderHeight = %d, want %d", ctx.HeaderHeight, CompactHeaderHeight)
	}
	if want := 30 - CompactHeaderHeight - FooterHeight; ctx.BodyHeight != want {
		t.Errorf("compact BodyHeight = %d, want %d", ctx.BodyHeight, want)
	}
}

func TestViewContext_MinimumSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(5, 2, true)

	if ctx.TerminalWidth != MinTerminalWidth || ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("terminal = %dx%d, want the minimum %dx%d",
			ctx.TerminalWidth, ctx.TerminalHeight, MinTerminalWidth, MinTerminalHeight)
	}
	if ctx.BodyHeight <= 0 {
		t.Errorf("BodyHeight = %d, want positive", ctx.BodyHeight)
	}
}

func TestViewContext_ConcurrentUpdates(t *testing.T) {
	ctx := GetViewContext()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+i, 24+i, i%2 == 0)
			ctx.Snapshot()
		}(i)
	}
	wg.Wait()
}
