package state

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/litescript/ls-skybox/internal/astro"
	"github.com/litescript/ls-skybox/internal/logging"
)

func testCatalog() astro.StarCatalog {
	return astro.StarCatalog{Stars: []astro.Star{
		astro.ReferenceStar(),
		astro.NewCartesianStar("Here", astro.Vec3{}, 1),
		astro.NewEquatorialStar("Sirius", 101.287, -16.716, 8.6, 3.42),
	}}
}

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultConfig())

	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.HasData() {
		t.Error("HasData should be false initially")
	}

	snap := m.Snapshot()
	if len(snap.Stars) != 0 {
		t.Errorf("Stars = %d, want 0", len(snap.Stars))
	}
	if _, ok := snap.Focused(); ok {
		t.Error("Focused should be false with no stars")
	}
}

func TestNewManager_NilLogger(t *testing.T) {
	m := NewManager(Config{})
	m.Load(testCatalog())

	if !m.HasData() {
		t.Error("HasData should be true after Load")
	}
}

func TestManager_Load(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Load(testCatalog())

	snap := m.Snapshot()
	if len(snap.Stars) != 3 {
		t.Fatalf("Stars = %d, want 3", len(snap.Stars))
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt should be set")
	}
	if snap.Failed() != 1 {
		t.Errorf("Failed = %d, want 1", snap.Failed())
	}

	ref := snap.Stars[0]
	if !ref.OK() {
		t.Fatalf("Reference projection failed: %v", ref.Err)
	}
	if ref.Projection.Direction.Sub(astro.UnitVector(astro.Vec3{X: 1, Y: 3, Z: 5})).Norm() > 1e-12 {
		t.Errorf("Reference direction = %v", ref.Projection.Direction)
	}

	if !errors.Is(snap.Stars[1].Err, astro.ErrZeroVector) {
		t.Errorf("Here err = %v, want ErrZeroVector", snap.Stars[1].Err)
	}
}

func TestManager_LoadLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.LevelWarn)
	logger.SetOutput(&buf)

	cfg := DefaultConfig()
	cfg.Logger = logger
	m := NewManager(cfg)
	m.Load(testCatalog())

	out := buf.String()
	if !strings.Contains(out, "Star Here") {
		t.Errorf("log output missing failed star: %q", out)
	}
	if strings.Contains(out, "Loaded") {
		t.Errorf("info line written at warn level: %q", out)
	}
}

func TestManager_Focus(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Load(testCatalog())

	if !m.SetFocus(2) {
		t.Fatal("SetFocus(2) = false")
	}
	e, ok := m.Snapshot().Focused()
	if !ok || e.Star.Name != "Sirius" {
		t.Errorf("Focused = %v, %v, want Sirius", e.Star.Name, ok)
	}

	if m.SetFocus(3) {
		t.Error("SetFocus(3) should fail")
	}
	if m.SetFocus(-1) {
		t.Error("SetFocus(-1) should fail")
	}
	if m.Snapshot().Focus != 2 {
		t.Errorf("Focus changed after failed SetFocus: %d", m.Snapshot().Focus)
	}
}

func TestManager_MoveFocusClamps(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.MoveFocus(1) // no stars: no-op

	m.Load(testCatalog())

	tests := []struct {
		delta int
		want  int
	}{
		{1, 1},
		{1, 2},
		{1, 2},
		{-5, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		m.MoveFocus(tt.delta)
		if got := m.Snapshot().Focus; got != tt.want {
			t.Errorf("MoveFocus(%d): focus = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestManager_FocusByName(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Load(testCatalog())

	if !m.FocusByName("Sirius") {
		t.Fatal("FocusByName(Sirius) = false")
	}
	if m.Snapshot().Focus != 2 {
		t.Errorf("Focus = %d, want 2", m.Snapshot().Focus)
	}
	if m.FocusByName("Vega") {
		t.Error("FocusByName(Vega) should fail")
	}
}

func TestManager_LoadResetsFocus(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Load(testCatalog())
	m.SetFocus(2)

	m.Load(astro.StarCatalog{Stars: []astro.Star{astro.ReferenceStar()}})
	if m.Snapshot().Focus != 0 {
		t.Errorf("Focus = %d, want 0 after reload", m.Snapshot().Focus)
	}
}

func TestManager_Snapshot_IsCopy(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Load(testCatalog())

	snap := m.Snapshot()
	snap.Stars[0].Star.Name = "Modified"

	if m.Snapshot().Stars[0].Star.Name == "Modified" {
		t.Error("Snapshot modification affected manager state")
	}
}

func TestManager_Events(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Load(testCatalog())
	m.SetFocus(1)

	events := m.Snapshot().Events
	want := []EventType{EventProjectionFailed, EventLoaded, EventFocus}
	if len(events) != len(want) {
		t.Fatalf("events = %d, want %d", len(events), len(want))
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("events[%d] = %q, want %q", i, events[i].Type, typ)
		}
	}
	if events[0].Star != "Here" {
		t.Errorf("failed event star = %q, want Here", events[0].Star)
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 5
	m := NewManager(cfg)
	m.Load(testCatalog())

	for i := 0; i < 10; i++ {
		m.SetFocus(i % 3)
	}

	events := m.RecentEvents(100)
	if len(events) != 5 {
		t.Errorf("events count = %d, want 5 (max)", len(events))
	}

	// Verify events are ordered chronologically
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("events not in chronological order at index %d", i)
		}
	}

	if got := m.RecentEvents(2); len(got) != 2 {
		t.Errorf("RecentEvents(2) = %d events", len(got))
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())

	var wg sync.WaitGroup
	iterations := 100

	// Writer goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			m.Load(testCatalog())
			m.MoveFocus(1)
		}
	}()

	// Reader goroutines
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				snap := m.Snapshot()
				_, _ = snap.Focused()
				_ = m.HasData()
				_ = m.RecentEvents(3)
			}
		}()
	}

	wg.Wait()
}
