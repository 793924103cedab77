package week

import (
	"testing"
	"time"

	"hornethive-server/internal/model"
)

func TestPhaseAt(t *testing.T) {
	// Mon 2026-08-24 .. Sun 2026-08-30
	cases := []struct {
		day  int
		want string
	}{
		{24, model.PhaseNotAvailable}, // Monday
		{25, model.PhaseNotAvailable},
		{26, model.PhaseNotAvailable},
		{27, model.PhaseNotAvailable}, // Thursday
		{28, model.PhaseVotingOpen},   // Friday
		{29, model.PhaseResultsVisible},
		{30, model.PhaseResultsVisible}, // Sunday
	}
	for _, c := range cases {
		for _, hm := range [][2]int{{0, 0}, {12, 30}, {23, 59}} {
			at := time.Date(2026, 8, c.day, hm[0], hm[1], 0, 0, time.Local)
			if got := PhaseAt(at); got != c.want {
				t.Errorf("PhaseAt(%v) = %q, want %q", at, got, c.want)
			}
		}
	}
}

func TestPhaseAtDayBoundary(t *testing.T) {
	// Friday 00:00:00 exactly is voting_open; one nanosecond before is not.
	friday := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	if got := PhaseAt(friday); got != model.PhaseVotingOpen {
		t.Fatalf("Friday midnight: got %q", got)
	}
	if got := PhaseAt(friday.Add(-time.Nanosecond)); got != model.PhaseNotAvailable {
		t.Fatalf("just before Friday: got %q", got)
	}
	// Saturday 00:00:00 flips to results.
	sat := time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)
	if got := PhaseAt(sat); got != model.PhaseResultsVisible {
		t.Fatalf("Saturday midnight: got %q", got)
	}
}

func TestIDStableWithinWeek(t *testing.T) {
	mon := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	want := ID(mon)
	for d := 0; d < 7; d++ {
		at := mon.AddDate(0, 0, d).Add(13 * time.Hour)
		if got := ID(at); got != want {
			t.Errorf("ID(%v) = %q, want %q", at, got, want)
		}
	}
	next := mon.AddDate(0, 0, 7)
	if got := ID(next); got == want {
		t.Errorf("ID did not change across week boundary: %q", got)
	}
	prev := mon.Add(-time.Nanosecond)
	if got := ID(prev); got == want {
		t.Errorf("ID did not differ before week start: %q", got)
	}
}

func TestIDStableAcrossYearBoundary(t *testing.T) {
	// Mon 2025-12-29 .. Sun 2026-01-04 is one ISO week (2026-W01); the
	// identifier must not change mid-week on January 1.
	mon := time.Date(2025, 12, 29, 10, 0, 0, 0, time.Local)
	thu := time.Date(2026, 1, 1, 10, 0, 0, 0, time.Local)
	if ID(mon) != ID(thu) {
		t.Fatalf("week id changed across Jan 1: %q vs %q", ID(mon), ID(thu))
	}
	if got := ID(thu); got != "2026-W01" {
		t.Fatalf("ID = %q, want 2026-W01", got)
	}
}

func TestBounds(t *testing.T) {
	for d := 24; d <= 30; d++ {
		at := time.Date(2026, 8, d, 15, 4, 5, 0, time.Local)
		start, end := Bounds(at)
		wantStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
		wantEnd := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
		if !start.Equal(wantStart) || !end.Equal(wantEnd) {
			t.Errorf("Bounds(%v) = [%v, %v), want [%v, %v)", at, start, end, wantStart, wantEnd)
		}
	}
}

func TestContains(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	start, end := Bounds(now)
	if !Contains(now, start) {
		t.Error("week start should be inside the window")
	}
	if Contains(now, end) {
		t.Error("week end is exclusive")
	}
	if Contains(now, start.Add(-time.Second)) {
		t.Error("instant before the week should be outside")
	}
	if !Contains(now, end.Add(-time.Second)) {
		t.Error("last second of the week should be inside")
	}
}

func TestIsCleanupDay(t *testing.T) {
	if !IsCleanupDay(time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)) {
		t.Error("Monday should be cleanup day")
	}
	if IsCleanupDay(time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)) {
		t.Error("Friday should not be cleanup day")
	}
}
