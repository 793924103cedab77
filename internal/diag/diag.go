// Package diag records bootstrap phases and failures so startup problems can
// be reported with timing context. A Boot value is created in main and passed
// where needed; there is intentionally no package-level instance, so tests
// can run in parallel with their own recorders.
package diag

import (
	"fmt"
	"time"
)

type Phase struct {
	Name    string        `json:"phase"`
	Elapsed time.Duration `json:"elapsed"`
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
}

type Boot struct {
	phases []Phase
	start  time.Time
	now    func() time.Time
}

// NewBoot starts a recorder. now may be nil, defaulting to time.Now.
func NewBoot(now func() time.Time) *Boot {
	if now == nil {
		now = time.Now
	}
	return &Boot{start: now(), now: now}
}

// RecordPhase appends a phase outcome. err may be nil.
func (b *Boot) RecordPhase(name string, err error) {
	p := Phase{Name: name, Elapsed: b.now().Sub(b.start), Success: err == nil}
	if err != nil {
		p.Error = err.Error()
	}
	b.phases = append(b.phases, p)
}

// Snapshot returns a copy of the recorded phases and the total elapsed time.
func (b *Boot) Snapshot() ([]Phase, time.Duration) {
	out := make([]Phase, len(b.phases))
	copy(out, b.phases)
	return out, b.now().Sub(b.start)
}

// Summary renders a one-line description of the boot so far, pointing at the
// last failure if there was one.
func (b *Boot) Summary() string {
	if len(b.phases) == 0 {
		return "no boot phases recorded"
	}
	var lastFail *Phase
	for i := range b.phases {
		if !b.phases[i].Success {
			lastFail = &b.phases[i]
		}
	}
	if lastFail != nil {
		return fmt.Sprintf("failed at %s (%s): %s", lastFail.Name, lastFail.Elapsed, lastFail.Error)
	}
	last := b.phases[len(b.phases)-1]
	return fmt.Sprintf("completed %d phases in %s, last: %s", len(b.phases), b.now().Sub(b.start), last.Name)
}

// Reset discards recorded phases and restarts the clock.
func (b *Boot) Reset() {
	b.phases = nil
	b.start = b.now()
}
