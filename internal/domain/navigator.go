package domain

import (
	"fmt"
	"time"
)

// Phase is the state of the slide transition machine.
type Phase int

const (
	// PhaseIdle means no transition is in flight.
	PhaseIdle Phase = iota
	// PhaseExiting means the outgoing slide has received its exit cue and
	// a commit is pending.
	PhaseExiting
)

// SwipeThreshold is the minimum horizontal drag distance, in cells, that
// counts as navigation intent. Shorter drags are ignored as noise.
const SwipeThreshold = 50

// CommitDelay is the stagger between the exit cue and the commit, so the
// exit treatment is observable before the next slide becomes active.
const CommitDelay = 50 * time.Millisecond

// Listener is notified after each committed navigation. The navigator
// never calls back into a listener for absorbed (no-op) requests.
type Listener interface {
	OnNavigate(index int)
}

// Navigator owns the current-slide position of a deck and the two-phase
// transition between slides. All invalid input is absorbed as a no-op;
// no operation returns an error.
//
// A transition runs in two phases: GoTo applies the exit cue immediately
// and returns a sequence number, the caller commits after CommitDelay by
// passing that number to Commit. A GoTo issued while a commit is pending
// coalesces into it: the pending target is replaced and the superseded
// sequence number goes stale, so the last requested slide wins.
type Navigator struct {
	deck    *Deck
	current int
	total   int

	phase   Phase
	pending int
	seq     int

	listeners []Listener
}

// NewNavigator creates a navigator positioned on the first slide. The
// slide count is captured once; an empty deck yields a navigator whose
// operations are all no-ops.
func NewNavigator(deck *Deck) *Navigator {
	nav := &Navigator{deck: deck, total: deck.Len()}
	if nav.total > 0 {
		nav.current = 1
		deck.Slides[0].Active = true
	}
	return nav
}

// Subscribe registers a listener for committed navigations.
func (nav *Navigator) Subscribe(l Listener) {
	nav.listeners = append(nav.listeners, l)
}

// Current returns the 1-based index of the current slide, 0 for an empty deck.
func (nav *Navigator) Current() int { return nav.current }

// Total returns the fixed slide count.
func (nav *Navigator) Total() int { return nav.total }

// Phase returns the transition machine state.
func (nav *Navigator) Phase() Phase { return nav.phase }

// Next advances one slide, saturating at the last slide.
func (nav *Navigator) Next() (int, bool) {
	if nav.current < nav.total {
		return nav.GoTo(nav.current + 1)
	}
	return 0, false
}

// Prev retreats one slide, saturating at the first slide.
func (nav *Navigator) Prev() (int, bool) {
	if nav.current > 1 {
		return nav.GoTo(nav.current - 1)
	}
	return 0, false
}

// First jumps to the first slide.
func (nav *Navigator) First() (int, bool) { return nav.GoTo(1) }

// Last jumps to the last slide.
func (nav *Navigator) Last() (int, bool) { return nav.GoTo(nav.total) }

// GoTo begins a transition to slide n. Out-of-range and same-index
// targets are absorbed silently: no state changes, nothing is scheduled,
// and listeners are not notified. On success it returns the sequence
// number the caller must pass to Commit after CommitDelay.
//
// The outgoing slide is deactivated immediately. Forward motion also
// marks it exiting; backward motion deactivates without an exit cue.
// The asymmetry is intentional and load-bearing for the visual effect.
func (nav *Navigator) GoTo(n int) (int, bool) {
	if n < 1 || n > nav.total || n == nav.current {
		return 0, false
	}
	forward := n > nav.current
	if cur := nav.deck.Slide(nav.current); cur != nil {
		cur.Active = false
		if forward {
			cur.Exiting = true
		}
	}
	nav.phase = PhaseExiting
	nav.pending = n
	nav.seq++
	return nav.seq, true
}

// Commit applies the pending transition identified by seq: clears the
// active and exiting flags from every slide, activates the target,
// updates the current index, and notifies listeners. Stale sequence
// numbers (superseded by a coalescing GoTo) are dropped.
func (nav *Navigator) Commit(seq int) bool {
	if nav.phase != PhaseExiting || seq != nav.seq {
		return false
	}
	for _, s := range nav.deck.Slides {
		s.Active = false
		s.Exiting = false
	}
	nav.deck.Slides[nav.pending-1].Active = true
	nav.current = nav.pending
	nav.pending = 0
	nav.phase = PhaseIdle
	for _, l := range nav.listeners {
		l.OnNavigate(nav.current)
	}
	return true
}

// HandleSwipe maps a horizontal drag to a navigation. startX and endX are
// the press and release columns; drags at or below SwipeThreshold never
// navigate.
func (nav *Navigator) HandleSwipe(startX, endX int) (int, bool) {
	d := startX - endX
	switch {
	case d > SwipeThreshold:
		return nav.Next()
	case d < -SwipeThreshold:
		return nav.Prev()
	}
	return 0, false
}

// CounterText is the "current / total" position indicator.
func (nav *Navigator) CounterText() string {
	return fmt.Sprintf("%d / %d", nav.current, nav.total)
}

// Progress is the position as a fraction in [0, 1].
func (nav *Navigator) Progress() float64 {
	if nav.total == 0 {
		return 0
	}
	return float64(nav.current) / float64(nav.total)
}

// PrevEnabled reports whether the previous affordance is usable.
func (nav *Navigator) PrevEnabled() bool { return nav.current > 1 }

// NextEnabled reports whether the next affordance is usable.
func (nav *Navigator) NextEnabled() bool { return nav.current < nav.total }

// Title returns the current slide's title, empty when the slide has none
// or the deck is empty.
func (nav *Navigator) Title() string {
	if s := nav.deck.Slide(nav.current); s != nil {
		return s.Title
	}
	return ""
}
