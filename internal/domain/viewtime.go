package domain

import "time"

// ViewTimes accumulates wall-clock dwell time per slide index over one
// presentation session. It is an optional navigation listener; the
// navigator has no knowledge of it.
//
// On each transition the elapsed interval is charged to the slide being
// left, not the destination. (The interval that ends when navigation
// fires was spent on the outgoing slide.)
type ViewTimes struct {
	now      func() time.Time
	start    time.Time
	last     time.Time
	open     int
	perSlide map[int]time.Duration
}

// ViewTimeReport is a point-in-time snapshot of a session's dwell times.
type ViewTimeReport struct {
	SessionStart time.Time
	Elapsed      time.Duration
	PerSlide     map[int]time.Duration
}

// NewViewTimes starts a session clocking the given initial slide index.
// now may be nil, in which case time.Now is used.
func NewViewTimes(initial int, now func() time.Time) *ViewTimes {
	if now == nil {
		now = time.Now
	}
	start := now()
	return &ViewTimes{
		now:      now,
		start:    start,
		last:     start,
		open:     initial,
		perSlide: make(map[int]time.Duration),
	}
}

// NewViewTimesForDeck starts a session clocking the deck's starting
// position: slide 1, or 0 for an empty deck, matching the navigator's
// initial index.
func NewViewTimesForDeck(deck *Deck, now func() time.Time) *ViewTimes {
	initial := 0
	if deck.Len() > 0 {
		initial = 1
	}
	return NewViewTimes(initial, now)
}

// TrackSlideChange closes the open interval, charges it to the slide
// being left, and starts timing slide n.
func (v *ViewTimes) TrackSlideChange(n int) {
	t := v.now()
	v.perSlide[v.open] += t.Sub(v.last)
	v.last = t
	v.open = n
}

// OnNavigate implements Listener.
func (v *ViewTimes) OnNavigate(index int) {
	v.TrackSlideChange(index)
}

// Report returns the session elapsed time and a copy of the per-slide
// accumulated durations. The interval still open on the current slide is
// not included; Report never mutates the tracker.
func (v *ViewTimes) Report() ViewTimeReport {
	per := make(map[int]time.Duration, len(v.perSlide))
	for k, d := range v.perSlide {
		per[k] = d
	}
	return ViewTimeReport{
		SessionStart: v.start,
		Elapsed:      v.now().Sub(v.start),
		PerSlide:     per,
	}
}
