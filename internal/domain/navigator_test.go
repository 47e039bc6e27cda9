package domain

import "testing"

func testDeck(n int) *Deck {
	d := &Deck{}
	for i := 1; i <= n; i++ {
		d.Slides = append(d.Slides, &Slide{Title: "Slide"})
	}
	return d
}

// navigate drives a full two-phase transition.
func navigate(t *testing.T, nav *Navigator, n int) {
	t.Helper()
	seq, ok := nav.GoTo(n)
	if !ok {
		t.Fatalf("GoTo(%d) was absorbed", n)
	}
	if !nav.Commit(seq) {
		t.Fatalf("Commit(%d) was dropped", seq)
	}
}

func TestNewNavigatorFreshDeck(t *testing.T) {
	deck := testDeck(5)
	nav := NewNavigator(deck)

	if nav.Current() != 1 {
		t.Errorf("Current() = %d, expected 1", nav.Current())
	}
	if nav.CounterText() != "1 / 5" {
		t.Errorf("CounterText() = %q, expected %q", nav.CounterText(), "1 / 5")
	}
	if nav.Progress() != 0.2 {
		t.Errorf("Progress() = %v, expected 0.2", nav.Progress())
	}
	if nav.PrevEnabled() {
		t.Error("PrevEnabled() = true on first slide")
	}
	if !nav.NextEnabled() {
		t.Error("NextEnabled() = false with slides remaining")
	}
	if deck.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex() = %d, expected 1", deck.ActiveIndex())
	}
}

func TestGoToValidTargets(t *testing.T) {
	for n := 2; n <= 5; n++ {
		deck := testDeck(5)
		nav := NewNavigator(deck)

		seq, ok := nav.GoTo(n)
		if !ok {
			t.Fatalf("GoTo(%d) absorbed", n)
		}
		if !nav.Commit(seq) {
			t.Fatalf("Commit dropped for target %d", n)
		}
		if nav.Current() != n {
			t.Errorf("Current() = %d, expected %d", nav.Current(), n)
		}
		if deck.ActiveIndex() != n {
			t.Errorf("ActiveIndex() = %d, expected %d", deck.ActiveIndex(), n)
		}
		active := 0
		for _, s := range deck.Slides {
			if s.Active {
				active++
			}
		}
		if active != 1 {
			t.Errorf("%d slides active after commit, expected exactly 1", active)
		}
	}
}

func TestGoToOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 6, 100} {
		deck := testDeck(5)
		nav := NewNavigator(deck)

		if _, ok := nav.GoTo(n); ok {
			t.Errorf("GoTo(%d) accepted, expected silent no-op", n)
		}
		if nav.Current() != 1 {
			t.Errorf("Current() = %d after GoTo(%d), expected 1", nav.Current(), n)
		}
		if deck.ActiveIndex() != 1 {
			t.Errorf("ActiveIndex() = %d after GoTo(%d), expected 1", deck.ActiveIndex(), n)
		}
		if nav.Phase() != PhaseIdle {
			t.Errorf("Phase() = %v after GoTo(%d), expected PhaseIdle", nav.Phase(), n)
		}
	}
}

func TestGoToCurrentIndexIsAbsorbed(t *testing.T) {
	deck := testDeck(5)
	nav := NewNavigator(deck)
	rec := &recordingListener{}
	nav.Subscribe(rec)

	if _, ok := nav.GoTo(1); ok {
		t.Error("GoTo(1) from slide 1 accepted, expected silent no-op")
	}
	if _, ok := nav.First(); ok {
		t.Error("First() on slide 1 accepted, expected silent no-op")
	}
	if !deck.Slides[0].Active {
		t.Error("same-index GoTo deactivated the current slide")
	}
	if nav.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected PhaseIdle", nav.Phase())
	}
	if len(rec.visited) != 0 {
		t.Errorf("listener saw %v for absorbed requests", rec.visited)
	}

	navigate(t, nav, 3)
	if _, ok := nav.GoTo(3); ok {
		t.Error("GoTo(3) from slide 3 accepted, expected silent no-op")
	}
	if deck.ActiveIndex() != 3 {
		t.Errorf("ActiveIndex() = %d, expected 3", deck.ActiveIndex())
	}
}

func TestSaturationAtBounds(t *testing.T) {
	nav := NewNavigator(testDeck(5))

	if _, ok := nav.Prev(); ok {
		t.Error("Prev() at the first slide should be a no-op")
	}
	if nav.Current() != 1 {
		t.Errorf("Current() = %d, expected 1", nav.Current())
	}

	navigate(t, nav, 5)
	if _, ok := nav.Next(); ok {
		t.Error("Next() at the last slide should be a no-op")
	}
	if nav.Current() != 5 {
		t.Errorf("Current() = %d, expected 5", nav.Current())
	}
}

func TestProjectionsAfterNavigation(t *testing.T) {
	tests := []struct {
		target      int
		counter     string
		progress    float64
		prevEnabled bool
		nextEnabled bool
	}{
		{2, "2 / 5", 0.4, true, true},
		{5, "5 / 5", 1.0, true, false},
		{1, "1 / 5", 0.2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.counter, func(t *testing.T) {
			nav := NewNavigator(testDeck(5))
			if tt.target == 1 {
				navigate(t, nav, 3) // move away first; a same-index GoTo is absorbed
			}
			navigate(t, nav, tt.target)

			if nav.CounterText() != tt.counter {
				t.Errorf("CounterText() = %q, expected %q", nav.CounterText(), tt.counter)
			}
			if nav.Progress() != tt.progress {
				t.Errorf("Progress() = %v, expected %v", nav.Progress(), tt.progress)
			}
			if nav.PrevEnabled() != tt.prevEnabled {
				t.Errorf("PrevEnabled() = %v, expected %v", nav.PrevEnabled(), tt.prevEnabled)
			}
			if nav.NextEnabled() != tt.nextEnabled {
				t.Errorf("NextEnabled() = %v, expected %v", nav.NextEnabled(), tt.nextEnabled)
			}
		})
	}
}

func TestExitTreatmentIsForwardOnly(t *testing.T) {
	deck := testDeck(5)
	nav := NewNavigator(deck)
	navigate(t, nav, 3)

	// Forward: the outgoing slide gets the exit cue.
	seq, _ := nav.GoTo(4)
	if !deck.Slides[2].Exiting {
		t.Error("forward GoTo did not mark the outgoing slide exiting")
	}
	if deck.Slides[2].Active {
		t.Error("outgoing slide still active before commit")
	}
	nav.Commit(seq)
	if deck.Slides[2].Exiting {
		t.Error("exiting flag survived the commit")
	}

	// Backward: plain deactivation, no exit cue.
	seq, _ = nav.GoTo(2)
	if deck.Slides[3].Exiting {
		t.Error("backward GoTo applied the exit treatment")
	}
	if deck.Slides[3].Active {
		t.Error("outgoing slide still active before commit")
	}
	nav.Commit(seq)
}

func TestHandleSwipe(t *testing.T) {
	tests := []struct {
		name     string
		startX   int
		endX     int
		from     int
		expected int
	}{
		{"left swipe advances", 200, 100, 3, 4},
		{"right swipe retreats", 100, 200, 3, 2},
		{"below threshold ignored", 120, 100, 3, 3},
		{"at threshold ignored", 150, 100, 3, 3},
		{"just over threshold advances", 151, 100, 3, 4},
		{"left swipe at last slide saturates", 200, 100, 5, 5},
		{"right swipe at first slide saturates", 100, 200, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(testDeck(5))
			if tt.from != 1 {
				navigate(t, nav, tt.from)
			}

			seq, ok := nav.HandleSwipe(tt.startX, tt.endX)
			if ok {
				nav.Commit(seq)
			}
			if nav.Current() != tt.expected {
				t.Errorf("Current() = %d, expected %d", nav.Current(), tt.expected)
			}
		})
	}
}

func TestEndKeyScenario(t *testing.T) {
	nav := NewNavigator(testDeck(5))

	seq, ok := nav.Last()
	if !ok {
		t.Fatal("Last() absorbed from the first slide")
	}
	nav.Commit(seq)

	if nav.Current() != 5 {
		t.Errorf("Current() = %d, expected 5", nav.Current())
	}
	if nav.CounterText() != "5 / 5" {
		t.Errorf("CounterText() = %q, expected %q", nav.CounterText(), "5 / 5")
	}
	if nav.Progress() != 1.0 {
		t.Errorf("Progress() = %v, expected 1.0", nav.Progress())
	}
	if nav.NextEnabled() {
		t.Error("NextEnabled() = true on the last slide")
	}
}

func TestCoalescingLastRequestWins(t *testing.T) {
	deck := testDeck(5)
	nav := NewNavigator(deck)

	seq1, _ := nav.GoTo(2)
	seq2, _ := nav.GoTo(3)

	if nav.Commit(seq1) {
		t.Error("stale commit was applied")
	}
	if nav.Phase() != PhaseExiting {
		t.Error("stale commit changed the transition phase")
	}
	if !nav.Commit(seq2) {
		t.Error("live commit was dropped")
	}
	if nav.Current() != 3 {
		t.Errorf("Current() = %d, expected 3", nav.Current())
	}
	if deck.ActiveIndex() != 3 {
		t.Errorf("ActiveIndex() = %d, expected 3", deck.ActiveIndex())
	}
}

func TestEmptyDeck(t *testing.T) {
	deck := &Deck{}
	nav := NewNavigator(deck)

	if nav.Current() != 0 {
		t.Errorf("Current() = %d, expected 0", nav.Current())
	}
	if nav.CounterText() != "0 / 0" {
		t.Errorf("CounterText() = %q, expected %q", nav.CounterText(), "0 / 0")
	}
	if nav.Progress() != 0 {
		t.Errorf("Progress() = %v, expected 0", nav.Progress())
	}
	if _, ok := nav.Next(); ok {
		t.Error("Next() on an empty deck should be a no-op")
	}
	if _, ok := nav.Prev(); ok {
		t.Error("Prev() on an empty deck should be a no-op")
	}
	if _, ok := nav.GoTo(1); ok {
		t.Error("GoTo(1) on an empty deck should be a no-op")
	}
	if nav.PrevEnabled() || nav.NextEnabled() {
		t.Error("affordances enabled on an empty deck")
	}
}

type recordingListener struct {
	visited []int
}

func (r *recordingListener) OnNavigate(index int) {
	r.visited = append(r.visited, index)
}

func TestListenerNotification(t *testing.T) {
	nav := NewNavigator(testDeck(5))
	rec := &recordingListener{}
	nav.Subscribe(rec)

	navigate(t, nav, 3)
	navigate(t, nav, 2)
	nav.GoTo(0)  // absorbed, must not notify
	nav.GoTo(99) // absorbed, must not notify

	if len(rec.visited) != 2 || rec.visited[0] != 3 || rec.visited[1] != 2 {
		t.Errorf("listener saw %v, expected [3 2]", rec.visited)
	}
}
