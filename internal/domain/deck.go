package domain

// Slide is one visual unit of the presentation, shown exclusively when active.
// The deck core does not interpret slide content beyond the optional title.
type Slide struct {
	Title   string // first heading in the slide source, empty when absent
	Content string // raw markdown source of the slide
	Active  bool
	Exiting bool
}

// Meta holds deck-level metadata parsed from frontmatter.
type Meta struct {
	Title  string
	Author string
	Date   string
	Theme  string
}

// Deck is an ordered, fixed-length sequence of slides. The length is set
// when the deck is loaded and never changes afterwards; navigation indexes
// slides 1-based.
type Deck struct {
	Meta   Meta
	Slides []*Slide
}

// Len returns the number of slides in the deck.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Slide returns the slide at 1-based index n, or nil when out of range.
func (d *Deck) Slide(n int) *Slide {
	if n < 1 || n > len(d.Slides) {
		return nil
	}
	return d.Slides[n-1]
}

// ActiveIndex returns the 1-based index of the active slide, or 0 when no
// slide is active.
func (d *Deck) ActiveIndex() int {
	for i, s := range d.Slides {
		if s.Active {
			return i + 1
		}
	}
	return 0
}
