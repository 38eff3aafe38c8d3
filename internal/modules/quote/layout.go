package quote

// Geometry is the printable area in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	MarginX    float64
	// FirstTop is where page one starts; the letterhead is drawn from the
	// very top edge.
	FirstTop float64
	// Top is where continuation pages start.
	Top float64
	// Bottom is the space reserved for the footer.
	Bottom     float64
	SectionGap float64
}

// A4 matches the printed quote.
var A4 = Geometry{
	PageWidth:  210,
	PageHeight: 297,
	MarginX:    15,
	FirstTop:   0,
	Top:        30,
	Bottom:     50,
	SectionGap: 10,
}

func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.MarginX
}

func (g Geometry) limit() float64 {
	return g.PageHeight - g.Bottom
}

const (
	titleBarHeight = 10
	sectionPadding = 5
)

// chrome is the vertical space a section's frame adds around its blocks.
func chrome(sec Section) float64 {
	if sec.Title == "" {
		return 0
	}
	return titleBarHeight + 2*sectionPadding
}

// InnerWidth is the width blocks of sec are wrapped to.
func (g Geometry) InnerWidth(sec Section) float64 {
	if sec.Title == "" {
		return g.ContentWidth()
	}
	return g.ContentWidth() - 2*sectionPadding
}

// SectionHeight is the space sec occupies including its frame.
func SectionHeight(sec Section, m Measurer, g Geometry) float64 {
	h := chrome(sec)
	w := g.InnerWidth(sec)
	for _, b := range sec.Blocks {
		h += b.Height(m, w)
	}
	return h
}

// Placement is a section (or part of one) at a vertical offset.
type Placement struct {
	Section Section
	Y       float64
	Height  float64
}

type Page struct {
	Placements []Placement
}

// Layout flows sections onto pages in order. A section that does not fit
// moves to a fresh page; one taller than a whole page is split between
// blocks unless it must be kept together.
func Layout(sections []Section, m Measurer, g Geometry) []Page {
	pages := []Page{{}}
	y := g.FirstTop
	newPage := func() {
		pages = append(pages, Page{})
		y = g.Top
	}
	place := func(sec Section, h float64) {
		cur := &pages[len(pages)-1]
		cur.Placements = append(cur.Placements, Placement{Section: sec, Y: y, Height: h})
		y += h + g.SectionGap
	}

	queue := append([]Section(nil), sections...)
	for len(queue) > 0 {
		sec := queue[0]
		queue = queue[1:]

		h := SectionHeight(sec, m, g)
		if y+h <= g.limit() {
			place(sec, h)
			continue
		}
		if len(pages[len(pages)-1].Placements) > 0 {
			newPage()
			if y+h <= g.limit() {
				place(sec, h)
				continue
			}
		}
		if sec.KeepTogether || len(sec.Blocks) < 2 {
			place(sec, h)
			continue
		}

		head, tail := split(sec, m, g, g.limit()-y)
		place(head, SectionHeight(head, m, g))
		queue = append([]Section{tail}, queue...)
		newPage()
	}
	return pages
}

// split cuts sec after the longest block prefix fitting in avail. The head
// always keeps at least one block so layout makes progress.
func split(sec Section, m Measurer, g Geometry, avail float64) (Section, Section) {
	w := g.InnerWidth(sec)
	used := chrome(sec)
	n := 0
	for n < len(sec.Blocks) {
		bh := sec.Blocks[n].Height(m, w)
		if used+bh > avail {
			break
		}
		used += bh
		n++
	}
	n = max(n, 1)
	if n >= len(sec.Blocks) {
		n = len(sec.Blocks) - 1
	}

	head := sec
	head.Blocks = sec.Blocks[:n:n]
	tail := sec
	tail.Blocks = sec.Blocks[n:]
	if !sec.Continued && tail.Title != "" {
		tail.Title += " (CONTINUED)"
	}
	tail.Continued = true
	return head, tail
}
