package interaction

import "github.com/K25anjali/fossil-energy-graph/internal/energy"

// Rect is a cell-addressed region of the screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Container is the screen region of one chart. Plot is the part of the
// region spanned by the year axis.
type Container struct {
	Source energy.Source
	Bounds Rect
	Plot   Rect
}

// Session is the hover state shared by every chart. Once any chart is
// pointed at, all charts show their tooltip for the same year until a
// pointer event lands outside every chart.
type Session struct {
	Active bool
	Year   int
	Source energy.Source

	minYear, maxYear int
	containers       []Container
}

// NewSession returns an inactive session over the year domain [minYear, maxYear].
func NewSession(minYear, maxYear int) Session {
	return Session{minYear: minYear, maxYear: maxYear, Year: minYear}
}

// SetContainers replaces the chart regions after a layout pass.
func (s Session) SetContainers(cs []Container) Session {
	s.containers = append([]Container(nil), cs...)
	return s
}

// Containers returns the registered chart regions.
func (s Session) Containers() []Container {
	return s.containers
}

// Hit returns the container under (x, y).
func (s Session) Hit(x, y int) (Container, bool) {
	for _, c := range s.containers {
		if c.Bounds.Contains(x, y) {
			return c, true
		}
	}
	return Container{}, false
}

// PointerMove activates the session when (x, y) is inside a chart and moves
// the hovered year under the pointer. Moves outside every chart leave the
// session as it was.
func (s Session) PointerMove(x, y int) Session {
	c, ok := s.Hit(x, y)
	if !ok {
		return s
	}
	s.Active = true
	s.Source = c.Source
	s.Year = s.YearAt(c, x)
	return s
}

// PointerDown resets the session when (x, y) is outside every chart; a
// press inside a chart behaves like a move.
func (s Session) PointerDown(x, y int) Session {
	if _, ok := s.Hit(x, y); !ok {
		s.Active = false
		return s
	}
	return s.PointerMove(x, y)
}

// Step activates the session and moves the hovered year by delta, clamped
// to the domain.
func (s Session) Step(delta int) Session {
	if !s.Active {
		s.Active = true
		return s
	}
	s.Year = s.clamp(s.Year + delta)
	return s
}

// Jump activates the session at year, clamped to the domain.
func (s Session) Jump(year int) Session {
	s.Active = true
	s.Year = s.clamp(year)
	return s
}

// Deactivate hides every tooltip.
func (s Session) Deactivate() Session {
	s.Active = false
	return s
}

// YearAt maps column x of c's plot area onto the year domain.
func (s Session) YearAt(c Container, x int) int {
	plot := c.Plot
	if plot.Width <= 1 {
		return s.minYear
	}
	offset := x - plot.X
	if offset <= 0 {
		return s.minYear
	}
	if offset >= plot.Width-1 {
		return s.maxYear
	}
	span := s.maxYear - s.minYear
	// Round to the nearest year.
	return s.minYear + (offset*span*2+plot.Width-1)/(2*(plot.Width-1))
}

func (s Session) clamp(year int) int {
	return min(max(year, s.minYear), s.maxYear)
}

// ColumnOf is the inverse of YearAt: the plot column of year in c.
func (s Session) ColumnOf(c Container, year int) int {
	plot := c.Plot
	span := s.maxYear - s.minYear
	if plot.Width <= 1 || span <= 0 {
		return plot.X
	}
	year = s.clamp(year)
	return plot.X + ((year-s.minYear)*(plot.Width-1)*2+span)/(2*span)
}

// Domain returns the year domain of the session.
func (s Session) Domain() (minYear, maxYear int) {
	return s.minYear, s.maxYear
}

// Translate shifts c by (dx, dy).
func (c Container) Translate(dx, dy int) Container {
	c.Bounds.X += dx
	c.Bounds.Y += dy
	c.Plot.X += dx
	c.Plot.Y += dy
	return c
}
