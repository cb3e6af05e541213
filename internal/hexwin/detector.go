package hexwin

// Result is the verdict of one CheckWin call.
type Result struct {
	HasWon   bool
	WinColor Team
	// Path is one chain of winning cells from the start edge to the goal edge.
	Path []Coord
}

// Option configures a Detector.
type Option func(*Detector)

// WithRedAxis sets the edges red has to connect.
func WithRedAxis(a Axis) Option {
	return func(d *Detector) { d.redAxis = a }
}

// WithGreenAxis sets the edges green has to connect.
func WithGreenAxis(a Axis) Option {
	return func(d *Detector) { d.greenAxis = a }
}

// Detector checks a snapshot for a connecting chain of one target color.
// It keeps no state between calls and is safe for concurrent use.
type Detector struct {
	lattice   *Lattice
	palette   Palette
	redAxis   Axis
	greenAxis Axis
}

// NewDetector creates a detector for a fixed lattice and palette.
// Both teams join top to bottom unless an option says otherwise.
func NewDetector(l *Lattice, p Palette, opts ...Option) *Detector {
	d := &Detector{
		lattice: l,
		palette: p,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Lattice returns the topology the detector was built for.
func (d *Detector) Lattice() *Lattice {
	return d.lattice
}

// Palette returns the target colors.
func (d *Detector) Palette() Palette {
	return d.palette
}

// CheckWin reports whether red, then green, has a connecting path.
// Red is checked first and wins ties.
func (d *Detector) CheckWin(s Snapshot) Result {
	for _, team := range [...]Team{TeamRed, TeamGreen} {
		if path, ok := d.HasPath(s, d.palette.Color(team), d.axis(team)); ok {
			return Result{HasWon: true, WinColor: team, Path: path}
		}
	}
	return Result{}
}

func (d *Detector) axis(t Team) Axis {
	if t == TeamGreen {
		return d.greenAxis
	}
	return d.redAxis
}

// HasPath searches for a chain of cells colored target joining the two edges
// named by axis. It returns the chain in start-to-goal order.
// An empty or background target never has a path.
func (d *Detector) HasPath(s Snapshot, target string, axis Axis) ([]Coord, bool) {
	target = Normalize(target)
	if !Winnable(target) || d.lattice.Height() == 0 || len(s) == 0 {
		return nil, false
	}

	w := &walker{
		lattice: d.lattice,
		snap:    s,
		target:  target,
		axis:    axis,
		visited: make(map[Coord]bool, len(s)),
		parent:  make(map[Coord]Coord, len(s)),
	}

	for _, seed := range w.seeds() {
		if w.visited[seed] {
			// already explored from an earlier seed in the same component
			continue
		}
		if goal, ok := w.search(seed); ok {
			return w.trace(goal), true
		}
	}
	return nil, false
}

// walker holds the mutable state of one HasPath call.
type walker struct {
	lattice *Lattice
	snap    Snapshot
	target  string
	axis    Axis
	queue   []Coord
	visited map[Coord]bool
	parent  map[Coord]Coord
}

// seeds lists the target-colored cells on the start edge.
func (w *walker) seeds() []Coord {
	var out []Coord
	switch w.axis {
	case AxisLeftRight:
		for r := 0; r < w.lattice.Height(); r++ {
			if c := At(r, 0); w.matches(c) {
				out = append(out, c)
			}
		}
	default:
		for col := 0; col < w.lattice.Width(0); col++ {
			if c := At(0, col); w.matches(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// isGoal reports whether c lies on the far edge.
func (w *walker) isGoal(c Coord) bool {
	if w.axis == AxisLeftRight {
		return c.Col == w.lattice.Width(c.Row)-1
	}
	return c.Row == w.lattice.Height()-1
}

func (w *walker) matches(c Coord) bool {
	return w.lattice.Present(c) && w.snap.Color(c) == w.target
}

// search runs a FIFO breadth-first walk from seed over the monochrome subgraph.
func (w *walker) search(seed Coord) (Coord, bool) {
	w.queue = append(w.queue[:0], seed)
	w.visited[seed] = true

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		if !w.matches(cur) {
			continue
		}
		if w.isGoal(cur) {
			return cur, true
		}

		for _, n := range w.lattice.Neighbors(cur) {
			if w.visited[n] || !w.matches(n) {
				continue
			}
			w.visited[n] = true
			w.parent[n] = cur
			w.queue = append(w.queue, n)
		}
	}
	return Coord{}, false
}

// trace rebuilds the path ending at goal from the parent links.
func (w *walker) trace(goal Coord) []Coord {
	path := []Coord{goal}
	for cur := goal; ; {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
