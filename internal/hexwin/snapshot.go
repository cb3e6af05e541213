package hexwin

// Snapshot maps each present cell to its normalized color for one evaluation.
// It is built fresh for every query and never cached.
type Snapshot map[Coord]string

// ColorFunc reads the current raw color of a cell from the host.
// ok is false when the host has no cell at c.
type ColorFunc func(c Coord) (raw string, ok bool)

// Capture reads every present cell of l through read and normalizes it.
// A nil lattice or reader yields an empty snapshot.
func Capture(l *Lattice, read ColorFunc) Snapshot {
	snap := make(Snapshot)
	if l == nil || read == nil {
		return snap
	}
	for _, c := range l.Coords() {
		raw, ok := read(c)
		if !ok {
			continue
		}
		snap[c] = Normalize(raw)
	}
	return snap
}

// SnapshotOf normalizes a pre-built coordinate to color mapping.
func SnapshotOf(raw map[Coord]string) Snapshot {
	snap := make(Snapshot, len(raw))
	for c, color := range raw {
		snap[c] = Normalize(color)
	}
	return snap
}

// Color returns the normalized color at c, or NoColor when c is not in the
// snapshot. Values put into a Snapshot literal by hand are normalized here too.
func (s Snapshot) Color(c Coord) string {
	color, ok := s[c]
	if !ok || color == NoColor {
		return NoColor
	}
	return Normalize(color)
}
