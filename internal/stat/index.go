package stat

import "fmt"

type indexKind int8

const (
	indexAt indexKind = iota
	indexFirst
	indexLatest
)

// Index selects an effect by position.
// Use At for a concrete position, First or Latest for the ends of the list.
type Index struct {
	kind indexKind
	pos  int
}

var (
	// First selects the earliest registered effect.
	First = Index{kind: indexFirst}
	// Latest selects the most recently registered effect.
	Latest = Index{kind: indexLatest}
)

// At selects the effect at position pos (0-based).
func At(pos int) Index {
	return Index{kind: indexAt, pos: pos}
}

// resolve maps the selector onto a position in a list of n effects.
// Returns false if the position falls outside [0, n).
func (i Index) resolve(n int) (int, bool) {
	pos := i.pos
	switch i.kind {
	case indexFirst:
		pos = 0
	case indexLatest:
		pos = n - 1
	}

	if pos < 0 || pos >= n {
		return 0, false
	}
	return pos, true
}

func (i Index) String() string {
	switch i.kind {
	case indexFirst:
		return "first"
	case indexLatest:
		return "latest"
	default:
		return fmt.Sprintf("at(%d)", i.pos)
	}
}
