package funcfmt

// pieceKind discriminates the two piece variants of a compiled template.
type pieceKind int

const (
	pieceVerbatim pieceKind = iota
	pieceFormatter
)

// piece is one unit of a compiled template: either a verbatim text run or
// a placeholder resolved to its callback at compile time.
type piece[T any] struct {
	kind pieceKind

	// text is the literal run for pieceVerbatim.
	text string

	// name and fn are set for pieceFormatter. The name is kept for error
	// reporting; fn is the callback captured from the registry.
	name string
	fn   FormatterFunc[T]
}

// PreparedTemplate is the compiled form of one template string: an ordered
// sequence of pieces with every placeholder resolved to its callback.
//
// A PreparedTemplate is immutable after Prepare returns. It holds its own
// references to the callbacks it uses, so it stays valid even if the
// registry it was compiled from is later modified or dropped. Concurrent
// Render calls against distinct data values are safe.
type PreparedTemplate[T any] struct {
	pieces []piece[T]
	source string

	// sizeHint pre-sizes render output: total literal bytes plus a
	// ballpark per-placeholder guess.
	sizeHint int
}

// Source returns the original template string this template was compiled
// from.
func (pt *PreparedTemplate[T]) Source() string {
	return pt.source
}

// PieceCount returns the number of pieces in the compiled sequence.
// Adjacent literal runs may or may not be coalesced; only the
// concatenation order is guaranteed.
func (pt *PreparedTemplate[T]) PieceCount() int {
	return len(pt.pieces)
}

// PlaceholderNames returns the names of the resolved placeholders in the
// order they appear in the template, including duplicates.
func (pt *PreparedTemplate[T]) PlaceholderNames() []string {
	var names []string
	for _, p := range pt.pieces {
		if p.kind == pieceFormatter {
			names = append(names, p.name)
		}
	}
	return names
}
