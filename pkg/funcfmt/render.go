package funcfmt

import "strings"

// Render evaluates the compiled template against one data value.
//
// Pieces are walked in order: literal runs are copied verbatim, and each
// resolved placeholder's callback is invoked with the data value. If a
// callback reports no value, Render fails with MissingValueError naming
// that placeholder and returns no output at all; the template itself
// stays valid for renders with other data.
//
// Render never mutates the template, so concurrent calls with distinct
// data values are safe.
func (pt *PreparedTemplate[T]) Render(data *T) (string, error) {
	var out strings.Builder
	out.Grow(pt.sizeHint)

	for _, p := range pt.pieces {
		if p.kind == pieceVerbatim {
			out.WriteString(p.text)
			continue
		}
		s, ok := p.fn(data)
		if !ok {
			return "", &MissingValueError{Name: p.name}
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

// RenderAll renders the template once per data value, in order. It stops
// at the first failing render and returns the outputs collected so far
// together with the error. Callers batching many records and preferring
// skip-and-continue should loop over Render instead.
func (pt *PreparedTemplate[T]) RenderAll(data []T) ([]string, error) {
	out := make([]string, 0, len(data))
	for i := range data {
		s, err := pt.Render(&data[i])
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}
