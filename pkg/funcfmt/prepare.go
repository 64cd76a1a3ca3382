package funcfmt

import (
	"errors"
	"unicode/utf8"
)

// Default marker characters delimiting a placeholder reference.
const (
	DefaultOpenMarker  = '{'
	DefaultCloseMarker = '}'
)

// renderBytesPerPlaceholder is a ballpark output-size guess per resolved
// placeholder, used to pre-size render buffers.
const renderBytesPerPlaceholder = 16

// Prepare compiles a template string against a registry using the default
// marker pair. See PrepareWithMarkers for the grammar.
func Prepare[T any](registry *FormatterRegistry[T], tmpl string) (*PreparedTemplate[T], error) {
	return PrepareWithMarkers(registry, tmpl, DefaultOpenMarker, DefaultCloseMarker)
}

// PrepareWithMarkers compiles a template string against a registry,
// resolving every placeholder to its registered callback.
//
// The grammar is flat and non-nesting: everything strictly between an
// opening and the next closing marker is a placeholder name, and a doubled
// marker ("{{" or "}}") emits one literal marker. Compilation fails with
// UnknownPlaceholderError, UnterminatedPlaceholderError,
// EmptyPlaceholderNameError, or UnmatchedClosingMarkerError; all are
// terminal for the compile call.
//
// Prepare is a pure function of its inputs: it performs no I/O, no
// logging, and retains no reference to the registry beyond the callbacks
// the template actually uses.
func PrepareWithMarkers[T any](registry *FormatterRegistry[T], tmpl string, openMarker, closeMarker rune) (*PreparedTemplate[T], error) {
	if openMarker == closeMarker {
		return nil, errors.New("opening and closing markers must differ")
	}
	if registry == nil {
		registry = NewFormatterRegistry[T]()
	}

	openLen := utf8.RuneLen(openMarker)
	closeLen := utf8.RuneLen(closeMarker)

	pieces := make([]piece[T], 0, 8)
	literalBytes := 0
	placeholders := 0

	pushVerbatim := func(s string) {
		if s != "" {
			pieces = append(pieces, piece[T]{kind: pieceVerbatim, text: s})
			literalBytes += len(s)
		}
	}

	const none = -1
	var (
		last         = 0    // start of the unflushed literal run
		pendingOpen  = none // opening marker awaiting escape-or-placeholder
		pendingClose = none // closing marker awaiting its escape twin
		keyStart     = none // start of the current placeholder name
		openPos      = none // opening marker of the current placeholder
	)

	for idx, r := range tmpl {
		switch {
		case pendingOpen != none:
			if r == openMarker {
				// Doubled opening marker: one literal marker.
				pushVerbatim(tmpl[last : pendingOpen+openLen])
				last = idx + openLen
				pendingOpen = none
				continue
			}
			if r == closeMarker {
				return nil, &EmptyPlaceholderNameError{Position: pendingOpen}
			}
			// A placeholder begins at the pending marker; r is the first
			// rune of its name.
			pushVerbatim(tmpl[last:pendingOpen])
			openPos = pendingOpen
			keyStart = pendingOpen + openLen
			pendingOpen = none

		case keyStart != none:
			switch r {
			case closeMarker:
				name := tmpl[keyStart:idx]
				fn, ok := registry.Lookup(name)
				if !ok {
					return nil, &UnknownPlaceholderError{Name: name, Position: openPos}
				}
				pieces = append(pieces, piece[T]{kind: pieceFormatter, name: name, fn: fn})
				placeholders++
				keyStart, openPos = none, none
				last = idx + closeLen
			case openMarker:
				// A second opening marker before the close: the open
				// placeholder is never terminated.
				return nil, &UnterminatedPlaceholderError{Position: openPos}
			}

		case pendingClose != none:
			if r != closeMarker {
				return nil, &UnmatchedClosingMarkerError{Position: pendingClose}
			}
			// Doubled closing marker: one literal marker.
			pushVerbatim(tmpl[last : pendingClose+closeLen])
			last = idx + closeLen
			pendingClose = none

		case r == openMarker:
			pendingOpen = idx
		case r == closeMarker:
			pendingClose = idx
		}
	}

	switch {
	case pendingOpen != none:
		return nil, &UnterminatedPlaceholderError{Position: pendingOpen}
	case keyStart != none:
		return nil, &UnterminatedPlaceholderError{Position: openPos}
	case pendingClose != none:
		return nil, &UnmatchedClosingMarkerError{Position: pendingClose}
	}
	pushVerbatim(tmpl[last:])

	return &PreparedTemplate[T]{
		pieces:   pieces,
		source:   tmpl,
		sizeHint: literalBytes + placeholders*renderBytesPerPlaceholder,
	}, nil
}
