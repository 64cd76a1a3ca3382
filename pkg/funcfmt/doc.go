// Package funcfmt provides a callback-driven string templating engine.
//
// A template is compiled once against a registry of named formatter
// callbacks, and the resulting PreparedTemplate is rendered many times
// against different data values. Parsing cost is paid exactly once per
// template; each render only walks the precompiled pieces. This is aimed at
// call sites that apply one format string to a large number of records,
// such as renaming thousands of files from a shared naming pattern.
//
// # Quick Start
//
//	reg := funcfmt.NewFormatterRegistry[string]()
//	reg.Register("foo", func(data *string) (string, bool) {
//	    return "foo: " + *data, true
//	})
//
//	tmpl, err := funcfmt.Prepare(reg, "{foo}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data := "X"
//	out, err := tmpl.Render(&data)
//	// out == "foo: X"
//
// # Template Syntax
//
// Placeholders: {name}, replaced by the output of the callback registered
// under "name".
//
// Escapes: {{ produces a literal "{", }} produces a literal "}". There is
// no other syntax; the language is a flat substitution grammar with no
// loops, conditionals, or nesting.
//
// Compilation fails on references to unregistered names, unterminated
// placeholders, empty placeholder names, and stray closing markers. A
// render fails with MissingValueError when a callback reports that it has
// no value for the given data; a failed render produces no output at all.
//
// # Reuse and Concurrency
//
// A PreparedTemplate is immutable. It may be rendered concurrently from
// any number of goroutines as long as the registered callbacks themselves
// tolerate concurrent invocation. The registry may be modified or dropped
// after compilation; prepared templates keep their own references to the
// callbacks they use.
//
// For hosts that compile the same template sources repeatedly, Engine
// wraps the compile path with a TTL cache, configuration, and debug
// logging. The core Prepare and Render paths stay pure: they never log
// and never touch global state.
package funcfmt
