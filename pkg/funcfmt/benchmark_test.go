package funcfmt

import (
	"fmt"
	"strings"
	"testing"
)

// thousandKeyFixture builds a registry of 999 numeric formatters and a
// template referencing every one of them, the worst-case shape for both
// compile and render.
func thousandKeyFixture() (*FormatterRegistry[string], string) {
	reg := NewFormatterRegistry[string]()
	var tmpl strings.Builder
	for i := 1; i < 1000; i++ {
		name := fmt.Sprintf("%d", i)
		reg.Register(name, func(e *string) (string, bool) {
			return "_" + *e + "_", true
		})
		fmt.Fprintf(&tmpl, "{%s}", name)
	}
	return reg, tmpl.String()
}

func BenchmarkPrepare(b *testing.B) {
	reg, tmpl := thousandKeyFixture()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Prepare(reg, tmpl); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	reg, tmpl := thousandKeyFixture()
	prepared, err := Prepare(reg, tmpl)
	if err != nil {
		b.Fatal(err)
	}
	data := "data"
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := prepared.Render(&data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderSmall(b *testing.B) {
	reg := NewFormatterRegistry[string]()
	reg.Register("name", func(e *string) (string, bool) { return *e, true })
	reg.Register("ext", func(*string) (string, bool) { return "flac", true })

	prepared, err := Prepare(reg, "{name} - remastered.{ext}")
	if err != nil {
		b.Fatal(err)
	}
	data := "track"
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := prepared.Render(&data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnginePrepareCached(b *testing.B) {
	reg, tmpl := thousandKeyFixture()
	e := New(reg, WithLogger[string](NewLogger(nil, LogOff)))
	if _, err := e.Prepare(tmpl); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := e.Prepare(tmpl); err != nil {
			b.Fatal(err)
		}
	}
}
