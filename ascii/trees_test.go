package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treefetch/sysinfo"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single line", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"trailing indentation", "a\n\t\tb\n\t\t", []string{"a", "b"}},
		{"keeps inner blank rows", "a\n\n b ", []string{"a", "", "b"}},
		{"only whitespace", "   ", []string{}},
		{"trailing blank rows", "a\n\n  \n", []string{"a"}},
		{"escapes survive trim", " \x1b[32m  /\\ \x1b[0m ", []string{"\x1b[32m  /\\ \x1b[0m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestSplitLinesIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"  a  \n  b\n",
		"x\n\n\ty\n   ",
		"a\n\n\n",
		templates[Bonsai],
	}

	for _, in := range inputs {
		once := SplitLines(in)
		again := SplitLines(strings.Join(once, "\n"))
		assert.Equal(t, once, again, "input %q", in)
	}
}

func TestLinesDeterministic(t *testing.T) {
	p := sysinfo.NewPalette()
	for _, mode := range []Mode{Default, Bonsai, Christmas} {
		first := New(p).Lines(mode)
		second := New(p).Lines(mode)
		assert.Equal(t, first, second, mode.String())
	}
}

func TestLinesShape(t *testing.T) {
	art := New(sysinfo.NewPalette())
	tests := []struct {
		mode  Mode
		rows  int
		width int
	}{
		{Default, 8, 16},
		{Bonsai, 12, 30},
		{Christmas, 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			lines := art.Lines(tt.mode)
			require.Len(t, lines, tt.rows)
			for i, line := range lines {
				assert.Equal(t, tt.width, sysinfo.VisibleWidth(line), "row %d", i)
				assert.True(t, strings.HasSuffix(line, "\x1b[0m"), "row %d lacks reset", i)
				assert.NotContains(t, line, "{", "row %d has an unexpanded placeholder", i)
				assert.Equal(t, strings.TrimSpace(line), line, "row %d", i)
			}
		})
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	art := New(sysinfo.NewPalette())
	lines := art.Lines(Default)
	lines[0] = "changed"
	assert.NotEqual(t, "changed", art.Lines(Default)[0])
}

func TestLinesUnknownModeFallsBack(t *testing.T) {
	art := New(sysinfo.NewPalette())
	assert.Equal(t, art.Lines(Default), art.Lines(Mode(42)))
}

func TestDefaultTreeColors(t *testing.T) {
	p := sysinfo.NewPalette()
	lines := New(p).Lines(Default)
	assert.Equal(t, p.Green+`     /\*\       `+p.Reset, lines[0])
	assert.Equal(t, p.Yellow+`      ||        `+p.Reset, lines[7])
}

func TestModeFestive(t *testing.T) {
	assert.False(t, Default.Festive())
	assert.False(t, Bonsai.Festive())
	assert.True(t, Christmas.Festive())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "bonsai", Bonsai.String())
	assert.Equal(t, "christmas", Christmas.String())
	assert.Equal(t, "default", Mode(-1).String())
}
