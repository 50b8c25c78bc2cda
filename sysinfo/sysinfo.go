// Package sysinfo provides the host facts shown next to the tree: identity,
// distribution, kernel, shell, uptime and memory. Every fact is queried on its
// own so that one unreadable source never hides the others.
package sysinfo

import (
	"errors"
	"fmt"

	"github.com/muesli/termenv"
)

// ColorToken is a fully resolved ANSI escape sequence.
type ColorToken = string

// Palette holds the escape sequences used by the art and the fact lines.
// It is built once at startup and only ever read afterwards.
type Palette struct {
	Green        ColorToken
	Yellow       ColorToken
	Red          ColorToken
	Blue         ColorToken
	BrightYellow ColorToken
	Gray         ColorToken
	Bold         ColorToken
	Reset        ColorToken
}

// NewPalette resolves the SGR sequences for the standard ANSI colors.
func NewPalette() Palette {
	fg := func(c termenv.ANSIColor) ColorToken {
		return sgr(c.Sequence(false))
	}
	return Palette{
		Green:        fg(termenv.ANSIGreen),
		Yellow:       fg(termenv.ANSIYellow),
		Red:          fg(termenv.ANSIRed),
		Blue:         fg(termenv.ANSIBlue),
		BrightYellow: fg(termenv.ANSIBrightYellow),
		Gray:         fg(termenv.ANSIBrightBlack),
		Bold:         sgr(termenv.BoldSeq),
		Reset:        sgr(termenv.ResetSeq),
	}
}

func sgr(seq string) ColorToken {
	return termenv.CSI + seq + "m"
}

// Ornament is the glyph that Christmas mode paints red in fact lines.
const Ornament = "▪"

// ErrUnavailable is matched by every error a Provider returns.
var ErrUnavailable = errors.New("fact unavailable")

// FactError reports which fact could not be read and why.
type FactError struct {
	Fact string
	Err  error
}

func (e *FactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Fact, e.Err)
	}
	return e.Fact + ": " + ErrUnavailable.Error()
}

func (e *FactError) Unwrap() error { return e.Err }

// Is makes every FactError match ErrUnavailable.
func (e *FactError) Is(target error) bool {
	return target == ErrUnavailable
}

func unavailable(fact string, err error) error {
	return &FactError{Fact: fact, Err: err}
}

// Provider answers one query per fact kind. Each query makes a single
// attempt and returns either a display-ready line or an error matching
// ErrUnavailable.
type Provider interface {
	// UserAndHost returns the identity as two adjacent rows. festive
	// changes decoration only.
	UserAndHost(festive bool) (string, string, error)
	Distro() (string, error)
	Kernel() (string, error)
	Shell() (string, error)
	Uptime() (string, error)
	Memory() (string, error)
}

// Collect polls p in display order (identity, distro, kernel, shell, uptime,
// memory) and returns the lines of the facts that resolved. A failed fact
// contributes nothing, not even a blank row.
//
// Parameters:
//   - p: The fact source to poll
//   - festive: Forwarded to UserAndHost for Christmas decoration
//
// Returns:
//   - The ordered fact lines; empty when every query failed
func Collect(p Provider, festive bool) []string {
	var lines []string

	if header, rule, err := p.UserAndHost(festive); err == nil {
		lines = append(lines, header, rule)
	}

	for _, query := range []func() (string, error){
		p.Distro,
		p.Kernel,
		p.Shell,
		p.Uptime,
		p.Memory,
	} {
		if line, err := query(); err == nil {
			lines = append(lines, line)
		}
	}

	return lines
}
