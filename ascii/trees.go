// Package ascii provides the tree art drawn on the left of the banner.
// Templates are stored once per Mode and expanded with a Palette at startup.
package ascii

import (
	"strings"

	"treefetch/sysinfo"
)

// Mode selects the tree variant.
type Mode int

const (
	// Default is the plain green tree.
	Default Mode = iota
	// Bonsai is the bonsai tree in a pot.
	Bonsai
	// Christmas is the decorated tree; it also turns on ornament coloring in
	// the fact column.
	Christmas
)

func (m Mode) String() string {
	switch m {
	case Bonsai:
		return "bonsai"
	case Christmas:
		return "christmas"
	default:
		return "default"
	}
}

// Festive reports whether fact lines get ornament decoration.
func (m Mode) Festive() bool {
	return m == Christmas
}

// Templates use {name} placeholders for palette entries. Indentation before
// each row only keeps the source readable and is trimmed away.
var templates = map[Mode]string{
	Default: `{green}     /\*\       {reset}
		{green}    /\O\*\      {reset}
		{green}   /*/\/\/\     {reset}
		{green}  /\O\/\*\/\    {reset}
		{green} /\*\/\*\/\/\   {reset}
		{green} |O\/\/*/\/O|   {reset}
		{yellow}      ||        {reset}
		{yellow}      ||        {reset}
		`,

	Bonsai: `{green} {bold}             &               {reset}
		{green}          && & &&             {reset}
		{green}         &{yellow}_& & _/{green}&            {reset}
		{yellow}{bold}           /~\                {reset}
		{green} &  & &{yellow}     /|                {reset}
		{green} & {yellow}{bold}_&{reset}{green}&{yellow}   _\_/|   {green}             {reset}
		{green}&& {yellow}{bold}&{reset}{green}&&{yellow}_/    |\     {green} && &      {reset}
		{green}  &&{yellow}_|/{green}{bold} &{reset}{yellow}  \//~\{green}{bold}   &&{reset}{yellow} &&{green}&     {reset}
		{yellow}            |/\__/{green}& &{yellow}_/_{green}&&    {reset}
		{gray}        :{green}____{yellow}./~\.{green}____{gray}:       {reset}
		{gray}         \___________/        {reset}
		{gray}          (_)     (_)         {reset}
		`,

	Christmas: `{brightyellow}{bold}      ★         {reset}
		{green}     /\{red}{bold}o{green}\       {reset}
		{green}    /\{red}{bold}o{green}\*\      {reset}
		{green}   /{red}{bold}o{green}/\/\{blue}{bold}o{green}\     {reset}
		{green}  /\O\/\{red}{bold}o{green}\/{red}{bold}o{green}    {reset}
		{green} /{blue}{bold}o{green}*{red}{bold}o{green}/{blue}{bold}o{green}*\/{red}{bold}o{green}/\   {reset}
		{green} |O\/\/*/{red}{bold}o{green}/O|   {reset}
		{yellow}      ||        {reset}
		`,
}

// Art holds the expanded, split template of every Mode.
type Art struct {
	blocks map[Mode][]string
}

// New expands all templates with the palette's escape sequences.
//
// Parameters:
//   - p: The color palette substituted into the {name} placeholders
//
// Returns:
//   - An Art ready to hand out line blocks for any Mode
func New(p sysinfo.Palette) *Art {
	r := strings.NewReplacer(
		"{green}", p.Green,
		"{yellow}", p.Yellow,
		"{red}", p.Red,
		"{blue}", p.Blue,
		"{brightyellow}", p.BrightYellow,
		"{gray}", p.Gray,
		"{bold}", p.Bold,
		"{reset}", p.Reset,
	)

	a := &Art{blocks: make(map[Mode][]string, len(templates))}
	for mode, tmpl := range templates {
		a.blocks[mode] = SplitLines(r.Replace(tmpl))
	}
	return a
}

// Lines returns a copy of the art block for m. Unknown modes get the
// default tree.
func (a *Art) Lines(m Mode) []string {
	block, ok := a.blocks[m]
	if !ok {
		block = a.blocks[Default]
	}
	out := make([]string, len(block))
	copy(out, block)
	return out
}

// SplitLines splits a template on newlines and trims each row. Trailing
// segments that are blank after trimming (the indentation before a closing
// quote) are dropped; blank rows in the middle are kept.
//
// Example: SplitLines("  a\n  b\n  ") returns ["a", "b"]
func SplitLines(template string) []string {
	parts := strings.Split(template, "\n")
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]string, len(parts))
	for i, part := range parts {
		lines[i] = strings.TrimSpace(part)
	}
	return lines
}
