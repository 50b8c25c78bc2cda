// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches SGR escape codes so they can be ignored when measuring.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// labelWidth is the column the fact values line up on.
const labelWidth = len("memory")

// VisibleWidth calculates the display width of a string excluding ANSI
// escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal cells the string occupies
func VisibleWidth(s string) int {
	stripped := ansiRegex.ReplaceAllString(s, "")
	return runewidth.StringWidth(stripped)
}

// FormatUptime converts a duration into the compact "Xd Yh Zm" form.
//
// Leading zero components are dropped, so the result is one of "7m",
// "4h 12m" or "3d 0h 5m". Durations below a minute report "0m".
func FormatUptime(uptime time.Duration) string {
	if uptime < 0 {
		uptime = 0
	}
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatMemory renders used and total byte counts as "<used>m / <total>m"
// in mebibytes.
//
// Example: FormatMemory(1<<30, 4<<30) returns "1024m / 4096m"
func FormatMemory(used, total uint64) string {
	const mib = 1024 * 1024
	return fmt.Sprintf("%dm / %dm", used/mib, total/mib)
}

// PadRight pads a string with spaces to reach a minimum display width.
//
// Parameters:
//   - s: The string to pad
//   - width: The desired minimum width in terminal cells
//
// Returns:
//   - The padded string, or s unchanged when it is already wide enough
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// factLine lays out a labelled fact: a green ornament bullet, the bold label
// padded to the value column, then the value.
func factLine(p Palette, label, value string) string {
	return fmt.Sprintf("%s%s%s %s%s%s %s",
		p.Green, Ornament, p.Reset,
		p.Bold, PadRight(label, labelWidth), p.Reset,
		value)
}
