// Package status contains difference status color-coding and labeling for generating reports.
package status

import "github.com/fatih/color"

// Status represents whether two inputs are identical or different
type Status int

const (
	// Identical inputs have no differences
	Identical Status = iota
	// Different inputs have at least one difference
	Different
)

// New returns the Status for a comparison's 'differs' result
func New(differs bool) Status {
	if differs {
		return Different
	}
	return Identical
}

// Label returns a short, human-readable label
func (s Status) Label() string {
	switch s {
	case Identical:
		return "identical"
	default:
		return "different"
	}
}

func green() *color.Color   { return color.New(color.FgGreen) }
func boldRed() *color.Color { return color.New(color.Bold, color.FgRed) }

// Colorize formats 'str' with this status's assigned color if enabled is true
func (s Status) Colorize(str string, enabled bool) string {
	return Paint(s.color(), str, enabled)
}

func (s Status) color() *color.Color {
	switch s {
	case Identical:
		return green()
	default:
		return boldRed()
	}
}

// Emoji returns this status's assigned emoji
func (s Status) Emoji() string {
	switch s {
	case Identical:
		return "🟢"
	default:
		return "🔴"
	}
}

// Paint formats 'str' with 'c' if enabled is true. Ignores color's global NoColor setting.
func Paint(c *color.Color, str string, enabled bool) string {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(str)
}
