package entities

import "strings"

// Color is the header color of a column.
type Color string

const (
	ColorDefault Color = "DEFAULT"
	ColorBlue    Color = "BLUE"
	ColorRed     Color = "RED"
	ColorYellow  Color = "YELLOW"
	ColorGreen   Color = "GREEN"
)

func (c Color) IsValid() bool {
	switch c {
	case ColorDefault, ColorBlue, ColorRed, ColorYellow, ColorGreen:
		return true
	default:
		return false
	}
}

func ParseColor(v string) (Color, bool) {
	c := Color(strings.ToUpper(strings.TrimSpace(v)))
	return c, c.IsValid()
}
