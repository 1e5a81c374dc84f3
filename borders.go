package gridview

import (
	"errors"
	"fmt"
)

// ErrUnknownBorderSet is returned by ParseBorderSet for unknown names.
var ErrUnknownBorderSet = errors.New("unknown border set")

// Box drawing glyphs used by the border sets.
const (
	lightHorizontal    = "─"
	lightVertical      = "│"
	lightDownRight     = "┌"
	lightDownLeft      = "┐"
	lightUpRight       = "└"
	lightUpLeft        = "┘"
	arcDownRight       = "╭"
	arcDownLeft        = "╮"
	arcUpRight         = "╰"
	arcUpLeft          = "╯"
	heavyHorizontal    = "━"
	heavyVertical      = "┃"
	heavyDownRight     = "┏"
	heavyDownLeft      = "┓"
	heavyUpRight       = "┗"
	heavyUpLeft        = "┛"
	doubleHorizontal   = "═"
	doubleVertical     = "║"
	doubleDownRight    = "╔"
	doubleDownLeft     = "╗"
	doubleUpRight      = "╚"
	doubleUpLeft       = "╝"
	horizontalEllipsis = "…"
)

// BorderSet defines the glyphs used when borders are drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// BorderSetHidden draws borders as blanks, keeping the space they take.
func BorderSetHidden() BorderSet {
	return BorderSet{
		Top: " ", Bottom: " ", Left: " ", Right: " ",
		TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
	}
}

// BorderSetPlain draws thin lines with square corners.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         lightHorizontal,
		Bottom:      lightHorizontal,
		Left:        lightVertical,
		Right:       lightVertical,
		TopLeft:     lightDownRight,
		TopRight:    lightDownLeft,
		BottomLeft:  lightUpRight,
		BottomRight: lightUpLeft,
	}
}

// BorderSetRound draws thin lines with rounded corners.
func BorderSetRound() BorderSet {
	s := BorderSetPlain()
	s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight = arcDownRight, arcDownLeft, arcUpRight, arcUpLeft
	return s
}

// BorderSetThick draws heavy lines.
func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         heavyHorizontal,
		Bottom:      heavyHorizontal,
		Left:        heavyVertical,
		Right:       heavyVertical,
		TopLeft:     heavyDownRight,
		TopRight:    heavyDownLeft,
		BottomLeft:  heavyUpRight,
		BottomRight: heavyUpLeft,
	}
}

// BorderSetDouble draws double lines.
func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         doubleHorizontal,
		Bottom:      doubleHorizontal,
		Left:        doubleVertical,
		Right:       doubleVertical,
		TopLeft:     doubleDownRight,
		TopRight:    doubleDownLeft,
		BottomLeft:  doubleUpRight,
		BottomRight: doubleUpLeft,
	}
}

// ParseBorderSet returns the border set called name: "plain", "round",
// "thick", "double" or "hidden".
func ParseBorderSet(name string) (BorderSet, error) {
	switch name {
	case "plain":
		return BorderSetPlain(), nil
	case "round":
		return BorderSetRound(), nil
	case "thick":
		return BorderSetThick(), nil
	case "double":
		return BorderSetDouble(), nil
	case "hidden":
		return BorderSetHidden(), nil
	}
	return BorderSet{}, fmt.Errorf("%w: %q", ErrUnknownBorderSet, name)
}

// Borders is a set of box edges.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any edge of flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
