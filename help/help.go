// Package help renders key bindings as a help bar.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/keybind"
)

// KeyMap is implemented by anything offering bindings to display.
type KeyMap interface {
	// ShortHelp returns the bindings of the one-line bar.
	ShortHelp() []keybind.Keybind
	// FullHelp returns groups of bindings, one column per group.
	FullHelp() [][]keybind.Keybind
}

// Help draws the bindings of one or more key maps. In short mode all short
// bindings share one line; in full mode each group becomes a column.
type Help struct {
	*gridview.Box
	styles Styles

	keyMaps   []KeyMap
	showAll   bool
	separator string
	gap       string
	ellipsis  string
}

// New returns an empty help bar.
func New() *Help {
	return &Help{
		Box:       gridview.NewBox(),
		styles:    DefaultStyles(),
		separator: " • ",
		gap:       "    ",
		ellipsis:  "…",
	}
}

// SetKeyMaps sets the key maps shown, in order.
func (h *Help) SetKeyMaps(keyMaps ...KeyMap) *Help {
	h.keyMaps = keyMaps
	h.MarkDirty()
	return h
}

// SetShowAll switches between short and full mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	if showAll != h.showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll reports whether full mode is on.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetStyles sets the styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.styles = styles
	h.MarkDirty()
	return h
}

// Height returns the number of lines the help needs for width.
func (h *Help) Height(width int) int {
	if !h.showAll {
		return 1
	}
	return max(len(h.fullLines(width)), 1)
}

// Draw draws the bar.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	x, y, width, height := h.GetInnerRect()

	lines := [][]segment{h.shortLine(width)}
	if h.showAll {
		lines = h.fullLines(width)
	}
	for row := 0; row < len(lines) && row < height; row++ {
		drawSegments(screen, x, y+row, width, lines[row])
	}
}

// ShortText returns the short line as plain text.
func (h *Help) ShortText(width int) string {
	return plain(h.shortLine(width))
}

// FullText returns the full mode lines as plain text.
func (h *Help) FullText(width int) []string {
	lines := h.fullLines(width)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = plain(line)
	}
	return out
}

type segment struct {
	text  string
	style tcell.Style
}

func (h *Help) shortLine(width int) []segment {
	var out []segment
	for _, keyMap := range h.keyMaps {
		for _, kb := range keyMap.ShortHelp() {
			item := h.item(kb)
			if item == nil {
				continue
			}
			next := item
			if len(out) > 0 {
				next = append([]segment{{text: h.separator, style: h.styles.Separator}}, item...)
			}
			if width > 0 && widthOf(out)+widthOf(next) > width {
				return h.withEllipsis(out, width)
			}
			out = append(out, next...)
		}
	}
	return out
}

func (h *Help) item(kb keybind.Keybind) []segment {
	if !kb.Enabled() {
		return nil
	}
	hp := kb.Help()
	switch {
	case hp.Key == "" && hp.Desc == "":
		return nil
	case hp.Key == "":
		return []segment{{text: hp.Desc, style: h.styles.Desc}}
	case hp.Desc == "":
		return []segment{{text: hp.Key, style: h.styles.Key}}
	}
	return []segment{{text: hp.Key, style: h.styles.Key}, {text: " " + hp.Desc, style: h.styles.Desc}}
}

// withEllipsis appends the ellipsis only if it fits completely.
func (h *Help) withEllipsis(line []segment, width int) []segment {
	tail := segment{text: " " + h.ellipsis, style: h.styles.Ellipsis}
	if h.ellipsis != "" && widthOf(line)+gridview.StringWidth(tail.text) <= width {
		return append(line, tail)
	}
	return line
}

type column struct {
	keys, descs []string
	keyWidth    int
	width       int
}

func (h *Help) fullLines(width int) [][]segment {
	var columns []column
	for _, keyMap := range h.keyMaps {
		for _, group := range keyMap.FullHelp() {
			var c column
			for _, kb := range group {
				hp := kb.Help()
				if !kb.Enabled() || (hp.Key == "" && hp.Desc == "") {
					continue
				}
				c.keys = append(c.keys, hp.Key)
				c.descs = append(c.descs, hp.Desc)
				c.keyWidth = max(c.keyWidth, gridview.StringWidth(hp.Key))
			}
			for _, desc := range c.descs {
				c.width = max(c.width, c.keyWidth+1+gridview.StringWidth(desc))
			}
			if len(c.keys) > 0 {
				columns = append(columns, c)
			}
		}
	}

	// Take columns while they fit.
	used, total := 0, 0
	for i, c := range columns {
		w := c.width
		if i > 0 {
			w += gridview.StringWidth(h.gap)
		}
		if width > 0 && total+w > width {
			break
		}
		used++
		total += w
	}
	if used == 0 {
		if len(columns) == 0 {
			return nil
		}
		return [][]segment{{{text: h.ellipsis, style: h.styles.Ellipsis}}}
	}

	rows := 0
	for _, c := range columns[:used] {
		rows = max(rows, len(c.keys))
	}
	lines := make([][]segment, rows)
	for row := range rows {
		for i, c := range columns[:used] {
			if i > 0 {
				lines[row] = append(lines[row], segment{text: h.gap, style: h.styles.Separator})
			}
			last := i == used-1
			if row >= len(c.keys) {
				if !last {
					lines[row] = append(lines[row], segment{text: strings.Repeat(" ", c.width), style: h.styles.Desc})
				}
				continue
			}
			key := c.keys[row] + strings.Repeat(" ", c.keyWidth-gridview.StringWidth(c.keys[row]))
			desc := " " + c.descs[row]
			if !last {
				desc += strings.Repeat(" ", c.width-c.keyWidth-gridview.StringWidth(desc))
			}
			lines[row] = append(lines[row], segment{text: key, style: h.styles.Key}, segment{text: desc, style: h.styles.Desc})
		}
	}
	if used < len(columns) {
		lines[0] = h.withEllipsis(lines[0], width)
	}
	return lines
}

func drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	for _, s := range segments {
		if width <= 0 {
			return
		}
		_, printed := gridview.PrintWithStyle(screen, s.text, x, y, width, gridview.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

func widthOf(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += gridview.StringWidth(s.text)
	}
	return width
}

func plain(segments []segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.text)
	}
	return b.String()
}
