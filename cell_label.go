package gridview

import (
	"fmt"

	"github.com/gdamore/tcell/v3"
)

// LabelCell is a cell showing one line of text, vertically centred.
type LabelCell struct {
	*Box

	text      string
	textStyle tcell.Style
	alignment Alignment

	selected bool
	marker   DropMarker
}

// NewLabelCell returns a cell showing text.
func NewLabelCell(text string) *LabelCell {
	return &LabelCell{
		Box:       NewBox(),
		text:      text,
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		alignment: AlignmentCenter,
	}
}

// SetText sets the text.
func (c *LabelCell) SetText(text string) *LabelCell {
	if text != c.text {
		c.text = text
		c.MarkDirty()
	}
	return c
}

// GetText returns the text.
func (c *LabelCell) GetText() string {
	return c.text
}

// SetTextStyle sets the style of the text.
func (c *LabelCell) SetTextStyle(style tcell.Style) *LabelCell {
	if style != c.textStyle {
		c.textStyle = style
		c.MarkDirty()
	}
	return c
}

// SetAlignment sets the horizontal alignment of the text.
func (c *LabelCell) SetAlignment(alignment Alignment) *LabelCell {
	if alignment != c.alignment {
		c.alignment = alignment
		c.MarkDirty()
	}
	return c
}

// IsSelected reports whether the cell is drawn as selected.
func (c *LabelCell) IsSelected() bool {
	return c.selected
}

// Marker returns the drop marker the cell is drawn with.
func (c *LabelCell) Marker() DropMarker {
	return c.marker
}

// Draw draws the text truncated to the inner width.
func (c *LabelCell) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	style := c.textStyle.Background(c.GetBackgroundColor())
	PrintWithStyle(screen, Truncate(c.text, width), x, y+(height-1)/2, width, c.alignment, style)
}

// LabelCellFactory is the default CellFactory. It shows each item as a
// LabelCell, highlights selected cells and draws drop markers as borders.
type LabelCellFactory struct {
	reuse         bool
	format        func(item any) string
	selectedStyle tcell.Style
	markerStyle   tcell.Style
	markerBorders BorderSet
	alignment     Alignment
}

// LabelOption configures a LabelCellFactory.
type LabelOption func(*LabelCellFactory)

// WithReuse makes the factory repurpose stale cells.
func WithReuse(reuse bool) LabelOption {
	return func(f *LabelCellFactory) {
		f.reuse = reuse
	}
}

// WithFormatter sets how items are turned into text.
func WithFormatter(format func(item any) string) LabelOption {
	return func(f *LabelCellFactory) {
		if format != nil {
			f.format = format
		}
	}
}

// WithSelectedStyle sets the style of selected cells.
func WithSelectedStyle(style tcell.Style) LabelOption {
	return func(f *LabelCellFactory) {
		f.selectedStyle = style
	}
}

// WithMarkerStyle sets the style of drop marker borders.
func WithMarkerStyle(style tcell.Style) LabelOption {
	return func(f *LabelCellFactory) {
		f.markerStyle = style
	}
}

// WithMarkerBorderSet sets the glyphs of drop marker borders.
func WithMarkerBorderSet(set BorderSet) LabelOption {
	return func(f *LabelCellFactory) {
		f.markerBorders = set
	}
}

// WithAlignment sets the text alignment.
func WithAlignment(alignment Alignment) LabelOption {
	return func(f *LabelCellFactory) {
		f.alignment = alignment
	}
}

// NewLabelCellFactory returns a factory configured by options. Cells are not
// reused unless WithReuse(true) is given.
func NewLabelCellFactory(options ...LabelOption) *LabelCellFactory {
	f := &LabelCellFactory{
		format:        func(item any) string { return fmt.Sprint(item) },
		selectedStyle: tcell.StyleDefault.Foreground(Styles.SelectedTextColor).Background(Styles.SelectedBackgroundColor),
		markerStyle:   tcell.StyleDefault.Foreground(Styles.DropMarkerColor),
		markerBorders: BorderSetThick(),
		alignment:     AlignmentCenter,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// CreateOrReuse implements CellFactory.
func (f *LabelCellFactory) CreateOrReuse(list *GridList, slot *Slot, item any) Cell {
	if c, ok := slot.Cell().(*LabelCell); ok && f.reuse {
		return c.SetText(f.format(item))
	}
	return NewLabelCell(f.format(item)).SetAlignment(f.alignment)
}

// SetSelected implements CellFactory.
func (f *LabelCellFactory) SetSelected(list *GridList, slot *Slot, item any, selected bool, marker DropMarker, cell Cell) {
	c, ok := cell.(*LabelCell)
	if !ok {
		return
	}
	c.selected, c.marker = selected, marker
	f.applyStyle(list, c)

	borders := BordersNone
	switch marker {
	case DropMarkerBefore:
		borders = BordersLeft
	case DropMarkerAfter:
		borders = BordersRight
	case DropMarkerOn:
		borders = BordersAll
	}
	c.SetBorders(borders)
	c.SetBorderSet(f.markerBorders)
	c.SetBorderStyle(f.markerStyle.Background(c.GetBackgroundColor()))
}

// ContainerStyleChanged implements CellFactory.
func (f *LabelCellFactory) ContainerStyleChanged(list *GridList, slot *Slot, cell Cell) {
	if c, ok := cell.(*LabelCell); ok {
		f.applyStyle(list, c)
	}
}

func (f *LabelCellFactory) applyStyle(list *GridList, c *LabelCell) {
	if c.selected {
		c.SetBackgroundColor(f.selectedStyle.GetBackground())
		c.SetTextStyle(f.selectedStyle)
		return
	}
	c.SetBackgroundColor(list.GetBackgroundColor())
	c.SetTextStyle(tcell.StyleDefault.Foreground(Styles.PrimaryTextColor))
}

// Destroy implements CellFactory. Label cells hold no resources.
func (f *LabelCellFactory) Destroy(list *GridList, slot *Slot, item any, cell Cell) {}

// CanReuse implements CellFactory.
func (f *LabelCellFactory) CanReuse() bool {
	return f.reuse
}

var (
	_ CellFactory = &LabelCellFactory{}
	_ Primitive   = &LabelCell{}
)
