package gridview

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview/rangemodel"
)

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// TrackClickBehavior configures behavior when clicking scrollbar track cells
// outside the thumb.
type TrackClickBehavior uint8

const (
	TrackClickBehaviorPage TrackClickBehavior = iota
	TrackClickBehaviorJumpToClick
)

const subcell = 8

// GlyphSet defines vertical track, arrow, and fractional thumb glyphs.
type GlyphSet struct {
	TrackVertical string

	ArrowVerticalStart string
	ArrowVerticalEnd   string

	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string
}

// MinimalGlyphSet returns the legacy computing glyph set with a blank track.
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8 fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical: lightVertical,

		ArrowVerticalStart: "▲",
		ArrowVerticalEnd:   "▼",

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical: lightVertical,

		ArrowVerticalStart: "▲",
		ArrowVerticalEnd:   "▼",

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
	}
}

// ErrUnknownGlyphSet is returned by ParseGlyphSet.
var ErrUnknownGlyphSet = errors.New("unknown scrollbar glyph set")

// ParseGlyphSet returns the glyph set called name: "minimal", "legacy" or
// "unicode".
func ParseGlyphSet(name string) (GlyphSet, error) {
	switch name {
	case "minimal":
		return MinimalGlyphSet(), nil
	case "legacy":
		return LegacyComputingGlyphSet(), nil
	case "unicode":
		return UnicodeGlyphSet(), nil
	}
	return GlyphSet{}, fmt.Errorf("%w: %q", ErrUnknownGlyphSet, name)
}

// ScrollBar renders a vertical scrollbar for a range model. The model's
// value span [Minimum, Maximum] is the content, Extent+1 units are visible,
// and Value is the offset of the first visible unit. User interaction writes
// the model's value.
type ScrollBar struct {
	*Box

	model   rangemodel.Model
	enabled bool
	// The model value when a thumb drag started and the drag origin row.
	dragging       bool
	dragValue      int
	dragY          int
	autoHide       bool
	trackStyle     tcell.Style
	thumbStyle     tcell.Style
	arrowStyle     tcell.Style
	glyphSet       GlyphSet
	arrows         ScrollBarArrows
	trackClick     TrackClickBehavior
	scrollStep     int
	errorFunc      func(error)
	unsubscribeFor func()
}

// NewScrollBar returns a new vertical scrollbar over model. A nil model is
// replaced by an empty default range.
func NewScrollBar(model rangemodel.Model) *ScrollBar {
	s := &ScrollBar{
		Box:        NewBox(),
		enabled:    true,
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor),
		arrowStyle: tcell.StyleDefault.Dim(true),
		glyphSet:   MinimalGlyphSet(),
		scrollStep: 1,
	}
	s.SetModel(model)
	return s
}

// SetModel binds the scrollbar to a range model.
func (s *ScrollBar) SetModel(model rangemodel.Model) *ScrollBar {
	if model == nil {
		model = rangemodel.NewDefault(0, 0, 0, 0)
	}
	if s.model == model {
		return s
	}
	if s.unsubscribeFor != nil {
		s.unsubscribeFor()
	}
	s.model = model
	s.unsubscribeFor = model.Subscribe(s.MarkDirty)
	s.MarkDirty()
	return s
}

// GetModel returns the bound range model.
func (s *ScrollBar) GetModel() rangemodel.Model {
	return s.model
}

// SetEnabled enables or disables the scrollbar. A disabled scrollbar draws
// only its background and ignores input.
func (s *ScrollBar) SetEnabled(enabled bool) *ScrollBar {
	if s.enabled != enabled {
		s.enabled = enabled
		s.dragging = false
		s.MarkDirty()
	}
	return s
}

// IsEnabled reports whether the scrollbar accepts input.
func (s *ScrollBar) IsEnabled() bool {
	return s.enabled
}

// SetErrorFunc sets the handler for errors returned by the model when user
// interaction writes a new value.
func (s *ScrollBar) SetErrorFunc(handler func(error)) *ScrollBar {
	s.errorFunc = handler
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	if s.glyphSet != g {
		s.glyphSet = g
		s.MarkDirty()
	}
	return s
}

// SetArrows sets which arrow endcaps are rendered.
func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	if s.arrows != arrows {
		s.arrows = arrows
		s.MarkDirty()
	}
	return s
}

// SetTrackClickBehavior sets behavior used for track clicks.
func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.trackClick = behavior
	return s
}

// SetScrollStep sets the step used by wheel and arrow interactions.
func (s *ScrollBar) SetScrollStep(step int) *ScrollBar {
	s.scrollStep = max(step, 1)
	return s
}

// SetAutoHide controls whether the scrollbar is hidden when there is nothing
// to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	if s.autoHide != autoHide {
		s.autoHide = autoHide
		s.MarkDirty()
	}
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	if s.thumbStyle != style {
		s.thumbStyle = style
		s.MarkDirty()
	}
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	if s.trackStyle != style {
		s.trackStyle = style
		s.MarkDirty()
	}
	return s
}

// lengths returns content length, viewport length and offset in model units.
func (s *ScrollBar) lengths() (content, viewport, offset int) {
	m := s.model
	content = m.Maximum() - m.Minimum() + 1
	viewport = m.Extent() + 1
	offset = m.Value() - m.Minimum()
	return
}

func (s *ScrollBar) trackCells(length int) int {
	arrows := 0
	if s.arrows.hasStart() {
		arrows++
	}
	if s.arrows.hasEnd() {
		arrows++
	}
	return max(length-arrows, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func (s *ScrollBar) metrics(length int) scrollMetrics {
	content, viewport, offset := s.lengths()
	return computeScrollMetrics(s.trackCells(length), content, viewport, offset)
}

// computeScrollMetrics computes thumb geometry in 1/8 cell units.
func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func (s *ScrollBar) shouldDraw(m scrollMetrics) bool {
	if !s.enabled || m.trackLen == 0 {
		return false
	}
	if s.autoHide {
		content, viewport, _ := s.lengths()
		if content <= viewport {
			return false
		}
	}
	return true
}

func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphFor(start, fillLen int) (string, tcell.Style) {
	if fillLen <= 0 {
		return s.glyphSet.TrackVertical, s.trackStyle
	}
	if fillLen >= subcell {
		return s.glyphSet.ThumbVerticalLower[subcell-1], s.thumbStyle
	}
	if start == 0 {
		return s.glyphSet.ThumbVerticalUpper[fillLen-1], s.thumbStyle
	}
	return s.glyphSet.ThumbVerticalLower[fillLen-1], s.thumbStyle
}

// Draw draws the scrollbar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, _, height := s.GetInnerRect()
	if height <= 0 {
		return
	}
	m := s.metrics(height)
	if !s.shouldDraw(m) {
		return
	}

	row := y
	if s.arrows.hasStart() {
		screen.Put(x, row, s.glyphSet.ArrowVerticalStart, s.arrowStyle)
		row++
	}
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyphFor(cellFill(m, cell))
		screen.Put(x, row, glyph, style)
		row++
	}
	if s.arrows.hasEnd() {
		screen.Put(x, row, s.glyphSet.ArrowVerticalEnd, s.arrowStyle)
	}
}

// ScrollBy moves the model value by delta units.
func (s *ScrollBar) ScrollBy(delta int) {
	s.setValue(s.model.Value() + delta)
}

func (s *ScrollBar) setValue(value int) {
	if err := s.model.SetValue(value); err != nil && s.errorFunc != nil {
		s.errorFunc(err)
	}
}

// valueAt maps a track cell to the model value whose page starts there.
func (s *ScrollBar) valueAt(cell int, m scrollMetrics) int {
	content, viewport, _ := s.lengths()
	maxOffset := max(content-viewport, 0)
	travelCells := max(m.trackCells-(m.thumbLen+subcell-1)/subcell, 1)
	cell = min(max(cell, 0), travelCells)
	return s.model.Minimum() + (maxOffset*cell+travelCells/2)/travelCells
}

// MouseHandler handles wheel, arrow, track and thumb interaction.
func (s *ScrollBar) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return s.handleMouse(action, x, y)
}

func (s *ScrollBar) handleMouse(action MouseAction, x, y int) (Primitive, Command) {
	if !s.enabled {
		return nil, nil
	}
	if s.dragging {
		switch action {
		case MouseMove:
			_, _, _, height := s.GetInnerRect()
			m := s.metrics(height)
			content, viewport, _ := s.lengths()
			maxOffset := max(content-viewport, 0)
			travel := max(m.trackLen-m.thumbLen, 1)
			s.setValue(s.dragValue + (y-s.dragY)*subcell*maxOffset/travel)
			return s, RedrawCommand{}
		case MouseLeftUp:
			s.dragging = false
			return nil, RedrawCommand{}
		}
		return s, nil
	}
	if !s.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseScrollUp:
		s.ScrollBy(-s.scrollStep)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		s.ScrollBy(s.scrollStep)
		return nil, RedrawCommand{}
	case MouseLeftDown:
		_, top, _, height := s.GetInnerRect()
		row := y - top
		if s.arrows.hasStart() {
			if row == 0 {
				s.ScrollBy(-s.scrollStep)
				return nil, RedrawCommand{}
			}
			row--
		}
		m := s.metrics(height)
		if row >= m.trackCells {
			if s.arrows.hasEnd() && row == m.trackCells {
				s.ScrollBy(s.scrollStep)
				return nil, RedrawCommand{}
			}
			return nil, nil
		}
		thumbTop := m.thumbStart / subcell
		thumbBottom := (m.thumbStart + m.thumbLen - 1) / subcell
		switch {
		case row >= thumbTop && row <= thumbBottom:
			s.dragging = true
			s.dragValue = s.model.Value()
			s.dragY = y
			return s, nil
		case s.trackClick == TrackClickBehaviorJumpToClick:
			s.setValue(s.valueAt(row, m))
		case row < thumbTop:
			s.ScrollBy(-(s.model.Extent() + 1))
		default:
			s.ScrollBy(s.model.Extent() + 1)
		}
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var _ Primitive = &ScrollBar{}
