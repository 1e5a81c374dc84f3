package gridview

import (
	"fmt"

	"github.com/gdamore/tcell/v3"
)

// Cell is the visual element a CellFactory places into a slot.
type Cell interface {
	Draw(screen tcell.Screen)
	SetRect(x, y, width, height int)
}

// DropMarker tells a cell how it relates to the current drop location.
type DropMarker int

const (
	// DropMarkerNone means the cell is not a drop target.
	DropMarkerNone DropMarker = iota
	// DropMarkerBefore means dropped items would be inserted before the cell.
	DropMarkerBefore
	// DropMarkerAfter means dropped items would be inserted after the cell.
	DropMarkerAfter
	// DropMarkerOn means items would be dropped onto the cell.
	DropMarkerOn
)

func (m DropMarker) String() string {
	switch m {
	case DropMarkerNone:
		return "none"
	case DropMarkerBefore:
		return "before"
	case DropMarkerAfter:
		return "after"
	case DropMarkerOn:
		return "on"
	}
	return fmt.Sprintf("DropMarker(%d)", int(m))
}

// CellFactory creates and updates the visual content of slots. All methods
// are called on the UI goroutine.
type CellFactory interface {
	// CreateOrReuse returns the cell showing item in slot. slot.Cell() may
	// hold a stale cell which the factory may repurpose when CanReuse is
	// true. It is only called for slots showing an item; slots leaving the
	// window are handed to Destroy instead.
	CreateOrReuse(list *GridList, slot *Slot, item any) Cell

	// SetSelected updates the selection and drop marker state of cell.
	SetSelected(list *GridList, slot *Slot, item any, selected bool, marker DropMarker, cell Cell)

	// ContainerStyleChanged is called when the list's own style changed and
	// should be propagated to cell.
	ContainerStyleChanged(list *GridList, slot *Slot, cell Cell)

	// Destroy releases cell before the slot drops it.
	Destroy(list *GridList, slot *Slot, item any, cell Cell)

	// CanReuse reports whether CreateOrReuse repurposes stale cells. The
	// answer must not change over the factory's lifetime.
	CanReuse() bool
}
