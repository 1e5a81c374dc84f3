package gridview

// Slot is one fixed cell of the grid. It remembers which logical index and
// item it currently shows so that its content can be torn down even after
// the list model changed underneath.
type Slot struct {
	index int
	item  any
	cell  Cell

	x, y, width, height int
}

func newSlot() *Slot {
	return &Slot{index: -1}
}

// Index returns the logical index shown by the slot, or -1 if it is empty.
func (s *Slot) Index() int {
	return s.index
}

// Item returns the item shown by the slot, or nil if it is empty.
func (s *Slot) Item() any {
	return s.item
}

// Cell returns the slot's visual element, or nil if it has none.
func (s *Slot) Cell() Cell {
	return s.cell
}

// IsEmpty reports whether the slot shows no item.
func (s *Slot) IsEmpty() bool {
	return s.index < 0
}

// GetRect returns the slot's area from the last layout.
func (s *Slot) GetRect() (int, int, int, int) {
	return s.x, s.y, s.width, s.height
}

func (s *Slot) setRect(x, y, width, height int) {
	s.x, s.y, s.width, s.height = x, y, width, height
	if s.cell != nil {
		s.cell.SetRect(x, y, width, height)
	}
}

// SlotGrid holds the row-major sequence of slots and lays them out. It knows
// nothing about items.
type SlotGrid struct {
	slots      []*Slot
	rows, cols int

	x, y, width, height int
}

// Len returns the number of slots.
func (g *SlotGrid) Len() int {
	return len(g.slots)
}

// At returns the slot at child index i.
func (g *SlotGrid) At(i int) *Slot {
	return g.slots[i]
}

// Insert inserts slot before child index i.
func (g *SlotGrid) Insert(i int, slot *Slot) {
	g.slots = append(g.slots, nil)
	copy(g.slots[i+1:], g.slots[i:])
	g.slots[i] = slot
}

// Append adds slot at the end.
func (g *SlotGrid) Append(slot *Slot) {
	g.slots = append(g.slots, slot)
}

// Remove removes and returns the slot at child index i.
func (g *SlotGrid) Remove(i int) *Slot {
	slot := g.slots[i]
	copy(g.slots[i:], g.slots[i+1:])
	g.slots[len(g.slots)-1] = nil
	g.slots = g.slots[:len(g.slots)-1]
	return slot
}

// Each calls fn for every slot in row-major order.
func (g *SlotGrid) Each(fn func(i int, slot *Slot)) {
	for i, slot := range g.slots {
		fn(i, slot)
	}
}

// Layout arranges the slots as rows x cols cells over the given area. Cell
// sizes use integer division; the last row and column take the remainder.
func (g *SlotGrid) Layout(x, y, width, height, rows, cols int) {
	g.x, g.y, g.width, g.height = x, y, width, height
	g.rows, g.cols = rows, cols
	if rows <= 0 || cols <= 0 {
		return
	}
	for i, slot := range g.slots {
		sx, sy, sw, sh := g.cellRect(i/cols, i%cols)
		slot.setRect(sx, sy, sw, sh)
	}
}

func (g *SlotGrid) cellRect(row, col int) (int, int, int, int) {
	boxWidth, boxHeight := g.width/g.cols, g.height/g.rows
	x, y := g.x+col*boxWidth, g.y+row*boxHeight
	width, height := boxWidth, boxHeight
	if col == g.cols-1 {
		width = g.width - col*boxWidth
	}
	if row == g.rows-1 {
		height = g.height - row*boxHeight
	}
	return x, y, width, height
}

// SlotAt returns the child index of the slot covering (x, y), or -1.
func (g *SlotGrid) SlotAt(x, y int) int {
	if g.rows <= 0 || g.cols <= 0 || x < g.x || y < g.y || x >= g.x+g.width || y >= g.y+g.height {
		return -1
	}
	boxWidth, boxHeight := max(g.width/g.cols, 1), max(g.height/g.rows, 1)
	col := min(g.cols-1, (x-g.x)/boxWidth)
	row := min(g.rows-1, (y-g.y)/boxHeight)
	i := row*g.cols + col
	if i >= len(g.slots) {
		return -1
	}
	return i
}
