package logic

// Directions understood by Navigator.Move
const (
	Up    = "up"
	Down  = "down"
	Left  = "left"
	Right = "right"
	Home  = "home"
	End   = "end"
)

// Navigator keeps a cursor on a grid of count cells laid out cols per row
type Navigator struct {
	cursor int
	count  int
	cols   int
}

// NewNavigator creates a navigator over an empty grid
func NewNavigator() *Navigator {
	return &Navigator{cols: 1}
}

// Resize updates the grid shape and clamps the cursor into it
func (n *Navigator) Resize(count, cols int) {
	if cols < 1 {
		cols = 1
	}
	n.count = count
	n.cols = cols
	n.SetCursor(n.cursor)
}

// Cursor returns the selected cell
func (n *Navigator) Cursor() int {
	return n.cursor
}

// SetCursor selects index, clamped to the grid
func (n *Navigator) SetCursor(index int) {
	switch {
	case n.count == 0 || index < 0:
		n.cursor = 0
	case index >= n.count:
		n.cursor = n.count - 1
	default:
		n.cursor = index
	}
}

// Move steps the cursor and returns the new position. Moves that would
// leave the grid are ignored, except that moving down into a partial last
// row lands on its final cell.
func (n *Navigator) Move(direction string) int {
	if n.count == 0 {
		n.cursor = 0
		return n.cursor
	}

	switch direction {
	case Left:
		if n.cursor > 0 {
			n.cursor--
		}
	case Right:
		if n.cursor < n.count-1 {
			n.cursor++
		}
	case Up:
		if n.cursor-n.cols >= 0 {
			n.cursor -= n.cols
		}
	case Down:
		switch {
		case n.cursor+n.cols < n.count:
			n.cursor += n.cols
		case n.cursor/n.cols < (n.count-1)/n.cols:
			n.cursor = n.count - 1
		}
	case Home:
		n.cursor = 0
	case End:
		n.cursor = n.count - 1
	}
	return n.cursor
}
