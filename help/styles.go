package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
)

// Styles holds the styles of a help bar.
type Styles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
	Ellipsis  tcell.Style
}

// DefaultStyles returns dim keys and separators next to secondary-colour
// descriptions.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		Key:       dim,
		Desc:      tcell.StyleDefault.Foreground(gridview.Styles.SecondaryTextColor),
		Separator: dim,
		Ellipsis:  dim,
	}
}
