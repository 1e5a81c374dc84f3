package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/help"
	"github.com/xqrs/gridview/internal/catalog"
	"github.com/xqrs/gridview/internal/config"
	"github.com/xqrs/gridview/keybind"
	"github.com/xqrs/gridview/listmodel"
	"github.com/xqrs/gridview/selection"
)

type demo struct {
	app    *gridview.Application
	model  *listmodel.Slice[catalog.Item]
	sel    *selection.Default
	list   *gridview.GridList
	help   *help.Help
	root   *root
	keys   keyMap
	logger *slog.Logger

	reuse  bool
	nextID int
}

func newDemo(app *gridview.Application, model *listmodel.Slice[catalog.Item], logger *slog.Logger) *demo {
	d := &demo{
		app:    app,
		model:  model,
		sel:    selection.NewDefault(selection.MultipleInterval),
		keys:   defaultKeyMap(),
		logger: logger,
		nextID: 1,
	}
	for _, item := range model.Items() {
		d.nextID = max(d.nextID, item.ID+1)
	}

	d.list = gridview.NewGridList().
		SetModel(model).
		SetSelectionModel(d.sel).
		SetLogger(logger).
		SetErrorFunc(func(err error) { logger.Error("grid list", "err", err) }).
		SetItemTextFunc(func(item any) string { return item.(catalog.Item).Title }).
		SetDragEnabled(true).
		SetDropFunc(d.drop)
	d.list.GetScrollBar().
		SetArrows(gridview.ScrollBarArrowsBoth).
		SetAutoHide(false).
		SetThumbStyle(tcell.StyleDefault.Foreground(gridview.Styles.GraphicsColor)).
		SetTrackStyle(tcell.StyleDefault.Foreground(gridview.Styles.BorderColor).Dim(true))
	d.list.SetBorders(gridview.BordersAll).
		SetTitleAlignment(gridview.AlignmentLeft).
		SetTitleStyle(tcell.StyleDefault.Foreground(gridview.Styles.TitleColor).Bold(true)).
		SetFocusFunc(func() { d.list.SetBorderStyle(d.borderStyle(true)) }).
		SetBlurFunc(func() { d.list.SetBorderStyle(d.borderStyle(false)) })
	d.setReuse(false)
	model.Subscribe(func(listmodel.Event) { d.updateTitle() })

	d.help = help.New().SetKeyMaps(d.keys, d.list.GetKeyMap())
	d.help.SetBorderPadding(0, 0, 1, 1)
	d.root = &root{Box: gridview.NewBox(), demo: d}
	return d
}

// apply makes the list match cfg. It must run on the event loop once Run
// has started.
func (d *demo) apply(cfg config.Config) error {
	mode, err := cfg.DropMode()
	if err != nil {
		return err
	}
	borders, err := cfg.BorderSet()
	if err != nil {
		return err
	}
	glyphs, err := cfg.GlyphSet()
	if err != nil {
		return err
	}
	if err := d.list.SetGridSize(cfg.Grid.Rows, cfg.Grid.Cols); err != nil {
		return err
	}
	if err := d.list.SetDropMode(mode); err != nil {
		return err
	}
	if err := d.list.SetDropInsertThreshold(cfg.Drop.InsertThreshold); err != nil {
		return err
	}
	d.list.SetDisplayFollowsSelection(cfg.Grid.FollowSelection)
	d.list.SetShowScrollbar(cfg.Grid.ShowScrollbar)
	if cfg.Grid.ReuseCells != d.reuse {
		d.setReuse(cfg.Grid.ReuseCells)
	}
	d.list.SetBorderSet(borders)
	d.list.GetScrollBar().SetGlyphSet(glyphs)
	d.updateTitle()
	d.logger.Debug("config applied", "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols, "drop", mode)
	return nil
}

func (d *demo) setReuse(reuse bool) {
	d.reuse = reuse
	d.list.SetCellFactory(gridview.NewLabelCellFactory(gridview.WithReuse(reuse)))
	d.updateTitle()
}

func (d *demo) updateTitle() {
	rows, cols := d.list.GetGridSize()
	reuse := "off"
	if d.reuse {
		reuse = "on"
	}
	d.list.SetTitle(fmt.Sprintf(" %d items · %dx%d · reuse %s ", d.model.Len(), rows, cols, reuse))
}

func (d *demo) borderStyle(focused bool) tcell.Style {
	style := tcell.StyleDefault.Background(d.list.GetBackgroundColor())
	if focused {
		return style.Foreground(gridview.Styles.BorderColor)
	}
	return style.Foreground(gridview.Styles.BorderColor).Dim(true)
}

func (d *demo) resize(dRows, dCols int) {
	rows, cols := d.list.GetGridSize()
	if err := d.list.SetGridSize(rows+dRows, cols+dCols); err != nil {
		d.logger.Debug("resize rejected", "err", err)
		return
	}
	d.updateTitle()
}

func (d *demo) appendItems(n int) {
	items := catalog.Generate(d.nextID, n)
	d.nextID += n
	d.model.Append(items...)
}

func (d *demo) removeSelected() {
	indices := d.sel.Indices()
	if len(indices) == 0 {
		return
	}
	d.sel.Clear()
	for _, i := range slices.Backward(indices) {
		if err := d.model.Remove(i, i); err != nil {
			d.logger.Error("remove", "index", i, "err", err)
			return
		}
	}
	d.logger.Info("removed", "count", len(indices))
}

// drop moves the selected items to location. Dropping onto an item inserts
// before it.
func (d *demo) drop(location gridview.DropLocation, items []any) {
	indices := d.sel.Indices()
	if len(indices) == 0 {
		return
	}
	first, err := d.model.Move(indices, location.Index)
	if err != nil {
		d.logger.Error("drop", "location", location.String(), "err", err)
		return
	}
	d.sel.SetInterval(first, first+len(indices)-1)
	d.logger.Info("dropped", "location", location.String(), "count", len(items))
}

func (d *demo) handleKey(key string) (gridview.Command, bool) {
	k := d.keys
	switch {
	case k.Quit.MatchesKey(key):
		return gridview.QuitCommand{}, true
	case k.Help.MatchesKey(key):
		d.help.SetShowAll(!d.help.ShowAll())
	case k.MoreRows.MatchesKey(key):
		d.resize(1, 0)
	case k.FewerRows.MatchesKey(key):
		d.resize(-1, 0)
	case k.MoreCols.MatchesKey(key):
		d.resize(0, 1)
	case k.FewerCols.MatchesKey(key):
		d.resize(0, -1)
	case k.Append.MatchesKey(key):
		d.appendItems(10)
	case k.Remove.MatchesKey(key):
		d.removeSelected()
	case k.Reuse.MatchesKey(key):
		d.setReuse(!d.reuse)
	case k.Scrollbar.MatchesKey(key):
		d.list.SetShowScrollbar(!d.list.IsScrollbarShown())
	case k.Follow.MatchesKey(key):
		d.list.SetDisplayFollowsSelection(!d.list.DisplayFollowsSelection())
	default:
		return nil, false
	}
	return gridview.RedrawCommand{}, true
}

// root stacks the list above the help bar and routes demo keys before the
// list sees them.
type root struct {
	*gridview.Box
	demo *demo
}

func (r *root) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)
	x, y, width, height := r.GetInnerRect()
	helpHeight := min(r.demo.help.Height(width), height)

	r.demo.list.SetRect(x, y, width, height-helpHeight)
	r.demo.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	r.demo.list.Draw(screen)
	r.demo.help.Draw(screen)
}

func (r *root) InputHandler(event *tcell.EventKey) gridview.Command {
	if cmd, ok := r.demo.handleKey(keybind.Key(event)); ok {
		return cmd
	}
	return r.demo.list.InputHandler(event)
}

func (r *root) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	return r.demo.list.MouseHandler(action, event)
}

func (r *root) Focus(delegate func(p gridview.Primitive)) {
	delegate(r.demo.list)
}

func (r *root) HasFocus() bool {
	return r.demo.list.HasFocus()
}

var _ gridview.Primitive = &root{}
