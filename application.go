package gridview

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The minimum time between two redraws caused by resize events.
	redrawPause = 50 * time.Millisecond
)

// DoubleClickInterval is the maximum time between two clicks of the same
// button for them to count as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is a logical mouse action derived from raw button state.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the terminal screen and runs the event loop. It hands key
// events to the root primitive, mouse actions to the root or to the capturing
// primitive, and executes the commands they return.
//
//	app := gridview.NewApplication().EnableMouse(true)
//	if err := app.SetRoot(list).Run(); err != nil {
//		log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	focus  Primitive
	root   Primitive
	mouse  bool

	events  chan tcell.Event
	updates chan queuedUpdate

	// Follow-up mouse events go to the capturing primitive until it releases.
	mouseCapture           Primitive
	lastMouseX, lastMouseY int
	mouseDownX, mouseDownY int
	lastMouseClick         time.Time
	lastMouseButtons       tcell.ButtonMask

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication returns an application without a screen.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// EnableMouse turns mouse reporting on or off.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.mouse = enable
	if a.screen != nil {
		a.applyMouse(a.screen)
	}
	return a
}

func (a *Application) applyMouse(screen tcell.Screen) {
	if a.mouse {
		screen.EnableMouse()
	} else {
		screen.DisableMouse()
	}
}

// Run creates the screen if needed and runs the event loop until Stop is
// called or the screen reports an error.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	a.applyMouse(screen)
	a.events = screen.EventQ()
	a.Unlock()

	// Restore the terminal before re-panicking.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	var (
		lastRedraw  time.Time
		redrawTimer *time.Timer
	)
	for {
		select {
		case event := <-a.events:
			if event == nil {
				return nil
			}
			switch event := event.(type) {
			case *tcell.EventKey:
				a.handleKey(event)
			case *tcell.EventResize:
				a.Lock()
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastRedraw) < redrawPause {
					if redrawTimer != nil {
						redrawTimer.Stop()
					}
					redrawTimer = time.AfterFunc(redrawPause, func() {
						a.QueueEvent(event)
					})
				}
				lastRedraw = time.Now()
				a.draw()
			case *tcell.EventMouse:
				handled, down := a.fireMouseActions(event)
				if handled {
					a.draw()
				}
				a.lastMouseButtons = event.Buttons()
				if down {
					a.mouseDownX, a.mouseDownY = event.Position()
				}
			case *tcell.EventError:
				a.Stop()
				return event
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

func (a *Application) handleKey(event *tcell.EventKey) {
	a.RLock()
	root := a.root
	a.RUnlock()
	if root == nil || !root.HasFocus() {
		return
	}
	if a.executeCommand(root.InputHandler(event)) {
		a.draw()
	}
}

// fireMouseActions derives mouse actions from event and hands them to the
// capturing primitive or the root.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, down bool) {
	var target Primitive
	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseMiddleDown, MouseRightDown:
			down = true
		}

		primitive := a.root
		switch {
		case a.mouseCapture != nil:
			primitive = a.mouseCapture
			target = a.mouseCapture
		case target != nil:
			primitive = target
		}
		var capture Primitive
		if primitive != nil {
			var cmd Command
			capture, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouseCapture = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	moved := x != a.mouseDownX || y != a.mouseDownY
	changed := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX, a.lastMouseY = x, y
	}

	for _, b := range []struct {
		button                  tcell.ButtonMask
		down, up, click, dclick MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
	} {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			fire(b.down)
			continue
		}
		fire(b.up)
		if moved {
			continue
		}
		if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
			fire(b.click)
			a.lastMouseClick = time.Now()
		} else {
			fire(b.dclick)
			a.lastMouseClick = time.Time{}
		}
	}

	for _, w := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&w.button != 0 {
			fire(w.action)
		}
	}
	return handled, down
}

// Stop finalises the screen, which ends Run.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw queues a redraw on the event loop. Do not call it from the event loop
// itself; return a RedrawCommand there.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

func (a *Application) draw() *Application {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell only emits changed cells on Show, so clear on forced redraws only.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	return a
}

// SetRoot sets the root primitive and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// QueueUpdate runs f on the event loop and waits for it. Use it to touch
// primitives and their models from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws afterwards.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// QueueEvent sends event to the event loop. It is dropped if Run has not
// started.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.RLock()
	events := a.events
	a.RUnlock()
	if events != nil {
		events <- event
	}
	return a
}

// executeCommand runs cmd and reports whether a redraw is needed.
func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	a.RLock()
	screen := a.screen
	a.RUnlock()

	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case SetClipboardCommand:
		if screen != nil && screen.HasClipboard() {
			screen.SetClipboard([]byte(c))
			return true
		}
	case CallbackCommand:
		if c != nil {
			c()
		}
		return true
	case ConsumeEventCommand:
	}
	return false
}
