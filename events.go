package trellis

// EventType identifies a kind of widget interaction event.
type EventType uint8

const (
	EventSpawn            EventType = iota // first update of a widget
	EventBeforeUpdate                      // start of a widget's per-frame update
	EventAfterUpdate                       // end of a widget's per-frame update
	EventMouseEnter                        // pointer entered the widget's bounds
	EventMouseLeave                        // pointer left the widget's bounds
	EventMouseHover                        // pointer over the widget, button up (continuous)
	EventMouseDown                         // pointer over the widget, button held (continuous)
	EventMousePressed                      // button went down over the widget
	EventMouseReleased                     // button went up over the widget
	EventClick                             // press then release over the same widget
	EventWheel                             // wheel movement forwarded to the widget
	EventStartDrag                         // drag movement began
	EventDrag                              // fires each frame while dragging
	EventStopDrag                          // drag ended
	EventFocusChange                       // pointer focus gained or lost
	EventValueChange                       // a range control or list changed value
	EventVisibilityChange                  // a widget's visibility flag flipped
	EventRightClick                        // secondary-button press then release over the same widget
)

// widgetHandler is one registered tree-wide listener.
type widgetHandler struct {
	id uint32
	fn func(*Widget)
}

type wheelHandler struct {
	id uint32
	fn func(*Widget, float64)
}

type focusHandler struct {
	id uint32
	fn func(*Widget, bool)
}

// handlerRegistry holds tree-wide listeners that fire for every widget's
// event of the registered kind, before the widget's own callback.
type handlerRegistry struct {
	byEvent map[EventType][]widgetHandler
	wheel   []wheelHandler
	focus   []focusHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered tree-wide listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this listener so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventWheel:
		h.reg.wheel = removeWheelHandler(h.reg.wheel, h.id)
	case EventFocusChange:
		h.reg.focus = removeFocusHandler(h.reg.focus, h.id)
	default:
		h.reg.byEvent[h.event] = removeWidgetHandler(h.reg.byEvent[h.event], h.id)
	}
}

func removeWidgetHandler(s []widgetHandler, id uint32) []widgetHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = widgetHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeWheelHandler(s []wheelHandler, id uint32) []wheelHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = wheelHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeFocusHandler(s []focusHandler, id uint32) []focusHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = focusHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// On registers a tree-wide listener for the given event kind. It fires for
// every widget, before the widget's own callback. Not valid for EventWheel
// or EventFocusChange, which carry extra arguments; use OnWheel and
// OnFocusChange instead.
func (u *UI) On(event EventType, fn func(*Widget)) CallbackHandle {
	if event == EventWheel || event == EventFocusChange {
		panic("trellis: use UI.OnWheel / UI.OnFocusChange for this event kind")
	}
	reg := &u.handlers
	if reg.byEvent == nil {
		reg.byEvent = make(map[EventType][]widgetHandler)
	}
	reg.nextID++
	reg.byEvent[event] = append(reg.byEvent[event], widgetHandler{id: reg.nextID, fn: fn})
	return CallbackHandle{id: reg.nextID, reg: reg, event: event}
}

// OnClick registers a tree-wide click listener.
func (u *UI) OnClick(fn func(*Widget)) CallbackHandle { return u.On(EventClick, fn) }

// OnValueChange registers a tree-wide value-change listener.
func (u *UI) OnValueChange(fn func(*Widget)) CallbackHandle { return u.On(EventValueChange, fn) }

// OnRightClick registers a tree-wide right-click listener.
func (u *UI) OnRightClick(fn func(*Widget)) CallbackHandle { return u.On(EventRightClick, fn) }

// OnWheel registers a tree-wide wheel listener.
func (u *UI) OnWheel(fn func(*Widget, float64)) CallbackHandle {
	reg := &u.handlers
	reg.nextID++
	reg.wheel = append(reg.wheel, wheelHandler{id: reg.nextID, fn: fn})
	return CallbackHandle{id: reg.nextID, reg: reg, event: EventWheel}
}

// OnFocusChange registers a tree-wide focus listener.
func (u *UI) OnFocusChange(fn func(*Widget, bool)) CallbackHandle {
	reg := &u.handlers
	reg.nextID++
	reg.focus = append(reg.focus, focusHandler{id: reg.nextID, fn: fn})
	return CallbackHandle{id: reg.nextID, reg: reg, event: EventFocusChange}
}

// --- Dispatch helpers ---

// fire runs tree-wide listeners for the event, then the widget's own
// callback.
func (u *UI) fire(event EventType, w *Widget, own func(*Widget)) {
	for _, h := range u.handlers.byEvent[event] {
		h.fn(w)
	}
	if own != nil {
		own(w)
	}
}

func (u *UI) fireSpawn(w *Widget)        { u.fire(EventSpawn, w, w.OnSpawn) }
func (u *UI) fireBeforeUpdate(w *Widget) { u.fire(EventBeforeUpdate, w, w.BeforeUpdate) }
func (u *UI) fireAfterUpdate(w *Widget)  { u.fire(EventAfterUpdate, w, w.AfterUpdate) }
func (u *UI) fireEnter(w *Widget)        { u.fire(EventMouseEnter, w, w.OnMouseEnter) }
func (u *UI) fireLeave(w *Widget)        { u.fire(EventMouseLeave, w, w.OnMouseLeave) }
func (u *UI) fireHover(w *Widget)        { u.fire(EventMouseHover, w, w.OnMouseHover) }
func (u *UI) fireWhileDown(w *Widget)    { u.fire(EventMouseDown, w, w.OnMouseDown) }
func (u *UI) firePressed(w *Widget)      { u.fire(EventMousePressed, w, w.OnMousePressed) }
func (u *UI) fireReleased(w *Widget)     { u.fire(EventMouseReleased, w, w.OnMouseReleased) }
func (u *UI) fireClick(w *Widget)        { u.fire(EventClick, w, w.OnClick) }
func (u *UI) fireRightClick(w *Widget)   { u.fire(EventRightClick, w, w.OnRightClick) }
func (u *UI) fireStartDrag(w *Widget)    { u.fire(EventStartDrag, w, w.OnStartDrag) }
func (u *UI) fireDrag(w *Widget)         { u.fire(EventDrag, w, w.OnDrag) }
func (u *UI) fireStopDrag(w *Widget)     { u.fire(EventStopDrag, w, w.OnStopDrag) }

func (u *UI) fireValueChange(w *Widget) { u.fire(EventValueChange, w, w.OnValueChange) }

func (u *UI) fireVisibilityChange(w *Widget) {
	u.fire(EventVisibilityChange, w, w.OnVisibilityChange)
}

func (u *UI) fireWheel(w *Widget, delta float64) {
	for _, h := range u.handlers.wheel {
		h.fn(w, delta)
	}
	if w.OnWheel != nil {
		w.OnWheel(w, delta)
	}
}

func (u *UI) fireFocusChange(w *Widget, focused bool) {
	for _, h := range u.handlers.focus {
		h.fn(w, focused)
	}
	if w.OnFocusChange != nil {
		w.OnFocusChange(w, focused)
	}
}
