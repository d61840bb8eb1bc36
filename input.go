package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is an immutable per-frame input snapshot. It must be sampled (or
// built by hand, e.g. in tests) exactly once per frame before UI.Update.
type Frame struct {
	// Pointer position in screen pixels.
	CursorX, CursorY float64
	// Pointer movement since the previous frame.
	DeltaX, DeltaY float64
	// Per-button state, indexed by MouseButton.
	MouseDown     [3]bool // button is held this frame
	MousePressed  [3]bool // button went down this frame
	MouseReleased [3]bool // button went up this frame
	MouseClicked  [3]bool // button went down and up within this frame
	// Wheel movement this frame (positive = up).
	Wheel float64
	// Elapsed seconds since the previous frame.
	Elapsed float64
}

// LeftDown reports whether the primary button is held.
func (f *Frame) LeftDown() bool { return f.MouseDown[MouseButtonLeft] }

// LeftPressed reports whether the primary button went down this frame.
func (f *Frame) LeftPressed() bool { return f.MousePressed[MouseButtonLeft] }

// LeftReleased reports whether the primary button went up this frame.
func (f *Frame) LeftReleased() bool { return f.MouseReleased[MouseButtonLeft] }

// RightDown reports whether the secondary button is held.
func (f *Frame) RightDown() bool { return f.MouseDown[MouseButtonRight] }

// RightPressed reports whether the secondary button went down this frame.
func (f *Frame) RightPressed() bool { return f.MousePressed[MouseButtonRight] }

// RightReleased reports whether the secondary button went up this frame.
func (f *Frame) RightReleased() bool { return f.MouseReleased[MouseButtonRight] }

// AnyPressed reports whether any mouse button went down this frame.
func (f *Frame) AnyPressed() bool {
	return f.MousePressed[MouseButtonLeft] ||
		f.MousePressed[MouseButtonRight] ||
		f.MousePressed[MouseButtonMiddle]
}

// ebitenButtons maps our button indices to ebiten's.
var ebitenButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// SampleInput polls the mouse into a fresh Frame. Edge flags (pressed,
// released, clicked) are derived from prev, which should be the snapshot of
// the previous frame (or nil on the first frame).
func SampleInput(prev *Frame) Frame {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	f := Frame{
		CursorX: float64(mx),
		CursorY: float64(my),
		Wheel:   wheelY,
		Elapsed: 1.0 / float64(ebiten.TPS()),
	}
	if prev != nil {
		f.DeltaX = f.CursorX - prev.CursorX
		f.DeltaY = f.CursorY - prev.CursorY
	}
	for i, btn := range ebitenButtons {
		down := ebiten.IsMouseButtonPressed(btn)
		f.MouseDown[i] = down
		if prev != nil {
			f.MousePressed[i] = down && !prev.MouseDown[i]
			f.MouseReleased[i] = !down && prev.MouseDown[i]
		} else {
			f.MousePressed[i] = down
		}
		f.MouseClicked[i] = f.MousePressed[i] && f.MouseReleased[i]
	}
	return f
}

// --- Synthetic input injection ---

// syntheticEvent is a single queued pointer event for tests and automation.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	wheel   float64
}

// InjectPress queues a primary-button press at the given screen coordinates.
// The event is consumed by the next NextFrame call, overriding real input.
func (u *UI) InjectPress(x, y float64) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (u *UI) InjectMove(x, y float64) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a primary-button release at the given coordinates.
func (u *UI) InjectRelease(x, y float64) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (u *UI) InjectClick(x, y float64) {
	u.InjectPress(x, y)
	u.InjectRelease(x, y)
}

// InjectRightClick queues a secondary-button press followed by a release at
// the same coordinates. Consumes two frames.
func (u *UI) InjectRightClick(x, y float64) {
	u.injectQueue = append(u.injectQueue,
		syntheticEvent{x: x, y: y, pressed: true, button: MouseButtonRight},
		syntheticEvent{x: x, y: y, button: MouseButtonRight})
}

// InjectWheel queues a wheel movement at the given coordinates.
func (u *UI) InjectWheel(x, y, wheel float64) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{x: x, y: y, wheel: wheel})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY), spanning `frames` frames
// (minimum 2).
func (u *UI) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	u.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		u.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	u.InjectRelease(toX, toY)
}

// HasPendingInput reports whether injected events are still queued.
func (u *UI) HasPendingInput() bool { return len(u.injectQueue) > 0 }

// popInjected converts the oldest queued synthetic event into a Frame,
// deriving edges from prev. Returns false when the queue is empty.
func (u *UI) popInjected(prev *Frame) (Frame, bool) {
	if len(u.injectQueue) == 0 {
		return Frame{}, false
	}
	evt := u.injectQueue[0]
	copy(u.injectQueue, u.injectQueue[1:])
	u.injectQueue = u.injectQueue[:len(u.injectQueue)-1]

	f := Frame{
		CursorX: evt.x,
		CursorY: evt.y,
		Wheel:   evt.wheel,
		Elapsed: 1.0 / 60.0,
	}
	if prev != nil {
		f.DeltaX = f.CursorX - prev.CursorX
		f.DeltaY = f.CursorY - prev.CursorY
	}
	i := evt.button
	f.MouseDown[i] = evt.pressed
	if prev != nil {
		f.MousePressed[i] = evt.pressed && !prev.MouseDown[i]
		f.MouseReleased[i] = !evt.pressed && prev.MouseDown[i]
	} else {
		f.MousePressed[i] = evt.pressed
	}
	f.MouseClicked[i] = f.MousePressed[i] && f.MouseReleased[i]
	return f, true
}

// NextFrame returns the frame to feed UI.Update: the oldest injected event
// when any are queued, otherwise a real input sample. The UI remembers the
// result for edge derivation on the following frame.
func (u *UI) NextFrame() Frame {
	f, ok := u.popInjected(u.prevFrame)
	if !ok {
		f = SampleInput(u.prevFrame)
	}
	snapshot := f
	u.prevFrame = &snapshot
	return f
}
