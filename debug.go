package trellis

import (
	"fmt"
	"os"
	"time"
)

// globalDebug enables the extra structural checks in tree operations. It is
// package-global so hot paths can gate on a plain bool instead of chasing the
// ui pointer on detached widgets.
var globalDebug bool

// debugStats holds per-frame timing and traversal metrics.
// Only populated when the UI is in debug mode.
type debugStats struct {
	updateTime     time.Duration
	drawTime       time.Duration
	widgetsDrawn   int
	widgetsClipped int
}

// SetDebugMode toggles debug mode: per-frame stats are printed to stderr and
// tree operations run extra structural checks.
func (u *UI) SetDebugMode(enabled bool) {
	u.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (u *UI) DebugMode() bool { return u.debug }

// debugLog prints timing and traversal stats to stderr.
func (u *UI) debugLog() {
	if !u.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] update: %v | draw: %v | widgets drawn: %d | clipped: %d\n",
		u.stats.updateTime, u.stats.drawTime, u.stats.widgetsDrawn, u.stats.widgetsClipped)
}

// debugCheckDisposed panics with a descriptive message when a disposed widget
// is used in a tree operation. Only called in debug mode; release-mode callers
// skip this entirely.
func debugCheckDisposed(w *Widget, op string) {
	if w.disposed {
		panic(fmt.Sprintf("trellis debug: %s on disposed widget (ID was %q, kind %s)", op, w.ID, w.Kind))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: tree depth %d exceeds %d (widget %q)\n",
			depth, debugMaxTreeDepth, w.ID)
	}
}

// debugCheckChildCount warns on stderr if a widget has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: widget %q has %d children (threshold %d)\n",
			w.ID, len(w.children), debugMaxChildCount)
	}
}
