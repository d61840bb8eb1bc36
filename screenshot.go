package trellis

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotRequest is one queued capture: the full screen, or a single
// widget's on-screen rectangle.
type screenshotRequest struct {
	label  string
	target *Widget
}

// Screenshot queues a labeled full-screen capture taken at the end of the
// current frame's Draw call. The PNG lands in the screenshot directory with a
// timestamped filename. Safe to call from Update or Draw.
func (u *UI) Screenshot(label string) {
	u.screenshotQueue = append(u.screenshotQueue, screenshotRequest{label: label})
}

// ScreenshotWidget queues a capture cropped to one widget's rectangle, handy
// for documenting a single control.
func (u *UI) ScreenshotWidget(w *Widget, label string) {
	u.screenshotQueue = append(u.screenshotQueue, screenshotRequest{label: label, target: w})
}

// SetScreenshotDir changes where captures are written. The default is
// "screenshots".
func (u *UI) SetScreenshotDir(dir string) {
	u.screenshotDir = dir
}

// flushScreenshots serves the queued requests from one pixel read of the
// rendered frame. Called at the end of UI.Draw.
func (u *UI) flushScreenshots(screen *ebiten.Image) {
	if len(u.screenshotQueue) == 0 {
		return
	}
	queue := u.screenshotQueue
	u.screenshotQueue = u.screenshotQueue[:0]

	dir := u.screenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		u.screenshotError(dir, err)
		return
	}

	full := captureNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")

	for _, req := range queue {
		img := image.Image(full)
		if req.target != nil {
			crop := cropRect(req.target.ComputeRect(), full.Bounds())
			if crop.Empty() {
				u.screenshotError(req.label, fmt.Errorf("widget rect is off screen"))
				continue
			}
			img = full.SubImage(crop)
		}
		path := filepath.Join(dir, stamp+"_"+sanitizeLabel(req.label)+".png")
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			u.screenshotError(req.label, err)
			continue
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			u.screenshotError(req.label, err)
		}
	}
}

func (u *UI) screenshotError(what string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[trellis] screenshot %s: %v\n", what, err)
}

// captureNRGBA reads the rendered pixels and converts the premultiplied
// values back to straight alpha in place.
func captureNRGBA(src *ebiten.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(out.Pix)
	for i := 0; i < len(out.Pix); i += 4 {
		a := out.Pix[i+3]
		if a == 0 || a == 255 {
			continue
		}
		for j := 0; j < 3; j++ {
			v := int(out.Pix[i+j]) * 255 / int(a)
			if v > 255 {
				v = 255
			}
			out.Pix[i+j] = uint8(v)
		}
	}
	return out
}

// cropRect converts a widget rect to integer pixels clipped to the screen.
// Fractional edges round outward so the widget is never cut short.
func cropRect(r Rect, bounds image.Rectangle) image.Rectangle {
	crop := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())))
	return crop.Intersect(bounds)
}

// sanitizeLabel maps characters that are unsafe in file names to underscores
// and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
