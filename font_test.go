package trellis

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadTTFFont(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}

	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want > 0", f.LineHeight())
	}
	w, h := f.MeasureString("hello")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = (%v, %v), want positive extents", w, h)
	}
	ww, _ := f.MeasureString("hello world")
	if ww <= w {
		t.Errorf("longer string measured %v, want wider than %v", ww, w)
	}
	if f.Face() == nil {
		t.Error("Face returned nil")
	}
}

func TestLoadTTFFontRejectsGarbage(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 16); err == nil {
		t.Error("garbage data parsed without error")
	}
}

func TestLabelEffectiveRectUsesMeasurer(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}

	u := newTestUI(400, 300)
	u.SetMeasurer(f)
	label := NewLabel("measure me")
	label.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(label)

	eff := label.EffectiveRect()
	w, h := f.MeasureString("measure me")
	if eff.Width != w || eff.Height != h {
		t.Errorf("effective rect = (%v, %v), want measured (%v, %v)", eff.Width, eff.Height, w, h)
	}
}
