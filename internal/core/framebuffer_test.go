package core

import "testing"

func TestNewFramebuffer(t *testing.T) {
	fb := NewFramebuffer(80, 48)

	if fb.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", fb.Width())
	}
	if fb.Height() != 48 {
		t.Errorf("Height() = %d, expected 48", fb.Height())
	}
	if len(fb.Pix) != 80*48 {
		t.Errorf("len(Pix) = %d, expected %d", len(fb.Pix), 80*48)
	}

	// New buffer starts black
	for i, p := range fb.Pix {
		if p != (RGB{}) {
			t.Errorf("new framebuffer should be black, got %v at index %d", p, i)
			break
		}
	}
}

func TestFramebufferMinimumSize(t *testing.T) {
	fb := NewFramebuffer(0, -5)

	if fb.Width() != 1 || fb.Height() != 1 {
		t.Errorf("degenerate dimensions should clamp to 1x1, got %dx%d", fb.Width(), fb.Height())
	}
	if len(fb.Pix) != 1 {
		t.Errorf("len(Pix) = %d, expected 1", len(fb.Pix))
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	sizes := []struct{ w, h int }{
		{20, 30},
		{1, 1},
		{100, 2},
		{0, 0}, // clamps to 1x1
	}
	for _, sz := range sizes {
		fb.Resize(sz.w, sz.h)
		wantW, wantH := sz.w, sz.h
		if wantW < 1 {
			wantW = 1
		}
		if wantH < 1 {
			wantH = 1
		}
		if fb.Width() != wantW || fb.Height() != wantH {
			t.Errorf("Resize(%d, %d): dimensions = %dx%d, expected %dx%d",
				sz.w, sz.h, fb.Width(), fb.Height(), wantW, wantH)
		}
		if len(fb.Pix) != fb.Width()*fb.Height() {
			t.Errorf("Resize(%d, %d): len(Pix) = %d, expected %d",
				sz.w, sz.h, len(fb.Pix), fb.Width()*fb.Height())
		}
	}
}

func TestFramebufferSetAt(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	c := RGB{R: 10, G: 20, B: 30}

	fb.Set(5, 5, c)
	if fb.At(5, 5) != c {
		t.Errorf("At(5, 5) = %v, expected %v", fb.At(5, 5), c)
	}

	// Out of bounds writes are silent
	fb.Set(-1, 0, c)
	fb.Set(100, 0, c)
	fb.Set(0, -1, c)
	fb.Set(0, 100, c)

	// Out of bounds reads return black
	if fb.At(-1, 0) != (RGB{}) {
		t.Error("out of bounds At should return black")
	}
	if fb.At(0, 100) != (RGB{}) {
		t.Error("out of bounds At should return black")
	}
}

func TestFramebufferClearFill(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	c := RGB{R: 200, G: 100, B: 50}

	fb.Fill(c)
	for i, p := range fb.Pix {
		if p != c {
			t.Errorf("after Fill, Pix[%d] = %v, expected %v", i, p, c)
			break
		}
	}

	fb.Clear()
	for i, p := range fb.Pix {
		if p != (RGB{}) {
			t.Errorf("after Clear, Pix[%d] = %v, expected black", i, p)
			break
		}
	}
}
