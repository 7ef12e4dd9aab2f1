package core

// Framebuffer is a flat grid of logical pixels. Logical height is twice the
// terminal row count: each terminal cell shows two vertically stacked pixels
// through a half-block glyph, so effects draw at double vertical resolution.
// It decouples effect rendering from the terminal; effects write colors, the
// platform turns them into escape sequences.
type Framebuffer struct {
	width  int
	height int
	Pix    []RGB
}

// NewFramebuffer creates a framebuffer with the given logical dimensions.
// Dimensions below 1 are raised to 1 so the buffer is never empty.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Width returns the logical width in pixels (same as terminal columns).
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the logical height in pixels (twice the terminal rows).
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Resize changes the buffer dimensions, reallocating storage. Requested
// sizes below 1x1 degrade to the minimal valid size instead of failing.
// The invariant len(Pix) == Width()*Height() holds on return.
func (fb *Framebuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == fb.width && height == fb.height && fb.Pix != nil {
		return
	}
	fb.width = width
	fb.height = height
	fb.Pix = make([]RGB, width*height)
}

// Clear fills the buffer with black.
func (fb *Framebuffer) Clear() {
	for i := range fb.Pix {
		fb.Pix[i] = RGB{}
	}
}

// Fill sets every pixel to the given color.
func (fb *Framebuffer) Fill(c RGB) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored so
// effects can draw shapes without clipping on every call site.
func (fb *Framebuffer) Set(x, y int, c RGB) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.Pix[y*fb.width+x] = c
}

// At returns the pixel at (x, y), black for out-of-bounds coordinates.
func (fb *Framebuffer) At(x, y int) RGB {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return RGB{}
	}
	return fb.Pix[y*fb.width+x]
}
