package tui

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/termdemo/internal/core"
)

// halfBlock is the upper-half-block glyph: foreground paints the top
// sub-pixel, background the bottom one.
const halfBlock = '▀'

// RenderFrame converts a framebuffer into one frame of half-block glyphs
// with 24-bit color escapes. Each terminal cell carries two vertically
// adjacent logical pixels. Consecutive cells that keep the same foreground
// or background reuse the active SGR state instead of re-emitting it; the
// reduced output volume is what keeps 60fps sustainable over a terminal
// link, so this is part of the rendering contract, not a nicety.
func RenderFrame(fb *core.Framebuffer) string {
	w := fb.Width()
	h := fb.Height()
	rows := (h + 1) / 2

	var sb strings.Builder
	sb.Grow(w*rows*8 + rows*8)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		var fg, bg core.RGB
		haveFg, haveBg := false, false

		for x := 0; x < w; x++ {
			top := fb.Pix[row*2*w+x]
			bot := core.RGB{}
			if row*2+1 < h {
				bot = fb.Pix[(row*2+1)*w+x]
			}

			if !haveFg || top != fg {
				writeSGR(&sb, 38, top)
				fg = top
				haveFg = true
			}
			if !haveBg || bot != bg {
				writeSGR(&sb, 48, bot)
				bg = bot
				haveBg = true
			}
			sb.WriteRune(halfBlock)
		}
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

// writeSGR emits a true-color SGR sequence; base is 38 for foreground and
// 48 for background.
func writeSGR(sb *strings.Builder, base int, c core.RGB) {
	sb.WriteString("\x1b[")
	sb.WriteString(strconv.Itoa(base))
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte('m')
}
