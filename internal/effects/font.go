package effects

// scrollFont is a 5x7 bitmap font covering the glyphs the scroller text
// uses. Rows are strings of '#' and ' '; unknown runes render as spaces.
var scrollFont = map[rune][7]string{
	'A': {
		" ### ",
		"#   #",
		"#   #",
		"#####",
		"#   #",
		"#   #",
		"#   #",
	},
	'C': {
		" ####",
		"#    ",
		"#    ",
		"#    ",
		"#    ",
		"#    ",
		" ####",
	},
	'D': {
		"#### ",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#### ",
	},
	'E': {
		"#####",
		"#    ",
		"#    ",
		"#### ",
		"#    ",
		"#    ",
		"#####",
	},
	'G': {
		" ####",
		"#    ",
		"#    ",
		"# ###",
		"#   #",
		"#   #",
		" ### ",
	},
	'I': {
		"#####",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
		"#####",
	},
	'L': {
		"#    ",
		"#    ",
		"#    ",
		"#    ",
		"#    ",
		"#    ",
		"#####",
	},
	'M': {
		"#   #",
		"## ##",
		"# # #",
		"# # #",
		"#   #",
		"#   #",
		"#   #",
	},
	'N': {
		"#   #",
		"##  #",
		"# # #",
		"#  ##",
		"#   #",
		"#   #",
		"#   #",
	},
	'O': {
		" ### ",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		" ### ",
	},
	'P': {
		"#### ",
		"#   #",
		"#   #",
		"#### ",
		"#    ",
		"#    ",
		"#    ",
	},
	'R': {
		"#### ",
		"#   #",
		"#   #",
		"#### ",
		"# #  ",
		"#  # ",
		"#   #",
	},
	'S': {
		" ####",
		"#    ",
		"#    ",
		" ### ",
		"    #",
		"    #",
		"#### ",
	},
	'T': {
		"#####",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
	},
	'U': {
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		" ### ",
	},
	'X': {
		"#   #",
		"#   #",
		" # # ",
		"  #  ",
		" # # ",
		"#   #",
		"#   #",
	},
	'Y': {
		"#   #",
		"#   #",
		" # # ",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
	},
	'!': {
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
		"     ",
		"  #  ",
	},
	'*': {
		"     ",
		"# # #",
		" ### ",
		"#####",
		" ### ",
		"# # #",
		"     ",
	},
	' ': {
		"     ",
		"     ",
		"     ",
		"     ",
		"     ",
		"     ",
		"     ",
	},
}

const (
	glyphW = 5
	glyphH = 7
	// glyphAdvance includes one column of spacing between glyphs.
	glyphAdvance = glyphW + 1
)

// glyphPixel reports whether the glyph for r has ink at (gx, gy).
func glyphPixel(r rune, gx, gy int) bool {
	g, ok := scrollFont[r]
	if !ok {
		return false
	}
	if gx < 0 || gx >= glyphW || gy < 0 || gy >= glyphH {
		return false
	}
	return g[gy][gx] == '#'
}
