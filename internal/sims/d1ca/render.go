package d1ca

import "strings"

const (
	glyphDead  = '□'
	glyphAlive = '■'
)

// Render draws the lattice as text, one line per generation, newest first.
func (u *Universe) Render() string {
	w := int(u.width)
	var b strings.Builder
	b.Grow(w * (w*len(string(glyphAlive)) + 1))
	rows := u.Lattice()
	for r := 0; r < w; r++ {
		writeRow(&b, rows[r*w:(r+1)*w])
	}
	return b.String()
}

// String implements fmt.Stringer.
func (u *Universe) String() string { return u.Render() }

// RenderRow draws a single row of cells without a trailing newline.
func RenderRow(row []uint8) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteRune(glyph(c))
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []uint8) {
	for _, c := range row {
		b.WriteRune(glyph(c))
	}
	b.WriteByte('\n')
}

func glyph(c uint8) rune {
	if c == 0 {
		return glyphDead
	}
	return glyphAlive
}
