package pattern

// reader is a single-pass rune reader with push-back, used by the atom parser.
type reader struct {
	runes []rune
	off   int
}

func newReader(s string) *reader {
	return &reader{runes: []rune(s)}
}

// hasNext reports whether unread runes remain.
func (r *reader) hasNext() bool {
	return r.off < len(r.runes)
}

// next consumes one rune.
func (r *reader) next() (rune, bool) {
	if r.off >= len(r.runes) {
		return 0, false
	}
	c := r.runes[r.off]
	r.off++

	return c, true
}

// unread pushes the last consumed rune back.
func (r *reader) unread() {
	if r.off > 0 {
		r.off--
	}
}

// pos returns the offset of the next rune.
func (r *reader) pos() int {
	return r.off
}

// since returns the runes from start up to the current position.
func (r *reader) since(start int) string {
	if start < 0 {
		start = 0
	}

	return string(r.runes[start:r.off])
}
