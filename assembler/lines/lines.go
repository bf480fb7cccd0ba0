package lines

import "bytes"

type (
	// Iter yields lines of b without copying.
	// A final line without a trailing line break is yielded too.
	Iter struct {
		b []byte
		i int

		n int
	}
)

const (
	LineBreak  = '\n'
	RefMarker  = '@'
	LabelOpen  = '('
	LabelClose = ')'
	AssignSep  = '='
	JumpSep    = ';'
)

var CommentStart = []byte("//")

func New(b []byte) *Iter {
	return &Iter{b: b}
}

// Next returns the next line without its line break.
func (it *Iter) Next() (l []byte, ok bool) {
	if it.i >= len(it.b) {
		return nil, false
	}

	st := it.i

	end := bytes.IndexByte(it.b[st:], LineBreak)
	if end < 0 {
		end = len(it.b)
		it.i = end
	} else {
		end += st
		it.i = end + 1
	}

	it.n++

	return it.b[st:end], true
}

// Line is the 1-based number of the last line returned by Next.
func (it *Iter) Line() int { return it.n }

// StripComment cuts l at the comment start.
func StripComment(l []byte) []byte {
	if i := bytes.Index(l, CommentStart); i >= 0 {
		return l[:i]
	}

	return l
}

func IsLabel(l []byte) bool {
	return len(l) != 0 && l[0] == LabelOpen
}

func IsAddress(l []byte) bool {
	return len(l) != 0 && l[0] == RefMarker
}

// IsNumber reports whether s is a non-empty run of decimal digits.
func IsNumber(s []byte) bool {
	if len(s) == 0 {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
