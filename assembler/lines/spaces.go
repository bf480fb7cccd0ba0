package lines

type (
	Spaces uint64
)

var Whitespace = NewSpaces(' ', '\t', '\r', '\v', '\f')

func NewSpaces(skip ...byte) (ss Spaces) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s Spaces) Is(c byte) bool {
	return c < 64 && s&(1<<c) != 0
}

func (s Spaces) Skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && s.Is(b[i]) {
		i++
	}

	return
}

// AppendStripped appends l to b leaving out every byte of the set.
func (s Spaces) AppendStripped(b, l []byte) []byte {
	for i := 0; i < len(l); {
		j := s.Skip(l, i)

		k := j
		for k < len(l) && !s.Is(l[k]) {
			k++
		}

		b = append(b, l[j:k]...)
		i = k
	}

	return b
}
