package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, text string) (res []string) {
	t.Helper()

	it := New([]byte(text))

	for {
		l, ok := it.Next()
		if !ok {
			break
		}

		res = append(res, string(l))
		require.Equal(t, len(res), it.Line())
	}

	return res
}

func TestIter(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, collect(t, "a\n\nb\n"))
	assert.Equal(t, []string{"a", "b"}, collect(t, "a\nb"))
	assert.Equal(t, []string{""}, collect(t, "\n"))
	assert.Nil(t, collect(t, ""))
}

func TestStripComment(t *testing.T) {
	for _, tc := range []struct {
		in, exp string
	}{
		{"D=M", "D=M"},
		{"D=M // load", "D=M "},
		{"// whole line", ""},
		{"@1/2", "@1/2"},
		{"0;JMP//x//y", "0;JMP"},
	} {
		assert.Equal(t, tc.exp, string(StripComment([]byte(tc.in))), "in: %q", tc.in)
	}
}

func TestWhitespace(t *testing.T) {
	b := Whitespace.AppendStripped([]byte("x"), []byte(" \tD = D + A\r\v\f "))
	assert.Equal(t, "xD=D+A", string(b))

	assert.Empty(t, Whitespace.AppendStripped(nil, []byte(" \t\r ")))
	assert.Equal(t, 3, Whitespace.Skip([]byte(" \t D"), 0))
	assert.False(t, NewSpaces(' ').Is('\t'))
	assert.True(t, Whitespace.Is('\r'))
	assert.False(t, Whitespace.Is('@'))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsLabel([]byte("(LOOP)")))
	assert.False(t, IsLabel([]byte("@LOOP")))
	assert.False(t, IsLabel(nil))

	assert.True(t, IsAddress([]byte("@LOOP")))
	assert.False(t, IsAddress([]byte("D=A")))

	assert.True(t, IsNumber([]byte("0")))
	assert.True(t, IsNumber([]byte("24576")))
	assert.False(t, IsNumber([]byte("")))
	assert.False(t, IsNumber([]byte("R1")))
	assert.False(t, IsNumber([]byte("-1")))
	assert.False(t, IsNumber([]byte("1a")))
}
