package encode

import (
	"context"
	"strconv"
	"strings"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"

	"github.com/slowlang/hackasm/assembler/lines"
)

type (
	// Encoder translates resolved instruction lines into binary words.
	//
	// By default the first bad line fails the whole encoding.
	// Lenient encoder writes a placeholder for each unknown field instead,
	// and keeps the low 15 bits of too big addresses.
	Encoder struct {
		Lenient bool
	}

	Fields struct {
		Dest string
		Comp string
		Jump string
	}
)

const (
	WordSize   = 16
	MaxAddress = 1<<15 - 1

	compPrefix = "111"
)

func Encode(ctx context.Context, text []byte) ([]byte, error) {
	return Encoder{}.Encode(ctx, text)
}

// Line encodes one resolved line.
func Line(l string) (string, error) {
	b, err := Encoder{}.appendLine(context.Background(), nil, []byte(l))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Encode encodes every line of text.
// Words are separated by line breaks with no break after the last one.
func (e Encoder) Encode(ctx context.Context, text []byte) (_ []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "encode", "lenient", e.Lenient)
	defer tr.Finish("err", &err)

	res := make([]byte, 0, len(text)*2)
	it := lines.New(text)
	n := 0

	for {
		l, ok := it.Next()
		if !ok {
			break
		}

		if len(l) == 0 {
			continue
		}

		if n != 0 {
			res = append(res, lines.LineBreak)
		}

		res, err = e.appendLine(ctx, res, l)
		if err != nil {
			return nil, errors.Wrap(err, "line %d: %s", it.Line(), l)
		}

		n++
	}

	tr.V("encode").Printw("encoded", "words", n)

	return res, nil
}

func (e Encoder) appendLine(ctx context.Context, b []byte, l []byte) (_ []byte, err error) {
	if lines.IsAddress(l) {
		return e.appendAddress(ctx, b, l[1:])
	}

	f := Split(string(l))

	b = append(b, compPrefix...)

	for _, x := range []struct {
		f      Field
		m      string
		lookup func(string) (string, error)
	}{
		{CompField, f.Comp, Comp},
		{DestField, f.Dest, Dest},
		{JumpField, f.Jump, Jump},
	} {
		bits, err := x.lookup(x.m)
		if err != nil {
			if !e.Lenient {
				return nil, err
			}

			tlog.SpanFromContext(ctx).Printw("unknown mnemonic", "line", string(l), "fields", f, "field", x.f, "mnemonic", x.m)

			bits = x.f.Sentinel()
		}

		b = append(b, bits...)
	}

	return b, nil
}

func (e Encoder) appendAddress(ctx context.Context, b []byte, num []byte) ([]byte, error) {
	if !lines.IsNumber(num) {
		return nil, errors.New("bad address: %q", num)
	}

	v, err := strconv.ParseUint(string(num), 10, 64)
	if err != nil && !e.Lenient {
		return nil, errors.Wrap(err, "parse address")
	}

	if err != nil {
		v = lowBits(num)

		tlog.SpanFromContext(ctx).Printw("address truncated", "addr", string(num), "to", v)
	} else if v > MaxAddress {
		if !e.Lenient {
			return nil, &AddressRangeError{Value: v}
		}

		tlog.SpanFromContext(ctx).Printw("address truncated", "addr", v, "to", v&MaxAddress)
	}

	return appendAddress(b, v), nil
}

// Address encodes an address-load of v.
func Address(v uint64) (string, error) {
	if v > MaxAddress {
		return "", &AddressRangeError{Value: v}
	}

	return string(appendAddress(nil, v)), nil
}

func appendAddress(b []byte, v uint64) []byte {
	return hfmt.Appendf(b, "0%015b", v&MaxAddress)
}

// lowBits returns the low 15 bits of a decimal number of any length.
func lowBits(num []byte) (v uint64) {
	for _, c := range num {
		v = (v*10 + uint64(c-'0')) & MaxAddress
	}

	return v
}

// Split separates a compute line into its fields.
// The jump separator is looked for first, then the assignment separator.
func Split(l string) (f Fields) {
	assign := l

	if i := strings.IndexByte(l, lines.JumpSep); i >= 0 {
		assign, f.Jump = l[:i], l[i+1:]
	}

	if i := strings.IndexByte(assign, lines.AssignSep); i >= 0 {
		f.Dest, f.Comp = assign[:i], assign[i+1:]
	} else {
		f.Comp = assign
	}

	return f
}

func Comp(m string) (string, error) { return lookup(compTable, CompField, m) }
func Dest(m string) (string, error) { return lookup(destTable, DestField, m) }
func Jump(m string) (string, error) { return lookup(jumpTable, JumpField, m) }

func lookup(tab map[string]string, f Field, m string) (string, error) {
	bits, ok := tab[m]
	if !ok {
		return "", &UnknownMnemonicError{Field: f, Mnemonic: m}
	}

	return bits, nil
}

func (f Fields) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 3)

	b = e.AppendKeyString(b, "dest", f.Dest)
	b = e.AppendKeyString(b, "comp", f.Comp)
	b = e.AppendKeyString(b, "jump", f.Jump)

	return b
}
