package pass

import (
	"bytes"
	"context"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/hackasm/assembler/lines"
	"github.com/slowlang/hackasm/assembler/symtab"
)

// ResolveSymbols replaces every symbolic address reference with its value.
// Unknown names become variables.
// n is the number of instruction lines.
func ResolveSymbols(ctx context.Context, text []byte, t *symtab.Table) (_ []byte, n int, err error) {
	tr := tlog.SpanFromContext(ctx)

	res := make([]byte, 0, len(text))
	it := lines.New(text)

	for {
		l, ok := it.Next()
		if !ok {
			break
		}

		if len(l) == 0 {
			continue
		}

		n++

		ref := bytes.IndexByte(l, lines.RefMarker)
		if ref < 0 {
			res = append(res, l...)
			res = append(res, lines.LineBreak)

			continue
		}

		name := l[ref+1:]

		res = append(res, l[:ref+1]...)

		switch {
		case len(name) == 0:
			return nil, n, errors.New("line %d: empty address reference", it.Line())
		case lines.IsNumber(name):
			res = append(res, name...)
		default:
			s := t.Resolve(string(name))

			tr.V("symbols").Printw("reference", "line", it.Line(), "sym", s)

			res = strconv.AppendInt(res, int64(s.Value), 10)
		}

		res = append(res, lines.LineBreak)
	}

	return res, n, nil
}
