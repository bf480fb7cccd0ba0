package pass

import (
	"bytes"
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/hackasm/assembler/lines"
	"github.com/slowlang/hackasm/assembler/symtab"
)

// ResolveLabels registers label declarations at the address of the
// instruction following them and removes the declaration lines.
func ResolveLabels(ctx context.Context, text []byte, t *symtab.Table) (_ []byte, err error) {
	tr := tlog.SpanFromContext(ctx)

	res := make([]byte, 0, len(text))
	it := lines.New(text)
	addr := 0

	for {
		l, ok := it.Next()
		if !ok {
			break
		}

		if !lines.IsLabel(l) {
			res = append(res, l...)
			res = append(res, lines.LineBreak)
			addr++

			continue
		}

		name, err := labelName(l)
		if err != nil {
			return nil, errors.Wrap(err, "line %d: %s", it.Line(), l)
		}

		s, added := t.Define(name, addr, symtab.Label)

		tr.V("labels").Printw("label", "name", name, "addr", addr, "sym", s, "added", added)
	}

	return res, nil
}

func labelName(l []byte) (string, error) {
	end := bytes.IndexByte(l, lines.LabelClose)
	if end < 0 {
		return "", errors.New("unterminated label")
	}

	if end == 1 {
		return "", errors.New("empty label")
	}

	return string(l[1:end]), nil
}
