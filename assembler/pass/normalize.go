package pass

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/slowlang/hackasm/assembler/lines"
)

// Normalize drops comments, whitespace and empty lines.
// Every line of the result is terminated by a line break.
func Normalize(ctx context.Context, text []byte) []byte {
	tr := tlog.SpanFromContext(ctx)

	res := make([]byte, 0, len(text))
	it := lines.New(text)
	kept := 0

	for {
		l, ok := it.Next()
		if !ok {
			break
		}

		l = lines.StripComment(l)

		st := len(res)
		res = lines.Whitespace.AppendStripped(res, l)

		if len(res) == st {
			continue
		}

		res = append(res, lines.LineBreak)
		kept++
	}

	tr.V("normalize").Printw("normalized", "lines", it.Line(), "kept", kept, "size", len(text), "out_size", len(res))

	return res
}
