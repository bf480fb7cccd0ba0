package assembler

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/hackasm/assembler/encode"
	"github.com/slowlang/hackasm/assembler/pass"
	"github.com/slowlang/hackasm/assembler/symtab"
)

type (
	Assembler struct {
		// Lenient writes placeholders for unknown mnemonics instead of failing.
		Lenient bool
	}
)

const OutputExt = ".hack"

func AssembleFile(ctx context.Context, name string) (obj []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Assemble(ctx, text)
}

func Assemble(ctx context.Context, text []byte) (obj []byte, err error) {
	var a Assembler

	return a.Assemble(ctx, text)
}

func (a *Assembler) Assemble(ctx context.Context, text []byte) (obj []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "assemble", "size", len(text))
	defer tr.Finish("err", &err)

	st := symtab.New()

	text = pass.Normalize(ctx, text)

	text, err = pass.ResolveLabels(ctx, text, st)
	if err != nil {
		return nil, errors.Wrap(err, "labels")
	}

	text, n, err := pass.ResolveSymbols(ctx, text, st)
	if err != nil {
		return nil, errors.Wrap(err, "symbols")
	}

	if tr.If("dump_symtab") {
		for _, s := range st.Sorted() {
			tr.Printw("symbol", "sym", s)
		}
	}

	obj, err = encode.Encoder{Lenient: a.Lenient}.Encode(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	tr.Printw("assembled", "instructions", n, "symbols", st.Len())

	return obj, nil
}

// OutputPath returns name with its extension replaced by .hack.
func OutputPath(name string) string {
	ext := filepath.Ext(name)

	return strings.TrimSuffix(name, ext) + OutputExt
}

func WriteFile(ctx context.Context, name string, obj []byte) error {
	err := os.WriteFile(name, obj, 0o644)
	if err != nil {
		return errors.Wrap(err, "write file")
	}

	tlog.SpanFromContext(ctx).Printw("write file", "size", len(obj), "name", name)

	return nil
}
