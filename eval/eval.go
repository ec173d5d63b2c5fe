package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/maydoc/go-maydoc/debug"
	"github.com/maydoc/go-maydoc/dig"
	"github.com/maydoc/go-maydoc/ir"
	"github.com/maydoc/go-maydoc/opt"
)

// ErrEval reports an expression that does not compile or fails to run.
var ErrEval = errors.New("eval error")

// Eval compiles and runs an expression against a document. For object
// documents the fields become the expression environment, so they are
// addressable by name:
//
//	eval.Eval(doc, `applications[0].name`)
//	eval.Eval(doc, `ratio * 2 > 20`)
//
// Non-object documents are bound to the name "value". Two functions close
// over the document root: dig("a[0].b") returns the value at a path, nil
// when absent, and has("a[0].b") reports presence.
//
// The result comes back as an Option in DigAny's shape: scalars as natural
// Go values, arrays and objects as *ir.Node, and a nil result as None.
func Eval(root *ir.Node, src string) (opt.Option, error) {
	if debug.Eval() {
		debug.Logf("eval %q on\n%v\n", src, root)
	}
	prg, err := expr.Compile(src, exprOpts(root)...)
	if err != nil {
		return opt.None(), fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, exprEnv(root))
	if err != nil {
		return opt.None(), fmt.Errorf("%w: %w", ErrEval, err)
	}
	if res == nil {
		return opt.None(), nil
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return opt.None(), fmt.Errorf("%w: %w", ErrEval, err)
	}
	return opt.Some(dig.Natural(node)), nil
}

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("dig", func(params ...any) (any, error) {
			path, err := dig.ParsePath(params[0].(string))
			if err != nil {
				return nil, err
			}
			node, err := opt.Unwrap[*ir.Node](dig.Dig(root, path...))
			if err != nil {
				return nil, nil
			}
			return ir.ToAny(node), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			path, err := dig.ParsePath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return dig.Dig(root, path...).IsSome(), nil
		},
			new(func(string) bool)),
	}
}

func exprEnv(root *ir.Node) map[string]any {
	if root != nil && root.Type == ir.ObjectType {
		if m, ok := ir.ToAny(root).(map[string]any); ok {
			return m
		}
	}
	var v any
	if root != nil {
		v = ir.ToAny(root)
	}
	return map[string]any{"value": v}
}
