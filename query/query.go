package query

import (
	"fmt"

	"github.com/flexon-format/go-flexon/data"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled expression, reusable across documents.
type Query struct {
	src     string
	program *vm.Program
}

// Compile compiles src for later evaluation with Run.
func Compile(src string) (*Query, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return &Query{src: src, program: program}, nil
}

// Run evaluates the query against doc and returns the result as a
// tree.
func (q *Query) Run(doc *data.Data) (*data.Data, error) {
	out, err := vm.Run(q.program, environ(doc))
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", q.src, err)
	}
	return data.FromNative(out), nil
}

// Eval compiles and runs src against doc in one step. Unlike a
// precompiled Query, Eval also exposes a get(path) helper bound to
// doc, following the tree's dotted path syntax.
func Eval(src string, doc *data.Data) (*data.Data, error) {
	program, err := expr.Compile(src, docOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	out, err := vm.Run(program, environ(doc))
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", src, err)
	}
	return data.FromNative(out), nil
}

// environ builds the evaluation environment. Map documents contribute
// their fields as identifiers; anything else is bound under "doc".
func environ(doc *data.Data) map[string]any {
	if doc.IsMap() {
		if env, ok := doc.ToNative().(map[string]any); ok {
			return env
		}
	}
	return map[string]any{"doc": doc.ToNative()}
}

func docOpts(doc *data.Data) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("get wants a string path, got %T", params[0])
			}
			return doc.GetPath(path).ToNative(), nil
		},
			new(func(string) any)),
	}
}
