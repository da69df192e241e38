package sandbox

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"
)

// DefineError reports that a submission could not be parsed or defined.
// Line and Column refer to the submission's own text (1-based) and are
// zero when unknown.
type DefineError struct {
	Detail string
	Line   int
	Column int
}

func (e *DefineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
	}
	return e.Detail
}

const synthPackageClause = "package submission\n"

// Parse parses a submission into a file AST. A submission is a sequence of
// top-level function declarations; a leading package clause is optional and
// one is synthesized when absent. The returned header line count must be
// subtracted from token positions to get submission-relative lines.
func Parse(src string) (*ast.File, *token.FileSet, int, error) {
	headerLines := 0
	text := src
	if !strings.HasPrefix(strings.TrimLeft(src, " \t\n"), "package ") {
		text = synthPackageClause + src
		headerLines = 1
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "submission", text, 0)
	if err != nil {
		return nil, nil, headerLines, err
	}
	return file, fset, headerLines, nil
}

// Define parses the submission and installs its function definitions into
// the environment. Syntax errors come back with a source context window;
// non-function top-level declarations are rejected.
func Define(env *Env, src string) *DefineError {
	file, _, headerLines, err := Parse(src)
	if err != nil {
		return syntaxDefineError(err, src, headerLines)
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil {
				return &DefineError{Detail: fmt.Sprintf("methods are not supported, define %q as a plain function", d.Name.Name)}
			}
			if d.Body == nil {
				return &DefineError{Detail: fmt.Sprintf("function %q has no body", d.Name.Name)}
			}
			params, perr := paramNames(d)
			if perr != nil {
				return perr
			}
			env.defs[d.Name.Name] = &Func{
				name:   d.Name.Name,
				params: params,
				body:   d.Body,
				env:    env,
			}
		case *ast.GenDecl:
			if d.Tok == token.IMPORT {
				return &DefineError{Detail: "imports are not allowed"}
			}
			return &DefineError{Detail: "only function declarations are allowed at the top level"}
		default:
			return &DefineError{Detail: "only function declarations are allowed at the top level"}
		}
	}
	return nil
}

func paramNames(d *ast.FuncDecl) ([]string, *DefineError) {
	var params []string
	if d.Type.Params == nil {
		return params, nil
	}
	for _, field := range d.Type.Params.List {
		if _, ok := field.Type.(*ast.Ellipsis); ok {
			return nil, &DefineError{Detail: fmt.Sprintf("function %q: variadic parameters are not supported", d.Name.Name)}
		}
		if len(field.Names) == 0 {
			return nil, &DefineError{Detail: fmt.Sprintf("function %q: parameters must be named", d.Name.Name)}
		}
		for _, name := range field.Names {
			params = append(params, name.Name)
		}
	}
	return params, nil
}

// syntaxDefineError converts a parser error into a DefineError with a small
// context window around the offending line, in the style of:
//
//	  2: func add(a, b int) int {
//	→ 3:   return a +
//	  4: }
func syntaxDefineError(err error, src string, headerLines int) *DefineError {
	list, ok := err.(scanner.ErrorList)
	if !ok || len(list) == 0 {
		return &DefineError{Detail: fmt.Sprintf("could not parse submission: %v", err)}
	}
	first := list[0]
	line := first.Pos.Line - headerLines
	col := first.Pos.Column
	if line < 1 {
		line = 1
	}

	lines := strings.Split(src, "\n")
	start := line - 2
	if start < 0 {
		start = 0
	}
	end := line + 1
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at line %d: %s\n", line, first.Msg)
	for i := start; i < end; i++ {
		marker := "  "
		if i == line-1 {
			marker = "→ "
		}
		fmt.Fprintf(&b, "%s%d: %s\n", marker, i+1, lines[i])
	}
	return &DefineError{
		Detail: strings.TrimRight(b.String(), "\n"),
		Line:   line,
		Column: col,
	}
}
