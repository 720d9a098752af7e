// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"runtime"
	"strings"
)

// funcSource returns the defining file, line and qualified name of a
// function value. Only meaningful on the machine the binary was built on;
// callers treat empty results as "unknown".
func funcSource(rv reflect.Value) (file string, line int, name string) {
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return "", 0, ""
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "", 0, ""
	}
	file, line = fn.FileLine(fn.Entry())
	return file, line, fn.Name()
}

// baseFuncName reduces a runtime-qualified name like
// "github.com/x/pkg.(*T).Method-fm" to "Method".
func baseFuncName(qualified string) string {
	if qualified == "" {
		return ""
	}
	name := qualified
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	return name
}

// signature reconstructs a call signature for the function. Parameter names
// come from the declaration in the defining source file when that is
// available; otherwise the reflected type supplies a names-free form.
func (d *Description) signature(rv reflect.Value) string {
	file, line, qual := funcSource(rv)
	name := d.name
	if name == "" {
		name = baseFuncName(qual)
	}
	if name == "" {
		name = "func"
	}
	if decl := funcDecl(file, line, qual); decl != nil {
		return name + formatSignature(decl.Type)
	}
	return name + strings.TrimPrefix(rv.Type().String(), "func")
}

// paramNames returns one name per parameter, falling back to arg0..argN
// when the declaration is unavailable.
func (d *Description) paramNames(rv reflect.Value) []string {
	t := rv.Type()
	file, line, qual := funcSource(rv)
	if decl := funcDecl(file, line, qual); decl != nil && decl.Type.Params != nil {
		var names []string
		for _, f := range decl.Type.Params.List {
			if len(f.Names) == 0 {
				names = append(names, fmt.Sprintf("arg%d", len(names)))
				continue
			}
			for _, n := range f.Names {
				names = append(names, n.Name)
			}
		}
		if len(names) == t.NumIn() {
			return names
		}
	}
	names := make([]string, t.NumIn())
	for i := range names {
		names[i] = fmt.Sprintf("arg%d", i)
	}
	return names
}

// ParamNames returns the wrapped function's parameter names, best-effort.
// Nil when the value is not a function.
func (d *Description) ParamNames() []string {
	rv := reflect.ValueOf(d.value)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil
	}
	return d.paramNames(rv)
}

// doc returns the comment block above the function's declaration, if any.
func (d *Description) doc(rv reflect.Value) string {
	file, line, qual := funcSource(rv)
	decl := funcDecl(file, line, qual)
	if decl == nil || decl.Doc == nil {
		return ""
	}
	return decl.Doc.Text()
}

// funcDecl parses the defining file and returns the declaration containing
// line. Function literals have no declaration of their own and resolve to
// nothing rather than to their enclosing function.
func funcDecl(file string, line int, qualified string) *ast.FuncDecl {
	if file == "" || strings.Contains(qualified, ".func") {
		return nil
	}
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
	if err != nil {
		return nil
	}
	for _, decl := range parsed.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if line >= fset.Position(fd.Pos()).Line && line <= fset.Position(fd.End()).Line {
			return fd
		}
	}
	return nil
}

func formatSignature(ft *ast.FuncType) string {
	var b strings.Builder
	b.WriteString("(")
	if ft.Params != nil {
		b.WriteString(fieldList(ft.Params))
	}
	b.WriteString(")")
	if ft.Results != nil && len(ft.Results.List) > 0 {
		results := fieldList(ft.Results)
		if len(ft.Results.List) == 1 && len(ft.Results.List[0].Names) == 0 {
			b.WriteString(" " + results)
		} else {
			b.WriteString(" (" + results + ")")
		}
	}
	return b.String()
}

func fieldList(fl *ast.FieldList) string {
	var parts []string
	for _, f := range fl.List {
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			parts = append(parts, typ)
			continue
		}
		names := make([]string, len(f.Names))
		for i, n := range f.Names {
			names[i] = n.Name
		}
		parts = append(parts, strings.Join(names, ", ")+" "+typ)
	}
	return strings.Join(parts, ", ")
}

// yields reports whether calling the function produces a lazily consumable
// sequence (an iterator or a receive-only channel), and describes what it
// yields. A value that itself is an iterator counts too.
func yields(t reflect.Type) (string, bool) {
	if t == nil || t.Kind() != reflect.Func {
		return "", false
	}
	if strings.HasPrefix(t.String(), "iter.Seq") {
		return t.String(), true
	}
	for i := 0; i < t.NumOut(); i++ {
		o := t.Out(i)
		if o.Kind() == reflect.Chan && o.ChanDir() == reflect.RecvDir {
			return o.Elem().String(), true
		}
		if strings.HasPrefix(o.String(), "iter.Seq") {
			return o.String(), true
		}
	}
	return "", false
}
