// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package describe renders arbitrary values for humans. A Description wraps
// one value and produces three representations: a full multi-line form, a
// single-line short form, and generated scaffold code for consuming the
// value's shape. No reflective failure is allowed to escape; every risky
// lookup falls back to a simpler, always-available rendering.
package describe

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/kr/pretty"

	"github.com/wtf-go/wtf/internal/match"
)

// Options configures rendering. The zero value gets sensible defaults.
type Options struct {
	// Out receives progress output from Find and sampling feedback.
	Out io.Writer
	// ShortWidth caps the display width of Short.
	ShortWidth int
	// PrettyThreshold is the rendered length at which map pretty-printing
	// gives way to per-key one-line summaries.
	PrettyThreshold int
	// MaxDepth bounds Find traversal and nested short descriptions.
	MaxDepth int
	// SampleBudget bounds wall-clock time spent sampling sequence elements
	// for scaffold generation.
	SampleBudget time.Duration
	// Spinner, when set, animates long sampling runs.
	Spinner func(w io.Writer, message string, fn func() error) error
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.ShortWidth == 0 {
		o.ShortWidth = 100
	}
	if o.PrettyThreshold == 0 {
		o.PrettyThreshold = 300
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = 42
	}
	if o.SampleBudget == 0 {
		o.SampleBudget = 2 * time.Second
	}
	return o
}

// Description wraps a value together with its renderings. Immutable after
// construction; create one per inspected value and discard it.
type Description struct {
	value any
	name  string
	typ   reflect.Type
	opts  Options
	depth int

	repr *reprPair
}

type reprPair struct {
	human   string // fmt %v, addresses stripped
	machine string // fmt %#v, addresses stripped
}

// New describes x. name is the value's source-code variable name, if known;
// it feeds generated scaffold code and search progress output.
func New(x any, name string, opts Options) *Description {
	d := &Description{value: x, name: name, opts: opts.withDefaults()}
	if t, ok := x.(reflect.Type); ok {
		// Describing a type rather than a value: the type is its own best
		// representation.
		d.typ = t
		d.repr = &reprPair{human: t.String(), machine: t.String()}
		return d
	}
	d.typ = reflect.TypeOf(x)
	return d
}

// reprs renders the value with fmt, once, on first use. fmt recurses
// forever on self-referential values, so those are detected up front and
// rendered with kr/pretty instead, which prints a cycle marker.
func (d *Description) reprs() reprPair {
	if d.repr == nil {
		if cyclic(reflect.ValueOf(d.value), nil) {
			s := StripAddresses(pretty.Sprint(d.value))
			d.repr = &reprPair{human: s, machine: s}
		} else {
			d.repr = &reprPair{
				human:   StripAddresses(fmt.Sprintf("%v", d.value)),
				machine: StripAddresses(fmt.Sprintf("%#v", d.value)),
			}
		}
	}
	return *d.repr
}

// cyclic reports whether v can reach itself through pointers, interfaces,
// maps, slices, arrays or struct fields. seen holds the containers on the
// current path only, so shared (diamond) references do not count.
func cyclic(v reflect.Value, seen map[uintptr]bool) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		p := v.Pointer()
		if seen[p] {
			return true
		}
		if seen == nil {
			seen = map[uintptr]bool{}
		}
		seen[p] = true
		defer delete(seen, p)
		switch v.Kind() {
		case reflect.Ptr:
			return cyclic(v.Elem(), seen)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if cyclic(iter.Key(), seen) || cyclic(iter.Value(), seen) {
					return true
				}
			}
		case reflect.Slice:
			for i := 0; i < v.Len(); i++ {
				if cyclic(v.Index(i), seen) {
					return true
				}
			}
		}
		return false
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if cyclic(v.Index(i), seen) {
				return true
			}
		}
		return false
	case reflect.Interface:
		return cyclic(v.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if cyclic(v.Field(i), seen) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (d *Description) human() string   { return d.reprs().human }
func (d *Description) machine() string { return d.reprs().machine }

// child describes a value found inside this one.
func (d *Description) child(x any) *Description {
	c := New(x, "", d.opts)
	c.depth = d.depth + 1
	return c
}

func (d *Description) namedChild(x any, name string) *Description {
	c := d.child(x)
	c.name = name
	return c
}

// Name returns the inferred source variable name, possibly empty.
func (d *Description) Name() string { return d.name }

// Value returns the wrapped value.
func (d *Description) Value() any { return d.value }

func (d *Description) typeName() string {
	if d.typ == nil {
		return "nil"
	}
	return d.typ.String()
}

func (d *Description) fullTypeName() string {
	if d.typ == nil {
		return "nil"
	}
	if d.typ.PkgPath() != "" && d.typ.Name() != "" {
		return d.typ.PkgPath() + "." + d.typ.Name()
	}
	return d.typ.String()
}

func (d *Description) builtin() bool { return d.typ == nil || d.typ.PkgPath() == "" }

// String renders the full, type-specific, multi-line description.
func (d *Description) String() string {
	if d.typ == nil {
		return "nil"
	}
	if _, ok := d.value.(match.Node); ok {
		return d.Code()
	}
	if e, ok := d.value.(*DecodeError); ok {
		return d.decodeErrorDescription(e)
	}
	if b, ok := d.value.([]byte); ok {
		return d.bytesDescription(b)
	}
	if _, ok := d.value.(error); ok {
		return strings.Join(d.genericLines(), "\n")
	}
	rv := reflect.ValueOf(d.value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%s(%s)", d.typeName(), d.machine())
	case reflect.Bool, reflect.String:
		return d.machine()
	case reflect.Slice, reflect.Array:
		return d.Code()
	case reflect.Map:
		return d.mapDescription(rv)
	default:
		return strings.Join(d.genericLines(), "\n")
	}
}

// mapDescription pretty-prints the whole map when that stays below the
// clutter threshold, and otherwise lists one short summary per key.
func (d *Description) mapDescription(rv reflect.Value) string {
	formatted := StripAddresses(pretty.Sprintf("%# v", d.value))
	if len(formatted) < d.opts.PrettyThreshold {
		return formatted
	}
	var lines []string
	for _, k := range sortedKeys(rv) {
		v := rv.MapIndex(k)
		lines = append(lines, fmt.Sprintf("%v:\t%s", k.Interface(), d.child(valueOf(v)).Short()))
	}
	return strings.Join(lines, "\n")
}

// genericLines builds the fallback block used for everything without a more
// specific rendering. Every line is best-effort.
func (d *Description) genericLines() []string {
	var lines []string
	rv := reflect.ValueOf(d.value)
	isFunc := rv.IsValid() && rv.Kind() == reflect.Func
	human, machine := d.human(), d.machine()
	switch {
	case isError(d.value):
		lines = append(lines, d.fullTypeName(), human)
	case isFunc:
		// The repr of a function is just its (stripped) address; the
		// signature line below carries the information instead.
	case machine == human:
		lines = append(lines, machine)
	default:
		lines = append(lines, "%v:        "+human)
		lines = append(lines, "%#v:       "+machine)
	}
	if full := d.fullTypeName(); !d.builtin() && !strings.Contains(machine, full) && !isError(d.value) {
		lines = append(lines, "type:      "+full)
	}
	if isFunc {
		if file, line, _ := funcSource(rv); file != "" && !strings.Contains(machine, file) {
			lines = append(lines, fmt.Sprintf("from:      %s:%d", file, line))
		}
	}
	if inherits := d.inherits(); inherits != "" {
		lines = append(lines, "inherits:  "+inherits)
	}
	if fields := d.Fields(); len(fields) > 0 {
		lines = append(lines, "fields:    "+strings.Join(fields, ", "))
	}
	if functions := d.Functions(); len(functions) > 0 {
		withParens := make([]string, len(functions))
		for i, f := range functions {
			withParens[i] = f + "()"
		}
		lines = append(lines, "functions: "+strings.Join(withParens, ", "))
	}
	if isFunc {
		lines = append(lines, d.signature(rv))
		if elem, ok := yields(rv.Type()); ok {
			lines = append(lines, "yields:    "+elem)
		}
		if doc := d.doc(rv); doc != "" {
			for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
				lines = append(lines, "\t"+line)
			}
		}
	} else if t, ok := d.value.(reflect.Type); ok && t.Name() != "" && !strings.Contains(machine, t.Name()) {
		lines = append(lines, "name:      "+t.Name())
	}
	if len(lines) == 0 {
		lines = append(lines, d.typeName()+"()")
	}
	return lines
}

// inherits renders the embedded types the value's type is composed of:
// direct embeds first, then transitive ones in parentheses.
func (d *Description) inherits() string {
	st := d.structType()
	if st == nil {
		return ""
	}
	var direct, deeper []string
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.Anonymous {
			continue
		}
		direct = append(direct, f.Type.String())
		deeper = append(deeper, embeddedNames(f.Type)...)
	}
	s := strings.Join(direct, ", ")
	if len(deeper) > 0 {
		s += " (and " + strings.Join(deeper, ", ") + ")"
	}
	return s
}

func embeddedNames(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		names = append(names, f.Type.String())
		names = append(names, embeddedNames(f.Type)...)
	}
	return names
}

// structType returns the value's struct type, following one pointer, or nil.
func (d *Description) structType() reflect.Type {
	t := d.typ
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

// Fields lists the value's locally interesting data attributes: exported,
// not boring, and not callable.
func (d *Description) Fields() []string { return d.attributes(false) }

// Functions lists the value's callable attributes: exported methods and
// func-typed fields, minus the boring ones.
func (d *Description) Functions() []string { return d.attributes(true) }

func (d *Description) attributes(callable bool) []string {
	seen := map[string]bool{}
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if st := d.structType(); st != nil {
		for _, f := range reflect.VisibleFields(st) {
			if f.Anonymous || !f.IsExported() || Boring(f.Name) {
				continue
			}
			if (f.Type.Kind() == reflect.Func) == callable {
				add(f.Name)
			}
		}
	}
	if callable && d.typ != nil {
		mt := d.typ
		if mt.Kind() != reflect.Ptr && mt.Name() != "" {
			mt = reflect.PointerTo(mt)
		}
		for i := 0; i < mt.NumMethod(); i++ {
			if m := mt.Method(i); !Boring(m.Name) {
				add(m.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// field returns the named exported field of the (possibly pointed-to)
// struct value, best-effort.
func (d *Description) field(name string) (any, bool) {
	rv := reflect.ValueOf(d.value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	f := rv.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	return f.Interface(), true
}

func isError(x any) bool {
	_, ok := x.(error)
	return ok
}

// valueOf unwraps a reflect.Value into its interface form, tolerating
// values that cannot be interfaced.
func valueOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

// sortedKeys returns map keys ordered by their printed form, for
// deterministic output.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(valueOf(keys[i])) < fmt.Sprint(valueOf(keys[j]))
	})
	return keys
}
