// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package match describes where inside a nested structure a named child was
// found. A chain of nodes records one step each (attribute access, map
// lookup, list iteration) on the route from a root value to the child, and
// can reconstruct the chain as example code.
package match

import (
	"fmt"
	"strings"
)

// Node is one step on the path from a root value to a found child. Chains
// are acyclic and finite; the child link is exclusive and terminates at a
// leaf.
type Node interface {
	// Code reconstructs the whole chain as an access expression, split into
	// an assignment and a loop when the chain iterates over a sequence.
	Code() string
	// Value returns the value found at this step.
	Value() any

	oneliner(useParentName bool) (string, *ListItem)
	setName(name string)
}

type base struct {
	name  string
	child Node
	value any
}

func (b *base) Value() any       { return b.value }
func (b *base) setName(s string) { b.name = s }

// Field records an attribute access step.
type Field struct {
	base
	childName string
}

func NewField(name, childName string, child Node, value any) *Field {
	return &Field{base{name, child, value}, childName}
}

func (f *Field) oneliner(useParentName bool) (string, *ListItem) {
	s := "." + f.childName
	if useParentName {
		s = f.name + s
	}
	if f.child == nil {
		return s, nil
	}
	expr, remaining := f.child.oneliner(false)
	return s + expr, remaining
}

func (f *Field) Code() string { return code(f) }

// Key records a map lookup step.
type Key struct {
	base
	childName string
}

func NewKey(name, childName string, child Node, value any) *Key {
	return &Key{base{name, child, value}, childName}
}

func (k *Key) oneliner(useParentName bool) (string, *ListItem) {
	s := fmt.Sprintf("[%q]", k.childName)
	if useParentName {
		s = k.name + s
	}
	if k.child == nil {
		return s, nil
	}
	expr, remaining := k.child.oneliner(false)
	return s + expr, remaining
}

func (k *Key) Code() string { return code(k) }

// ListItem records a sequence iteration step. It always breaks an access
// chain: the steps after it apply to each element in turn.
type ListItem struct {
	base
}

func NewListItem(name string, child Node, value any) *ListItem {
	return &ListItem{base{name, child, value}}
}

func (l *ListItem) oneliner(bool) (string, *ListItem) { return "", l }

func (l *ListItem) Code() string { return code(l) }

func (l *ListItem) loop() string {
	if l.child == nil {
		return fmt.Sprintf("for _, item := range %s {\n\twtf.Inspect(item)\n}", l.name)
	}
	l.child.setName("item")
	body := indent(code(l.child), "\t")
	return fmt.Sprintf("for _, item := range %s {\n%s\n}", l.name, body)
}

// code assembles the access chain starting at n. Field and Key steps compose
// into a single expression; the first ListItem takes the expression so far
// as its source and emits a loop over it.
func code(n Node) string {
	expr, remaining := n.oneliner(true)
	if remaining == nil {
		return expr
	}
	if expr == "" {
		return remaining.loop()
	}
	v := VarName(expr)
	remaining.setName(v)
	return v + " := " + expr + "\n" + remaining.loop()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
