// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package match

import (
	"regexp"
	"strings"
	"unicode"
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// VarName turns an arbitrary string (a map key, an access expression) into a
// plausible Go variable name: "user-id" becomes "userId", and
// `conf.Items["x"]` becomes "confItemsX".
func VarName(s string) string {
	words := wordPattern.FindAllString(s, -1)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w[:1]) + w[1:])
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	name := b.String()
	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}

var pluralPattern = regexp.MustCompile(`^(?:get|list|Get|List)?_*([A-Za-z]\w*?)s$`)

// Singular derives an element variable name from the name of a sequence:
// "items" gives "item", "getUsers" gives "user". Names that do not look
// plural give "item".
func Singular(name string) string {
	m := pluralPattern.FindStringSubmatch(name)
	if m == nil {
		return "item"
	}
	s := m[1]
	return strings.ToLower(s[:1]) + s[1:]
}
