// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import "go/token"

// plumbingNames are method names that nearly every printable or
// serializable type carries. Listing them next to a value's own attributes
// is noise, so they are suppressed everywhere.
var plumbingNames = map[string]bool{
	"Error":           true,
	"String":          true,
	"GoString":        true,
	"Format":          true,
	"MarshalJSON":     true,
	"UnmarshalJSON":   true,
	"MarshalText":     true,
	"UnmarshalText":   true,
	"MarshalBinary":   true,
	"UnmarshalBinary": true,
	"MarshalYAML":     true,
	"UnmarshalYAML":   true,
}

// Boring reports whether an attribute name should be suppressed from
// display: unexported names, and names that shadow the marshalling and
// printing plumbing shared by most types.
func Boring(name string) bool {
	if name == "" || !token.IsExported(name) {
		return true
	}
	return plumbingNames[name]
}
