// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import "regexp"

// addressPattern matches a runtime memory address as it appears embedded in
// printed values: optionally parenthesized, optionally preceded by "at ".
// Four hex digits minimum keeps small literal constants alone.
var addressPattern = regexp.MustCompile(`(?:\s+at\s+)?\(?0x[0-9a-fA-F]{4,}\)?`)

// StripAddresses removes embedded memory addresses so that two renderings
// differing only by ephemeral address compare equal. Idempotent.
func StripAddresses(s string) string {
	return addressPattern.ReplaceAllString(s, "")
}
