// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoring(t *testing.T) {
	boring := []string{"Error", "String", "GoString", "Format", "MarshalJSON", "UnmarshalYAML", "unexported"}
	for _, name := range boring {
		assert.True(t, Boring(name), name)
	}
	interesting := []string{"Feed", "Close", "Host", "ID"}
	for _, name := range interesting {
		assert.False(t, Boring(name), name)
	}
}
