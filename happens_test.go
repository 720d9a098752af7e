// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package wtf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNarratesCalls(t *testing.T) {
	c, out := testInspector()
	wrapped, ok := c.wrap(func(n int) int { return n * 2 })
	require.True(t, ok)

	got := wrapped.(func(int) int)(21)
	assert.Equal(t, 42, got)

	s := out.String()
	assert.Contains(t, s, "Press enter to step into")
	assert.Contains(t, s, "arg0 = int(21)")
	assert.Contains(t, s, "Returns: int(42)")
}

func TestWrapVariadic(t *testing.T) {
	c, out := testInspector()
	join := func(sep string, parts ...string) string { return strings.Join(parts, sep) }
	wrapped, ok := c.wrap(join)
	require.True(t, ok)

	got := wrapped.(func(string, ...string) string)("-", "a", "b")
	assert.Equal(t, "a-b", got)
	assert.Contains(t, out.String(), `Returns: "a-b"`)
}

func TestWrapZeroArgumentCall(t *testing.T) {
	c, out := testInspector()
	wrapped, ok := c.wrap(func() {})
	require.True(t, ok)

	wrapped.(func())()
	s := out.String()
	assert.Contains(t, s, "Press enter to step into")
	assert.NotContains(t, s, "with:")
}

func TestWrapRejectsNonFunctions(t *testing.T) {
	c, _ := testInspector()
	_, ok := c.wrap(42)
	assert.False(t, ok)
	var nilFn func()
	_, ok = c.wrap(nilFn)
	assert.False(t, ok)
}

func TestHappensPassesNonFunctionsThrough(t *testing.T) {
	assert.Equal(t, 42, Happens(42))
}

func TestHappensPreservesFunctionType(t *testing.T) {
	var f func(string) string = Happens(strings.ToUpper)
	assert.NotNil(t, f)
}

func TestWrapNamedFunctionParameters(t *testing.T) {
	c, out := testInspector()
	wrapped, ok := c.wrap(repeatWord)
	require.True(t, ok)

	got := wrapped.(func(string, int) string)("ha", 2)
	assert.Equal(t, "haha", got)
	s := out.String()
	assert.Contains(t, s, `word = "ha"`)
	assert.Contains(t, s, "times = int(2)")
}

func repeatWord(word string, times int) string { return strings.Repeat(word, times) }
