// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package wtf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatchPanicsReportsAndRepanics(t *testing.T) {
	c, out := testInspector()
	var errOut bytes.Buffer
	c.Stderr = &errOut

	assert.PanicsWithValue(t, "boom", func() {
		defer c.CatchPanics()
		panic("boom")
	})

	assert.Contains(t, errOut.String(), "panic: boom")
	assert.Contains(t, errOut.String(), "goroutine")
	assert.Contains(t, out.String(), `"boom"`)
}

func TestCatchPanicsQuietWhenNothingPanics(t *testing.T) {
	c, out := testInspector()
	var errOut bytes.Buffer
	c.Stderr = &errOut

	func() {
		defer c.CatchPanics()
	}()

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
