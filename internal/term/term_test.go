// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressReturnsRunError(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")
	assert.Equal(t, boom, Progress(&out, "sampling rows", func() error { return boom }))
	assert.NoError(t, Progress(&out, "sampling rows", func() error { return nil }))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminalWriter(&bytes.Buffer{}))
	assert.False(t, IsTerminalReader(strings.NewReader("")))
}

func TestWidthFallback(t *testing.T) {
	assert.Equal(t, 100, Width(&bytes.Buffer{}, 100))
}
