// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestNewDecodeErrorExtractsSyntaxOffset(t *testing.T) {
	doc := []byte(`[1, 2, x]`)
	var v any
	err := json.Unmarshal(doc, &v)
	require.Error(t, err)
	e := NewDecodeError(doc, err)
	require.GreaterOrEqual(t, e.Offset, int64(0))
	assert.Equal(t, byte('x'), doc[e.Offset])
}

func TestNewDecodeErrorJSONTextOffset(t *testing.T) {
	e := NewDecodeError([]byte("abcdef"), &jsontext.SyntacticError{ByteOffset: 3})
	assert.Equal(t, int64(3), e.Offset)
}

func TestNewDecodeErrorMessageOffsets(t *testing.T) {
	e := NewDecodeError(nil, errors.New("unexpected byte at offset 12"))
	assert.Equal(t, int64(12), e.Offset)

	e = NewDecodeError(nil, errors.New("bad character 5 in document"))
	assert.Equal(t, int64(5), e.Offset)

	e = NewDecodeError(nil, errors.New("boom"))
	assert.Equal(t, int64(-1), e.Offset)
}

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := NewDecodeError(nil, cause)
	assert.True(t, errors.Is(e, cause))
	assert.Equal(t, "boom", e.Error())
}

func TestDecodeErrorDescriptionShowsContext(t *testing.T) {
	plainColors(t)
	doc := []byte(`[1, 2, x]`)
	e := &DecodeError{Doc: doc, Offset: 7, Err: errors.New("invalid character 'x'")}
	s := New(e, "", testOptions()).String()
	assert.Contains(t, s, "invalid character 'x'")
	assert.Contains(t, s, "[1, 2, x]")
	assert.NotContains(t, s, "hint:")
}

func TestDecodeErrorControlCharacterHint(t *testing.T) {
	plainColors(t)
	doc := []byte("{\"a\": \x01}")
	e := &DecodeError{Doc: doc, Offset: 6, Err: errors.New("invalid character")}
	s := New(e, "", testOptions()).String()
	assert.Contains(t, s, "hint: jsontext.AllowInvalidUTF8(true)")
}

func TestDecodeErrorOffsetPastEnd(t *testing.T) {
	plainColors(t)
	e := &DecodeError{Doc: []byte("abc"), Offset: 99, Err: errors.New("truncated")}
	s := New(e, "", testOptions()).String()
	assert.Contains(t, s, "truncated")
	assert.Contains(t, s, "c")
}

func TestDecodeErrorRawByteKeptVerbatim(t *testing.T) {
	plainColors(t)
	doc := []byte("ab\xffcd")
	e := &DecodeError{Doc: doc, Offset: 2, Err: errors.New("invalid UTF-8")}
	s := New(e, "", testOptions()).String()
	// The bad byte must not be re-encoded as the two-byte rune U+00FF.
	assert.Contains(t, s, "ab\xffcd")
	assert.NotContains(t, s, "abÿcd")
}

func TestDecodeErrorWindowKeepsRunesWhole(t *testing.T) {
	plainColors(t)
	doc := []byte(strings.Repeat("界", 40) + "!" + strings.Repeat("界", 40))
	off := int64(bytes.IndexByte(doc, '!'))
	e := &DecodeError{Doc: doc, Offset: off, Err: errors.New("unexpected '!'")}
	s := New(e, "", testOptions()).String()
	assert.True(t, utf8.ValidString(s))
	assert.Contains(t, s, "界!界")
}

func TestDecodeErrorWithoutOffsetSkipsSnippet(t *testing.T) {
	e := &DecodeError{Doc: []byte("abc"), Offset: -1, Err: errors.New("boom")}
	assert.Equal(t, "boom", New(e, "", testOptions()).String())
}

func TestBytesDescriptionJSON(t *testing.T) {
	s := New([]byte(`{"a":1}`), "", testOptions()).String()
	assert.Equal(t, "{\n    \"a\": 1\n}", s)
}

func TestBytesDescriptionCBOR(t *testing.T) {
	doc, err := cbor.Marshal(map[string]any{"a": 1})
	require.NoError(t, err)
	s := New(doc, "", testOptions()).String()
	assert.Equal(t, "{\n    \"a\": 1\n}", s)
}

func TestBytesDescriptionQuoted(t *testing.T) {
	assert.Equal(t, `"hello"`, New([]byte("hello"), "", testOptions()).String())
	assert.Equal(t, `""`, New([]byte{}, "", testOptions()).String())
}

func TestBytesDescriptionLengthFallback(t *testing.T) {
	data := bytes.Repeat([]byte{0xff}, 5000)
	s := New(data, "", testOptions()).String()
	assert.Equal(t, "5,000 byte []byte", s)
}
