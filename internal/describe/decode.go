// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-json-experiment/json/jsontext"
)

// cborDecMode decodes maps with string keys for JSON compatibility.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic("failed to initialize CBOR decoder mode: " + err.Error())
	}
}

// DecodeError binds a decode failure to the document it happened in, so the
// failure offset can be shown in context. Go decode errors carry an offset
// but not the document; NewDecodeError reunites them.
type DecodeError struct {
	Doc    []byte
	Offset int64 // byte index of the offending input, -1 when unknown
	Err    error
}

// NewDecodeError wraps err, extracting the failure offset from the error
// types of encoding/json and jsontext, or from an "offset N" / "char N"
// substring of the message as a last resort.
func NewDecodeError(doc []byte, err error) *DecodeError {
	e := &DecodeError{Doc: doc, Offset: -1, Err: err}
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		e.Offset = max(syntax.Offset-1, 0) // Offset counts bytes read, the bad byte is just before
		return e
	}
	var unmarshal *json.UnmarshalTypeError
	if errors.As(err, &unmarshal) {
		e.Offset = max(unmarshal.Offset-1, 0)
		return e
	}
	var syntactic *jsontext.SyntacticError
	if errors.As(err, &syntactic) {
		e.Offset = syntactic.ByteOffset
		return e
	}
	if m := offsetPattern.FindStringSubmatch(err.Error()); m != nil {
		if n, convErr := strconv.ParseInt(m[1], 10, 64); convErr == nil {
			e.Offset = n
		}
	}
	return e
}

var offsetPattern = regexp.MustCompile(`(?:offset|char(?:acter)?) (\d+)`)

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "decode error"
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

const snippetWidth = 80

// decodeErrorDescription renders the error followed by a context window
// around the failure offset, bad byte highlighted. A control character at
// the offset earns a hint about lenient decoding.
func (d *Description) decodeErrorDescription(e *DecodeError) string {
	lines := []string{StripAddresses(e.Error())}
	if e.Offset >= 0 && len(e.Doc) > 0 {
		off := int(e.Offset)
		if off >= len(e.Doc) {
			off = len(e.Doc) - 1
		}
		bad := e.Doc[off]
		// One byte unless the offset starts a multi-byte rune; a raw byte
		// must stay a raw byte, not get re-encoded as its Latin-1 rune.
		size := 1
		if utf8.RuneStart(bad) {
			_, size = utf8.DecodeRune(e.Doc[off:])
		}
		half := snippetWidth/2 - 2
		lo := max(off-half, 0)
		hi := min(max(off+half, off+size), len(e.Doc))
		// Widen to rune boundaries so the window never shows a torn rune.
		for lo > 0 && !utf8.RuneStart(e.Doc[lo]) {
			lo--
		}
		for hi < len(e.Doc) && !utf8.RuneStart(e.Doc[hi]) {
			hi++
		}
		lines = append(lines, string(e.Doc[lo:off])+color.RedString("%s", e.Doc[off:off+size])+string(e.Doc[off+size:hi]))
		if bad <= 0x1f {
			lines = append(lines, "hint: jsontext.AllowInvalidUTF8(true)")
		}
	}
	return strings.Join(lines, "\n")
}

const dumpLimit = 1000

// bytesDescription decodes a byte slice for display: indented JSON if the
// bytes are JSON, decoded CBOR if they are CBOR, a quoted string if small,
// a bare length otherwise.
func (d *Description) bytesDescription(data []byte) string {
	if len(data) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "    "); err == nil && buf.Len() < dumpLimit {
			return buf.String()
		}
		if s, err := cborToJSON(data); err == nil && len(s) < dumpLimit {
			return s
		}
	}
	if q := strconv.Quote(string(data)); len(q) < d.opts.PrettyThreshold {
		return q
	}
	return fmt.Sprintf("%s byte []byte", humanize.Comma(int64(len(data))))
}

func cborToJSON(data []byte) (string, error) {
	var v any
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
