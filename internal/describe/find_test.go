// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func findOptions(out *bytes.Buffer) Options {
	return Options{Out: out}
}

func TestFindNestedMapKey(t *testing.T) {
	conf := map[string]any{
		"database": map[string]any{
			"primary": map[string]any{"host": "db1"},
		},
	}
	var out bytes.Buffer
	New(conf, "conf", findOptions(&out)).Find("host")
	s := out.String()
	assert.Contains(t, s, "Looking in conf")
	assert.Contains(t, s, "Looking in database")
	assert.Contains(t, s, "host is a key!")
	assert.Contains(t, s, `conf["database"]["primary"]["host"]`)
	assert.NotContains(t, s, "not found")
}

func TestFindStructField(t *testing.T) {
	type server struct{ Host string }
	type cfg struct{ Database server }
	var out bytes.Buffer
	New(cfg{Database: server{Host: "db1"}}, "conf", findOptions(&out)).Find("Host")
	s := out.String()
	assert.Contains(t, s, "Recursing into conf.Database")
	assert.Contains(t, s, "Host is a field!")
	assert.Contains(t, s, "conf.Database.Host\n")
}

func TestFindInsideList(t *testing.T) {
	servers := []map[string]any{{"host": "a"}, {"host": "b"}}
	var out bytes.Buffer
	New(servers, "servers", findOptions(&out)).Find("host")
	s := out.String()
	assert.Contains(t, s, "Looping over a 2 item list...")
	loop := "for _, item := range servers {\n\titem[\"host\"]\n}"
	assert.Equal(t, 2, strings.Count(s, loop), "one hit per element:\n%s", s)
}

func TestFindNotFound(t *testing.T) {
	var out bytes.Buffer
	New(42, "x", findOptions(&out)).Find("missing")
	assert.Contains(t, out.String(), "missing not found inside x\n")
}

func TestFindNotFoundFallsBackToTypeName(t *testing.T) {
	var out bytes.Buffer
	New(42, "", findOptions(&out)).Find("missing")
	assert.Contains(t, out.String(), "missing not found inside int\n")
}

func TestFindTerminatesOnCycles(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	var out bytes.Buffer
	New(m, "m", findOptions(&out)).Find("missing")
	assert.Contains(t, out.String(), "missing not found inside m\n")
}

func TestCyclicSliceTerminates(t *testing.T) {
	items := make([]any, 1)
	items[0] = items

	d := New(items, "items", testOptions())
	code := d.Code()
	assert.Contains(t, code, "for _, item := range items {")
	assert.Contains(t, code, "// Would match 1 items.")

	short := d.Short()
	assert.NotContains(t, short, "\n")

	var out bytes.Buffer
	New(items, "items", findOptions(&out)).Find("missing")
	assert.Contains(t, out.String(), "missing not found inside items\n")
}

func TestFindRespectsDepthBound(t *testing.T) {
	conf := map[string]any{"outer": map[string]any{"host": "db1"}}
	var out bytes.Buffer
	opts := findOptions(&out)
	opts.MaxDepth = 1
	New(conf, "conf", opts).Find("host")
	assert.Contains(t, out.String(), "host not found inside conf\n")
}
