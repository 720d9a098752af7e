// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package describe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAddresses(t *testing.T) {
	assert.Equal(t, "&{}", StripAddresses("&{} at 0xdeadbeef"))
	assert.Equal(t, "(func())", StripAddresses("(func())(0x4f3a20)"))
	assert.Equal(t, "", StripAddresses("0xc000012345"))
	assert.Equal(t, "value 0x12", StripAddresses("value 0x12"), "short hex literals survive")
}

func TestStripAddressesIdempotent(t *testing.T) {
	s := "map[a:0xc000102030] at 0xc000405060"
	once := StripAddresses(s)
	assert.Equal(t, once, StripAddresses(once))
}

func TestStrippedChannelReprsCompareEqual(t *testing.T) {
	a := StripAddresses(fmt.Sprintf("%v", make(chan int)))
	b := StripAddresses(fmt.Sprintf("%v", make(chan int)))
	assert.Equal(t, a, b)
}
