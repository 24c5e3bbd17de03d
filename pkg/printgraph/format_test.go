package printgraph

import (
	"fmt"
	"strings"
	"testing"
)

type labelKey struct{ ns, local string }

func (k labelKey) String() string { return k.ns + ":" + k.local }

type slot string

func TestFormatKey(t *testing.T) {
	tests := []struct {
		name string
		key  any
		want string
	}{
		{"int", 1, "0x1"},
		{"int zero", 0, "0x0"},
		{"int large", 255, "0xff"},
		{"int negative", -31, "-0x1f"},
		{"int64", int64(4096), "0x1000"},
		{"uint8", uint8(10), "0xa"},
		{"uintptr", uintptr(0xc000010018), "0xc000010018"},
		{"string", "pkg/a", "pkg/a"},
		{"named string", slot("s1"), "s1"},
		{"stringer", labelKey{"ns", "x"}, "ns:x"},
		{"struct", struct{ A, B int }{1, 2}, "{1 2}"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatKey(tt.key); got != tt.want {
				t.Errorf("FormatKey(%v) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFormatKeyPointer(t *testing.T) {
	n := &testNode{name: "n"}
	got := FormatKey(n)
	if got != fmt.Sprintf("%p", n) {
		t.Errorf("FormatKey(ptr) = %q, want %p", got, n)
	}
	if !strings.HasPrefix(got, "0x") {
		t.Errorf("FormatKey(ptr) = %q, want hex address", got)
	}
}

func TestIsNil(t *testing.T) {
	var nilPtr *testNode
	var nilMap map[string]int
	var nilSlice []int

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"pointer", &testNode{}, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"struct", testNode{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
