package printgraph

import (
	"fmt"
	"reflect"
	"strconv"
)

// FormatKey returns the address representation of an identity key. The same
// form is used for headers and back-reference markers:
//
//   - integers and uintptr: hexadecimal with a 0x prefix (-0x prefix when negative)
//   - pointers: the address as printed by %p
//   - fmt.Stringer: the result of String
//   - strings: the string itself
//   - anything else: %v
func FormatKey(k any) string {
	if k == nil {
		return "<nil>"
	}
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return fmt.Sprintf("%p", k)
	}
	if s, ok := k.(fmt.Stringer); ok {
		return s.String()
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return "-0x" + strconv.FormatUint(uint64(-n), 16)
		}
		return "0x" + strconv.FormatUint(uint64(n), 16)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "0x" + strconv.FormatUint(rv.Uint(), 16)
	}
	return fmt.Sprint(k)
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
