package lang

import (
	"reflect"
	"strconv"
)

// typeName returns a human readable name of a value's dynamic type.
func typeName(value any) string {
	if value == nil {
		return "null"
	}

	return reflect.TypeOf(value).String()
}

// joinPath appends key to a dotted key path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

// indexPath appends a list index to a key path.
func indexPath(path string, index int) string {
	return path + "[" + strconv.Itoa(index) + "]"
}
