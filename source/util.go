package source

import "reflect"

// typeName returns the name of a decoded value's dynamic type.
func typeName(value any) string {
	if value == nil {
		return "null"
	}

	return reflect.TypeOf(value).String()
}
