package source

import "github.com/ardnew/blockconf/lang"

// Predefined errors (sentinel values).
var (
	ErrDecode        = lang.NewError("decode input")
	ErrNotTable      = lang.NewError("top-level value is not a table")
	ErrUnknownFormat = lang.NewError("unknown input format")
)
