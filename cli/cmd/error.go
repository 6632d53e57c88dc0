package cmd

import "github.com/ardnew/blockconf/lang"

// Predefined errors (sentinel values). Each labels one class of failure and
// wraps the underlying cause.
var (
	ErrParseInput  = lang.NewError("parse input")
	ErrConvert     = lang.NewError("convert")
	ErrWriteOutput = lang.NewError("write output")
	ErrDefine      = lang.NewError("define constant")
	ErrEvaluate    = lang.NewError("evaluate")
)
