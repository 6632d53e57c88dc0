package lang

import "github.com/ardnew/blockconf/log"

// DefaultMaxDepth is the default maximum nesting depth of tables and lists.
const DefaultMaxDepth = 100

// DefaultIndent is the default number of spaces per nesting level.
const DefaultIndent = 2

// options holds conversion settings.
type options struct {
	logger      log.Logger
	reservedKey string
	maxDepth    int
	indent      int
}

// Option configures extraction and rendering behavior.
type Option func(*options)

func makeOptions(opts ...Option) options {
	o := options{
		reservedKey: DefaultReservedKey,
		maxDepth:    DefaultMaxDepth,
		indent:      DefaultIndent,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxDepth sets the maximum nesting depth of tables and lists. Deeper
// input fails with [ErrNestingTooDeep]. Values below 1 select
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		o.maxDepth = depth
	}
}

// WithIndent sets the number of spaces per nesting level. Negative values
// select [DefaultIndent].
func WithIndent(width int) Option {
	return func(o *options) {
		if width < 0 {
			width = DefaultIndent
		}

		o.indent = width
	}
}

// WithReservedKey sets the top-level key holding constant declarations.
// An empty key selects [DefaultReservedKey].
func WithReservedKey(key string) Option {
	return func(o *options) {
		if key == "" {
			key = DefaultReservedKey
		}

		o.reservedKey = key
	}
}

// WithLogger sets the logger used to trace conversion.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
