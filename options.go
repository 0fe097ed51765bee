package rxlex

import "github.com/dlclark/regexp2"

type options struct {
	remainder bool
	reject    map[string]struct{}
	flags     regexp2.RegexOptions
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// Remainder controls whether the unmatched tail of the source text is
// delivered as a final remainder token (see Token.IsRemainder). When true,
// every sequence ends with exactly one remainder token, even if its value is
// empty. The default is false: the sequence silently ends where no definition
// matches.
//
func Remainder(include bool) Option {
	return func(o *options) {
		o.remainder = include
	}
}

// Reject sets token types that are matched and skipped but never emitted,
// typically white space and comments. Types that no definition uses are
// ignored.
//
func Reject(types ...string) Option {
	return func(o *options) {
		for _, t := range types {
			o.reject[t] = struct{}{}
		}
	}
}

// Flags adds regexp2 options used to compile all patterns. The defaults are
// regexp2.Multiline. regexp2.RightToLeft is not supported and is ignored.
//
func Flags(f regexp2.RegexOptions) Option {
	return func(o *options) {
		o.flags |= f
	}
}
