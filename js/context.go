package js

// Context is the lexical and grammatical mode threaded through every scan and parse call. It is never stored
// on the parser state: each call site derives a new value and passes it down.
type Context uint32

// Context values.
const (
	ContextNone Context = 0

	OptionsNext      Context = 1 << 0 // proposed syntax
	OptionsRanges    Context = 1 << 1
	OptionsJSX       Context = 1 << 2
	OptionsRaw       Context = 1 << 3
	OptionsRecovery  Context = 1 << 4
	OptionsWebCompat Context = 1 << 5 // Annex B

	Strict         Context = 1 << 8
	Module         Context = 1 << 9
	AllowRegExp    Context = 1 << 12 // a / starts a regular expression instead of a division
	DisallowIn     Context = 1 << 13 // for-head initializer
	TaggedTemplate Context = 1 << 14 // lenient escapes in templates
	InFunction     Context = 1 << 15
	InGenerator    Context = 1 << 16
	InAsync        Context = 1 << 17
	InIteration    Context = 1 << 18
	InSwitch       Context = 1 << 19
)

// Flags is per-parse state that is not a grammatical mode.
type Flags uint8

// Flags values.
const (
	FlagsNone   Flags = 0
	FlagOctal   Flags = 1 << 0 // the current string token contained a legacy octal escape
	FlagEscaped Flags = 1 << 1 // the current identifier token contained an escape
)

// CommentKind is the kind of comment passed to the comment callback.
type CommentKind uint8

// CommentKind values.
const (
	SingleLineComment CommentKind = iota
	MultiLineComment
	HTMLOpenComment
	HTMLCloseComment
	HashbangComment
)

func (k CommentKind) String() string {
	switch k {
	case SingleLineComment:
		return "SingleLine"
	case MultiLineComment:
		return "MultiLine"
	case HTMLOpenComment:
		return "HTMLOpen"
	case HTMLCloseComment:
		return "HTMLClose"
	case HashbangComment:
		return "Hashbang"
	}
	return "Invalid"
}

// Comment is a skipped comment.
type Comment struct {
	Kind       CommentKind
	Value      string
	Start, End int
}

// DefaultMaxDepth is the nesting depth of statements and expressions at which parsing gives up.
const DefaultMaxDepth = 4096

// Options are the parser options.
type Options struct {
	Module    bool // parse as module goal, implies strict mode
	Next      bool // enable proposed syntax
	Ranges    bool // fill in node ranges
	JSX       bool
	Raw       bool // keep the raw spelling of literals
	WebCompat bool // Annex B web compatibility: HTML comments and function declarations in if statements

	// OnError enables recovery mode. It receives every diagnostic and parsing continues.
	OnError func(msg string)
	// OnComment receives every skipped comment, in source order.
	OnComment func(kind CommentKind, value string, start, end int)
	// Comments is appended with every skipped comment.
	Comments *[]Comment
	// OnToken receives every token the parser consumes.
	OnToken func(tok Token, start, end int)

	MaxDepth int // DefaultMaxDepth when zero
}

func (o Options) context() Context {
	ctx := ContextNone
	if o.Next {
		ctx |= OptionsNext
	}
	if o.Ranges {
		ctx |= OptionsRanges
	}
	if o.JSX {
		ctx |= OptionsJSX
	}
	if o.Raw {
		ctx |= OptionsRaw
	}
	if o.OnError != nil {
		ctx |= OptionsRecovery
	}
	if o.WebCompat {
		ctx |= OptionsWebCompat
	}
	if o.Module {
		ctx |= Module | Strict
	}
	return ctx
}
