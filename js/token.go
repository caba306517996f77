package js

import (
	"strconv"
)

// Token is a packed token tag. The low byte is the token ordinal, the next four bits hold the binary operator
// precedence and the remaining bits are attributes, so that the parser can dispatch on bitmask tests.
type Token uint32

// Token layout.
const (
	TypeMask        Token = 0xff
	PrecedenceShift       = 8
	PrecedenceMask  Token = 15 << PrecedenceShift

	IsContextual     Token = 1 << 12 // keyword that is a valid identifier
	IsReserved       Token = 1 << 13 // keyword that is never a valid identifier
	IsFutureReserved Token = 1 << 14 // keyword that is reserved in strict mode
	BadTemplate      Token = 1 << 15 // template fragment with an invalid escape, set on the scanned token
	IsIdentifier     Token = 1 << 16 // identifier or any keyword, ie. a valid IdentifierName
	IsStringOrNumber Token = 1 << 17
	IsAssignOp       Token = 1 << 18
	IsBinaryOp       Token = 1 << 19
	IsUnaryOp        Token = 1 << 20
	IsUpdateOp       Token = 1 << 21
	IsMemberOrCall   Token = 1 << 22
	IsLogical        Token = 1 << 23
	IsCoalesce       Token = 1 << 24
	IsAutoSemicolon  Token = 1 << 25 // token before which a semicolon may be omitted
	IsTemplate       Token = 1 << 26
)

const keyword = IsIdentifier | IsReserved

// Token values.
const (
	EndOfSource            Token = iota | IsAutoSemicolon
	Error                  Token = iota // extra token when errors occur
	Identifier             Token = iota | IsIdentifier
	PrivateName            Token = iota // #name
	NumericLiteral         Token = iota | IsStringOrNumber
	BigIntLiteral          Token = iota | IsStringOrNumber
	StringLiteral          Token = iota | IsStringOrNumber
	RegularExpression      Token = iota
	NoSubstitutionTemplate Token = iota | IsTemplate | IsMemberOrCall // `...`
	TemplateHead           Token = iota | IsTemplate | IsMemberOrCall // `...${
	TemplateMiddle         Token = iota | IsTemplate                  // }...${
	TemplateTail           Token = iota | IsTemplate                  // }...`

	// punctuators
	Arrow              Token = iota                  // =>
	LeftParen          Token = iota | IsMemberOrCall // (
	LeftBrace          Token = iota                  // {
	Period             Token = iota | IsMemberOrCall // .
	Ellipsis           Token = iota                  // ...
	RightBrace         Token = iota | IsAutoSemicolon
	RightParen         Token = iota                  // )
	Semicolon          Token = iota                  // ;
	Comma              Token = iota                  // ,
	LeftBracket        Token = iota | IsMemberOrCall // [
	RightBracket       Token = iota                  // ]
	Colon              Token = iota                  // :
	QuestionMark       Token = iota                  // ?
	QuestionMarkPeriod Token = iota | IsMemberOrCall // ?.
	Increment          Token = iota | IsUpdateOp     // ++
	Decrement          Token = iota | IsUpdateOp     // --

	// assignment operators
	Assign                  Token = iota | IsAssignOp // =
	ShiftLeftAssign         Token = iota | IsAssignOp // <<=
	ShiftRightAssign        Token = iota | IsAssignOp // >>=
	LogicalShiftRightAssign Token = iota | IsAssignOp // >>>=
	ExponentiateAssign      Token = iota | IsAssignOp // **=
	AddAssign               Token = iota | IsAssignOp // +=
	SubtractAssign          Token = iota | IsAssignOp // -=
	MultiplyAssign          Token = iota | IsAssignOp // *=
	DivideAssign            Token = iota | IsAssignOp // /=
	ModuloAssign            Token = iota | IsAssignOp // %=
	BitwiseXorAssign        Token = iota | IsAssignOp // ^=
	BitwiseOrAssign         Token = iota | IsAssignOp // |=
	BitwiseAndAssign        Token = iota | IsAssignOp // &=
	LogicalOrAssign         Token = iota | IsAssignOp // ||=
	LogicalAndAssign        Token = iota | IsAssignOp // &&=
	CoalesceAssign          Token = iota | IsAssignOp // ??=

	// unary and binary operators
	TypeofKeyword      Token = iota | IsUnaryOp | keyword
	DeleteKeyword      Token = iota | IsUnaryOp | keyword
	VoidKeyword        Token = iota | IsUnaryOp | keyword
	Negate             Token = iota | IsUnaryOp                                    // !
	Complement         Token = iota | IsUnaryOp                                    // ~
	Add                Token = iota | IsUnaryOp | IsBinaryOp | 10<<PrecedenceShift // +
	Subtract           Token = iota | IsUnaryOp | IsBinaryOp | 10<<PrecedenceShift // -
	InKeyword          Token = iota | IsBinaryOp | 8<<PrecedenceShift | keyword
	InstanceofKeyword  Token = iota | IsBinaryOp | 8<<PrecedenceShift | keyword
	Multiply           Token = iota | IsBinaryOp | 11<<PrecedenceShift             // *
	Modulo             Token = iota | IsBinaryOp | 11<<PrecedenceShift             // %
	Divide             Token = iota | IsBinaryOp | 11<<PrecedenceShift             // /
	Exponentiate       Token = iota | IsBinaryOp | 12<<PrecedenceShift             // **
	LogicalOr          Token = iota | IsBinaryOp | IsLogical | 2<<PrecedenceShift  // ||
	LogicalAnd         Token = iota | IsBinaryOp | IsLogical | 3<<PrecedenceShift  // &&
	BitwiseOr          Token = iota | IsBinaryOp | 4<<PrecedenceShift              // |
	BitwiseXor         Token = iota | IsBinaryOp | 5<<PrecedenceShift              // ^
	BitwiseAnd         Token = iota | IsBinaryOp | 6<<PrecedenceShift              // &
	LooseEqual         Token = iota | IsBinaryOp | 7<<PrecedenceShift              // ==
	LooseNotEqual      Token = iota | IsBinaryOp | 7<<PrecedenceShift              // !=
	StrictEqual        Token = iota | IsBinaryOp | 7<<PrecedenceShift              // ===
	StrictNotEqual     Token = iota | IsBinaryOp | 7<<PrecedenceShift              // !==
	LessThan           Token = iota | IsBinaryOp | 8<<PrecedenceShift              // <
	GreaterThan        Token = iota | IsBinaryOp | 8<<PrecedenceShift              // >
	LessThanOrEqual    Token = iota | IsBinaryOp | 8<<PrecedenceShift              // <=
	GreaterThanOrEqual Token = iota | IsBinaryOp | 8<<PrecedenceShift              // >=
	ShiftLeft          Token = iota | IsBinaryOp | 9<<PrecedenceShift              // <<
	ShiftRight         Token = iota | IsBinaryOp | 9<<PrecedenceShift              // >>
	LogicalShiftRight  Token = iota | IsBinaryOp | 9<<PrecedenceShift              // >>>
	Coalesce           Token = iota | IsBinaryOp | IsCoalesce | 1<<PrecedenceShift // ??

	// reserved words
	BreakKeyword    Token = iota | keyword
	CaseKeyword     Token = iota | keyword
	CatchKeyword    Token = iota | keyword
	ClassKeyword    Token = iota | keyword
	ConstKeyword    Token = iota | keyword
	ContinueKeyword Token = iota | keyword
	DebuggerKeyword Token = iota | keyword
	DefaultKeyword  Token = iota | keyword
	DoKeyword       Token = iota | keyword
	ElseKeyword     Token = iota | keyword
	EnumKeyword     Token = iota | keyword
	ExportKeyword   Token = iota | keyword
	ExtendsKeyword  Token = iota | keyword
	FalseKeyword    Token = iota | keyword
	FinallyKeyword  Token = iota | keyword
	ForKeyword      Token = iota | keyword
	FunctionKeyword Token = iota | keyword
	IfKeyword       Token = iota | keyword
	ImportKeyword   Token = iota | keyword
	NewKeyword      Token = iota | keyword
	NullKeyword     Token = iota | keyword
	ReturnKeyword   Token = iota | keyword
	SuperKeyword    Token = iota | keyword
	SwitchKeyword   Token = iota | keyword
	ThisKeyword     Token = iota | keyword
	ThrowKeyword    Token = iota | keyword
	TrueKeyword     Token = iota | keyword
	TryKeyword      Token = iota | keyword
	VarKeyword      Token = iota | keyword
	WhileKeyword    Token = iota | keyword
	WithKeyword     Token = iota | keyword

	// reserved in strict mode
	ImplementsKeyword Token = iota | IsIdentifier | IsFutureReserved
	InterfaceKeyword  Token = iota | IsIdentifier | IsFutureReserved
	LetKeyword        Token = iota | IsIdentifier | IsFutureReserved
	PackageKeyword    Token = iota | IsIdentifier | IsFutureReserved
	PrivateKeyword    Token = iota | IsIdentifier | IsFutureReserved
	ProtectedKeyword  Token = iota | IsIdentifier | IsFutureReserved
	PublicKeyword     Token = iota | IsIdentifier | IsFutureReserved
	StaticKeyword     Token = iota | IsIdentifier | IsFutureReserved
	YieldKeyword      Token = iota | IsIdentifier | IsFutureReserved

	// contextual keywords
	AsKeyword     Token = iota | IsIdentifier | IsContextual
	AsyncKeyword  Token = iota | IsIdentifier | IsContextual
	AwaitKeyword  Token = iota | IsIdentifier | IsContextual
	FromKeyword   Token = iota | IsIdentifier | IsContextual
	GetKeyword    Token = iota | IsIdentifier | IsContextual
	OfKeyword     Token = iota | IsIdentifier | IsContextual
	SetKeyword    Token = iota | IsIdentifier | IsContextual
	TargetKeyword Token = iota | IsIdentifier | IsContextual
)

var tokenNames = map[Token]string{
	EndOfSource:            "end of source",
	Error:                  "error",
	Identifier:             "identifier",
	PrivateName:            "private name",
	NumericLiteral:         "number",
	BigIntLiteral:          "BigInt",
	StringLiteral:          "string",
	RegularExpression:      "regular expression",
	NoSubstitutionTemplate: "template",
	TemplateHead:           "template head",
	TemplateMiddle:         "template middle",
	TemplateTail:           "template tail",

	Arrow:              "=>",
	LeftParen:          "(",
	LeftBrace:          "{",
	Period:             ".",
	Ellipsis:           "...",
	RightBrace:         "}",
	RightParen:         ")",
	Semicolon:          ";",
	Comma:              ",",
	LeftBracket:        "[",
	RightBracket:       "]",
	Colon:              ":",
	QuestionMark:       "?",
	QuestionMarkPeriod: "?.",
	Increment:          "++",
	Decrement:          "--",

	Assign:                  "=",
	ShiftLeftAssign:         "<<=",
	ShiftRightAssign:        ">>=",
	LogicalShiftRightAssign: ">>>=",
	ExponentiateAssign:      "**=",
	AddAssign:               "+=",
	SubtractAssign:          "-=",
	MultiplyAssign:          "*=",
	DivideAssign:            "/=",
	ModuloAssign:            "%=",
	BitwiseXorAssign:        "^=",
	BitwiseOrAssign:         "|=",
	BitwiseAndAssign:        "&=",
	LogicalOrAssign:         "||=",
	LogicalAndAssign:        "&&=",
	CoalesceAssign:          "??=",

	TypeofKeyword:      "typeof",
	DeleteKeyword:      "delete",
	VoidKeyword:        "void",
	Negate:             "!",
	Complement:         "~",
	Add:                "+",
	Subtract:           "-",
	InKeyword:          "in",
	InstanceofKeyword:  "instanceof",
	Multiply:           "*",
	Modulo:             "%",
	Divide:             "/",
	Exponentiate:       "**",
	LogicalOr:          "||",
	LogicalAnd:         "&&",
	BitwiseOr:          "|",
	BitwiseXor:         "^",
	BitwiseAnd:         "&",
	LooseEqual:         "==",
	LooseNotEqual:      "!=",
	StrictEqual:        "===",
	StrictNotEqual:     "!==",
	LessThan:           "<",
	GreaterThan:        ">",
	LessThanOrEqual:    "<=",
	GreaterThanOrEqual: ">=",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	LogicalShiftRight:  ">>>",
	Coalesce:           "??",

	BreakKeyword:    "break",
	CaseKeyword:     "case",
	CatchKeyword:    "catch",
	ClassKeyword:    "class",
	ConstKeyword:    "const",
	ContinueKeyword: "continue",
	DebuggerKeyword: "debugger",
	DefaultKeyword:  "default",
	DoKeyword:       "do",
	ElseKeyword:     "else",
	EnumKeyword:     "enum",
	ExportKeyword:   "export",
	ExtendsKeyword:  "extends",
	FalseKeyword:    "false",
	FinallyKeyword:  "finally",
	ForKeyword:      "for",
	FunctionKeyword: "function",
	IfKeyword:       "if",
	ImportKeyword:   "import",
	NewKeyword:      "new",
	NullKeyword:     "null",
	ReturnKeyword:   "return",
	SuperKeyword:    "super",
	SwitchKeyword:   "switch",
	ThisKeyword:     "this",
	ThrowKeyword:    "throw",
	TrueKeyword:     "true",
	TryKeyword:      "try",
	VarKeyword:      "var",
	WhileKeyword:    "while",
	WithKeyword:     "with",

	ImplementsKeyword: "implements",
	InterfaceKeyword:  "interface",
	LetKeyword:        "let",
	PackageKeyword:    "package",
	PrivateKeyword:    "private",
	ProtectedKeyword:  "protected",
	PublicKeyword:     "public",
	StaticKeyword:     "static",
	YieldKeyword:      "yield",

	AsKeyword:     "as",
	AsyncKeyword:  "async",
	AwaitKeyword:  "await",
	FromKeyword:   "from",
	GetKeyword:    "get",
	OfKeyword:     "of",
	SetKeyword:    "set",
	TargetKeyword: "target",
}

var tokenNamesByOrdinal [256]string

func init() {
	for t, name := range tokenNames {
		tokenNamesByOrdinal[t&TypeMask] = name
	}
}

// String returns the display name of a token, as used in diagnostics.
func (t Token) String() string {
	if name := tokenNamesByOrdinal[t&TypeMask]; name != "" {
		return name
	}
	return "Invalid(" + strconv.Itoa(int(t&TypeMask)) + ")"
}

// Type returns the token with its attributes stripped, ie. the token ordinal.
func (t Token) Type() int {
	return int(t & TypeMask)
}

// Precedence returns the binary operator precedence, from 1 for ?? up to 12 for **, or 0 for non-binary tokens.
func (t Token) Precedence() int {
	return int(t&PrecedenceMask) >> PrecedenceShift
}

func (t Token) IsBinaryOp() bool     { return t&IsBinaryOp != 0 }
func (t Token) IsAssignOp() bool     { return t&IsAssignOp != 0 }
func (t Token) IsUnaryOp() bool      { return t&IsUnaryOp != 0 }
func (t Token) IsUpdateOp() bool     { return t&IsUpdateOp != 0 }
func (t Token) IsMemberOrCall() bool { return t&IsMemberOrCall != 0 }
func (t Token) IsIdentifierName() bool {
	return t&IsIdentifier != 0
}

// IsKeyword returns true for every reserved, strict-mode reserved and contextual keyword.
func (t Token) IsKeyword() bool {
	return t&(IsReserved|IsFutureReserved|IsContextual) != 0
}

// IsBadTemplate returns true for a template fragment that was scanned with an invalid escape sequence.
func (t Token) IsBadTemplate() bool {
	return t&BadTemplate != 0
}
