package js

// Pseudo tokens of the first character dispatch table, never returned by the scanner.
const (
	charIllegal Token = 0xf0 + iota
	charWhiteSpace
	charLineFeed
	charCarriageReturn
	charBackslash
	charHash
)

// firstChar maps an ASCII character to the token it starts, or to the category of the sub-scanner that decides
// the token. Multi-character punctuators map to the token of their first character.
var firstChar [128]Token

func init() {
	for c := range firstChar {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '$', c == '_':
			firstChar[c] = Identifier
		case '0' <= c && c <= '9':
			firstChar[c] = NumericLiteral
		default:
			firstChar[c] = charIllegal
		}
	}
	firstChar['\t'] = charWhiteSpace
	firstChar['\v'] = charWhiteSpace
	firstChar['\f'] = charWhiteSpace
	firstChar[' '] = charWhiteSpace
	firstChar['\n'] = charLineFeed
	firstChar['\r'] = charCarriageReturn
	firstChar['\\'] = charBackslash
	firstChar['#'] = charHash
	firstChar['"'] = StringLiteral
	firstChar['\''] = StringLiteral
	firstChar['`'] = NoSubstitutionTemplate

	for _, tok := range []Token{
		Negate, Modulo, BitwiseAnd, LeftParen, RightParen, Multiply, Add, Comma, Subtract, Period, Divide,
		Colon, Semicolon, LessThan, Assign, GreaterThan, QuestionMark, LeftBracket, RightBracket, BitwiseXor,
		LeftBrace, BitwiseOr, RightBrace, Complement,
	} {
		firstChar[tokenNames[tok][0]] = tok
	}
}

// keywords holds every keyword spelling. Identifiers outside the keyword length range skip the lookup.
var keywords = map[string]Token{
	"as":         AsKeyword,
	"async":      AsyncKeyword,
	"await":      AwaitKeyword,
	"break":      BreakKeyword,
	"case":       CaseKeyword,
	"catch":      CatchKeyword,
	"class":      ClassKeyword,
	"const":      ConstKeyword,
	"continue":   ContinueKeyword,
	"debugger":   DebuggerKeyword,
	"default":    DefaultKeyword,
	"delete":     DeleteKeyword,
	"do":         DoKeyword,
	"else":       ElseKeyword,
	"enum":       EnumKeyword,
	"export":     ExportKeyword,
	"extends":    ExtendsKeyword,
	"false":      FalseKeyword,
	"finally":    FinallyKeyword,
	"for":        ForKeyword,
	"from":       FromKeyword,
	"function":   FunctionKeyword,
	"get":        GetKeyword,
	"if":         IfKeyword,
	"implements": ImplementsKeyword,
	"import":     ImportKeyword,
	"in":         InKeyword,
	"instanceof": InstanceofKeyword,
	"interface":  InterfaceKeyword,
	"let":        LetKeyword,
	"new":        NewKeyword,
	"null":       NullKeyword,
	"of":         OfKeyword,
	"package":    PackageKeyword,
	"private":    PrivateKeyword,
	"protected":  ProtectedKeyword,
	"public":     PublicKeyword,
	"return":     ReturnKeyword,
	"set":        SetKeyword,
	"static":     StaticKeyword,
	"super":      SuperKeyword,
	"switch":     SwitchKeyword,
	"target":     TargetKeyword,
	"this":       ThisKeyword,
	"throw":      ThrowKeyword,
	"true":       TrueKeyword,
	"try":        TryKeyword,
	"typeof":     TypeofKeyword,
	"var":        VarKeyword,
	"void":       VoidKeyword,
	"while":      WhileKeyword,
	"with":       WithKeyword,
	"yield":      YieldKeyword,
}

const (
	minKeywordLength = 2
	maxKeywordLength = 10
)

// lookupKeyword returns the keyword token for name, or Identifier.
func lookupKeyword(name string) Token {
	if len(name) < minKeywordLength || maxKeywordLength < len(name) || name[0] < 'a' || 'z' < name[0] {
		return Identifier
	}
	if t, ok := keywords[name]; ok {
		return t
	}
	return Identifier
}
