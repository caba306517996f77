package js

import (
	"strings"

	"github.com/GuyLewin/meriyah"
)

// ErrorKind is a diagnostic kind.
type ErrorKind uint8

// ErrorKind values.
const (
	ErrUnexpected ErrorKind = iota
	ErrUnexpectedToken
	ErrExpected
	ErrUnexpectedEndOfSource
	ErrInvalidCharacter
	ErrUnterminatedString
	ErrUnterminatedStringLineBreak
	ErrUnterminatedTemplate
	ErrUnterminatedComment
	ErrUnterminatedRegExp
	ErrMissingClosingBrace
	ErrStrictOctalLiteral
	ErrStrictDecimalWithLeadingZero
	ErrInvalidHexEscapeSequence
	ErrInvalidCodePoint
	ErrInvalidUnicodeEscapeSequence
	ErrInvalidEscapeIdentifier
	ErrUnicodeOverflow
	ErrTemplateOctalLiteral
	ErrStrictOctalEscape
	ErrInvalidEightAndNine
	ErrContinuousNumericSeparator
	ErrTrailingNumericSeparator
	ErrZeroDigitNumericSeparator
	ErrMissingHexDigits
	ErrMissingOctalDigits
	ErrMissingBinaryDigits
	ErrMissingExponent
	ErrIDStartAfterNumber
	ErrInvalidBigInt
	ErrDuplicateRegExpFlag
	ErrUnexpectedTokenRegExpFlag
	ErrHTMLComment
	ErrInvalidCoalescing
	ErrUnaryBeforeExponentiation
	ErrInvalidLHSInAssignment
	ErrInvalidLHSInUpdate
	ErrInvalidLHSInFor
	ErrInvalidArrowParams
	ErrIllegalNewlineAfterThrow
	ErrStrictReserved
	ErrUnexpectedReserved
	ErrEscapedKeyword
	ErrStrictWith
	ErrFunctionInStatement
	ErrForLoopInit
	ErrInvalidSuper
	ErrIllegalBreak
	ErrIllegalContinue
	ErrTooDeep
	ErrJSXUnsupported
)

var errorMessages = [...]string{
	ErrUnexpected:                   "Unexpected token",
	ErrUnexpectedToken:              "Unexpected token: '%0'",
	ErrExpected:                     "Expected '%0'",
	ErrUnexpectedEndOfSource:        "Unexpected end of source",
	ErrInvalidCharacter:             "Invalid character",
	ErrUnterminatedString:           "Unterminated string literal",
	ErrUnterminatedStringLineBreak:  "Unterminated string literal, strings cannot span lines without escaping",
	ErrUnterminatedTemplate:         "Unterminated template literal",
	ErrUnterminatedComment:          "Multiline comment was not closed properly",
	ErrUnterminatedRegExp:           "Unterminated regular expression",
	ErrMissingClosingBrace:          "Expected a closing curly brace `}`",
	ErrStrictOctalLiteral:           "Octal literals are not allowed in strict mode",
	ErrStrictDecimalWithLeadingZero: "Decimals with leading zeros are not allowed in strict mode",
	ErrInvalidHexEscapeSequence:     "Invalid hexadecimal escape sequence",
	ErrInvalidCodePoint:             "Invalid code point %0",
	ErrInvalidUnicodeEscapeSequence: "Invalid Unicode escape sequence",
	ErrInvalidEscapeIdentifier:      "Only unicode escapes are legal in identifier names",
	ErrUnicodeOverflow:              "Unicode codepoint must not be greater than 0x10FFFF",
	ErrTemplateOctalLiteral:         "Octal escape sequences are not allowed in template strings",
	ErrStrictOctalEscape:            "Octal escape sequences are not allowed in strict mode",
	ErrInvalidEightAndNine:          "Escapes \\8 or \\9 are not syntactically valid escapes",
	ErrContinuousNumericSeparator:   "Only one underscore is allowed as numeric separator",
	ErrTrailingNumericSeparator:     "Numeric separators are not allowed at the end of numeric literals",
	ErrZeroDigitNumericSeparator:    "Numeric separators '_' are not allowed in numbers that start with '0'",
	ErrMissingHexDigits:             "Missing hexadecimal digits after '0x'",
	ErrMissingOctalDigits:           "Missing octal digits after '0o'",
	ErrMissingBinaryDigits:          "Missing binary digits after '0b'",
	ErrMissingExponent:              "Non-number found after exponent indicator",
	ErrIDStartAfterNumber:           "No identifiers allowed directly after numeric literal",
	ErrInvalidBigInt:                "Invalid BigInt syntax",
	ErrDuplicateRegExpFlag:          "Duplicate regular expression flag '%0'",
	ErrUnexpectedTokenRegExpFlag:    "Unexpected regular expression flag",
	ErrHTMLComment:                  "HTML comments are only allowed with web compatibility (Annex B)",
	ErrInvalidCoalescing:            "Coalescing and logical operators used together in the same expression must be disambiguated with parentheses",
	ErrUnaryBeforeExponentiation:    "Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence",
	ErrInvalidLHSInAssignment:       "Invalid left-hand side in assignment",
	ErrInvalidLHSInUpdate:           "Invalid left-hand side expression in %0 operation",
	ErrInvalidLHSInFor:              "Invalid left-hand side in for-%0 loop",
	ErrInvalidArrowParams:           "Invalid arrow function parameters",
	ErrIllegalNewlineAfterThrow:     "Illegal newline after throw",
	ErrStrictReserved:               "Unexpected strict mode reserved word '%0'",
	ErrUnexpectedReserved:           "Unexpected reserved word '%0'",
	ErrEscapedKeyword:               "Keywords cannot contain escape characters",
	ErrStrictWith:                   "Strict mode code may not include a with statement",
	ErrFunctionInStatement:          "In strict mode code or without web compatibility, functions can only be declared at top level or inside a block",
	ErrForLoopInit:                  "for-%0 loop variable declaration may not have an initializer",
	ErrInvalidSuper:                 "'super' keyword unexpected here",
	ErrIllegalBreak:                 "Illegal break statement",
	ErrIllegalContinue:              "Illegal continue statement: no surrounding iteration statement",
	ErrTooDeep:                      "Maximum nesting depth exceeded",
	ErrJSXUnsupported:               "JSX syntax is not supported",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorMessages) {
		return errorMessages[k]
	}
	return "Invalid error kind"
}

// Message formats the message of a diagnostic kind, substituting the placeholders %0, %1, ... by args.
func (k ErrorKind) Message(args ...string) string {
	msg := k.String()
	if strings.IndexByte(msg, '%') == -1 {
		return msg
	}

	var sb strings.Builder
	for i := 0; i < len(msg); i++ {
		if msg[i] == '%' && i+1 < len(msg) && '0' <= msg[i+1] && msg[i+1] <= '9' {
			if n := int(msg[i+1] - '0'); n < len(args) {
				sb.WriteString(args[n])
			}
			i++
			continue
		}
		sb.WriteByte(msg[i])
	}
	return sb.String()
}

// report reports a diagnostic at the cursor, used by the scanner.
func (p *Parser) report(kind ErrorKind, args ...string) {
	p.reportAt(p.index, kind, args...)
}

// fail reports a diagnostic at the start of the current token, used by the parser.
func (p *Parser) fail(kind ErrorKind, args ...string) {
	p.reportAt(p.tokenPos, kind, args...)
}

// unexpected reports the current token as unexpected.
func (p *Parser) unexpected() {
	switch p.token {
	case EndOfSource:
		p.fail(ErrUnexpectedEndOfSource)
	case Error:
		// already reported by the scanner
	default:
		p.fail(ErrUnexpectedToken, p.source[p.tokenPos:p.index])
	}
}

// reportAt either hands the diagnostic to the error callback and lets the caller continue, or stores the first
// diagnostic as the fatal error after which the scanner only returns EndOfSource.
func (p *Parser) reportAt(offset int, kind ErrorKind, args ...string) {
	if p.err != nil {
		return
	}
	err := meriyah.NewError(kind.Message(args...), p.source, offset)
	if p.onError != nil {
		p.errors = append(p.errors, err)
		p.onError(err.Message)
		return
	}
	p.err = err
}

// failed returns true after a fatal error.
func (p *Parser) failed() bool {
	return p.err != nil
}
