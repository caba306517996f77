package js

import (
	"math/big"
	"strconv"
	"strings"
)

// scanNumber scans a numeric literal starting at a decimal digit, or at a period followed by a digit.
func (p *Parser) scanNumber(ctx Context, leadingPeriod bool) Token {
	start := p.index
	if leadingPeriod {
		return p.scanDecimalTail(ctx, start, true, false)
	}

	if p.nextCodePoint != '0' {
		if !p.scanDecimalDigits() {
			return Error
		}
		return p.scanDecimalTail(ctx, start, false, false)
	}

	c := p.advance()
	switch c {
	case 'x', 'X':
		return p.scanRadixNumber(start, 16)
	case 'o', 'O':
		return p.scanRadixNumber(start, 8)
	case 'b', 'B':
		return p.scanRadixNumber(start, 2)
	case '_':
		p.report(ErrZeroDigitNumericSeparator)
		return Error
	}
	if isDecimal(c) {
		return p.scanLegacyNumber(ctx, start)
	}
	return p.scanDecimalTail(ctx, start, false, false)
}

// scanDecimalDigits consumes decimal digits with single numeric separators in between. The cursor is at a digit.
func (p *Parser) scanDecimalDigits() bool {
	separator := false
	for {
		c := p.nextCodePoint
		if c == '_' {
			if separator {
				p.report(ErrContinuousNumericSeparator)
				return false
			}
			separator = true
		} else if isDecimal(c) {
			separator = false
		} else {
			break
		}
		p.advance()
	}
	if separator {
		p.report(ErrTrailingNumericSeparator)
		return false
	}
	return true
}

// scanDecimalTail scans the optional fraction, exponent and BigInt suffix of a decimal literal whose integer part
// has been consumed, or whose period is at the cursor.
func (p *Parser) scanDecimalTail(ctx Context, start int, leadingPeriod, legacy bool) Token {
	isFloat := false
	if leadingPeriod || p.nextCodePoint == '.' {
		isFloat = true
		if isDecimal(p.advance()) && !p.scanDecimalDigits() {
			return Error
		}
	}

	hasExponent := false
	if c := p.nextCodePoint; c == 'e' || c == 'E' {
		hasExponent = true
		c = p.advance()
		if c == '+' || c == '-' {
			c = p.advance()
		}
		if !isDecimal(c) {
			p.report(ErrMissingExponent)
			return Error
		}
		if !p.scanDecimalDigits() {
			return Error
		}
	}

	end := p.index
	isBigInt := false
	if p.nextCodePoint == 'n' {
		if isFloat || hasExponent || legacy {
			p.report(ErrInvalidBigInt)
			p.advance()
			return Error
		}
		isBigInt = true
		p.advance()
	}
	if !p.endOfNumber() {
		return Error
	}

	digits := stripSeparators(p.source[start:end])
	f, _ := strconv.ParseFloat(digits, 64) // overflows to infinity
	p.tokenValue = TokenValue{Num: f}
	if isBigInt {
		p.tokenValue.Str = digits
		return BigIntLiteral
	}
	return NumericLiteral
}

// scanRadixNumber scans a hexadecimal, octal or binary literal after its leading 0.
func (p *Parser) scanRadixNumber(start, radix int) Token {
	c := p.advance()
	digits := 0
	separator := false
	for ; ; c = p.advance() {
		if c == '_' {
			if digits == 0 || separator {
				p.report(ErrContinuousNumericSeparator)
				return Error
			}
			separator = true
			continue
		}
		if d := hexValue(c); d < 0 || radix <= d {
			break
		}
		separator = false
		digits++
	}
	if digits == 0 {
		switch radix {
		case 16:
			p.report(ErrMissingHexDigits)
		case 8:
			p.report(ErrMissingOctalDigits)
		default:
			p.report(ErrMissingBinaryDigits)
		}
		return Error
	} else if separator {
		p.report(ErrTrailingNumericSeparator)
		return Error
	}

	end := p.index
	isBigInt := p.consumeOpt('n')
	if !p.endOfNumber() {
		return Error
	}

	s := stripSeparators(p.source[start+2 : end])
	p.tokenValue = TokenValue{Num: parseRadix(s, radix)}
	if isBigInt {
		p.tokenValue.Str = p.source[start:start+2] + s
		return BigIntLiteral
	}
	return NumericLiteral
}

// scanLegacyNumber scans a literal with a leading zero followed by a digit. It is a legacy octal literal unless
// it has an 8 or 9, in which case it is a decimal literal. Both are errors in strict mode.
func (p *Parser) scanLegacyNumber(ctx Context, start int) Token {
	octal := true
	for c := p.nextCodePoint; isDecimal(c); c = p.advance() {
		if '8' <= c {
			octal = false
		}
	}
	if p.nextCodePoint == '_' {
		p.report(ErrZeroDigitNumericSeparator)
		return Error
	}

	if !octal {
		if ctx&Strict != 0 {
			p.report(ErrStrictDecimalWithLeadingZero)
			return Error
		}
		return p.scanDecimalTail(ctx, start, false, true)
	}

	if ctx&Strict != 0 {
		p.report(ErrStrictOctalLiteral)
		return Error
	} else if p.nextCodePoint == 'n' {
		p.report(ErrInvalidBigInt)
		p.advance()
		return Error
	} else if !p.endOfNumber() {
		return Error
	}
	p.tokenValue = TokenValue{Num: parseRadix(p.source[start+1:p.index], 8)}
	return NumericLiteral
}

// endOfNumber reports an identifier start or digit directly after a numeric literal.
func (p *Parser) endOfNumber() bool {
	if c := p.nextCodePoint; isIdentifierStart(c) || isDecimal(c) || c == '\\' {
		p.report(ErrIDStartAfterNumber)
		return false
	}
	return true
}

func stripSeparators(s string) string {
	if strings.IndexByte(s, '_') == -1 {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// parseRadix returns the value of digits in radix, rounded to the nearest float64.
func parseRadix(digits string, radix int) float64 {
	if n, err := strconv.ParseUint(digits, radix, 64); err == nil && n <= 1<<53 {
		return float64(n)
	}
	i, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return 0
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}
