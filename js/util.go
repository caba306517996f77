package js

import (
	"unicode/utf8"
)

// isSimpleTarget returns true for expressions that can be assigned to.
func isSimpleTarget(i IExpr) bool {
	switch i := i.(type) {
	case *Var, *DotExpr, *IndexExpr:
		return true
	case *GroupExpr:
		return isSimpleTarget(i.X)
	}
	return false
}

// IsIdentifierName returns true if a valid identifier name is given. Escape sequences are not decoded.
func IsIdentifierName(s string) bool {
	for i, r := range s {
		if r == utf8.RuneError || i == 0 && !isIdentifierStart(r) || i != 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return s != ""
}

// IsReservedWord returns true if name cannot be used as an identifier, in strict mode when strict is set.
func IsReservedWord(name string, strict bool) bool {
	tok := lookupKeyword(name)
	return tok&IsReserved != 0 || strict && tok&IsFutureReserved != 0
}
