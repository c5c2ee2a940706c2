package ast

// Token is an operator symbol used by binary expressions.
type Token int

const (
	ILLEGAL Token = iota
	ASSIGN
	EQ
	NE
	LT
	AND
	OR
	CMP
	INSTANCEOF
	PLUS
	INDEX
)

// tokens is never written after initialization.
var tokens = [...]string{
	ILLEGAL:    "ILLEGAL",
	ASSIGN:     "=",
	EQ:         "==",
	NE:         "!=",
	LT:         "<",
	AND:        "&&",
	OR:         "||",
	CMP:        "<=>",
	INSTANCEOF: "instanceof",
	PLUS:       "+",
	INDEX:      "[",
}

// String returns the source text of the operator.
func (t Token) String() string {
	if t < 0 || int(t) >= len(tokens) {
		return tokens[ILLEGAL]
	}
	return tokens[t]
}

// IsComparison reports whether the operator yields a boolean from two operands.
func (t Token) IsComparison() bool {
	switch t {
	case EQ, NE, LT, INSTANCEOF:
		return true
	}
	return false
}
