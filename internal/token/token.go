package token

type Type int

const (
	EOF Type = iota
	VARIABLE
	CONSTANT
	LPAREN
	RPAREN
	AND
	OR
	XOR
	NOT
	POSTFIX_NOT
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case VARIABLE:
		return "VARIABLE"
	case CONSTANT:
		return "CONSTANT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case NOT:
		return "NOT"
	case POSTFIX_NOT:
		return "POSTFIX_NOT"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether t is one of the logical operators AND, OR, XOR or NOT.
func (t Type) IsOperator() bool {
	return t == AND || t == OR || t == XOR || t == NOT
}

// IsBinary reports whether t takes two operands.
func (t Type) IsBinary() bool {
	return t == AND || t == OR || t == XOR
}

// Token represents a lexical token with its type and literal value.
// Pos is the 1-based column in the normalized input, 0 for synthesized tokens.
type Token struct {
	Type   Type
	Value  string
	Bool   bool
	Prefix bool
	Pos    int
}

func Variable(name string) Token {
	return Token{Type: VARIABLE, Value: name}
}

func Constant(v bool) Token {
	if v {
		return Token{Type: CONSTANT, Value: "1", Bool: true}
	}
	return Token{Type: CONSTANT, Value: "0"}
}

func Operator(t Type) Token {
	switch t {
	case AND:
		return Token{Type: AND, Value: "*"}
	case OR:
		return Token{Type: OR, Value: "+"}
	case XOR:
		return Token{Type: XOR, Value: "^"}
	case NOT:
		return Token{Type: NOT, Value: "!", Prefix: true}
	}
	return Token{Type: t}
}

// Equal compares tokens by type and payload, ignoring source position.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case VARIABLE:
		return t.Value == o.Value
	case CONSTANT:
		return t.Bool == o.Bool
	default:
		return true
	}
}

func (t Token) String() string {
	if t.Type == VARIABLE || t.Type == CONSTANT {
		return t.Value
	}
	return t.Type.String()
}
