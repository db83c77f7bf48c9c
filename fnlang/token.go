package fnlang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenIdentifier
	TokenNumber
	TokenSymbol
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenSymbol:
		return "symbol"
	case TokenEOF:
		return "end of input"
	}
	return "invalid token"
}

var keywords = map[string]bool{
	"let":   true,
	"in":    true,
	"fun":   true,
	"plot":  true,
	"for":   true,
	"clear": true,
	"mod":   true,
}
