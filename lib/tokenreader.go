package lib

// TokenReader is the shape a downstream parser consumes. Next and Peek keep
// returning the EOF token once the stream ends.
type TokenReader interface {
	Next() Token
	Peek() Token
}
