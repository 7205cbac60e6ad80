package lox

import "fmt"

// ErrorKind enumerates the fatal lexical error categories.
type ErrorKind int

const (
	// InvalidToken reports a character or lexeme that matches no
	// token-building rule.
	InvalidToken ErrorKind = iota
	// UnterminatedString reports end of input before a closing quote.
	UnterminatedString
	// UnterminatedFloat reports a trailing "." at the very end of the
	// source, where the one-past lookahead needed to classify it is
	// impossible.
	UnterminatedFloat
)

// ScanError is a fatal lexical error. Any ScanError aborts the whole scan of
// the current source string; no partial token list is returned.
type ScanError struct {
	Kind  ErrorKind
	Line  int
	Token string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.message())
}

func (e *ScanError) message() string {
	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("Invalid Token: %s", e.Token)
	case UnterminatedString:
		return "Unterminated string"
	case UnterminatedFloat:
		return "Unterminated float"
	}
	return "unknown error"
}

func invalidToken(line int, token string) error {
	return &ScanError{Kind: InvalidToken, Line: line, Token: token}
}

func unterminatedString(line int) error {
	return &ScanError{Kind: UnterminatedString, Line: line}
}

func unterminatedFloat(line int) error {
	return &ScanError{Kind: UnterminatedFloat, Line: line}
}
