package lox

// Scanner walks a source string byte by byte and produces the ordered token
// sequence for it. Indexing is by raw byte and correct for single-byte
// (ASCII) content only; multi-byte characters are not decoded, so line and
// position accounting for non-ASCII input is undefined.
type Scanner struct {
	source  string
	start   int
	current int
	line    int
}

// NewScanner returns a scanner positioned at the start of source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// ScanTokens consumes the whole source and returns its tokens, terminated by
// exactly one EOF token stamped with the final line. The result is
// all-or-nothing: the first lexical error aborts the scan and discards any
// tokens already accumulated.
func (s *Scanner) ScanTokens() ([]Token, error) {
	var tokens []Token
	for !s.isAtEnd() {
		s.start = s.current
		tok, err := s.scanToken()
		if err != nil {
			return nil, err
		}
		if tok != nil {
			tokens = append(tokens, *tok)
		}
	}
	tokens = append(tokens, Token{Type: tokenEOF, Lexeme: "", Line: s.line})
	return tokens, nil
}

// scanToken consumes exactly one token's worth of input. It returns nil for
// insignificant input (whitespace, newlines, comments).
func (s *Scanner) scanToken() (*Token, error) {
	c := s.pop()
	switch c {
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '*':
		return s.build(string(c))
	case '!', '=', '<', '>':
		if s.match('=') {
			return s.build(string(c) + "=")
		}
		return s.build(string(c))
	case '/':
		if s.match('/') {
			// Line comment: discard up to, not including, the newline.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.pop()
			}
			return nil, nil
		}
		return s.build(string(c))
	case ' ', '\r', '\t':
		return nil, nil
	case '\n':
		s.line++
		return nil, nil
	case '"':
		lexeme, err := s.scanString()
		if err != nil {
			return nil, err
		}
		return &Token{Type: tokenString, Lexeme: lexeme, Line: s.line}, nil
	default:
		switch {
		case isDigit(c):
			lexeme, err := s.scanNumber()
			if err != nil {
				return nil, err
			}
			return &Token{Type: tokenNumber, Lexeme: lexeme, Line: s.line}, nil
		case isAlpha(c):
			return s.build(s.scanIdentifier())
		default:
			return nil, invalidToken(s.line, string(c))
		}
	}
}

func (s *Scanner) build(lexeme string) (*Token, error) {
	tok, err := buildToken(lexeme, s.line)
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// peek looks at the next byte without consuming it, yielding NUL at end of
// input.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext looks one past the next byte. There is no NUL sentinel here: a
// lookahead past the end of the source is only ever attempted while deciding
// whether a "." continues a number, so its absence is an unterminated float.
func (s *Scanner) peekNext() (byte, error) {
	if s.current+1 >= len(s.source) {
		return 0, unterminatedFloat(s.line)
	}
	return s.source[s.current+1], nil
}

// pop consumes and returns the next byte.
func (s *Scanner) pop() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the next byte only if it equals exp.
func (s *Scanner) match(exp byte) bool {
	if s.isAtEnd() || s.source[s.current] != exp {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// scanString consumes a string literal after its opening quote. Backslashes
// are ordinary characters; there are no escape sequences. Newlines inside
// the literal are legal and counted, so a multi-line string reports the line
// of its closing quote.
func (s *Scanner) scanString() (string, error) {
	for s.peek() != '"' {
		if s.isAtEnd() {
			return "", unterminatedString(s.line)
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.pop()
	}
	s.pop() // closing quote

	// Strip both delimiting quotes from the lexeme.
	return s.source[s.start+1 : s.current-1], nil
}

// scanNumber consumes the remaining digits of a numeric literal, plus a
// fractional part when a "." is followed by another digit. A trailing "."
// not followed by a digit is left unconsumed for the next scan iteration,
// except when it is the final byte of the source, which makes the lookahead
// impossible and fails as an unterminated float.
func (s *Scanner) scanNumber() (string, error) {
	for isDigit(s.peek()) {
		s.pop()
	}
	if s.peek() == '.' {
		next, err := s.peekNext()
		if err != nil {
			return "", err
		}
		if isDigit(next) {
			s.pop() // the "."
			for isDigit(s.peek()) {
				s.pop()
			}
		}
	}
	return s.source[s.start:s.current], nil
}

// scanIdentifier consumes the remaining alphanumeric bytes of a lexeme that
// began with an alphabetic byte. Underscores are not identifier characters.
func (s *Scanner) scanIdentifier() string {
	for isAlphanumeric(s.peek()) {
		s.pop()
	}
	return s.source[s.start:s.current]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
