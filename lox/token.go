package lox

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdentifier TokenType = "IDENTIFIER"
	tokenString     TokenType = "STRING"
	tokenNumber     TokenType = "NUMBER"

	tokenLeftParen  TokenType = "("
	tokenRightParen TokenType = ")"
	tokenLeftBrace  TokenType = "{"
	tokenRightBrace TokenType = "}"
	tokenComma      TokenType = ","
	tokenDot        TokenType = "."
	tokenMinus      TokenType = "-"
	tokenPlus       TokenType = "+"
	tokenSemicolon  TokenType = ";"
	tokenSlash      TokenType = "/"
	tokenStar       TokenType = "*"

	tokenBang         TokenType = "!"
	tokenBangEqual    TokenType = "!="
	tokenEqual        TokenType = "="
	tokenEqualEqual   TokenType = "=="
	tokenGreater      TokenType = ">"
	tokenGreaterEqual TokenType = ">="
	tokenLess         TokenType = "<"
	tokenLessEqual    TokenType = "<="

	tokenAnd    TokenType = "AND"
	tokenClass  TokenType = "CLASS"
	tokenElse   TokenType = "ELSE"
	tokenFalse  TokenType = "FALSE"
	tokenFun    TokenType = "FUN"
	tokenFor    TokenType = "FOR"
	tokenIf     TokenType = "IF"
	tokenNil    TokenType = "NIL"
	tokenOr     TokenType = "OR"
	tokenPrint  TokenType = "PRINT"
	tokenReturn TokenType = "RETURN"
	tokenSuper  TokenType = "SUPER"
	tokenThis   TokenType = "THIS"
	tokenTrue   TokenType = "TRUE"
	tokenVar    TokenType = "VAR"
	tokenWhile  TokenType = "WHILE"
)

// spellings maps every fixed-spelling lexeme to its token type. Identifier,
// String, and Number carry no fixed spelling and are absent; the scanner
// constructs those directly.
var spellings = map[string]TokenType{
	"(": tokenLeftParen,
	")": tokenRightParen,
	"{": tokenLeftBrace,
	"}": tokenRightBrace,
	",": tokenComma,
	".": tokenDot,
	"-": tokenMinus,
	"+": tokenPlus,
	";": tokenSemicolon,
	"/": tokenSlash,
	"*": tokenStar,

	"!":  tokenBang,
	"!=": tokenBangEqual,
	"=":  tokenEqual,
	"==": tokenEqualEqual,
	">":  tokenGreater,
	">=": tokenGreaterEqual,
	"<":  tokenLess,
	"<=": tokenLessEqual,

	"and":    tokenAnd,
	"class":  tokenClass,
	"else":   tokenElse,
	"false":  tokenFalse,
	"fun":    tokenFun,
	"for":    tokenFor,
	"if":     tokenIf,
	"nil":    tokenNil,
	"or":     tokenOr,
	"print":  tokenPrint,
	"return": tokenReturn,
	"super":  tokenSuper,
	"this":   tokenThis,
	"true":   tokenTrue,
	"var":    tokenVar,
	"while":  tokenWhile,

	"EOF": tokenEOF,
}

// Token captures the lexical information produced for one lexeme.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q [line %d]", t.Type, t.Lexeme, t.Line)
}

// buildToken constructs a token from a fixed-spelling lexeme. Anything that
// is not an exact match for a punctuation, operator, or keyword spelling
// fails with InvalidToken.
func buildToken(lexeme string, line int) (Token, error) {
	tt, ok := spellings[lexeme]
	if !ok {
		return Token{}, invalidToken(line, lexeme)
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line}, nil
}
