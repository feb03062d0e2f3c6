package lexer

type stateFn func(*Lexer) stateFn

const digits = "0123456789"

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func lexText(l *Lexer) stateFn {
	if l.err != nil {
		return l.emitToken(Token{Type: TokError, Value: string(l.err.Char), Pos: l.err.Pos})
	}
	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'-': TokMinus,
		'*': TokStar,
		'/': TokSlash,
		'(': TokParenLeft,
		')': TokParenRight,
	}

	// peek returns 0 both at end of input and for an actual NUL byte;
	// only atEOF tells them apart. A NUL falls through to lexError.
	switch r := l.peek(); {
	case l.atEOF:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.acceptRun(" \t\r\n")
		l.ignore()
		return lexText
	case isDigit(r):
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.lexError(r)
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	// A fraction needs at least one digit after the dot. A lone trailing
	// dot is not part of the number and gets rejected by the next scan.
	if l.peek() == '.' && l.pos+1 < len(l.input) && isDigit(rune(l.input[l.pos+1])) {
		l.next()
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}
