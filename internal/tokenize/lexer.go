package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenizeLine runs the single-pass lexer over line. At each cursor position the rules are tried in a fixed order (comment, string, number, identifier, whitespace,
// operator run, punctuation) and the cursor advances by whatever matched. If nothing matches, one character is consumed as Default. Every step advances by at least
// one byte, so the loop always terminates.
func (lx *lexer) tokenizeLine(line string) []Token {
	if line == "" {
		return []Token{{Kind: Default, Text: " "}}
	}

	var tokens []Token
	emit := func(kind Kind, start, end int) {
		tokens = append(tokens, Token{Kind: kind, Text: line[start:end]})
	}

	i := 0
	for i < len(line) {
		if n := lx.matchComment(line, i); n > 0 {
			emit(Comment, i, i+n)
			i += n
			continue
		}
		if n := lx.matchString(line, i); n > 0 {
			emit(String, i, i+n)
			i += n
			continue
		}
		if n := matchNumber(line, i); n > 0 {
			emit(Number, i, i+n)
			i += n
			continue
		}
		if n := lx.matchIdent(line, i); n > 0 {
			emit(lx.classifyIdent(line, i, i+n), i, i+n)
			i += n
			continue
		}
		if n := matchSpace(line, i); n > 0 {
			emit(Default, i, i+n)
			i += n
			continue
		}
		if n := lx.matchOperators(line, i); n > 0 {
			emit(Operator, i, i+n)
			i += n
			continue
		}
		if strings.IndexByte(lx.punctuation, line[i]) >= 0 {
			emit(Punctuation, i, i+1)
			i++
			continue
		}

		_, size := utf8.DecodeRuneInString(line[i:])
		emit(Default, i, i+size)
		i += size
	}
	return tokens
}

// matchComment returns the length of a comment starting at i, or 0.
func (lx *lexer) matchComment(line string, i int) int {
	rest := line[i:]
	for _, bc := range lx.blockComments {
		if bc[0] == "" || !strings.HasPrefix(rest, bc[0]) {
			continue
		}
		closeIdx := strings.Index(rest[len(bc[0]):], bc[1])
		if bc[1] == "" || closeIdx < 0 {
			return len(rest)
		}
		return len(bc[0]) + closeIdx + len(bc[1])
	}
	for _, lc := range lx.lineComments {
		if lc != "" && strings.HasPrefix(rest, lc) {
			return len(rest)
		}
	}
	return 0
}

func (lx *lexer) startsComment(line string, i int) bool {
	rest := line[i:]
	for _, bc := range lx.blockComments {
		if bc[0] != "" && strings.HasPrefix(rest, bc[0]) {
			return true
		}
	}
	for _, lc := range lx.lineComments {
		if lc != "" && strings.HasPrefix(rest, lc) {
			return true
		}
	}
	return false
}

// matchString returns the length of a string literal starting at i, or 0. The literal is closed by the same quote character that opened it. An unterminated literal
// runs to the end of the line.
func (lx *lexer) matchString(line string, i int) int {
	q := line[i]
	escapes := true
	switch {
	case strings.IndexByte(lx.quotes, q) >= 0:
	case strings.IndexByte(lx.rawQuotes, q) >= 0:
		escapes = false
	default:
		return 0
	}

	j := i + 1
	for j < len(line) {
		c := line[j]
		if escapes && c == '\\' {
			j += 2
			continue
		}
		if c == q {
			return j + 1 - i
		}
		j++
	}
	return len(line) - i
}

// matchNumber returns the length of a numeric literal starting at i, or 0. Recognized forms: decimal integers and fractions with optional exponent, ".5", and 0x/0b/0o
// prefixed integers. '_' separators are allowed between digits.
func matchNumber(line string, i int) int {
	c := line[i]
	if c == '.' {
		if i+1 < len(line) && isDigit(line[i+1]) {
			j := scanDigits(line, i+1, isDigit)
			return scanExponent(line, j) - i
		}
		return 0
	}
	if !isDigit(c) {
		return 0
	}

	if c == '0' && i+2 < len(line) {
		var digit func(byte) bool
		switch line[i+1] {
		case 'x', 'X':
			digit = isHexDigit
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		}
		if digit != nil && digit(line[i+2]) {
			return scanDigits(line, i+2, digit) - i
		}
	}

	j := scanDigits(line, i, isDigit)
	if j+1 < len(line) && line[j] == '.' && isDigit(line[j+1]) {
		j = scanDigits(line, j+1, isDigit)
	}
	return scanExponent(line, j) - i
}

func scanDigits(line string, j int, digit func(byte) bool) int {
	for j < len(line) && (digit(line[j]) || (line[j] == '_' && j+1 < len(line) && digit(line[j+1]))) {
		j++
	}
	return j
}

func scanExponent(line string, j int) int {
	if j >= len(line) || (line[j] != 'e' && line[j] != 'E') {
		return j
	}
	k := j + 1
	if k < len(line) && (line[k] == '+' || line[k] == '-') {
		k++
	}
	if k < len(line) && isDigit(line[k]) {
		return scanDigits(line, k, isDigit)
	}
	return j
}

// matchIdent returns the byte length of an identifier starting at i, or 0.
func (lx *lexer) matchIdent(line string, i int) int {
	r, size := utf8.DecodeRuneInString(line[i:])
	if !lx.identStart(r) {
		return 0
	}
	j := i + size
	for j < len(line) {
		r, size = utf8.DecodeRuneInString(line[j:])
		if !lx.identPart(r) {
			break
		}
		j += size
	}
	// A trailing '-' belongs to the following operator, not the identifier (ex: CSS "a-" in "a- b").
	for lx.identDash && j > i+1 && line[j-1] == '-' {
		j--
	}
	return j - i
}

func (lx *lexer) identStart(r rune) bool {
	return r == '_' || (r == '$' && lx.identDollar) || unicode.IsLetter(r)
}

func (lx *lexer) identPart(r rune) bool {
	return lx.identStart(r) || unicode.IsDigit(r) || (r == '-' && lx.identDash)
}

// classifyIdent decides the kind of the identifier line[start:end]: Boolean, then Keyword, then Function (followed by '(' ignoring whitespace), then Builtin, else
// Default.
func (lx *lexer) classifyIdent(line string, start, end int) Kind {
	if !lx.classify {
		return Default
	}
	word := line[start:end]
	if lx.foldCase {
		word = strings.ToLower(word)
	}
	if _, ok := lx.booleans[word]; ok {
		return Boolean
	}
	if _, ok := lx.keywords[word]; ok {
		return Keyword
	}
	if lx.functions && followedByParen(line, end) {
		return Function
	}
	if _, ok := lx.builtins[word]; ok {
		return Builtin
	}
	return Default
}

func followedByParen(line string, j int) bool {
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	return j < len(line) && line[j] == '('
}

// matchSpace returns the length of a whitespace run starting at i, or 0.
func matchSpace(line string, i int) int {
	j := i
	for j < len(line) {
		r, size := utf8.DecodeRuneInString(line[j:])
		if !unicode.IsSpace(r) {
			break
		}
		j += size
	}
	return j - i
}

// matchOperators returns the length of an operator-character run starting at i, or 0. The run stops before anything that starts a comment.
func (lx *lexer) matchOperators(line string, i int) int {
	j := i
	for j < len(line) && strings.IndexByte(lx.operators, line[j]) >= 0 {
		if j > i && lx.startsComment(line, j) {
			break
		}
		j++
	}
	return j - i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
