// Package tokenize classifies lines of source text into typed tokens for syntax coloring.
//
// Tokenization is lexical only: each line is scanned left to right by a single-pass lexer driven by a per-language rule table (comment delimiters, quote characters,
// keyword/builtin/boolean sets, operator and punctuation characters). The concatenation of a line's token texts always reproduces the line, with one exception: an
// empty line yields a single Default token containing one space, so renderers always have a non-empty line box.
//
// Rule tables live in an immutable Registry. DefaultRegistry holds the built-in languages; callers that need other tables build their own with NewRegistry. Unknown language
// ids never fail: they fall back to a generic C-like table without keyword, builtin, boolean, or function classification.
package tokenize

// Kind is the lexical classification of a token.
type Kind uint8

// Token kinds. Default is the zero value.
const (
	Default Kind = iota
	Keyword
	String
	Number
	Comment
	Function
	Operator
	Punctuation
	Boolean
	Builtin

	kindCount
)

var kindNames = [kindCount]string{
	Default:     "default",
	Keyword:     "keyword",
	String:      "string",
	Number:      "number",
	Comment:     "comment",
	Function:    "function",
	Operator:    "operator",
	Punctuation: "punctuation",
	Boolean:     "boolean",
	Builtin:     "builtin",
}

// String returns the lowercase name of k (ex: "keyword").
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Default; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// KindFromString is the inverse of Kind.String. It returns false for unknown names.
func KindFromString(name string) (Kind, bool) {
	for k := Default; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Default, false
}

// Token is a classified run of characters within a line. Its offset is implicit: see Offsets.
type Token struct {
	Kind Kind
	Text string
}

// Offsets returns the byte offset of each token within its line: the sum of the lengths of the tokens before it.
func Offsets(tokens []Token) []int {
	out := make([]int, len(tokens))
	off := 0
	for i, tok := range tokens {
		out[i] = off
		off += len(tok.Text)
	}
	return out
}
