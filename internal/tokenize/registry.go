package tokenize

import (
	"sort"
	"strings"
)

// Language is the rule table for one language. It is plain configuration data owned by the caller; NewRegistry copies what it needs, so later edits to a Language
// value do not affect a Registry built from it.
type Language struct {
	ID      string   // Canonical id (ex: "javascript").
	Aliases []string // Extra ids that resolve to this language (ex: "js", "ts").

	LineComments  []string    // Prefixes that comment out the rest of the line (ex: "//", "#").
	BlockComments [][2]string // Open/close pairs (ex: {"/*", "*/"}). An unclosed block comment runs to the end of the line.

	Quotes    string // Quote characters that start a string with backslash escapes (ex: `"'`).
	RawQuotes string // Quote characters that start a string without escapes (ex: Go's "`").

	Keywords []string
	Builtins []string
	Booleans []string

	// CaseInsensitiveKeywords makes Keywords, Builtins, and Booleans match regardless of case (ex: SQL).
	CaseInsensitiveKeywords bool

	// IdentDollar allows '$' in identifiers (ex: JavaScript).
	IdentDollar bool

	// IdentDash allows '-' after the first character of an identifier (ex: CSS properties).
	IdentDash bool

	Operators   string // Characters that form operator runs.
	Punctuation string // Characters emitted as single punctuation tokens.

	// NoFunctions disables reclassifying identifiers followed by '(' as Function.
	NoFunctions bool
}

// lexer is the compiled, read-only form of a Language.
type lexer struct {
	id            string
	lineComments  []string
	blockComments [][2]string
	quotes        string
	rawQuotes     string
	keywords      map[string]struct{}
	builtins      map[string]struct{}
	booleans      map[string]struct{}
	foldCase      bool
	identDollar   bool
	identDash     bool
	operators     string
	punctuation   string
	functions     bool
	classify      bool // false for the fallback lexer: every identifier stays Default.
}

func compile(l Language) *lexer {
	return &lexer{
		id:            l.ID,
		lineComments:  append([]string(nil), l.LineComments...),
		blockComments: append([][2]string(nil), l.BlockComments...),
		quotes:        l.Quotes,
		rawQuotes:     l.RawQuotes,
		keywords:      wordSet(l.Keywords, l.CaseInsensitiveKeywords),
		builtins:      wordSet(l.Builtins, l.CaseInsensitiveKeywords),
		booleans:      wordSet(l.Booleans, l.CaseInsensitiveKeywords),
		foldCase:      l.CaseInsensitiveKeywords,
		identDollar:   l.IdentDollar,
		identDash:     l.IdentDash,
		operators:     l.Operators,
		punctuation:   l.Punctuation,
		functions:     !l.NoFunctions,
		classify:      true,
	}
}

func wordSet(words []string, fold bool) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if fold {
			w = strings.ToLower(w)
		}
		m[w] = struct{}{}
	}
	return m
}

// Registry is an immutable mapping from language id (and aliases) to rule tables. A Registry is safe for concurrent use.
type Registry struct {
	byID     map[string]*lexer
	langs    map[string]Language // canonical id -> definition, for Lookup.
	fallback *lexer
}

// NewRegistry returns a Registry containing langs. Ids and aliases are matched case-insensitively. If two languages claim the same id or alias, the later one wins.
// A Language with an empty ID is skipped.
func NewRegistry(langs ...Language) *Registry {
	r := &Registry{
		byID:     map[string]*lexer{},
		langs:    map[string]Language{},
		fallback: fallbackLexer(),
	}
	for _, l := range langs {
		if l.ID == "" {
			continue
		}
		lx := compile(l)
		r.langs[strings.ToLower(l.ID)] = l
		r.byID[strings.ToLower(l.ID)] = lx
		for _, alias := range l.Aliases {
			r.byID[strings.ToLower(alias)] = lx
		}
	}
	return r
}

// Languages returns the canonical ids of the registered languages, sorted.
func (r *Registry) Languages() []string {
	ids := make([]string, 0, len(r.langs))
	for id := range r.langs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the Language registered under id (or one of its aliases). The returned value shares its slices with the registry; callers must not modify them.
func (r *Registry) Lookup(id string) (Language, bool) {
	lx, ok := r.byID[strings.ToLower(id)]
	if !ok {
		return Language{}, false
	}
	return r.langs[strings.ToLower(lx.id)], true
}

// Supports reports whether id resolves to a registered language.
func (r *Registry) Supports(id string) bool {
	_, ok := r.byID[strings.ToLower(id)]
	return ok
}

func (r *Registry) lexerFor(id string) *lexer {
	if lx, ok := r.byID[strings.ToLower(id)]; ok {
		return lx
	}
	return r.fallback
}

// fallbackLexer lexes comments, strings, numbers, and operators with C-like rules but leaves every identifier as Default.
func fallbackLexer() *lexer {
	lx := compile(Language{
		ID:            "",
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Quotes:        "\"'`",
		Operators:     cOperators,
		Punctuation:   cPunctuation,
	})
	lx.classify = false
	lx.functions = false
	return lx
}

// TokenizeLine tokenizes line with the language registered under languageID. See the package documentation for the token contract.
func (r *Registry) TokenizeLine(line, languageID string) []Token {
	return r.lexerFor(languageID).tokenizeLine(line)
}

// TokenizeText splits text on '\n' and tokenizes each line with TokenizeLine. A trailing '\n' yields a final empty line (tokenized as a single space).
func (r *Registry) TokenizeText(text, languageID string) [][]Token {
	lx := r.lexerFor(languageID)
	lines := strings.Split(text, "\n")
	out := make([][]Token, len(lines))
	for i, line := range lines {
		out[i] = lx.tokenizeLine(line)
	}
	return out
}

// DefaultRegistry is the registry of built-in languages.
var DefaultRegistry = NewRegistry(BuiltinLanguages()...)

// TokenizeLine tokenizes line using DefaultRegistry.
func TokenizeLine(line, languageID string) []Token {
	return DefaultRegistry.TokenizeLine(line, languageID)
}

// TokenizeText tokenizes each line of text using DefaultRegistry.
func TokenizeText(text, languageID string) [][]Token {
	return DefaultRegistry.TokenizeText(text, languageID)
}
