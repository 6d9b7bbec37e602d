package tokenize

const (
	cOperators   = "+-*/%=<>!&|^~?:"
	cPunctuation = "()[]{};,."
)

// BuiltinLanguages returns fresh copies of the built-in rule tables (the ones in DefaultRegistry). Callers may modify the result and pass it to NewRegistry to build
// a customized registry.
func BuiltinLanguages() []Language {
	return []Language{
		javascript(),
		golang(),
		python(),
		rust(),
		jsonLang(),
		bash(),
		sql(),
		css(),
		yaml(),
	}
}

func javascript() Language {
	return Language{
		ID:            "javascript",
		Aliases:       []string{"js", "jsx", "mjs", "cjs", "typescript", "ts", "tsx"},
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Quotes:        "\"'`",
		Keywords: []string{
			"abstract", "as", "async", "await", "break", "case", "catch", "class", "const", "continue", "debugger", "declare", "default", "delete",
			"do", "else", "enum", "export", "extends", "finally", "for", "from", "function", "get", "if", "implements", "import", "in", "instanceof",
			"interface", "keyof", "let", "new", "null", "of", "private", "protected", "public", "readonly", "return", "set", "static", "super",
			"switch", "this", "throw", "try", "type", "typeof", "undefined", "var", "void", "while", "with", "yield",
		},
		Builtins: []string{
			"Array", "Boolean", "Date", "Error", "JSON", "Map", "Math", "Number", "Object", "Promise", "Proxy", "Reflect", "RegExp", "Set",
			"String", "Symbol", "WeakMap", "WeakSet", "console", "document", "globalThis", "window", "any", "boolean", "never", "number",
			"string", "unknown", "parseInt", "parseFloat", "setTimeout", "setInterval", "fetch", "require", "module", "exports", "process",
		},
		Booleans:    []string{"true", "false"},
		IdentDollar: true,
		Operators:   cOperators,
		Punctuation: cPunctuation,
	}
}

func golang() Language {
	return Language{
		ID:            "go",
		Aliases:       []string{"golang"},
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Quotes:        "\"'",
		RawQuotes:     "`",
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return", "select", "struct", "switch", "type", "var", "nil", "iota",
		},
		Builtins: []string{
			"any", "append", "bool", "byte", "cap", "clear", "close", "comparable", "complex", "complex64", "complex128", "copy", "delete",
			"error", "float32", "float64", "imag", "int", "int8", "int16", "int32", "int64", "len", "make", "max", "min", "new", "panic",
			"print", "println", "real", "recover", "rune", "string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		},
		Booleans:    []string{"true", "false"},
		Operators:   cOperators,
		Punctuation: cPunctuation,
	}
}

func python() Language {
	return Language{
		ID:           "python",
		Aliases:      []string{"py", "python3"},
		LineComments: []string{"#"},
		Quotes:       "\"'",
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del", "elif", "else", "except", "finally", "for",
			"from", "global", "if", "import", "in", "is", "lambda", "None", "nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield", "match", "case",
		},
		Builtins: []string{
			"abs", "all", "any", "bool", "bytes", "dict", "enumerate", "filter", "float", "format", "getattr", "hasattr", "int", "isinstance",
			"iter", "len", "list", "map", "max", "min", "next", "object", "open", "print", "range", "repr", "reversed", "round", "self",
			"set", "setattr", "sorted", "str", "sum", "super", "tuple", "type", "zip",
		},
		Booleans:    []string{"True", "False"},
		Operators:   "+-*/%=<>!&|^~:@",
		Punctuation: cPunctuation,
	}
}

func rust() Language {
	return Language{
		ID:            "rust",
		Aliases:       []string{"rs"},
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		// Single quotes are omitted: lifetimes ('a) would otherwise open unterminated strings.
		Quotes: "\"",
		Keywords: []string{
			"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else", "enum", "extern", "fn", "for", "if", "impl", "in",
			"let", "loop", "match", "mod", "move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct", "super", "trait",
			"type", "unsafe", "use", "where", "while",
		},
		Builtins: []string{
			"Option", "Result", "Some", "None", "Ok", "Err", "Vec", "String", "Box", "Rc", "Arc", "HashMap", "HashSet", "bool", "char",
			"f32", "f64", "i8", "i16", "i32", "i64", "i128", "isize", "str", "u8", "u16", "u32", "u64", "u128", "usize",
		},
		Booleans:    []string{"true", "false"},
		Operators:   cOperators,
		Punctuation: cPunctuation + "#",
	}
}

func jsonLang() Language {
	return Language{
		ID:          "json",
		Aliases:     []string{"jsonc"},
		Quotes:      "\"",
		Keywords:    []string{"null"},
		Booleans:    []string{"true", "false"},
		Operators:   "-",
		Punctuation: "{}[]:,",
		NoFunctions: true,
	}
}

func bash() Language {
	return Language{
		ID:           "bash",
		Aliases:      []string{"sh", "shell", "zsh"},
		LineComments: []string{"#"},
		Quotes:       "\"'",
		Keywords: []string{
			"case", "do", "done", "elif", "else", "esac", "fi", "for", "function", "if", "in", "local", "return", "select", "then",
			"until", "while", "export", "readonly",
		},
		Builtins: []string{
			"cd", "echo", "eval", "exec", "exit", "printf", "pwd", "read", "set", "shift", "source", "test", "trap", "unset",
		},
		Booleans:    []string{"true", "false"},
		IdentDollar: true,
		Operators:   "=<>!&|;",
		Punctuation: "()[]{},",
	}
}

func sql() Language {
	return Language{
		ID:            "sql",
		Aliases:       []string{"postgresql", "postgres", "mysql", "sqlite"},
		LineComments:  []string{"--"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Quotes:        "'\"",
		Keywords: []string{
			"add", "all", "alter", "and", "as", "asc", "between", "by", "case", "create", "delete", "desc", "distinct", "drop", "else", "end",
			"exists", "from", "group", "having", "in", "index", "inner", "insert", "into", "is", "join", "left", "like", "limit", "not",
			"null", "offset", "on", "or", "order", "outer", "primary", "key", "references", "right", "select", "set", "table", "then",
			"union", "update", "values", "when", "where", "with", "returning", "default", "constraint", "foreign", "unique",
		},
		Builtins: []string{
			"avg", "coalesce", "count", "max", "min", "now", "sum", "lower", "upper", "length", "bigint", "boolean", "date", "integer",
			"int", "serial", "text", "timestamp", "uuid", "varchar", "jsonb",
		},
		Booleans:                []string{"true", "false"},
		CaseInsensitiveKeywords: true,
		Operators:               "+-*/%=<>!|",
		Punctuation:             "()[];,.",
	}
}

func css() Language {
	return Language{
		ID:            "css",
		Aliases:       []string{"scss", "less"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Quotes:        "\"'",
		Keywords:      []string{"important", "inherit", "initial", "unset", "none", "auto"},
		Builtins:      []string{"rgb", "rgba", "hsl", "hsla", "var", "calc", "url", "min", "max", "clamp"},
		IdentDash:     true,
		Operators:     ">+~*=!",
		Punctuation:   "(){};:,.#",
	}
}

func yaml() Language {
	return Language{
		ID:           "yaml",
		Aliases:      []string{"yml"},
		LineComments: []string{"#"},
		Quotes:       "\"'",
		Keywords:     []string{"null"},
		Booleans:     []string{"true", "false", "yes", "no", "on", "off"},
		IdentDash:    true,
		Operators:    "|>&*!",
		Punctuation:  ":-[]{},",
		NoFunctions:  true,
	}
}
