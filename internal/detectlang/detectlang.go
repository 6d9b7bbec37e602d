// Package detectlang picks a tokenizer language id for a file from its name, and failing that, from a shebang line.
package detectlang

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Unknown is returned when no language is detected. The tokenizer treats it like any unsupported id.
const Unknown = ""

var extToLang = map[string]string{
	".go":    "go",
	".py":    "python",
	".pyw":   "python",
	".rs":    "rust",
	".js":    "javascript",
	".mjs":   "javascript",
	".cjs":   "javascript",
	".jsx":   "javascript",
	".ts":    "javascript",
	".tsx":   "javascript",
	".json":  "json",
	".jsonc": "json",
	".sh":    "bash",
	".bash":  "bash",
	".zsh":   "bash",
	".sql":   "sql",
	".css":   "css",
	".scss":  "css",
	".less":  "css",
	".yaml":  "yaml",
	".yml":   "yaml",
}

var nameToLang = map[string]string{
	".bashrc":       "bash",
	".zshrc":        "bash",
	".profile":      "bash",
	"go.mod":        "go",
	"go.work":       "go",
	"package.json":  "json",
	"tsconfig.json": "json",
}

// interpreters maps a shebang interpreter's base name (version suffixes stripped) to a language id.
var interpreters = map[string]string{
	"sh":     "bash",
	"bash":   "bash",
	"zsh":    "bash",
	"dash":   "bash",
	"python": "python",
	"node":   "javascript",
	"deno":   "javascript",
	"bun":    "javascript",
}

// FromPath returns the language id for path's file name or extension (case-insensitive), or Unknown.
func FromPath(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if lang, ok := nameToLang[base]; ok {
		return lang
	}
	return extToLang[strings.ToLower(filepath.Ext(base))]
}

// FromShebang returns the language id named by a "#!" first line of content, or Unknown. Both "#!/bin/bash" and "#!/usr/bin/env python3" forms are recognized.
func FromShebang(content []byte) string {
	if !bytes.HasPrefix(content, []byte("#!")) {
		return Unknown
	}
	line := content[2:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return Unknown
	}

	interp := filepath.Base(fields[0])
	if interp == "env" {
		args := fields[1:]
		for len(args) > 0 && strings.HasPrefix(args[0], "-") {
			args = args[1:]
		}
		if len(args) == 0 {
			return Unknown
		}
		interp = filepath.Base(args[0])
	}
	interp = strings.TrimRight(interp, "0123456789.")
	return interpreters[interp]
}

// Detect returns FromPath(path), falling back to FromShebang(content).
func Detect(path string, content []byte) string {
	if lang := FromPath(path); lang != Unknown {
		return lang
	}
	return FromShebang(content)
}
