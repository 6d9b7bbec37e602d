package detectlang

import (
	"testing"

	"github.com/codalotl/annotext/internal/tokenize"
	"github.com/stretchr/testify/assert"
)

func TestFromPath(t *testing.T) {
	tcs := []struct {
		path string
		lang string
	}{
		{path: "main.go", lang: "go"},
		{path: "/a/b/handler.PY", lang: "python"},
		{path: "lib.rs", lang: "rust"},
		{path: "component.tsx", lang: "javascript"},
		{path: "config.yml", lang: "yaml"},
		{path: "styles/site.scss", lang: "css"},
		{path: "schema.sql", lang: "sql"},
		{path: "install.sh", lang: "bash"},
		{path: "data.json", lang: "json"},
		{path: "go.mod", lang: "go"},
		{path: "/home/me/.bashrc", lang: "bash"},
		{path: "README.md", lang: Unknown},
		{path: "Makefile", lang: Unknown},
		{path: "", lang: Unknown},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.lang, FromPath(tc.path), tc.path)
	}
}

func TestFromShebang(t *testing.T) {
	tcs := map[string]string{
		"#!/bin/bash\necho hi":                 "bash",
		"#!/bin/sh":                            "bash",
		"#!/usr/bin/env python3\nprint(1)":     "python",
		"#!/usr/bin/env -S node --no-warnings": "javascript",
		"#!/usr/bin/python3.11":                "python",
		"#!/usr/bin/env":                       Unknown,
		"#!":                                   Unknown,
		"#!/usr/bin/perl":                      Unknown,
		"echo hi":                              Unknown,
		"":                                     Unknown,
	}
	for content, lang := range tcs {
		assert.Equal(t, lang, FromShebang([]byte(content)), content)
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, "go", Detect("x.go", []byte("#!/bin/bash")))
	assert.Equal(t, "bash", Detect("deploy", []byte("#!/bin/bash\n")))
	assert.Equal(t, Unknown, Detect("deploy", []byte("plain")))
}

// Every detected language must be one the tokenizer knows, or detection is pointless.
func TestDetectedLanguagesAreSupported(t *testing.T) {
	for ext, lang := range extToLang {
		assert.True(t, tokenize.DefaultRegistry.Supports(lang), ext)
	}
	for name, lang := range nameToLang {
		assert.True(t, tokenize.DefaultRegistry.Supports(lang), name)
	}
	for interp, lang := range interpreters {
		assert.True(t, tokenize.DefaultRegistry.Supports(lang), interp)
	}
}
