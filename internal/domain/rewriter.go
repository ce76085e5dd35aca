package domain

import (
	"regexp"
	"unicode/utf8"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// RewriteOptions configures a single rewrite call. The file kind is an
// explicit parameter so the rewriter never inspects file names, and there is
// no ambient mode state of any sort: two concurrent calls cannot observe
// each other.
type RewriteOptions struct {
	Table m.AliasTable
	Kind  m.FileKind
}

// Rewriter produces rewritten file contents from raw contents and an alias
// table. Implementations are pure: same input, same output.
type Rewriter interface {
	Rewrite(content []byte, opts RewriteOptions) m.RewriteResult
}

// Module specifiers live in a small set of syntactic positions. Matching is
// textual: the tool rewrites build output, it does not parse it.
var (
	// import defaults from "x"; import {a, b} from 'x'; export * from "x";
	// import type {T} from "x". The lazy middle class stops at statement
	// boundaries and quotes so one match never spans two statements.
	fromClauseRe = regexp.MustCompile(`(\b(?:import|export)\b[^'"` + "`" + `;]*?\bfrom\s*)(['"` + "`" + `])([^'"` + "`" + `]+)(['"` + "`" + `])`)

	// Bare side-effect imports: import "x".
	bareImportRe = regexp.MustCompile(`(\bimport\s*)(['"` + "`" + `])([^'"` + "`" + `]+)(['"` + "`" + `])`)

	// require("x") and dynamic import("x").
	callRe = regexp.MustCompile(`(\b(?:require|import)\s*\(\s*)(['"` + "`" + `])([^'"` + "`" + `]+)(['"` + "`" + `])(\s*\))`)

	// Declaration-file directives: /// <reference types="x" />. The keyword
	// is matched case-insensitively; the referenced name is not.
	referenceRe = regexp.MustCompile(`(?i)(///\s*<reference\s+types\s*=\s*")([^"]+)("\s*/>)`)
)

type rewriter struct{}

// NewRewriter creates the textual specifier rewriter.
func NewRewriter() Rewriter {
	return &rewriter{}
}

// Rewrite applies the alias table to every module specifier in content.
// Declaration files additionally get their type-reference directives
// rewritten by the same first-match-wins rule.
//
// Content that is not valid UTF-8 text yields no output; the caller skips
// the file and carries on.
func (r *rewriter) Rewrite(content []byte, opts RewriteOptions) m.RewriteResult {
	if !utf8.Valid(content) {
		return m.RewriteResult{OK: false}
	}

	original := string(content)
	text := original

	text = rewriteQuoted(fromClauseRe, text, opts.Table, 3)
	text = rewriteQuoted(bareImportRe, text, opts.Table, 3)
	text = rewriteQuoted(callRe, text, opts.Table, 3)

	if opts.Kind == m.DeclarationFile {
		text = rewriteQuoted(referenceRe, text, opts.Table, 2)
	}

	return m.RewriteResult{OK: true, Text: text, Changed: text != original}
}

// rewriteQuoted replaces the specifier capture group (specGroup) of every
// match of re, leaving all surrounding syntax exactly as it was.
func rewriteQuoted(re *regexp.Regexp, text string, table m.AliasTable, specGroup int) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		groups := re.FindStringSubmatchIndex(match)
		if groups == nil {
			return match
		}

		start, end := groups[2*specGroup], groups[2*specGroup+1]
		if start < 0 {
			return match
		}

		rewritten, ok := table.Apply(match[start:end])
		if !ok {
			return match
		}

		return match[:start] + rewritten + match[end:]
	})
}
