package main

import (
	"strings"

	"github.com/pterm/pterm"

	"lox/internal"
)

// printAST renders a parsed program as a pterm tree, grounded on trepl's
// indentedListFrom/pterm.DefaultTree usage
// (npillmayer-gorgo/terex/terexlang/trepl/repl.go), fed from this
// package's own s-expression dump (internal.PrintAST) rather than a
// GCons list.
func printAST(stmts []internal.Stmt) {
	text := internal.PrintAST(stmts)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			continue
		}
		root := sexprTree(line)
		pterm.DefaultTree.WithRoot(root).Render()
	}
}

// sexprTree turns one top-level s-expression line into a single-node
// pterm.TreeNode; nested parens are rendered as nested children by
// recursively peeling off balanced groups, matching the shape of the
// AST closely enough for a debug dump without a full tokenizer.
func sexprTree(s string) pterm.TreeNode {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return pterm.TreeNode{Text: s}
	}
	inner := s[1 : len(s)-1]
	head, rest := splitHead(inner)
	node := pterm.TreeNode{Text: head}
	for _, child := range splitTopLevel(rest) {
		node.Children = append(node.Children, sexprTree(child))
	}
	return node
}

func splitHead(s string) (head, rest string) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// splitTopLevel splits s on spaces that are not inside a balanced
// parenthesized group or a quoted string.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	inString := false
	start := 0
	for i, r := range s {
		switch r {
		case '"':
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString {
				depth--
			}
		case ' ':
			if depth == 0 && !inString {
				if i > start {
					parts = append(parts, s[start:i])
				}
				start = i + 1
			}
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}
