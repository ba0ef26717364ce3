// genast prints the boilerplate visitor-pattern struct set for one of the
// interpreter's two node families. It is developer tooling, not part of
// the build: copy its output into internal/expr.go or internal/stmt.go by
// hand when the node set changes.
//
//go:generate go run . Expr
//go:generate go run . Stmt
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genast <Expr|Stmt>")
		os.Exit(1)
	}

	var out string
	switch os.Args[1] {
	case "Expr":
		out = generateAst("Expr", []string{
			"Literal: Value interface{}",
			"Grouping: Expression Expr",
			"Unary: Operator Token, Right Expr",
			"Binary: Left Expr, Operator Token, Right Expr",
			"Logical: Left Expr, Operator Token, Right Expr",
			"Ternary: Cond Expr, TrueExpr Expr, FalseExpr Expr",
			"Variable: Name Token",
			"Assign: Name Token, Value Expr",
			"Call: Callee Expr, Paren Token, Arguments []Expr",
			"Get: Object Expr, Name Token",
			"Set: Object Expr, Name Token, Value Expr",
			"This: Keyword Token",
		})
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Expression: Expression Expr",
			"Print: Expression Expr",
			"Var: Name Token, Initializer Expr",
			"Block: Statements []Stmt",
			"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
			"While: Condition Expr, Body Stmt, Increment Stmt",
			"Function: Name Token, Params []Token, Body []Stmt",
			"Return: Keyword Token, Value Expr",
			"Break: Keyword Token",
			"Continue: Keyword Token",
			"Class: Name Token, Methods []*FunctionStmt",
		})
	default:
		fmt.Fprintln(os.Stderr, "usage: genast <Expr|Stmt>")
		os.Exit(1)
	}
	fmt.Println(out)
}

func generateAst(baseName string, types []string) string {
	out := "package internal\n\n"

	out += "type " + baseName + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"

	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		name := strings.TrimSpace(strings.Split(t, ":")[0])
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + name + baseName + ") R\n"
	}
	out += "}\n\n"

	for _, t := range types {
		fields := strings.SplitN(t, ":", 2)
		out += generateType(baseName, strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
	}

	return out
}

func generateType(baseName, name, fields string) string {
	structName := name + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"

	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"

	return out
}
