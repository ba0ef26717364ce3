package internal

import "fmt"

// PrintAST renders stmts as parenthesized s-expressions, grounded on the
// teacher's stringVisitor (internal/reader.go), retargeted at this
// package's node set and used to back the CLI's -ast debug flag.
func PrintAST(stmts []Stmt) string {
	v := astPrinter{}
	out := ""
	for _, stmt := range stmts {
		out += fmt.Sprintf("%v\n", stmt.accept(v))
	}
	return out
}

type astPrinter struct{}

func (v astPrinter) visitExpressionStmt(stmt *ExpressionStmt) R {
	return stmt.Expression.accept(v)
}

func (v astPrinter) visitPrintStmt(stmt *PrintStmt) R {
	return fmt.Sprintf("(print %v)", stmt.Expression.accept(v))
}

func (v astPrinter) visitVarStmt(stmt *VarStmt) R {
	if stmt.Initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.Name.Lexeme)
	}
	return fmt.Sprintf("(var %s %v)", stmt.Name.Lexeme, stmt.Initializer.accept(v))
}

func (v astPrinter) visitBlockStmt(stmt *BlockStmt) R {
	out := "(scope"
	for _, s := range stmt.Statements {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitIfStmt(stmt *IfStmt) R {
	out := fmt.Sprintf("(if %v %v", stmt.Condition.accept(v), stmt.ThenBranch.accept(v))
	if stmt.ElseBranch != nil {
		out += fmt.Sprintf(" %v", stmt.ElseBranch.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitWhileStmt(stmt *WhileStmt) R {
	if stmt.Increment != nil {
		return fmt.Sprintf("(while %v %v %v)", stmt.Condition.accept(v), stmt.Body.accept(v), stmt.Increment.accept(v))
	}
	return fmt.Sprintf("(while %v %v)", stmt.Condition.accept(v), stmt.Body.accept(v))
}

func (v astPrinter) visitFunctionStmt(stmt *FunctionStmt) R {
	out := "(fun " + stmt.Name.Lexeme + " ("
	for i, param := range stmt.Params {
		out += param.Lexeme
		if i < len(stmt.Params)-1 {
			out += ", "
		}
	}
	out += ")"
	for _, s := range stmt.Body {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitReturnStmt(stmt *ReturnStmt) R {
	if stmt.Value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %v)", stmt.Value.accept(v))
}

func (v astPrinter) visitBreakStmt(stmt *BreakStmt) R {
	return "(break)"
}

func (v astPrinter) visitContinueStmt(stmt *ContinueStmt) R {
	return "(continue)"
}

func (v astPrinter) visitClassStmt(stmt *ClassStmt) R {
	out := "(class " + stmt.Name.Lexeme
	for _, m := range stmt.Methods {
		out += fmt.Sprintf(" %v", m.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitLiteralExpr(expr *LiteralExpr) R {
	if s, ok := expr.Value.(string); ok {
		return "\"" + s + "\""
	}
	if expr.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value)
}

func (v astPrinter) visitGroupingExpr(expr *GroupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.Expression.accept(v))
}

func (v astPrinter) visitUnaryExpr(expr *UnaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.Operator.Lexeme, expr.Right.accept(v))
}

func (v astPrinter) visitBinaryExpr(expr *BinaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.Operator.Lexeme, expr.Left.accept(v), expr.Right.accept(v))
}

func (v astPrinter) visitLogicalExpr(expr *LogicalExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.Operator.Lexeme, expr.Left.accept(v), expr.Right.accept(v))
}

func (v astPrinter) visitTernaryExpr(expr *TernaryExpr) R {
	return fmt.Sprintf("(?: %v %v %v)", expr.Cond.accept(v), expr.TrueExpr.accept(v), expr.FalseExpr.accept(v))
}

func (v astPrinter) visitVariableExpr(expr *VariableExpr) R {
	return expr.Name.Lexeme
}

func (v astPrinter) visitAssignExpr(expr *AssignExpr) R {
	return fmt.Sprintf("(set %s %v)", expr.Name.Lexeme, expr.Value.accept(v))
}

func (v astPrinter) visitCallExpr(expr *CallExpr) R {
	out := fmt.Sprintf("(call %v", expr.Callee.accept(v))
	for _, arg := range expr.Arguments {
		out += fmt.Sprintf(" %v", arg.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitGetExpr(expr *GetExpr) R {
	return fmt.Sprintf("(get %v %s)", expr.Object.accept(v), expr.Name.Lexeme)
}

func (v astPrinter) visitSetExpr(expr *SetExpr) R {
	return fmt.Sprintf("(set-prop %v %s %v)", expr.Object.accept(v), expr.Name.Lexeme, expr.Value.accept(v))
}

func (v astPrinter) visitThisExpr(expr *ThisExpr) R {
	return "this"
}
