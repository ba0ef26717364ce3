package internal

// functionKind tracks what kind of function body the Resolver is
// currently walking, so `return` can be checked for legality and `init`
// can reject a value-returning `return`.
type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

// classKind tracks whether the Resolver is currently inside a class body,
// so `this` can be checked for legality.
type classKind int

const (
	ckNone classKind = iota
	ckClass
)

// Resolver is a static pre-pass over the AST that computes, for every
// Variable/Assign/This node, how many enclosing scopes to skip to find its
// binding (the hop count the Interpreter later uses to go straight to the
// right environment instead of searching the chain by name).
type Resolver struct {
	reporter Reporter

	scopes []map[string]bool
	hops   map[Expr]int

	currentFunction functionKind
	currentClass    classKind
}

// NewResolver builds a Resolver reporting static errors to r.
func NewResolver(r Reporter) *Resolver {
	return &Resolver{reporter: r, hops: make(map[Expr]int)}
}

// Resolve walks every statement and returns the hop map the Interpreter
// should be constructed with. An expression node absent from the map is a
// global: the Interpreter falls back to dynamic lookup through the chain
// to globals.
func (r *Resolver) Resolve(stmts []Stmt) map[Expr]int {
	r.resolveStmts(stmts)
	return r.hops
}

func (r *Resolver) resolveStmts(stmts []Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s Stmt) {
	s.accept(r)
}

func (r *Resolver) resolveExpr(e Expr) {
	e.accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-defined in the innermost
// scope, so a variable can't be used while its own initializer is being
// resolved. Re-declaring a name already declared in the same local scope
// is a static error; at global scope (no open scopes) it is allowed.
func (r *Resolver) declare(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.TokenError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr Expr, name Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.hops[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: leave it out of the hop map, the
	// Interpreter treats that as a reference to globals.
}

func (r *Resolver) resolveFunction(fn *FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// Statement visitors.

func (r *Resolver) visitBlockStmt(stmt *BlockStmt) R {
	r.beginScope()
	r.resolveStmts(stmt.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) visitVarStmt(stmt *VarStmt) R {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil
}

func (r *Resolver) visitFunctionStmt(stmt *FunctionStmt) R {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	r.resolveFunction(stmt, fkFunction)
	return nil
}

func (r *Resolver) visitExpressionStmt(stmt *ExpressionStmt) R {
	r.resolveExpr(stmt.Expression)
	return nil
}

func (r *Resolver) visitIfStmt(stmt *IfStmt) R {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil
}

func (r *Resolver) visitPrintStmt(stmt *PrintStmt) R {
	r.resolveExpr(stmt.Expression)
	return nil
}

func (r *Resolver) visitReturnStmt(stmt *ReturnStmt) R {
	if r.currentFunction == fkNone {
		r.reporter.TokenError(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		if r.currentFunction == fkInitializer {
			r.reporter.TokenError(stmt.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.Value)
	}
	return nil
}

func (r *Resolver) visitBreakStmt(stmt *BreakStmt) R {
	return nil
}

func (r *Resolver) visitContinueStmt(stmt *ContinueStmt) R {
	return nil
}

func (r *Resolver) visitWhileStmt(stmt *WhileStmt) R {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	if stmt.Increment != nil {
		r.resolveStmt(stmt.Increment)
	}
	return nil
}

func (r *Resolver) visitClassStmt(stmt *ClassStmt) R {
	r.declare(stmt.Name)
	r.define(stmt.Name)

	enclosingClass := r.currentClass
	r.currentClass = ckClass

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		declaration := fkMethod
		if method.Name.Lexeme == "init" {
			declaration = fkInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()
	r.currentClass = enclosingClass
	return nil
}

// Expression visitors.

func (r *Resolver) visitVariableExpr(expr *VariableExpr) R {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && !defined {
			r.reporter.TokenError(expr.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name)
	return nil
}

func (r *Resolver) visitAssignExpr(expr *AssignExpr) R {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name)
	return nil
}

func (r *Resolver) visitThisExpr(expr *ThisExpr) R {
	if r.currentClass == ckNone {
		r.reporter.TokenError(expr.Keyword, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(expr, expr.Keyword)
	return nil
}

func (r *Resolver) visitBinaryExpr(expr *BinaryExpr) R {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) visitLogicalExpr(expr *LogicalExpr) R {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) visitTernaryExpr(expr *TernaryExpr) R {
	r.resolveExpr(expr.Cond)
	r.resolveExpr(expr.TrueExpr)
	r.resolveExpr(expr.FalseExpr)
	return nil
}

func (r *Resolver) visitUnaryExpr(expr *UnaryExpr) R {
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) visitCallExpr(expr *CallExpr) R {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *Resolver) visitGetExpr(expr *GetExpr) R {
	r.resolveExpr(expr.Object)
	return nil
}

func (r *Resolver) visitSetExpr(expr *SetExpr) R {
	r.resolveExpr(expr.Value)
	r.resolveExpr(expr.Object)
	return nil
}

func (r *Resolver) visitGroupingExpr(expr *GroupingExpr) R {
	r.resolveExpr(expr.Expression)
	return nil
}

func (r *Resolver) visitLiteralExpr(expr *LiteralExpr) R {
	return nil
}
