package internal

import (
	"fmt"
	"io"
	"os"
)

// Interpreter is the tree-walking evaluator, grounded on the teacher's
// interpreter.go visitor shape, extended with the hop map the Resolver
// produces and a break/continue contract the teacher doesn't need.
type Interpreter struct {
	globals  *Environment
	env      *Environment
	hops     map[Expr]int
	reporter Reporter

	// Out is where `print` writes, grounded on the teacher's printer
	// injection (RunSourceWithPrinter / testPrinter in exec_test.go) —
	// defaults to os.Stdout, swapped for a buffer in tests.
	Out io.Writer
}

// NewInterpreter builds an Interpreter with a fresh global environment
// populated by defineGlobals, and the given hop map from a Resolver pass.
func NewInterpreter(hops map[Expr]int, reporter Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	defineGlobals(globals)
	return &Interpreter{globals: globals, env: globals, hops: hops, reporter: reporter, Out: os.Stdout}
}

// SetHops lets the REPL rebuild the hop map for each new line while
// reusing the same Interpreter (and thus the same globals/env) across
// lines.
func (interp *Interpreter) SetHops(hops map[Expr]int) {
	interp.hops = hops
}

// Interpret runs a full program's statements, recovering a *RuntimeError
// panic at the top level and reporting it — spec.md §6's contract that a
// runtime error aborts the program but is reported, not a Go panic
// surfaced to the caller.
func (interp *Interpreter) Interpret(stmts []Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rtErr, ok := r.(*RuntimeError); ok {
				TraceStage("runtime-error", rtErr.Message)
				interp.reporter.RuntimeError(rtErr)
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range stmts {
		interp.execute(stmt)
	}
}

// InterpretExpression evaluates a single expression and returns its
// stringified value, for the REPL's single-expression echo mode. ok is
// false if evaluation panicked with a RuntimeError (already reported).
func (interp *Interpreter) InterpretExpression(expr Expr) (result string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if rtErr, isRt := r.(*RuntimeError); isRt {
				interp.reporter.RuntimeError(rtErr)
				result, ok = "", false
				return
			}
			panic(r)
		}
	}()
	value := interp.evaluate(expr)
	return stringify(value), true
}

func (interp *Interpreter) execute(stmt Stmt) {
	stmt.accept(interp)
}

func (interp *Interpreter) evaluate(expr Expr) interface{} {
	return expr.accept(interp)
}

// executeBlock runs stmts against env, restoring the interpreter's
// previous environment on the way out regardless of how execution left
// (normal fallthrough, return/break/continue panic, or runtime error).
func (interp *Interpreter) executeBlock(stmts []Stmt, env *Environment) {
	previous := interp.env
	defer func() { interp.env = previous }()
	interp.env = env
	for _, stmt := range stmts {
		interp.execute(stmt)
	}
}

func (interp *Interpreter) lookUpVariable(name Token, expr Expr) interface{} {
	if hop, ok := interp.hops[expr]; ok {
		return interp.env.GetAt(hop, name)
	}
	return interp.globals.Get(name)
}

// Statement visitors.

func (interp *Interpreter) visitExpressionStmt(stmt *ExpressionStmt) R {
	interp.evaluate(stmt.Expression)
	return nil
}

func (interp *Interpreter) visitPrintStmt(stmt *PrintStmt) R {
	value := interp.evaluate(stmt.Expression)
	fmt.Fprintln(interp.Out, stringify(value))
	return nil
}

func (interp *Interpreter) visitVarStmt(stmt *VarStmt) R {
	if stmt.Initializer == nil {
		interp.env.DefineUninitialized(stmt.Name.Lexeme)
		return nil
	}
	value := interp.evaluate(stmt.Initializer)
	interp.env.Define(stmt.Name.Lexeme, value)
	return nil
}

func (interp *Interpreter) visitBlockStmt(stmt *BlockStmt) R {
	interp.executeBlock(stmt.Statements, NewEnvironment(interp.env))
	return nil
}

func (interp *Interpreter) visitIfStmt(stmt *IfStmt) R {
	if isTruthy(interp.evaluate(stmt.Condition)) {
		interp.execute(stmt.ThenBranch)
	} else if stmt.ElseBranch != nil {
		interp.execute(stmt.ElseBranch)
	}
	return nil
}

func (interp *Interpreter) visitWhileStmt(stmt *WhileStmt) R {
	for isTruthy(interp.evaluate(stmt.Condition)) {
		if interp.runLoopBody(stmt.Body) {
			break
		}
		if stmt.Increment != nil {
			interp.execute(stmt.Increment)
		}
	}
	return nil
}

// runLoopBody executes a loop body, catching breakSignal/continueSignal.
// It reports whether the enclosing loop should stop entirely (true for
// break, false otherwise — including the continue and normal cases).
func (interp *Interpreter) runLoopBody(body Stmt) (shouldBreak bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				shouldBreak = true
				return
			case continueSignal:
				shouldBreak = false
				return
			default:
				panic(r)
			}
		}
	}()
	interp.execute(body)
	return false
}

func (interp *Interpreter) visitFunctionStmt(stmt *FunctionStmt) R {
	fn := NewFunction(stmt, interp.env, false)
	interp.env.Define(stmt.Name.Lexeme, fn)
	return nil
}

func (interp *Interpreter) visitReturnStmt(stmt *ReturnStmt) R {
	var value interface{}
	if stmt.Value != nil {
		value = interp.evaluate(stmt.Value)
	}
	panic(returnSignal{value: value})
}

func (interp *Interpreter) visitBreakStmt(stmt *BreakStmt) R {
	panic(breakSignal{})
}

func (interp *Interpreter) visitContinueStmt(stmt *ContinueStmt) R {
	panic(continueSignal{})
}

func (interp *Interpreter) visitClassStmt(stmt *ClassStmt) R {
	interp.env.Define(stmt.Name.Lexeme, nil)

	methods := make(map[string]*Function)
	for _, method := range stmt.Methods {
		fn := NewFunction(method, interp.env, method.Name.Lexeme == "init")
		methods[method.Name.Lexeme] = fn
	}

	class := NewClass(stmt.Name.Lexeme, methods)
	interp.env.Assign(stmt.Name, class)
	return nil
}

// Expression visitors.

func (interp *Interpreter) visitLiteralExpr(expr *LiteralExpr) R {
	return expr.Value
}

func (interp *Interpreter) visitGroupingExpr(expr *GroupingExpr) R {
	return interp.evaluate(expr.Expression)
}

func (interp *Interpreter) visitUnaryExpr(expr *UnaryExpr) R {
	right := interp.evaluate(expr.Right)
	switch expr.Operator.Type {
	case Minus:
		checkNumberOperand(expr.Operator, right)
		return -right.(float64)
	case Bang:
		return !isTruthy(right)
	}
	panic(&RuntimeError{Token: expr.Operator, Message: "Unknown unary operator."})
}

func (interp *Interpreter) visitBinaryExpr(expr *BinaryExpr) R {
	left := interp.evaluate(expr.Left)
	right := interp.evaluate(expr.Right)

	switch expr.Operator.Type {
	case Minus:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) - right.(float64)
	case Slash:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) / right.(float64)
	case Star:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) * right.(float64)
	case Plus:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs
			}
		}
		panic(&RuntimeError{Token: expr.Operator, Message: "Operands must be two numbers or two strings."})
	case Greater:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) > right.(float64)
	case GreaterEqual:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) >= right.(float64)
	case Less:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) < right.(float64)
	case LessEqual:
		checkNumberOperands(expr.Operator, left, right)
		return left.(float64) <= right.(float64)
	case BangEqual:
		return !isEqual(left, right)
	case EqualEqual:
		return isEqual(left, right)
	case Comma:
		return right
	}
	panic(&RuntimeError{Token: expr.Operator, Message: "Unknown binary operator."})
}

func (interp *Interpreter) visitLogicalExpr(expr *LogicalExpr) R {
	left := interp.evaluate(expr.Left)
	if expr.Operator.Type == Or {
		if isTruthy(left) {
			return left
		}
		return interp.evaluate(expr.Right)
	}
	// And
	if !isTruthy(left) {
		return left
	}
	return interp.evaluate(expr.Right)
}

func (interp *Interpreter) visitTernaryExpr(expr *TernaryExpr) R {
	if isTruthy(interp.evaluate(expr.Cond)) {
		return interp.evaluate(expr.TrueExpr)
	}
	return interp.evaluate(expr.FalseExpr)
}

func (interp *Interpreter) visitVariableExpr(expr *VariableExpr) R {
	return interp.lookUpVariable(expr.Name, expr)
}

func (interp *Interpreter) visitAssignExpr(expr *AssignExpr) R {
	value := interp.evaluate(expr.Value)
	if hop, ok := interp.hops[expr]; ok {
		interp.env.AssignAt(hop, expr.Name, value)
	} else {
		interp.globals.Assign(expr.Name, value)
	}
	return value
}

func (interp *Interpreter) visitCallExpr(expr *CallExpr) R {
	callee := interp.evaluate(expr.Callee)

	arguments := make([]interface{}, len(expr.Arguments))
	for i, arg := range expr.Arguments {
		arguments[i] = interp.evaluate(arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		panic(&RuntimeError{Token: expr.Paren, Message: "Can only call functions and classes."})
	}
	if len(arguments) != callable.Arity() {
		panic(&RuntimeError{Token: expr.Paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(arguments))})
	}
	return callable.Call(interp, arguments)
}

func (interp *Interpreter) visitGetExpr(expr *GetExpr) R {
	object := interp.evaluate(expr.Object)
	instance, ok := object.(*Instance)
	if !ok {
		panic(&RuntimeError{Token: expr.Name, Message: "Only instances have properties."})
	}
	return instance.Get(expr.Name)
}

func (interp *Interpreter) visitSetExpr(expr *SetExpr) R {
	object := interp.evaluate(expr.Object)
	instance, ok := object.(*Instance)
	if !ok {
		panic(&RuntimeError{Token: expr.Name, Message: "Only instances have fields."})
	}
	value := interp.evaluate(expr.Value)
	instance.Set(expr.Name, value)
	return value
}

func (interp *Interpreter) visitThisExpr(expr *ThisExpr) R {
	return interp.lookUpVariable(expr.Keyword, expr)
}

func checkNumberOperand(operator Token, operand interface{}) {
	if _, ok := operand.(float64); !ok {
		panic(&RuntimeError{Token: operator, Message: "Operand must be a number."})
	}
}

func checkNumberOperands(operator Token, left, right interface{}) {
	_, lok := left.(float64)
	_, rok := right.(float64)
	if !lok || !rok {
		panic(&RuntimeError{Token: operator, Message: "Operands must be numbers."})
	}
}
