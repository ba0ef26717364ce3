package internal

const maxArgs = 255

// Parser is a recursive-descent parser with statement-boundary error
// recovery, grounded on the teacher's parser.go dispatch shape
// (match/check/advance/consume helpers, a panic-based parseError used only
// to unwind to the nearest synchronization point).
type Parser struct {
	tokens   []Token
	current  int
	reporter Reporter

	loopDepth int
}

// NewParser builds a Parser over tokens, reporting syntax errors to r.
func NewParser(tokens []Token, r Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: r}
}

// Parse consumes the whole token stream, returning every statement it
// could recover a parse for. A statement that fails to parse is dropped
// and parsing resumes at the next synchronization point (spec.md §4.2).
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if s := p.declarationSafe(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseSingleExpression implements the REPL's single-expression mode: it
// succeeds only if the entire remaining token stream is one expression
// followed by EOF.
func (p *Parser) ParseSingleExpression() (expr Expr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				expr, ok = nil, false
				return
			}
			panic(r)
		}
	}()
	e := p.expression()
	if !p.isAtEnd() {
		return nil, false
	}
	return e, true
}

func (p *Parser) declarationSafe() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

func (p *Parser) declaration() Stmt {
	if p.match(ClassKeyword) {
		return p.classDeclaration()
	}
	if p.match(Fun) {
		return p.function("function")
	}
	if p.match(Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) classDeclaration() Stmt {
	name := p.consume(Identifier, "Expect class name.")
	p.consume(LeftBrace, "Expect '{' before class body.")

	var methods []*FunctionStmt
	for !p.check(RightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(RightBrace, "Expect '}' after class body.")
	return &ClassStmt{Name: name, Methods: methods}
}

func (p *Parser) function(kind string) *FunctionStmt {
	name := p.consume(Identifier, "Expect "+kind+" name.")
	p.consume(LeftParen, "Expect '(' after "+kind+" name.")

	var params []Token
	if !p.check(RightParen) {
		for {
			if len(params) >= maxArgs {
				p.reporter.TokenError(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(Identifier, "Expect parameter name."))
			if !p.match(Comma) {
				break
			}
		}
	}
	p.consume(RightParen, "Expect ')' after parameters.")

	p.consume(LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(Identifier, "Expect variable name.")

	var initializer Expr
	if p.match(Equal) {
		initializer = p.expression()
	}

	p.consume(Semicolon, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	if p.match(For) {
		return p.forStatement()
	}
	if p.match(If) {
		return p.ifStatement()
	}
	if p.match(Print) {
		return p.printStatement()
	}
	if p.match(Return) {
		return p.returnStatement()
	}
	if p.match(Break) {
		return p.breakStatement()
	}
	if p.match(Continue) {
		return p.continueStatement()
	}
	if p.match(While) {
		return p.whileStatement()
	}
	if p.match(LeftBrace) {
		return &BlockStmt{Statements: p.block()}
	}
	return p.expressionStatement()
}

// forStatement desugars `for (init; cond; incr) body` at parse time per
// spec.md §4.2, rather than giving the interpreter a dedicated for-node.
func (p *Parser) forStatement() Stmt {
	p.consume(LeftParen, "Expect '(' after 'for'.")

	var initializer Stmt
	if p.match(Semicolon) {
		initializer = nil
	} else if p.match(Var) {
		initializer = p.varDeclaration()
	} else {
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(Semicolon) {
		condition = p.expression()
	}
	p.consume(Semicolon, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(RightParen) {
		increment = p.expression()
	}
	p.consume(RightParen, "Expect ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	var incrementStmt Stmt
	if increment != nil {
		incrementStmt = &ExpressionStmt{Expression: increment}
	}

	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	result := Stmt(&WhileStmt{Condition: condition, Body: body, Increment: incrementStmt})

	if initializer != nil {
		result = &BlockStmt{Statements: []Stmt{initializer, result}}
	}
	return result
}

func (p *Parser) ifStatement() Stmt {
	p.consume(LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(Else) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(Semicolon, "Expect ';' after value.")
	return &PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(Semicolon) {
		value = p.expression()
	}
	p.consume(Semicolon, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStatement() Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.reporter.TokenError(keyword, "Can't use 'break' outside of a loop.")
	}
	p.consume(Semicolon, "Expect ';' after 'break'.")
	return &BreakStmt{Keyword: keyword}
}

func (p *Parser) continueStatement() Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.reporter.TokenError(keyword, "Can't use 'continue' outside of a loop.")
	}
	p.consume(Semicolon, "Expect ';' after 'continue'.")
	return &ContinueStmt{Keyword: keyword}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(RightParen, "Expect ')' after condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(RightBrace) && !p.isAtEnd() {
		if s := p.declarationSafe(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(Semicolon, "Expect ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}

func (p *Parser) expression() Expr {
	return p.comma()
}

func (p *Parser) comma() Expr {
	expr := p.ternary()
	for p.match(Comma) {
		operator := p.previous()
		right := p.ternary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// ternary implements the right-nested "A ? B : C ? D : E" shape: each
// subsequent "? :" group attaches under the previous group's false
// branch instead of stacking left-associatively.
func (p *Parser) ternary() Expr {
	expr := p.assignment()
	if !p.match(Question) {
		return expr
	}

	trueExpr := p.assignment()
	p.consume(Colon, "Expect ':' after then-branch of ternary expression.")
	falseExpr := p.assignment()

	node := &TernaryExpr{Cond: expr, TrueExpr: trueExpr, FalseExpr: falseExpr}
	tail := node
	for p.match(Question) {
		nextTrue := p.assignment()
		p.consume(Colon, "Expect ':' after then-branch of ternary expression.")
		nextFalse := p.assignment()
		nested := &TernaryExpr{Cond: tail.FalseExpr, TrueExpr: nextTrue, FalseExpr: nextFalse}
		tail.FalseExpr = nested
		tail = nested
	}
	return node
}

// assignment binds tighter than ternary, so a ternary's branches are
// parsed by calling assignment, not ternary — this is what makes
// `a ? b : c = d` parse as `a ? b : (c = d)`.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(Equal) {
		equals := p.previous()
		value := p.assignment()

		if varExpr, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: varExpr.Name, Value: value}
		}
		if getExpr, ok := expr.(*GetExpr); ok {
			return &SetExpr{Object: getExpr.Object, Name: getExpr.Name, Value: value}
		}

		p.reporter.TokenError(equals, "Invalid assignment target.")
		return expr
	}

	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(Or) {
		operator := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(And) {
		operator := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(EqualEqual, BangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(Less, LessEqual, Greater, GreaterEqual) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(Minus, Plus) {
		operator := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(Slash, Star) {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(Minus, Bang) {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(LeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(Dot) {
			name := p.consume(Identifier, "Expect property name after '.'.")
			expr = &GetExpr{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr
}

// finishCall parses arguments via ternary, not expression — commas
// inside a call are argument separators, never the comma operator
// (spec.md §9's resolved open question).
func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(RightParen) {
		for {
			if len(args) >= maxArgs {
				p.reporter.TokenError(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.ternary())
			if !p.match(Comma) {
				break
			}
		}
	}
	paren := p.consume(RightParen, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() Expr {
	if p.match(False) {
		return &LiteralExpr{Value: false}
	}
	if p.match(True) {
		return &LiteralExpr{Value: true}
	}
	if p.match(Nil) {
		return &LiteralExpr{Value: nil}
	}
	if p.match(Number, String) {
		return &LiteralExpr{Value: p.previous().Literal}
	}
	if p.match(This) {
		return &ThisExpr{Keyword: p.previous()}
	}
	if p.match(Identifier) {
		return &VariableExpr{Name: p.previous()}
	}
	if p.match(LeftParen) {
		expr := p.expression()
		p.consume(RightParen, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	}
	panic(p.error(p.peek(), "Expect expression."))
}

func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t TokenType, message string) Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) error(tok Token, message string) parseError {
	p.reporter.TokenError(tok, message)
	return parseError{}
}

// synchronize discards tokens until a statement boundary: just past a
// semicolon, or right before a keyword that starts a new declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == Semicolon {
			return
		}
		switch p.peek().Type {
		case ClassKeyword, Fun, Var, For, If, While, Print, Return:
			return
		}
		p.advance()
	}
}
