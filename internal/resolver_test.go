package internal

import "testing"

func TestResolverHopCounts(t *testing.T) {
	reporter := &testReporter{}
	source := `
	var a = "global";
	{
		var b = "block";
		{
			print a;
			print b;
		}
	}
	`
	tokens := NewScanner(source, reporter).ScanTokens()
	stmts := NewParser(tokens, reporter).Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %v", reporter.errors)
	}

	resolver := NewResolver(reporter)
	hops := resolver.Resolve(stmts)
	if reporter.HadError() {
		t.Fatalf("unexpected resolve errors: %v", reporter.errors)
	}

	outerBlock := stmts[1].(*BlockStmt)
	innerBlock := outerBlock.Statements[1].(*BlockStmt)
	printA := innerBlock.Statements[0].(*PrintStmt).Expression.(*VariableExpr)
	printB := innerBlock.Statements[1].(*PrintStmt).Expression.(*VariableExpr)

	// 'a' is global: absent from the hop map entirely.
	if _, ok := hops[printA]; ok {
		t.Errorf("expected 'a' to be unresolved (global), got a hop entry")
	}
	// 'b' is declared one block out from where it's read.
	if hop, ok := hops[printB]; !ok || hop != 1 {
		t.Errorf("expected 'b' at hop 1, got hop=%d ok=%v", hop, ok)
	}
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	checkCompileError(t, `
	fun f() {
		print this;
	}
	`, "Can't use 'this' outside of a class.")
}

func TestResolverAllowsRecursion(t *testing.T) {
	checkOutput(t, `
	fun fact(n) {
		if (n <= 1) return 1;
		return n * fact(n - 1);
	}
	print fact(5);
	`, "120\n")
}

func TestResolverInitVsMethodKind(t *testing.T) {
	checkCompileError(t, `
	class A {
		init() {
			return 5;
		}
	}
	`, "Can't return a value from an initializer.")

	checkOutput(t, `
	class A {
		value() {
			return 5;
		}
	}
	print A().value();
	`, "5\n")
}
