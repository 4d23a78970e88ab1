package pt_test

import (
	"testing"

	"github.com/solgo/solpt/pt"
)

func TestIfStatementToDoc(t *testing.T) {
	stmt := pt.IfStatement{
		Cond: pt.VariableExpression{Name: id("ok")},
		Body: pt.BlockStatement{Stmts: []pt.Statement{
			pt.ReturnStatement{},
		}},
	}
	want := "if (ok) {\n    return;\n}"
	if got := pt.MustDisplay(stmt); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIfElseStatementToDoc(t *testing.T) {
	stmt := pt.IfStatement{
		Cond: pt.VariableExpression{Name: id("ok")},
		Body: pt.BlockStatement{Stmts: []pt.Statement{pt.BreakStatement{}}},
		ElseBranch: pt.BlockStatement{Stmts: []pt.Statement{pt.ContinueStatement{}}},
	}
	want := "if (ok) {\n    break;\n} else {\n    continue;\n}"
	if got := pt.MustDisplay(stmt); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestForStatementWithEmptyClauses(t *testing.T) {
	stmt := pt.ForStatement{
		Body: pt.BlockStatement{},
	}
	want := "for (; ; ) {}"
	if got := pt.MustDisplay(stmt); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitStatementToDoc(t *testing.T) {
	stmt := pt.EmitStatement{
		Event: pt.VariableExpression{Name: id("Transfer")},
		Args: []pt.Expression{
			pt.VariableExpression{Name: id("from")},
			pt.VariableExpression{Name: id("to")},
		},
	}
	want := "emit Transfer(from, to);"
	if got := pt.MustDisplay(stmt); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAssemblyStatementUnsupported(t *testing.T) {
	stmt := pt.AssemblyStatement{Dialect: "evmasm"}
	if _, err := pt.Display(stmt, pt.DefaultWidth); err == nil {
		t.Fatal("expected an error for an assembly statement")
	}
}

func TestTryStatementModeledButUnsupportedByPrinter(t *testing.T) {
	stmt := pt.TryStatement{
		Expr: pt.FunctionCallExpression{Callee: pt.VariableExpression{Name: id("f")}},
		Body: pt.BlockStatement{},
		Catches: []pt.CatchClause{
			{Kind: pt.CatchSimple, Body: pt.BlockStatement{}},
		},
	}
	// The full shape is constructible and walkable even though the
	// printer refuses it.
	if len(stmt.Catches) != 1 {
		t.Fatal("expected one catch clause")
	}
	if _, err := pt.Display(stmt, pt.DefaultWidth); err == nil {
		t.Fatal("expected an error for a try statement")
	}
}

func TestStatementEqualIgnoresLocation(t *testing.T) {
	a := pt.ReturnStatement{Location: pt.NewFileLoc(0, 0, 10)}
	b := pt.ReturnStatement{Location: pt.Codegen}
	if !pt.StatementEqual(a, b) {
		t.Fatal("expected equal ignoring location")
	}

	c := pt.ReturnStatement{Location: pt.Codegen, Value: pt.VariableExpression{Name: id("x")}}
	if pt.StatementEqual(a, c) {
		t.Fatal("expected different return values to compare unequal")
	}
}
