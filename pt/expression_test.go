package pt_test

import (
	"testing"

	"github.com/solgo/solpt/pt"
)

func id(name string) pt.Identifier {
	return pt.Identifier{Location: pt.NewFileLoc(0, 0, len(name)), Name: name}
}

func TestBinaryExpressionToDoc(t *testing.T) {
	tests := []struct {
		name string
		expr pt.Expression
		want string
	}{
		{
			name: "add",
			expr: pt.BinaryExpression{
				Op:   pt.OpAdd,
				Left: pt.VariableExpression{Name: id("a")},
				Right: pt.VariableExpression{Name: id("b")},
			},
			want: "a + b",
		},
		{
			name: "power",
			expr: pt.BinaryExpression{
				Op:   pt.OpPower,
				Left: pt.NumberLiteralExpression{Value: "2"},
				Right: pt.NumberLiteralExpression{Value: "8"},
			},
			want: "2 ** 8",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pt.MustDisplay(tc.expr)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnaryExpressionPrefixAndPostfix(t *testing.T) {
	operand := pt.VariableExpression{Name: id("x")}

	pre := pt.UnaryExpression{Op: pt.OpPreIncrement, Operand: operand}
	if got := pt.MustDisplay(pre); got != "++x" {
		t.Fatalf("prefix: got %q", got)
	}

	post := pt.UnaryExpression{Op: pt.OpPostIncrement, Operand: operand}
	if got := pt.MustDisplay(post); got != "x++" {
		t.Fatalf("postfix: got %q", got)
	}
}

func TestRemoveParenthesisPeelsOneLayer(t *testing.T) {
	inner := pt.VariableExpression{Name: id("a")}
	once := pt.ParenthesisExpression{Inner: inner}
	twice := pt.ParenthesisExpression{Inner: once}

	got := pt.RemoveParenthesis(twice)
	if _, stillParen := got.(pt.ParenthesisExpression); !stillParen {
		t.Fatalf("expected one layer to remain, got %#v", got)
	}

	got = pt.RemoveParenthesis(got)
	if !pt.ExpressionEqual(got, inner) {
		t.Fatalf("expected %#v, got %#v", inner, got)
	}

	// Applying RemoveParenthesis to a non-parenthesised expression is a
	// no-op.
	if again := pt.RemoveParenthesis(got); !pt.ExpressionEqual(again, inner) {
		t.Fatalf("expected no-op, got %#v", again)
	}
}

func TestExpressionEqualIgnoresLocation(t *testing.T) {
	a := pt.BinaryExpression{
		Location: pt.NewFileLoc(0, 0, 10),
		Op:       pt.OpAdd,
		Left:     pt.VariableExpression{Name: id("a")},
		Right:    pt.VariableExpression{Name: id("b")},
	}
	b := pt.BinaryExpression{
		Location: pt.NewFileLoc(1, 100, 200),
		Op:       pt.OpAdd,
		Left:     pt.VariableExpression{Name: pt.Identifier{Location: pt.Codegen, Name: "a"}},
		Right:    pt.VariableExpression{Name: pt.Identifier{Location: pt.Codegen, Name: "b"}},
	}
	if !pt.ExpressionEqual(a, b) {
		t.Fatalf("expected equal ignoring location")
	}

	c := b
	c.Op = pt.OpSubtract
	if pt.ExpressionEqual(a, c) {
		t.Fatalf("expected different operators to compare unequal")
	}
}

func TestArraySliceExpressionUnsupported(t *testing.T) {
	e := pt.ArraySliceExpression{
		Base: pt.VariableExpression{Name: id("a")},
		From: pt.NumberLiteralExpression{Value: "0"},
		To:   pt.NumberLiteralExpression{Value: "1"},
	}
	if _, err := pt.Display(e, pt.DefaultWidth); err == nil {
		t.Fatal("expected an error for an array slice expression")
	}
}
