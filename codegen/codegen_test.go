package codegen_test

import (
	"testing"

	"github.com/solgo/solpt/codegen"
	"github.com/solgo/solpt/pt"
)

func TestIdHasCodegenProvenance(t *testing.T) {
	got := codegen.Id("x")
	if got.Loc().Kind() != pt.LocCodegen {
		t.Fatalf("expected codegen provenance, got %v", got.Loc())
	}
	if got.Name != "x" {
		t.Fatalf("got name %q", got.Name)
	}
}

func TestFunctionDefRoundTripsToDoc(t *testing.T) {
	params := codegen.ParameterList([]codegen.NamedType{
		{Name: "to", Ty: pt.Type{Kind: pt.TypeAddress}},
		{Name: "amount", Ty: pt.Type{Kind: pt.TypeUint, Width: 256}},
	})
	body := codegen.BlockStmt([]pt.Statement{
		codegen.EmitStmt(codegen.VarExpr("Transfer"), codegen.ParamsToArgs(params)),
	})
	if blk, ok := body.(pt.BlockStatement); !ok || !blk.Unchecked {
		t.Fatalf("expected codegen.BlockStmt to produce an unchecked block, got %#v", body)
	}
	def := codegen.FunctionDef("transfer", params, []pt.Type{{Kind: pt.TypeBool}}, body)

	want := "function transfer(address to, uint256 amount) public returns (bool) unchecked {\n    emit Transfer(to, amount);\n}"
	if got := pt.MustDisplay(def); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEventDefFromParams(t *testing.T) {
	params := codegen.ParameterList([]codegen.NamedType{
		{Name: "from", Ty: pt.Type{Kind: pt.TypeAddress}},
		{Name: "value", Ty: pt.Type{Kind: pt.TypeUint, Width: 256}},
	})
	ev := codegen.EventDef("Deposit", params)
	want := "event Deposit(address from, uint256 value);"
	if got := pt.MustDisplay(ev); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParamsToEventParamsPanicsOnUnnamedParameter(t *testing.T) {
	unnamed := codegen.AnonParameterList([]pt.Type{{Kind: pt.TypeBool}})
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unnamed parameter")
		}
	}()
	codegen.ParamsToEventParams(unnamed)
}

func TestEveryCodegenNodeCarriesCodegenLocation(t *testing.T) {
	params := codegen.ParameterList([]codegen.NamedType{{Name: "x", Ty: pt.Type{Kind: pt.TypeBool}}})
	for _, slot := range params {
		if slot.Param.Loc().Kind() != pt.LocCodegen {
			t.Fatalf("parameter slot has non-codegen location: %v", slot.Param.Loc())
		}
		if slot.Param.Ty.Loc().Kind() != pt.LocCodegen {
			t.Fatalf("parameter type has non-codegen location: %v", slot.Param.Ty.Loc())
		}
	}
}
