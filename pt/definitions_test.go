package pt_test

import (
	"testing"

	"github.com/solgo/solpt/pt"
)

func TestEventDefinitionToDoc(t *testing.T) {
	ev := &pt.EventDefinition{
		Name: id("Transfer"),
		Fields: []pt.EventParameter{
			{Ty: ty(pt.TypeAddress, 0), Indexed: true, Name: ptrID("from")},
			{Ty: ty(pt.TypeAddress, 0), Indexed: true, Name: ptrID("to")},
			{Ty: ty(pt.TypeUint, 256), Name: ptrID("value")},
		},
	}
	want := "event Transfer(address indexed from, address indexed to, uint256 value);"
	if got := pt.MustDisplay(ev); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStructDefinitionToDoc(t *testing.T) {
	def := &pt.StructDefinition{
		Name: id("Point"),
		Fields: []pt.VariableDeclaration{
			{Ty: ty(pt.TypeUint, 256), Name: id("x")},
			{Ty: ty(pt.TypeUint, 256), Name: id("y")},
		},
	}
	want := "struct Point {\n    uint256 x;\n    uint256 y;\n}"
	if got := pt.MustDisplay(def); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptyContractDefinitionToDoc(t *testing.T) {
	def := &pt.ContractDefinition{
		Ty:   pt.ContractTy{Kind: pt.ContractTyContract},
		Name: id("Empty"),
	}
	want := "contract Empty {}"
	if got := pt.MustDisplay(def); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestContractDefinitionWithBasesAndParts(t *testing.T) {
	def := &pt.ContractDefinition{
		Ty:   pt.ContractTy{Kind: pt.ContractTyContract},
		Name: id("Token"),
		Bases: []pt.Base{
			{Name: path("ERC20")},
			{Name: path("Ownable"), HasArgs: true, Args: []pt.Expression{
				pt.VariableExpression{Name: id("msg")},
			}},
		},
		Parts: []pt.ContractPart{
			&pt.EnumDefinition{Name: id("Kind"), Values: []pt.Identifier{id("A"), id("B")}},
		},
	}
	got := pt.MustDisplay(def)
	want := "contract Token is ERC20, Ownable(msg) {\n    enum Kind {A, B}\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestImportVariants(t *testing.T) {
	tests := []struct {
		name   string
		imp    *pt.Import
		want   string
	}{
		{
			name: "plain",
			imp:  &pt.Import{Kind: pt.ImportPlain, Path: pt.StringLiteral{Value: "./A.sol"}},
			want: `import "./A.sol";`,
		},
		{
			name: "global symbol",
			imp: &pt.Import{
				Kind:  pt.ImportGlobalSymbol,
				Path:  pt.StringLiteral{Value: "./A.sol"},
				Alias: ptrID("A"),
			},
			want: `import "./A.sol" as A;`,
		},
		{
			name: "renamed",
			imp: &pt.Import{
				Kind: pt.ImportRename,
				Path: pt.StringLiteral{Value: "./A.sol"},
				Renames: []pt.ImportRenameSlot{
					{Name: id("Foo")},
					{Name: id("Bar"), Alias: ptrID("Baz")},
				},
			},
			want: `import {Foo, Bar as Baz} from "./A.sol";`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pt.MustDisplay(tc.imp); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSourceUnitEqualIgnoresLocation(t *testing.T) {
	mk := func(loc pt.Loc) pt.SourceUnit {
		return pt.SourceUnit{Parts: []pt.SourceUnitPart{
			&pt.PragmaDirective{Location: loc, Name: id("solidity"), Value: "^0.8.0"},
		}}
	}
	a := mk(pt.NewFileLoc(0, 0, 20))
	b := mk(pt.Codegen)
	if !a.Equal(b) {
		t.Fatal("expected source units to compare equal ignoring location")
	}
}

func ptrID(name string) *pt.Identifier {
	v := id(name)
	return &v
}

func ty(kind pt.TypeKind, width int) pt.Expression {
	return pt.TypeExpression{Ty: pt.Type{Kind: kind, Width: width}}
}

func path(names ...string) pt.IdentifierPath {
	ids := make([]pt.Identifier, len(names))
	for i, n := range names {
		ids[i] = id(n)
	}
	return pt.IdentifierPath{Identifiers: ids}
}
