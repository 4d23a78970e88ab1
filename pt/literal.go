package pt

import "github.com/solgo/solpt/pt/doc"

// StringLiteral is a single quoted string literal.
type StringLiteral struct {
	Location Loc
	// Unicode marks a `unicode"..."` literal. The printer's supported
	// subset is ASCII-only string literals (§4.4): ToDoc asserts
	// !Unicode.
	Unicode bool
	Value   string
}

// Loc implements CodeLocation.
func (n StringLiteral) Loc() Loc { return n.Location }

// ToDoc implements Docable. It double-quotes Value without re-escaping it
// (§6: "string literals double-quoted and not re-escaped").
func (n StringLiteral) ToDoc() doc.Doc {
	assertf(!n.Unicode, "StringLiteral{unicode: true}", n)
	return doc.Text("\"").Append(doc.Text(n.Value)).Append(doc.Text("\""))
}

// Equal reports structural equality, ignoring Location.
func (n StringLiteral) Equal(other StringLiteral) bool {
	return n.Unicode == other.Unicode && n.Value == other.Value
}

// HexLiteral is a `hex"..."` literal; its Value is the literal's raw hex
// body, not including the surrounding hex"..." syntax.
type HexLiteral struct {
	Location Loc
	Value    string
}

// Loc implements CodeLocation.
func (n HexLiteral) Loc() Loc { return n.Location }

// ToDoc implements Docable.
func (n HexLiteral) ToDoc() doc.Doc {
	return doc.Text("hex\"").Append(doc.Text(n.Value)).Append(doc.Text("\""))
}

// Equal reports structural equality, ignoring Location.
func (n HexLiteral) Equal(other HexLiteral) bool {
	return n.Value == other.Value
}

// NamedArgument is a `name: expr` pair used in named function calls and
// named revert arguments.
type NamedArgument struct {
	Location Loc
	Name     Identifier
	Expr     Expression
}

// Loc implements CodeLocation.
func (n NamedArgument) Loc() Loc { return n.Location }

// ToDoc implements Docable.
func (n NamedArgument) ToDoc() doc.Doc {
	return n.Name.ToDoc().Append(doc.Text(": ")).Append(n.Expr.ToDoc())
}

// Equal reports structural equality, ignoring Location.
func (n NamedArgument) Equal(other NamedArgument) bool {
	return n.Name.Equal(other.Name) && ExpressionEqual(n.Expr, other.Expr)
}
