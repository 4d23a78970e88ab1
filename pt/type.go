package pt

import (
	"strconv"

	"github.com/solgo/solpt/pt/doc"
)

// TypeKind tags the variant of a Type.
type TypeKind int

const (
	TypeAddress TypeKind = iota
	TypeAddressPayable
	TypePayable
	TypeBool
	TypeString
	TypeInt
	TypeUint
	TypeBytes
	TypeRational
	TypeDynamicBytes
	TypeMapping
	TypeFunction
)

// Type is an elementary or composite Solidity type. Mapping carries full
// Expressions for its key and value rather than nested Types, so that
// array/mapping type constructors compose the same way the expression
// grammar does (`mapping(Foo => Bar[])`'s value side is an
// ArraySubscriptExpression over a TypeExpression, not a Type value) -
// mirroring how the parser represents types as expressions until a later
// pass resolves them (§3.2).
type Type struct {
	Location Loc
	Kind     TypeKind

	// Width is the bit width for Int/Uint (8..256, step 8) and the byte
	// width for Bytes (1..32).
	Width int

	// From and To are Mapping's key and value expressions. Unset for every
	// other Kind.
	From Expression
	To   Expression

	// Params, Attrs and Returns describe a Function type. The printer does
	// not support this variant (§4.4); ToDoc calls unsupported.
	Params  ParameterList
	Attrs   []FunctionAttribute
	Returns ParameterList
}

// Loc implements CodeLocation.
func (n Type) Loc() Loc { return n.Location }

// ToDoc implements Docable. Function and Rational are outside the
// printer's supported subset (§4.4) and panic via unsupported.
func (n Type) ToDoc() doc.Doc {
	switch n.Kind {
	case TypeAddress:
		return doc.Text("address")
	case TypeAddressPayable:
		return doc.Text("address payable")
	case TypePayable:
		return doc.Text("payable")
	case TypeBool:
		return doc.Text("bool")
	case TypeString:
		return doc.Text("string")
	case TypeInt:
		return doc.Text("int" + strconv.Itoa(n.Width))
	case TypeUint:
		return doc.Text("uint" + strconv.Itoa(n.Width))
	case TypeBytes:
		return doc.Text("bytes" + strconv.Itoa(n.Width))
	case TypeDynamicBytes:
		return doc.Text("bytes")
	case TypeMapping:
		return doc.Text("mapping(").
			Append(n.From.ToDoc()).
			Append(doc.Text(" => ")).
			Append(n.To.ToDoc()).
			Append(doc.Text(")"))
	case TypeRational:
		unsupported("Type::Rational", n)
	case TypeFunction:
		unsupported("Type::Function", n)
	}
	unsupported("Type{unknown kind}", n)
	panic("unreachable")
}

// Equal reports structural equality, ignoring Location.
func (n Type) Equal(other Type) bool {
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case TypeInt, TypeUint, TypeBytes:
		return n.Width == other.Width
	case TypeMapping:
		return ExpressionEqual(n.From, other.From) && ExpressionEqual(n.To, other.To)
	case TypeFunction:
		if len(n.Params) != len(other.Params) || len(n.Returns) != len(other.Returns) {
			return false
		}
		for i := range n.Params {
			if !n.Params[i].Equal(other.Params[i]) {
				return false
			}
		}
		for i := range n.Returns {
			if !n.Returns[i].Equal(other.Returns[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
