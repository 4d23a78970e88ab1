package pt

import (
	"strings"

	"github.com/solgo/solpt/pt/doc"
)

// Expression is implemented by every expression-position PT node,
// including TypeExpression (a Type wrapped so an elementary type name can
// stand in expression position until a later pass resolves it; Type itself
// is not an Expression) and VariableExpression/ThisExpression (bare
// identifiers and `this`).
type Expression interface {
	CodeLocation
	Docable
	expressionNode()
}

// UnaryOp tags the operator of a UnaryExpression.
type UnaryOp int

const (
	OpPostIncrement UnaryOp = iota
	OpPostDecrement
	OpNew
	OpNot
	OpComplement
	OpDelete
	OpPreIncrement
	OpPreDecrement
	OpUnaryPlus
	OpUnaryMinus
)

var unaryOpText = map[UnaryOp]string{
	OpPostIncrement: "++",
	OpPostDecrement: "--",
	OpNew:           "new ",
	OpNot:           "!",
	OpComplement:    "~",
	OpDelete:        "delete ",
	OpPreIncrement:  "++",
	OpPreDecrement:  "--",
	OpUnaryPlus:     "+",
	OpUnaryMinus:    "-",
}

// isPostfixOp reports whether op is rendered after its operand.
func isPostfixOp(op UnaryOp) bool {
	return op == OpPostIncrement || op == OpPostDecrement
}

// UnaryExpression covers every single-operand operator: the prefix forms
// (New, Not, Complement, Delete, PreIncrement, PreDecrement, UnaryPlus,
// UnaryMinus) and the two postfix forms (PostIncrement, PostDecrement),
// distinguished only by Op. One struct per shape rather than one per
// Rust-enum-variant, the same way go/ast.UnaryExpr folds every prefix
// operator into a single type with an Op token.
type UnaryExpression struct {
	Location Loc
	Op       UnaryOp
	Operand  Expression
}

func (UnaryExpression) expressionNode() {}
func (n UnaryExpression) Loc() Loc      { return n.Location }

func (n UnaryExpression) ToDoc() doc.Doc {
	if isPostfixOp(n.Op) {
		return n.Operand.ToDoc().Append(doc.Text(unaryOpText[n.Op]))
	}
	return doc.Text(unaryOpText[n.Op]).Append(n.Operand.ToDoc())
}

func unaryEqual(a, b UnaryExpression) bool {
	return a.Op == b.Op && ExpressionEqual(a.Operand, b.Operand)
}

// ArraySubscriptExpression is `base[index]`, or `base[]` when Index is nil
// (an empty dynamic-array type suffix).
type ArraySubscriptExpression struct {
	Location Loc
	Base     Expression
	Index    Expression
}

func (ArraySubscriptExpression) expressionNode() {}
func (n ArraySubscriptExpression) Loc() Loc      { return n.Location }

func (n ArraySubscriptExpression) ToDoc() doc.Doc {
	return n.Base.ToDoc().Append(doc.Text("[")).
		Append(doc.OptionBoxToDoc(n.Index)).
		Append(doc.Text("]"))
}

func arraySubscriptEqual(a, b ArraySubscriptExpression) bool {
	if !ExpressionEqual(a.Base, b.Base) {
		return false
	}
	if (a.Index == nil) != (b.Index == nil) {
		return false
	}
	return a.Index == nil || ExpressionEqual(a.Index, b.Index)
}

// ArraySliceExpression is `base[from:to]`; outside the printer's supported
// subset (§4.4).
type ArraySliceExpression struct {
	Location   Loc
	Base       Expression
	From       Expression
	To         Expression
}

func (ArraySliceExpression) expressionNode() {}
func (n ArraySliceExpression) Loc() Loc      { return n.Location }

func (n ArraySliceExpression) ToDoc() doc.Doc {
	unsupported("ArraySliceExpression", n)
	panic("unreachable")
}

// ParenthesisExpression is `(inner)`. RemoveParenthesis peels exactly one
// such wrapper.
type ParenthesisExpression struct {
	Location Loc
	Inner    Expression
}

func (ParenthesisExpression) expressionNode() {}
func (n ParenthesisExpression) Loc() Loc      { return n.Location }

func (n ParenthesisExpression) ToDoc() doc.Doc {
	return doc.Text("(").Append(n.Inner.ToDoc()).Append(doc.Text(")"))
}

// RemoveParenthesis strips one layer of ParenthesisExpression from e,
// returning e unchanged if it is not parenthesised. Each call peels at
// most one layer: `((a))` needs two calls to reach `a`, and a call on an
// expression that is not parenthesised is a no-op.
func RemoveParenthesis(e Expression) Expression {
	if p, ok := e.(ParenthesisExpression); ok {
		return p.Inner
	}
	return e
}

// MemberAccessExpression is `base.member`.
type MemberAccessExpression struct {
	Location Loc
	Base     Expression
	Member   Identifier
}

func (MemberAccessExpression) expressionNode() {}
func (n MemberAccessExpression) Loc() Loc      { return n.Location }

func (n MemberAccessExpression) ToDoc() doc.Doc {
	return n.Base.ToDoc().Append(doc.Text(".")).Append(n.Member.ToDoc())
}

func memberAccessEqual(a, b MemberAccessExpression) bool {
	return ExpressionEqual(a.Base, b.Base) && a.Member.Equal(b.Member)
}

// FunctionCallExpression is `callee(args...)`.
type FunctionCallExpression struct {
	Location Loc
	Callee   Expression
	Args     []Expression
}

func (FunctionCallExpression) expressionNode() {}
func (n FunctionCallExpression) Loc() Loc      { return n.Location }

func (n FunctionCallExpression) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.ToDoc()
	}
	return n.Callee.ToDoc().Append(doc.Text("(")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text(")"))
}

func functionCallEqual(a, b FunctionCallExpression) bool {
	if !ExpressionEqual(a.Callee, b.Callee) || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !ExpressionEqual(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// FunctionCallBlockExpression is `callee{named: value, ...}`, the
// gas/value-override call syntax.
type FunctionCallBlockExpression struct {
	Location Loc
	Callee   Expression
	Args     []NamedArgument
}

func (FunctionCallBlockExpression) expressionNode() {}
func (n FunctionCallBlockExpression) Loc() Loc      { return n.Location }

func (n FunctionCallBlockExpression) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.ToDoc()
	}
	return n.Callee.ToDoc().Append(doc.Text("{")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text("}"))
}

// NamedFunctionCallExpression is `callee({name: value, ...})`; outside the
// printer's supported subset (§4.4).
type NamedFunctionCallExpression struct {
	Location Loc
	Callee   Expression
	Args     []NamedArgument
}

func (NamedFunctionCallExpression) expressionNode() {}
func (n NamedFunctionCallExpression) Loc() Loc      { return n.Location }

func (n NamedFunctionCallExpression) ToDoc() doc.Doc {
	unsupported("NamedFunctionCallExpression", n)
	panic("unreachable")
}

// BinaryOp tags the operator of a BinaryExpression.
type BinaryOp int

const (
	OpPower BinaryOp = iota
	OpMultiply
	OpDivide
	OpModulo
	OpAdd
	OpSubtract
	OpShiftLeft
	OpShiftRight
	OpBitwiseAnd
	OpBitwiseXor
	OpBitwiseOr
	OpLess
	OpMore
	OpLessEqual
	OpMoreEqual
	OpEqual
	OpNotEqual
	OpAnd
	OpOr
)

var binaryOpText = map[BinaryOp]string{
	OpPower: "**", OpMultiply: "*", OpDivide: "/", OpModulo: "%",
	OpAdd: "+", OpSubtract: "-", OpShiftLeft: "<<", OpShiftRight: ">>",
	OpBitwiseAnd: "&", OpBitwiseXor: "^", OpBitwiseOr: "|",
	OpLess: "<", OpMore: ">", OpLessEqual: "<=", OpMoreEqual: ">=",
	OpEqual: "==", OpNotEqual: "!=", OpAnd: "&&", OpOr: "||",
}

// BinaryExpression covers every two-operand operator (arithmetic, bitwise,
// shift, comparison, logical), distinguished only by Op.
type BinaryExpression struct {
	Location    Loc
	Op          BinaryOp
	Left, Right Expression
}

func (BinaryExpression) expressionNode() {}
func (n BinaryExpression) Loc() Loc      { return n.Location }

func (n BinaryExpression) ToDoc() doc.Doc {
	return n.Left.ToDoc().
		Append(doc.Text(" " + binaryOpText[n.Op] + " ")).
		Append(n.Right.ToDoc())
}

func binaryEqual(a, b BinaryExpression) bool {
	return a.Op == b.Op && ExpressionEqual(a.Left, b.Left) && ExpressionEqual(a.Right, b.Right)
}

// TernaryExpression is `cond ? ifTrue : ifFalse`.
type TernaryExpression struct {
	Location Loc
	Cond     Expression
	IfTrue   Expression
	IfFalse  Expression
}

func (TernaryExpression) expressionNode() {}
func (n TernaryExpression) Loc() Loc      { return n.Location }

func (n TernaryExpression) ToDoc() doc.Doc {
	return n.Cond.ToDoc().
		Append(doc.Text(" ? ")).
		Append(n.IfTrue.ToDoc()).
		Append(doc.Text(" : ")).
		Append(n.IfFalse.ToDoc())
}

func ternaryEqual(a, b TernaryExpression) bool {
	return ExpressionEqual(a.Cond, b.Cond) &&
		ExpressionEqual(a.IfTrue, b.IfTrue) &&
		ExpressionEqual(a.IfFalse, b.IfFalse)
}

// AssignOp tags the operator of an AssignExpression.
type AssignOp int

const (
	OpAssign AssignOp = iota
	OpAssignOr
	OpAssignAnd
	OpAssignXor
	OpAssignShiftLeft
	OpAssignShiftRight
	OpAssignAdd
	OpAssignSubtract
	OpAssignMultiply
	OpAssignDivide
	OpAssignModulo
)

var assignOpText = map[AssignOp]string{
	OpAssign: "=", OpAssignOr: "|=", OpAssignAnd: "&=", OpAssignXor: "^=",
	OpAssignShiftLeft: "<<=", OpAssignShiftRight: ">>=",
	OpAssignAdd: "+=", OpAssignSubtract: "-=",
	OpAssignMultiply: "*=", OpAssignDivide: "/=", OpAssignModulo: "%=",
}

// AssignExpression covers plain assignment and every compound-assignment
// operator, distinguished only by Op.
type AssignExpression struct {
	Location    Loc
	Op          AssignOp
	Left, Right Expression
}

func (AssignExpression) expressionNode() {}
func (n AssignExpression) Loc() Loc      { return n.Location }

func (n AssignExpression) ToDoc() doc.Doc {
	return n.Left.ToDoc().
		Append(doc.Text(" " + assignOpText[n.Op] + " ")).
		Append(n.Right.ToDoc())
}

func assignEqual(a, b AssignExpression) bool {
	return a.Op == b.Op && ExpressionEqual(a.Left, b.Left) && ExpressionEqual(a.Right, b.Right)
}

// BoolLiteralExpression is `true` or `false`.
type BoolLiteralExpression struct {
	Location Loc
	Value    bool
}

func (BoolLiteralExpression) expressionNode() {}
func (n BoolLiteralExpression) Loc() Loc      { return n.Location }

func (n BoolLiteralExpression) ToDoc() doc.Doc {
	if n.Value {
		return doc.Text("true")
	}
	return doc.Text("false")
}

// NumberLiteralExpression is a decimal integer literal, kept as text to
// avoid precision loss on values wider than a machine int.
type NumberLiteralExpression struct {
	Location Loc
	Value    string
	// Unit is the literal's optional denomination suffix, e.g. "ether" in
	// `1 ether`. Empty when absent.
	Unit string
}

func (NumberLiteralExpression) expressionNode() {}
func (n NumberLiteralExpression) Loc() Loc      { return n.Location }

func (n NumberLiteralExpression) ToDoc() doc.Doc {
	if n.Unit == "" {
		return doc.Text(n.Value)
	}
	return doc.Text(n.Value + " " + n.Unit)
}

// RationalNumberLiteralExpression is a fixed-point decimal literal such as
// `1.5`; outside the printer's supported subset (§4.4).
type RationalNumberLiteralExpression struct {
	Location Loc
	Value    string
	Unit     string
}

func (RationalNumberLiteralExpression) expressionNode() {}
func (n RationalNumberLiteralExpression) Loc() Loc      { return n.Location }

func (n RationalNumberLiteralExpression) ToDoc() doc.Doc {
	unsupported("RationalNumberLiteralExpression", n)
	panic("unreachable")
}

// HexNumberLiteralExpression is a hex integer literal such as `0x1234`.
type HexNumberLiteralExpression struct {
	Location Loc
	Value    string
}

func (HexNumberLiteralExpression) expressionNode() {}
func (n HexNumberLiteralExpression) Loc() Loc      { return n.Location }

func (n HexNumberLiteralExpression) ToDoc() doc.Doc { return doc.Text(n.Value) }

// StringLiteralExpression wraps one or more adjacent StringLiterals
// (Solidity allows `"a" "b"` concatenation at the lexical level). Loc is
// taken from the first element.
type StringLiteralExpression struct {
	Values []StringLiteral
}

func (StringLiteralExpression) expressionNode() {}
func (n StringLiteralExpression) Loc() Loc      { return n.Values[0].Loc() }

func (n StringLiteralExpression) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Values))
	for i, v := range n.Values {
		parts[i] = v.ToDoc()
	}
	return doc.Intersperse(parts, doc.Space())
}

func stringLiteralEqual(a, b StringLiteralExpression) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !a.Values[i].Equal(b.Values[i]) {
			return false
		}
	}
	return true
}

// HexLiteralExpression wraps one or more adjacent HexLiterals.
type HexLiteralExpression struct {
	Values []HexLiteral
}

func (HexLiteralExpression) expressionNode() {}
func (n HexLiteralExpression) Loc() Loc      { return n.Values[0].Loc() }

func (n HexLiteralExpression) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Values))
	for i, v := range n.Values {
		parts[i] = v.ToDoc()
	}
	return doc.Intersperse(parts, doc.Space())
}

func hexLiteralEqual(a, b HexLiteralExpression) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !a.Values[i].Equal(b.Values[i]) {
			return false
		}
	}
	return true
}

// TypeExpression wraps a Type so it can appear in expression position
// (e.g. `type(uint256).max`, or a cast callee).
type TypeExpression struct {
	Location Loc
	Ty       Type
}

func (TypeExpression) expressionNode() {}
func (n TypeExpression) Loc() Loc      { return n.Location }
func (n TypeExpression) ToDoc() doc.Doc { return n.Ty.ToDoc() }

// AddressLiteralExpression is a checksummed hex address literal, kept
// verbatim rather than re-checksummed by the printer.
type AddressLiteralExpression struct {
	Location Loc
	Value    string
}

func (AddressLiteralExpression) expressionNode() {}
func (n AddressLiteralExpression) Loc() Loc       { return n.Location }
func (n AddressLiteralExpression) ToDoc() doc.Doc { return doc.Text(n.Value) }

// VariableExpression is a bare identifier used as an expression.
type VariableExpression struct {
	Name Identifier
}

func (VariableExpression) expressionNode() {}
func (n VariableExpression) Loc() Loc      { return n.Name.Loc() }
func (n VariableExpression) ToDoc() doc.Doc { return n.Name.ToDoc() }

func variableEqual(a, b VariableExpression) bool { return a.Name.Equal(b.Name) }

// ListExpression is a parenthesised, possibly sparse list of expressions,
// used for tuple literals and destructuring assignment targets.
// `ParameterList` is reused for its slots so that an absent element is
// represented the same way an empty parameter slot is: a ParameterSlot
// whose Param is nil.
type ListExpression struct {
	Location Loc
	Params   ParameterList
}

func (ListExpression) expressionNode() {}
func (n ListExpression) Loc() Loc      { return n.Location }

func (n ListExpression) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Params))
	for i, p := range n.Params {
		if p.Param == nil {
			parts[i] = doc.Nil()
			continue
		}
		parts[i] = p.Param.ToDoc()
	}
	return doc.ParamListToDoc(parts)
}

func listEqual(a, b ListExpression) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !a.Params[i].Equal(b.Params[i]) {
			return false
		}
	}
	return true
}

// ArrayLiteralExpression is `[a, b, c]`.
type ArrayLiteralExpression struct {
	Location Loc
	Values   []Expression
}

func (ArrayLiteralExpression) expressionNode() {}
func (n ArrayLiteralExpression) Loc() Loc      { return n.Location }

func (n ArrayLiteralExpression) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Values))
	for i, v := range n.Values {
		parts[i] = v.ToDoc()
	}
	return doc.Text("[").Append(doc.Intersperse(parts, doc.Text(", "))).Append(doc.Text("]"))
}

func arrayLiteralEqual(a, b ArrayLiteralExpression) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !ExpressionEqual(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

// UnitKind tags the denomination suffix a UnitExpression applies.
type UnitKind int

const (
	UnitSeconds UnitKind = iota
	UnitMinutes
	UnitHours
	UnitDays
	UnitWeeks
	UnitWei
	UnitGwei
	UnitEther
)

var unitText = map[UnitKind]string{
	UnitSeconds: "seconds", UnitMinutes: "minutes", UnitHours: "hours",
	UnitDays: "days", UnitWeeks: "weeks",
	UnitWei: "wei", UnitGwei: "gwei", UnitEther: "ether",
}

// UnitExpression applies a denomination suffix to a numeric literal
// expression, e.g. `1 ether`. Number/RationalNumber literals carry their own
// Unit field instead (the grammar attaches the suffix to the literal
// token); UnitExpression models the case where the suffix applies to an
// arbitrary sub-expression, e.g. `(1 + 2) ether`.
type UnitExpression struct {
	Location Loc
	Operand  Expression
	Unit     UnitKind
}

func (UnitExpression) expressionNode() {}
func (n UnitExpression) Loc() Loc      { return n.Location }

func (n UnitExpression) ToDoc() doc.Doc {
	return n.Operand.ToDoc().Append(doc.Text(" " + unitText[n.Unit]))
}

func unitEqual(a, b UnitExpression) bool {
	return a.Unit == b.Unit && ExpressionEqual(a.Operand, b.Operand)
}

// ThisExpression is the `this` keyword.
type ThisExpression struct {
	Location Loc
}

func (ThisExpression) expressionNode() {}
func (n ThisExpression) Loc() Loc      { return n.Location }
func (n ThisExpression) ToDoc() doc.Doc { return doc.Text("this") }

// ExpressionEqual reports structural equality between two expressions,
// ignoring Location. Mismatched dynamic types are never equal.
func ExpressionEqual(a, b Expression) bool {
	switch av := a.(type) {
	case UnaryExpression:
		bv, ok := b.(UnaryExpression)
		return ok && unaryEqual(av, bv)
	case ArraySubscriptExpression:
		bv, ok := b.(ArraySubscriptExpression)
		return ok && arraySubscriptEqual(av, bv)
	case ArraySliceExpression:
		bv, ok := b.(ArraySliceExpression)
		return ok && ExpressionEqual(av.Base, bv.Base) &&
			ExpressionEqual(av.From, bv.From) && ExpressionEqual(av.To, bv.To)
	case ParenthesisExpression:
		bv, ok := b.(ParenthesisExpression)
		return ok && ExpressionEqual(av.Inner, bv.Inner)
	case MemberAccessExpression:
		bv, ok := b.(MemberAccessExpression)
		return ok && memberAccessEqual(av, bv)
	case FunctionCallExpression:
		bv, ok := b.(FunctionCallExpression)
		return ok && functionCallEqual(av, bv)
	case FunctionCallBlockExpression:
		bv, ok := b.(FunctionCallBlockExpression)
		if !ok || !ExpressionEqual(av.Callee, bv.Callee) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !av.Args[i].Equal(bv.Args[i]) {
				return false
			}
		}
		return true
	case NamedFunctionCallExpression:
		bv, ok := b.(NamedFunctionCallExpression)
		if !ok || !ExpressionEqual(av.Callee, bv.Callee) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !av.Args[i].Equal(bv.Args[i]) {
				return false
			}
		}
		return true
	case BinaryExpression:
		bv, ok := b.(BinaryExpression)
		return ok && binaryEqual(av, bv)
	case TernaryExpression:
		bv, ok := b.(TernaryExpression)
		return ok && ternaryEqual(av, bv)
	case AssignExpression:
		bv, ok := b.(AssignExpression)
		return ok && assignEqual(av, bv)
	case BoolLiteralExpression:
		bv, ok := b.(BoolLiteralExpression)
		return ok && av.Value == bv.Value
	case NumberLiteralExpression:
		bv, ok := b.(NumberLiteralExpression)
		return ok && av.Value == bv.Value && av.Unit == bv.Unit
	case RationalNumberLiteralExpression:
		bv, ok := b.(RationalNumberLiteralExpression)
		return ok && av.Value == bv.Value && av.Unit == bv.Unit
	case HexNumberLiteralExpression:
		bv, ok := b.(HexNumberLiteralExpression)
		return ok && av.Value == bv.Value
	case StringLiteralExpression:
		bv, ok := b.(StringLiteralExpression)
		return ok && stringLiteralEqual(av, bv)
	case HexLiteralExpression:
		bv, ok := b.(HexLiteralExpression)
		return ok && hexLiteralEqual(av, bv)
	case TypeExpression:
		bv, ok := b.(TypeExpression)
		return ok && av.Ty.Equal(bv.Ty)
	case AddressLiteralExpression:
		bv, ok := b.(AddressLiteralExpression)
		return ok && strings.EqualFold(av.Value, bv.Value)
	case VariableExpression:
		bv, ok := b.(VariableExpression)
		return ok && variableEqual(av, bv)
	case ListExpression:
		bv, ok := b.(ListExpression)
		return ok && listEqual(av, bv)
	case ArrayLiteralExpression:
		bv, ok := b.(ArrayLiteralExpression)
		return ok && arrayLiteralEqual(av, bv)
	case UnitExpression:
		bv, ok := b.(UnitExpression)
		return ok && unitEqual(av, bv)
	case ThisExpression:
		_, ok := b.(ThisExpression)
		return ok
	default:
		return false
	}
}
