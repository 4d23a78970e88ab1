package pt

import "github.com/solgo/solpt/pt/doc"

// YulStatement is implemented by every Yul statement-position node. Yul's
// statement and expression grammars are kept separate from the outer
// Statement/Expression interfaces rather than unified with them: Yul is a
// distinct sub-language embedded inside an AssemblyStatement, with its own
// grammar and its own restricted expression set, and the two families
// share no constructors.
type YulStatement interface {
	CodeLocation
	Docable
	yulStatementNode()
}

// YulExpression is implemented by every Yul expression-position node.
type YulExpression interface {
	CodeLocation
	Docable
	yulExpressionNode()
}

// YulTypedIdentifier is a Yul identifier with an optional `:type` suffix,
// used in variable declarations and function parameter/return lists.
type YulTypedIdentifier struct {
	Location Loc
	Name     Identifier
	Ty       *Identifier
}

func (n YulTypedIdentifier) Loc() Loc { return n.Location }

func (n YulTypedIdentifier) ToDoc() doc.Doc {
	d := n.Name.ToDoc()
	if n.Ty != nil {
		d = d.Append(doc.Text(":")).Append(n.Ty.ToDoc())
	}
	return d
}

func yulTypedIdentifierEqual(a, b YulTypedIdentifier) bool {
	return a.Name.Equal(b.Name) && optionalIdentifierEqual(a.Ty, b.Ty)
}

// optionalIdentifierEqual compares two possibly-nil type-suffix
// identifiers, ignoring Location like every other Equal in this package.
func optionalIdentifierEqual(a, b *Identifier) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

// YulBlock is `{ stmts... }`.
type YulBlock struct {
	Location Loc
	Stmts    []YulStatement
}

func (YulBlock) yulStatementNode() {}
func (n YulBlock) Loc() Loc        { return n.Location }

func (n YulBlock) ToDoc() doc.Doc {
	if len(n.Stmts) == 0 {
		return doc.Text("{}")
	}
	parts := make([]doc.Doc, len(n.Stmts))
	for i, s := range n.Stmts {
		parts[i] = s.ToDoc()
	}
	return doc.Text("{").Append(doc.IndentBlockToDoc(parts)).
		Append(doc.HardLine()).Append(doc.Text("}"))
}

// YulAssignStatement is `lhs... := rhs` or `lhs := rhs`.
type YulAssignStatement struct {
	Location Loc
	LHS      []YulExpression
	RHS      YulExpression
}

func (YulAssignStatement) yulStatementNode() {}
func (n YulAssignStatement) Loc() Loc        { return n.Location }

func (n YulAssignStatement) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.LHS))
	for i, l := range n.LHS {
		parts[i] = l.ToDoc()
	}
	return doc.Intersperse(parts, doc.Text(", ")).
		Append(doc.Text(" := ")).
		Append(n.RHS.ToDoc())
}

// YulVarDeclStatement is `let names... [:= rhs]`.
type YulVarDeclStatement struct {
	Location Loc
	Names    []YulTypedIdentifier
	RHS      YulExpression
}

func (YulVarDeclStatement) yulStatementNode() {}
func (n YulVarDeclStatement) Loc() Loc        { return n.Location }

func (n YulVarDeclStatement) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Names))
	for i, name := range n.Names {
		parts[i] = name.ToDoc()
	}
	d := doc.Text("let ").Append(doc.Intersperse(parts, doc.Text(", ")))
	if n.RHS != nil {
		d = d.Append(doc.Text(" := ")).Append(n.RHS.ToDoc())
	}
	return d
}

// YulIfStatement is `if cond body`.
type YulIfStatement struct {
	Location Loc
	Cond     YulExpression
	Body     YulBlock
}

func (YulIfStatement) yulStatementNode() {}
func (n YulIfStatement) Loc() Loc        { return n.Location }

func (n YulIfStatement) ToDoc() doc.Doc {
	return doc.Text("if ").Append(n.Cond.ToDoc()).Append(doc.Text(" ")).Append(n.Body.ToDoc())
}

// YulFor is `for init cond post body`.
type YulFor struct {
	Location Loc
	Init     YulBlock
	Cond     YulExpression
	Post     YulBlock
	Body     YulBlock
}

func (YulFor) yulStatementNode() {}
func (n YulFor) Loc() Loc        { return n.Location }

func (n YulFor) ToDoc() doc.Doc {
	return doc.Text("for ").Append(n.Init.ToDoc()).Append(doc.Text(" ")).
		Append(n.Cond.ToDoc()).Append(doc.Text(" ")).
		Append(n.Post.ToDoc()).Append(doc.Text(" ")).
		Append(n.Body.ToDoc())
}

// YulSwitchOptionKind tags whether a switch arm is `case value body` or
// `default body`.
type YulSwitchOptionKind int

const (
	YulSwitchCase YulSwitchOptionKind = iota
	YulSwitchDefault
)

// YulSwitchOption is one arm of a YulSwitch.
type YulSwitchOption struct {
	Location Loc
	Kind     YulSwitchOptionKind
	Value    YulExpression // only set for YulSwitchCase
	Body     YulBlock
}

func (n YulSwitchOption) Loc() Loc { return n.Location }

func (n YulSwitchOption) ToDoc() doc.Doc {
	if n.Kind == YulSwitchDefault {
		return doc.Text("default ").Append(n.Body.ToDoc())
	}
	return doc.Text("case ").Append(n.Value.ToDoc()).Append(doc.Text(" ")).Append(n.Body.ToDoc())
}

// YulSwitch is `switch cond cases...`.
type YulSwitch struct {
	Location Loc
	Cond     YulExpression
	Options  []YulSwitchOption
}

func (YulSwitch) yulStatementNode() {}
func (n YulSwitch) Loc() Loc        { return n.Location }

func (n YulSwitch) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Options))
	for i, o := range n.Options {
		parts[i] = o.ToDoc()
	}
	return doc.Text("switch ").Append(n.Cond.ToDoc()).Append(doc.Text(" ")).
		Append(doc.Intersperse(parts, doc.Space()))
}

// YulLeaveStatement is `leave`.
type YulLeaveStatement struct{ Location Loc }

func (YulLeaveStatement) yulStatementNode()  {}
func (n YulLeaveStatement) Loc() Loc         { return n.Location }
func (n YulLeaveStatement) ToDoc() doc.Doc   { return doc.Text("leave") }

// YulBreakStatement is `break`.
type YulBreakStatement struct{ Location Loc }

func (YulBreakStatement) yulStatementNode()  {}
func (n YulBreakStatement) Loc() Loc         { return n.Location }
func (n YulBreakStatement) ToDoc() doc.Doc   { return doc.Text("break") }

// YulContinueStatement is `continue`.
type YulContinueStatement struct{ Location Loc }

func (YulContinueStatement) yulStatementNode()  {}
func (n YulContinueStatement) Loc() Loc         { return n.Location }
func (n YulContinueStatement) ToDoc() doc.Doc   { return doc.Text("continue") }

// YulFunctionDefinition is `function name(params...) -> returns... body`.
type YulFunctionDefinition struct {
	Location Loc
	Name     Identifier
	Params   []YulTypedIdentifier
	Returns  []YulTypedIdentifier
	Body     YulBlock
}

func (*YulFunctionDefinition) yulStatementNode() {}
func (n *YulFunctionDefinition) Loc() Loc        { return n.Location }

func (n *YulFunctionDefinition) ToDoc() doc.Doc {
	params := make([]doc.Doc, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.ToDoc()
	}
	d := doc.Text("function ").Append(n.Name.ToDoc()).Append(doc.Text("(")).
		Append(doc.Intersperse(params, doc.Text(", "))).
		Append(doc.Text(")"))
	if len(n.Returns) > 0 {
		returns := make([]doc.Doc, len(n.Returns))
		for i, r := range n.Returns {
			returns[i] = r.ToDoc()
		}
		d = d.Append(doc.Text(" -> ")).Append(doc.Intersperse(returns, doc.Text(", ")))
	}
	return d.Append(doc.Text(" ")).Append(n.Body.ToDoc())
}

// YulExpressionStatement wraps a bare Yul call expression used as a
// statement.
type YulExpressionStatement struct {
	Location Loc
	Expr     YulExpression
}

func (YulExpressionStatement) yulStatementNode() {}
func (n YulExpressionStatement) Loc() Loc        { return n.Location }
func (n YulExpressionStatement) ToDoc() doc.Doc  { return n.Expr.ToDoc() }

// YulFunctionCall is `name(args...)`.
type YulFunctionCall struct {
	Location Loc
	Name     Identifier
	Args     []YulExpression
}

func (YulFunctionCall) yulExpressionNode() {}
func (n YulFunctionCall) Loc() Loc         { return n.Location }

func (n YulFunctionCall) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.ToDoc()
	}
	return n.Name.ToDoc().Append(doc.Text("(")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text(")"))
}

// yulTySuffix renders a literal's optional `:type` suffix, e.g. the
// `:u8` in `0x01:u8`.
func yulTySuffix(ty *Identifier) doc.Doc {
	if ty == nil {
		return doc.Nil()
	}
	return doc.Text(":").Append(ty.ToDoc())
}

// YulBoolLiteral is `true`/`false`, with an optional type suffix.
type YulBoolLiteral struct {
	Location Loc
	Value    bool
	Ty       *Identifier
}

func (YulBoolLiteral) yulExpressionNode() {}
func (n YulBoolLiteral) Loc() Loc         { return n.Location }

func (n YulBoolLiteral) ToDoc() doc.Doc {
	lit := "false"
	if n.Value {
		lit = "true"
	}
	return doc.Text(lit).Append(yulTySuffix(n.Ty))
}

// YulNumberLiteral is a decimal integer literal, with an optional type
// suffix.
type YulNumberLiteral struct {
	Location Loc
	Value    string
	Ty       *Identifier
}

func (YulNumberLiteral) yulExpressionNode() {}
func (n YulNumberLiteral) Loc() Loc         { return n.Location }
func (n YulNumberLiteral) ToDoc() doc.Doc   { return doc.Text(n.Value).Append(yulTySuffix(n.Ty)) }

// YulHexNumberLiteral is a `0x...` integer literal, with an optional type
// suffix.
type YulHexNumberLiteral struct {
	Location Loc
	Value    string
	Ty       *Identifier
}

func (YulHexNumberLiteral) yulExpressionNode() {}
func (n YulHexNumberLiteral) Loc() Loc         { return n.Location }
func (n YulHexNumberLiteral) ToDoc() doc.Doc   { return doc.Text(n.Value).Append(yulTySuffix(n.Ty)) }

// YulHexStringLiteral is a `hex"..."` literal, with an optional type
// suffix.
type YulHexStringLiteral struct {
	Location Loc
	Value    string
	Ty       *Identifier
}

func (YulHexStringLiteral) yulExpressionNode() {}
func (n YulHexStringLiteral) Loc() Loc         { return n.Location }

func (n YulHexStringLiteral) ToDoc() doc.Doc {
	return doc.Text("hex\"").Append(doc.Text(n.Value)).Append(doc.Text("\"")).Append(yulTySuffix(n.Ty))
}

// YulStringLiteral is a quoted string literal, with an optional type
// suffix.
type YulStringLiteral struct {
	Location Loc
	Value    string
	Ty       *Identifier
}

func (YulStringLiteral) yulExpressionNode() {}
func (n YulStringLiteral) Loc() Loc         { return n.Location }

func (n YulStringLiteral) ToDoc() doc.Doc {
	return doc.Text("\"").Append(doc.Text(n.Value)).Append(doc.Text("\"")).Append(yulTySuffix(n.Ty))
}

// YulVariable is a bare identifier used as an expression.
type YulVariable struct {
	Name Identifier
}

func (YulVariable) yulExpressionNode() {}
func (n YulVariable) Loc() Loc         { return n.Name.Loc() }
func (n YulVariable) ToDoc() doc.Doc   { return n.Name.ToDoc() }

// YulSuffixAccess is `base.suffix`, Yul's member-style access onto a
// variable (e.g. `x.slot`, `x.offset`).
type YulSuffixAccess struct {
	Location Loc
	Base     YulExpression
	Suffix   Identifier
}

func (YulSuffixAccess) yulExpressionNode() {}
func (n YulSuffixAccess) Loc() Loc         { return n.Location }

func (n YulSuffixAccess) ToDoc() doc.Doc {
	return n.Base.ToDoc().Append(doc.Text(".")).Append(n.Suffix.ToDoc())
}

// YulStatementEqual reports structural equality between two Yul
// statements, ignoring Location.
func YulStatementEqual(a, b YulStatement) bool {
	switch av := a.(type) {
	case YulBlock:
		bv, ok := b.(YulBlock)
		return ok && YulStatementListEqual(av.Stmts, bv.Stmts)
	case YulAssignStatement:
		bv, ok := b.(YulAssignStatement)
		if !ok || len(av.LHS) != len(bv.LHS) || !YulExpressionEqual(av.RHS, bv.RHS) {
			return false
		}
		for i := range av.LHS {
			if !YulExpressionEqual(av.LHS[i], bv.LHS[i]) {
				return false
			}
		}
		return true
	case YulVarDeclStatement:
		bv, ok := b.(YulVarDeclStatement)
		if !ok || len(av.Names) != len(bv.Names) {
			return false
		}
		for i := range av.Names {
			if !yulTypedIdentifierEqual(av.Names[i], bv.Names[i]) {
				return false
			}
		}
		if (av.RHS == nil) != (bv.RHS == nil) {
			return false
		}
		return av.RHS == nil || YulExpressionEqual(av.RHS, bv.RHS)
	case YulIfStatement:
		bv, ok := b.(YulIfStatement)
		return ok && YulExpressionEqual(av.Cond, bv.Cond) && YulStatementEqual(av.Body, bv.Body)
	case YulFor:
		bv, ok := b.(YulFor)
		return ok && YulStatementEqual(av.Init, bv.Init) && YulExpressionEqual(av.Cond, bv.Cond) &&
			YulStatementEqual(av.Post, bv.Post) && YulStatementEqual(av.Body, bv.Body)
	case YulSwitch:
		bv, ok := b.(YulSwitch)
		if !ok || !YulExpressionEqual(av.Cond, bv.Cond) || len(av.Options) != len(bv.Options) {
			return false
		}
		for i := range av.Options {
			ao, bo := av.Options[i], bv.Options[i]
			if ao.Kind != bo.Kind || !YulStatementEqual(ao.Body, bo.Body) {
				return false
			}
			if ao.Kind == YulSwitchCase && !YulExpressionEqual(ao.Value, bo.Value) {
				return false
			}
		}
		return true
	case YulLeaveStatement:
		_, ok := b.(YulLeaveStatement)
		return ok
	case YulBreakStatement:
		_, ok := b.(YulBreakStatement)
		return ok
	case YulContinueStatement:
		_, ok := b.(YulContinueStatement)
		return ok
	case *YulFunctionDefinition:
		bv, ok := b.(*YulFunctionDefinition)
		return ok && yulFunctionDefEqual(av, bv)
	case YulExpressionStatement:
		bv, ok := b.(YulExpressionStatement)
		return ok && YulExpressionEqual(av.Expr, bv.Expr)
	default:
		return false
	}
}

func yulFunctionDefEqual(a, b *YulFunctionDefinition) bool {
	if !a.Name.Equal(b.Name) || len(a.Params) != len(b.Params) || len(a.Returns) != len(b.Returns) {
		return false
	}
	for i := range a.Params {
		if !yulTypedIdentifierEqual(a.Params[i], b.Params[i]) {
			return false
		}
	}
	for i := range a.Returns {
		if !yulTypedIdentifierEqual(a.Returns[i], b.Returns[i]) {
			return false
		}
	}
	return YulStatementEqual(a.Body, b.Body)
}

// YulStatementListEqual reports element-wise structural equality of two
// Yul statement lists.
func YulStatementListEqual(a, b []YulStatement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !YulStatementEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// YulExpressionEqual reports structural equality between two Yul
// expressions, ignoring Location.
func YulExpressionEqual(a, b YulExpression) bool {
	switch av := a.(type) {
	case YulFunctionCall:
		bv, ok := b.(YulFunctionCall)
		if !ok || !av.Name.Equal(bv.Name) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !YulExpressionEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case YulBoolLiteral:
		bv, ok := b.(YulBoolLiteral)
		return ok && av.Value == bv.Value && optionalIdentifierEqual(av.Ty, bv.Ty)
	case YulNumberLiteral:
		bv, ok := b.(YulNumberLiteral)
		return ok && av.Value == bv.Value && optionalIdentifierEqual(av.Ty, bv.Ty)
	case YulHexNumberLiteral:
		bv, ok := b.(YulHexNumberLiteral)
		return ok && av.Value == bv.Value && optionalIdentifierEqual(av.Ty, bv.Ty)
	case YulHexStringLiteral:
		bv, ok := b.(YulHexStringLiteral)
		return ok && av.Value == bv.Value && optionalIdentifierEqual(av.Ty, bv.Ty)
	case YulStringLiteral:
		bv, ok := b.(YulStringLiteral)
		return ok && av.Value == bv.Value && optionalIdentifierEqual(av.Ty, bv.Ty)
	case YulVariable:
		bv, ok := b.(YulVariable)
		return ok && av.Name.Equal(bv.Name)
	case YulSuffixAccess:
		bv, ok := b.(YulSuffixAccess)
		return ok && YulExpressionEqual(av.Base, bv.Base) && av.Suffix.Equal(bv.Suffix)
	default:
		return false
	}
}
