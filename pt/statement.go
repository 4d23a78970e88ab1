package pt

import "github.com/solgo/solpt/pt/doc"

// Statement is implemented by every statement-position PT node.
type Statement interface {
	CodeLocation
	Docable
	statementNode()
}

// BlockStatement is `{ stmts... }`, optionally marked `unchecked`.
type BlockStatement struct {
	Location  Loc
	Unchecked bool
	Stmts     []Statement
}

func (BlockStatement) statementNode() {}
func (n BlockStatement) Loc() Loc     { return n.Location }

func (n BlockStatement) ToDoc() doc.Doc {
	open := "{"
	if n.Unchecked {
		open = "unchecked {"
	}
	if len(n.Stmts) == 0 {
		return doc.Text(open + "}")
	}
	parts := make([]doc.Doc, len(n.Stmts))
	for i, s := range n.Stmts {
		parts[i] = s.ToDoc()
	}
	return doc.Text(open).Append(doc.IndentBlockToDoc(parts)).
		Append(doc.HardLine()).Append(doc.Text("}"))
}

// AssemblyStatement is an inline `assembly { ... }` block; outside the
// printer's supported subset (§4.4).
type AssemblyStatement struct {
	Location Loc
	Dialect  string
	Body     YulBlock
}

func (AssemblyStatement) statementNode() {}
func (n AssemblyStatement) Loc() Loc     { return n.Location }

func (n AssemblyStatement) ToDoc() doc.Doc {
	unsupported("AssemblyStatement", n)
	panic("unreachable")
}

// ArgsStatement is a bare list of `name: value` named arguments used as a
// statement, printed space-separated with no braces or commas; the
// enclosing context (not this node) supplies any surrounding parentheses.
type ArgsStatement struct {
	Location Loc
	Args     []NamedArgument
}

func (ArgsStatement) statementNode() {}
func (n ArgsStatement) Loc() Loc     { return n.Location }

func (n ArgsStatement) ToDoc() doc.Doc {
	return doc.SpacedListToDoc(n.Args)
}

// IfStatement is `if (cond) body [else elseBranch]`.
type IfStatement struct {
	Location    Loc
	Cond        Expression
	Body        Statement
	ElseBranch  Statement
}

func (IfStatement) statementNode() {}
func (n IfStatement) Loc() Loc     { return n.Location }

func (n IfStatement) ToDoc() doc.Doc {
	d := doc.Text("if (").Append(n.Cond.ToDoc()).Append(doc.Text(") ")).Append(n.Body.ToDoc())
	if n.ElseBranch != nil {
		d = d.Append(doc.Text(" else ")).Append(n.ElseBranch.ToDoc())
	}
	return d
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Location Loc
	Cond     Expression
	Body     Statement
}

func (WhileStatement) statementNode() {}
func (n WhileStatement) Loc() Loc     { return n.Location }

func (n WhileStatement) ToDoc() doc.Doc {
	return doc.Text("while (").Append(n.Cond.ToDoc()).Append(doc.Text(") ")).Append(n.Body.ToDoc())
}

// ExpressionStatement is a bare `expr;`.
type ExpressionStatement struct {
	Location Loc
	Expr     Expression
}

func (ExpressionStatement) statementNode() {}
func (n ExpressionStatement) Loc() Loc     { return n.Location }

func (n ExpressionStatement) ToDoc() doc.Doc {
	return n.Expr.ToDoc().Append(doc.Text(";"))
}

// VariableDefinitionStatement is a local variable declaration statement,
// with an optional initializer.
type VariableDefinitionStatement struct {
	Location Loc
	Decl     VariableDeclaration
	Value    Expression
}

func (VariableDefinitionStatement) statementNode() {}
func (n VariableDefinitionStatement) Loc() Loc      { return n.Location }

func (n VariableDefinitionStatement) ToDoc() doc.Doc {
	d := n.Decl.ToDoc()
	if n.Value != nil {
		d = d.Append(doc.Text(" = ")).Append(n.Value.ToDoc())
	}
	return d.Append(doc.Text(";"))
}

// ForStatement is `for (init; cond; next) body`. Init, Cond and Next may
// each be nil (an omitted clause).
type ForStatement struct {
	Location Loc
	Init     Statement
	Cond     Expression
	Next     Statement
	Body     Statement
}

func (ForStatement) statementNode() {}
func (n ForStatement) Loc() Loc     { return n.Location }

func (n ForStatement) ToDoc() doc.Doc {
	d := doc.Text("for (")
	if n.Init != nil {
		d = d.Append(n.Init.ToDoc())
	} else {
		d = d.Append(doc.Text(";"))
	}
	d = d.Append(doc.Text(" "))
	if n.Cond != nil {
		d = d.Append(n.Cond.ToDoc())
	}
	d = d.Append(doc.Text("; "))
	if n.Next != nil {
		// Next is rendered without its own statement-terminating
		// semicolon: strip a trailing expression-statement wrapper.
		if es, ok := n.Next.(ExpressionStatement); ok {
			d = d.Append(es.Expr.ToDoc())
		} else {
			d = d.Append(n.Next.ToDoc())
		}
	}
	d = d.Append(doc.Text(") "))
	if n.Body != nil {
		d = d.Append(n.Body.ToDoc())
	} else {
		d = d.Append(doc.Text(";"))
	}
	return d
}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	Location Loc
	Body     Statement
	Cond     Expression
}

func (DoWhileStatement) statementNode() {}
func (n DoWhileStatement) Loc() Loc     { return n.Location }

func (n DoWhileStatement) ToDoc() doc.Doc {
	return doc.Text("do ").Append(n.Body.ToDoc()).
		Append(doc.Text(" while (")).Append(n.Cond.ToDoc()).Append(doc.Text(");"))
}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Location Loc }

func (ContinueStatement) statementNode()  {}
func (n ContinueStatement) Loc() Loc      { return n.Location }
func (n ContinueStatement) ToDoc() doc.Doc { return doc.Text("continue;") }

// BreakStatement is `break;`.
type BreakStatement struct{ Location Loc }

func (BreakStatement) statementNode()  {}
func (n BreakStatement) Loc() Loc      { return n.Location }
func (n BreakStatement) ToDoc() doc.Doc { return doc.Text("break;") }

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Location Loc
	Value    Expression
}

func (ReturnStatement) statementNode() {}
func (n ReturnStatement) Loc() Loc     { return n.Location }

func (n ReturnStatement) ToDoc() doc.Doc {
	if n.Value == nil {
		return doc.Text("return;")
	}
	return doc.Text("return ").Append(n.Value.ToDoc()).Append(doc.Text(";"))
}

// RevertStatement is `revert [callee](args...);`.
type RevertStatement struct {
	Location Loc
	Callee   Expression
	Args     []Expression
}

func (RevertStatement) statementNode() {}
func (n RevertStatement) Loc() Loc     { return n.Location }

func (n RevertStatement) ToDoc() doc.Doc {
	d := doc.Text("revert")
	if n.Callee != nil {
		d = d.Append(doc.Text(" ")).Append(n.Callee.ToDoc())
	} else {
		d = d.Append(doc.Text(" "))
	}
	parts := make([]doc.Doc, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.ToDoc()
	}
	return d.Append(doc.Text("(")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text(");"))
}

// RevertNamedArgsStatement is `revert callee({name: value, ...});`;
// outside the printer's supported subset (§4.4).
type RevertNamedArgsStatement struct {
	Location Loc
	Callee   Expression
	Args     []NamedArgument
}

func (RevertNamedArgsStatement) statementNode() {}
func (n RevertNamedArgsStatement) Loc() Loc      { return n.Location }

func (n RevertNamedArgsStatement) ToDoc() doc.Doc {
	unsupported("RevertNamedArgsStatement", n)
	panic("unreachable")
}

// EmitStatement is `emit Event(args...);`.
type EmitStatement struct {
	Location Loc
	Event    Expression
	Args     []Expression
}

func (EmitStatement) statementNode() {}
func (n EmitStatement) Loc() Loc     { return n.Location }

func (n EmitStatement) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.ToDoc()
	}
	return doc.Text("emit ").Append(n.Event.ToDoc()).Append(doc.Text("(")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text(");"))
}

// CatchClauseKind tags the variant of a CatchClause.
type CatchClauseKind int

const (
	// CatchSimple is a bare `catch { ... }` or `catch (bytes memory e) { ... }`.
	CatchSimple CatchClauseKind = iota
	// CatchNamed is `catch Error(string memory reason) { ... }` or
	// `catch Panic(uint errorCode) { ... }`.
	CatchNamed
)

// CatchClause is one `catch` arm of a TryStatement.
type CatchClause struct {
	Location Loc
	Kind     CatchClauseKind
	Name     Identifier // only set for CatchNamed
	Param    *Parameter
	Body     Statement
}

func (n CatchClause) Loc() Loc { return n.Location }

func (n CatchClause) ToDoc() doc.Doc {
	d := doc.Text("catch ")
	if n.Kind == CatchNamed {
		d = d.Append(n.Name.ToDoc()).Append(doc.Text(" "))
	}
	if n.Param != nil {
		d = d.Append(doc.Text("(")).Append(n.Param.ToDoc()).Append(doc.Text(") "))
	}
	return d.Append(n.Body.ToDoc())
}

// TryStatement is `try callee(args...) returns (params...) body
// catches...`; the printer does not support it (§4.4) but the full shape
// is still modeled so downstream passes (e.g. a linter) can consume it.
type TryStatement struct {
	Location Loc
	Expr     Expression
	Returns  ParameterList
	Body     Statement
	Catches  []CatchClause
}

func (TryStatement) statementNode() {}
func (n TryStatement) Loc() Loc     { return n.Location }

func (n TryStatement) ToDoc() doc.Doc {
	unsupported("TryStatement", n)
	panic("unreachable")
}

// StatementEqual reports structural equality between two statements,
// ignoring Location. Mismatched dynamic types are never equal.
func StatementEqual(a, b Statement) bool {
	switch av := a.(type) {
	case BlockStatement:
		bv, ok := b.(BlockStatement)
		return ok && blockEqual(av, bv)
	case AssemblyStatement:
		bv, ok := b.(AssemblyStatement)
		return ok && av.Dialect == bv.Dialect && YulStatementListEqual(av.Body.Stmts, bv.Body.Stmts)
	case ArgsStatement:
		bv, ok := b.(ArgsStatement)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !av.Args[i].Equal(bv.Args[i]) {
				return false
			}
		}
		return true
	case IfStatement:
		bv, ok := b.(IfStatement)
		if !ok || !ExpressionEqual(av.Cond, bv.Cond) || !StatementEqual(av.Body, bv.Body) {
			return false
		}
		if (av.ElseBranch == nil) != (bv.ElseBranch == nil) {
			return false
		}
		return av.ElseBranch == nil || StatementEqual(av.ElseBranch, bv.ElseBranch)
	case WhileStatement:
		bv, ok := b.(WhileStatement)
		return ok && ExpressionEqual(av.Cond, bv.Cond) && StatementEqual(av.Body, bv.Body)
	case ExpressionStatement:
		bv, ok := b.(ExpressionStatement)
		return ok && ExpressionEqual(av.Expr, bv.Expr)
	case VariableDefinitionStatement:
		bv, ok := b.(VariableDefinitionStatement)
		if !ok || !variableDeclEqual(av.Decl, bv.Decl) {
			return false
		}
		if (av.Value == nil) != (bv.Value == nil) {
			return false
		}
		return av.Value == nil || ExpressionEqual(av.Value, bv.Value)
	case ForStatement:
		bv, ok := b.(ForStatement)
		return ok && forEqual(av, bv)
	case DoWhileStatement:
		bv, ok := b.(DoWhileStatement)
		return ok && StatementEqual(av.Body, bv.Body) && ExpressionEqual(av.Cond, bv.Cond)
	case ContinueStatement:
		_, ok := b.(ContinueStatement)
		return ok
	case BreakStatement:
		_, ok := b.(BreakStatement)
		return ok
	case ReturnStatement:
		bv, ok := b.(ReturnStatement)
		if !ok {
			return false
		}
		if (av.Value == nil) != (bv.Value == nil) {
			return false
		}
		return av.Value == nil || ExpressionEqual(av.Value, bv.Value)
	case RevertStatement:
		bv, ok := b.(RevertStatement)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		if (av.Callee == nil) != (bv.Callee == nil) {
			return false
		}
		if av.Callee != nil && !ExpressionEqual(av.Callee, bv.Callee) {
			return false
		}
		for i := range av.Args {
			if !ExpressionEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case RevertNamedArgsStatement:
		bv, ok := b.(RevertNamedArgsStatement)
		if !ok || !ExpressionEqual(av.Callee, bv.Callee) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !av.Args[i].Equal(bv.Args[i]) {
				return false
			}
		}
		return true
	case EmitStatement:
		bv, ok := b.(EmitStatement)
		if !ok || !ExpressionEqual(av.Event, bv.Event) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !ExpressionEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case TryStatement:
		bv, ok := b.(TryStatement)
		return ok && tryEqual(av, bv)
	default:
		return false
	}
}

func blockEqual(a, b BlockStatement) bool {
	if a.Unchecked != b.Unchecked || len(a.Stmts) != len(b.Stmts) {
		return false
	}
	for i := range a.Stmts {
		if !StatementEqual(a.Stmts[i], b.Stmts[i]) {
			return false
		}
	}
	return true
}

func forEqual(a, b ForStatement) bool {
	if (a.Init == nil) != (b.Init == nil) || (a.Cond == nil) != (b.Cond == nil) || (a.Next == nil) != (b.Next == nil) {
		return false
	}
	if a.Init != nil && !StatementEqual(a.Init, b.Init) {
		return false
	}
	if a.Cond != nil && !ExpressionEqual(a.Cond, b.Cond) {
		return false
	}
	if a.Next != nil && !StatementEqual(a.Next, b.Next) {
		return false
	}
	return StatementEqual(a.Body, b.Body)
}

func tryEqual(a, b TryStatement) bool {
	if !ExpressionEqual(a.Expr, b.Expr) || len(a.Returns) != len(b.Returns) || len(a.Catches) != len(b.Catches) {
		return false
	}
	for i := range a.Returns {
		if !a.Returns[i].Equal(b.Returns[i]) {
			return false
		}
	}
	if !StatementEqual(a.Body, b.Body) {
		return false
	}
	for i := range a.Catches {
		ac, bc := a.Catches[i], b.Catches[i]
		if ac.Kind != bc.Kind || !StatementEqual(ac.Body, bc.Body) {
			return false
		}
		if ac.Kind == CatchNamed && !ac.Name.Equal(bc.Name) {
			return false
		}
		if (ac.Param == nil) != (bc.Param == nil) {
			return false
		}
		if ac.Param != nil && !ac.Param.Equal(*bc.Param) {
			return false
		}
	}
	return true
}
