// Package codegen builds PT subtrees programmatically rather than via a
// parser: compiler-internal passes that synthesise Solidity source (ABI
// encoder helpers, event shims, library trampolines) construct their
// output with these builders instead of formatting text and re-parsing
// it. Every node produced here is stamped with pt.Codegen as its
// location, so a caller can always tell synthesised subtrees apart from
// ones a parser produced.
package codegen

import "github.com/solgo/solpt/pt"

// Id builds an Identifier with the given name and codegen provenance.
func Id(name string) pt.Identifier {
	return pt.Identifier{Location: pt.Codegen, Name: name}
}

// VarExpr builds a bare-identifier expression referring to name.
func VarExpr(name string) pt.Expression {
	return pt.VariableExpression{Name: Id(name)}
}

// TypeExpr wraps ty so it can be used in expression position (as a cast
// callee, a parameter's type, or `type(ty).max`).
func TypeExpr(ty pt.Type) pt.Expression {
	return pt.TypeExpression{Location: pt.Codegen, Ty: ty}
}

// Parameter builds a named `ty name` parameter.
func Parameter(name string, ty pt.Type) pt.Parameter {
	id := Id(name)
	return pt.Parameter{
		Location: pt.Codegen,
		Ty:       TypeExpr(ty),
		Storage:  nil,
		Name:     &id,
	}
}

// AnonParameter builds an unnamed `ty` parameter, used for return types
// and event/error parameter lists that don't need a name.
func AnonParameter(ty pt.Type) pt.Parameter {
	return pt.Parameter{Location: pt.Codegen, Ty: TypeExpr(ty)}
}

// NamedType pairs a parameter name with its type, the input shape every
// *List builder below takes.
type NamedType struct {
	Name string
	Ty   pt.Type
}

// ParameterList builds a dense (no empty slots) parameter list from
// name/type pairs.
func ParameterList(params []NamedType) pt.ParameterList {
	out := make(pt.ParameterList, len(params))
	for i, p := range params {
		param := Parameter(p.Name, p.Ty)
		out[i] = pt.ParameterSlot{Location: pt.Codegen, Param: &param}
	}
	return out
}

// AnonParameterList builds a dense parameter list of unnamed parameters,
// one per ty.
func AnonParameterList(tys []pt.Type) pt.ParameterList {
	out := make(pt.ParameterList, len(tys))
	for i, ty := range tys {
		param := AnonParameter(ty)
		out[i] = pt.ParameterSlot{Location: pt.Codegen, Param: &param}
	}
	return out
}

// EventParameter builds one entry of an event's parameter list.
func EventParameter(name string, ty pt.Type, indexed bool) pt.EventParameter {
	id := Id(name)
	return pt.EventParameter{Location: pt.Codegen, Ty: TypeExpr(ty), Indexed: indexed, Name: &id}
}

// ParamsToEventParams converts a dense parameter list into an event
// parameter list, preserving each parameter's name and type and marking
// none of them indexed; callers that need indexed fields build the
// EventParameter slice directly instead.
func ParamsToEventParams(params pt.ParameterList) []pt.EventParameter {
	out := make([]pt.EventParameter, 0, len(params))
	for _, slot := range params {
		out = append(out, paramToEventParam(slot.Param))
	}
	return out
}

func paramToEventParam(p *pt.Parameter) pt.EventParameter {
	if p == nil || p.Name == nil {
		panic("codegen: ParamsToEventParams requires every parameter to be named")
	}
	return pt.EventParameter{Location: pt.Codegen, Ty: p.Ty, Indexed: false, Name: p.Name}
}

// ParamsToArgs converts a dense, fully-named parameter list into a
// variable-expression argument list referring to each parameter by name -
// the shape needed to forward a function's own parameters into a call
// it wraps (e.g. an event emitted with the same arguments a function
// received).
func ParamsToArgs(params pt.ParameterList) []pt.Expression {
	out := make([]pt.Expression, 0, len(params))
	for _, slot := range params {
		out = append(out, paramToArg(slot.Param))
	}
	return out
}

func paramToArg(p *pt.Parameter) pt.Expression {
	if p == nil || p.Name == nil {
		panic("codegen: ParamsToArgs requires every parameter to be named")
	}
	return VarExpr(p.Name.Name)
}

// CallExpr builds `callee(args...)`.
func CallExpr(callee pt.Expression, args []pt.Expression) pt.Expression {
	return pt.FunctionCallExpression{Location: pt.Codegen, Callee: callee, Args: args}
}

// EmitStmt builds `emit event(args...);`.
func EmitStmt(event pt.Expression, args []pt.Expression) pt.Statement {
	return pt.EmitStatement{Location: pt.Codegen, Event: event, Args: args}
}

// BlockStmt builds `unchecked { stmts... }`. Codegen-produced blocks are
// always unchecked=true; a pass that needs checked arithmetic builds that
// BlockStatement directly.
func BlockStmt(stmts []pt.Statement) pt.Statement {
	return pt.BlockStatement{Location: pt.Codegen, Unchecked: true, Stmts: stmts}
}

// EventDef builds `event name(params...);`, converting params into event
// parameters via ParamsToEventParams.
func EventDef(name string, params pt.ParameterList) *pt.EventDefinition {
	return &pt.EventDefinition{
		Location: pt.Codegen,
		Name:     Id(name),
		Fields:   ParamsToEventParams(params),
	}
}

// FunctionDef builds a public function definition with the given name,
// parameters, return types and body. The canonical shape codegen
// produces is always `function name(params) public returns (returns)
// body`: callers that need a different visibility or mutability build
// the FunctionDefinition directly and use these helpers only for the
// parameter/body plumbing.
func FunctionDef(name string, params pt.ParameterList, returns []pt.Type, body pt.Statement) *pt.FunctionDefinition {
	return &pt.FunctionDefinition{
		Location: pt.Codegen,
		Ty:       pt.FunctionTyFunction,
		Name:     Id(name),
		Params:   params,
		Attrs: []pt.FunctionAttribute{
			{Location: pt.Codegen, Kind: pt.FunctionAttrVisibility, Visibility: pt.Visibility{Kind: pt.VisibilityPublic}},
		},
		Returns: AnonParameterList(returns),
		Body:    body,
	}
}
