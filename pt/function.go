package pt

import "github.com/solgo/solpt/pt/doc"

// FunctionDefinition covers every function-like declaration - ordinary
// functions, constructors, fallback/receive, and modifiers - distinguished
// by Ty, mirroring how the grammar shares one production across all of
// them. Name is the zero Identifier for constructor/fallback/receive.
// Identity is the definition's own pointer.
type FunctionDefinition struct {
	Location Loc
	Ty       FunctionTy
	Name     Identifier
	Params   ParameterList
	Attrs    []FunctionAttribute
	Returns  ParameterList
	// Body is nil for a function declared without an implementation
	// (an interface method, or an abstract function).
	Body Statement
}

func (*FunctionDefinition) contractPartNode()  {}
func (*FunctionDefinition) sourceUnitPartNode() {}
func (n *FunctionDefinition) Loc() Loc         { return n.Location }

func (n *FunctionDefinition) ToDoc() doc.Doc {
	assertf(n.Name.Name != "" || n.Ty == FunctionTyConstructor || n.Ty == FunctionTyFallback || n.Ty == FunctionTyReceive,
		"FunctionDefinition{unnamed}", n)

	params := make([]doc.Doc, len(n.Params))
	for i, p := range n.Params {
		if p.Param == nil {
			params[i] = doc.Nil()
			continue
		}
		params[i] = p.Param.ToDoc()
	}
	d := doc.Text(n.Ty.String())
	if n.Ty != FunctionTyConstructor && n.Ty != FunctionTyFallback && n.Ty != FunctionTyReceive {
		d = d.Append(doc.Text(" ")).Append(n.Name.ToDoc())
	}
	d = d.Append(doc.ParamListToDoc(params))
	for _, a := range n.Attrs {
		d = d.Append(doc.Text(" ")).Append(a.ToDoc())
	}
	if len(n.Returns) > 0 {
		returns := make([]doc.Doc, len(n.Returns))
		for i, r := range n.Returns {
			if r.Param == nil {
				returns[i] = doc.Nil()
				continue
			}
			returns[i] = r.Param.ToDoc()
		}
		d = d.Append(doc.Text(" returns ")).Append(doc.ParamListToDoc(returns))
	}
	if n.Body == nil {
		return d.Append(doc.Text(";"))
	}
	return d.Append(doc.Text(" ")).Append(n.Body.ToDoc())
}

func functionDefEqual(a, b *FunctionDefinition) bool {
	if a.Ty != b.Ty || !a.Name.Equal(b.Name) {
		return false
	}
	if len(a.Params) != len(b.Params) || len(a.Returns) != len(b.Returns) || len(a.Attrs) != len(b.Attrs) {
		return false
	}
	for i := range a.Params {
		if !a.Params[i].Equal(b.Params[i]) {
			return false
		}
	}
	for i := range a.Returns {
		if !a.Returns[i].Equal(b.Returns[i]) {
			return false
		}
	}
	for i := range a.Attrs {
		if !functionAttrEqual(a.Attrs[i], b.Attrs[i]) {
			return false
		}
	}
	if (a.Body == nil) != (b.Body == nil) {
		return false
	}
	return a.Body == nil || StatementEqual(a.Body, b.Body)
}

func functionAttrEqual(a, b FunctionAttribute) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case FunctionAttrMutability:
		return a.Mutability.Kind == b.Mutability.Kind
	case FunctionAttrVisibility:
		return a.Visibility.Kind == b.Visibility.Kind
	case FunctionAttrBaseOrModifier:
		return baseEqual(*a.Base, *b.Base)
	case FunctionAttrOverride:
		if len(a.Overrides) != len(b.Overrides) {
			return false
		}
		for i := range a.Overrides {
			if !a.Overrides[i].Equal(b.Overrides[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
