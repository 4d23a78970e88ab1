package pt

import "github.com/solgo/solpt/pt/doc"

// StructDefinition is a `struct Name { ty name; ... }` declaration.
// Struct identity (e.g. for cross-referencing from an expression's
// resolved type) is the struct's own pointer: see StructHandle and the
// note on identity vs. structural equality in identity.go.
type StructDefinition struct {
	Location Loc
	Name     Identifier
	Fields   []VariableDeclaration
}

func (*StructDefinition) contractPartNode()  {}
func (*StructDefinition) sourceUnitPartNode() {}
func (n *StructDefinition) Loc() Loc         { return n.Location }

func (n *StructDefinition) ToDoc() doc.Doc {
	head := doc.Text("struct ").Append(n.Name.ToDoc()).Append(doc.Text(" {"))
	if len(n.Fields) == 0 {
		return head.Append(doc.Text("}"))
	}
	fields := make([]doc.Doc, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = f.ToDoc().Append(doc.Text(";"))
	}
	return head.Append(doc.IndentBlockToDoc(fields)).
		Append(doc.HardLine()).Append(doc.Text("}"))
}

// VariableDeclaration is a `type [storage] name` pair, used for struct
// fields and local variable definition statements.
type VariableDeclaration struct {
	Location Loc
	Ty       Expression
	Storage  *StorageLocation
	Name     Identifier
}

func (n VariableDeclaration) Loc() Loc { return n.Location }

func (n VariableDeclaration) ToDoc() doc.Doc {
	d := n.Ty.ToDoc()
	if n.Storage != nil {
		d = d.Append(doc.Text(" ")).Append(n.Storage.ToDoc())
	}
	return d.Append(doc.Text(" ")).Append(n.Name.ToDoc())
}

// EventParameter is one entry of an event's parameter list: `type
// [indexed] [name]`.
type EventParameter struct {
	Location Loc
	Ty       Expression
	Indexed  bool
	Name     *Identifier
}

func (n EventParameter) Loc() Loc { return n.Location }

func (n EventParameter) ToDoc() doc.Doc {
	d := n.Ty.ToDoc()
	if n.Indexed {
		d = d.Append(doc.Text(" indexed"))
	}
	if n.Name != nil {
		d = d.Append(doc.Text(" ")).Append(n.Name.ToDoc())
	}
	return d
}

// EventDefinition is an `event Name(params...) [anonymous];` declaration.
// Identity is the definition's own pointer.
type EventDefinition struct {
	Location  Loc
	Name      Identifier
	Fields    []EventParameter
	Anonymous bool
}

func (*EventDefinition) contractPartNode()  {}
func (*EventDefinition) sourceUnitPartNode() {}
func (n *EventDefinition) Loc() Loc         { return n.Location }

func (n *EventDefinition) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.ToDoc()
	}
	d := doc.Text("event ").Append(n.Name.ToDoc()).Append(doc.Text("(")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text(")"))
	if n.Anonymous {
		d = d.Append(doc.Text(" anonymous"))
	}
	return d.Append(doc.Text(";"))
}

// ErrorParameter is one entry of a custom error's parameter list: `type
// [name]`.
type ErrorParameter struct {
	Location Loc
	Ty       Expression
	Name     *Identifier
}

func (n ErrorParameter) Loc() Loc { return n.Location }

func (n ErrorParameter) ToDoc() doc.Doc {
	d := n.Ty.ToDoc()
	if n.Name != nil {
		d = d.Append(doc.Text(" ")).Append(n.Name.ToDoc())
	}
	return d
}

// ErrorDefinition is an `error Name(params...);` declaration.
type ErrorDefinition struct {
	Location Loc
	Name     Identifier
	Fields   []ErrorParameter
}

func (*ErrorDefinition) contractPartNode()  {}
func (*ErrorDefinition) sourceUnitPartNode() {}
func (n *ErrorDefinition) Loc() Loc         { return n.Location }

func (n *ErrorDefinition) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.ToDoc()
	}
	return doc.Text("error ").Append(n.Name.ToDoc()).Append(doc.Text("(")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text(");"))
}

// EnumDefinition is an `enum Name { A, B, ... }` declaration.
type EnumDefinition struct {
	Location Loc
	Name     Identifier
	Values   []Identifier
}

func (*EnumDefinition) contractPartNode()  {}
func (*EnumDefinition) sourceUnitPartNode() {}
func (n *EnumDefinition) Loc() Loc         { return n.Location }

func (n *EnumDefinition) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(n.Values))
	for i, v := range n.Values {
		parts[i] = v.ToDoc()
	}
	return doc.Text("enum ").Append(n.Name.ToDoc()).Append(doc.Text(" {")).
		Append(doc.Intersperse(parts, doc.Text(", "))).
		Append(doc.Text("}"))
}

// VariableAttributeKind tags the variant of a VariableAttribute.
type VariableAttributeKind int

const (
	VariableAttrVisibility VariableAttributeKind = iota
	VariableAttrConstant
	VariableAttrImmutable
	VariableAttrOverride
)

// VariableAttribute is one entry of a state variable's attribute list.
type VariableAttribute struct {
	Location   Loc
	Kind       VariableAttributeKind
	Visibility Visibility
}

func (n VariableAttribute) Loc() Loc { return n.Location }

func (n VariableAttribute) ToDoc() doc.Doc {
	switch n.Kind {
	case VariableAttrVisibility:
		return n.Visibility.ToDoc()
	case VariableAttrConstant:
		return doc.Text("constant")
	case VariableAttrImmutable:
		return doc.Text("immutable")
	case VariableAttrOverride:
		unsupported("VariableAttribute::Override", n)
		panic("unreachable")
	}
	unsupported("VariableAttribute{unknown kind}", n)
	panic("unreachable")
}

// VariableDefinition is a state variable declaration, with an optional
// initializer.
type VariableDefinition struct {
	Location Loc
	Ty       Expression
	Attrs    []VariableAttribute
	Name     Identifier
	Value    Expression
}

func (*VariableDefinition) contractPartNode()  {}
func (*VariableDefinition) sourceUnitPartNode() {}
func (n *VariableDefinition) Loc() Loc         { return n.Location }

func (n *VariableDefinition) ToDoc() doc.Doc {
	d := n.Ty.ToDoc()
	for _, a := range n.Attrs {
		d = d.Append(doc.Text(" ")).Append(a.ToDoc())
	}
	d = d.Append(doc.Text(" ")).Append(n.Name.ToDoc())
	if n.Value != nil {
		d = d.Append(doc.Text(" = ")).Append(n.Value.ToDoc())
	}
	return d.Append(doc.Text(";"))
}

// TypeDefinition is a `type Name is underlying;` user-defined value type.
type TypeDefinition struct {
	Location Loc
	Name     Identifier
	Ty       Expression
}

func (*TypeDefinition) contractPartNode()  {}
func (*TypeDefinition) sourceUnitPartNode() {}
func (n *TypeDefinition) Loc() Loc         { return n.Location }

func (n *TypeDefinition) ToDoc() doc.Doc {
	return doc.Text("type ").Append(n.Name.ToDoc()).Append(doc.Text(" is ")).
		Append(n.Ty.ToDoc()).Append(doc.Text(";"))
}

// UsingListKind tags whether a using directive names a single library or
// a brace-enclosed function list.
type UsingListKind int

const (
	UsingListLibrary UsingListKind = iota
	UsingListFunctions
)

// UsingList is a using directive's `Library` or `{fn1, fn2, ...}` target.
type UsingList struct {
	Location  Loc
	Kind      UsingListKind
	Library   IdentifierPath
	Functions []IdentifierPath
}

func (n UsingList) Loc() Loc { return n.Location }

func (n UsingList) ToDoc() doc.Doc {
	if n.Kind == UsingListLibrary {
		return n.Library.ToDoc()
	}
	parts := make([]doc.Doc, len(n.Functions))
	for i, f := range n.Functions {
		parts[i] = f.ToDoc()
	}
	return doc.Text("{").Append(doc.Intersperse(parts, doc.Text(", "))).Append(doc.Text("}"))
}

// UsingDirective is a `using List for Type;` declaration. The wildcard
// target (`using List for *`, Ty nil) and the `global` modifier are both
// outside the printer's supported subset and are fatal (§7).
type UsingDirective struct {
	Location Loc
	List     UsingList
	Ty       Expression
	Global   bool
}

func (*UsingDirective) contractPartNode()  {}
func (*UsingDirective) sourceUnitPartNode() {}
func (n *UsingDirective) Loc() Loc         { return n.Location }

func (n *UsingDirective) ToDoc() doc.Doc {
	assertf(n.Ty != nil, "UsingDirective{ty: nil}", n)
	assertf(!n.Global, "UsingDirective{global: true}", n)
	return doc.Text("using ").Append(n.List.ToDoc()).Append(doc.Text(" for ")).
		Append(n.Ty.ToDoc()).Append(doc.Text(";"))
}

// ImportKind tags the variant of an Import directive.
type ImportKind int

const (
	ImportPlain ImportKind = iota
	ImportGlobalSymbol
	ImportRename
)

// ImportRenameSlot is one `name [as alias]` entry of an `import {...}
// from "path";` directive.
type ImportRenameSlot struct {
	Name  Identifier
	Alias *Identifier
}

// Import is an `import "path";`, `import "path" as alias;`, or
// `import {a as b, c} from "path";` directive.
type Import struct {
	Location Loc
	Kind     ImportKind
	Path     StringLiteral
	Alias    *Identifier
	Renames  []ImportRenameSlot
}

func (*Import) sourceUnitPartNode() {}
func (n *Import) Loc() Loc         { return n.Location }

func (n *Import) ToDoc() doc.Doc {
	switch n.Kind {
	case ImportPlain:
		d := doc.Text("import ").Append(n.Path.ToDoc())
		return d.Append(doc.Text(";"))
	case ImportGlobalSymbol:
		d := doc.Text("import ").Append(n.Path.ToDoc()).Append(doc.Text(" as ")).Append(n.Alias.ToDoc())
		return d.Append(doc.Text(";"))
	case ImportRename:
		parts := make([]doc.Doc, len(n.Renames))
		for i, r := range n.Renames {
			d := r.Name.ToDoc()
			if r.Alias != nil {
				d = d.Append(doc.Text(" as ")).Append(r.Alias.ToDoc())
			}
			parts[i] = d
		}
		return doc.Text("import {").
			Append(doc.Intersperse(parts, doc.Text(", "))).
			Append(doc.Text("} from ")).
			Append(n.Path.ToDoc()).
			Append(doc.Text(";"))
	}
	unsupported("Import{unknown kind}", n)
	panic("unreachable")
}

// PragmaDirective is a `pragma name value;` declaration.
type PragmaDirective struct {
	Location Loc
	Name     Identifier
	Value    string
}

func (*PragmaDirective) sourceUnitPartNode() {}
func (n *PragmaDirective) Loc() Loc         { return n.Location }

func (n *PragmaDirective) ToDoc() doc.Doc {
	return doc.Text("pragma ").Append(n.Name.ToDoc()).Append(doc.Text(" ")).
		Append(doc.Text(n.Value)).Append(doc.Text(";"))
}

// Base is one `Name[(args...)]` entry of a contract's inheritance list, or
// a modifier-style invocation in a function's attribute list.
type Base struct {
	Location Loc
	Name     IdentifierPath
	Args     []Expression
	HasArgs  bool
}

func (n Base) Loc() Loc { return n.Location }

func (n Base) ToDoc() doc.Doc {
	d := n.Name.ToDoc()
	if !n.HasArgs {
		return d
	}
	parts := make([]doc.Doc, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.ToDoc()
	}
	return d.Append(doc.Text("(")).Append(doc.Intersperse(parts, doc.Text(", "))).Append(doc.Text(")"))
}

// ContractTyKind tags the variant of a ContractTy.
type ContractTyKind int

const (
	ContractTyAbstract ContractTyKind = iota
	ContractTyContract
	ContractTyInterface
	ContractTyLibrary
)

// ContractTy is the keyword introducing a ContractDefinition.
type ContractTy struct {
	Location Loc
	Kind     ContractTyKind
}

func (n ContractTy) Loc() Loc { return n.Location }

func (n ContractTy) ToDoc() doc.Doc {
	switch n.Kind {
	case ContractTyAbstract:
		return doc.Text("abstract contract")
	case ContractTyContract:
		return doc.Text("contract")
	case ContractTyInterface:
		return doc.Text("interface")
	case ContractTyLibrary:
		return doc.Text("library")
	}
	unsupported("ContractTy{unknown kind}", n)
	panic("unreachable")
}

// ContractPart is implemented by every declaration that may appear inside
// a contract body.
type ContractPart interface {
	CodeLocation
	Docable
	contractPartNode()
}

// ContractDefinition is a `contract Name is Base, ... { parts... }`
// declaration. Identity is the definition's own pointer.
type ContractDefinition struct {
	Location Loc
	Ty       ContractTy
	Name     Identifier
	Bases    []Base
	Parts    []ContractPart
}

func (*ContractDefinition) sourceUnitPartNode() {}
func (n *ContractDefinition) Loc() Loc         { return n.Location }

func (n *ContractDefinition) ToDoc() doc.Doc {
	d := n.Ty.ToDoc().Append(doc.Text(" ")).Append(n.Name.ToDoc())
	if len(n.Bases) > 0 {
		parts := make([]doc.Doc, len(n.Bases))
		for i, b := range n.Bases {
			parts[i] = b.ToDoc()
		}
		d = d.Append(doc.Text(" is ")).Append(doc.Intersperse(parts, doc.Text(", ")))
	}
	d = d.Append(doc.Text(" {"))
	if len(n.Parts) == 0 {
		return d.Append(doc.Text("}"))
	}
	parts := make([]doc.Doc, len(n.Parts))
	for i, p := range n.Parts {
		parts[i] = p.ToDoc()
	}
	return d.Append(doc.IndentBlockToDoc(parts)).
		Append(doc.HardLine()).Append(doc.Text("}"))
}

// StraySemicolon is a lone `;` accepted at source-unit level for
// compatibility with older Solidity sources.
type StraySemicolon struct {
	Location Loc
}

func (*StraySemicolon) sourceUnitPartNode() {}
func (n *StraySemicolon) Loc() Loc         { return n.Location }
func (n *StraySemicolon) ToDoc() doc.Doc   { return doc.Text(";") }

// SourceUnitPart is implemented by every declaration that may appear at
// the top level of a source file.
type SourceUnitPart interface {
	CodeLocation
	Docable
	sourceUnitPartNode()
}

// ContractPartEqual reports structural equality between two contract
// parts, ignoring Location. Mismatched dynamic types are never equal.
func ContractPartEqual(a, b ContractPart) bool {
	switch av := a.(type) {
	case *StructDefinition:
		bv, ok := b.(*StructDefinition)
		return ok && structDefEqual(av, bv)
	case *EventDefinition:
		bv, ok := b.(*EventDefinition)
		return ok && eventDefEqual(av, bv)
	case *ErrorDefinition:
		bv, ok := b.(*ErrorDefinition)
		return ok && errorDefEqual(av, bv)
	case *EnumDefinition:
		bv, ok := b.(*EnumDefinition)
		return ok && enumDefEqual(av, bv)
	case *VariableDefinition:
		bv, ok := b.(*VariableDefinition)
		return ok && variableDefEqual(av, bv)
	case *TypeDefinition:
		bv, ok := b.(*TypeDefinition)
		return ok && av.Name.Equal(bv.Name) && ExpressionEqual(av.Ty, bv.Ty)
	case *UsingDirective:
		bv, ok := b.(*UsingDirective)
		return ok && usingDirectiveEqual(av, bv)
	case *FunctionDefinition:
		bv, ok := b.(*FunctionDefinition)
		return ok && functionDefEqual(av, bv)
	default:
		return false
	}
}

// SourceUnitPartEqual reports structural equality between two source-unit
// parts, ignoring Location.
func SourceUnitPartEqual(a, b SourceUnitPart) bool {
	switch av := a.(type) {
	case *Import:
		bv, ok := b.(*Import)
		return ok && importEqual(av, bv)
	case *PragmaDirective:
		bv, ok := b.(*PragmaDirective)
		return ok && av.Name.Equal(bv.Name) && av.Value == bv.Value
	case *ContractDefinition:
		bv, ok := b.(*ContractDefinition)
		return ok && contractDefEqual(av, bv)
	case *StraySemicolon:
		_, ok := b.(*StraySemicolon)
		return ok
	case ContractPart:
		bv, ok := b.(ContractPart)
		return ok && ContractPartEqual(av, bv)
	default:
		return false
	}
}

func structDefEqual(a, b *StructDefinition) bool {
	if !a.Name.Equal(b.Name) || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if !variableDeclEqual(a.Fields[i], b.Fields[i]) {
			return false
		}
	}
	return true
}

func variableDeclEqual(a, b VariableDeclaration) bool {
	if !ExpressionEqual(a.Ty, b.Ty) || !a.Name.Equal(b.Name) {
		return false
	}
	if (a.Storage == nil) != (b.Storage == nil) {
		return false
	}
	return a.Storage == nil || a.Storage.Kind == b.Storage.Kind
}

func eventDefEqual(a, b *EventDefinition) bool {
	if !a.Name.Equal(b.Name) || a.Anonymous != b.Anonymous || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		af, bf := a.Fields[i], b.Fields[i]
		if !ExpressionEqual(af.Ty, bf.Ty) || af.Indexed != bf.Indexed {
			return false
		}
		if (af.Name == nil) != (bf.Name == nil) {
			return false
		}
		if af.Name != nil && !af.Name.Equal(*bf.Name) {
			return false
		}
	}
	return true
}

func errorDefEqual(a, b *ErrorDefinition) bool {
	if !a.Name.Equal(b.Name) || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		af, bf := a.Fields[i], b.Fields[i]
		if !ExpressionEqual(af.Ty, bf.Ty) {
			return false
		}
		if (af.Name == nil) != (bf.Name == nil) {
			return false
		}
		if af.Name != nil && !af.Name.Equal(*bf.Name) {
			return false
		}
	}
	return true
}

func enumDefEqual(a, b *EnumDefinition) bool {
	if !a.Name.Equal(b.Name) || len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !a.Values[i].Equal(b.Values[i]) {
			return false
		}
	}
	return true
}

func variableDefEqual(a, b *VariableDefinition) bool {
	if !ExpressionEqual(a.Ty, b.Ty) || !a.Name.Equal(b.Name) || len(a.Attrs) != len(b.Attrs) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i].Kind != b.Attrs[i].Kind {
			return false
		}
		if a.Attrs[i].Kind == VariableAttrVisibility && a.Attrs[i].Visibility.Kind != b.Attrs[i].Visibility.Kind {
			return false
		}
	}
	if (a.Value == nil) != (b.Value == nil) {
		return false
	}
	return a.Value == nil || ExpressionEqual(a.Value, b.Value)
}

func usingDirectiveEqual(a, b *UsingDirective) bool {
	if a.Global != b.Global || a.List.Kind != b.List.Kind {
		return false
	}
	if (a.Ty == nil) != (b.Ty == nil) {
		return false
	}
	if a.Ty != nil && !ExpressionEqual(a.Ty, b.Ty) {
		return false
	}
	if a.List.Kind == UsingListLibrary {
		return a.List.Library.Equal(b.List.Library)
	}
	if len(a.List.Functions) != len(b.List.Functions) {
		return false
	}
	for i := range a.List.Functions {
		if !a.List.Functions[i].Equal(b.List.Functions[i]) {
			return false
		}
	}
	return true
}

func importEqual(a, b *Import) bool {
	if a.Kind != b.Kind || !a.Path.Equal(b.Path) {
		return false
	}
	switch a.Kind {
	case ImportGlobalSymbol:
		return a.Alias.Equal(*b.Alias)
	case ImportRename:
		if len(a.Renames) != len(b.Renames) {
			return false
		}
		for i := range a.Renames {
			ar, br := a.Renames[i], b.Renames[i]
			if !ar.Name.Equal(br.Name) {
				return false
			}
			if (ar.Alias == nil) != (br.Alias == nil) {
				return false
			}
			if ar.Alias != nil && !ar.Alias.Equal(*br.Alias) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func contractDefEqual(a, b *ContractDefinition) bool {
	if a.Ty.Kind != b.Ty.Kind || !a.Name.Equal(b.Name) || len(a.Bases) != len(b.Bases) || len(a.Parts) != len(b.Parts) {
		return false
	}
	for i := range a.Bases {
		if !baseEqual(a.Bases[i], b.Bases[i]) {
			return false
		}
	}
	for i := range a.Parts {
		if !ContractPartEqual(a.Parts[i], b.Parts[i]) {
			return false
		}
	}
	return true
}

func baseEqual(a, b Base) bool {
	if !a.Name.Equal(b.Name) || a.HasArgs != b.HasArgs || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !ExpressionEqual(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}
