package pt

import "github.com/solgo/solpt/pt/doc"

// StorageLocationKind tags the variant of a StorageLocation.
type StorageLocationKind int

const (
	StorageMemory StorageLocationKind = iota
	StorageStorage
	StorageCalldata
)

// StorageLocation is a parameter's `memory`/`storage`/`calldata` keyword.
type StorageLocation struct {
	Location Loc
	Kind     StorageLocationKind
}

func (n StorageLocation) Loc() Loc { return n.Location }

func (n StorageLocation) ToDoc() doc.Doc {
	switch n.Kind {
	case StorageMemory:
		return doc.Text("memory")
	case StorageStorage:
		return doc.Text("storage")
	case StorageCalldata:
		return doc.Text("calldata")
	}
	unsupported("StorageLocation{unknown kind}", n)
	panic("unreachable")
}

// Parameter is a single `type [storage] [name]` slot, used in function
// parameter lists, return lists, and catch clauses.
type Parameter struct {
	Location Loc
	Ty       Expression
	Storage  *StorageLocation
	Name     *Identifier
}

func (n Parameter) Loc() Loc { return n.Location }

func (n Parameter) ToDoc() doc.Doc {
	d := n.Ty.ToDoc()
	if n.Storage != nil {
		d = d.Append(doc.Text(" ")).Append(n.Storage.ToDoc())
	}
	if n.Name != nil {
		d = d.Append(doc.Text(" ")).Append(n.Name.ToDoc())
	}
	return d
}

// Equal reports structural equality, ignoring Location.
func (n Parameter) Equal(other Parameter) bool {
	if !ExpressionEqual(n.Ty, other.Ty) {
		return false
	}
	if (n.Storage == nil) != (other.Storage == nil) {
		return false
	}
	if n.Storage != nil && n.Storage.Kind != other.Storage.Kind {
		return false
	}
	if (n.Name == nil) != (other.Name == nil) {
		return false
	}
	return n.Name == nil || n.Name.Equal(*other.Name)
}

// ParameterSlot is one entry of a ParameterList: Param is nil for a slot
// that was parsed as empty (a bare comma in a sparse tuple destructuring
// target), mirroring the original grammar's `(Loc, Option<Parameter>)`
// representation.
type ParameterSlot struct {
	Location Loc
	Param    *Parameter
}

// Loc implements CodeLocation.
func (s ParameterSlot) Loc() Loc { return s.Location }

// Equal reports structural equality, ignoring Location.
func (s ParameterSlot) Equal(other ParameterSlot) bool {
	if (s.Param == nil) != (other.Param == nil) {
		return false
	}
	return s.Param == nil || s.Param.Equal(*other.Param)
}

// ParameterList is an ordered, possibly sparse list of parameter slots.
type ParameterList []ParameterSlot

// MutabilityKind tags the variant of a Mutability attribute.
type MutabilityKind int

const (
	MutabilityPure MutabilityKind = iota
	MutabilityView
	MutabilityConstant
	MutabilityPayable
)

// Mutability is a function's `pure`/`view`/`constant`/`payable` attribute.
type Mutability struct {
	Location Loc
	Kind     MutabilityKind
}

func (n Mutability) Loc() Loc { return n.Location }

func (n Mutability) ToDoc() doc.Doc {
	switch n.Kind {
	case MutabilityPure:
		return doc.Text("pure")
	case MutabilityView:
		return doc.Text("view")
	case MutabilityConstant:
		return doc.Text("constant")
	case MutabilityPayable:
		return doc.Text("payable")
	}
	unsupported("Mutability{unknown kind}", n)
	panic("unreachable")
}

// VisibilityKind tags the variant of a Visibility attribute.
type VisibilityKind int

const (
	VisibilityExternal VisibilityKind = iota
	VisibilityPublic
	VisibilityInternal
	VisibilityPrivate
)

// Visibility is a function or state variable's visibility attribute. Its
// location is optional because the parser can synthesise an implicit
// default visibility without consuming a token (§3.2), hence
// OptionalCodeLocation rather than CodeLocation.
type Visibility struct {
	Location *Loc
	Kind     VisibilityKind
}

// OptionalLoc implements OptionalCodeLocation.
func (n Visibility) OptionalLoc() (Loc, bool) {
	if n.Location == nil {
		return Loc{}, false
	}
	return *n.Location, true
}

func (n Visibility) ToDoc() doc.Doc {
	switch n.Kind {
	case VisibilityExternal:
		return doc.Text("external")
	case VisibilityPublic:
		return doc.Text("public")
	case VisibilityInternal:
		return doc.Text("internal")
	case VisibilityPrivate:
		return doc.Text("private")
	}
	unsupported("Visibility{unknown kind}", n)
	panic("unreachable")
}

// FunctionAttributeKind tags the variant of a FunctionAttribute.
type FunctionAttributeKind int

const (
	FunctionAttrMutability FunctionAttributeKind = iota
	FunctionAttrVisibility
	FunctionAttrVirtual
	FunctionAttrImmutable
	FunctionAttrOverride
	// FunctionAttrBaseOrModifier covers a base-constructor-argument call
	// or modifier invocation used as a function attribute, e.g.
	// `Ownable(msg.sender)` or `onlyOwner`.
	FunctionAttrBaseOrModifier
)

// FunctionAttribute is one entry of a function's attribute list.
type FunctionAttribute struct {
	Location   Loc
	Kind       FunctionAttributeKind
	Mutability Mutability
	Visibility Visibility
	Base       *Base
	// Overrides holds the parenthesised identifier-path list of a
	// `override(Base1, Base2)` attribute; empty for a bare `override`.
	Overrides []IdentifierPath
}

func (n FunctionAttribute) Loc() Loc { return n.Location }

func (n FunctionAttribute) ToDoc() doc.Doc {
	switch n.Kind {
	case FunctionAttrMutability:
		return n.Mutability.ToDoc()
	case FunctionAttrVisibility:
		return n.Visibility.ToDoc()
	case FunctionAttrVirtual:
		return doc.Text("virtual")
	case FunctionAttrImmutable:
		return doc.Text("immutable")
	case FunctionAttrOverride:
		d := doc.Text("override")
		if len(n.Overrides) == 0 {
			return d
		}
		return d.Append(doc.ParenListToDoc(n.Overrides))
	case FunctionAttrBaseOrModifier:
		return n.Base.ToDoc()
	}
	unsupported("FunctionAttribute{unknown kind}", n)
	panic("unreachable")
}

// FunctionTy tags which kind of function-like definition a
// FunctionDefinition represents.
type FunctionTy int

const (
	FunctionTyFunction FunctionTy = iota
	FunctionTyConstructor
	FunctionTyFallback
	FunctionTyReceive
	FunctionTyModifier
)

// String renders the keyword introducing this function kind.
func (t FunctionTy) String() string {
	switch t {
	case FunctionTyFunction:
		return "function"
	case FunctionTyConstructor:
		return "constructor"
	case FunctionTyFallback:
		return "fallback"
	case FunctionTyReceive:
		return "receive"
	case FunctionTyModifier:
		return "modifier"
	default:
		return "function"
	}
}
