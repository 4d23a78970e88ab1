package pt

// Several PT node kinds carry identity distinct from their structural
// content: two separately-parsed `struct Foo { uint x; }` definitions are
// structurally Equal but not the same declaration, and a resolved
// Expression needs to point back at the specific definition it refers to,
// not merely one that looks like it.
//
// Go's pointer equality already gives this for free - two *StructDefinition
// values compare equal with == (and hash identically as map keys) exactly
// when they are the same allocation - so definitions that need identity
// are modeled as pointer types rather than wrapped in a dedicated handle
// type. These aliases exist only to give that convention a name at call
// sites that pass definitions around as map keys or into sets.
type (
	StructHandle   = *StructDefinition
	EventHandle    = *EventDefinition
	ErrorHandle    = *ErrorDefinition
	EnumHandle     = *EnumDefinition
	ContractHandle = *ContractDefinition
	FunctionHandle = *FunctionDefinition
)
