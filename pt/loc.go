// Package pt is the core parse-tree: the source-located, value-typed model
// of a parsed Solidity source unit, a pretty-printer that renders it back
// to canonical Solidity text, and the location capabilities downstream
// passes use to report diagnostics.
//
// The tree is built top-down by an external lexer/parser (not part of this
// package) and is immutable afterwards; codegen (see package codegen)
// produces fresh sub-trees instead of mutating existing ones.
package pt

import "fmt"

// LocKind tags the variant of a Loc.
type LocKind int

const (
	// LocBuiltin marks a node that has no source origin: it refers to a
	// compiler-builtin symbol.
	LocBuiltin LocKind = iota
	// LocCommandLine marks a node synthesised from a command-line argument.
	LocCommandLine
	// LocImplicit marks a node the parser inserted without consuming any
	// source text (e.g. an implicit default visibility).
	LocImplicit
	// LocCodegen marks a node built by the codegen package rather than
	// parsed from source. See the codegen package's provenance contract.
	LocCodegen
	// LocFile marks a node with a real byte range in a source file.
	LocFile
)

// Loc is the source-location tag carried by (almost) every PT node: either
// one of four provenance sentinels, or a byte range within a numbered
// source file.
//
// Loc has no equality method that compares the file/start/end fields: by
// design every two Locs are considered equal for the purposes of
// comparing PT trees (see the Equal method on every node type throughout
// this package). This is what makes structural equality of a tree reflect
// its shape and content rather than where it was parsed from - snapshot
// tests and codegen-vs-parsed comparisons both rely on it. Go cannot
// override the `==` operator the way the original model does, so its
// fields are unexported and every node's Equal method simply never looks
// at Loc; callers must not rely on `==` over a Loc-containing struct to
// mean the same thing `Equal` does.
type Loc struct {
	kind   LocKind
	fileNo int
	start  int
	end    int
}

// Builtin, CommandLine, Implicit and Codegen are the four location
// sentinels; they carry no byte range.
var (
	Builtin     = Loc{kind: LocBuiltin}
	CommandLine = Loc{kind: LocCommandLine}
	Implicit    = Loc{kind: LocImplicit}
	Codegen     = Loc{kind: LocCodegen}
)

// NewFileLoc builds a Loc that points at [start, end) in file fileNo.
func NewFileLoc(fileNo, start, end int) Loc {
	return Loc{kind: LocFile, fileNo: fileNo, start: start, end: end}
}

// Kind reports which Loc variant l is.
func (l Loc) Kind() LocKind { return l.kind }

// IsFile reports whether l carries a real byte range.
func (l Loc) IsFile() bool { return l.kind == LocFile }

// IsCodegen reports whether l is the codegen provenance sentinel.
func (l Loc) IsCodegen() bool { return l.kind == LocCodegen }

// BeginRange collapses a File loc to a zero-width point at its start;
// sentinels are returned unchanged.
func (l Loc) BeginRange() Loc {
	if l.kind != LocFile {
		return l
	}
	return Loc{kind: LocFile, fileNo: l.fileNo, start: l.start, end: l.start}
}

// EndRange collapses a File loc to a zero-width point at its end;
// sentinels are returned unchanged.
func (l Loc) EndRange() Loc {
	if l.kind != LocFile {
		return l
	}
	return Loc{kind: LocFile, fileNo: l.fileNo, start: l.end, end: l.end}
}

// TryFileNo returns l's file number and true if l is a File loc, or
// (0, false) otherwise.
func (l Loc) TryFileNo() (int, bool) {
	if l.kind != LocFile {
		return 0, false
	}
	return l.fileNo, true
}

// FileNo returns l's file number. It panics if l is not a File loc: this
// is a programmer-contract violation per the error-handling design (§7),
// never expected to fire against a well-formed parser-produced tree.
func (l Loc) FileNo() int {
	if l.kind != LocFile {
		panic(fmt.Sprintf("pt: FileNo called on non-File Loc: %s", l))
	}
	return l.fileNo
}

// FileStart returns l's start byte offset. It panics if l is not a File loc.
func (l Loc) FileStart() int {
	if l.kind != LocFile {
		panic(fmt.Sprintf("pt: FileStart called on non-File Loc: %s", l))
	}
	return l.start
}

// FileEnd returns l's end byte offset. It panics if l is not a File loc.
func (l Loc) FileEnd() int {
	if l.kind != LocFile {
		panic(fmt.Sprintf("pt: FileEnd called on non-File Loc: %s", l))
	}
	return l.end
}

// UseEndFrom splices other's end offset into l, returning the updated Loc.
// Both l and other must be File locs; otherwise this is a programmer
// error and panics.
func (l Loc) UseEndFrom(other Loc) Loc {
	if l.kind != LocFile || other.kind != LocFile {
		panic(fmt.Sprintf("pt: UseEndFrom requires two File locs, got %s and %s", l, other))
	}
	l.end = other.end
	return l
}

// UseStartFrom splices other's start offset into l, returning the updated
// Loc. Both l and other must be File locs; otherwise this is a programmer
// error and panics.
func (l Loc) UseStartFrom(other Loc) Loc {
	if l.kind != LocFile || other.kind != LocFile {
		panic(fmt.Sprintf("pt: UseStartFrom requires two File locs, got %s and %s", l, other))
	}
	l.start = other.start
	return l
}

// String renders a diagnostic form of l; it is never used by the
// pretty-printer, only by panic messages and debug output.
func (l Loc) String() string {
	switch l.kind {
	case LocBuiltin:
		return "builtin"
	case LocCommandLine:
		return "command-line"
	case LocImplicit:
		return "implicit"
	case LocCodegen:
		return "codegen"
	case LocFile:
		return fmt.Sprintf("file#%d:%d-%d", l.fileNo, l.start, l.end)
	default:
		return "unknown-loc"
	}
}

// CodeLocation is implemented by every node that always has a location.
type CodeLocation interface {
	Loc() Loc
}

// OptionalCodeLocation is implemented by nodes whose location is itself
// optional (e.g. Visibility, whose specifier token may not exist if the
// visibility was implicit).
type OptionalCodeLocation interface {
	// OptionalLoc returns the node's location and true, or the zero Loc
	// and false if the node has no location of its own.
	OptionalLoc() (Loc, bool)
}
