package pt

import (
	"fmt"

	"github.com/solgo/solpt/pt/doc"
)

// Docable is the capability every printable PT node exposes.
type Docable = doc.Docable

// DefaultWidth is the target column width used when none is supplied to
// Display.
const DefaultWidth = 70

// PrinterError reports an attempt to print a PT construct the
// pretty-printer does not support (§4.4/§7): assembly statements,
// RevertNamedArgs, Try, array slices, named function calls, and a few
// Type/attribute forms. These are fatal by design - the printer only
// covers a documented subset of Solidity - so Display recovers the
// panic raised by ToDoc and turns it into this error instead of letting
// it escape as a bare runtime panic.
type PrinterError struct {
	Variant string
	Dump    string
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("pt: unsupported construct %s: %s", e.Variant, e.Dump)
}

// unsupported panics with a PrinterError naming variant and dumping node.
// Every ToDoc method that hits a construct outside the printer's
// supported subset calls this instead of returning an error, because
// threading an error return through the recursive Docable.ToDoc chain
// would mean every combinator in package doc also has to propagate one.
func unsupported(variant string, node any) {
	panic(&PrinterError{Variant: variant, Dump: fmt.Sprintf("%#v", node)})
}

// assertf panics with a PrinterError if cond is false. Used for the
// printer's assertion-style preconditions (e.g. Using.ty must be present,
// FunctionDefinition must be named unless it is a constructor).
func assertf(cond bool, variant string, node any) {
	if !cond {
		unsupported(variant, node)
	}
}

// Display renders node to canonical Solidity text at the given target
// column width, or returns a *PrinterError if node's subtree contains a
// construct outside the printer's supported subset.
func Display(node Docable, width int) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*PrinterError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	return doc.Render(node.ToDoc(), width), nil
}

// MustDisplay is Display with the default width, panicking on failure.
// It is meant for codegen call sites and tests where the input is known
// to be within the printer's supported subset.
func MustDisplay(node Docable) string {
	s, err := Display(node, DefaultWidth)
	if err != nil {
		panic(err)
	}
	return s
}
