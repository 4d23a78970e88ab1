package pt

import "github.com/solgo/solpt/pt/doc"

// SourceUnit is a whole parsed Solidity file: an ordered sequence of
// top-level declarations.
type SourceUnit struct {
	Parts []SourceUnitPart
}

// ToDoc implements Docable, rendering each part on its own line(s)
// separated by a blank line, in source order.
func (u SourceUnit) ToDoc() doc.Doc {
	parts := make([]doc.Doc, len(u.Parts))
	for i, p := range u.Parts {
		parts[i] = p.ToDoc()
	}
	return doc.Intersperse(parts, doc.HardLine().Append(doc.HardLine()))
}

// Equal reports structural equality between two source units, ignoring
// Location throughout.
func (u SourceUnit) Equal(other SourceUnit) bool {
	if len(u.Parts) != len(other.Parts) {
		return false
	}
	for i := range u.Parts {
		if !SourceUnitPartEqual(u.Parts[i], other.Parts[i]) {
			return false
		}
	}
	return true
}
