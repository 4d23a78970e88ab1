package pt

import (
	"strings"

	"github.com/solgo/solpt/pt/doc"
)

// Identifier is a single lexical name with its source location.
type Identifier struct {
	Location Loc
	Name     string
}

// Loc implements CodeLocation.
func (n Identifier) Loc() Loc { return n.Location }

// ToDoc implements Docable.
func (n Identifier) ToDoc() doc.Doc { return doc.Text(n.Name) }

// String returns the identifier's name.
func (n Identifier) String() string { return n.Name }

// Equal reports structural equality, ignoring Location.
func (n Identifier) Equal(other Identifier) bool {
	return n.Name == other.Name
}

// IdentifierPath is an ordered, non-empty sequence of identifiers, printed
// dot-joined ("a.b.c"). An empty path (only reachable via the zero value)
// prints to the empty string.
type IdentifierPath struct {
	Location    Loc
	Identifiers []Identifier
}

// Loc implements CodeLocation.
func (n IdentifierPath) Loc() Loc { return n.Location }

// String dot-joins the path's identifier names in order.
func (n IdentifierPath) String() string {
	if len(n.Identifiers) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(n.Identifiers[0].Name)
	for _, id := range n.Identifiers[1:] {
		sb.WriteByte('.')
		sb.WriteString(id.Name)
	}
	return sb.String()
}

// ToDoc implements Docable.
func (n IdentifierPath) ToDoc() doc.Doc { return doc.Text(n.String()) }

// Equal reports structural equality, ignoring Location.
func (n IdentifierPath) Equal(other IdentifierPath) bool {
	if len(n.Identifiers) != len(other.Identifiers) {
		return false
	}
	for i := range n.Identifiers {
		if !n.Identifiers[i].Equal(other.Identifiers[i]) {
			return false
		}
	}
	return true
}

// CommentKind tags the variant of a Comment.
type CommentKind int

const (
	CommentLine CommentKind = iota
	CommentBlock
	CommentDocLine
	CommentDocBlock
)

// Comment is a comment token collected out-of-band by the lexer (§6): the
// printer never emits comments, they exist for other tooling (e.g. doc
// generators) to consume directly from the collected list.
type Comment struct {
	Kind     CommentKind
	Location Loc
	// Text is the raw comment text, including its delimiters
	// ("// ...", "/* ... */", "/// ...", "/** ... */").
	Text string
}

// Loc implements CodeLocation.
func (c Comment) Loc() Loc { return c.Location }

// Contents returns the comment's raw text.
func (c Comment) Contents() string { return c.Text }
