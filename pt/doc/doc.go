// Package doc implements the small document algebra the pretty-printer is
// built on: atomic text, concatenation, line breaks, indentation and
// fit-aware grouping, rendered to a string under a target column width.
//
// The shape mirrors the RcDoc builder used by solang-parser's Rust
// pretty-printer (text/append/nest/line/hardline/group), translated into a
// fluent Go value type so printer code reads the same way: chained
// Append calls instead of chained method calls on a trait object.
package doc

import "strings"

type kind int

const (
	kNil kind = iota
	kText
	kConcat
	kLine
	kHardLine
	kNest
	kGroup
)

// Doc is an immutable document fragment. The zero value is the empty
// document (equivalent to Nil()).
type Doc struct {
	kind   kind
	text   string
	parts  []Doc
	indent int
	inner  *Doc
}

// Docable is the capability every printable node exposes: the ability to
// render itself to a Doc. pt.Docable is an alias of this interface.
type Docable interface {
	ToDoc() Doc
}

// Nil is the empty document; Append-ing it is a no-op.
func Nil() Doc { return Doc{kind: kNil} }

// Text is an atomic, unbreakable run of characters.
func Text(s string) Doc { return Doc{kind: kText, text: s} }

// Line is a soft break: a single space when its enclosing Group renders
// flat, a newline (re-indented) otherwise. A Line with no enclosing Group
// always renders broken.
func Line() Doc { return Doc{kind: kLine} }

// HardLine always renders as a newline, and forces any enclosing Group to
// render broken (it can never be part of a flat rendering).
func HardLine() Doc { return Doc{kind: kHardLine} }

// Nest increases the indentation used by line breaks within d by n columns.
func Nest(n int, d Doc) Doc { return Doc{kind: kNest, indent: n, inner: &d} }

// Group renders d flat (Lines become spaces) if it fits in the remaining
// width and contains no HardLine; otherwise it renders d broken.
func Group(d Doc) Doc { return Doc{kind: kGroup, inner: &d} }

// Concat joins documents left to right with no separator.
func Concat(parts ...Doc) Doc { return Doc{kind: kConcat, parts: parts} }

// Space is a literal, unconditional space (distinct from Line, which
// becomes a newline when its group renders broken - Space never does).
func Space() Doc { return Text(" ") }

// Append concatenates d and other, mirroring RcDoc::append so printer code
// can be written as a left-to-right chain like the Rust original.
func (d Doc) Append(other Doc) Doc {
	return Doc{kind: kConcat, parts: []Doc{d, other}}
}

// Intersperse places sep between every pair of adjacent elements of parts.
func Intersperse(parts []Doc, sep Doc) Doc {
	if len(parts) == 0 {
		return Nil()
	}
	out := make([]Doc, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return Concat(out...)
}

// ListToDoc renders items comma-and-space separated, inline.
func ListToDoc[T Docable](items []T) Doc {
	parts := make([]Doc, len(items))
	for i, it := range items {
		parts[i] = it.ToDoc()
	}
	return Intersperse(parts, Text(",").Append(Space()))
}

// IndentListToDoc renders one item per line, each indented 4 columns and
// trailed by a comma, with a final hardline after the last item.
func IndentListToDoc[T Docable](items []T) Doc {
	parts := make([]Doc, len(items))
	for i, it := range items {
		parts[i] = Nest(4, HardLine().Append(it.ToDoc()).Append(Text(",")))
	}
	return Concat(parts...).Append(HardLine())
}

// IndentBlockToDoc renders one already-terminated item per line (each
// item supplies its own trailing ";" or similar), indented 4 columns.
// It does not add a line break after the final item - callers append
// their own HardLine before the closing brace, so that an empty item
// list can skip the break entirely and render as e.g. "{}" rather than
// leaving a blank line.
func IndentBlockToDoc(items []Doc) Doc {
	parts := make([]Doc, len(items))
	for i, it := range items {
		parts[i] = Nest(4, HardLine().Append(it))
	}
	return Concat(parts...)
}

// SpacedListToDoc renders items separated by a single space.
func SpacedListToDoc[T Docable](items []T) Doc {
	parts := make([]Doc, len(items))
	for i, it := range items {
		parts[i] = it.ToDoc()
	}
	return Intersperse(parts, Space())
}

// ParenListToDoc wraps a comma-and-space separated list in parentheses.
func ParenListToDoc[T Docable](items []T) Doc {
	return Text("(").Append(ListToDoc(items)).Append(Text(")"))
}

// ParamListToDoc wraps an already-rendered, possibly sparse parameter list
// (a Nil() entry marking an empty slot, e.g. `(uint, , address)`) in
// parentheses, comma-and-space separated.
func ParamListToDoc(items []Doc) Doc {
	return Text("(").Append(Intersperse(items, Text(", "))).Append(Text(")"))
}

// OptionBoxToDoc renders item's Doc, or Nil() if item is nil. Unlike
// OptionToDoc, item is itself the nilable value (an interface, standing in
// for an optional boxed trait object) rather than a pointer to one.
func OptionBoxToDoc(item Docable) Doc {
	if item == nil {
		return Nil()
	}
	return item.ToDoc()
}

// OptionToDoc renders item's Doc, or Nil() if item is nil.
func OptionToDoc[T Docable](item *T) Doc {
	if item == nil {
		return Nil()
	}
	return (*item).ToDoc()
}

// OptionSpaceToDoc renders item's Doc followed by a space, or Nil() if item
// is nil.
func OptionSpaceToDoc[T Docable](item *T) Doc {
	if item == nil {
		return Nil()
	}
	return (*item).ToDoc().Append(Space())
}

// SpaceIf returns a single space when cond is true, Nil() otherwise.
func SpaceIf(cond bool) Doc {
	if cond {
		return Space()
	}
	return Nil()
}

// Render lays d out as text under the given target column width.
func Render(d Doc, width int) string {
	var sb strings.Builder
	renderNode(&sb, d, width, 0, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, d Doc, width, indent, col int) int {
	switch d.kind {
	case kNil:
		return col
	case kText:
		sb.WriteString(d.text)
		return col + len(d.text)
	case kConcat:
		for _, p := range d.parts {
			col = renderNode(sb, p, width, indent, col)
		}
		return col
	case kLine, kHardLine:
		sb.WriteByte('\n')
		if indent > 0 {
			sb.WriteString(strings.Repeat(" ", indent))
		}
		return indent
	case kNest:
		return renderNode(sb, *d.inner, width, indent+d.indent, col)
	case kGroup:
		if w, ok := flatWidth(*d.inner); ok && col+w <= width {
			renderFlat(sb, *d.inner)
			return col + w
		}
		return renderNode(sb, *d.inner, width, indent, col)
	}
	return col
}

func renderFlat(sb *strings.Builder, d Doc) {
	switch d.kind {
	case kNil:
	case kText:
		sb.WriteString(d.text)
	case kConcat:
		for _, p := range d.parts {
			renderFlat(sb, p)
		}
	case kLine:
		sb.WriteByte(' ')
	case kHardLine:
		// unreachable: flatWidth rejects any Doc containing a HardLine.
	case kNest:
		renderFlat(sb, *d.inner)
	case kGroup:
		renderFlat(sb, *d.inner)
	}
}

// flatWidth returns the column width d would occupy if rendered flat, and
// false if d can never be flattened (it contains a HardLine).
func flatWidth(d Doc) (int, bool) {
	switch d.kind {
	case kNil:
		return 0, true
	case kText:
		return len(d.text), true
	case kConcat:
		total := 0
		for _, p := range d.parts {
			w, ok := flatWidth(p)
			if !ok {
				return 0, false
			}
			total += w
		}
		return total, true
	case kLine:
		return 1, true
	case kHardLine:
		return 0, false
	case kNest:
		return flatWidth(*d.inner)
	case kGroup:
		return flatWidth(*d.inner)
	}
	return 0, true
}
