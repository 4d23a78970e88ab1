package doc_test

import (
	"testing"

	"github.com/solgo/solpt/pt/doc"
)

// rawDoc lets a plain doc.Doc satisfy doc.Docable for combinator tests.
type rawDoc struct{ d doc.Doc }

func (r rawDoc) ToDoc() doc.Doc { return r.d }

func TestRenderText(t *testing.T) {
	got := doc.Render(doc.Text("hello"), 70)
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestRenderConcatAndAppend(t *testing.T) {
	d := doc.Text("a").Append(doc.Text("b")).Append(doc.Text("c"))
	got := doc.Render(d, 70)
	if got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}

func TestRenderHardLineIndents(t *testing.T) {
	d := doc.Text("{").Append(doc.Nest(4, doc.HardLine().Append(doc.Text("x")))).Append(doc.HardLine()).Append(doc.Text("}"))
	got := doc.Render(d, 70)
	want := "{\n    x\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGroupFlattensWhenItFits(t *testing.T) {
	d := doc.Group(doc.Text("a").Append(doc.Line()).Append(doc.Text("b")))
	got := doc.Render(d, 70)
	if got != "a b" {
		t.Fatalf("got %q, want %q", got, "a b")
	}
}

func TestGroupBreaksWhenItContainsHardLine(t *testing.T) {
	d := doc.Group(doc.Text("a").Append(doc.HardLine()).Append(doc.Text("b")))
	got := doc.Render(d, 70)
	if got != "a\nb" {
		t.Fatalf("got %q, want %q", got, "a\nb")
	}
}

func TestListToDoc(t *testing.T) {
	items := []rawDoc{{doc.Text("1")}, {doc.Text("2")}, {doc.Text("3")}}
	got := doc.Render(doc.ListToDoc(items), 70)
	if got != "1, 2, 3" {
		t.Fatalf("got %q, want %q", got, "1, 2, 3")
	}
}

func TestIndentListToDoc(t *testing.T) {
	items := []rawDoc{{doc.Text("a")}, {doc.Text("b")}}
	got := doc.Render(doc.IndentListToDoc(items), 70)
	want := "\n    a,\n    b,\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
