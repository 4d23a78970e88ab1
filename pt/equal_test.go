package pt_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/r3labs/diff/v2"
	"github.com/solgo/solpt/pt"
)

// assertEqualIgnoringLocation reports a field-level diff instead of a
// bare "not equal" failure, the same way the teacher's deepest
// tree-equality tests use r3labs/diff/v2 to make a structural mismatch
// readable.
func assertEqualIgnoringLocation(t *testing.T, want, got any) {
	t.Helper()
	differences, err := diff.Diff(want, got)
	if err != nil {
		t.Fatalf("cannot compare: %v", err)
	}
	var relevant []diff.Change
	for _, d := range differences {
		path := strings.Join(d.Path, ".")
		if strings.Contains(path, "Location") {
			continue
		}
		relevant = append(relevant, d)
	}
	if len(relevant) > 0 {
		for _, d := range relevant {
			t.Errorf("%s: %v -> %v", strings.Join(d.Path, "."), d.From, d.To)
		}
	}
}

func TestParameterListEqualAcrossLocations(t *testing.T) {
	build := func(loc pt.Loc) pt.ParameterList {
		p := pt.Parameter{Location: loc, Ty: ty(pt.TypeUint, 256), Name: ptrID("amount")}
		return pt.ParameterList{{Location: loc, Param: &p}}
	}

	parsed := build(pt.NewFileLoc(0, 10, 30))
	synthesised := build(pt.Codegen)

	if len(parsed) != len(synthesised) || !parsed[0].Equal(synthesised[0]) {
		t.Fatalf("expected parameter lists to compare equal ignoring location")
	}

	// r3labs/diff/v2 sees the Location fields differ (by design, see
	// Loc's doc comment); a caller diffing raw structs has to filter
	// those paths out itself, the same workaround the teacher's tests
	// use for its own Range fields.
	differences, err := diff.Diff(parsed, synthesised)
	if err != nil {
		t.Fatalf("cannot compare: %v", err)
	}
	for _, d := range differences {
		if !strings.Contains(strings.Join(d.Path, "."), "Location") {
			t.Fatalf("unexpected non-location difference: %v", d)
		}
	}
	if len(differences) == 0 {
		t.Fatal("expected r3labs/diff to report the differing Location fields")
	}
}

func TestEventDefinitionStructuralMismatchIsReported(t *testing.T) {
	want := &pt.EventDefinition{
		Name:   id("Transfer"),
		Fields: []pt.EventParameter{{Ty: ty(pt.TypeAddress, 0), Indexed: true, Name: ptrID("from")}},
	}
	got := &pt.EventDefinition{
		Name:   id("Transfer"),
		Fields: []pt.EventParameter{{Ty: ty(pt.TypeAddress, 0), Indexed: false, Name: ptrID("from")}},
	}

	if pt.ContractPartEqual(want, got) {
		t.Fatal("expected the differing Indexed flag to break equality")
	}

	differences, err := diff.Diff(want, got)
	if err != nil {
		t.Fatalf("cannot compare: %v", err)
	}
	found := false
	for _, d := range differences {
		if strings.Contains(strings.Join(d.Path, "."), "Indexed") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a reported difference mentioning Indexed, got %s", fmt.Sprint(differences))
	}
}
