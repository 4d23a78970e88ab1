package pt_test

import (
	"errors"
	"testing"

	"github.com/solgo/solpt/pt"
)

func TestDisplayRecoversUnsupportedConstruct(t *testing.T) {
	_, err := pt.Display(pt.RationalNumberLiteralExpression{Value: "1.5"}, pt.DefaultWidth)
	if err == nil {
		t.Fatal("expected an error")
	}
	var pe *pt.PrinterError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *PrinterError, got %T", err)
	}
	if pe.Variant != "RationalNumberLiteralExpression" {
		t.Fatalf("unexpected variant %q", pe.Variant)
	}
}

func TestMustDisplayPanicsOnUnsupportedConstruct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustDisplay to panic")
		}
	}()
	pt.MustDisplay(pt.RationalNumberLiteralExpression{Value: "1.5"})
}

func TestDisplaySucceedsOnSupportedConstruct(t *testing.T) {
	got, err := pt.Display(pt.BoolLiteralExpression{Value: true}, pt.DefaultWidth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "true" {
		t.Fatalf("got %q", got)
	}
}
