package pt

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ValidateVersionPragma checks that req, the value portion of a
// `pragma solidity <req>;` directive, is a syntactically valid version
// requirement: a space-separated list of comparator-prefixed semantic
// versions (e.g. ">=0.8.0 <0.9.0"). Solidity's comparators (^, ~, >=, <=,
// >, <, =) are stripped before each token is checked against
// golang.org/x/mod/semver, which only understands bare "vMAJOR.MINOR.PATCH"
// strings - mirroring the tadl grammar's own use of semver.IsValid to
// validate a SemVer capture.
func ValidateVersionPragma(req string) error {
	for _, tok := range strings.Fields(req) {
		v := strings.TrimLeft(tok, "^~>=<")
		if v == "" {
			return fmt.Errorf("pt: empty version in pragma requirement %q", req)
		}
		if !semver.IsValid("v" + normalizePatch(v)) {
			return fmt.Errorf("pt: invalid version %q in pragma requirement %q", tok, req)
		}
	}
	return nil
}

// normalizePatch pads a MAJOR.MINOR version out to MAJOR.MINOR.PATCH,
// since Solidity pragmas commonly omit the patch component (e.g. "0.8")
// but semver.IsValid requires all three.
func normalizePatch(v string) string {
	if strings.Count(v, ".") == 1 {
		return v + ".0"
	}
	return v
}
