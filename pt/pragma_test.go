package pt_test

import (
	"testing"

	"github.com/solgo/solpt/pt"
)

func TestValidateVersionPragma(t *testing.T) {
	tests := []struct {
		req     string
		wantErr bool
	}{
		{req: "^0.8.0", wantErr: false},
		{req: ">=0.8.0 <0.9.0", wantErr: false},
		{req: "0.8", wantErr: false},
		{req: "not-a-version", wantErr: true},
		{req: ">=0.8.0 <bogus", wantErr: true},
		{req: "", wantErr: false},
	}
	for _, tc := range tests {
		t.Run(tc.req, func(t *testing.T) {
			err := pt.ValidateVersionPragma(tc.req)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateVersionPragma(%q) error = %v, wantErr %v", tc.req, err, tc.wantErr)
			}
		})
	}
}
