package jitcalc

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestRenderGolden locks the printer's rendering of parsed trees
// against golden files in testdata/. Regenerate with:
//
//	go test -run TestRenderGolden -update
func TestRenderGolden(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"precedence", "1 + 2 * 3"},
		{"grouping", "(1 + 2) * 3"},
		{"associativity", "10 - 2 - 3"},
		{"nested", "((2 + 3) * (4 - 1))"},
		{"unary_minus", "1 + 2 * - ( 3 - 4 / ( - 5 ) )"},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.input)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(root.String()))
		})
	}
}
