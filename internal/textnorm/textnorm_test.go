package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"X", "X"},
		{"Ｘ", "X"},
		{"  Jan 5\u00a0 to\tJan 11 ", "Jan 5 to Jan 11"},
		{"ﬁll", "fill"},
		{"line\nbreak", "line break"},
		{"\x00\x01", ""},
		{"Ｊａｎ　５", "Jan 5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(" \t\u00a0"))
	assert.False(t, IsBlank(" X "))
}
