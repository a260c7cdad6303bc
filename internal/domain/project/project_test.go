package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain list", "React,Node.js,MongoDB", []string{"React", "Node.js", "MongoDB"}},
		{"spaces and trailing comma", "React, Node.js,  MongoDB ,", []string{"React", "Node.js", "MongoDB"}},
		{"empty string", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"single entry", "Go", []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStack(tt.raw))
		})
	}
}
