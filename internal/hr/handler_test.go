package hr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidScore(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidScore(tt.score), "nota %d", tt.score)
	}
}
