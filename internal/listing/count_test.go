package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{12345, "12.3k"},
		{999999, "1000.0k"},
		{-5, "-5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CompactCount(tt.n), "n=%d", tt.n)
	}
}
