package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name, first, rest string
	}{
		{"Juan Dela Cruz", "Juan", "Dela Cruz"},
		{"  Ana   Maria  ", "Ana", "Maria"},
		{"Cher", "Cher", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, rest := SplitName(tc.name)
		assert.Equal(t, tc.first, first, tc.name)
		assert.Equal(t, tc.rest, rest, tc.name)
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("90m", time.Hour))
	assert.Equal(t, 720*time.Hour, ParseDuration("720h", time.Hour))

	for _, value := range []string{"", "soon", "0s", "-5m", "15"} {
		assert.Equal(t, time.Hour, ParseDuration(value, time.Hour), value)
	}
}
