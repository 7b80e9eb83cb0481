package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5493491123456", "5493491123456"},     // already canonical
		{"+54 9 3491 12-3456", "5493491123456"}, // formatting stripped
		{"03491123456", "5493491123456"},        // long-distance zero
		{"3491123456", "5493491123456"},         // bare local number
		{"93491123456", "5493491123456"},        // mobile prefix, no country code
		{"12345", "12345"},                      // unrecognized, digits only
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}
