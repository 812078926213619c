package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"原样", "dewa 19", "dewa 19"},
		{"大小写折叠", "Dewa 19", "dewa 19"},
		{"首尾空白", "  dewa 19 \t", "dewa 19"},
		{"大小写加空白", " DEWA 19  ", "dewa 19"},
		{"词间空白保留", "dewa  19", "dewa  19"},
		{"空串", "", ""},
		{"纯空白", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeQuery(tc.raw))
		})
	}
}
