package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGroupName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin lowercase", "bek-121", "век-121"},
		{"latin mixed case", "Ba-121-22-4-PI", "Ва-121-22-4-РІ"},
		{"pure cyrillic unchanged", "Ба-121-22-4-ПІ", "Ба-121-22-4-ПІ"},
		{"digits and dashes unchanged", "121-22-4", "121-22-4"},
		{"surrounding spaces trimmed", "  век-121  ", "век-121"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGroupName(tt.in))
		})
	}
}

func TestNormalizeGroupName_Idempotent(t *testing.T) {
	once := NormalizeGroupName("bek-121")
	twice := NormalizeGroupName(once)
	assert.Equal(t, once, twice)
}
