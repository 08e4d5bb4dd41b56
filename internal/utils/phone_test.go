package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNZPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"local format", "0211234567", "0211234567", false},
		{"plus country code", "+64211234567", "0211234567", false},
		{"country code no plus", "64211234567", "0211234567", false},
		{"no leading zero", "211234567", "0211234567", false},
		{"spaces and dashes", "+64 21-123 4567", "0211234567", false},
		{"parentheses", "(021) 123.4567", "0211234567", false},
		{"empty", "", "", true},
		{"letters", "021abc4567", "", true},
		{"too short", "123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNZPhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
