package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"빈 문자열", "", ""},
		{"3자 이하_전체 마스킹", "abc", "***"},
		{"12자 이하_앞 4자만 표시", "secret123", "secr***"},
		{"긴 토큰_앞뒤 4자 표시", "supersecretbottoken", "supe***oken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mask(tt.input))
		})
	}
}
