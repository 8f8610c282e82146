package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	UserName        string `validate:"required" korean:"사용자 이름"`
	AchievementName string `validate:"required,max=256" korean:"업적 이름"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{
			name:    "유효한 요청",
			req:     sampleRequest{UserName: "Alice", AchievementName: "Dragon Slayer"},
			wantErr: false,
		},
		{
			name:    "사용자 이름 누락",
			req:     sampleRequest{AchievementName: "Dragon Slayer"},
			wantErr: true,
		},
		{
			name:    "업적 이름 누락",
			req:     sampleRequest{UserName: "Alice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := Struct(sampleRequest{})
	require.Error(t, err)

	msg := FormatValidationError(err)

	// korean 태그의 필드명이 메시지에 사용되어야 한다.
	assert.Contains(t, msg, "사용자 이름은(는) 필수입니다")
	assert.Contains(t, msg, "업적 이름은(는) 필수입니다")
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	msg := FormatValidationError(errors.New("plain error"))
	assert.Equal(t, "요청 데이터가 유효하지 않습니다", msg)
}
