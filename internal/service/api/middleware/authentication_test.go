package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-value"

func performAuthenticatedRequest(t *testing.T, authorizationHeader string) (*echo.HTTPError, bool) {
	t.Helper()

	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/achievements", nil)
	if authorizationHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authorizationHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	h := RequireAuthentication(testSecret)(func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	if err == nil {
		return nil, handlerCalled
	}

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "미들웨어는 echo.HTTPError를 반환해야 함")

	return he, handlerCalled
}

func TestRequireAuthentication(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int // 0이면 인증 통과
	}{
		{
			name:       "유효한 토큰",
			header:     "Bearer " + testSecret,
			wantStatus: 0,
		},
		{
			name:       "헤더 누락",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Bearer 스킴이 아님",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Bearer 접두사 없이 토큰만 전달",
			header:     testSecret,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "토큰 불일치",
			header:     "Bearer wrong-secret",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "토큰이 시크릿의 접두사인 경우",
			header:     "Bearer super-secret",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he, handlerCalled := performAuthenticatedRequest(t, tt.header)

			if tt.wantStatus == 0 {
				assert.Nil(t, he)
				assert.True(t, handlerCalled)
				return
			}

			require.NotNil(t, he)
			assert.Equal(t, tt.wantStatus, he.Code)
			assert.False(t, handlerCalled, "인증 실패 시 핸들러가 호출되지 않아야 함")
		})
	}
}

func TestRequireAuthentication_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() {
		RequireAuthentication("")
	})
}
