package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPServer(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{
		AllowOrigins: []string{"*"},
	})
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("Server 헤더가 노출되지 않음", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	})

	t.Run("요청마다 Request ID가 부여됨", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("보안 헤더가 추가됨", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("8MiB를 초과하는 본문은 413", func(t *testing.T) {
		// 업적 이미지 상한(8MiB)을 1바이트 초과
		body := bytes.Repeat([]byte{0x00}, 8*1024*1024+1)

		req := httptest.NewRequest(http.MethodPost, "/ping", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
