package api

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theHazzard/farchievements-server/internal/config"
	"github.com/theHazzard/farchievements-server/internal/pkg/version"
	"github.com/theHazzard/farchievements-server/internal/service/notification"
)

const testSecret = "super-secret-value"

// mockSender 발송 호출을 기록하는 notification.Sender 구현체입니다.
type mockSender struct {
	ready   bool
	sendErr error

	sent []*notification.Notification
}

func (m *mockSender) Send(n *notification.Notification) error {
	m.sent = append(m.sent, n)
	return m.sendErr
}

func (m *mockSender) IsReady() bool {
	return m.ready
}

func (m *mockSender) Health() error {
	if !m.ready {
		return notification.ErrNotReady
	}
	return nil
}

// newTestServer 전체 미들웨어 체인과 라우트가 설정된 테스트 서버를 생성합니다.
func newTestServer(t *testing.T, sender *mockSender) *echo.Echo {
	t.Helper()

	appConfig := &config.AppConfig{
		Secret: testSecret,
		Discord: config.DiscordConfig{
			BotToken:  "test-bot-token",
			ChannelID: "123456789012345678",
		},
		WS:   config.WSConfig{ListenPort: 3000},
		CORS: config.CORSConfig{AllowOrigins: []string{"*"}},
	}

	s := NewService(appConfig, sender, version.Get())

	return s.setupServer()
}

func newAchievementRequest(t *testing.T, jsonData string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if jsonData != "" {
		require.NoError(t, writer.WriteField("jsonData", jsonData))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/achievements", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

const validJSONData = `{"userName":"Alice","achievementName":"Dragon Slayer"}`

func TestServer_Authentication(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "Authorization 헤더 없음",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "잘못된 시크릿",
			header:     "Bearer wrong-secret",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockSender{ready: true}
			e := newTestServer(t, sender)

			req := newAchievementRequest(t, validJSONData)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, sender.sent, "인증 실패 시 디스코드에 접근하지 않아야 함")
		})
	}
}

func TestServer_PublishAchievement(t *testing.T) {
	t.Run("정상 발송", func(t *testing.T) {
		sender := &mockSender{ready: true}
		e := newTestServer(t, sender)

		req := newAchievementRequest(t, validJSONData)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testSecret)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"result_code":0`)
		require.Len(t, sender.sent, 1)
	})

	t.Run("준비 전에는 503", func(t *testing.T) {
		sender := &mockSender{ready: false}
		e := newTestServer(t, sender)

		req := newAchievementRequest(t, validJSONData)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testSecret)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, sender.sent)
	})

	t.Run("올바르지 않은 jsonData는 400", func(t *testing.T) {
		sender := &mockSender{ready: true}
		e := newTestServer(t, sender)

		req := newAchievementRequest(t, `{"userName": `)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testSecret)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, sender.sent)
	})

	t.Run("발송 실패 시 내부 에러 내용이 노출되지 않음", func(t *testing.T) {
		sender := &mockSender{
			ready:   true,
			sendErr: errors.New("discord api: channel 123 was deleted by admin"),
		}
		e := newTestServer(t, sender)

		req := newAchievementRequest(t, validJSONData)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testSecret)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "channel 123", "내부 에러 문자열이 응답에 노출되면 안됨")
		assert.Contains(t, rec.Body.String(), "서버 내부 오류가 발생했습니다")
	})

	t.Run("레거시 경로도 동일하게 동작", func(t *testing.T) {
		sender := &mockSender{ready: true}
		e := newTestServer(t, sender)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("jsonData", validJSONData))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/notify-achievement", body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testSecret)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, sender.sent, 1)
	})
}

func TestServer_SystemEndpoints(t *testing.T) {
	t.Run("헬스체크 - 디스코드 연결됨", func(t *testing.T) {
		e := newTestServer(t, &mockSender{ready: true})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
		assert.Contains(t, rec.Body.String(), `"discord"`)
	})

	t.Run("헬스체크 - 디스코드 연결 전", func(t *testing.T) {
		e := newTestServer(t, &mockSender{ready: false})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
	})

	t.Run("버전 정보", func(t *testing.T) {
		e := newTestServer(t, &mockSender{ready: true})

		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"go_version"`)
	})

	t.Run("존재하지 않는 경로는 404", func(t *testing.T) {
		e := newTestServer(t, &mockSender{ready: true})

		req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
