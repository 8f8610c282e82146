package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/theHazzard/farchievements-server/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Secret: "test-secret",
		Discord: config.DiscordConfig{
			BotToken:  "test-bot-token",
			ChannelID: testChannelID,
		},
		WS:   config.WSConfig{ListenPort: 3000},
		CORS: config.CORSConfig{AllowOrigins: []string{"*"}},
	}
}

func TestNewService(t *testing.T) {
	s, err := NewService(newTestAppConfig())
	require.NoError(t, err)
	require.NotNil(t, s)

	// 전송 호출이 무한정 대기하지 않도록 타임아웃이 설정되어야 한다.
	assert.Equal(t, 30*time.Second, s.session.Client.Timeout)

	// 게이트웨이 연결 전이므로 발송 불가 상태여야 한다.
	sender := s.Sender()
	require.NotNil(t, sender)
	assert.False(t, sender.IsReady())
	assert.Error(t, sender.Health())
}

func TestNewService_NilConfig(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewService(nil)
	})
}
