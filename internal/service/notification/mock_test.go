package notification

import (
	"github.com/bwmarrin/discordgo"
)

// mockSession 게이트웨이 연결 없이 발송 로직을 검증하기 위한 channelSession 구현체입니다.
type mockSession struct {
	channel    *discordgo.Channel
	channelErr error

	sendErr error

	channelCalls int
	sent         []*discordgo.MessageSend
}

func (m *mockSession) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	m.channelCalls++
	return m.channel, m.channelErr
}

func (m *mockSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, data)
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	return &discordgo.Message{ID: "1"}, nil
}

// newTextChannel 테스트용 텍스트 채널을 생성합니다.
func newTextChannel(id string) *discordgo.Channel {
	return &discordgo.Channel{
		ID:   id,
		Type: discordgo.ChannelTypeGuildText,
	}
}
