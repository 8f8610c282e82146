package notification

import (
	"github.com/bwmarrin/discordgo"
)

// Sender 알림 발송 기능을 제공하는 인터페이스입니다.
// 외부 컴포넌트(API 핸들러, 헬스체크 등)는 이 인터페이스를 통해 알림 서비스를 사용합니다.
type Sender interface {
	// Send 업적 달성 알림을 설정된 디스코드 채널로 발송합니다.
	// 발송은 동기적으로 수행되며, 실패는 재시도 없이 즉시 에러로 반환됩니다.
	Send(n *Notification) error

	// IsReady 디스코드 게이트웨이 로그인이 완료되어 발송이 가능한 상태인지 반환합니다.
	IsReady() bool

	// Health 발송 경로의 상태를 확인합니다. 발송이 불가능한 상태이면 에러를 반환합니다.
	Health() error
}

// channelSession 발송에 필요한 디스코드 세션 기능의 부분집합입니다.
// 테스트에서 실제 게이트웨이 연결 없이 대체 구현을 주입할 수 있도록 분리합니다.
// *discordgo.Session이 이 인터페이스를 만족합니다.
type channelSession interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
