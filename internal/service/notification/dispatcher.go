package notification

import (
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/theHazzard/farchievements-server/internal/pkg/errors"
	applog "github.com/theHazzard/farchievements-server/pkg/log"
)

// componentDispatcher 로깅용 컴포넌트 이름
const componentDispatcher = "notification.dispatcher"

// Dispatcher 업적 달성 알림을 설정된 디스코드 채널로 발송하는 Sender 구현체입니다.
//
// 발송 가능 여부는 게이트웨이 Ready 이벤트로 단 한 번 not-ready에서 ready로
// 전환되는 준비 플래그로 판단합니다. 플래그는 atomic.Bool이므로 요청 핸들러가
// 잠금 없이 동시 조회할 수 있습니다.
type Dispatcher struct {
	session   channelSession
	channelID string

	ready atomic.Bool
}

// newDispatcher Dispatcher 인스턴스를 생성합니다.
func newDispatcher(session channelSession, channelID string) *Dispatcher {
	if session == nil {
		panic("디스코드 세션은 필수입니다")
	}
	if channelID == "" {
		panic("디스코드 채널 ID는 필수입니다")
	}

	return &Dispatcher{
		session:   session,
		channelID: channelID,
	}
}

// markReady 발송 가능 상태로 전환합니다. 게이트웨이 Ready 핸들러에서 단 한 번 호출됩니다.
func (d *Dispatcher) markReady() {
	d.ready.Store(true)
}

// IsReady 디스코드 게이트웨이 로그인이 완료되었는지 반환합니다.
func (d *Dispatcher) IsReady() bool {
	return d.ready.Load()
}

// Health 발송 경로의 상태를 확인합니다.
func (d *Dispatcher) Health() error {
	if !d.IsReady() {
		return ErrNotReady
	}
	return nil
}

// Send 알림을 디스코드 채널로 발송합니다.
//
// 처리 순서:
//  1. 준비 상태 확인 (미완료 시 즉시 ErrNotReady, 큐잉하지 않음)
//  2. 채널 ID로 채널 조회 (요청마다 수행, 캐싱하지 않음) 및 텍스트 채널 여부 확인
//  3. 임베드 메시지 구성 후 첨부파일과 함께 단일 호출로 전송
//
// 모든 실패는 해당 요청에 한해 종결되며 재시도하지 않습니다.
func (d *Dispatcher) Send(n *Notification) error {
	if !d.IsReady() {
		return ErrNotReady
	}

	channel, err := d.session.Channel(d.channelID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "디스코드 채널 조회에 실패했습니다")
	}
	if channel == nil {
		return ErrChannelNotFound
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return ErrChannelNotPostable
	}

	message := buildMessage(n)

	if _, err := d.session.ChannelMessageSendComplex(d.channelID, message); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "디스코드 메시지 전송에 실패했습니다")
	}

	applog.WithComponentAndFields(componentDispatcher, applog.Fields{
		"user_name":        n.UserName,
		"achievement_name": n.AchievementName,
		"has_image":        n.Image != nil,
	}).Info("업적 달성 알림 발송 완료")

	return nil
}
