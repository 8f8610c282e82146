// Package notification 디스코드 세션의 생명주기와 업적 달성 알림 발송을 담당합니다.
//
// 서비스는 게이트웨이 연결을 열고 Ready 이벤트 수신 시 발송 가능 상태로 전환합니다.
// 준비 완료 전에 요청된 알림은 버퍼링되지 않고 즉시 거부됩니다.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/theHazzard/farchievements-server/internal/config"
	apperrors "github.com/theHazzard/farchievements-server/internal/pkg/errors"
	applog "github.com/theHazzard/farchievements-server/pkg/log"
)

const (
	// componentService 로깅용 컴포넌트 이름
	componentService = "notification.service"

	// sendTimeout 디스코드 REST 호출(채널 조회, 메시지 전송)의 최대 대기 시간.
	// 전송 호출이 무한정 대기하여 요청 핸들러를 점유하는 것을 방지합니다.
	sendTimeout = 30 * time.Second
)

// Service 디스코드 세션의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - 디스코드 게이트웨이 연결 수립 및 종료
//   - Ready 이벤트 수신 시 Dispatcher를 발송 가능 상태로 전환 (단 한 번)
//   - 종료 신호 수신 시 세션 정리
type Service struct {
	appConfig *config.AppConfig

	session    *discordgo.Session
	dispatcher *Dispatcher

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
// 세션 객체만 구성하며, 실제 게이트웨이 연결은 Start()에서 수행됩니다.
func NewService(appConfig *config.AppConfig) (*Service, error) {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	session, err := discordgo.New("Bot " + appConfig.Discord.BotToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "디스코드 세션 생성에 실패했습니다")
	}

	// 채널 조회 및 메시지 전송에 필요한 최소한의 Intent만 요청합니다.
	session.Identify.Intents = discordgo.IntentsGuilds

	// REST 호출 타임아웃 (기본값은 무제한에 가까우므로 명시적으로 제한)
	session.Client.Timeout = sendTimeout

	return &Service{
		appConfig: appConfig,

		session:    session,
		dispatcher: newDispatcher(session, appConfig.Discord.ChannelID),

		running:   false,
		runningMu: sync.Mutex{},
	}, nil
}

// Sender 알림 발송 인터페이스를 반환합니다.
// API 서비스 등 외부 컴포넌트에 주입하기 위해 사용합니다.
func (s *Service) Sender() Sender {
	return s.dispatcher
}

// Start 디스코드 게이트웨이 연결을 수립하고 서비스를 시작합니다.
//
// Ready 이벤트가 수신되면 Dispatcher가 발송 가능 상태로 전환됩니다.
// 연결 수립에 실패하면 에러를 반환하며, 이 경우 호출자가 프로세스를 종료해야 합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(componentService).Info("Notification 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(componentService).Warn("Notification 서비스가 이미 시작됨!!!")
		return nil
	}

	// Ready 이벤트 수신 시 발송 가능 상태로 전환합니다. (not-ready -> ready, 단 한 번)
	s.session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		s.dispatcher.markReady()

		applog.WithComponentAndFields(componentService, applog.Fields{
			"bot_user": r.User.Username,
		}).Info("디스코드 게이트웨이 로그인 완료, 알림 발송 가능")
	})

	if err := s.session.Open(); err != nil {
		defer serviceStopWG.Done()
		return apperrors.Wrap(err, apperrors.System, "디스코드 게이트웨이 연결에 실패했습니다")
	}

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponent(componentService).Info("Notification 서비스 시작됨")

	return nil
}

// waitForShutdown 서비스의 종료 신호를 감지하고 디스코드 세션을 안전하게 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(componentService).Info("Notification 서비스 중지중...")

	if err := s.session.Close(); err != nil {
		applog.WithComponentAndFields(componentService, applog.Fields{
			"error": err,
		}).Error("디스코드 세션 종료 중 에러가 발생했습니다")
	}

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(componentService).Info("Notification 서비스 중지됨")
}
