// Package constants API 서비스 전반에서 사용하는 상수를 정의합니다.
package constants

// 로깅용 컴포넌트 이름
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)

// 패닉 메시지 (필수 의존성 누락)
const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"
	PanicMsgSenderRequired    = "Notification Sender는 필수입니다"
)
