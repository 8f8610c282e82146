package constants

// 헬스체크 상태 값
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// 헬스체크 의존성 이름
const (
	// DependencyDiscord 디스코드 게이트웨이 연결 상태
	DependencyDiscord = "discord"
)

// 의존성 상태 메시지
const (
	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusNotInitialized = "초기화되지 않음"
)
