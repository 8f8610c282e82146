// Package v1 업적 알림 API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/achievements  - 업적 달성 알림 발송 (권장)
//   - POST /notify-achievement   - 업적 달성 알림 발송 (레거시 클라이언트 호환 경로)
//
// 모든 엔드포인트는 공유 시크릿 기반 Bearer 토큰 인증을 요구합니다.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/theHazzard/farchievements-server/internal/service/api/middleware"
	"github.com/theHazzard/farchievements-server/internal/service/api/v1/handler"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, secret string) {
	authMiddleware := middleware.RequireAuthentication(secret)

	// 권장 엔드포인트
	v1Group := e.Group("/api/v1")
	v1Group.POST("/achievements", h.PublishAchievementHandler, authMiddleware)

	// 레거시 클라이언트가 사용하는 루트 경로 (동일한 핸들러, 동일한 인증)
	e.POST("/notify-achievement", h.PublishAchievementHandler, authMiddleware)
}
