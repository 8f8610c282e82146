package api

import (
	"github.com/labstack/echo/v4"

	"github.com/theHazzard/farchievements-server/internal/service/api/handler/system"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 시스템 엔드포인트(서비스 상태 확인 /health, 버전 정보 /version)는 인증 없이 호출 가능합니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}
