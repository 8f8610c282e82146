package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	applog "github.com/theHazzard/farchievements-server/pkg/log"
	"github.com/theHazzard/farchievements-server/pkg/strutil"
)

// componentAuth 인증 미들웨어의 로깅용 컴포넌트 이름
const componentAuth = "api.middleware.auth"

// bearerPrefix Authorization 헤더의 Bearer 스킴 접두사
const bearerPrefix = "Bearer "

// RequireAuthentication 공유 시크릿 기반 Bearer 토큰 인증을 수행하는 미들웨어를 반환합니다.
//
// 처리 과정:
//  1. Authorization 헤더 존재 및 Bearer 형식 확인
//  2. 토큰과 공유 시크릿의 상수 시간 비교 (crypto/subtle)
//
// 실패 분류 (클라이언트가 두 경우를 구분할 수 있도록 상태 코드를 분리):
//   - 401 Unauthorized: 헤더 누락 또는 Bearer 형식이 아님 (자격 증명 미제출)
//   - 403 Forbidden: 토큰이 시크릿과 불일치 (잘못된 자격 증명)
//
// 실패 시 실패 유형만 로깅하며, 시도된 토큰 값은 마스킹 처리되어 원문이 로그에 남지 않습니다.
//
// Panics:
//   - secret이 빈 문자열인 경우
func RequireAuthentication(secret string) echo.MiddlewareFunc {
	if secret == "" {
		panic("공유 시크릿은 필수입니다")
	}

	secretBytes := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				applog.WithComponentAndFields(componentAuth, applog.Fields{
					"reason":    "missing_or_malformed_header",
					"method":    c.Request().Method,
					"path":      c.Path(),
					"remote_ip": c.RealIP(),
				}).Warn("인증 실패: Authorization 헤더 누락 또는 형식 오류")

				return ErrAuthorizationRequired
			}

			token := header[len(bearerPrefix):]

			if subtle.ConstantTimeCompare([]byte(token), secretBytes) != 1 {
				applog.WithComponentAndFields(componentAuth, applog.Fields{
					"reason":    "secret_mismatch",
					"token":     strutil.Mask(token),
					"method":    c.Request().Method,
					"path":      c.Path(),
					"remote_ip": c.RealIP(),
				}).Warn("인증 실패: 토큰 불일치")

				return ErrSecretMismatch
			}

			return next(c)
		}
	}
}
