package middleware

import (
	"github.com/theHazzard/farchievements-server/internal/service/api/constants"
	"github.com/theHazzard/farchievements-server/internal/service/api/httputil"
)

var (
	// ErrAuthorizationRequired Authorization 헤더가 없거나 Bearer 형식이 아닐 때 반환하는 401 에러입니다.
	// 자격 증명 자체를 보내지 않은 경우로, 잘못된 자격 증명(403)과 구분됩니다.
	ErrAuthorizationRequired = httputil.NewUnauthorizedError("Authorization 헤더가 없거나 형식이 올바르지 않습니다 (Bearer <token>)")

	// ErrSecretMismatch Bearer 토큰이 설정된 공유 시크릿과 일치하지 않을 때 반환하는 403 에러입니다.
	ErrSecretMismatch = httputil.NewForbiddenError("인증 토큰이 일치하지 않습니다")

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
)
