package notification

import (
	apperrors "github.com/theHazzard/farchievements-server/internal/pkg/errors"
)

var (
	// ErrNotReady 디스코드 게이트웨이 로그인이 아직 완료되지 않아 알림을 발송할 수 없을 때 반환됩니다.
	// 알림은 큐잉되지 않고 즉시 거부됩니다. (API에서는 503으로 변환됨)
	ErrNotReady = apperrors.New(apperrors.Unavailable, "디스코드 연결이 아직 준비되지 않았습니다")

	// ErrChannelNotFound 설정된 채널 ID로 채널을 찾을 수 없을 때 반환됩니다.
	ErrChannelNotFound = apperrors.New(apperrors.NotFound, "설정된 디스코드 채널을 찾을 수 없습니다")

	// ErrChannelNotPostable 조회된 채널이 메시지를 게시할 수 있는 텍스트 채널이 아닐 때 반환됩니다.
	ErrChannelNotPostable = apperrors.New(apperrors.Internal, "설정된 디스코드 채널이 텍스트 채널이 아닙니다")
)
