package handler

import (
	"github.com/theHazzard/farchievements-server/internal/service/api/httputil"
)

var (
	// ErrJSONDataRequired 멀티파트 폼에 jsonData 필드가 없을 때 반환하는 400 에러입니다.
	ErrJSONDataRequired = httputil.NewBadRequestError("jsonData 필드는 필수입니다")

	// ErrInvalidJSONData jsonData 필드가 올바른 JSON 형식이 아닐 때 반환하는 400 에러입니다.
	ErrInvalidJSONData = httputil.NewBadRequestError("jsonData가 올바른 JSON 형식이 아닙니다")

	// ErrImageReadFailed 첨부 이미지 필드를 읽는 데 실패했을 때 반환하는 400 에러입니다.
	ErrImageReadFailed = httputil.NewBadRequestError("첨부 이미지를 읽을 수 없습니다")

	// ErrDiscordNotReady 디스코드 연결이 준비되지 않아 알림을 발송할 수 없을 때 반환하는 503 에러입니다.
	// 알림은 큐잉되지 않으므로 클라이언트가 잠시 후 재시도해야 합니다.
	ErrDiscordNotReady = httputil.NewServiceUnavailableError("디스코드 연결이 아직 준비되지 않았습니다. 잠시 후 다시 시도해주세요")
)
