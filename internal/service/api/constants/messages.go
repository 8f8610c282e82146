package constants

// 공통 에러/응답 메시지
const (
	ErrMsgInternalServer  = "서버 내부 오류가 발생했습니다"
	ErrMsgNotFound        = "요청하신 리소스를 찾을 수 없습니다"
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	MsgSuccess = "성공"
)
