// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// HTTP 요청을 받아 검증하고, 비즈니스 로직(알림 발송)을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"github.com/theHazzard/farchievements-server/internal/service/api/constants"
	"github.com/theHazzard/farchievements-server/internal/service/notification"
)

// Handler v1 API 요청을 처리하고 비즈니스 로직을 연결하는 핸들러입니다.
type Handler struct {
	// notificationSender 업적 달성 알림의 디스코드 발송을 담당하는 인터페이스
	notificationSender notification.Sender
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(notificationSender notification.Sender) *Handler {
	if notificationSender == nil {
		panic(constants.PanicMsgSenderRequired)
	}

	return &Handler{
		notificationSender: notificationSender,
	}
}
