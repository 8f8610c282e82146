package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/theHazzard/farchievements-server/internal/pkg/errors"
	"github.com/theHazzard/farchievements-server/internal/pkg/validator"
	"github.com/theHazzard/farchievements-server/internal/service/api/constants"
	"github.com/theHazzard/farchievements-server/internal/service/api/httputil"
	"github.com/theHazzard/farchievements-server/internal/service/api/v1/model/request"
	"github.com/theHazzard/farchievements-server/internal/service/notification"
	applog "github.com/theHazzard/farchievements-server/pkg/log"
)

const (
	// formFieldJSONData 업적 메타데이터(JSON 객체)를 담는 멀티파트 텍스트 필드명
	formFieldJSONData = "jsonData"

	// formFieldImage 업적 이미지를 담는 멀티파트 바이너리 필드명 (선택, 최대 8MiB)
	formFieldImage = "achievementImageFile"
)

// PublishAchievementHandler 업적 달성 알림을 디스코드 채널로 발송합니다.
//
// 요청 본문은 multipart/form-data이며 다음 필드로 구성됩니다:
//   - jsonData (필수): {userName, achievementName, achievementDescription?, iconSource?}
//   - achievementImageFile (선택): 업적 이미지, 최대 8MiB (초과 시 BodyLimit 미들웨어가 413 반환)
//
// 처리 순서:
//  1. 디스코드 연결 준비 상태 확인 (미완료 시 페이로드와 무관하게 503, 큐잉하지 않음)
//  2. jsonData 파싱 및 필수 필드 검증 (실패 시 400)
//  3. 첨부 이미지 디코딩 (전체를 메모리에 적재)
//  4. 알림 발송 (실패 시 원인은 로그에만 기록하고 응답은 고정 문구의 500)
func (h *Handler) PublishAchievementHandler(c echo.Context) error {
	// 1. 준비 상태 확인
	if !h.notificationSender.IsReady() {
		h.log(c).Warn("디스코드 연결 준비 전 알림 요청 거부")
		return ErrDiscordNotReady
	}

	// 2. 메타데이터 파싱 및 검증
	jsonData := c.FormValue(formFieldJSONData)
	if jsonData == "" {
		return ErrJSONDataRequired
	}

	req := new(request.AchievementRequest)
	if err := json.Unmarshal([]byte(jsonData), req); err != nil {
		return ErrInvalidJSONData
	}

	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	// 3. 첨부 이미지 디코딩 (선택 필드)
	image, err := h.decodeImage(c)
	if err != nil {
		return err
	}

	// 4. 알림 발송 (동기, 재시도 없음)
	n := &notification.Notification{
		UserName:               req.UserName,
		AchievementName:        req.AchievementName,
		AchievementDescription: req.AchievementDescription,
		IconSource:             req.IconSource,
		Image:                  image,
	}

	if err := h.notificationSender.Send(n); err != nil {
		if apperrors.Is(err, apperrors.Unavailable) {
			return ErrDiscordNotReady
		}

		// 원인 에러는 서버 로그에만 기록하고, 응답에는 내부 내용을 노출하지 않습니다.
		h.log(c).WithFields(applog.Fields{
			"user_name":        req.UserName,
			"achievement_name": req.AchievementName,
			"error":            err,
		}).Error("업적 달성 알림 발송 실패")

		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}

	h.log(c).WithFields(applog.Fields{
		"user_name":        req.UserName,
		"achievement_name": req.AchievementName,
		"has_image":        image != nil,
	}).Info("업적 달성 알림 게시 성공")

	return httputil.Success(c)
}

// decodeImage 멀티파트 폼에서 첨부 이미지를 읽어 메모리에 적재합니다.
// 이미지 필드가 없는 경우 에러 없이 nil을 반환합니다.
func (h *Handler) decodeImage(c echo.Context) (*notification.ImageAttachment, error) {
	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, ErrImageReadFailed
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, ErrImageReadFailed
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ErrImageReadFailed
	}

	return &notification.ImageAttachment{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"remote_ip": c.RealIP(),
	})
}
