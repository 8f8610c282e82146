package notification

// Notification 디스코드 채널로 발송할 업적 달성 알림 한 건을 표현합니다.
// HTTP 요청에서 디코딩된 후 발송이 끝나면 폐기되는 일회성 데이터입니다.
type Notification struct {
	// UserName 업적을 달성한 사용자 이름 (필수)
	UserName string

	// AchievementName 달성한 업적 이름 (필수)
	AchievementName string

	// AchievementDescription 업적에 대한 부가 설명 (선택)
	AchievementDescription string

	// IconSource 업적 아이콘 이미지의 URL (선택)
	// 첨부 이미지가 없고 http:// 또는 https:// 로 시작하는 경우에만 사용됩니다.
	IconSource string

	// Image 요청에 첨부된 업적 이미지 (선택)
	// 존재하는 경우 IconSource보다 항상 우선합니다.
	Image *ImageAttachment
}

// ImageAttachment 메모리에 적재된 업적 이미지 첨부파일입니다.
type ImageAttachment struct {
	// Filename 업로드 시 선언된 원본 파일명 (비어있을 수 있음)
	Filename string

	// ContentType 업로드 시 선언된 MIME 타입
	ContentType string

	// Data 파일 전체 내용
	Data []byte
}
